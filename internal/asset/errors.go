package asset

import "errors"

var (
	// ErrInsufficientBalance is returned when the sender holds less than the amount.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrAccountFrozen is returned when the token restricts the sender or recipient.
	ErrAccountFrozen = errors.New("account frozen")
	// ErrBalanceOverflow is returned when a credit would overflow 256 bits.
	ErrBalanceOverflow = errors.New("balance overflow")
	// ErrAssetMismatch is returned when a payout is routed to the wrong adapter.
	ErrAssetMismatch = errors.New("asset mismatch")
)
