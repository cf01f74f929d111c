package vault

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// PayoutKind tells a beneficiary withdrawal apart from an owner reclaim.
type PayoutKind string

const (
	PayoutWithdraw PayoutKind = "withdraw"
	PayoutReclaim  PayoutKind = "reclaim"
)

// Payout describes one outgoing transfer from a vault.
type Payout struct {
	Vault  common.Address
	Asset  Asset
	To     common.Address
	Amount *uint256.Int
	Kind   PayoutKind
	At     uint64
}

// TransferAdapter moves value out of a vault.
//
// Transfer is called after the vault has recorded the payout and without the
// vault lock held, so an implementation may call back into the vault. A
// returned error makes the vault revert the payout; errors wrapping
// [ErrInternalFault] additionally put the vault into [StatusFaulted].
type TransferAdapter interface {
	Transfer(ctx context.Context, p Payout) error
}

// TransferFunc adapts a function to [TransferAdapter].
type TransferFunc func(ctx context.Context, p Payout) error

// Transfer calls f(ctx, p).
func (f TransferFunc) Transfer(ctx context.Context, p Payout) error {
	return f(ctx, p)
}
