package asset

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-lock-keeper/internal/vault"
)

// NativeTransfer pays native currency held by the vault account.
type NativeTransfer struct {
	book *Book
}

// TokenTransfer pays fungible tokens held by the vault account.
type TokenTransfer struct {
	book *Book
}

var (
	_ vault.TransferAdapter = (*NativeTransfer)(nil)
	_ vault.TransferAdapter = (*TokenTransfer)(nil)
)

// NewNativeTransfer returns a native currency adapter over book.
func NewNativeTransfer(book *Book) *NativeTransfer {
	return &NativeTransfer{book: book}
}

// NewTokenTransfer returns a fungible token adapter over book.
func NewTokenTransfer(book *Book) *TokenTransfer {
	return &TokenTransfer{book: book}
}

// ForAsset returns the adapter settling a.
func ForAsset(book *Book, a vault.Asset) vault.TransferAdapter {
	if a.IsNative() {
		return NewNativeTransfer(book)
	}
	return NewTokenTransfer(book)
}

// Transfer debits the vault's held native balance. A vault holding less than
// its ledger says is an internal fault.
func (n *NativeTransfer) Transfer(ctx context.Context, p vault.Payout) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !p.Asset.IsNative() {
		return fmt.Errorf("%w: native adapter got %s", ErrAssetMismatch, p.Asset)
	}

	err := n.book.Transfer(p.Asset, p.Vault, p.To, p.Amount)
	if errors.Is(err, ErrInsufficientBalance) {
		return fmt.Errorf("%w: %w", vault.ErrInternalFault, err)
	}
	return err
}

// Transfer moves token units from the vault to the recipient. A frozen
// account is a recoverable rejection.
func (t *TokenTransfer) Transfer(ctx context.Context, p vault.Payout) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.Asset.IsNative() {
		return fmt.Errorf("%w: token adapter got native asset", ErrAssetMismatch)
	}

	err := t.book.Transfer(p.Asset, p.Vault, p.To, p.Amount)
	if errors.Is(err, ErrInsufficientBalance) {
		return fmt.Errorf("%w: %w", vault.ErrInternalFault, err)
	}
	return err
}
