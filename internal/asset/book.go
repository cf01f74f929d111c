package asset

import (
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/MKhiriev/go-lock-keeper/internal/logger"
	"github.com/MKhiriev/go-lock-keeper/internal/vault"
)

type account struct {
	balance uint256.Int
	frozen  bool
}

// Book is an in-memory multi-asset balance book. It is safe for concurrent use.
type Book struct {
	mu       sync.Mutex
	accounts map[vault.Asset]map[common.Address]*account

	logger *logger.Logger
}

// NewBook returns an empty book.
func NewBook(logger *logger.Logger) *Book {
	logger.Debug().Msg("creating asset book")
	return &Book{
		accounts: make(map[vault.Asset]map[common.Address]*account),
		logger:   logger,
	}
}

func (b *Book) account(asset vault.Asset, addr common.Address) *account {
	holders, ok := b.accounts[asset]
	if !ok {
		holders = make(map[common.Address]*account)
		b.accounts[asset] = holders
	}
	acc, ok := holders[addr]
	if !ok {
		acc = &account{}
		holders[addr] = acc
	}
	return acc
}

// Credit adds amount of asset to addr. It is how deposits enter the book.
func (b *Book) Credit(asset vault.Asset, addr common.Address, amount *uint256.Int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	acc := b.account(asset, addr)
	if _, overflow := acc.balance.AddOverflow(&acc.balance, amount); overflow {
		acc.balance.Sub(&acc.balance, amount)
		return fmt.Errorf("%w: crediting %s %s to %s", ErrBalanceOverflow, amount.Dec(), asset, addr.Hex())
	}
	return nil
}

// Transfer moves amount of asset from one account to another.
func (b *Book) Transfer(asset vault.Asset, from, to common.Address, amount *uint256.Int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	src := b.account(asset, from)
	dst := b.account(asset, to)
	switch {
	case src.frozen:
		return fmt.Errorf("%w: %s", ErrAccountFrozen, from.Hex())
	case dst.frozen:
		return fmt.Errorf("%w: %s", ErrAccountFrozen, to.Hex())
	case src.balance.Lt(amount):
		return fmt.Errorf("%w: %s holds %s %s, needs %s",
			ErrInsufficientBalance, from.Hex(), src.balance.Dec(), asset, amount.Dec())
	}

	src.balance.Sub(&src.balance, amount)
	dst.balance.Add(&dst.balance, amount)

	b.logger.Debug().
		Str("asset", asset.String()).
		Str("from", from.Hex()).
		Str("to", to.Hex()).
		Str("amount", amount.Dec()).
		Msg("transfer settled")

	return nil
}

// BalanceOf returns a copy of addr's balance of asset.
func (b *Book) BalanceOf(asset vault.Asset, addr common.Address) *uint256.Int {
	b.mu.Lock()
	defer b.mu.Unlock()

	if acc, ok := b.accounts[asset][addr]; ok {
		return acc.balance.Clone()
	}
	return new(uint256.Int)
}

// Freeze blocks transfers from and to addr for asset.
func (b *Book) Freeze(asset vault.Asset, addr common.Address) {
	b.setFrozen(asset, addr, true)
}

// Unfreeze lifts a previous Freeze.
func (b *Book) Unfreeze(asset vault.Asset, addr common.Address) {
	b.setFrozen(asset, addr, false)
}

func (b *Book) setFrozen(asset vault.Asset, addr common.Address, frozen bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.account(asset, addr).frozen = frozen
}
