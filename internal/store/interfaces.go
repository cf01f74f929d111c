package store

import (
	"context"

	"github.com/MKhiriev/go-lock-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// VaultRepository persists vault definitions and the withdrawal journal.
type VaultRepository interface {
	// CreateVault stores the definition and its beneficiaries atomically.
	// Returns ErrVaultAlreadyExists when the ID is taken.
	CreateVault(ctx context.Context, def models.VaultDefinition) error

	// GetVault loads one definition. Returns ErrVaultNotFound.
	GetVault(ctx context.Context, id string) (models.VaultDefinition, error)

	// ListVaults returns the definitions matching the owner and beneficiary
	// of filter, oldest first. Status is not persisted and is ignored.
	ListVaults(ctx context.Context, filter models.VaultFilter) ([]models.VaultDefinition, error)

	// SaveWithdrawal journals a payout before it is transferred.
	SaveWithdrawal(ctx context.Context, w models.Withdrawal) error

	// DeleteWithdrawal removes a journal entry whose transfer failed.
	DeleteWithdrawal(ctx context.Context, id string) error

	// ListWithdrawals returns the journal of one vault in payment order.
	ListWithdrawals(ctx context.Context, vaultID string) ([]models.Withdrawal, error)
}
