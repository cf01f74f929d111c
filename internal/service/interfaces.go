package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/go-lock-keeper/internal/manifest"
	"github.com/MKhiriev/go-lock-keeper/internal/vault"
	"github.com/MKhiriev/go-lock-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// VaultService owns the live vaults of the process: it constructs, restores,
// pays out and renders them.
type VaultService interface {
	// CreateFixedLock constructs a fixed lock. An empty owner defaults to caller.
	CreateFixedLock(ctx context.Context, caller common.Address, req models.FixedLockRequest) (models.CreateVaultResponse, error)

	// CreateVesting constructs a token vesting vault. An empty owner defaults to caller.
	CreateVesting(ctx context.Context, caller common.Address, req models.VestingRequest) (models.CreateVaultResponse, error)

	// CreateVault constructs p unless a vault with the same ID exists.
	CreateVault(ctx context.Context, name string, p vault.Params) (models.CreateVaultResponse, error)

	GetVault(ctx context.Context, id string) (models.VaultView, error)
	ListVaults(ctx context.Context, filter models.VaultFilter) ([]models.VaultView, error)

	// BeneficiaryState reports the unlocked and claimable amounts of addr at
	// the given instant. A nil at means now.
	BeneficiaryState(ctx context.Context, id string, addr common.Address, at *uint64) (models.BeneficiaryState, error)

	// OwnerState reports what the owner may reclaim at the given instant. A
	// nil at means now.
	OwnerState(ctx context.Context, id string, at *uint64) (models.OwnerState, error)

	Withdraw(ctx context.Context, id string, caller common.Address) (models.PayoutResponse, error)
	Reclaim(ctx context.Context, id string, caller common.Address) (models.PayoutResponse, error)

	// Restore rebuilds every persisted vault from its definition and journal.
	Restore(ctx context.Context) error

	// ApplyManifest constructs the manifest vaults that do not exist yet.
	ApplyManifest(ctx context.Context, m manifest.Manifest) error
}

// AuthService issues and verifies bearer tokens whose subject is an account
// address.
type AuthService interface {
	CreateToken(ctx context.Context, subject common.Address) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IDGenerator issues unique journal entry ids.
type IDGenerator interface {
	Generate() string
}
