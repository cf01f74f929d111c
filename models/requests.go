package models

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/MKhiriev/go-lock-keeper/internal/vault"
)

// FixedLockRequest is the multi-beneficiary lock shape. Amounts are
// decimal strings of base units.
type FixedLockRequest struct {
	Name          string   `json:"name,omitempty" yaml:"name"`
	Owner         string   `json:"owner,omitempty" yaml:"owner"`
	Asset         string   `json:"asset,omitempty" yaml:"asset"`
	Duration      uint64   `json:"duration" yaml:"duration"`
	Beneficiaries []string `json:"beneficiaries" yaml:"beneficiaries"`
	Shares        []string `json:"shares" yaml:"shares"`
	Deposit       string   `json:"deposit,omitempty" yaml:"deposit"`
	Weighted      bool     `json:"weighted,omitempty" yaml:"weighted"`
	CreatedAt     uint64   `json:"created_at,omitempty" yaml:"created_at"`
	Salt          string   `json:"salt,omitempty" yaml:"salt"`
}

// Params converts the request. A zero CreatedAt is replaced by now.
func (r FixedLockRequest) Params(now uint64) (vault.Params, error) {
	owner, err := parseOwner(r.Owner)
	if err != nil {
		return vault.Params{}, err
	}
	asset, err := vault.ParseAsset(r.Asset)
	if err != nil {
		return vault.Params{}, err
	}

	beneficiaries := make([]common.Address, 0, len(r.Beneficiaries))
	for _, b := range r.Beneficiaries {
		addr, err := ParseAddress(b)
		if err != nil {
			return vault.Params{}, fmt.Errorf("%w: %w", vault.ErrInvalidAllocationSet, err)
		}
		beneficiaries = append(beneficiaries, addr)
	}

	shares := make([]*uint256.Int, 0, len(r.Shares))
	for _, s := range r.Shares {
		share, err := vault.ParseAmount(s)
		if err != nil {
			return vault.Params{}, err
		}
		shares = append(shares, share)
	}

	var deposit *uint256.Int
	if r.Deposit != "" {
		if deposit, err = vault.ParseAmount(r.Deposit); err != nil {
			return vault.Params{}, err
		}
	}

	return vault.FixedLockParams{
		Owner:         owner,
		Asset:         asset,
		Duration:      r.Duration,
		Beneficiaries: beneficiaries,
		Shares:        shares,
		Deposit:       deposit,
		Weighted:      r.Weighted,
		CreatedAt:     orNow(r.CreatedAt, now),
		Salt:          r.Salt,
	}.Params()
}

// VestingRequest is the single-beneficiary token vesting shape.
type VestingRequest struct {
	Name                 string `json:"name,omitempty" yaml:"name"`
	Owner                string `json:"owner,omitempty" yaml:"owner"`
	TokenAddress         string `json:"token_address" yaml:"token_address"`
	TotalAmount          string `json:"total_amount" yaml:"total_amount"`
	Duration             uint64 `json:"duration" yaml:"duration"`
	ReleaseRatePerPeriod string `json:"release_rate_per_period,omitempty" yaml:"release_rate_per_period"`
	Cliff                uint64 `json:"cliff,omitempty" yaml:"cliff"`
	Beneficiary          string `json:"beneficiary,omitempty" yaml:"beneficiary"`
	CreatedAt            uint64 `json:"created_at,omitempty" yaml:"created_at"`
	Salt                 string `json:"salt,omitempty" yaml:"salt"`
}

// Params converts the request. A zero CreatedAt is replaced by now.
func (r VestingRequest) Params(now uint64) (vault.Params, error) {
	owner, err := parseOwner(r.Owner)
	if err != nil {
		return vault.Params{}, err
	}
	asset, err := vault.ParseAsset(r.TokenAddress)
	if err != nil {
		return vault.Params{}, err
	}
	total, err := vault.ParseAmount(r.TotalAmount)
	if err != nil {
		return vault.Params{}, err
	}

	rate := new(uint256.Int)
	if r.ReleaseRatePerPeriod != "" {
		if rate, err = vault.ParseAmount(r.ReleaseRatePerPeriod); err != nil {
			return vault.Params{}, err
		}
	}

	var beneficiary common.Address
	if r.Beneficiary != "" {
		if beneficiary, err = ParseAddress(r.Beneficiary); err != nil {
			return vault.Params{}, fmt.Errorf("%w: %w", vault.ErrInvalidAllocationSet, err)
		}
	}

	return vault.TokenVestingParams{
		Owner:       owner,
		Token:       asset.Address(),
		TotalAmount: total,
		Duration:    r.Duration,
		ReleaseRate: rate,
		Cliff:       r.Cliff,
		Beneficiary: beneficiary,
		CreatedAt:   orNow(r.CreatedAt, now),
		Salt:        r.Salt,
	}.Params()
}

func parseOwner(s string) (common.Address, error) {
	owner, err := ParseAddress(s)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %w", vault.ErrInvalidOwner, err)
	}
	return owner, nil
}

func orNow(createdAt, now uint64) uint64 {
	if createdAt == 0 {
		return now
	}
	return createdAt
}

// PayoutResponse is returned by withdraw and reclaim.
type PayoutResponse struct {
	VaultID   string `json:"vault_id"`
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
	Kind      string `json:"kind"`
	At        uint64 `json:"at"`
	Status    string `json:"status"`
}

// BeneficiaryState is the claimable view of one beneficiary at an instant.
type BeneficiaryState struct {
	VaultID   string  `json:"vault_id"`
	Address   string  `json:"address"`
	At        uint64  `json:"at"`
	Allocated string  `json:"allocated"`
	Withdrawn string  `json:"withdrawn"`
	Unlocked  string  `json:"unlocked"`
	Claimable string  `json:"claimable"`
	Progress  float64 `json:"progress"`
}

// OwnerState is the reclaim view of a vault owner at an instant.
type OwnerState struct {
	VaultID     string `json:"vault_id"`
	Owner       string `json:"owner"`
	At          uint64 `json:"at"`
	Unallocated string `json:"unallocated"`
	Reclaimed   string `json:"reclaimed"`
	Reclaimable string `json:"reclaimable"`
}

// CreateVaultResponse is returned by the construction endpoints.
type CreateVaultResponse struct {
	ID      string `json:"id"`
	Created bool   `json:"created"`
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error     string `json:"error"`
	Retryable bool   `json:"retryable,omitempty"`
}
