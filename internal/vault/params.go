package vault

import (
	"fmt"
	"math"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// FixedLockParams is the multi-beneficiary lock shape: one maturity date,
// fixed (or weighted) shares.
type FixedLockParams struct {
	Owner         common.Address
	Asset         Asset
	Duration      uint64
	Beneficiaries []common.Address
	Shares        []*uint256.Int
	Deposit       *uint256.Int // nil means the sum of shares
	Weighted      bool
	CreatedAt     uint64
	Salt          string
}

// Params converts the lock shape into vault construction parameters.
func (f FixedLockParams) Params() (Params, error) {
	if len(f.Beneficiaries) != len(f.Shares) {
		return Params{}, fmt.Errorf("%w: %d beneficiaries but %d shares",
			ErrInvalidAllocationSet, len(f.Beneficiaries), len(f.Shares))
	}
	if f.CreatedAt > math.MaxUint64-f.Duration {
		return Params{}, fmt.Errorf("%w: maturity overflows", ErrInvalidSchedule)
	}

	allocations := make([]Allocation, len(f.Beneficiaries))
	for i, addr := range f.Beneficiaries {
		allocations[i] = Allocation{Address: addr, Share: f.Shares[i]}
	}

	return Params{
		Owner:         f.Owner,
		Asset:         f.Asset,
		Schedule:      SingleMaturity{UnlockAt: f.CreatedAt + f.Duration},
		Deposit:       f.Deposit,
		Beneficiaries: allocations,
		Weighted:      f.Weighted,
		CreatedAt:     f.CreatedAt,
		Salt:          f.Salt,
	}, nil
}

// TokenVestingParams is the single-beneficiary token vesting shape. A zero
// ReleaseRate vests linearly over Duration; otherwise ReleaseRate units are
// released every Duration seconds.
type TokenVestingParams struct {
	Owner       common.Address
	Token       common.Address
	TotalAmount *uint256.Int
	Duration    uint64
	ReleaseRate *uint256.Int
	Cliff       uint64
	Beneficiary common.Address // zero means the owner
	CreatedAt   uint64
	Salt        string
}

// Params converts the vesting shape into vault construction parameters.
func (t TokenVestingParams) Params() (Params, error) {
	if t.TotalAmount == nil || t.TotalAmount.IsZero() {
		return Params{}, fmt.Errorf("%w: zero total amount", ErrInvalidAllocationSet)
	}

	var schedule Schedule
	if t.ReleaseRate == nil || t.ReleaseRate.IsZero() {
		schedule = LinearVesting{Start: t.CreatedAt, Duration: t.Duration, Cliff: t.Cliff}
	} else {
		if t.Cliff != 0 {
			return Params{}, fmt.Errorf("%w: cliff is only supported for linear vesting", ErrInvalidSchedule)
		}
		schedule = PeriodicRate{Start: t.CreatedAt, PeriodLength: t.Duration, AmountPerPeriod: t.ReleaseRate.Clone()}
	}

	beneficiary := t.Beneficiary
	if beneficiary == (common.Address{}) {
		beneficiary = t.Owner
	}

	return Params{
		Owner:         t.Owner,
		Asset:         TokenAsset(t.Token),
		Schedule:      schedule,
		Deposit:       t.TotalAmount.Clone(),
		Beneficiaries: []Allocation{{Address: beneficiary, Share: t.TotalAmount.Clone()}},
		CreatedAt:     t.CreatedAt,
		Salt:          t.Salt,
	}, nil
}
