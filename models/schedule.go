package models

import (
	"fmt"

	"github.com/MKhiriev/go-lock-keeper/internal/vault"
)

// ScheduleSpec is the serializable form of a release schedule. Only the
// fields of the given Kind are meaningful.
type ScheduleSpec struct {
	// Kind is one of "single_maturity", "linear_vesting", "periodic_rate".
	Kind string `json:"kind" msgpack:"kind"`

	// UnlockAt is the maturity of a single_maturity schedule.
	UnlockAt uint64 `json:"unlock_at,omitempty" msgpack:"unlock_at,omitempty"`

	// Start is when linear_vesting and periodic_rate begin accruing.
	Start uint64 `json:"start,omitempty" msgpack:"start,omitempty"`

	// Duration and Cliff of a linear_vesting schedule, in seconds.
	Duration uint64 `json:"duration,omitempty" msgpack:"duration,omitempty"`
	Cliff    uint64 `json:"cliff,omitempty" msgpack:"cliff,omitempty"`

	// PeriodLength and AmountPerPeriod of a periodic_rate schedule.
	PeriodLength    uint64 `json:"period_length,omitempty" msgpack:"period_length,omitempty"`
	AmountPerPeriod string `json:"amount_per_period,omitempty" msgpack:"amount_per_period,omitempty"`
}

// NewScheduleSpec converts a schedule into its serializable form.
func NewScheduleSpec(s vault.Schedule) ScheduleSpec {
	switch v := s.(type) {
	case vault.SingleMaturity:
		return ScheduleSpec{Kind: string(v.Kind()), UnlockAt: v.UnlockAt}
	case vault.LinearVesting:
		return ScheduleSpec{Kind: string(v.Kind()), Start: v.Start, Duration: v.Duration, Cliff: v.Cliff}
	case vault.PeriodicRate:
		spec := ScheduleSpec{Kind: string(v.Kind()), Start: v.Start, PeriodLength: v.PeriodLength}
		if v.AmountPerPeriod != nil {
			spec.AmountPerPeriod = v.AmountPerPeriod.Dec()
		}
		return spec
	default:
		return ScheduleSpec{}
	}
}

// Schedule converts the spec back into a schedule. It does not validate the
// schedule invariants; vault.New does.
func (s ScheduleSpec) Schedule() (vault.Schedule, error) {
	switch vault.ScheduleKind(s.Kind) {
	case vault.KindSingleMaturity:
		return vault.SingleMaturity{UnlockAt: s.UnlockAt}, nil
	case vault.KindLinearVesting:
		return vault.LinearVesting{Start: s.Start, Duration: s.Duration, Cliff: s.Cliff}, nil
	case vault.KindPeriodicRate:
		amount, err := vault.ParseAmount(s.AmountPerPeriod)
		if err != nil {
			return nil, fmt.Errorf("%w: amount per period: %w", vault.ErrInvalidSchedule, err)
		}
		return vault.PeriodicRate{Start: s.Start, PeriodLength: s.PeriodLength, AmountPerPeriod: amount}, nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", vault.ErrInvalidSchedule, s.Kind)
	}
}
