package vault

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/holiman/uint256"
)

// ScheduleKind names a schedule variant. The values are stable and persisted.
type ScheduleKind string

const (
	KindSingleMaturity ScheduleKind = "single_maturity"
	KindLinearVesting  ScheduleKind = "linear_vesting"
	KindPeriodicRate   ScheduleKind = "periodic_rate"
)

// Schedule computes how much of an allocation is unlocked at a given instant.
//
// Implementations are pure values: UnlockedFraction is monotonically
// non-decreasing in now and always within [0,1], and UnlockedAmount is
// floor(fraction * total) so rounding can never release more than earned.
type Schedule interface {
	// Kind returns the variant name.
	Kind() ScheduleKind
	// Validate checks the variant invariants and wraps [ErrInvalidSchedule].
	Validate() error
	// UnlockedFraction returns the unlocked share of total at now.
	UnlockedFraction(now uint64, total *uint256.Int) Fraction
	// UnlockedAmount returns the unlocked part of total at now.
	UnlockedAmount(now uint64, total *uint256.Int) *uint256.Int

	appendBytes(b []byte) []byte
}

// SingleMaturity releases everything at UnlockAt and nothing before.
type SingleMaturity struct {
	UnlockAt uint64
}

// LinearVesting accrues continuously from Start to Start+Duration. Nothing is
// released before Start+Cliff; at the cliff the pro-rated amount earned since
// Start becomes available at once.
type LinearVesting struct {
	Start    uint64
	Duration uint64
	Cliff    uint64
}

// PeriodicRate unlocks AmountPerPeriod at every PeriodLength boundary after
// Start, capped at the total allocation.
type PeriodicRate struct {
	Start           uint64
	PeriodLength    uint64
	AmountPerPeriod *uint256.Int
}

var (
	_ Schedule = SingleMaturity{}
	_ Schedule = LinearVesting{}
	_ Schedule = PeriodicRate{}
)

func (s SingleMaturity) Kind() ScheduleKind { return KindSingleMaturity }

func (s SingleMaturity) Validate() error { return nil }

func (s SingleMaturity) UnlockedFraction(now uint64, _ *uint256.Int) Fraction {
	if now < s.UnlockAt {
		return zeroFraction()
	}
	return oneFraction()
}

func (s SingleMaturity) UnlockedAmount(now uint64, total *uint256.Int) *uint256.Int {
	return s.UnlockedFraction(now, total).Apply(total)
}

func (s SingleMaturity) appendBytes(b []byte) []byte {
	b = append(b, string(KindSingleMaturity)...)
	return binary.BigEndian.AppendUint64(b, s.UnlockAt)
}

func (s LinearVesting) Kind() ScheduleKind { return KindLinearVesting }

func (s LinearVesting) Validate() error {
	switch {
	case s.Duration == 0:
		return fmt.Errorf("%w: linear vesting duration must be positive", ErrInvalidSchedule)
	case s.Cliff > s.Duration:
		return fmt.Errorf("%w: cliff %d exceeds duration %d", ErrInvalidSchedule, s.Cliff, s.Duration)
	case s.Start > math.MaxUint64-s.Duration:
		return fmt.Errorf("%w: vesting end overflows", ErrInvalidSchedule)
	}
	return nil
}

func (s LinearVesting) UnlockedFraction(now uint64, _ *uint256.Int) Fraction {
	if s.Duration == 0 || now < s.Start || now-s.Start < s.Cliff {
		return zeroFraction()
	}

	elapsed := now - s.Start
	if elapsed >= s.Duration {
		return oneFraction()
	}
	return newFraction(uint256.NewInt(elapsed), uint256.NewInt(s.Duration))
}

func (s LinearVesting) UnlockedAmount(now uint64, total *uint256.Int) *uint256.Int {
	return s.UnlockedFraction(now, total).Apply(total)
}

func (s LinearVesting) appendBytes(b []byte) []byte {
	b = append(b, string(KindLinearVesting)...)
	b = binary.BigEndian.AppendUint64(b, s.Start)
	b = binary.BigEndian.AppendUint64(b, s.Duration)
	return binary.BigEndian.AppendUint64(b, s.Cliff)
}

func (s PeriodicRate) Kind() ScheduleKind { return KindPeriodicRate }

func (s PeriodicRate) Validate() error {
	switch {
	case s.PeriodLength == 0:
		return fmt.Errorf("%w: period length must be positive", ErrInvalidSchedule)
	case s.AmountPerPeriod == nil || s.AmountPerPeriod.IsZero():
		return fmt.Errorf("%w: amount per period must be positive", ErrInvalidSchedule)
	}
	return nil
}

func (s PeriodicRate) UnlockedFraction(now uint64, total *uint256.Int) Fraction {
	if s.PeriodLength == 0 || s.AmountPerPeriod == nil || now < s.Start {
		return zeroFraction()
	}

	periods := (now - s.Start) / s.PeriodLength
	if periods == 0 {
		return zeroFraction()
	}
	if total == nil || total.IsZero() {
		return oneFraction()
	}

	unlocked, overflow := new(uint256.Int).MulOverflow(uint256.NewInt(periods), s.AmountPerPeriod)
	if overflow {
		return oneFraction()
	}
	return newFraction(unlocked, total)
}

func (s PeriodicRate) UnlockedAmount(now uint64, total *uint256.Int) *uint256.Int {
	return s.UnlockedFraction(now, total).Apply(total)
}

func (s PeriodicRate) appendBytes(b []byte) []byte {
	b = append(b, string(KindPeriodicRate)...)
	b = binary.BigEndian.AppendUint64(b, s.Start)
	b = binary.BigEndian.AppendUint64(b, s.PeriodLength)
	amount := cloneOrZero(s.AmountPerPeriod).Bytes32()
	return append(b, amount[:]...)
}
