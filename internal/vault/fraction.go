package vault

import (
	"math/big"

	"github.com/holiman/uint256"
)

// Fraction is an exact ratio num/den in [0,1]. The zero value is 0/1.
type Fraction struct {
	num uint256.Int
	den uint256.Int
}

func zeroFraction() Fraction {
	var f Fraction
	f.den.SetOne()
	return f
}

func oneFraction() Fraction {
	var f Fraction
	f.num.SetOne()
	f.den.SetOne()
	return f
}

// newFraction builds num/den clamped to [0,1]. den must not be zero.
func newFraction(num, den *uint256.Int) Fraction {
	if num.Cmp(den) >= 0 {
		return oneFraction()
	}
	var f Fraction
	f.num.Set(num)
	f.den.Set(den)
	return f
}

// Num returns a copy of the numerator.
func (f Fraction) Num() *uint256.Int {
	return f.num.Clone()
}

// Den returns a copy of the denominator (1 for the zero value).
func (f Fraction) Den() *uint256.Int {
	if f.den.IsZero() {
		return uint256.NewInt(1)
	}
	return f.den.Clone()
}

// IsZero reports whether nothing is unlocked.
func (f Fraction) IsZero() bool {
	return f.num.IsZero()
}

// IsOne reports whether everything is unlocked.
func (f Fraction) IsOne() bool {
	return !f.num.IsZero() && f.num.Eq(f.Den())
}

// Float64 returns an approximation for display and logging.
func (f Fraction) Float64() float64 {
	v, _ := new(big.Rat).SetFrac(f.num.ToBig(), f.Den().ToBig()).Float64()
	return v
}

// Apply returns floor(total * f). The result never exceeds total.
func (f Fraction) Apply(total *uint256.Int) *uint256.Int {
	if total == nil || f.IsZero() {
		return new(uint256.Int)
	}
	if f.IsOne() {
		return total.Clone()
	}
	out, _ := new(uint256.Int).MulDivOverflow(total, &f.num, f.Den())
	return out
}
