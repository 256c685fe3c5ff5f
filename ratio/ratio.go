package ratio

import (
	"fmt"
	"math"

	"github.com/mikowitz/intonation/intmath"
	"golang.org/x/exp/constraints"
)

// Ratio models an interval in just intonation as a fraction of two integers
// of caller-selected width T.
//
// Invariants:
//   - Numer and Denom are coprime (reduced at construction).
//   - Denom is never zero.
//   - Values are immutable; all operations return fresh Ratios.
//
// Equality is structural equality of the reduced pair, so plain == works:
// New(6, 4) == New(3, 2).
type Ratio[T constraints.Signed] struct {
	Numer T
	Denom T
}

// New constructs a Ratio from numer and denom, reduced to lowest terms.
// The signs of the inputs are preserved through reduction; they are not
// separately normalized. Panics if denom is zero.
func New[T constraints.Signed](numer, denom T) Ratio[T] {
	if denom == 0 {
		panic("ratio: zero denominator")
	}
	n, d := intmath.Reduce(numer, denom)

	return Ratio[T]{Numer: n, Denom: d}
}

// Mul returns the product of r and rhs, reduced.
// Panics if an intermediate product overflows T.
func (r Ratio[T]) Mul(rhs Ratio[T]) Ratio[T] {
	return New(mulChecked(r.Numer, rhs.Numer), mulChecked(r.Denom, rhs.Denom))
}

// Div returns the quotient of r by rhs, via cross-multiplication, reduced.
// Panics if an intermediate product overflows T.
func (r Ratio[T]) Div(rhs Ratio[T]) Ratio[T] {
	return New(mulChecked(r.Numer, rhs.Denom), mulChecked(r.Denom, rhs.Numer))
}

// Normalize octave-reduces r into the range [1, 2): the numerator is doubled
// while the value is below 1, the denominator while it is 2 or above, and the
// result is re-reduced. Normalize is idempotent.
//
// r must be positive: no amount of octave shifting brings a zero or negative
// value into [1, 2), so Normalize panics on them.
func (r Ratio[T]) Normalize() Ratio[T] {
	if r.Float() <= 0 {
		panic(fmt.Sprintf("ratio: cannot normalize non-positive ratio %s", r))
	}
	n, d := r.Numer, r.Denom
	for {
		switch f := float64(n) / float64(d); {
		case f < 1:
			n = mulChecked(n, 2)
		case f >= 2:
			d = mulChecked(d, 2)
		default:
			return New(n, d)
		}
	}
}

// Complement returns the normalized ratio that, multiplied by r, yields
// exactly 2/1 — the inversion of the interval within the octave.
// Complement(3/2) = 4/3.
func (r Ratio[T]) Complement() Ratio[T] {
	return New[T](2, 1).Div(r).Normalize()
}

// Pow raises r to an integer power, octave-normalizing the result.
// Pow(0) is the identity 1/1; a negative exponent raises the complement:
// Pow(-2) of 3/2 is 16/9. Panics if an intermediate power overflows T.
func (r Ratio[T]) Pow(exp int) Ratio[T] {
	switch {
	case exp == 0:
		return New[T](1, 1)
	case exp < 0:
		return r.Complement().Pow(-exp)
	}

	n, d := T(1), T(1)
	for i := 0; i < exp; i++ {
		n = mulChecked(n, r.Numer)
		d = mulChecked(d, r.Denom)
	}

	return New(n, d).Normalize()
}

// Limit returns the prime limit of r: the largest prime factor appearing in
// either the numerator or the denominator. 3/2 is 3-limit, 5/4 and 81/80 are
// 5-limit. The unit ratio 1/1 reports 2 (see intmath.GreatestPrimeFactor).
func (r Ratio[T]) Limit() T {
	np := intmath.GreatestPrimeFactor(r.Numer)
	dp := intmath.GreatestPrimeFactor(r.Denom)
	if np > dp {
		return np
	}

	return dp
}

// Float returns numer/denom as a float64. It exists for magnitude
// comparisons and cents conversion only; reduction arithmetic never
// touches floating point.
func (r Ratio[T]) Float() float64 {
	return float64(r.Numer) / float64(r.Denom)
}

// Cents returns the size of the interval in cents: 1200 * log2(numer/denom).
func (r Ratio[T]) Cents() float64 {
	return 1200 * math.Log2(r.Float())
}

// String renders r as "numer/denom".
func (r Ratio[T]) String() string {
	return fmt.Sprintf("%d/%d", r.Numer, r.Denom)
}

// mulChecked multiplies a and b, panicking instead of wrapping on overflow.
// Division back by a nonzero factor detects every wrapped product, including
// the MinInt edge cases.
func mulChecked[T constraints.Signed](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	p := a * b
	if p/b != a {
		panic(fmt.Sprintf("ratio: %d * %d overflows %T", a, b, p))
	}

	return p
}
