package intmath

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Reduce divides a and b by their greatest common divisor, returning the
// fraction a/b in lowest terms. The divisor is computed on the absolute
// values, so the signs of the inputs survive reduction untouched.
// Panics if b is zero.
// Complexity: O(log min(|a|,|b|)).
func Reduce[T constraints.Signed](a, b T) (T, T) {
	if b == 0 {
		panic("intmath: Reduce with zero denominator")
	}
	g := gcd(abs(a), abs(b))

	return a / g, b / g
}

// SignMod returns ((a % b) + b) % b, a modulo that follows the sign of the
// modulus rather than the dividend: for positive b the result always lies in
// [0, b), even for negative a. For negative b the raw remainder rules apply
// unchanged, which flips the effective wrapping direction; lattice bounds
// rely on that exact behavior.
// Panics if b is zero.
func SignMod[T constraints.Signed](a, b T) T {
	if b == 0 {
		panic("intmath: SignMod with zero modulus")
	}

	return ((a % b) + b) % b
}

// GreatestPrimeFactor returns the largest prime factor of |a|, found by trial
// division from 2 upward, stripping each factor as it is found.
//
// GreatestPrimeFactor(1) returns 2: trial division takes no iterations and
// the starting candidate falls through. Callers that care about the unit case
// must special-case it themselves; prime-limit classification deliberately
// does not (the 1-limit and 2-limit coincide in just intonation).
// Complexity: O(√|a|).
func GreatestPrimeFactor[T constraints.Signed](a T) T {
	n := abs(a)
	largest := T(2)
	for f := T(2); n > 1; {
		if n%f == 0 {
			largest = f
			n /= f
		} else {
			f++
		}
	}

	return largest
}

// gcd computes the greatest common divisor of two non-negative integers via
// the Euclidean algorithm on remainders.
func gcd[T constraints.Signed](a, b T) T {
	if a < 0 || b < 0 {
		panic(fmt.Sprintf("intmath: gcd on negative inputs %d, %d", a, b))
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// abs returns the absolute value of a.
func abs[T constraints.Signed](a T) T {
	if a < 0 {
		return -a
	}

	return a
}
