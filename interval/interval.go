package interval

import (
	"errors"
	"fmt"
	"math"

	"github.com/mikowitz/intonation/intmath"
	"github.com/mikowitz/intonation/ratio"
	"golang.org/x/exp/constraints"
)

// Name enumerates the 12 chromatic degrees of equal temperament, each bound
// to its step count above the unison: PerfectUnison is 0 steps, MajorSeventh
// is 11.
type Name int

const (
	PerfectUnison Name = iota
	MinorSecond
	MajorSecond
	MinorThird
	MajorThird
	PerfectFourth
	AugmentedFourth
	PerfectFifth
	MinorSixth
	MajorSixth
	MinorSeventh
	MajorSeventh
)

// names indexes the display form of each degree by its step count.
var names = [...]string{
	"PerfectUnison",
	"MinorSecond",
	"MajorSecond",
	"MinorThird",
	"MajorThird",
	"PerfectFourth",
	"AugmentedFourth",
	"PerfectFifth",
	"MinorSixth",
	"MajorSixth",
	"MinorSeventh",
	"MajorSeventh",
}

// ErrUnknownSteps indicates a step count outside 0..11.
var ErrUnknownSteps = errors.New("interval: steps outside the 12-tone chromatic range")

// String returns the degree's CamelCase name.
func (n Name) String() string {
	if n < 0 || int(n) >= len(names) {
		return fmt.Sprintf("Name(%d)", int(n))
	}

	return names[n]
}

// Steps returns the degree's step count above the unison, 0..11.
func (n Name) Steps() int {
	return int(n)
}

// FromSteps maps a step count to its named degree. It is total on 0..11 and
// returns ErrUnknownSteps for anything else.
func FromSteps(steps int) (Name, error) {
	if steps < 0 || steps >= len(names) {
		return 0, ErrUnknownSteps
	}

	return Name(steps), nil
}

// Approximation describes the nearest equal-tempered interval to some exact
// pitch: the named 12-EDO degree plus the signed deviation from it in cents.
type Approximation struct {
	Name  Name
	Cents float64
}

// String renders the approximation as "(PerfectFifth, 1.955)".
func (a Approximation) String() string {
	return fmt.Sprintf("(%s, %.3f)", a.Name, a.Cents)
}

// FromCents approximates an exact cents value by the nearest multiple of 100
// cents, naming the degree by the rounded step count taken modulo 12.
//
// The modulo guarantees a step in 0..11; a value outside that set after
// rounding is an internal invariant violation and panics rather than
// guessing a name.
func FromCents(cents float64) Approximation {
	steps := int(math.Round(cents / 100))
	etCents := float64(steps) * 100

	name, err := FromSteps(intmath.SignMod(steps, 12))
	if err != nil {
		panic(fmt.Sprintf("interval: degenerate step %d from %.3f cents", steps, cents))
	}

	return Approximation{Name: name, Cents: cents - etCents}
}

// Approximate octave-normalizes r and returns its nearest equal-tempered
// interval with deviation in cents.
func Approximate[T constraints.Signed](r ratio.Ratio[T]) Approximation {
	return FromCents(r.Normalize().Cents())
}
