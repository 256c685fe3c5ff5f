package edo

import (
	"errors"

	"github.com/mikowitz/intonation/interval"
)

// ErrNoDivisions indicates a temperament with fewer than one division.
var ErrNoDivisions = errors.New("edo: divisions must be at least 1")

// Edo is an equal temperament dividing the octave into a fixed number of
// equal steps. It is an immutable value; copy it freely.
type Edo struct {
	divisions int
}

// New constructs an Edo with the given number of divisions per octave.
// Returns ErrNoDivisions if divisions is less than 1.
func New(divisions int) (Edo, error) {
	if divisions < 1 {
		return Edo{}, ErrNoDivisions
	}

	return Edo{divisions: divisions}, nil
}

// Divisions returns the number of equal steps per octave.
func (e Edo) Divisions() int {
	return e.divisions
}

// Interval returns the interval spanning the given number of steps in this
// temperament.
func (e Edo) Interval(steps int) Interval {
	return Interval{
		Edo:   e,
		Steps: steps,
		Cents: 1200 * float64(steps) / float64(e.divisions),
	}
}

// Interval is a span of steps within a specific EDO temperament. Cents is
// computed once at construction. The owning Edo is embedded by value — it is
// a trivial immutable struct, so no back-reference is kept.
type Interval struct {
	Edo   Edo
	Steps int
	Cents float64
}

// Approximate returns the nearest 12-EDO degree to this interval, with the
// deviation from it in cents.
func (i Interval) Approximate() interval.Approximation {
	return interval.FromCents(i.Cents)
}
