package interval_test

import (
	"testing"

	"github.com/mikowitz/intonation/interval"
	"github.com/mikowitz/intonation/ratio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestApproximate_Unison: 1/1 is exactly a perfect unison.
func TestApproximate_Unison(t *testing.T) {
	a := interval.Approximate(ratio.New(1, 1))

	assert.Equal(t, interval.PerfectUnison, a.Name)
	assert.InDelta(t, 0.0, a.Cents, 1e-9)
}

// TestApproximate_PerfectFifth: 3/2 is ≈1.955 cents above an ET fifth.
func TestApproximate_PerfectFifth(t *testing.T) {
	a := interval.Approximate(ratio.New(3, 2))

	assert.Equal(t, interval.PerfectFifth, a.Name)
	assert.InDelta(t, 1.955, a.Cents, 0.001)
}

// TestApproximate_NormalizesFirst: ratios outside [1, 2) are octave-reduced
// before naming, so 3/1 also approximates to a fifth and 1/2 to a unison.
func TestApproximate_NormalizesFirst(t *testing.T) {
	twelfth := interval.Approximate(ratio.New(3, 1))
	assert.Equal(t, interval.PerfectFifth, twelfth.Name)
	assert.InDelta(t, 1.955, twelfth.Cents, 0.001)

	lowOctave := interval.Approximate(ratio.New(1, 2))
	assert.Equal(t, interval.PerfectUnison, lowOctave.Name)
	assert.InDelta(t, 0.0, lowOctave.Cents, 1e-9)
}

// TestApproximate_NearOctaveWrapsToUnison: a value rounding up to 1200 cents
// names PerfectUnison with a negative deviation.
func TestApproximate_NearOctaveWrapsToUnison(t *testing.T) {
	// 63/32 ≈ 1173.0 cents
	a := interval.Approximate(ratio.New(63, 32))

	assert.Equal(t, interval.PerfectUnison, a.Name)
	assert.Negative(t, a.Cents)
}

// TestApproximate_WholeScale walks every 12-EDO degree via exact cents.
func TestApproximate_WholeScale(t *testing.T) {
	for steps := 0; steps < 12; steps++ {
		a := interval.FromCents(float64(steps) * 100)
		want, err := interval.FromSteps(steps)
		require.NoError(t, err)
		assert.Equal(t, want, a.Name, "steps=%d", steps)
		assert.InDelta(t, 0.0, a.Cents, 1e-9)
	}
}

// TestFromSteps_Bounds verifies totality on 0..11 and ErrUnknownSteps
// outside it.
func TestFromSteps_Bounds(t *testing.T) {
	n, err := interval.FromSteps(7)
	require.NoError(t, err)
	assert.Equal(t, interval.PerfectFifth, n)

	_, err = interval.FromSteps(12)
	assert.ErrorIs(t, err, interval.ErrUnknownSteps)

	_, err = interval.FromSteps(-1)
	assert.ErrorIs(t, err, interval.ErrUnknownSteps)
}

// TestName_String verifies display names and step bindings.
func TestName_String(t *testing.T) {
	assert.Equal(t, "PerfectUnison", interval.PerfectUnison.String())
	assert.Equal(t, "AugmentedFourth", interval.AugmentedFourth.String())
	assert.Equal(t, "MajorSeventh", interval.MajorSeventh.String())
	assert.Equal(t, 7, interval.PerfectFifth.Steps())
	assert.Equal(t, 11, interval.MajorSeventh.Steps())
}

// TestApproximation_String verifies formatting used by the CLI.
func TestApproximation_String(t *testing.T) {
	a := interval.Approximation{Name: interval.PerfectFifth, Cents: 1.955}
	assert.Equal(t, "(PerfectFifth, 1.955)", a.String())
}
