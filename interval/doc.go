// Package interval maps just intonation ratios and EDO steps onto the twelve
// named chromatic degrees of equal temperament.
//
// An Approximation pairs the nearest named 12-EDO interval with the signed
// deviation from it in cents. The perfect fifth 3/2 sits ≈1.955 cents above
// an equal-tempered fifth:
//
//	interval.Approximate(ratio.New(3, 2))
//	// (PerfectFifth, 1.955)
//
// Convention: ratios are octave-normalized before approximation, so every
// result falls within one octave's interval names. A value just below the
// octave therefore approximates to PerfectUnison with a negative deviation.
package interval
