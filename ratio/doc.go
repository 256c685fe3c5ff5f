// Package ratio implements exact rational arithmetic over just intonation
// intervals.
//
// 🚀 What is a just intonation ratio?
//
//	An interval expressed as a fraction of two integers — 3/2 is a perfect
//	fifth, 5/4 a major third, 81/80 the syntonic comma. All arithmetic here
//	stays in exact integers; floating point appears only when comparing
//	magnitudes or converting to cents.
//
// ✨ Key properties:
//   - every Ratio is stored in lowest terms (gcd-reduced at construction)
//   - values are immutable; every operation returns a new Ratio
//   - generic over signed integer widths — pick int32 for compactness or
//     int64 (and beyond) for deep lattices and large exponents
//   - overflow never wraps silently: any product that exceeds the chosen
//     width panics, telling the caller to widen T
//
// ⚙️ Usage:
//
//	fifth := ratio.New[int64](3, 2)
//	fifth.Pow(2)            // 9/8, octave-normalized
//	fifth.Complement()      // 4/3
//	fifth.Cents()           // ≈701.955
//
// See example_test.go for complete walkthroughs.
package ratio
