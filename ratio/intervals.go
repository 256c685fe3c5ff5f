package ratio

import "golang.org/x/exp/constraints"

// Common just intonation intervals, provided as constructors so each call
// site picks its own integer width.

// Unison returns 1/1.
func Unison[T constraints.Signed]() Ratio[T] { return New[T](1, 1) }

// MajorSecond returns 9/8.
func MajorSecond[T constraints.Signed]() Ratio[T] { return New[T](9, 8) }

// MajorThird returns 5/4.
func MajorThird[T constraints.Signed]() Ratio[T] { return New[T](5, 4) }

// PerfectFourth returns 4/3.
func PerfectFourth[T constraints.Signed]() Ratio[T] { return New[T](4, 3) }

// PerfectFifth returns 3/2.
func PerfectFifth[T constraints.Signed]() Ratio[T] { return New[T](3, 2) }

// MajorSixth returns 5/3.
func MajorSixth[T constraints.Signed]() Ratio[T] { return New[T](5, 3) }

// MajorSeventh returns 15/8.
func MajorSeventh[T constraints.Signed]() Ratio[T] { return New[T](15, 8) }

// Octave returns 2/1.
func Octave[T constraints.Signed]() Ratio[T] { return New[T](2, 1) }

// SyntonicComma returns 81/80, the comma by which four perfect fifths
// overshoot a major third two octaves up.
func SyntonicComma[T constraints.Signed]() Ratio[T] { return New[T](81, 80) }
