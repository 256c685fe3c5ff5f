// Package edo models temperaments built from N equal divisions of the
// octave (EDO).
//
// 12-EDO is the familiar chromatic scale; 53-EDO approximates just
// intonation closely enough that its 31st step misses a pure fifth by well
// under two cents:
//
//	e, _ := edo.New(53)
//	e.Interval(31).Cents          // ≈701.887
//	e.Interval(31).Approximate()  // (PerfectFifth, 1.887)
package edo
