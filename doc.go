// Package intonation is a toolkit for just intonation (JI) music theory:
// exact rational arithmetic over musical intervals, tonality diamonds, and
// n-dimensional interval lattices.
//
// 🚀 What is just intonation?
//
//	Tuning by exact whole-number frequency ratios instead of the equal
//	divisions of the piano keyboard. A pure fifth is 3/2, a pure major
//	third 5/4 — and the small gaps between stacks of such ratios and their
//	equal-tempered neighbors are the whole subject.
//
// ✨ What the library gives you:
//   - Exact ratio arithmetic: generic, overflow-checked reduced fractions
//     with octave normalization, complements, powers, and prime limits
//   - ET approximation: the nearest named 12-EDO interval for any ratio or
//     EDO step, with the deviation in cents
//   - Tonality diamonds: Partch-style n×n ratio matrices with the diagonal
//     display layout
//   - Ratio lattices: per-axis generators with infinite, length-bounded, or
//     range-bounded index wrapping
//   - Playback: sine-tone rendering of ratios through the speaker
//
// Everything is organized under flat subpackages:
//
//	intmath/  — gcd reduction, sign-preserving modulo, prime factors
//	ratio/    — the generic Ratio type and common JI intervals
//	interval/ — 12-EDO names and cents-deviation approximations
//	edo/      — N-equal-divisions-of-the-octave temperaments
//	lattice/  — dimensions, boundary policies, and lattice queries
//	diamond/  — tonality diamond generation and display
//	play/     — sine-tone playback of frequencies
//	cmd/      — the intonation CLI
//
// Quick taste:
//
//	r := ratio.New[int64](3, 2)
//	fmt.Println(interval.Approximate(r)) // (PerfectFifth, 1.955)
//
// All core types are immutable values; the library does no I/O and keeps no
// state of its own.
//
//	go get github.com/mikowitz/intonation
package intonation
