package lattice

import "github.com/mikowitz/intonation/intmath"

// Bounds is the index-wrapping policy of one lattice dimension. The three
// implementations — Infinite, LengthBound, RangeBound — are mutually
// exclusive and selected once at dimension construction.
type Bounds interface {
	// ResolveIndex maps a caller-supplied index (possibly negative) to the
	// effective index within the dimension's bounds.
	ResolveIndex(index int) int
}

// Infinite leaves the dimension unbounded in both directions; indices
// resolve to themselves.
type Infinite struct{}

// ResolveIndex returns index unchanged.
func (Infinite) ResolveIndex(index int) int {
	return index
}

// LengthBound wraps indices through [0, N): indexing at N returns the value
// at 0, and negative indices wrap from the top.
//
// A negative N wraps under the sign-preserving modulo's own rules, which
// inverts the effective direction: with N = -2, index 1 resolves to -1 and
// the axis walks its generator's complement.
type LengthBound struct {
	N int
}

// ResolveIndex wraps index into the bound via intmath.SignMod.
func (b LengthBound) ResolveIndex(index int) int {
	return intmath.SignMod(index, b.N)
}

// RangeBound wraps indices through the inclusive range [A, B]: indexing at
// B+1 returns the value at A, and at A-1 the value at B.
//
// Note that RangeBound{0, 2} spans three indices, while LengthBound{2}
// spans two — the range bound is inclusive at both ends.
type RangeBound struct {
	A, B int
}

// ResolveIndex shifts index by |A|, wraps modulo the range length B-A+1,
// then shifts back.
func (b RangeBound) ResolveIndex(index int) int {
	modulo := b.B - b.A + 1
	absA := b.A
	if absA < 0 {
		absA = -absA
	}

	return intmath.SignMod(index+absA, modulo) - absA
}
