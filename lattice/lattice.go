package lattice

import (
	"github.com/mikowitz/intonation/ratio"
	"golang.org/x/exp/constraints"
)

// Dimension is one axis of a lattice: the generating interval by which the
// axis extends, and the wrapping rule applied to indices along it.
type Dimension[T constraints.Signed] struct {
	Ratio  ratio.Ratio[T]
	Bounds Bounds
}

// NewDimension constructs a Dimension from a generating ratio and a
// boundary policy.
func NewDimension[T constraints.Signed](r ratio.Ratio[T], bounds Bounds) Dimension[T] {
	return Dimension[T]{Ratio: r, Bounds: bounds}
}

// At resolves index through the dimension's bounds and raises the generator
// to that power. At(0) is always 1/1; negative resolved indices walk the
// complement direction.
func (d Dimension[T]) At(index int) ratio.Ratio[T] {
	return d.Ratio.Pow(d.Bounds.ResolveIndex(index))
}

// Lattice is an ordered sequence of independent axes. Order matters only in
// that it pairs positionally with the index vectors supplied to At; the axes
// have no other relationship beyond being multiplied together at query time.
type Lattice[T constraints.Signed] struct {
	Dimensions []Dimension[T]
}

// New constructs a Lattice from the given dimensions.
func New[T constraints.Signed](dimensions ...Dimension[T]) Lattice[T] {
	return Lattice[T]{Dimensions: dimensions}
}

// At returns the ratio at the given index vector: each index is resolved
// against its positionally-paired dimension and the per-axis ratios are
// multiplied together from 1/1, in dimension order.
//
// The zip truncates: extra indices beyond the number of dimensions, or
// extra dimensions beyond the number of indices, are silently ignored.
// Complexity: O(min(len(dimensions), len(indices)) · max|index|).
func (l Lattice[T]) At(indices ...int) ratio.Ratio[T] {
	acc := ratio.New[T](1, 1)
	for i, dim := range l.Dimensions {
		if i >= len(indices) {
			break
		}
		acc = acc.Mul(dim.At(indices[i]))
	}

	return acc
}
