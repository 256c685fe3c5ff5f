// Package lattice builds n-dimensional just intonation interval lattices.
//
// 🚀 What is a ratio lattice?
//
//	Each Dimension is generated by one interval — a lattice of fifths and
//	major thirds puts 3/2 on one axis and 5/4 on the other. Indexing a
//	dimension at k raises its generator to the k-th power (octave-reduced);
//	indexing the whole lattice multiplies the per-axis results together.
//
// ✨ Boundary policies, chosen per dimension:
//   - Infinite   — indices pass through untouched, the axis never wraps
//   - LengthBound — indices wrap through [0, n); a negative n wraps with
//     inverted direction (a deliberate, pinned-down behavior)
//   - RangeBound  — indices wrap through the inclusive range [a, b]
//
// ⚙️ Usage:
//
//	l := lattice.New(
//	  lattice.NewDimension(ratio.New[int64](3, 2), lattice.Infinite{}),
//	  lattice.NewDimension(ratio.New[int64](5, 4), lattice.Infinite{}),
//	)
//	l.At(1, 1) // 15/8, the just major seventh
package lattice
