// Package diamond generates tonality diamonds: the n×n matrices of
// octave-normalized ratios built from a set of odd-limit identities, as
// introduced by Harry Partch.
//
// Row i of the matrix takes identity i as the denominator, so cell [i][j]
// is identity j over identity i, octave-reduced — otonalities read along
// rows, utonalities down columns, and the unison 1/1 runs down the diagonal.
//
// The String rendering walks the matrix diagonal-by-diagonal to print the
// familiar diamond shape, with the all-unison diagonal as the widest middle
// row:
//
//	d := diamond.New[int](1, 3, 5)
//	fmt.Println(d)
package diamond
