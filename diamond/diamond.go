package diamond

import (
	"strings"

	"github.com/mikowitz/intonation/ratio"
	"golang.org/x/exp/constraints"
)

// Diamond holds the ordered identities (odd-limit generators) of a tonality
// diamond. The ratio matrix is regenerated on demand; no other state is
// kept. T selects the integer width of the generated ratios.
type Diamond[T constraints.Signed] struct {
	Identities []int
}

// New constructs a Diamond from the given identities, in the given order.
func New[T constraints.Signed](identities ...int) Diamond[T] {
	return Diamond[T]{Identities: identities}
}

// Generate returns the n×n matrix of octave-normalized ratios, row-major:
// cell [i][j] is identity j over identity i, normalized into [1, 2). The
// diagonal is all 1/1.
// Complexity: O(n²) ratio constructions.
func (d Diamond[T]) Generate() [][]ratio.Ratio[T] {
	rows := make([][]ratio.Ratio[T], len(d.Identities))
	for i, denom := range d.Identities {
		row := make([]ratio.Ratio[T], len(d.Identities))
		for j, numer := range d.Identities {
			row[j] = ratio.New(T(numer), T(denom)).Normalize()
		}
		rows[i] = row
	}

	return rows
}

// Coordinates returns the 2n-1 diagonal rows of matrix coordinates that lay
// the diamond out for display. The first n rows sweep the upper (otonality)
// diagonals from the corner down to the main diagonal; the remaining n-1
// mirror them below for the utonalities. Each coordinate is a (row, col)
// pair into the Generate matrix.
func (d Diamond[T]) Coordinates() [][][2]int {
	if len(d.Identities) == 0 {
		return nil
	}

	max := len(d.Identities) - 1
	coords := make([][][2]int, 0, 2*max+1)

	for i := max; i >= 0; i-- {
		row := make([][2]int, 0, max-i+1)
		for k := 0; i+k <= max; k++ {
			row = append(row, [2]int{k, i + k})
		}
		coords = append(coords, row)
	}
	for i := 1; i <= max; i++ {
		row := make([][2]int, 0, max-i+1)
		for k := 0; i+k <= max; k++ {
			row = append(row, [2]int{i + k, k})
		}
		coords = append(coords, row)
	}

	return coords
}

// String renders the diamond as a tab-aligned block: each diagonal row is
// indented by one leading tab per missing cell, cells are joined by double
// tabs, and rows are separated by blank lines, centering the printed diamond
// on the unison diagonal.
func (d Diamond[T]) String() string {
	ratios := d.Generate()
	coords := d.Coordinates()

	lines := make([]string, len(coords))
	for i, row := range coords {
		cells := make([]string, len(row))
		for j, c := range row {
			cells[j] = ratios[c[0]][c[1]].String()
		}
		prefix := strings.Repeat("\t", len(d.Identities)-len(row))
		lines[i] = prefix + strings.Join(cells, "\t\t")
	}

	return strings.Join(lines, "\n\n")
}
