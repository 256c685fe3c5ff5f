package diamond_test

import (
	"testing"

	"github.com/mikowitz/intonation/diamond"
	"github.com/mikowitz/intonation/ratio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerate_FiveLimit: the full 3×3 matrix for identities 1, 3, 5.
func TestGenerate_FiveLimit(t *testing.T) {
	d := diamond.New[int](1, 3, 5)
	g := d.Generate()
	require.Len(t, g, 3)

	assert.Equal(t, ratio.New(1, 1), g[0][0])
	assert.Equal(t, ratio.New(3, 2), g[0][1])
	assert.Equal(t, ratio.New(5, 4), g[0][2])

	assert.Equal(t, ratio.New(4, 3), g[1][0])
	assert.Equal(t, ratio.New(1, 1), g[1][1])
	assert.Equal(t, ratio.New(5, 3), g[1][2])

	assert.Equal(t, ratio.New(8, 5), g[2][0])
	assert.Equal(t, ratio.New(6, 5), g[2][1])
	assert.Equal(t, ratio.New(1, 1), g[2][2])
}

// TestGenerate_UnisonDiagonal: every identity over itself is 1/1.
func TestGenerate_UnisonDiagonal(t *testing.T) {
	d := diamond.New[int](1, 3, 5, 7, 9, 11)
	g := d.Generate()

	for i := range g {
		assert.Equal(t, ratio.New(1, 1), g[i][i], "diagonal cell %d", i)
	}
}

// TestGenerate_CellsNormalized: every cell lies in [1, 2).
func TestGenerate_CellsNormalized(t *testing.T) {
	d := diamond.New[int](1, 3, 5, 7)
	for i, row := range d.Generate() {
		for j, cell := range row {
			assert.GreaterOrEqual(t, cell.Float(), 1.0, "cell [%d][%d]", i, j)
			assert.Less(t, cell.Float(), 2.0, "cell [%d][%d]", i, j)
		}
	}
}

// TestCoordinates: the diagonal-interleaved display order for n=3.
func TestCoordinates(t *testing.T) {
	d := diamond.New[int](1, 3, 5)

	want := [][][2]int{
		{{0, 2}},
		{{0, 1}, {1, 2}},
		{{0, 0}, {1, 1}, {2, 2}},
		{{1, 0}, {2, 1}},
		{{2, 0}},
	}
	assert.Equal(t, want, d.Coordinates())
}

// TestCoordinates_RowCount: 2n-1 rows, lengths shrinking from n at the
// middle to 1 at the tips.
func TestCoordinates_RowCount(t *testing.T) {
	d := diamond.New[int](1, 3, 5, 7, 9)
	coords := d.Coordinates()
	require.Len(t, coords, 9)

	assert.Len(t, coords[0], 1)
	assert.Len(t, coords[4], 5)
	assert.Len(t, coords[8], 1)
}

// TestString: the tab-indented diamond block for identities 1, 3, 5.
func TestString(t *testing.T) {
	d := diamond.New[int](1, 3, 5)

	want := "\t\t5/4\n\n" +
		"\t3/2\t\t5/3\n\n" +
		"1/1\t\t1/1\t\t1/1\n\n" +
		"\t4/3\t\t6/5\n\n" +
		"\t\t8/5"
	assert.Equal(t, want, d.String())
}

// TestEmptyDiamond: no identities, no output.
func TestEmptyDiamond(t *testing.T) {
	d := diamond.New[int]()

	assert.Empty(t, d.Generate())
	assert.Nil(t, d.Coordinates())
	assert.Equal(t, "", d.String())
}
