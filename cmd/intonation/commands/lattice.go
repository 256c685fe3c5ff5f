package commands

import (
	"fmt"

	"github.com/mikowitz/intonation/interval"
	"github.com/mikowitz/intonation/lattice"
	"github.com/mikowitz/intonation/logger"
	"github.com/spf13/cobra"
)

var (
	latticeRatios  []string
	latticeIndices []string
)

var latticeCmd = &cobra.Command{
	Use:   "lattice",
	Short: "Create and query a JI lattice",
	Long: `Create and query a JI lattice.

Constructs an in-memory n-dimensional JI interval lattice from the given
ratios, and returns the intervals at the given indices, provided in the form
of comma-separated lists.

Example:
  intonation lattice -r 3/2 -r 5/4 -r 7/4 -i 0,0,1 -i 1,1,1 -i -1,0,2

returns the intervals at index sets [0,0,1], [1,1,1], and [-1,0,2] for a
3-dimensional lattice constructed from the ratios 3/2, 5/4, and 7/4.

If no indices are given, there will be no output.`,
	RunE: runLattice,
}

func init() {
	latticeCmd.Flags().StringArrayVarP(&latticeRatios, "ratios", "r", []string{"3/2", "5/4"},
		"Generating ratios, one per dimension")
	latticeCmd.Flags().StringArrayVarP(&latticeIndices, "indices", "i", nil,
		`Index vectors as comma-separated integers, e.g. "1,-1"`)
}

func runLattice(cmd *cobra.Command, args []string) error {
	ratios, err := parseRatios(latticeRatios)
	if err != nil {
		return err
	}
	vectors, err := parseIndexVectors(latticeIndices)
	if err != nil {
		return err
	}

	dimensions := make([]lattice.Dimension[int64], len(ratios))
	for i, r := range ratios {
		dimensions[i] = lattice.NewDimension(r, lattice.Infinite{})
	}
	l := lattice.New(dimensions...)
	logger.Logger.Debugw("built lattice", "dimensions", len(dimensions), "queries", len(vectors))

	for _, v := range vectors {
		r := l.At(v...)
		fmt.Printf("%s\t%s\n", r, interval.Approximate(r))
	}

	return nil
}
