package commands

import (
	"fmt"

	"github.com/mikowitz/intonation/interval"
	"github.com/mikowitz/intonation/logger"
	"github.com/spf13/cobra"
)

var ratiosArgs []string

var ratiosCmd = &cobra.Command{
	Use:   "ratios",
	Short: "Find the ET approximation of JI ratios",
	Long: `Find the ET approximation of JI ratios.

Returns the ET approximation of the ratios passed in, defined as a pair of
an ET interval name and the number of cents by which the JI ratio differs
from it.

Example:
  intonation ratios -r 3/2

returns "3/2	(PerfectFifth, 1.955)": the ratio 3/2 is greater than an ET
perfect fifth by ~2 cents.`,
	RunE: runRatios,
}

func init() {
	ratiosCmd.Flags().StringArrayVarP(&ratiosArgs, "ratios", "r", nil,
		`Ratios as "N/D" (repeat the flag for several)`)
}

func runRatios(cmd *cobra.Command, args []string) error {
	ratios, err := parseRatios(ratiosArgs)
	if err != nil {
		return err
	}
	logger.Logger.Debugw("parsed ratios", "count", len(ratios))

	for _, r := range ratios {
		fmt.Printf("%s\t%s\n", r, interval.Approximate(r))
	}

	return nil
}
