package commands

import (
	"fmt"

	"github.com/mikowitz/intonation/diamond"
	"github.com/mikowitz/intonation/logger"
	"github.com/spf13/cobra"
)

var diamondLimits []int

var diamondCmd = &cobra.Command{
	Use:   "diamond",
	Short: "Construct a tonality diamond from the given identities",
	Long: `Construct a tonality diamond from the given identities.

Displays a tonality diamond (otonalities on top, utonalities on the bottom)
built from the given integer identities.

Example:
  intonation diamond -l 1 -l 3 -l 5

returns a 3×3 tonality diamond of ratios that have only 1, 3 or 5 as their
largest odd factor.`,
	RunE: runDiamond,
}

func init() {
	diamondCmd.Flags().IntSliceVarP(&diamondLimits, "limits", "l", []int{1, 5, 3},
		"Odd-limit identities generating the diamond")
}

func runDiamond(cmd *cobra.Command, args []string) error {
	d := diamond.New[int64](diamondLimits...)
	logger.Logger.Debugw("generating diamond", "identities", diamondLimits)

	fmt.Println(d)

	return nil
}
