package commands

import (
	"github.com/mikowitz/intonation/logger"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "intonation",
	Short: "Tools for working with JI ratios, lattices, and tonality diamonds",
	Long: `intonation — just intonation music theory tools.

Provides the ability to

* convert JI ratios to approximate ET intervals,
* construct and display n×n tonality diamonds,
* index into n-dimensional ratio lattices,
* inspect EDO temperaments against 12-EDO,
* play ratios as sine waves.

Examples:
  intonation ratios -r 3/2
  intonation diamond -l 1 -l 5 -l 3
  intonation lattice -r 3/2 -r 5/4 -i 1,1
  intonation edo -e 53
  intonation play -r 3/2

Run individual commands below for additional help.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Initialize(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(ratiosCmd)
	rootCmd.AddCommand(diamondCmd)
	rootCmd.AddCommand(latticeCmd)
	rootCmd.AddCommand(edoCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(compareCmd)
}

// Execute runs the root command tree.
func Execute() error {
	return rootCmd.Execute()
}
