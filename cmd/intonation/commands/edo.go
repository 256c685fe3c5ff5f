package commands

import (
	"fmt"

	"github.com/mikowitz/intonation/edo"
	"github.com/mikowitz/intonation/logger"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var edoDivisions int

var edoCmd = &cobra.Command{
	Use:   "edo",
	Short: "Show the steps of an EDO as compared to 12-EDO",
	Long: `Show the steps of an EDO as compared to 12-EDO.

Lists every step of the given equal division of the octave with its size in
cents and the nearest 12-EDO interval name.

Example:
  intonation edo -e 53`,
	RunE: runEdo,
}

func init() {
	edoCmd.Flags().IntVarP(&edoDivisions, "edo", "e", 12, "Number of equal divisions of the octave")
}

func runEdo(cmd *cobra.Command, args []string) error {
	e, err := edo.New(edoDivisions)
	if err != nil {
		return err
	}
	logger.Logger.Debugw("rendering EDO table", "divisions", e.Divisions())

	rows := pterm.TableData{{"Step", "Cents", "12-EDO approximation"}}
	for steps := 0; steps <= e.Divisions(); steps++ {
		iv := e.Interval(steps)
		approx := iv.Approximate()
		rows = append(rows, []string{
			fmt.Sprintf("%d/%d", steps, e.Divisions()),
			fmt.Sprintf("%.3f", iv.Cents),
			approx.String(),
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}
