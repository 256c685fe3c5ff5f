package commands

import (
	"math"
	"time"

	"github.com/mikowitz/intonation/interval"
	"github.com/mikowitz/intonation/logger"
	"github.com/mikowitz/intonation/play"
	"github.com/spf13/cobra"
)

var (
	playRatioArg    string
	compareRatioArg string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a given ratio as sine waves",
	Long: `Play a given ratio as sine waves.

Will play a root pitch (middle C), the result of multiplying that root pitch
by the ratio, and then the two pitches together as a dyad.

Example:
  intonation play -r 3/2`,
	RunE: runPlay,
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare a given ratio as sine waves with the nearest ET interval",
	Long: `Compare a given ratio as sine waves with the nearest ET interval.

Plays the same sequence as play, but follows it with the nearest ET interval
to your ratio, as a dyad against the same root.

Example:
  intonation compare -r 3/2`,
	RunE: runCompare,
}

func init() {
	playCmd.Flags().StringVarP(&playRatioArg, "ratio", "r", "3/2", `Ratio as "N/D"`)
	compareCmd.Flags().StringVarP(&compareRatioArg, "ratio", "r", "3/2", `Ratio as "N/D"`)
}

func runPlay(cmd *cobra.Command, args []string) error {
	r, err := parseRatio(playRatioArg)
	if err != nil {
		return err
	}
	player, err := play.NewPlayer(play.DefaultOptions())
	if err != nil {
		return err
	}

	return playRatio(player, r.Float())
}

func runCompare(cmd *cobra.Command, args []string) error {
	r, err := parseRatio(compareRatioArg)
	if err != nil {
		return err
	}
	player, err := play.NewPlayer(play.DefaultOptions())
	if err != nil {
		return err
	}

	if err := playRatio(player, r.Float()); err != nil {
		return err
	}
	time.Sleep(500 * time.Millisecond)

	approx := interval.Approximate(r)
	logger.Logger.Debugw("playing ET comparison", "interval", approx.Name.String())
	root := play.MiddleC()
	etFreq := root * math.Pow(2, float64(approx.Name.Steps())/12)

	return player.Dyad(root, etFreq)
}

// playRatio plays the root, the root times the ratio's value, then both as
// a dyad.
func playRatio(player *play.Player, value float64) error {
	root := play.MiddleC()
	freq := root * value

	if err := player.Sequence(root, freq); err != nil {
		return err
	}

	return player.Dyad(root, freq)
}
