package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tradeview/analytics"
	"tradeview/pkg/id"
	"tradeview/render"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Compare real, stop-only, window-only and combined series",
	Long: `Run the configured windows and daily stop thresholds against the
trade log and compare four series: the real sequence, the daily-stop
truncation, the window filter, and the window filter followed by the daily
stop. Prints the four scalar summaries and the month-by-month comparison.

Example:
  tradeview simulate -c analysis.yaml`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	s, err := loadSeries()
	if err != nil {
		return err
	}

	runID := id.New()
	c := analytics.Run(s, cfg.RunConfig())

	log.Info("simulation run complete",
		zap.String("run_id", runID),
		zap.Int("real", c.RealSummary.Count),
		zap.Int("stop_only", c.StopOnlySummary.Count),
		zap.Int("window_only", c.WindowOnlySummary.Count),
		zap.Int("combined", c.CombinedSummary.Count),
	)

	fmt.Printf("run %s\n\n", runID)
	render.Comparison(os.Stdout, c)
	fmt.Println()
	render.MonthComparison(os.Stdout, analytics.CompareMonthly(c.Real, c.StopOnly, c.WindowOnly, c.Combined))
	return nil
}
