package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tradeview/analytics"
	"tradeview/render"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Scalar summary of the configured trade log",
	Long: `Print the gross-result overview and the scalar summary (count, net
balance, profit factor) of the configured trade log, after the configured
date range is applied.

Example:
  tradeview summary -c analysis.yaml`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	s, err := loadSeries()
	if err != nil {
		return err
	}

	render.Overview(os.Stdout, analytics.OverviewOf(s))
	fmt.Println()
	render.Summary(os.Stdout, "net", analytics.Summarize(s))
	return nil
}
