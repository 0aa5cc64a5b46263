package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"tradeview/analytics"
	"tradeview/render"
)

var monthsCmd = &cobra.Command{
	Use:   "months",
	Short: "Net points per calendar month",
	Args:  cobra.NoArgs,
	RunE:  runMonths,
}

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "Mean net points per day of the month",
	Args:  cobra.NoArgs,
	RunE:  runDays,
}

func init() {
	rootCmd.AddCommand(monthsCmd)
	rootCmd.AddCommand(daysCmd)
}

func runMonths(cmd *cobra.Command, args []string) error {
	s, err := loadSeries()
	if err != nil {
		return err
	}

	render.Months(os.Stdout, analytics.MonthlyNet(s))
	return nil
}

func runDays(cmd *cobra.Command, args []string) error {
	s, err := loadSeries()
	if err != nil {
		return err
	}

	render.Days(os.Stdout, analytics.DayOfMonthMean(s))
	return nil
}
