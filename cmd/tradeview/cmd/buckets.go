package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tradeview/analytics"
	"tradeview/render"
)

var bucketsCmd = &cobra.Command{
	Use:   "buckets",
	Short: "Time-of-day seasonality table",
	Long: `Group trades into fixed time-of-day buckets of their entry time and
print per-bucket sum, expectancy, trade count and hit rate.

Examples:
  tradeview buckets --width 15m
  tradeview buckets --width 1h --sort expectancy`,
	Args: cobra.NoArgs,
	RunE: runBuckets,
}

var (
	bucketWidth string
	bucketSort  string
)

func init() {
	rootCmd.AddCommand(bucketsCmd)

	bucketsCmd.Flags().StringVarP(&bucketWidth, "width", "w", "15m", "bucket width: 15m or 1h")
	bucketsCmd.Flags().StringVarP(&bucketSort, "sort", "s", "time", "display order: time or expectancy")
}

func runBuckets(cmd *cobra.Command, args []string) error {
	s, err := loadSeries()
	if err != nil {
		return err
	}

	var rows []analytics.BucketStat
	switch bucketWidth {
	case "15m":
		rows = analytics.Buckets15(s)
	case "1h":
		rows = analytics.Buckets1h(s)
	default:
		return fmt.Errorf("unknown bucket width %q (want 15m or 1h)", bucketWidth)
	}

	switch bucketSort {
	case "time":
		render.Buckets(os.Stdout, rows, false)
	case "expectancy":
		render.Buckets(os.Stdout, rows, true)
	default:
		return fmt.Errorf("unknown sort %q (want time or expectancy)", bucketSort)
	}
	return nil
}
