// Package render turns analytics tables into plain-text reports for the
// CLI. It is a presentation collaborator only; nothing here feeds back into
// the analytics core.
package render

import (
	"fmt"
	"io"
	"math"
	"slices"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"tradeview/analytics"
)

var p = message.NewPrinter(language.English)

// pts formats a point value with grouped thousands and one decimal.
func pts(v float64) string {
	return p.Sprintf("%.1f", v)
}

// factor renders a profit factor; the no-loss case prints as "inf".
func factor(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.2f", v)
}

// Summary writes the scalar block of one series.
func Summary(w io.Writer, name string, s analytics.Summary) {
	fmt.Fprintf(w, "%s\n", name)
	fmt.Fprintf(w, "  trades:        %d\n", s.Count)
	fmt.Fprintf(w, "  net balance:   %s pts\n", pts(s.NetBalance))
	fmt.Fprintf(w, "  profit factor: %s\n", factor(s.ProfitFactor))
}

// Overview writes the gross-result breakdown of a series.
func Overview(w io.Writer, o analytics.Overview) {
	fmt.Fprintf(w, "gross profit:  %s pts\n", pts(o.GrossProfit))
	fmt.Fprintf(w, "gross loss:    %s pts\n", pts(o.GrossLoss))
	fmt.Fprintf(w, "gross total:   %s pts\n", pts(o.GrossTotal))
	fmt.Fprintf(w, "total costs:   %s pts\n", pts(o.TotalCosts))
	fmt.Fprintf(w, "net balance:   %s pts\n", pts(o.NetBalance))
	fmt.Fprintf(w, "trades:        %d (%d wins / %d losses, %.1f%% win)\n",
		o.Trades, o.Wins, o.Losses, o.WinPct)
}

// Buckets writes a bucket table. When byExpectancy is set the rows are
// re-sorted descending by expectancy for display; the underlying table
// stays chronological.
func Buckets(w io.Writer, rows []analytics.BucketStat, byExpectancy bool) {
	rows = slices.Clone(rows)
	if byExpectancy {
		slices.SortStableFunc(rows, func(a, b analytics.BucketStat) int {
			switch {
			case a.Expectancy > b.Expectancy:
				return -1
			case a.Expectancy < b.Expectancy:
				return 1
			}
			return 0
		})
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "window\tsum (pts)\texpectancy\ttrades\thit rate")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%d\t%.1f%%\n",
			r.Label, pts(r.Sum), r.Expectancy, r.Count, r.HitRate)
	}
	tw.Flush()
}

// Months writes the per-month net table.
func Months(w io.Writer, rows []analytics.MonthNet) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "month\tnet (pts)")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", r.Month, pts(r.Net))
	}
	tw.Flush()
}

// MonthComparison writes the four-series monthly table.
func MonthComparison(w io.Writer, rows []analytics.MonthComparison) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "month\treal\tstops\twindows\tstops+windows")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			r.Month, pts(r.Real), pts(r.StopOnly), pts(r.WindowOnly), pts(r.Combined))
	}
	tw.Flush()
}

// Days writes the day-of-month mean table.
func Days(w io.Writer, rows []analytics.DayMean) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "day\tmean (pts)\ttrades")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%.2f\t%d\n", r.Day, r.Mean, r.Count)
	}
	tw.Flush()
}

// Comparison writes the four scalar blocks of a run side by side.
func Comparison(w io.Writer, c analytics.Comparison) {
	Summary(w, "real", c.RealSummary)
	Summary(w, "stops only", c.StopOnlySummary)
	Summary(w, "windows only", c.WindowOnlySummary)
	Summary(w, "stops + windows", c.CombinedSummary)
}
