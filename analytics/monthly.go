package analytics

import (
	"slices"
	"strings"

	"tradeview/journal"
)

// MonthNet is the net total of one "2006-01" month.
type MonthNet struct {
	Month string
	Net   float64
}

// MonthlyNet sums net points per calendar month of entry, ascending by
// month key. Only months with trades appear.
func MonthlyNet(s journal.Series) []MonthNet {
	sums := make(map[string]float64)
	for _, t := range s {
		sums[t.EntryTime.Format("2006-01")] += t.NetPoints
	}

	out := make([]MonthNet, 0, len(sums))
	for m, net := range sums {
		out = append(out, MonthNet{Month: m, Net: net})
	}
	slices.SortFunc(out, func(a, b MonthNet) int {
		return strings.Compare(a.Month, b.Month)
	})
	return out
}

// MonthComparison is one month of the four-series comparison table.
type MonthComparison struct {
	Month      string
	Real       float64
	StopOnly   float64
	WindowOnly float64
	Combined   float64
}

// CompareMonthly outer-joins the monthly net totals of the four comparison
// series. A month present in any series appears once; series without trades
// that month contribute 0.
func CompareMonthly(real, stopOnly, windowOnly, combined journal.Series) []MonthComparison {
	rows := make(map[string]*MonthComparison)

	row := func(m string) *MonthComparison {
		r, ok := rows[m]
		if !ok {
			r = &MonthComparison{Month: m}
			rows[m] = r
		}
		return r
	}

	for _, mn := range MonthlyNet(real) {
		row(mn.Month).Real = mn.Net
	}
	for _, mn := range MonthlyNet(stopOnly) {
		row(mn.Month).StopOnly = mn.Net
	}
	for _, mn := range MonthlyNet(windowOnly) {
		row(mn.Month).WindowOnly = mn.Net
	}
	for _, mn := range MonthlyNet(combined) {
		row(mn.Month).Combined = mn.Net
	}

	out := make([]MonthComparison, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r)
	}
	slices.SortFunc(out, func(a, b MonthComparison) int {
		return strings.Compare(a.Month, b.Month)
	})
	return out
}

// DayMean is the average net result of trades entered on one day of the
// month (1..31).
type DayMean struct {
	Day   int
	Mean  float64
	Count int
}

// DayOfMonthMean averages net points per day-of-month of entry, ascending
// by day. Days without trades are omitted.
func DayOfMonthMean(s journal.Series) []DayMean {
	var sums [32]float64
	var counts [32]int
	for _, t := range s {
		d := t.EntryTime.Day()
		sums[d] += t.NetPoints
		counts[d]++
	}

	var out []DayMean
	for d := 1; d <= 31; d++ {
		if counts[d] == 0 {
			continue
		}
		out = append(out, DayMean{
			Day:   d,
			Mean:  sums[d] / float64(counts[d]),
			Count: counts[d],
		})
	}
	return out
}
