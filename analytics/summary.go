// Package analytics holds the pure transformations over a normalized trade
// series: summaries, time-of-day window filtering, the daily stop
// simulation and time-bucket seasonality tables. Every function reads its
// input and returns newly allocated output; nothing here keeps state.
package analytics

import (
	"math"

	"tradeview/journal"
)

// Summary is the per-series scalar block shown alongside each comparison
// series.
type Summary struct {
	Count        int
	NetBalance   float64
	ProfitFactor float64
}

// Summarize computes the scalar summary of a series. The net balance is
// built from the gain and loss sums separately (exact-zero trades fall on
// neither side), and the profit factor is +Inf when the loss sum is zero —
// including the empty series.
func Summarize(s journal.Series) Summary {
	var gains, losses float64
	for _, t := range s {
		switch {
		case t.NetPoints > 0:
			gains += t.NetPoints
		case t.NetPoints < 0:
			losses += t.NetPoints
		}
	}

	factor := math.Inf(1)
	if losses != 0 {
		factor = math.Abs(gains / losses)
	}

	return Summary{
		Count:        len(s),
		NetBalance:   gains + losses,
		ProfitFactor: factor,
	}
}

// Overview is the gross-result breakdown of a series: the headline block of
// the operations report. Unlike Summary it works on gross points, with
// costs carried as a separate line.
type Overview struct {
	GrossProfit float64
	GrossLoss   float64
	GrossTotal  float64
	TotalCosts  float64
	NetBalance  float64

	Trades int
	Wins   int
	Losses int
	WinPct float64
}

// OverviewOf computes the gross-result overview of a series.
func OverviewOf(s journal.Series) Overview {
	var o Overview
	o.Trades = len(s)

	for _, t := range s {
		o.TotalCosts += t.Cost
		switch {
		case t.GrossPoints > 0:
			o.GrossProfit += t.GrossPoints
			o.Wins++
		case t.GrossPoints < 0:
			o.GrossLoss += t.GrossPoints
			o.Losses++
		}
	}

	o.GrossTotal = o.GrossProfit + o.GrossLoss
	o.NetBalance = o.GrossTotal - o.TotalCosts
	if o.Trades > 0 {
		o.WinPct = float64(o.Wins) / float64(o.Trades) * 100
	}
	return o
}
