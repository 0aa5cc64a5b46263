// journal/trade.go
package journal

import (
	"slices"
	"time"
)

// FixedCost is the per-trade operating cost in points, subtracted from the
// gross result during normalization.
const FixedCost = 2.5

// Trade is one closed operation from the trade log. Point values are index
// points, not currency. Records are never mutated after normalization.
type Trade struct {
	EntryTime   time.Time
	ExitTime    time.Time
	Asset       string
	Side        string
	EntryPrice  float64
	ExitPrice   float64
	Elapsed     time.Duration
	GrossPoints float64
	Cost        float64
	NetPoints   float64

	// Running is the cumulative net total up to and including this trade.
	// Populated on derived series by WithRunningTotal for charting.
	Running float64
}

// EntryMinute returns the trade's entry time-of-day as minutes since
// midnight (0..1439), independent of calendar date.
func (t Trade) EntryMinute() int {
	return t.EntryTime.Hour()*60 + t.EntryTime.Minute()
}

// EntryDate returns the entry timestamp truncated to its calendar date.
func (t Trade) EntryDate() time.Time {
	y, m, d := t.EntryTime.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.EntryTime.Location())
}

// Series is an ordered sequence of trades, ascending by entry time.
// Operations return new slices; a Series is treated as read-only shared data.
type Series []Trade

// Clone returns an independent copy of the series.
func (s Series) Clone() Series {
	out := make(Series, len(s))
	copy(out, s)
	return out
}

// NetSum returns the sum of net points over the series.
func (s Series) NetSum() float64 {
	var sum float64
	for _, t := range s {
		sum += t.NetPoints
	}
	return sum
}

// sortByEntry stable-sorts a series ascending by entry timestamp in place.
// Callers sort fresh copies only.
func sortByEntry(s Series) {
	slices.SortStableFunc(s, func(a, b Trade) int {
		return a.EntryTime.Compare(b.EntryTime)
	})
}

// WithRunningTotal returns a copy of s with the cumulative net total
// recomputed across the whole series.
func WithRunningTotal(s Series) Series {
	out := s.Clone()
	var total float64
	for i := range out {
		total += out[i].NetPoints
		out[i].Running = total
	}
	return out
}

// FilterDateRange keeps trades whose entry calendar date lies in [from, to],
// inclusive at both ends. The time-of-day parts of from and to are ignored.
func FilterDateRange(s Series, from, to time.Time) Series {
	lo := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	hi := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location()).AddDate(0, 0, 1)

	out := make(Series, 0, len(s))
	for _, t := range s {
		if !t.EntryTime.Before(lo) && t.EntryTime.Before(hi) {
			out = append(out, t)
		}
	}
	return out
}
