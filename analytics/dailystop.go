package analytics

import (
	"slices"
	"time"

	"tradeview/journal"
)

// StopConfig holds the daily risk thresholds. The simulator performs no
// clamping or validation; thresholds of zero are taken as given (a gain
// target of 0 stops after the first trade that leaves the day non-negative).
type StopConfig struct {
	LossLimit            float64
	GainTarget           float64
	MaxConsecutiveLosses int
}

// dayState is the per-date replay state. A day starts accumulating and
// flips to stopped once any threshold is crossed; the trade that crosses it
// is itself kept.
type dayState struct {
	balance float64
	streak  int
	stopped bool
}

func (d *dayState) commit(net float64, cfg StopConfig) {
	d.balance += net
	if net < 0 {
		d.streak++
	} else {
		d.streak = 0
	}

	if d.balance >= cfg.GainTarget ||
		d.balance <= -cfg.LossLimit ||
		d.streak >= cfg.MaxConsecutiveLosses {
		d.stopped = true
	}
}

// SimulateDailyStop replays each calendar day of the series in order and
// truncates the day once the running balance reaches the gain target, falls
// to the loss limit, or the consecutive-loss streak hits its cap. Counters
// reset on every new date. The kept trades are returned re-sorted ascending
// by entry time with the cumulative net total recomputed across the whole
// result.
func SimulateDailyStop(s journal.Series, cfg StopConfig) journal.Series {
	byDay := make(map[time.Time]journal.Series)
	for _, t := range s {
		d := t.EntryDate()
		byDay[d] = append(byDay[d], t)
	}

	days := make([]time.Time, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	slices.SortFunc(days, func(a, b time.Time) int { return a.Compare(b) })

	kept := make(journal.Series, 0, len(s))
	for _, d := range days {
		group := byDay[d].Clone()
		slices.SortStableFunc(group, func(a, b journal.Trade) int {
			return a.EntryTime.Compare(b.EntryTime)
		})

		var st dayState
		for _, t := range group {
			kept = append(kept, t)
			st.commit(t.NetPoints, cfg)
			if st.stopped {
				break
			}
		}
	}

	slices.SortStableFunc(kept, func(a, b journal.Trade) int {
		return a.EntryTime.Compare(b.EntryTime)
	})
	return journal.WithRunningTotal(kept)
}
