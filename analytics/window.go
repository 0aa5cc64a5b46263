package analytics

import (
	"tradeview/journal"
)

// Window is a time-of-day interval in minutes since midnight. An interval
// whose end precedes its start wraps past midnight.
type Window struct {
	StartMin int
	EndMin   int
	Active   bool
}

// Contains reports whether a time-of-day (minutes since midnight) falls in
// the window. Both bounds are inclusive. A wrapping window [22:00, 02:00]
// contains 23:00 and 01:00 but not 12:00.
func (w Window) Contains(minute int) bool {
	if w.EndMin >= w.StartMin {
		return minute >= w.StartMin && minute <= w.EndMin
	}
	return minute >= w.StartMin || minute <= w.EndMin
}

// FilterWindows keeps trades whose entry time-of-day falls in any active
// window. The first window is mandatory and always applied; up to two more
// are applied when their active flag is set. Entry-time order is preserved.
func FilterWindows(s journal.Series, windows []Window) journal.Series {
	out := make(journal.Series, 0, len(s))
	if len(windows) == 0 {
		return out
	}

	for _, t := range s {
		minute := t.EntryMinute()
		if windows[0].Contains(minute) {
			out = append(out, t)
			continue
		}
		for _, w := range windows[1:] {
			if w.Active && w.Contains(minute) {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// FilterWindow is the single-window entry point: the same operation with
// the optional windows deactivated.
func FilterWindow(s journal.Series, startMin, endMin int) journal.Series {
	return FilterWindows(s, []Window{{StartMin: startMin, EndMin: endMin, Active: true}})
}
