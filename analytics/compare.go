package analytics

import (
	"tradeview/journal"
)

// RunConfig is the full configuration of one comparison run: the active
// time-of-day windows and the daily stop thresholds. Values are assumed
// validated at the configuration boundary.
type RunConfig struct {
	Windows []Window
	Stops   StopConfig
}

// Comparison holds the four derived series of one run, each with its
// running cumulative total, and their scalar summaries.
type Comparison struct {
	Real       journal.Series
	StopOnly   journal.Series
	WindowOnly journal.Series
	Combined   journal.Series

	RealSummary       Summary
	StopOnlySummary   Summary
	WindowOnlySummary Summary
	CombinedSummary   Summary
}

// Run produces the four comparison series from one input series and one
// configuration: the input itself, the daily-stop truncation, the window
// filter, and the window filter followed by the daily stop. For any fixed
// configuration, Combined can never hold more trades than WindowOnly, which
// can never hold more than Real.
func Run(s journal.Series, cfg RunConfig) Comparison {
	real := journal.WithRunningTotal(s)
	stopOnly := SimulateDailyStop(real, cfg.Stops)
	windowOnly := journal.WithRunningTotal(FilterWindows(real, cfg.Windows))
	combined := SimulateDailyStop(windowOnly, cfg.Stops)

	return Comparison{
		Real:       real,
		StopOnly:   stopOnly,
		WindowOnly: windowOnly,
		Combined:   combined,

		RealSummary:       Summarize(real),
		StopOnlySummary:   Summarize(stopOnly),
		WindowOnlySummary: Summarize(windowOnly),
		CombinedSummary:   Summarize(combined),
	}
}
