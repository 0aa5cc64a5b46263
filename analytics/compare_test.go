package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tradeview/journal"
)

func compareInput() (journal.Series, RunConfig) {
	s := journal.Series{
		trade("2024-01-02 09:05:00", 40),
		trade("2024-01-02 09:40:00", -60),
		trade("2024-01-02 11:00:00", 25), // outside the window
		trade("2024-01-02 14:00:00", -60),
		trade("2024-01-03 09:10:00", -60),
		trade("2024-01-03 09:30:00", -60), // loss limit inside window
		trade("2024-01-03 10:00:00", 80),
	}
	cfg := RunConfig{
		Windows: []Window{
			{StartMin: 9 * 60, EndMin: 10*60 + 45, Active: true},
			{StartMin: 13*60 + 30, EndMin: 15*60 + 30, Active: true},
		},
		Stops: StopConfig{LossLimit: 100, GainTarget: 1000, MaxConsecutiveLosses: 5},
	}
	return s, cfg
}

func TestRunSeriesCountsAreMonotone(t *testing.T) {
	t.Parallel()

	s, cfg := compareInput()
	c := Run(s, cfg)

	assert.Equal(t, len(s), c.RealSummary.Count)
	assert.LessOrEqual(t, c.WindowOnlySummary.Count, c.RealSummary.Count)
	assert.LessOrEqual(t, c.CombinedSummary.Count, c.WindowOnlySummary.Count)
	assert.LessOrEqual(t, c.StopOnlySummary.Count, c.RealSummary.Count)
}

func TestRunAttachesRunningTotals(t *testing.T) {
	t.Parallel()

	s, cfg := compareInput()
	c := Run(s, cfg)

	for _, series := range []journal.Series{c.Real, c.StopOnly, c.WindowOnly, c.Combined} {
		var total float64
		for _, tr := range series {
			total += tr.NetPoints
			assert.InDelta(t, total, tr.Running, 1e-9)
		}
	}
}

func TestRunIsDeterministic(t *testing.T) {
	t.Parallel()

	s, cfg := compareInput()
	a := Run(s, cfg)
	b := Run(s, cfg)

	assert.Equal(t, a, b)
}

func TestRunDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	s, cfg := compareInput()
	before := s.Clone()
	Run(s, cfg)

	assert.Equal(t, before, s)
}
