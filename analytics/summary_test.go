package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tradeview/journal"
)

// trade builds a record at the given wall-clock timestamp with the given
// net result.
func trade(ts string, net float64) journal.Trade {
	t, err := time.Parse("2006-01-02 15:04:05", ts)
	if err != nil {
		panic(err)
	}
	return journal.Trade{
		EntryTime:   t,
		Asset:       "WIN",
		Side:        "long",
		GrossPoints: net + journal.FixedCost,
		Cost:        journal.FixedCost,
		NetPoints:   net,
	}
}

func TestSummarizeCountMatchesLength(t *testing.T) {
	t.Parallel()

	s := journal.Series{
		trade("2024-01-02 09:00:00", 10),
		trade("2024-01-02 09:15:00", -5),
		trade("2024-01-02 09:30:00", 0),
	}

	sum := Summarize(s)
	assert.Equal(t, len(s), sum.Count)
}

func TestSummarizeNetBalance(t *testing.T) {
	t.Parallel()

	s := journal.Series{
		trade("2024-01-02 09:00:00", 50),
		trade("2024-01-02 10:00:00", -20),
		trade("2024-01-02 11:00:00", 0),
		trade("2024-01-03 09:00:00", 12.5),
	}

	sum := Summarize(s)
	assert.InDelta(t, 42.5, sum.NetBalance, 1e-9)
	assert.InDelta(t, 62.5/20.0, sum.ProfitFactor, 1e-9)
}

func TestSummarizeProfitFactorInfiniteWithoutLosses(t *testing.T) {
	t.Parallel()

	s := journal.Series{
		trade("2024-01-02 09:00:00", 50),
		trade("2024-01-02 10:00:00", 0),
	}

	sum := Summarize(s)
	assert.True(t, math.IsInf(sum.ProfitFactor, 1))

	// A single losing trade makes the factor finite again.
	sum = Summarize(append(s, trade("2024-01-02 11:00:00", -1)))
	assert.False(t, math.IsInf(sum.ProfitFactor, 1))
}

func TestSummarizeEmptySeries(t *testing.T) {
	t.Parallel()

	sum := Summarize(nil)
	assert.Equal(t, 0, sum.Count)
	assert.Equal(t, 0.0, sum.NetBalance)
	assert.True(t, math.IsInf(sum.ProfitFactor, 1))
}

func TestOverviewGrossBreakdown(t *testing.T) {
	t.Parallel()

	s := journal.Series{
		trade("2024-01-02 09:00:00", 47.5),  // gross 50
		trade("2024-01-02 10:00:00", -22.5), // gross -20
		trade("2024-01-02 11:00:00", -2.5),  // gross 0
	}

	o := OverviewOf(s)
	assert.Equal(t, 3, o.Trades)
	assert.Equal(t, 1, o.Wins)
	assert.Equal(t, 1, o.Losses)
	assert.InDelta(t, 50.0, o.GrossProfit, 1e-9)
	assert.InDelta(t, -20.0, o.GrossLoss, 1e-9)
	assert.InDelta(t, 30.0, o.GrossTotal, 1e-9)
	assert.InDelta(t, 7.5, o.TotalCosts, 1e-9)
	assert.InDelta(t, 22.5, o.NetBalance, 1e-9)
	assert.InDelta(t, 100.0/3.0, o.WinPct, 1e-9)
}
