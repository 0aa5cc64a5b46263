package journal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const sampleLog = `date,entry_time,exit_time,asset,side,entry_price,exit_price,elapsed,gross_points
2024-01-03,10:15:00,10:20:00,WIN,short,129500,129450,00:05:00,50.0
2024-01-02,09:01:30,09:04:10,WIN,long,128000,128100,00:02:40,100.0
not-a-date,09:00:00,09:05:00,WIN,long,1,2,00:05:00,10.0
2024-01-02,,09:05:00,WIN,long,1,2,00:05:00,10.0
2024-01-02,09:30:00,09:31:00,WIN,long,128200,128190,00:01:00,-10.0
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trades.csv")
	assert.NoError(t, os.WriteFile(path, []byte(sampleLog), 0644))
	return path
}

func TestReadFileDropsUnparseableEntryTimestamps(t *testing.T) {
	t.Parallel()

	s, dropped, err := ReadFile(writeSample(t))
	assert.NoError(t, err)
	assert.Equal(t, 2, dropped)
	assert.Len(t, s, 3)
}

func TestReadFileSortsAscendingByEntryTime(t *testing.T) {
	t.Parallel()

	s, _, err := ReadFile(writeSample(t))
	assert.NoError(t, err)

	for i := 1; i < len(s); i++ {
		assert.False(t, s[i].EntryTime.Before(s[i-1].EntryTime))
	}
	assert.Equal(t, time.Date(2024, 1, 2, 9, 1, 30, 0, time.UTC), s[0].EntryTime)
	assert.Equal(t, time.Date(2024, 1, 3, 10, 15, 0, 0, time.UTC), s[2].EntryTime)
}

func TestNormalizeDerivesNetFromFixedCost(t *testing.T) {
	t.Parallel()

	s, _, err := ReadFile(writeSample(t))
	assert.NoError(t, err)

	for _, tr := range s {
		assert.Equal(t, FixedCost, tr.Cost)
		assert.InDelta(t, tr.GrossPoints-FixedCost, tr.NetPoints, 1e-9)
	}
	assert.InDelta(t, 97.5, s[0].NetPoints, 1e-9)
	assert.InDelta(t, -12.5, s[1].NetPoints, 1e-9)
}

func TestNormalizeFields(t *testing.T) {
	t.Parallel()

	s, _, err := ReadFile(writeSample(t))
	assert.NoError(t, err)

	first := s[0]
	assert.Equal(t, "WIN", first.Asset)
	assert.Equal(t, "long", first.Side)
	assert.Equal(t, 128000.0, first.EntryPrice)
	assert.Equal(t, 128100.0, first.ExitPrice)
	assert.Equal(t, 2*time.Minute+40*time.Second, first.Elapsed)
	assert.Equal(t, time.Date(2024, 1, 2, 9, 4, 10, 0, time.UTC), first.ExitTime)
}

func TestNormalizeAcceptsAlternateLayouts(t *testing.T) {
	t.Parallel()

	rows := []*Row{
		{Date: "02/01/2024", EntryTime: "09:15", GrossPoints: "12,5"},
	}

	s, dropped := Normalize(rows)
	assert.Equal(t, 0, dropped)
	assert.Len(t, s, 1)
	assert.Equal(t, time.Date(2024, 1, 2, 9, 15, 0, 0, time.UTC), s[0].EntryTime)
	assert.InDelta(t, 12.5-FixedCost, s[0].NetPoints, 1e-9)
}

func TestNormalizeEmpty(t *testing.T) {
	t.Parallel()

	s, dropped := Normalize(nil)
	assert.Empty(t, s)
	assert.Equal(t, 0, dropped)
}
