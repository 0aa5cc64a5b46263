package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := OpenStore(filepath.Join(t.TempDir(), "trades.sqlite"))
	assert.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, st.Close()) })
	return st
}

func TestStoreImportRoundTrip(t *testing.T) {
	t.Parallel()

	st := openTestStore(t)

	in := Series{
		at("2024-01-02 09:00:00", 10),
		at("2024-01-02 10:30:00", -4),
		at("2024-01-03 09:15:00", 1.5),
	}
	in[0].Asset, in[0].Side = "WIN", "long"
	in[0].EntryPrice, in[0].ExitPrice = 128000, 128100
	in[0].Elapsed = 3 * time.Minute
	in[0].ExitTime = in[0].EntryTime.Add(3 * time.Minute)

	assert.NoError(t, st.Import("RUN1", in))

	out, err := st.ListAll()
	assert.NoError(t, err)
	assert.Len(t, out, 3)

	assert.Equal(t, "WIN", out[0].Asset)
	assert.Equal(t, "long", out[0].Side)
	assert.Equal(t, 128000.0, out[0].EntryPrice)
	assert.Equal(t, 3*time.Minute, out[0].Elapsed)
	for i := range in {
		assert.True(t, out[i].EntryTime.Equal(in[i].EntryTime))
		assert.InDelta(t, in[i].NetPoints, out[i].NetPoints, 1e-9)
		assert.InDelta(t, in[i].GrossPoints, out[i].GrossPoints, 1e-9)
		assert.Equal(t, FixedCost, out[i].Cost)
	}
}

func TestListTradesBetweenIsHalfOpenAndOrdered(t *testing.T) {
	t.Parallel()

	st := openTestStore(t)

	in := Series{
		at("2024-01-02 09:00:00", 1),
		at("2024-01-03 09:00:00", 2),
		at("2024-01-04 09:00:00", 3),
	}
	assert.NoError(t, st.Import("RUN1", in))

	start := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 4, 9, 0, 0, 0, time.UTC)

	out, err := st.ListTradesBetween(start, end)
	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.InDelta(t, 1.0, out[0].NetPoints, 1e-9)
	assert.InDelta(t, 2.0, out[1].NetPoints, 1e-9)
}

func TestStoreEmpty(t *testing.T) {
	t.Parallel()

	st := openTestStore(t)
	out, err := st.ListAll()
	assert.NoError(t, err)
	assert.Empty(t, out)
}
