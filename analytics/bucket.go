package analytics

import (
	"fmt"

	"tradeview/journal"
)

// Bucket widths in minutes of the two fixed granularities.
const (
	Width15m = 15
	Width1h  = 60
)

// BucketStat is one row of a time-of-day seasonality table. On 15-minute
// rows, ParentSum and ParentExpectancy carry the enclosing 1-hour bucket's
// values for overlay-style presentation.
type BucketStat struct {
	Index int
	Label string

	Sum        float64
	Expectancy float64
	Count      int
	HitRate    float64

	ParentSum        float64
	ParentExpectancy float64
}

// bucketAcc accumulates what expectancy and hit rate need per bucket.
type bucketAcc struct {
	count   int
	wins    int
	losses  int
	sum     float64
	gainSum float64
	lossAbs float64
}

func (b *bucketAcc) add(net float64) {
	b.count++
	b.sum += net
	switch {
	case net > 0:
		b.wins++
		b.gainSum += net
	case net < 0:
		b.losses++
		b.lossAbs += -net
	}
}

// expectancy is win_rate*avg_gain − loss_rate*avg_loss. Trades with an
// exactly zero net count toward the loss rate but contribute no magnitude.
// An empty bucket yields 0.
func (b *bucketAcc) expectancy() float64 {
	if b.count == 0 {
		return 0
	}
	winRate := float64(b.wins) / float64(b.count)
	lossRate := 1 - winRate

	var avgGain, avgLoss float64
	if b.wins > 0 {
		avgGain = b.gainSum / float64(b.wins)
	}
	if b.losses > 0 {
		avgLoss = b.lossAbs / float64(b.losses)
	}
	return winRate*avgGain - lossRate*avgLoss
}

func (b *bucketAcc) hitRate() float64 {
	if b.count == 0 {
		return 0
	}
	return float64(b.wins) / float64(b.count) * 100
}

// Buckets1h groups trades by the hour of their entry time-of-day. The table
// is dense: all 24 buckets are present, chronological, empty ones zeroed.
func Buckets1h(s journal.Series) []BucketStat {
	return bucketize(s, Width1h)
}

// Buckets15 groups trades into 15-minute entry-time buckets (96 rows,
// chronological) and annotates each row with its parent 1-hour bucket's sum
// and expectancy. An empty 15-minute bucket still carries its parent's
// values; both default to 0 when the hour is empty too.
func Buckets15(s journal.Series) []BucketStat {
	out := bucketize(s, Width15m)
	hours := bucketize(s, Width1h)

	for i := range out {
		parent := hours[out[i].Index/4]
		out[i].ParentSum = parent.Sum
		out[i].ParentExpectancy = parent.Expectancy
	}
	return out
}

func bucketize(s journal.Series, widthMin int) []BucketStat {
	n := (24 * 60) / widthMin
	accs := make([]bucketAcc, n)
	for _, t := range s {
		accs[t.EntryMinute()/widthMin].add(t.NetPoints)
	}

	out := make([]BucketStat, n)
	for i := range accs {
		out[i] = BucketStat{
			Index:      i,
			Label:      bucketLabel(i, widthMin),
			Sum:        accs[i].sum,
			Expectancy: accs[i].expectancy(),
			Count:      accs[i].count,
			HitRate:    accs[i].hitRate(),
		}
	}
	return out
}

// bucketLabel renders "HH:MM–HH:MM" from the bucket's first and last minute.
func bucketLabel(index, widthMin int) string {
	start := index * widthMin
	end := start + widthMin - 1
	return fmt.Sprintf("%02d:%02d–%02d:%02d", start/60, start%60, end/60, end%60)
}
