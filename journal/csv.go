// journal/csv.go
package journal

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
)

// Row is one raw line of the trade log, before normalization. Fields are
// strings so that dirty source data never fails the whole file; only the
// entry timestamp is load-bearing.
type Row struct {
	Date        string `csv:"date"`
	EntryTime   string `csv:"entry_time"`
	ExitTime    string `csv:"exit_time"`
	Asset       string `csv:"asset"`
	Side        string `csv:"side"`
	EntryPrice  string `csv:"entry_price"`
	ExitPrice   string `csv:"exit_price"`
	Elapsed     string `csv:"elapsed"`
	GrossPoints string `csv:"gross_points"`
}

var (
	dateLayouts = []string{"2006-01-02", "02/01/2006"}
	timeLayouts = []string{"15:04:05", "15:04"}
)

// ReadFile loads a CSV trade log and normalizes it into a Series. The
// second return value is the number of rows dropped for an unparseable
// entry timestamp.
func ReadFile(path string) (Series, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open trade log: %w", err)
	}
	defer f.Close()

	var rows []*Row
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, 0, fmt.Errorf("parse trade log %s: %w", path, err)
	}

	s, dropped := Normalize(rows)
	return s, dropped, nil
}

// Normalize converts raw rows into a canonical series: rows whose entry
// timestamp cannot be parsed are silently dropped, the result is
// stable-sorted ascending by entry time, and the net result is derived as
// gross minus the fixed per-trade cost.
func Normalize(rows []*Row) (Series, int) {
	out := make(Series, 0, len(rows))
	dropped := 0

	for _, r := range rows {
		if r == nil {
			dropped++
			continue
		}
		entry, err := parseTimestamp(r.Date, r.EntryTime)
		if err != nil {
			dropped++
			continue
		}

		gross := parsePoints(r.GrossPoints)
		t := Trade{
			EntryTime:   entry,
			Asset:       strings.TrimSpace(r.Asset),
			Side:        strings.TrimSpace(r.Side),
			EntryPrice:  parsePoints(r.EntryPrice),
			ExitPrice:   parsePoints(r.ExitPrice),
			Elapsed:     parseElapsed(r.Elapsed),
			GrossPoints: gross,
			Cost:        FixedCost,
			NetPoints:   gross - FixedCost,
		}
		if exit, err := parseTimestamp(r.Date, r.ExitTime); err == nil {
			t.ExitTime = exit
		}
		out = append(out, t)
	}

	sortByEntry(out)
	return out, dropped
}

func parseTimestamp(date, clock string) (time.Time, error) {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)

	for _, dl := range dateLayouts {
		for _, tl := range timeLayouts {
			ts, err := time.Parse(dl+" "+tl, date+" "+clock)
			if err == nil {
				return ts, nil
			}
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q %q", date, clock)
}

// parsePoints tolerates thousands separators and decimal commas from
// exported logs. Unparseable values become 0 rather than dropping the row.
func parsePoints(v string) float64 {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if strings.Contains(v, ",") && strings.Contains(v, ".") {
		v = strings.ReplaceAll(v, ".", "")
		v = strings.ReplaceAll(v, ",", ".")
	} else {
		v = strings.ReplaceAll(v, ",", ".")
	}
	x, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return x
}

func parseElapsed(v string) time.Duration {
	parts := strings.Split(strings.TrimSpace(v), ":")
	if len(parts) != 3 {
		return 0
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	s, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return 0
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second
}
