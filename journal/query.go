package journal

import (
	"time"
)

// ListTradesBetween returns trades whose entry_time is within [start, end),
// ordered ascending by entry time. The result satisfies the same sort
// invariant as a freshly normalized series.
func (st *Store) ListTradesBetween(start, end time.Time) (Series, error) {
	rows, err := st.db.Query(`
		SELECT asset, side, entry_time, exit_time, entry_price, exit_price, elapsed_sec, gross_points, cost, net_points
		FROM trades
		WHERE entry_time >= ? AND entry_time < ?
		ORDER BY entry_time ASC`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out Series
	for rows.Next() {
		var t Trade
		var elapsedSec int64
		if err := rows.Scan(
			&t.Asset,
			&t.Side,
			&t.EntryTime,
			&t.ExitTime,
			&t.EntryPrice,
			&t.ExitPrice,
			&elapsedSec,
			&t.GrossPoints,
			&t.Cost,
			&t.NetPoints,
		); err != nil {
			return nil, err
		}
		t.Elapsed = time.Duration(elapsedSec) * time.Second
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAll returns every imported trade ordered ascending by entry time.
func (st *Store) ListAll() (Series, error) {
	lo := time.Time{}
	hi := time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC)
	return st.ListTradesBetween(lo, hi)
}
