package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Store is a local SQLite copy of a trade log. It exists so a log imported
// once can be re-read across sessions without re-parsing the CSV export.
type Store struct {
	db *sql.DB
}

func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Import inserts a normalized series under the given run ID. The series is
// written as-is; running totals are not persisted (they are derived state).
func (st *Store) Import(runID string, s Series) error {
	tx, err := st.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO trades
		(run_id, asset, side, entry_time, exit_time, entry_price, exit_price, elapsed_sec, gross_points, cost, net_points)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, t := range s {
		_, err := stmt.Exec(
			runID, t.Asset, t.Side, t.EntryTime, t.ExitTime,
			t.EntryPrice, t.ExitPrice, int64(t.Elapsed.Seconds()),
			t.GrossPoints, t.Cost, t.NetPoints,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("insert trade: %w", err)
		}
	}

	return tx.Commit()
}

func (st *Store) Close() error {
	return st.db.Close()
}
