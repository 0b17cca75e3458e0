package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DefaultDSN keeps the event log in memory for the lifetime of the process.
const DefaultDSN = "file:ocs?mode=memory&cache=shared"

// InitDB opens the SQLite database and ensures tables exist.
func InitDB(dsn string) (*sql.DB, error) {
	if dsn == "" {
		dsn = DefaultDSN
	}
	db, err := sql.Open(sqliteDriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", dsn, err)
	}

	// A single long-lived connection also keeps an in-memory database alive.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA busy_timeout=5000: %w", err)
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

const sqliteDriverName = "sqlite"

const schemaAssetEvents = `
CREATE TABLE IF NOT EXISTS asset_events (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    id TEXT UNIQUE NOT NULL,
    occurred_at TIMESTAMP NOT NULL,
    level TEXT NOT NULL,
    asset_key TEXT NOT NULL,
    message TEXT NOT NULL
);
`

const indexAssetEventsTime = `CREATE INDEX IF NOT EXISTS idx_asset_events_occurred_at ON asset_events (occurred_at);`

const indexAssetEventsAsset = `CREATE INDEX IF NOT EXISTS idx_asset_events_asset ON asset_events (asset_key, seq);`

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{
		schemaAssetEvents,
		indexAssetEventsTime,
		indexAssetEventsAsset,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
