package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"ocs_dashboard/internal/models"

	"github.com/google/uuid"
)

// sqliteTimeLayout is used for both stored values and filter arguments so
// that text comparison in SQLite matches chronological order.
const sqliteTimeLayout = "2006-01-02 15:04:05"

const (
	insertEventSQL = `INSERT INTO asset_events (id, occurred_at, level, asset_key, message) VALUES (?, ?, ?, ?, ?)`
	selectEventSQL = `SELECT id, occurred_at, level, asset_key, message FROM asset_events`
	pruneBeforeSQL = `DELETE FROM asset_events WHERE occurred_at < ?`
	pruneKeepSQL   = `DELETE FROM asset_events WHERE seq NOT IN (SELECT seq FROM asset_events ORDER BY seq DESC LIMIT ?)`
)

type EventSQLite struct {
	db *sql.DB
}

func NewEventSQLite(db *sql.DB) *EventSQLite { return &EventSQLite{db: db} }

var _ EventRepo = (*EventSQLite)(nil)

// Append inserts a new event. If EventID or OccurredAt are empty, they're set.
func (r *EventSQLite) Append(ctx context.Context, e models.AssetEvent) error {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, insertEventSQL,
		e.EventID,
		formatTime(e.OccurredAt),
		normalizeLevel(string(e.Level)),
		strings.TrimSpace(e.AssetKey),
		e.Message,
	)
	if err != nil {
		return fmt.Errorf("insert event %s: %w", e.EventID, err)
	}
	return nil
}

// List returns matching events, most recent first.
func (r *EventSQLite) List(ctx context.Context, q EventQuery) ([]models.AssetEvent, error) {
	var (
		conds []string
		args  []any
	)

	if !q.From.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, formatTime(q.From))
	}
	if !q.To.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, formatTime(q.To))
	}
	if lvl := normalizeLevel(q.Level); lvl != "" {
		conds = append(conds, "level = ?")
		args = append(args, lvl)
	}
	if key := strings.TrimSpace(q.AssetKey); key != "" {
		conds = append(conds, "asset_key = ?")
		args = append(args, key)
	}

	query := selectEventSQL
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY seq DESC"
	if q.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, q.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	out := make([]models.AssetEvent, 0, 64)
	for rows.Next() {
		var (
			ev    models.AssetEvent
			level string
		)
		if err := rows.Scan(&ev.EventID, &ev.OccurredAt, &level, &ev.AssetKey, &ev.Message); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		ev.Level = models.Level(level)
		ev.OccurredAt = ev.OccurredAt.UTC()
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Prune removes events older than before and all but the newest keep entries.
// A zero before or a non-positive keep disables that rule.
func (r *EventSQLite) Prune(ctx context.Context, before time.Time, keep int) (int64, error) {
	var removed int64

	if !before.IsZero() {
		res, err := r.db.ExecContext(ctx, pruneBeforeSQL, formatTime(before))
		if err != nil {
			return removed, fmt.Errorf("prune events by age: %w", err)
		}
		n, _ := res.RowsAffected()
		removed += n
	}
	if keep > 0 {
		res, err := r.db.ExecContext(ctx, pruneKeepSQL, keep)
		if err != nil {
			return removed, fmt.Errorf("prune events by count: %w", err)
		}
		n, _ := res.RowsAffected()
		removed += n
	}
	return removed, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(sqliteTimeLayout)
}

func normalizeLevel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
