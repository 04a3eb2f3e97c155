package lookup

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// History is a persistent log of CLI lookups backed by SQLite
type History struct {
	db *sql.DB
}

// Entry represents one recorded lookup
type Entry struct {
	ID        int64
	Endpoint  string
	Status    int // HTTP or envelope status, 0 if the request never got an answer
	Error     string
	Timestamp time.Time
}

// OK reports whether the lookup succeeded
func (e Entry) OK() bool {
	return e.Error == ""
}

// NewHistory opens (or creates) the history database at dbPath
func NewHistory(dbPath string) (*History, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection keeps in-memory databases consistent
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA journal_mode = WAL",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS lookups (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			endpoint TEXT NOT NULL,
			status INTEGER NOT NULL,
			error TEXT,
			timestamp INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_lookups_timestamp ON lookups(timestamp);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &History{db: db}, nil
}

// Close closes the database connection
func (h *History) Close() error {
	if h.db != nil {
		return h.db.Close()
	}
	return nil
}

// Add records a lookup
func (h *History) Add(ctx context.Context, entry Entry) (int64, error) {
	query := `
		INSERT INTO lookups (endpoint, status, error, timestamp)
		VALUES (?, ?, ?, ?)
	`

	var errText sql.NullString
	if entry.Error != "" {
		errText = sql.NullString{String: entry.Error, Valid: true}
	}

	result, err := h.db.ExecContext(ctx, query,
		entry.Endpoint,
		entry.Status,
		errText,
		entry.Timestamp.Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert lookup: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get insert id: %w", err)
	}

	return id, nil
}

// Recent returns the most recent lookups, newest first
// A limit of 0 returns every entry
func (h *History) Recent(ctx context.Context, limit int) ([]Entry, error) {
	query := `
		SELECT id, endpoint, status, COALESCE(error, ''), timestamp
		FROM lookups
		ORDER BY timestamp DESC, id DESC
	`

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := h.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query lookups: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var timestampUnix int64

		if err := rows.Scan(&e.ID, &e.Endpoint, &e.Status, &e.Error, &timestampUnix); err != nil {
			return nil, fmt.Errorf("failed to scan lookup: %w", err)
		}

		e.Timestamp = time.Unix(timestampUnix, 0)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lookups: %w", err)
	}

	return entries, nil
}

// Count returns the number of recorded lookups
func (h *History) Count(ctx context.Context) (int, error) {
	var count int
	if err := h.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM lookups").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count lookups: %w", err)
	}
	return count, nil
}

// Prune deletes lookups older than the given time
func (h *History) Prune(ctx context.Context, before time.Time) (int64, error) {
	result, err := h.db.ExecContext(ctx, "DELETE FROM lookups WHERE timestamp < ?", before.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to prune lookups: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows, nil
}
