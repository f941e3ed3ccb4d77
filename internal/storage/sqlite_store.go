package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fakhrymubarak/weather-widget/internal/config"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps one row per session in the saved_locations table.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path and applies the schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// a single connection serializes writers so concurrent saves never see SQLITE_BUSY
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		config.GetLogger().Warnw("could not set WAL mode", "error", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS saved_locations (
        session_id TEXT PRIMARY KEY,
        location TEXT NOT NULL,
        updated_at TEXT NOT NULL
    );`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Save(ctx context.Context, sessionID, location string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO saved_locations(session_id, location, updated_at) VALUES(?,?,?)
         ON CONFLICT(session_id) DO UPDATE SET location = excluded.location, updated_at = excluded.updated_at`,
		sessionID, location, time.Now().UTC().Format(time.RFC3339Nano))
	return err
}

func (s *SQLiteStore) LoadLast(ctx context.Context, sessionID string) (string, bool, error) {
	var location string
	err := s.db.QueryRowContext(ctx, `SELECT location FROM saved_locations WHERE session_id = ?`, sessionID).Scan(&location)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return location, location != "", nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
