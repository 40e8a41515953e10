package history

import (
	"database/sql"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Record is a completed work session: when it ran, how long it lasted,
// and the activity log texts captured before clock-out cleared them.
type Record struct {
	ID        int64
	Username  string
	StartedAt time.Time
	StoppedAt time.Time
	Duration  time.Duration
	Logs      []string
}

// Repository is an append-only archive of finished sessions. It never
// restores live state; the menu screen only reads recent rows from it.
type Repository struct {
	db *sql.DB
}

func NewRepository(path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	repo := &Repository{db: db}
	if err := repo.init(); err != nil {
		db.Close()
		return nil, err
	}

	return repo, nil
}

func (r *Repository) init() error {
	query := `
	CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL,
		started_at TEXT NOT NULL,
		stopped_at TEXT NOT NULL,
		duration INTEGER NOT NULL,
		logs TEXT NOT NULL DEFAULT ''
	)
	`
	_, err := r.db.Exec(query)
	return err
}

func (r *Repository) Record(rec *Record) error {
	result, err := r.db.Exec(
		"INSERT INTO sessions (username, started_at, stopped_at, duration, logs) VALUES (?, ?, ?, ?, ?)",
		rec.Username,
		rec.StartedAt.Format(time.RFC3339),
		rec.StoppedAt.Format(time.RFC3339),
		int64(rec.Duration),
		strings.Join(rec.Logs, "\n"),
	)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	rec.ID = id
	return nil
}

// Recent returns up to limit finished sessions, newest first.
func (r *Repository) Recent(limit int) ([]Record, error) {
	rows, err := r.db.Query(
		"SELECT id, username, started_at, stopped_at, duration, logs FROM sessions ORDER BY stopped_at DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var startedAt, stoppedAt, logs string
		var duration int64
		if err := rows.Scan(&rec.ID, &rec.Username, &startedAt, &stoppedAt, &duration, &logs); err != nil {
			return nil, err
		}
		rec.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		rec.StoppedAt, _ = time.Parse(time.RFC3339, stoppedAt)
		rec.Duration = time.Duration(duration)
		if logs != "" {
			rec.Logs = strings.Split(logs, "\n")
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *Repository) Close() error {
	return r.db.Close()
}
