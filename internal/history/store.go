package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Visit is one recorded link activation.
type Visit struct {
	ID     int64
	LinkID string
	Title  string
	SeenAt time.Time
}

// TitleCount aggregates visits per destination title. Link ids rotate
// per process, titles are stable across runs.
type TitleCount struct {
	Title  string
	Visits int
}

// Open opens sqlite with sensible defaults.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)
	return db, nil
}

// Now returns UTC time truncated to seconds (consistent with SQLite default).
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// Store handles visit rows.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) Record(ctx context.Context, linkID, title string, at time.Time) error {
	_, err := s.db.ExecContext(ctx, `
	INSERT INTO visits(link_id, title, visited_at) VALUES (?, ?, ?);
	`, linkID, title, at.UTC())
	return err
}

func (s *Store) Recent(ctx context.Context, limit int) ([]Visit, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
	SELECT id, link_id, title, visited_at FROM visits
	ORDER BY visited_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Visit
	for rows.Next() {
		var v Visit
		if err := rows.Scan(&v.ID, &v.LinkID, &v.Title, &v.SeenAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *Store) CountsByTitle(ctx context.Context) ([]TitleCount, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT title, COUNT(*) AS visits FROM visits
	GROUP BY title ORDER BY visits DESC, title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []TitleCount
	for rows.Next() {
		var c TitleCount
		if err := rows.Scan(&c.Title, &c.Visits); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM visits`)
	return err
}
