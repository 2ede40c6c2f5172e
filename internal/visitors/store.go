// Package visitors records privacy-conscious page visits in SQLite.
package visitors

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/leodahal4/portfolio/internal/visitors/migrations"
)

// Visit is one recorded page view. The client address is only ever stored
// hashed.
type Visit struct {
	ID        int64
	HashedIP  string
	UserAgent string
	Path      string
	VisitedAt time.Time
}

// PathCount is the visit count of one path.
type PathCount struct {
	Path   string
	Visits int64
}

// Stats summarises the recorded visits.
type Stats struct {
	TotalVisits    int64
	UniqueVisitors int64
	VisitsToday    int64
	VisitsThisWeek int64
	TopPaths       []PathCount
	RecentVisits   []Visit
}

const (
	topPathsLimit = 10
	recentLimit   = 50
)

// Store persists visits.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the SQLite database at path and applies migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}

	sqlDB, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, errors.Wrap(err, "open visitors store")
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, errors.Wrap(err, "ping visitors store")
	}
	if err := applyMigrations(context.Background(), sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, errors.Wrap(err, "migrate visitors store")
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the database. It is safe on a nil Store.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Record stores v. A zero VisitedAt is stamped with the current time.
func (s *Store) Record(ctx context.Context, v Visit) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return errors.New("visitors store is not configured")
	}
	if strings.TrimSpace(v.HashedIP) == "" {
		return errors.New("hashed ip is required")
	}
	if v.VisitedAt.IsZero() {
		v.VisitedAt = time.Now()
	}

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, visited_at) VALUES (?, ?, ?, ?)`,
		v.HashedIP, v.UserAgent, v.Path, v.VisitedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return errors.Wrap(err, "record visit")
	}
	return nil
}

// Stats aggregates visits relative to now.
func (s *Store) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	if s == nil || s.sqlDB == nil {
		return nil, errors.New("visitors store is not configured")
	}

	now = now.UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekAgo := now.Add(-7 * 24 * time.Hour)

	stats := &Stats{}
	counts := []struct {
		query string
		args  []any
		dest  *int64
	}{
		{`SELECT COUNT(*) FROM visitors`, nil, &stats.TotalVisits},
		{`SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil, &stats.UniqueVisitors},
		{`SELECT COUNT(*) FROM visitors WHERE visited_at >= ?`, []any{startOfDay.UnixMilli()}, &stats.VisitsToday},
		{`SELECT COUNT(*) FROM visitors WHERE visited_at >= ?`, []any{weekAgo.UnixMilli()}, &stats.VisitsThisWeek},
	}
	for _, c := range counts {
		if err := s.sqlDB.QueryRowContext(ctx, c.query, c.args...).Scan(c.dest); err != nil {
			return nil, errors.Wrap(err, "count visits")
		}
	}

	topPaths, err := s.topPaths(ctx)
	if err != nil {
		return nil, err
	}
	stats.TopPaths = topPaths

	recent, err := s.recent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	stats.RecentVisits = recent
	return stats, nil
}

func (s *Store) topPaths(ctx context.Context) ([]PathCount, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT path, COUNT(*) AS visits
FROM visitors
GROUP BY path
ORDER BY visits DESC, path ASC
LIMIT ?`, topPathsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "query top paths")
	}
	defer rows.Close()

	var out []PathCount
	for rows.Next() {
		var pc PathCount
		if err := rows.Scan(&pc.Path, &pc.Visits); err != nil {
			return nil, errors.Wrap(err, "scan top path")
		}
		out = append(out, pc)
	}
	return out, errors.Wrap(rows.Err(), "iterate top paths")
}

func (s *Store) recent(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, hashed_ip, user_agent, path, visited_at
FROM visitors
ORDER BY visited_at DESC, id DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "query recent visits")
	}
	defer rows.Close()

	var out []Visit
	for rows.Next() {
		var (
			v        Visit
			unixMill int64
		)
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &unixMill); err != nil {
			return nil, errors.Wrap(err, "scan recent visit")
		}
		v.VisitedAt = time.UnixMilli(unixMill).UTC()
		out = append(out, v)
	}
	return out, errors.Wrap(rows.Err(), "iterate recent visits")
}

// Cleanup deletes visits recorded before cutoff and returns how many were
// removed.
func (s *Store) Cleanup(ctx context.Context, cutoff time.Time) (int64, error) {
	if s == nil || s.sqlDB == nil {
		return 0, errors.New("visitors store is not configured")
	}
	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM visitors WHERE visited_at < ?`, cutoff.UTC().UnixMilli())
	if err != nil {
		return 0, errors.Wrap(err, "cleanup visits")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "cleanup rows affected")
	}
	return n, nil
}
