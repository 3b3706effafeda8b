// Package store archives rendered briefings in a local SQLite database so
// the HTTP API can serve the latest briefing per station after a restart.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/skybrief/metar-speech/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS briefings (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	station      TEXT NOT NULL,
	speech       TEXT NOT NULL,
	raw_report   TEXT NOT NULL DEFAULT '',
	observed_at  TIMESTAMP NOT NULL,
	generated_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_briefings_station ON briefings (station, generated_at DESC);
`

// Store persists briefings. It implements pipeline.BatchLoader for the
// archive leg of the fanout, and the HTTP adapter's BriefingStore for reads.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (creating if needed) the SQLite database at path and ensures
// the schema exists.
func Open(path string, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open briefing archive: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping briefing archive: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create archive schema: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadBatch inserts a batch of briefings in one transaction.
func (s *Store) LoadBatch(ctx context.Context, briefings []domain.Briefing) error {
	if len(briefings) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin archive tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO briefings (station, speech, raw_report, observed_at, generated_at)
		 VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare archive insert: %w", err)
	}
	defer stmt.Close()

	for _, b := range briefings {
		if _, err := stmt.ExecContext(ctx, b.Station, b.Speech, b.RawReport,
			b.ObservedAt.UTC(), b.GeneratedAt.UTC()); err != nil {
			return fmt.Errorf("insert briefing for %s: %w", b.Station, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit archive tx: %w", err)
	}

	s.logger.Debug("archived briefings", "count", len(briefings))
	return nil
}

// Latest returns the most recently generated briefing for a station, or
// domain.ErrNoBriefing when none has been archived.
func (s *Store) Latest(ctx context.Context, station string) (domain.Briefing, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT station, speech, raw_report, observed_at, generated_at
		 FROM briefings WHERE station = ?
		 ORDER BY generated_at DESC, id DESC LIMIT 1`, station)

	b, err := scanBriefing(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Briefing{}, domain.ErrNoBriefing
	}
	if err != nil {
		return domain.Briefing{}, fmt.Errorf("query latest briefing: %w", err)
	}
	return b, nil
}

// Recent returns up to limit briefings for a station, newest first.
func (s *Store) Recent(ctx context.Context, station string, limit int) ([]domain.Briefing, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT station, speech, raw_report, observed_at, generated_at
		 FROM briefings WHERE station = ?
		 ORDER BY generated_at DESC, id DESC LIMIT ?`, station, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent briefings: %w", err)
	}
	defer rows.Close()

	var briefings []domain.Briefing
	for rows.Next() {
		b, err := scanBriefing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan briefing row: %w", err)
		}
		briefings = append(briefings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate briefing rows: %w", err)
	}
	return briefings, nil
}

// Prune deletes briefings generated before the cutoff and returns the
// number removed.
func (s *Store) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM briefings WHERE generated_at < ?`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("prune briefings: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune briefings: %w", err)
	}
	if n > 0 {
		s.logger.Info("pruned archived briefings", "count", n, "cutoff", cutoff)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBriefing(row scanner) (domain.Briefing, error) {
	var b domain.Briefing
	err := row.Scan(&b.Station, &b.Speech, &b.RawReport, &b.ObservedAt, &b.GeneratedAt)
	return b, err
}
