// Package store loads the precomputed equivalence table shipped with the
// binary and serves exact-key lookups from it. The table is decoded once
// at startup and never mutated.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"vdot/internal/table"
)

// ErrOutOfRange is returned when a fitness score falls outside the
// supported table. A normal outcome, not a failure: callers render the
// result as unavailable.
var ErrOutOfRange = errors.New("fitness score outside supported range")

// ErrMalformedTable is returned when the embedded blob cannot be decoded
// into a complete table. The blob is a build artifact, so this is fatal
// at startup.
var ErrMalformedTable = errors.New("malformed embedded table")

// Store is the in-memory precomputed table.
type Store struct {
	db *sql.DB
}

// Open decodes the embedded blob into an in-memory database.
func Open() (*Store, error) {
	return OpenBlob(tableBlob)
}

// OpenBlob decodes the given blob. Split out from Open so tests can load
// freshly generated tables.
func OpenBlob(blob string) (*Store, error) {
	dump, err := table.DecodeBlob(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTable, err)
	}

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Each pool connection would get its own :memory: database; pin the
	// pool to the one holding the table.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(string(dump)); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: executing table dump: %v", ErrMalformedTable, err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM vdot").Scan(&count); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", ErrMalformedTable, err)
	}
	if count != table.RowCount {
		db.Close()
		return nil, fmt.Errorf("%w: %d rows, want %d", ErrMalformedTable, count, table.RowCount)
	}

	return &Store{db: db}, nil
}

// Close releases the decoded table.
func (s *Store) Close() error {
	return s.db.Close()
}

// Lookup canonicalizes the fitness score to its grid index and returns
// the stored row. No interpolation between grid points: the table is
// precise to the nearest 0.1, not continuous.
func (s *Store) Lookup(vdot float64) (table.Row, error) {
	idx := table.GridIndex(vdot)
	if !table.InRange(idx) {
		return table.Row{}, ErrOutOfRange
	}

	row := table.Row{V: idx}
	err := s.db.QueryRow(`
		SELECT five_k_time, ten_k_time, hm_time, m_time,
			e_pace_1, e_pace_2, m_pace, t_pace, i_pace, r_pace
		FROM vdot WHERE v = ?`, idx).Scan(
		&row.FiveK, &row.TenK, &row.Half, &row.Marathon,
		&row.EasySlow, &row.EasyFast, &row.MarathonPace,
		&row.Threshold, &row.Interval, &row.Repetition,
	)
	if errors.Is(err, sql.ErrNoRows) {
		// Every in-range key exists in a well-formed table.
		return table.Row{}, fmt.Errorf("%w: missing grid index %d", ErrMalformedTable, idx)
	}
	if err != nil {
		return table.Row{}, fmt.Errorf("looking up grid index %d: %w", idx, err)
	}

	return row, nil
}

// Rows returns every row of the table in grid order.
func (s *Store) Rows() ([]table.Row, error) {
	rows, err := s.db.Query(`
		SELECT v, five_k_time, ten_k_time, hm_time, m_time,
			e_pace_1, e_pace_2, m_pace, t_pace, i_pace, r_pace
		FROM vdot ORDER BY v`)
	if err != nil {
		return nil, fmt.Errorf("reading table: %w", err)
	}
	defer rows.Close()

	result := make([]table.Row, 0, table.RowCount)
	for rows.Next() {
		var r table.Row
		err := rows.Scan(
			&r.V, &r.FiveK, &r.TenK, &r.Half, &r.Marathon,
			&r.EasySlow, &r.EasyFast, &r.MarathonPace,
			&r.Threshold, &r.Interval, &r.Repetition,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning table row: %w", err)
		}
		result = append(result, r)
	}

	return result, rows.Err()
}
