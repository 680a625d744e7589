package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/skystack/flightform/internal/domain"
)

// SQLiteStore persists reports in an embedded sqlite database via the
// pure-Go modernc driver.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if necessary) the database file. The
// caller is responsible for running migrations and closing the handle.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// The driver is in-process; a single connection avoids SQLITE_BUSY
	// under concurrent writers.
	db.SetMaxOpenConns(1)
	return db, nil
}

// NewSQLiteStore creates a report store over an open sqlite handle.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Append(ctx context.Context, report domain.Report) error {
	doc, err := encodeDocument(report)
	if err != nil {
		return &StoreError{Op: "Append", Key: report.ID, Err: err}
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO reports (id, name, equipment_id, created_at, document)
		 VALUES (?, ?, ?, ?, ?)`,
		report.ID, report.Name, report.Equipment.ID, encodeTime(report.CreatedAt), doc,
	)
	if err != nil {
		return &StoreError{Op: "Append", Key: report.ID, Err: err}
	}
	return nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]domain.Report, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT document FROM reports ORDER BY created_at, id`)
	if err != nil {
		return nil, &StoreError{Op: "List", Err: err}
	}
	defer rows.Close()

	var out []domain.Report
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, &StoreError{Op: "List", Err: err}
		}
		report, err := decodeDocument(doc)
		if err != nil {
			return nil, &StoreError{Op: "List", Err: err}
		}
		out = append(out, report)
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "List", Err: err}
	}
	return out, nil
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (domain.Report, error) {
	var doc string
	err := s.db.QueryRowContext(ctx,
		`SELECT document FROM reports WHERE id = ?`, id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Report{}, &StoreError{Op: "Get", Key: id, Err: ErrNotFound}
	}
	if err != nil {
		return domain.Report{}, &StoreError{Op: "Get", Key: id, Err: err}
	}

	report, err := decodeDocument(doc)
	if err != nil {
		return domain.Report{}, &StoreError{Op: "Get", Key: id, Err: err}
	}
	return report, nil
}

func (s *SQLiteStore) Remove(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM reports WHERE id = ?`, id)
	if err != nil {
		return &StoreError{Op: "Remove", Key: id, Err: err}
	}
	return nil
}
