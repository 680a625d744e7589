package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skystack/flightform/internal/domain"
)

// PostgresStore persists reports in PostgreSQL through a pgx pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// OpenPostgres connects to the database and verifies the connection.
func OpenPostgres(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}

// NewPostgresStore creates a report store over an open pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Append(ctx context.Context, report domain.Report) error {
	doc, err := encodeDocument(report)
	if err != nil {
		return &StoreError{Op: "Append", Key: report.ID, Err: err}
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO reports (id, name, equipment_id, created_at, document)
		 VALUES ($1, $2, $3, $4, $5)`,
		report.ID, report.Name, report.Equipment.ID, encodeTime(report.CreatedAt), doc,
	)
	if err != nil {
		return &StoreError{Op: "Append", Key: report.ID, Err: err}
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]domain.Report, error) {
	rows, err := s.pool.Query(ctx,
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

func (s *PostgresStore) Get(ctx context.Context, id string) (domain.Report, error) {
	var doc string
	err := s.pool.QueryRow(ctx,
		`SELECT document FROM reports WHERE id = $1`, id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
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

func (s *PostgresStore) Remove(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return &StoreError{Op: "Remove", Key: id, Err: err}
	}
	return nil
}
