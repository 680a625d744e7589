// Package store persists saved flight reports.
//
// Three providers implement the ReportStore interface:
//   - MemoryStore: process-local storage for tests and throwaway runs
//   - SQLiteStore: embedded single-file database for development
//   - PostgresStore: shared database for production deployments
//
// Reports are written as immutable JSON documents alongside the few
// columns the list and filter queries need.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/skystack/flightform/internal/domain"
)

// Provider constants selectable via STORE_PROVIDER.
const (
	ProviderMemory   = "memory"
	ProviderSQLite   = "sqlite"
	ProviderPostgres = "postgres"
)

// ErrNotFound is returned when no report exists under the requested id.
var ErrNotFound = errors.New("report not found")

// ReportStore is the persistence boundary for saved reports. Append is
// the only write for report content; saved reports are never updated in
// place.
type ReportStore interface {
	// Append stores a new report. The report id must be unique.
	Append(ctx context.Context, report domain.Report) error

	// List returns all saved reports ordered by creation time, oldest
	// first.
	List(ctx context.Context) ([]domain.Report, error)

	// Get returns the report with the given id, or an error wrapping
	// ErrNotFound.
	Get(ctx context.Context, id string) (domain.Report, error)

	// Remove deletes the report with the given id. Removing an absent
	// id is a no-op.
	Remove(ctx context.Context, id string) error
}

// StoreError wraps store operation failures with the operation and the
// report key involved. It supports errors.Is via Unwrap.
type StoreError struct {
	Op  string
	Key string
	Err error
}

func (e *StoreError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("store %s %q: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err indicates a missing report.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
