package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/skystack/flightform/internal/domain"
)

// MemoryStore keeps reports in process memory. Append order is
// preserved, matching the creation-time ordering of the SQL providers
// as long as timestamps are monotonic.
type MemoryStore struct {
	mu      sync.RWMutex
	order   []string
	reports map[string]domain.Report
}

// NewMemoryStore creates an empty in-memory report store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		reports: make(map[string]domain.Report),
	}
}

func (s *MemoryStore) Append(ctx context.Context, report domain.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reports[report.ID]; ok {
		return &StoreError{Op: "Append", Key: report.ID, Err: fmt.Errorf("duplicate report id")}
	}

	s.reports[report.ID] = report.Clone()
	s.order = append(s.order, report.ID)
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Report, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.reports[id].Clone())
	}
	return out, nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report, ok := s.reports[id]
	if !ok {
		return domain.Report{}, &StoreError{Op: "Get", Key: id, Err: ErrNotFound}
	}
	return report.Clone(), nil
}

func (s *MemoryStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.reports, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
