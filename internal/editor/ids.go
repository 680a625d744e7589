package editor

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator produces stable, opaque ids for new tree nodes. Injecting
// the generator keeps the engine deterministic under test.
type IDGenerator interface {
	// NewID returns a fresh id. The prefix names the node kind
	// ("section", "item", "subitem") and is carried into the id for
	// readability; uniqueness comes from the generator.
	NewID(prefix string) string
}

// UUIDGenerator issues random uuid-backed ids. This is the production
// generator.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// SequenceGenerator issues monotonically numbered ids. Tests use it to
// assert exact ids instead of depending on randomness.
type SequenceGenerator struct {
	mu sync.Mutex
	n  int
}

func (g *SequenceGenerator) NewID(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%03d", prefix, g.n)
}
