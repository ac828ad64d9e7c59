package tracker

import (
	"context"
	"sync"

	"github.com/davicafu/bizreg/internal/notification/domain"
)

// InMemoryTracker keeps the processed set in a map. Fallback for when Redis
// is unavailable; the set is lost on restart, so a restart may re-send.
type InMemoryTracker struct {
	seen map[string]struct{}
	mu   sync.Mutex
}

// Verificación estática
var _ domain.ProcessedTracker = (*InMemoryTracker)(nil)

func NewInMemoryTracker() *InMemoryTracker {
	return &InMemoryTracker{
		seen: make(map[string]struct{}),
	}
}

func (t *InMemoryTracker) MarkProcessed(ctx context.Context, businessID string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.seen[businessID]; ok {
		return true, nil
	}
	t.seen[businessID] = struct{}{}
	return false, nil
}
