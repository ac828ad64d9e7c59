package mocks

import (
	"context"
	"sync"
)

// CapturingPublisher records every published event. Setting Err makes every
// publish fail without recording, simulating an unreachable broker.
type CapturingPublisher struct {
	mu        sync.Mutex
	Published []interface{}
	Err       error
}

func (p *CapturingPublisher) Publish(ctx context.Context, event interface{}) error {
	if p.Err != nil {
		return p.Err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Published = append(p.Published, event)
	return nil
}

// Events returns a copy of what was published, safe to read while the
// pipeline is still running.
func (p *CapturingPublisher) Events() []interface{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]interface{}, len(p.Published))
	copy(out, p.Published)
	return out
}
