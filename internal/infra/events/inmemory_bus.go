package events

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/davicafu/bizreg/internal/shared/bus"
)

// InMemoryEventBus implements a single-topic event bus over Go channels.
// It lets the whole pipeline run without Kafka (dev mode and tests).
type InMemoryEventBus struct {
	subscribers []chan []byte
	mu          sync.RWMutex
	topic       string
}

// Verificación estática
var _ bus.EventPublisher = (*InMemoryEventBus)(nil)

// NewInMemoryEventBus creates an event bus for one topic.
func NewInMemoryEventBus(topic string) *InMemoryEventBus {
	return &InMemoryEventBus{
		subscribers: make([]chan []byte, 0),
		topic:       topic,
	}
}

// Publish serializes the event and delivers it to every subscriber.
// Subscribers with a full buffer miss the event rather than block.
func (b *InMemoryEventBus) Publish(ctx context.Context, event interface{}) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, subChan := range b.subscribers {
		select {
		case subChan <- payload:
		default:
		}
	}
	return nil
}

// Subscribe registers a new listener on this bus.
func (b *InMemoryEventBus) Subscribe(bufferSize int) <-chan []byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	subChan := make(chan []byte, bufferSize)
	b.subscribers = append(b.subscribers, subChan)
	return subChan
}

// Topic returns the topic this bus carries.
func (b *InMemoryEventBus) Topic() string {
	return b.topic
}
