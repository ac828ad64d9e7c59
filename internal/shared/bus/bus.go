package bus

import "context"

// Keyer exposes the partition key an event should be routed by.
type Keyer interface {
	PartitionKey() string
}

// EventPublisher publishes one event; topic and payload format are decided
// by the adapters.
type EventPublisher interface {
	Publish(ctx context.Context, event interface{}) error
}
