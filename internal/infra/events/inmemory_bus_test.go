package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	sharedEvents "github.com/davicafu/bizreg/internal/shared/events"
)

func TestInMemoryEventBus_DeliversToSubscribers(t *testing.T) {
	bus := NewInMemoryEventBus(sharedEvents.TopicBusinessRegistered)
	sub := bus.Subscribe(1)

	evt := &sharedEvents.BusinessRegisteredEvent{
		BusinessID:   "BIZ_1_a",
		BusinessName: "Acme",
	}
	assert.NoError(t, bus.Publish(context.Background(), evt))

	select {
	case payload := <-sub:
		var got sharedEvents.BusinessRegisteredEvent
		assert.NoError(t, json.Unmarshal(payload, &got))
		assert.Equal(t, "BIZ_1_a", got.BusinessID)
	case <-time.After(time.Second):
		t.Fatal("subscriber did not receive the event")
	}
}

func TestInMemoryEventBus_FullSubscriberDoesNotBlock(t *testing.T) {
	bus := NewInMemoryEventBus(sharedEvents.TopicSendEmail)
	_ = bus.Subscribe(0) // never drained

	done := make(chan struct{})
	go func() {
		_ = bus.Publish(context.Background(), &sharedEvents.SendEmailResultEvent{BusinessID: "BIZ_1_a"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
}
