package events

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	sharedEvents "github.com/davicafu/bizreg/internal/shared/events"
)

// NotificationService is what the consumer needs from the application layer.
type NotificationService interface {
	ProcessRegistration(ctx context.Context, evt *sharedEvents.BusinessRegisteredEvent) error
}

// RegistrationConsumer reacts to BusinessRegistered events. Malformed
// payloads are logged and skipped so a poison message never blocks the
// partition; processing errors are logged, since the consumer has no
// synchronous caller to surface them to.
type RegistrationConsumer struct {
	service NotificationService
	log     *zap.Logger
}

func NewRegistrationConsumer(service NotificationService, log *zap.Logger) *RegistrationConsumer {
	return &RegistrationConsumer{
		service: service,
		log:     log,
	}
}

func (c *RegistrationConsumer) HandleMessage(ctx context.Context, key string, payload []byte) {
	var evt sharedEvents.BusinessRegisteredEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		c.log.Warn("Malformed business-registered payload, skipping",
			zap.String("key", key),
			zap.Error(err),
		)
		return
	}
	if evt.BusinessID == "" {
		c.log.Warn("business-registered payload without businessId, skipping",
			zap.String("key", key),
		)
		return
	}

	if err := c.service.ProcessRegistration(ctx, &evt); err != nil {
		c.log.Error("Failed to process business registration",
			zap.String("business_id", evt.BusinessID),
			zap.Error(err),
		)
	}
}

// BackgroundConsumerChan drains an in-memory subscription into the consumer.
// Used when the service runs without Kafka.
func BackgroundConsumerChan(ctx context.Context, ch <-chan []byte, consumer *RegistrationConsumer) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				consumer.log.Info("RegistrationConsumer stopped")
				return
			case payload := <-ch:
				consumer.HandleMessage(ctx, "", payload)
			}
		}
	}()
}
