package application

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/davicafu/bizreg/internal/notification/domain"
	"github.com/davicafu/bizreg/internal/shared/bus"
	sharedEvents "github.com/davicafu/bizreg/internal/shared/events"
)

// NotificationService processes one delivered registration event: exactly
// one email-send attempt and exactly one outcome publish, whatever the
// attempt's result. The email send is never retried here; the broker's
// redelivery is the only retry mechanism.
type NotificationService struct {
	mailer         domain.WelcomeMailer
	events         bus.EventPublisher
	tracker        domain.ProcessedTracker // nil = dedup disabled
	emailTimeout   time.Duration
	publishTimeout time.Duration
	log            *zap.Logger
}

func NewNotificationService(
	mailer domain.WelcomeMailer,
	events bus.EventPublisher,
	tracker domain.ProcessedTracker,
	emailTimeout, publishTimeout time.Duration,
	log *zap.Logger,
) *NotificationService {
	return &NotificationService{
		mailer:         mailer,
		events:         events,
		tracker:        tracker,
		emailTimeout:   emailTimeout,
		publishTimeout: publishTimeout,
		log:            log,
	}
}

// ProcessRegistration handles one delivery of a BusinessRegistered event.
func (s *NotificationService) ProcessRegistration(ctx context.Context, evt *sharedEvents.BusinessRegisteredEvent) error {
	if s.tracker != nil {
		seen, err := s.tracker.MarkProcessed(ctx, evt.BusinessID)
		if err != nil {
			// Tracker failure must not block the partition; fall through
			// and accept a possible duplicate email.
			s.log.Warn("Processed tracker unavailable, continuing without dedup",
				zap.String("business_id", evt.BusinessID),
				zap.Error(err),
			)
		} else if seen {
			s.log.Info("Duplicate BusinessRegistered delivery skipped",
				zap.String("business_id", evt.BusinessID),
			)
			return nil
		}
	}

	s.log.Info("Processing business registration",
		zap.String("business_id", evt.BusinessID),
	)

	ctxMail, cancel := context.WithTimeout(ctx, s.emailTimeout)
	messageID, sendErr := s.mailer.Send(ctxMail, evt)
	cancel()

	outcome := sharedEvents.SendEmailResultEvent{
		BusinessID: evt.BusinessID,
		Email:      evt.Email,
		Timestamp:  time.Now().UTC(),
	}
	if sendErr != nil {
		outcome.Status = sharedEvents.StatusFailed
		outcome.Error = sendErr.Error()
		s.log.Warn("Welcome email failed",
			zap.String("business_id", evt.BusinessID),
			zap.Error(sendErr),
		)
	} else {
		outcome.Status = sharedEvents.StatusSent
		outcome.MessageID = messageID
		s.log.Info("Welcome email sent",
			zap.String("business_id", evt.BusinessID),
			zap.String("message_id", messageID),
		)
	}

	ctxPub, cancel := context.WithTimeout(ctx, s.publishTimeout)
	defer cancel()

	if err := s.events.Publish(ctxPub, &outcome); err != nil {
		return fmt.Errorf("publish send-email result: %w", err)
	}
	return nil
}
