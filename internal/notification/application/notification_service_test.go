package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/davicafu/bizreg/internal/notification/infra/outbound/tracker"
	sharedEvents "github.com/davicafu/bizreg/internal/shared/events"
	"github.com/davicafu/bizreg/tests/mocks"
)

func registeredEvent() *sharedEvents.BusinessRegisteredEvent {
	return &sharedEvents.BusinessRegisteredEvent{
		BusinessID:       "BIZ_1700000000000_ab12cd34e",
		BusinessName:     "Acme Bakery",
		Email:            "owner@acme.test",
		Phone:            "+34 600 000 000",
		Address:          "Calle Mayor 1",
		BusinessType:     "bakery",
		RegistrationDate: time.Now().UTC(),
	}
}

func newService(mailer *mocks.FakeMailer, publisher *mocks.CapturingPublisher) *NotificationService {
	return NewNotificationService(mailer, publisher, nil, time.Second, time.Second, zap.NewNop())
}

func TestProcessRegistration_SentOutcome(t *testing.T) {
	mailer := &mocks.FakeMailer{}
	publisher := &mocks.CapturingPublisher{}
	service := newService(mailer, publisher)

	err := service.ProcessRegistration(context.Background(), registeredEvent())
	assert.NoError(t, err)
	assert.Equal(t, 1, mailer.Calls())

	assert.Len(t, publisher.Published, 1)
	outcome, ok := publisher.Published[0].(*sharedEvents.SendEmailResultEvent)
	assert.True(t, ok)
	assert.Equal(t, "BIZ_1700000000000_ab12cd34e", outcome.BusinessID)
	assert.Equal(t, "owner@acme.test", outcome.Email)
	assert.Equal(t, sharedEvents.StatusSent, outcome.Status)
	assert.NotEmpty(t, outcome.MessageID)
	assert.Empty(t, outcome.Error)
	assert.False(t, outcome.Timestamp.IsZero())
}

func TestProcessRegistration_FailedOutcome(t *testing.T) {
	mailer := &mocks.FakeMailer{FailWith: errors.New("smtp: connection refused")}
	publisher := &mocks.CapturingPublisher{}
	service := newService(mailer, publisher)

	err := service.ProcessRegistration(context.Background(), registeredEvent())
	assert.NoError(t, err) // a failed send is still a terminal outcome

	assert.Len(t, publisher.Published, 1)
	outcome := publisher.Published[0].(*sharedEvents.SendEmailResultEvent)
	assert.Equal(t, sharedEvents.StatusFailed, outcome.Status)
	assert.Contains(t, outcome.Error, "connection refused")
	assert.Empty(t, outcome.MessageID)
}

func TestProcessRegistration_RedeliveryProducesDuplicateOutcome(t *testing.T) {
	mailer := &mocks.FakeMailer{}
	publisher := &mocks.CapturingPublisher{}
	service := newService(mailer, publisher)

	evt := registeredEvent()
	assert.NoError(t, service.ProcessRegistration(context.Background(), evt))
	assert.NoError(t, service.ProcessRegistration(context.Background(), evt))

	// Without a tracker, duplicates are expected, not suppressed.
	assert.Equal(t, 2, mailer.Calls())
	assert.Len(t, publisher.Published, 2)
}

func TestProcessRegistration_TrackerSkipsRedelivery(t *testing.T) {
	mailer := &mocks.FakeMailer{}
	publisher := &mocks.CapturingPublisher{}
	service := NewNotificationService(
		mailer, publisher, tracker.NewInMemoryTracker(), time.Second, time.Second, zap.NewNop())

	evt := registeredEvent()
	assert.NoError(t, service.ProcessRegistration(context.Background(), evt))
	assert.NoError(t, service.ProcessRegistration(context.Background(), evt))

	assert.Equal(t, 1, mailer.Calls())
	assert.Len(t, publisher.Published, 1)
}

func TestProcessRegistration_OutcomePublishFailure(t *testing.T) {
	mailer := &mocks.FakeMailer{}
	publisher := &mocks.CapturingPublisher{Err: errors.New("broker unreachable")}
	service := newService(mailer, publisher)

	err := service.ProcessRegistration(context.Background(), registeredEvent())
	assert.Error(t, err)
	assert.Equal(t, 1, mailer.Calls())
}
