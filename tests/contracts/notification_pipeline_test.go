package contracts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	infraEvents "github.com/davicafu/bizreg/internal/infra/events"
	notifApp "github.com/davicafu/bizreg/internal/notification/application"
	notifEvents "github.com/davicafu/bizreg/internal/notification/infra/inbound/events"
	regApp "github.com/davicafu/bizreg/internal/registration/application"
	sharedEvents "github.com/davicafu/bizreg/internal/shared/events"
	"github.com/davicafu/bizreg/tests/mocks"
)

// Wires ingress -> in-memory bus -> consumer -> outcome publisher, the same
// composition main uses without Kafka.
func startPipeline(t *testing.T, mailer *mocks.FakeMailer) (*regApp.RegistrationService, *mocks.CapturingPublisher, context.CancelFunc) {
	t.Helper()

	registeredBus := infraEvents.NewInMemoryEventBus(sharedEvents.TopicBusinessRegistered)
	outcomes := &mocks.CapturingPublisher{}

	notifService := notifApp.NewNotificationService(
		mailer, outcomes, nil, time.Second, time.Second, zap.NewNop())
	consumer := notifEvents.NewRegistrationConsumer(notifService, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	notifEvents.BackgroundConsumerChan(ctx, registeredBus.Subscribe(10), consumer)

	regService := regApp.NewRegistrationService(registeredBus, time.Second, zap.NewNop())
	return regService, outcomes, cancel
}

func TestPipeline_RegistrationProducesSentOutcome(t *testing.T) {
	mailer := &mocks.FakeMailer{}
	regService, outcomes, cancel := startPipeline(t, mailer)
	defer cancel()

	reg, err := regService.Register(context.Background(), regApp.RegistrationInput{
		BusinessName: "Acme Bakery",
		Email:        "owner@acme.test",
		Phone:        "+34 600 000 000",
		Address:      "Calle Mayor 1",
		BusinessType: "bakery",
	})
	assert.NoError(t, err)

	assert.Eventually(t, func() bool {
		return len(outcomes.Events()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	outcome := outcomes.Events()[0].(*sharedEvents.SendEmailResultEvent)
	assert.Equal(t, reg.BusinessID, outcome.BusinessID)
	assert.Equal(t, "owner@acme.test", outcome.Email)
	assert.Equal(t, sharedEvents.StatusSent, outcome.Status)
	assert.NotEmpty(t, outcome.MessageID)
	assert.Equal(t, 1, mailer.Calls())
}

func TestPipeline_TransportFailureProducesFailedOutcome(t *testing.T) {
	mailer := &mocks.FakeMailer{FailWith: errors.New("smtp: connection refused")}
	regService, outcomes, cancel := startPipeline(t, mailer)
	defer cancel()

	reg, err := regService.Register(context.Background(), regApp.RegistrationInput{
		BusinessName: "Acme Bakery",
		Email:        "owner@acme.test",
		Phone:        "+34 600 000 000",
		Address:      "Calle Mayor 1",
		BusinessType: "bakery",
	})
	assert.NoError(t, err)

	assert.Eventually(t, func() bool {
		return len(outcomes.Events()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	outcome := outcomes.Events()[0].(*sharedEvents.SendEmailResultEvent)
	assert.Equal(t, reg.BusinessID, outcome.BusinessID)
	assert.Equal(t, sharedEvents.StatusFailed, outcome.Status)
	assert.Contains(t, outcome.Error, "connection refused")
	assert.Empty(t, outcome.MessageID)
}

func TestPipeline_EachRegistrationGetsItsOwnOutcome(t *testing.T) {
	mailer := &mocks.FakeMailer{}
	regService, outcomes, cancel := startPipeline(t, mailer)
	defer cancel()

	ids := make(map[string]struct{})
	for i := 0; i < 3; i++ {
		reg, err := regService.Register(context.Background(), regApp.RegistrationInput{
			BusinessName: "Acme Bakery",
			Email:        "owner@acme.test",
			Phone:        "+34 600 000 000",
			Address:      "Calle Mayor 1",
			BusinessType: "bakery",
		})
		assert.NoError(t, err)
		ids[reg.BusinessID] = struct{}{}
	}
	assert.Len(t, ids, 3)

	assert.Eventually(t, func() bool {
		return len(outcomes.Events()) == 3
	}, 2*time.Second, 10*time.Millisecond)

	for _, raw := range outcomes.Events() {
		outcome := raw.(*sharedEvents.SendEmailResultEvent)
		_, known := ids[outcome.BusinessID]
		assert.True(t, known)
	}
}
