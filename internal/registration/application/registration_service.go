package application

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/davicafu/bizreg/internal/registration/domain"
	"github.com/davicafu/bizreg/internal/shared/bus"
	sharedEvents "github.com/davicafu/bizreg/internal/shared/events"
)

// RegistrationService owns the register use case: validate the submission,
// assign an identifier and publish the BusinessRegistered event. The event
// must reach the broker before the caller gets a success response, so the
// publish error propagates; there is no internal retry.
type RegistrationService struct {
	events         bus.EventPublisher
	publishTimeout time.Duration
	log            *zap.Logger
}

func NewRegistrationService(events bus.EventPublisher, publishTimeout time.Duration, log *zap.Logger) *RegistrationService {
	return &RegistrationService{
		events:         events,
		publishTimeout: publishTimeout,
		log:            log,
	}
}

// RegistrationInput carries the caller-supplied fields of a submission.
type RegistrationInput struct {
	BusinessName string
	Email        string
	Phone        string
	Address      string
	BusinessType string
}

func (s *RegistrationService) Register(ctx context.Context, in RegistrationInput) (*domain.BusinessRegistration, error) {
	reg, err := domain.NewBusinessRegistration(in.BusinessName, in.Email, in.Phone, in.Address, in.BusinessType)
	if err != nil {
		return nil, err
	}

	evt := sharedEvents.BusinessRegisteredEvent{
		BusinessID:       reg.BusinessID,
		BusinessName:     reg.BusinessName,
		Email:            reg.Email,
		Phone:            reg.Phone,
		Address:          reg.Address,
		BusinessType:     reg.BusinessType,
		RegistrationDate: reg.RegistrationDate,
	}

	ctxPub, cancel := context.WithTimeout(ctx, s.publishTimeout)
	defer cancel()

	if err := s.events.Publish(ctxPub, &evt); err != nil {
		s.log.Error("Failed to publish business-registered event",
			zap.String("business_id", reg.BusinessID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("publish business-registered event: %w", err)
	}

	s.log.Info("Business registration event sent",
		zap.String("business_id", reg.BusinessID),
	)
	return reg, nil
}
