package mocks

import (
	"context"
	"fmt"
	"sync"

	sharedEvents "github.com/davicafu/bizreg/internal/shared/events"
)

// FakeMailer counts send attempts. Setting FailWith makes every attempt
// fail; VerifyErr is returned from Verify.
type FakeMailer struct {
	mu            sync.Mutex
	SendCalls     int
	LastRecipient string
	FailWith      error
	VerifyErr     error
}

func (m *FakeMailer) Send(ctx context.Context, reg *sharedEvents.BusinessRegisteredEvent) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendCalls++
	m.LastRecipient = reg.Email
	if m.FailWith != nil {
		return "", m.FailWith
	}
	return fmt.Sprintf("<msg-%d@fake>", m.SendCalls), nil
}

func (m *FakeMailer) Verify(ctx context.Context) error {
	return m.VerifyErr
}

// Calls returns the attempt count, safe to read concurrently.
func (m *FakeMailer) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.SendCalls
}
