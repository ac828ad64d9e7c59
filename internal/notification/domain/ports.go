package domain

import (
	"context"

	sharedEvents "github.com/davicafu/bizreg/internal/shared/events"
)

// ---------- Interfaces (Ports) ----------

// WelcomeMailer sends the welcome email for one registration. Send returns
// the transport's message identifier on success. Verify checks that the
// outbound transport is reachable; it is advisory at startup.
type WelcomeMailer interface {
	Send(ctx context.Context, reg *sharedEvents.BusinessRegisteredEvent) (messageID string, err error)
	Verify(ctx context.Context) error
}

// ProcessedTracker records businessIds that already went through the send
// attempt, so redeliveries can be skipped. MarkProcessed reports whether the
// id had been recorded before. A nil tracker disables deduplication, which
// keeps the pipeline's plain at-least-once behavior.
type ProcessedTracker interface {
	MarkProcessed(ctx context.Context, businessID string) (alreadyProcessed bool, err error)
}
