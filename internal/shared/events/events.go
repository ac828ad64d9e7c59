package events

import (
	"time"

	"github.com/davicafu/bizreg/internal/shared/bus"
)

// Topic names, provisioned at startup. business-registered and send-email
// rely on per-key ordering; search-logs is reserved for downstream analytics.
const (
	TopicBusinessRegistered = "business-registered"
	TopicSendEmail          = "send-email"
	TopicSearchLogs         = "search-logs"
)

// Email outcome status values.
const (
	StatusSent   = "sent"
	StatusFailed = "failed"
)

// These are integration contracts exchanged between services, not domain
// entities. Each topic carries exactly one shape, so there is no envelope.

// BusinessRegisteredEvent is the wire form of an accepted registration,
// keyed by businessId for partition affinity.
type BusinessRegisteredEvent struct {
	BusinessID       string    `json:"businessId"`
	BusinessName     string    `json:"businessName"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Address          string    `json:"address"`
	BusinessType     string    `json:"businessType"`
	RegistrationDate time.Time `json:"registrationDate"`
}

func (e *BusinessRegisteredEvent) PartitionKey() string {
	return e.BusinessID
}

// SendEmailResultEvent reports the terminal outcome of one welcome-email
// attempt. MessageID is set iff Status is "sent"; Error iff "failed".
type SendEmailResultEvent struct {
	BusinessID string    `json:"businessId"`
	Email      string    `json:"email"`
	Status     string    `json:"status"`
	MessageID  string    `json:"messageId,omitempty"`
	Error      string    `json:"error,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

func (e *SendEmailResultEvent) PartitionKey() string {
	return e.BusinessID
}

// Verificación estática
var _ bus.Keyer = (*BusinessRegisteredEvent)(nil)
var _ bus.Keyer = (*SendEmailResultEvent)(nil)
