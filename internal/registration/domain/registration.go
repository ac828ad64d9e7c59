package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/davicafu/bizreg/internal/shared/bus"
	"github.com/google/uuid"
)

// ---------- Errores de dominio ----------
var (
	ErrInvalidRegistration = errors.New("invalid registration")
)

// BusinessRegistration is an accepted registration, immutable once
// published. The identifier is assigned exactly once, at construction.
type BusinessRegistration struct {
	BusinessID       string    `json:"businessId"`
	BusinessName     string    `json:"businessName"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Address          string    `json:"address"`
	BusinessType     string    `json:"businessType"`
	RegistrationDate time.Time `json:"registrationDate"`
}

func (r *BusinessRegistration) PartitionKey() string {
	return r.BusinessID
}

// Verificación estática
var _ bus.Keyer = (*BusinessRegistration)(nil)

// NewBusinessRegistration validates the caller-supplied fields and, when all
// five are present, assigns a fresh identifier and registration date. A
// failed validation never assigns an identifier.
func NewBusinessRegistration(businessName, email, phone, address, businessType string) (*BusinessRegistration, error) {
	required := []struct {
		field string
		value string
	}{
		{"businessName", businessName},
		{"email", email},
		{"phone", phone},
		{"address", address},
		{"businessType", businessType},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, fmt.Errorf("%w: %s is required", ErrInvalidRegistration, r.field)
		}
	}

	return &BusinessRegistration{
		BusinessID:       NewBusinessID(),
		BusinessName:     businessName,
		Email:            email,
		Phone:            phone,
		Address:          address,
		BusinessType:     businessType,
		RegistrationDate: time.Now().UTC(),
	}, nil
}

// NewBusinessID synthesizes a collision-resistant identifier: a millisecond
// timestamp prefix plus a random suffix. No counter is persisted.
func NewBusinessID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("BIZ_%d_%s", time.Now().UnixMilli(), suffix)
}
