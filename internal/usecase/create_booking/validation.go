package create_booking

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/estudioluz/booking-service/internal/domain"
	"github.com/estudioluz/booking-service/pkg/brphone"
)

// emailPattern is a syntactic check only: one @, no spaces, dotted domain
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidatedForm is the normalized result of form validation
type ValidatedForm struct {
	Name        string
	Email       string
	PhoneDigits string
	ServiceType domain.ServiceType
	Message     string
}

// validateRequest checks the slot reference fields
func validateRequest(req *Request) error {
	if req.WindowID == uuid.Nil {
		return fmt.Errorf("%w: windowId is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	return nil
}

// ValidateForm checks every client-details field and returns the normalized
// values. Each failure names the specific field or phone subtype. The
// workflow Form step runs the same checks, so both booking paths accept and
// reject identical input.
func ValidateForm(req *Request) (*ValidatedForm, error) {
	name := strings.TrimSpace(req.ClientName)
	if name == "" {
		return nil, fmt.Errorf("%w: name", ErrFormIncomplete)
	}
	if len(name) > domain.MaxClientNameLength {
		return nil, fmt.Errorf("%w: name too long", ErrInvalidInput)
	}

	email := strings.TrimSpace(req.ClientEmail)
	if email == "" {
		return nil, fmt.Errorf("%w: email", ErrFormIncomplete)
	}
	if !emailPattern.MatchString(email) {
		return nil, ErrEmailInvalid
	}

	phoneDigits := brphone.Normalize(req.ClientPhone)
	if phoneDigits == "" {
		return nil, fmt.Errorf("%w: phone", ErrFormIncomplete)
	}
	if err := brphone.Validate(phoneDigits); err != nil {
		// Both ErrPhoneInvalid and the brphone subtype stay matchable
		return nil, fmt.Errorf("%w: %w", ErrPhoneInvalid, err)
	}

	serviceType, err := domain.ParseServiceType(strings.TrimSpace(req.ServiceType))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrServiceTypeInvalid, req.ServiceType)
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, fmt.Errorf("%w: message", ErrFormIncomplete)
	}
	if len(message) > domain.MaxMessageLength {
		return nil, fmt.Errorf("%w: message too long", ErrInvalidInput)
	}

	return &ValidatedForm{
		Name:        name,
		Email:       email,
		PhoneDigits: phoneDigits,
		ServiceType: serviceType,
		Message:     message,
	}, nil
}
