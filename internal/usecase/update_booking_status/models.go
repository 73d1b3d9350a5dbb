package update_booking_status

import (
	"time"

	"github.com/google/uuid"

	"github.com/estudioluz/booking-service/internal/domain"
	"github.com/estudioluz/booking-service/pkg/types"
)

// Request asks for an operator status transition on a booking
type Request struct {
	BookingID uuid.UUID
	Status    string // wire value, parsed against the domain enum
}

// Response is the updated booking plus the client status-update link.
// WhatsAppLink is empty for transitions that carry no client message
// (completed, awaiting_reschedule) and when the client phone cannot be
// normalized; NotificationFailed distinguishes the latter.
type Response struct {
	ID            uuid.UUID
	WindowID      uuid.UUID
	ClientName    string
	ServiceType   domain.ServiceType
	Status        domain.Status
	PreferredDate time.Time
	PreferredTime types.TimeString
	UpdatedAt     time.Time

	WhatsAppLink       string
	NotificationFailed bool
}
