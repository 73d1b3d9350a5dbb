package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/estudioluz/booking-service/internal/domain"
	"github.com/estudioluz/booking-service/pkg/types"
)

// Request carries the full booking form plus the selected slot reference
type Request struct {
	WindowID  uuid.UUID        // backing window of the selected slot
	Date      time.Time        // selected calendar day
	StartTime types.TimeString // selected slot start, "HH:MM"

	ClientName  string
	ClientEmail string
	ClientPhone string // free-typed; normalized during validation
	ServiceType string
	Message     string
}

// Response is the created booking plus the operator notification link.
// NotificationFailed reports a link-build failure that did NOT undo the
// booking; callers surface it separately.
type Response struct {
	ID            uuid.UUID
	WindowID      uuid.UUID
	ClientName    string
	ClientEmail   *string
	ClientPhone   string
	ServiceType   domain.ServiceType
	Message       *string
	Status        domain.Status
	PreferredDate time.Time
	PreferredTime types.TimeString
	CreatedAt     time.Time

	WhatsAppLink       string
	NotificationFailed bool
}

func fromDomainBooking(b *domain.Booking, link string, notifyFailed bool) *Response {
	return &Response{
		ID:                 b.ID,
		WindowID:           b.WindowID,
		ClientName:         b.ClientName,
		ClientEmail:        b.ClientEmail,
		ClientPhone:        b.ClientPhone,
		ServiceType:        b.ServiceType,
		Message:            b.Message,
		Status:             b.Status,
		PreferredDate:      b.PreferredDate,
		PreferredTime:      b.PreferredTime,
		CreatedAt:          b.CreatedAt,
		WhatsAppLink:       link,
		NotificationFailed: notifyFailed,
	}
}
