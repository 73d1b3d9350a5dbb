package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/estudioluz/booking-service/internal/domain"
	"github.com/estudioluz/booking-service/pkg/brphone"
)

// ListBookingsRequest asks for bookings in an inclusive date range,
// optionally narrowed by status
type ListBookingsRequest struct {
	StartDate time.Time
	EndDate   time.Time
	Status    *string
}

// BookingResponse is one booking as shown on the operator side. PhoneDisplay
// carries the masked form used in lists; ClientPhone stays digits-only.
type BookingResponse struct {
	ID               uuid.UUID     `json:"id"`
	WindowID         uuid.UUID     `json:"windowId"`
	ClientName       string        `json:"clientName"`
	ClientEmail      *string       `json:"clientEmail,omitempty"`
	ClientPhone      string        `json:"clientPhone"`
	PhoneDisplay     string        `json:"phoneDisplay"`
	ServiceType      string        `json:"serviceType"`
	ServiceLabel     string        `json:"serviceLabel"`
	Message          *string       `json:"message,omitempty"`
	Status           domain.Status `json:"status"`
	PreferredDate    string        `json:"preferredDate"`
	PreferredTime    string        `json:"preferredTime"`
	NotificationSent bool          `json:"notificationSent"`
	ConfirmationSent bool          `json:"confirmationSent"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// BookingListResponse is the list wrapper
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking converts a domain booking to the response form
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:               b.ID,
		WindowID:         b.WindowID,
		ClientName:       b.ClientName,
		ClientEmail:      b.ClientEmail,
		ClientPhone:      b.ClientPhone,
		PhoneDisplay:     brphone.Mask(b.ClientPhone),
		ServiceType:      string(b.ServiceType),
		ServiceLabel:     b.ServiceType.Label(),
		Message:          b.Message,
		Status:           b.Status,
		PreferredDate:    b.PreferredDate.Format(domain.DateFormat),
		PreferredTime:    b.PreferredTime.String(),
		NotificationSent: b.NotificationSent,
		ConfirmationSent: b.ConfirmationSent,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

// FromDomainBookingList converts a slice of domain bookings
func FromDomainBookingList(bs []*domain.Booking) *BookingListResponse {
	out := make([]*BookingResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: out, Total: len(out)}
}
