package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/estudioluz/booking-service/internal/domain"
	createBooking "github.com/estudioluz/booking-service/internal/usecase/create_booking"
	"github.com/estudioluz/booking-service/pkg/types"
)

// CreateBookingRequest is the HTTP request body
type CreateBookingRequest struct {
	WindowID    string `json:"windowId"`
	Date        string `json:"date"`      // YYYY-MM-DD
	StartTime   string `json:"startTime"` // HH:MM
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	ClientPhone string `json:"clientPhone"`
	ServiceType string `json:"serviceType"`
	Message     string `json:"message"`
}

// BookingResponse is the HTTP response body. WhatsAppLink opens the
// operator notification chat; notificationFailed reports a link-build
// failure that did not undo the booking.
type BookingResponse struct {
	ID                 uuid.UUID `json:"id"`
	WindowID           uuid.UUID `json:"windowId"`
	ClientName         string    `json:"clientName"`
	ServiceType        string    `json:"serviceType"`
	Status             string    `json:"status"`
	PreferredDate      string    `json:"preferredDate"`
	PreferredTime      string    `json:"preferredTime"`
	WhatsAppLink       string    `json:"whatsappLink,omitempty"`
	NotificationFailed bool      `json:"notificationFailed,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// ToUseCaseRequest parses the body into the usecase request
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	windowID, err := uuid.Parse(r.WindowID)
	if err != nil {
		return nil, err
	}
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}
	return &createBooking.Request{
		WindowID:    windowID,
		Date:        date,
		StartTime:   types.TimeString(r.StartTime),
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,
		ClientPhone: r.ClientPhone,
		ServiceType: r.ServiceType,
		Message:     r.Message,
	}, nil
}

// FromUseCaseResponse converts the usecase response to the HTTP model
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                 resp.ID,
		WindowID:           resp.WindowID,
		ClientName:         resp.ClientName,
		ServiceType:        string(resp.ServiceType),
		Status:             string(resp.Status),
		PreferredDate:      resp.PreferredDate.Format(domain.DateFormat),
		PreferredTime:      resp.PreferredTime.String(),
		WhatsAppLink:       resp.WhatsAppLink,
		NotificationFailed: resp.NotificationFailed,
		CreatedAt:          resp.CreatedAt,
	}
}
