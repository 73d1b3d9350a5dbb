package update_booking_status

import (
	"time"

	"github.com/google/uuid"

	"github.com/estudioluz/booking-service/internal/domain"
	updateBookingStatus "github.com/estudioluz/booking-service/internal/usecase/update_booking_status"
)

// UpdateStatusRequest is the HTTP request body
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatusResponse is the HTTP response body. WhatsAppLink opens the
// client chat with the confirmation or cancellation message when the
// transition carries one.
type UpdateStatusResponse struct {
	ID                 uuid.UUID `json:"id"`
	WindowID           uuid.UUID `json:"windowId"`
	ClientName         string    `json:"clientName"`
	ServiceType        string    `json:"serviceType"`
	Status             string    `json:"status"`
	PreferredDate      string    `json:"preferredDate"`
	PreferredTime      string    `json:"preferredTime"`
	WhatsAppLink       string    `json:"whatsappLink,omitempty"`
	NotificationFailed bool      `json:"notificationFailed,omitempty"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// FromUseCaseResponse converts the usecase response to the HTTP model
func FromUseCaseResponse(resp *updateBookingStatus.Response) *UpdateStatusResponse {
	return &UpdateStatusResponse{
		ID:                 resp.ID,
		WindowID:           resp.WindowID,
		ClientName:         resp.ClientName,
		ServiceType:        string(resp.ServiceType),
		Status:             string(resp.Status),
		PreferredDate:      resp.PreferredDate.Format(domain.DateFormat),
		PreferredTime:      resp.PreferredTime.String(),
		WhatsAppLink:       resp.WhatsAppLink,
		NotificationFailed: resp.NotificationFailed,
		UpdatedAt:          resp.UpdatedAt,
	}
}
