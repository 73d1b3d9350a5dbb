package booking_session

import (
	"github.com/google/uuid"

	"github.com/estudioluz/booking-service/internal/domain"
	"github.com/estudioluz/booking-service/internal/workflow"
	"github.com/estudioluz/booking-service/pkg/brphone"
)

// SelectDateRequest is the body of the date step
type SelectDateRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
}

// SelectSlotRequest is the body of the time step
type SelectSlotRequest struct {
	StartTime string `json:"startTime"` // HH:MM
}

// DetailsRequest is the body of the client-details step
type DetailsRequest struct {
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	ClientPhone string `json:"clientPhone"`
	ServiceType string `json:"serviceType"`
	Message     string `json:"message"`
}

// SessionResponse is the session as returned after every step
type SessionResponse struct {
	ID       uuid.UUID       `json:"id"`
	State    string          `json:"state"`
	Date     *string         `json:"date,omitempty"`
	Slot     *SlotView       `json:"slot,omitempty"`
	Form     *FormView       `json:"form,omitempty"`
	Result   *SubmissionView `json:"result,omitempty"`
	InFlight bool            `json:"inFlight,omitempty"`
}

// SlotView is the selected slot
type SlotView struct {
	WindowID  uuid.UUID `json:"windowId"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
}

// FormView echoes the collected details; the phone comes back masked
type FormView struct {
	ClientName   string `json:"clientName"`
	ClientEmail  string `json:"clientEmail"`
	PhoneDisplay string `json:"phoneDisplay"`
	ServiceType  string `json:"serviceType"`
	ServiceLabel string `json:"serviceLabel"`
	Message      string `json:"message"`
}

// SubmissionView is what a successful confirm leaves behind
type SubmissionView struct {
	BookingID          uuid.UUID `json:"bookingId"`
	WhatsAppLink       string    `json:"whatsappLink,omitempty"`
	NotificationFailed bool      `json:"notificationFailed,omitempty"`
}

// FromSnapshot converts a workflow snapshot to the HTTP model
func FromSnapshot(s *workflow.Snapshot) *SessionResponse {
	resp := &SessionResponse{
		ID:       s.ID,
		State:    string(s.State),
		InFlight: s.InFlight,
	}
	if s.Date != nil {
		d := s.Date.Format(domain.DateFormat)
		resp.Date = &d
	}
	if s.Slot != nil {
		resp.Slot = &SlotView{
			WindowID:  s.Slot.WindowID,
			StartTime: s.Slot.StartTime.String(),
			EndTime:   s.Slot.EndTime.String(),
		}
	}
	if s.Form != nil {
		resp.Form = &FormView{
			ClientName:   s.Form.Name,
			ClientEmail:  s.Form.Email,
			PhoneDisplay: brphone.Mask(s.Form.Phone),
			ServiceType:  string(s.Form.ServiceType),
			ServiceLabel: s.Form.ServiceType.Label(),
			Message:      s.Form.Message,
		}
	}
	if s.Result != nil {
		resp.Result = &SubmissionView{
			BookingID:          s.Result.BookingID,
			WhatsAppLink:       s.Result.WhatsAppLink,
			NotificationFailed: s.Result.NotificationFailed,
		}
	}
	return resp
}
