package get_available_slots

import (
	"time"

	"github.com/estudioluz/booking-service/internal/domain"
	getAvailableSlots "github.com/estudioluz/booking-service/internal/usecase/get_available_slots"
)

// SlotsResponse is the HTTP response model
type SlotsResponse struct {
	Date  string `json:"date"`
	Slots []Slot `json:"slots"`
}

// Slot is one hour of the business day. WindowID is present only when an
// open window backs the hour; the slot is selectable exactly then.
type Slot struct {
	ID         string  `json:"id"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	Taken      bool    `json:"taken"`
	Selectable bool    `json:"selectable"`
	WindowID   *string `json:"windowId,omitempty"`
}

// FromUseCaseResponse converts the usecase response to the HTTP model
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = Slot{
			ID:         s.ID,
			StartTime:  s.StartTime,
			EndTime:    s.EndTime,
			Taken:      s.Taken,
			Selectable: s.Selectable,
			WindowID:   s.WindowID,
		}
	}
	return &SlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}

// ToUseCaseRequest parses the date query parameter
func ToUseCaseRequest(dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	return &getAvailableSlots.Request{Date: date}, nil
}
