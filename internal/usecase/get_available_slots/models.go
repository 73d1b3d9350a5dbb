package get_available_slots

import (
	"time"

	"github.com/estudioluz/booking-service/internal/domain"
)

// Request asks for the candidate slots of one calendar day
type Request struct {
	Date time.Time
}

// Response carries the full business-day slot grid
type Response struct {
	Date  time.Time
	Slots []Slot
}

// Slot is the usecase view of a candidate slot
type Slot struct {
	ID         string
	StartTime  string
	EndTime    string
	Taken      bool
	Selectable bool
	WindowID   *string // present only when an available window backs the hour
}

func fromCandidateSlots(slots []domain.CandidateSlot) []Slot {
	out := make([]Slot, len(slots))
	for i, s := range slots {
		var windowID *string
		if s.WindowID != nil {
			id := s.WindowID.String()
			windowID = &id
		}
		out[i] = Slot{
			ID:         s.ID,
			StartTime:  s.Start.String(),
			EndTime:    s.End.String(),
			Taken:      s.Taken,
			Selectable: s.Selectable(),
			WindowID:   windowID,
		}
	}
	return out
}
