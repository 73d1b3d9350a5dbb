package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/estudioluz/booking-service/pkg/types"
)

// CandidateSlot is one hour of the business day as offered to the client.
// Slots are recomputed whenever a calendar day is selected and never persisted.
//
// WindowID is the backing AvailableWindow when one exists; a slot without a
// backing window is displayed but cannot be selected.
type CandidateSlot struct {
	ID       string // window id when backed, "time-<hour>" otherwise
	Hour     int
	Start    types.TimeString
	End      types.TimeString
	Date     time.Time
	Taken    bool
	WindowID *uuid.UUID
}

// Selectable reports whether a client may pick this slot:
// open and backed by a claimable window.
func (s *CandidateSlot) Selectable() bool {
	return !s.Taken && s.WindowID != nil
}

// SyntheticSlotID builds the display id for an unbacked hour
func SyntheticSlotID(hour int) string {
	return fmt.Sprintf("time-%d", hour)
}
