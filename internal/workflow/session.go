package workflow

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/estudioluz/booking-service/internal/domain"
	"github.com/estudioluz/booking-service/pkg/types"
)

// FormDetails is the client-details snapshot taken at the Form step. Phone
// keeps the digits-only normalized value; raw input never leaves the handler.
type FormDetails struct {
	Name        string
	Email       string
	Phone       string
	ServiceType domain.ServiceType
	Message     string
}

// SubmissionResult is what a successful confirm leaves behind after the
// rest of the session state is cleared
type SubmissionResult struct {
	BookingID          uuid.UUID
	WhatsAppLink       string
	NotificationFailed bool
}

// Session is one in-progress booking. All fields are guarded by mu except
// ID, which never changes.
type Session struct {
	ID uuid.UUID

	mu        sync.Mutex
	state     State
	date      time.Time
	slot      *domain.CandidateSlot
	form      *FormDetails
	result    *SubmissionResult
	inFlight  bool
	updatedAt time.Time
}

// Snapshot is the externally visible session state
type Snapshot struct {
	ID       uuid.UUID
	State    State
	Date     *time.Time
	Slot     *SlotSnapshot
	Form     *FormDetails
	Result   *SubmissionResult
	InFlight bool
}

// SlotSnapshot is the selected slot as shown on the confirmation screen
type SlotSnapshot struct {
	WindowID  uuid.UUID
	StartTime types.TimeString
	EndTime   types.TimeString
}

func newSession(id uuid.UUID, now time.Time) *Session {
	return &Session{
		ID:        id,
		state:     StateCalendar,
		updatedAt: now,
	}
}

// snapshotLocked builds the view; callers hold s.mu
func (s *Session) snapshotLocked() *Snapshot {
	snap := &Snapshot{
		ID:       s.ID,
		State:    s.state,
		InFlight: s.inFlight,
	}
	if !s.date.IsZero() {
		d := s.date
		snap.Date = &d
	}
	if s.slot != nil && s.slot.WindowID != nil {
		snap.Slot = &SlotSnapshot{
			WindowID:  *s.slot.WindowID,
			StartTime: s.slot.Start,
			EndTime:   s.slot.End,
		}
	}
	if s.form != nil {
		f := *s.form
		snap.Form = &f
	}
	if s.result != nil {
		r := *s.result
		snap.Result = &r
	}
	return snap
}

// resetLocked clears everything a finished booking leaves behind; callers
// hold s.mu. The result survives so the Submitted view can show the link.
func (s *Session) resetLocked() {
	s.date = time.Time{}
	s.slot = nil
	s.form = nil
}

// expired reports whether the session passed its idle deadline
func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.updatedAt) > ttl
}
