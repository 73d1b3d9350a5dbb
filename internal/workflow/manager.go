package workflow

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/estudioluz/booking-service/internal/domain"
	"github.com/estudioluz/booking-service/internal/schedule"
	"github.com/estudioluz/booking-service/internal/usecase/create_booking"
)

const (
	// DefaultSessionTTL is how long an idle session survives
	DefaultSessionTTL = 30 * time.Minute

	sweepInterval = time.Minute
)

// Manager drives booking sessions through the Calendar → Time → Form →
// Confirmation → (Submitted | Failed) steps. Sessions live in memory, keyed
// by uuid, and are swept after DefaultSessionTTL of inactivity.
type Manager struct {
	availability AvailabilityClient
	submitter    BookingSubmitter
	blockedDates schedule.BlockedDates
	ttl          time.Duration
	metrics      Metrics
	timeProvider TimeProvider
	newID        IDGenerator
	logger       Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewManager creates the session manager. Nil metrics fall back to
// NopMetrics; ttl <= 0 falls back to DefaultSessionTTL.
func NewManager(
	availability AvailabilityClient,
	submitter BookingSubmitter,
	blockedDates schedule.BlockedDates,
	ttl time.Duration,
	m Metrics,
	logger Logger,
) *Manager {
	if m == nil {
		m = NopMetrics{}
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Manager{
		availability: availability,
		submitter:    submitter,
		blockedDates: blockedDates,
		ttl:          ttl,
		metrics:      m,
		timeProvider: &create_booking.RealTimeProvider{},
		newID:        uuid.New,
		logger:       logger,
		sessions:     make(map[uuid.UUID]*Session),
	}
}

// SetTimeProvider swaps the clock; tests pin it to a fixed date
func (m *Manager) SetTimeProvider(tp TimeProvider) {
	m.timeProvider = tp
}

// Start opens a fresh session at the Calendar step
func (m *Manager) Start(ctx context.Context) *Snapshot {
	s := newSession(m.newID(), m.timeProvider.Now())

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.metrics.SessionStarted()
	m.logger.Info("Workflow: session %s started", s.ID)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Get returns the current session snapshot
func (m *Manager) Get(id uuid.UUID) (*Snapshot, error) {
	s, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(), nil
}

// SelectDate moves Calendar → Time. The date runs the same rejection checks
// the calendar uses; on rejection the session stays in Calendar and the
// specific reason is returned. A Submitted session accepts a new date and
// begins a fresh booking.
func (m *Manager) SelectDate(ctx context.Context, id uuid.UUID, date time.Time) (*Snapshot, error) {
	s, err := m.lookup(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateCalendar && s.state != StateSubmitted {
		return nil, fmt.Errorf("%w: select date in state %s", ErrInvalidState, s.state)
	}

	now := m.timeProvider.Now()
	if err := schedule.ValidateBookableDate(date, now, m.blockedDates); err != nil {
		m.logger.Warn("Workflow: session %s date %s rejected: %v",
			s.ID, date.Format(domain.DateFormat), err)
		return nil, err
	}

	s.result = nil
	s.date = schedule.DateOnly(date)
	s.state = StateTime
	s.updatedAt = now
	return s.snapshotLocked(), nil
}

// SelectSlot moves Time → Form. The day grid is regenerated from current
// availability and the requested hour must map to an open, backed slot;
// picking a taken or unbacked slot changes nothing.
func (m *Manager) SelectSlot(ctx context.Context, id uuid.UUID, hour int) (*Snapshot, error) {
	s, err := m.lookup(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateTime {
		return nil, fmt.Errorf("%w: select slot in state %s", ErrInvalidState, s.state)
	}

	slot, err := m.findSlot(ctx, s.date, hour)
	if err != nil {
		return nil, err
	}

	s.slot = slot
	s.state = StateForm
	s.updatedAt = m.timeProvider.Now()
	return s.snapshotLocked(), nil
}

// SubmitDetails moves Form → Confirmation. Validation is shared with the
// direct booking endpoint, so both paths reject identical input.
func (m *Manager) SubmitDetails(ctx context.Context, id uuid.UUID, name, email, phone, serviceType, message string) (*Snapshot, error) {
	s, err := m.lookup(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateForm {
		return nil, fmt.Errorf("%w: submit details in state %s", ErrInvalidState, s.state)
	}
	if s.inFlight {
		return nil, fmt.Errorf("%w: submission in flight", ErrInvalidState)
	}

	form, err := create_booking.ValidateForm(&create_booking.Request{
		WindowID:    *s.slot.WindowID,
		Date:        s.date,
		StartTime:   s.slot.Start,
		ClientName:  name,
		ClientEmail: email,
		ClientPhone: phone,
		ServiceType: serviceType,
		Message:     message,
	})
	if err != nil {
		m.logger.Warn("Workflow: session %s details rejected: %v", s.ID, err)
		return nil, err
	}

	s.form = &FormDetails{
		Name:        form.Name,
		Email:       form.Email,
		Phone:       form.PhoneDigits,
		ServiceType: form.ServiceType,
		Message:     form.Message,
	}
	s.state = StateConfirmation
	s.updatedAt = m.timeProvider.Now()
	return s.snapshotLocked(), nil
}

// Confirm runs the submission: persist the pending booking, claim the
// window, build the notification link — strictly in that order, delegated to
// the submitter. A confirm while one is already in flight returns the
// current snapshot untouched. Failure keeps the snapshot so the user can
// retry without re-entering anything.
func (m *Manager) Confirm(ctx context.Context, id uuid.UUID) (*Snapshot, error) {
	s, err := m.lookup(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if !s.state.CanConfirm() {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: confirm in state %s", ErrInvalidState, s.state)
	}
	if s.inFlight {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		m.logger.Warn("Workflow: session %s confirm ignored, submission already in flight", s.ID)
		return snap, nil
	}
	s.inFlight = true
	req := &create_booking.Request{
		WindowID:    *s.slot.WindowID,
		Date:        s.date,
		StartTime:   s.slot.Start,
		ClientName:  s.form.Name,
		ClientEmail: s.form.Email,
		ClientPhone: s.form.Phone,
		ServiceType: string(s.form.ServiceType),
		Message:     s.form.Message,
	}
	s.mu.Unlock()

	resp, submitErr := m.submitter.Execute(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	s.updatedAt = m.timeProvider.Now()

	if submitErr != nil {
		s.state = StateFailed
		m.logger.Error("Workflow: session %s submission failed: %v", s.ID, submitErr)
		return nil, submitErr
	}

	s.result = &SubmissionResult{
		BookingID:          resp.ID,
		WhatsAppLink:       resp.WhatsAppLink,
		NotificationFailed: resp.NotificationFailed,
	}
	s.state = StateSubmitted
	s.resetLocked()
	m.logger.Info("Workflow: session %s submitted booking %s", s.ID, resp.ID)
	return s.snapshotLocked(), nil
}

// Back steps the session one state backwards, discarding what the departed
// step collected. Not allowed from Calendar or Submitted.
func (m *Manager) Back(ctx context.Context, id uuid.UUID) (*Snapshot, error) {
	s, err := m.lookup(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.state.backTarget()
	if target == "" {
		return nil, fmt.Errorf("%w: back from state %s", ErrBackNotAllowed, s.state)
	}
	if s.inFlight {
		// The running submission decides the outcome; stepping back now would
		// only be overwritten when it lands.
		return nil, fmt.Errorf("%w: submission in flight", ErrInvalidState)
	}

	switch target {
	case StateCalendar:
		s.date = time.Time{}
		s.slot = nil
	case StateTime:
		s.form = nil
	}
	// Confirmation/Failed -> Form keeps the form so the user can edit it

	s.state = target
	s.updatedAt = m.timeProvider.Now()
	return s.snapshotLocked(), nil
}

// Run sweeps expired sessions until the context is cancelled
func (m *Manager) Run(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.sweep()
		}
	}
}

// sweep drops sessions idle past the TTL
func (m *Manager) sweep() {
	now := m.timeProvider.Now()

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		if s.expired(now, m.ttl) {
			delete(m.sessions, id)
			m.metrics.SessionEnded()
			m.logger.Info("Workflow: session %s expired", id)
		}
	}
}

func (m *Manager) lookup(id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// findSlot regenerates the day's grid and returns the slot for the hour.
// Taken and unbacked hours are rejected distinctly from unknown hours.
func (m *Manager) findSlot(ctx context.Context, day time.Time, hour int) (*domain.CandidateSlot, error) {
	windows, err := m.availability.GetAvailableWindows(ctx, day, day)
	if err != nil {
		return nil, err
	}
	bookings, err := m.availability.GetBookingsInRange(ctx, day, day)
	if err != nil {
		return nil, err
	}

	slots, err := schedule.GenerateDaySlots(day, windows, bookings)
	if err != nil {
		return nil, fmt.Errorf("%w: slot generation: %v", ErrInternal, err)
	}

	for i := range slots {
		if slots[i].Hour != hour {
			continue
		}
		if !slots[i].Selectable() {
			return nil, fmt.Errorf("%w: %02d:00", ErrSlotNotSelectable, hour)
		}
		slot := slots[i]
		return &slot, nil
	}
	return nil, fmt.Errorf("%w: %02d:00", ErrSlotNotFound, hour)
}
