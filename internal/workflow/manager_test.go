package workflow

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estudioluz/booking-service/internal/domain"
	"github.com/estudioluz/booking-service/internal/schedule"
	"github.com/estudioluz/booking-service/internal/usecase/create_booking"
	"github.com/estudioluz/booking-service/pkg/brphone"
	"github.com/estudioluz/booking-service/pkg/types"
)

// fixed "now": Thursday, 2026-10-15
var testNow = time.Date(2026, 10, 15, 14, 0, 0, 0, time.UTC)

// sessionDay is the following Friday
var sessionDay = time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type countingMetrics struct {
	mu      sync.Mutex
	started int
	ended   int
}

func (m *countingMetrics) SessionStarted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.started++
}

func (m *countingMetrics) SessionEnded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ended++
}

type fakeAvailability struct {
	windows  []*domain.AvailableWindow
	bookings []*domain.Booking
}

func (f *fakeAvailability) GetAvailableWindows(_ context.Context, _, _ time.Time) ([]*domain.AvailableWindow, error) {
	return f.windows, nil
}

func (f *fakeAvailability) GetBookingsInRange(_ context.Context, _, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, nil
}

// fakeSubmitter records every request; errs are consumed one per call, a
// missing or nil entry means success. block, when set, holds the call open
// until the channel is closed; entered signals that a call is in progress.
type fakeSubmitter struct {
	mu        sync.Mutex
	reqs      []*create_booking.Request
	errs      []error
	bookingID uuid.UUID
	block     chan struct{}
	entered   chan struct{}
}

func (f *fakeSubmitter) Execute(_ context.Context, req *create_booking.Request) (*create_booking.Response, error) {
	f.mu.Lock()
	f.reqs = append(f.reqs, req)
	call := len(f.reqs) - 1
	var err error
	if call < len(f.errs) {
		err = f.errs[call]
	}
	entered := f.entered
	block := f.block
	f.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}
	if block != nil {
		<-block
	}
	if err != nil {
		return nil, err
	}
	return &create_booking.Response{
		ID:           f.bookingID,
		WindowID:     req.WindowID,
		WhatsAppLink: "https://wa.me/5511912345678?text=novo",
	}, nil
}

func (f *fakeSubmitter) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.reqs)
}

func openWindow(hour int, status domain.Status) *domain.AvailableWindow {
	start, _ := types.NewTimeStringFromHour(hour)
	end, _ := start.AddMinutes(domain.SlotDurationMinutes)
	return &domain.AvailableWindow{
		ID:        uuid.New(),
		Date:      sessionDay,
		StartTime: start,
		EndTime:   end,
		Status:    status,
	}
}

func newTestManager(av *fakeAvailability, sub *fakeSubmitter, blocked schedule.BlockedDates) (*Manager, *testClock, *countingMetrics) {
	clock := &testClock{now: testNow}
	metrics := &countingMetrics{}
	m := NewManager(av, sub, blocked, DefaultSessionTTL, metrics, nopLogger{})
	m.SetTimeProvider(clock)
	return m, clock, metrics
}

// drives a session up to a given step; fails the test on any error
func advanceTo(t *testing.T, m *Manager, state State) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	snap := m.Start(ctx)
	id := snap.ID
	if state == StateCalendar {
		return id
	}

	_, err := m.SelectDate(ctx, id, sessionDay)
	require.NoError(t, err)
	if state == StateTime {
		return id
	}

	_, err = m.SelectSlot(ctx, id, 10)
	require.NoError(t, err)
	if state == StateForm {
		return id
	}

	_, err = m.SubmitDetails(ctx, id, "Maria Silva", "maria@example.com", "(11) 99876-5432", "ensaio", "Ensaio de família")
	require.NoError(t, err)
	return id
}

func TestFullFlow(t *testing.T) {
	ctx := context.Background()
	w := openWindow(10, domain.StatusAvailable)
	av := &fakeAvailability{windows: []*domain.AvailableWindow{w}}
	sub := &fakeSubmitter{bookingID: uuid.New()}
	m, _, metrics := newTestManager(av, sub, schedule.BlockedDates{})

	snap := m.Start(ctx)
	assert.Equal(t, StateCalendar, snap.State)
	assert.Nil(t, snap.Date)
	assert.Equal(t, 1, metrics.started)

	snap, err := m.SelectDate(ctx, snap.ID, sessionDay)
	require.NoError(t, err)
	assert.Equal(t, StateTime, snap.State)
	require.NotNil(t, snap.Date)
	assert.Equal(t, sessionDay, *snap.Date)

	snap, err = m.SelectSlot(ctx, snap.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, StateForm, snap.State)
	require.NotNil(t, snap.Slot)
	assert.Equal(t, w.ID, snap.Slot.WindowID)
	assert.Equal(t, "10:00", snap.Slot.StartTime.String())

	snap, err = m.SubmitDetails(ctx, snap.ID, "Maria Silva", "maria@example.com", "(11) 99876-5432", "ensaio", "Ensaio de família")
	require.NoError(t, err)
	assert.Equal(t, StateConfirmation, snap.State)
	require.NotNil(t, snap.Form)
	assert.Equal(t, "11998765432", snap.Form.Phone) // normalized at the Form step
	assert.Equal(t, domain.ServicePortrait, snap.Form.ServiceType)

	snap, err = m.Confirm(ctx, snap.ID)
	require.NoError(t, err)
	assert.Equal(t, StateSubmitted, snap.State)
	require.NotNil(t, snap.Result)
	assert.Equal(t, sub.bookingID, snap.Result.BookingID)
	assert.NotEmpty(t, snap.Result.WhatsAppLink)

	// a finished booking leaves only the result behind
	assert.Nil(t, snap.Date)
	assert.Nil(t, snap.Slot)
	assert.Nil(t, snap.Form)

	require.Equal(t, 1, sub.calls())
	req := sub.reqs[0]
	assert.Equal(t, w.ID, req.WindowID)
	assert.Equal(t, sessionDay, req.Date)
	assert.Equal(t, "10:00", req.StartTime.String())
	assert.Equal(t, "11998765432", req.ClientPhone)
}

func TestSelectDate_Rejections(t *testing.T) {
	blocked, err := schedule.ParseBlockedDates([]string{"2026-10-20"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		date    time.Time
		wantErr error
	}{
		{
			name:    "past date",
			date:    time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC),
			wantErr: schedule.ErrDatePast,
		},
		{
			name:    "sunday",
			date:    time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC),
			wantErr: schedule.ErrDateSunday,
		},
		{
			name:    "blocked date",
			date:    time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
			wantErr: schedule.ErrDateBlocked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			m, _, _ := newTestManager(&fakeAvailability{}, &fakeSubmitter{}, blocked)

			id := m.Start(ctx).ID
			_, err := m.SelectDate(ctx, id, tt.date)
			assert.ErrorIs(t, err, tt.wantErr)

			// rejection leaves the session where it was
			snap, getErr := m.Get(id)
			require.NoError(t, getErr)
			assert.Equal(t, StateCalendar, snap.State)
			assert.Nil(t, snap.Date)
		})
	}
}

func TestStepOrderEnforced(t *testing.T) {
	ctx := context.Background()
	w := openWindow(10, domain.StatusAvailable)
	m, _, _ := newTestManager(&fakeAvailability{windows: []*domain.AvailableWindow{w}}, &fakeSubmitter{}, schedule.BlockedDates{})

	id := m.Start(ctx).ID

	_, err := m.SelectSlot(ctx, id, 10)
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = m.SubmitDetails(ctx, id, "Maria", "maria@example.com", "11998765432", "ensaio", "msg")
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = m.Confirm(ctx, id)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestSelectSlot_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.Status
		hour    int
		wantErr error
	}{
		{
			name:    "taken hour",
			status:  domain.StatusPending,
			hour:    10,
			wantErr: ErrSlotNotSelectable,
		},
		{
			name:    "unbacked hour",
			status:  domain.StatusAvailable,
			hour:    9,
			wantErr: ErrSlotNotSelectable,
		},
		{
			name:    "hour outside business day",
			status:  domain.StatusAvailable,
			hour:    19,
			wantErr: ErrSlotNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			w := openWindow(10, tt.status)
			m, _, _ := newTestManager(&fakeAvailability{windows: []*domain.AvailableWindow{w}}, &fakeSubmitter{}, schedule.BlockedDates{})

			id := advanceTo(t, m, StateTime)
			_, err := m.SelectSlot(ctx, id, tt.hour)
			assert.ErrorIs(t, err, tt.wantErr)

			snap, getErr := m.Get(id)
			require.NoError(t, getErr)
			assert.Equal(t, StateTime, snap.State)
			assert.Nil(t, snap.Slot)
		})
	}
}

func TestSubmitDetails_InvalidInputStaysOnForm(t *testing.T) {
	ctx := context.Background()
	w := openWindow(10, domain.StatusAvailable)
	m, _, _ := newTestManager(&fakeAvailability{windows: []*domain.AvailableWindow{w}}, &fakeSubmitter{}, schedule.BlockedDates{})

	id := advanceTo(t, m, StateForm)

	_, err := m.SubmitDetails(ctx, id, "Maria Silva", "maria@example.com", "1199", "ensaio", "msg")
	assert.ErrorIs(t, err, brphone.ErrTooShort)
	assert.ErrorIs(t, err, create_booking.ErrPhoneInvalid)

	snap, getErr := m.Get(id)
	require.NoError(t, getErr)
	assert.Equal(t, StateForm, snap.State)
	assert.Nil(t, snap.Form)
}

func TestConfirm_FailureKeepsFormAndRetries(t *testing.T) {
	ctx := context.Background()
	w := openWindow(10, domain.StatusAvailable)
	sub := &fakeSubmitter{
		bookingID: uuid.New(),
		errs:      []error{errors.New("storage unavailable"), nil},
	}
	m, _, _ := newTestManager(&fakeAvailability{windows: []*domain.AvailableWindow{w}}, sub, schedule.BlockedDates{})

	id := advanceTo(t, m, StateConfirmation)

	_, err := m.Confirm(ctx, id)
	require.Error(t, err)

	snap, getErr := m.Get(id)
	require.NoError(t, getErr)
	assert.Equal(t, StateFailed, snap.State)

	// everything entered so far survives the failure
	require.NotNil(t, snap.Date)
	require.NotNil(t, snap.Slot)
	require.NotNil(t, snap.Form)
	assert.Equal(t, "Maria Silva", snap.Form.Name)

	// the retry goes through with the same data
	snap, err = m.Confirm(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, StateSubmitted, snap.State)
	require.NotNil(t, snap.Result)
	assert.Equal(t, sub.bookingID, snap.Result.BookingID)
	assert.Equal(t, 2, sub.calls())
}

func TestConfirm_IgnoredWhileInFlight(t *testing.T) {
	ctx := context.Background()
	w := openWindow(10, domain.StatusAvailable)
	sub := &fakeSubmitter{
		bookingID: uuid.New(),
		block:     make(chan struct{}),
		entered:   make(chan struct{}, 1),
	}
	m, _, _ := newTestManager(&fakeAvailability{windows: []*domain.AvailableWindow{w}}, sub, schedule.BlockedDates{})

	id := advanceTo(t, m, StateConfirmation)

	done := make(chan error, 1)
	go func() {
		_, err := m.Confirm(ctx, id)
		done <- err
	}()
	<-sub.entered // the first confirm is now inside the submitter

	snap, err := m.Confirm(ctx, id)
	require.NoError(t, err)
	assert.True(t, snap.InFlight)
	assert.Equal(t, StateConfirmation, snap.State)
	assert.Equal(t, 1, sub.calls()) // the duplicate never reached the submitter

	// stepping back while the submission runs is rejected too; the running
	// submission decides the outcome
	_, err = m.Back(ctx, id)
	assert.ErrorIs(t, err, ErrInvalidState)

	close(sub.block)
	require.NoError(t, <-done)

	snap, err = m.Get(id)
	require.NoError(t, err)
	assert.Equal(t, StateSubmitted, snap.State)
	assert.Equal(t, 1, sub.calls())
}

func TestBack(t *testing.T) {
	ctx := context.Background()
	w := openWindow(10, domain.StatusAvailable)

	t.Run("time back to calendar clears the date", func(t *testing.T) {
		m, _, _ := newTestManager(&fakeAvailability{windows: []*domain.AvailableWindow{w}}, &fakeSubmitter{}, schedule.BlockedDates{})
		id := advanceTo(t, m, StateTime)

		snap, err := m.Back(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, StateCalendar, snap.State)
		assert.Nil(t, snap.Date)
	})

	t.Run("form back to time clears the form", func(t *testing.T) {
		m, _, _ := newTestManager(&fakeAvailability{windows: []*domain.AvailableWindow{w}}, &fakeSubmitter{}, schedule.BlockedDates{})
		id := advanceTo(t, m, StateForm)

		snap, err := m.Back(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, StateTime, snap.State)
		assert.Nil(t, snap.Form)
		assert.NotNil(t, snap.Date)
	})

	t.Run("confirmation back to form keeps the form", func(t *testing.T) {
		m, _, _ := newTestManager(&fakeAvailability{windows: []*domain.AvailableWindow{w}}, &fakeSubmitter{}, schedule.BlockedDates{})
		id := advanceTo(t, m, StateConfirmation)

		snap, err := m.Back(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, StateForm, snap.State)
		require.NotNil(t, snap.Form)
		assert.Equal(t, "Maria Silva", snap.Form.Name)
	})

	t.Run("failed back to form keeps the form", func(t *testing.T) {
		sub := &fakeSubmitter{errs: []error{errors.New("storage unavailable")}}
		m, _, _ := newTestManager(&fakeAvailability{windows: []*domain.AvailableWindow{w}}, sub, schedule.BlockedDates{})
		id := advanceTo(t, m, StateConfirmation)

		_, err := m.Confirm(ctx, id)
		require.Error(t, err)

		snap, err := m.Back(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, StateForm, snap.State)
		require.NotNil(t, snap.Form)
	})

	t.Run("not allowed from calendar", func(t *testing.T) {
		m, _, _ := newTestManager(&fakeAvailability{}, &fakeSubmitter{}, schedule.BlockedDates{})
		id := m.Start(ctx).ID

		_, err := m.Back(ctx, id)
		assert.ErrorIs(t, err, ErrBackNotAllowed)
	})

	t.Run("not allowed from submitted", func(t *testing.T) {
		sub := &fakeSubmitter{bookingID: uuid.New()}
		m, _, _ := newTestManager(&fakeAvailability{windows: []*domain.AvailableWindow{w}}, sub, schedule.BlockedDates{})
		id := advanceTo(t, m, StateConfirmation)

		_, err := m.Confirm(ctx, id)
		require.NoError(t, err)

		_, err = m.Back(ctx, id)
		assert.ErrorIs(t, err, ErrBackNotAllowed)
	})
}

func TestSelectDate_AfterSubmittedStartsFresh(t *testing.T) {
	ctx := context.Background()
	w := openWindow(10, domain.StatusAvailable)
	sub := &fakeSubmitter{bookingID: uuid.New()}
	m, _, _ := newTestManager(&fakeAvailability{windows: []*domain.AvailableWindow{w}}, sub, schedule.BlockedDates{})

	id := advanceTo(t, m, StateConfirmation)
	snap, err := m.Confirm(ctx, id)
	require.NoError(t, err)
	require.Equal(t, StateSubmitted, snap.State)

	snap, err = m.SelectDate(ctx, id, sessionDay)
	require.NoError(t, err)
	assert.Equal(t, StateTime, snap.State)
	assert.Nil(t, snap.Result) // the new booking drops the previous result
}

func TestUnknownSession(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newTestManager(&fakeAvailability{}, &fakeSubmitter{}, schedule.BlockedDates{})

	_, err := m.Get(uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = m.SelectDate(ctx, uuid.New(), sessionDay)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSweepExpiresIdleSessions(t *testing.T) {
	ctx := context.Background()
	m, clock, metrics := newTestManager(&fakeAvailability{}, &fakeSubmitter{}, schedule.BlockedDates{})

	idle := m.Start(ctx).ID
	fresh := m.Start(ctx).ID

	clock.Advance(DefaultSessionTTL + time.Minute)

	// the fresh session was touched after the clock moved
	_, err := m.SelectDate(ctx, fresh, sessionDay)
	require.NoError(t, err)

	m.sweep()

	_, err = m.Get(idle)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = m.Get(fresh)
	assert.NoError(t, err)
	assert.Equal(t, 1, metrics.ended)
}
