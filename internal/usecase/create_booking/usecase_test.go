package create_booking

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estudioluz/booking-service/internal/domain"
	"github.com/estudioluz/booking-service/internal/schedule"
	"github.com/estudioluz/booking-service/internal/service/availability"
	"github.com/estudioluz/booking-service/pkg/brphone"
	"github.com/estudioluz/booking-service/pkg/types"
)

// fixed "now": Thursday, 2026-10-15
var testNow = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

// bookingDay is the following Friday
var bookingDay = time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeAvailability and fakeBookingRepo share an event log so tests can
// assert the persist -> claim ordering
type fakeAvailability struct {
	windows  []*domain.AvailableWindow
	bookings []*domain.Booking
	claimErr error
	events   *[]string
}

func (f *fakeAvailability) GetAvailableWindows(_ context.Context, _, _ time.Time) ([]*domain.AvailableWindow, error) {
	return f.windows, nil
}

func (f *fakeAvailability) GetBookingsInRange(_ context.Context, _, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeAvailability) ClaimWindow(_ context.Context, _ uuid.UUID) error {
	*f.events = append(*f.events, "claim")
	return f.claimErr
}

type fakeBookingRepo struct {
	events      *[]string
	created     *domain.Booking
	markedSent  bool
	markSentErr error
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	*f.events = append(*f.events, "persist")
	created := *b
	created.ID = uuid.New()
	created.CreatedAt = testNow
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) MarkNotificationSent(_ context.Context, _ uuid.UUID) error {
	if f.markSentErr != nil {
		return f.markSentErr
	}
	f.markedSent = true
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type countingMetrics struct {
	created int
	failed  int
}

func (m *countingMetrics) BookingCreated() { m.created++ }
func (m *countingMetrics) BookingFailed()  { m.failed++ }

func openWindow(hour int) *domain.AvailableWindow {
	start, _ := types.NewTimeStringFromHour(hour)
	end, _ := start.AddMinutes(domain.SlotDurationMinutes)
	return &domain.AvailableWindow{
		ID:        uuid.New(),
		Date:      bookingDay,
		StartTime: start,
		EndTime:   end,
		Status:    domain.StatusAvailable,
	}
}

func validRequest(windowID uuid.UUID) *Request {
	return &Request{
		WindowID:    windowID,
		Date:        bookingDay,
		StartTime:   types.TimeString("10:00"),
		ClientName:  "Maria Silva",
		ClientEmail: "maria@example.com",
		ClientPhone: "(11) 99876-5432",
		ServiceType: "ensaio",
		Message:     "Ensaio para a família toda.",
	}
}

func newTestUseCase(av *fakeAvailability, repo *fakeBookingRepo, m Metrics) *UseCase {
	uc := NewUseCase(av, repo, fakeTxManager{}, schedule.BlockedDates{}, "11912345678", m, nopLogger{})
	uc.timeProvider = fixedClock{now: testNow}
	return uc
}

func TestExecute_HappyPath(t *testing.T) {
	var events []string
	w := openWindow(10)
	av := &fakeAvailability{windows: []*domain.AvailableWindow{w}, events: &events}
	repo := &fakeBookingRepo{events: &events}
	m := &countingMetrics{}
	uc := newTestUseCase(av, repo, m)

	resp, err := uc.Execute(context.Background(), validRequest(w.ID))
	require.NoError(t, err)

	// Persistence strictly precedes the claim
	assert.Equal(t, []string{"persist", "claim"}, events)

	assert.Equal(t, w.ID, resp.WindowID)
	assert.Equal(t, domain.StatusPending, resp.Status)
	assert.Equal(t, "Maria Silva", resp.ClientName)
	assert.Equal(t, "11998765432", resp.ClientPhone)
	assert.Equal(t, domain.ServicePortrait, resp.ServiceType)
	assert.Equal(t, bookingDay, resp.PreferredDate)
	assert.Equal(t, "10:00", resp.PreferredTime.String())

	// Notification link targets the studio number with the booking message
	assert.True(t, strings.HasPrefix(resp.WhatsAppLink, "https://wa.me/5511912345678?text="))
	assert.False(t, resp.NotificationFailed)
	assert.True(t, repo.markedSent)
	assert.Equal(t, 1, m.created)
	assert.Equal(t, 0, m.failed)
}

func TestExecute_ClaimFailureAbortsSubmission(t *testing.T) {
	var events []string
	w := openWindow(10)
	av := &fakeAvailability{
		windows:  []*domain.AvailableWindow{w},
		claimErr: availability.ErrWindowNotClaimable,
		events:   &events,
	}
	repo := &fakeBookingRepo{events: &events}
	m := &countingMetrics{}
	uc := newTestUseCase(av, repo, m)

	_, err := uc.Execute(context.Background(), validRequest(w.ID))
	assert.ErrorIs(t, err, availability.ErrWindowNotClaimable)

	// The persist ran first inside the transaction; no notification followed
	assert.Equal(t, []string{"persist", "claim"}, events)
	assert.False(t, repo.markedSent)
	assert.Equal(t, 1, m.failed)
	assert.Equal(t, 0, m.created)
}

func TestExecute_FormValidationFailures(t *testing.T) {
	w := openWindow(10)

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{
			name:    "empty name",
			mutate:  func(r *Request) { r.ClientName = "  " },
			wantErr: ErrFormIncomplete,
		},
		{
			name:    "empty email",
			mutate:  func(r *Request) { r.ClientEmail = "" },
			wantErr: ErrFormIncomplete,
		},
		{
			name:    "malformed email",
			mutate:  func(r *Request) { r.ClientEmail = "maria@@example" },
			wantErr: ErrEmailInvalid,
		},
		{
			name:    "short phone keeps the subtype",
			mutate:  func(r *Request) { r.ClientPhone = "1199876" },
			wantErr: brphone.ErrTooShort,
		},
		{
			name:    "short phone also matches the generic phone error",
			mutate:  func(r *Request) { r.ClientPhone = "1199876" },
			wantErr: ErrPhoneInvalid,
		},
		{
			name:    "unknown service type",
			mutate:  func(r *Request) { r.ServiceType = "retrato" },
			wantErr: ErrServiceTypeInvalid,
		},
		{
			name:    "empty message",
			mutate:  func(r *Request) { r.Message = "" },
			wantErr: ErrFormIncomplete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var events []string
			av := &fakeAvailability{windows: []*domain.AvailableWindow{w}, events: &events}
			repo := &fakeBookingRepo{events: &events}
			uc := newTestUseCase(av, repo, &countingMetrics{})

			req := validRequest(w.ID)
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			// Nothing reached the backend
			assert.Empty(t, events)
		})
	}
}

func TestExecute_DateRejections(t *testing.T) {
	w := openWindow(10)

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
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var events []string
			av := &fakeAvailability{windows: []*domain.AvailableWindow{w}, events: &events}
			repo := &fakeBookingRepo{events: &events}
			uc := newTestUseCase(av, repo, &countingMetrics{})

			req := validRequest(w.ID)
			req.Date = tt.date

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, events)
		})
	}
}

func TestExecute_SlotNoLongerAvailable(t *testing.T) {
	var events []string
	w := openWindow(10)
	w.Status = domain.StatusPending // claimed since the grid was shown
	av := &fakeAvailability{windows: []*domain.AvailableWindow{w}, events: &events}
	repo := &fakeBookingRepo{events: &events}
	uc := newTestUseCase(av, repo, &countingMetrics{})

	_, err := uc.Execute(context.Background(), validRequest(w.ID))
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Empty(t, events)
}

func TestExecute_DifferentWindowBacksTheHour(t *testing.T) {
	var events []string
	w := openWindow(10)
	av := &fakeAvailability{windows: []*domain.AvailableWindow{w}, events: &events}
	repo := &fakeBookingRepo{events: &events}
	uc := newTestUseCase(av, repo, &countingMetrics{})

	req := validRequest(uuid.New()) // references a window that is not the backing one

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_HourOutsideBusinessDay(t *testing.T) {
	var events []string
	w := openWindow(10)
	av := &fakeAvailability{windows: []*domain.AvailableWindow{w}, events: &events}
	repo := &fakeBookingRepo{events: &events}
	uc := newTestUseCase(av, repo, &countingMetrics{})

	req := validRequest(w.ID)
	req.StartTime = types.TimeString("19:00")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrWindowNotFound)
}

func TestExecute_NotificationFailureKeepsBooking(t *testing.T) {
	var events []string
	w := openWindow(10)
	av := &fakeAvailability{windows: []*domain.AvailableWindow{w}, events: &events}
	repo := &fakeBookingRepo{events: &events}
	m := &countingMetrics{}

	// An unusable studio number makes the link build fail after submission
	uc := NewUseCase(av, repo, fakeTxManager{}, schedule.BlockedDates{}, "123", m, nopLogger{})
	uc.timeProvider = fixedClock{now: testNow}

	resp, err := uc.Execute(context.Background(), validRequest(w.ID))
	require.NoError(t, err)

	// The booking stands; only the notification is reported as failed
	assert.Equal(t, []string{"persist", "claim"}, events)
	assert.True(t, resp.NotificationFailed)
	assert.Empty(t, resp.WhatsAppLink)
	assert.False(t, repo.markedSent)
	assert.Equal(t, 1, m.created)
}
