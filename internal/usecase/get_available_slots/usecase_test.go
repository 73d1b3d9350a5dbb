package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estudioluz/booking-service/internal/domain"
	"github.com/estudioluz/booking-service/internal/schedule"
	"github.com/estudioluz/booking-service/pkg/types"
)

// fixed "now": Thursday, 2026-10-15
var testNow = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

var gridDay = time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAvailability struct {
	windows    []*domain.AvailableWindow
	bookings   []*domain.Booking
	windowsErr error
}

func (f *fakeAvailability) GetAvailableWindows(_ context.Context, _, _ time.Time) ([]*domain.AvailableWindow, error) {
	if f.windowsErr != nil {
		return nil, f.windowsErr
	}
	return f.windows, nil
}

func (f *fakeAvailability) GetBookingsInRange(_ context.Context, _, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func window(hour int, status domain.Status) *domain.AvailableWindow {
	start, _ := types.NewTimeStringFromHour(hour)
	end, _ := start.AddMinutes(domain.SlotDurationMinutes)
	return &domain.AvailableWindow{
		ID:        uuid.New(),
		Date:      gridDay,
		StartTime: start,
		EndTime:   end,
		Status:    status,
	}
}

func newTestUseCase(av *fakeAvailability) *UseCase {
	uc := NewUseCase(av, schedule.BlockedDates{}, nopLogger{})
	uc.timeProvider = fixedClock{now: testNow}
	return uc
}

func TestExecute_FullGrid(t *testing.T) {
	open := window(10, domain.StatusAvailable)
	taken := window(14, domain.StatusConfirmed)
	uc := newTestUseCase(&fakeAvailability{windows: []*domain.AvailableWindow{open, taken}})

	resp, err := uc.Execute(context.Background(), &Request{Date: gridDay})
	require.NoError(t, err)

	require.Len(t, resp.Slots, domain.SlotsPerDay)
	assert.Equal(t, "08:00", resp.Slots[0].StartTime)
	assert.Equal(t, "18:00", resp.Slots[len(resp.Slots)-1].StartTime)
	assert.Equal(t, "19:00", resp.Slots[len(resp.Slots)-1].EndTime)

	openSlot := resp.Slots[2] // 10:00
	assert.True(t, openSlot.Selectable)
	assert.False(t, openSlot.Taken)
	require.NotNil(t, openSlot.WindowID)
	assert.Equal(t, open.ID.String(), *openSlot.WindowID)

	takenSlot := resp.Slots[6] // 14:00
	assert.True(t, takenSlot.Taken)
	assert.False(t, takenSlot.Selectable)

	// hours with no window at all are unbacked, not taken
	unbacked := resp.Slots[0]
	assert.False(t, unbacked.Taken)
	assert.False(t, unbacked.Selectable)
	assert.Nil(t, unbacked.WindowID)
}

func TestExecute_DateRejections(t *testing.T) {
	blocked, err := schedule.ParseBlockedDates([]string{"2026-10-20"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		date    time.Time
		wantErr error
	}{
		{
			name:    "zero date",
			date:    time.Time{},
			wantErr: ErrInvalidInput,
		},
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
			uc := NewUseCase(&fakeAvailability{}, blocked, nopLogger{})
			uc.timeProvider = fixedClock{now: testNow}

			_, err := uc.Execute(context.Background(), &Request{Date: tt.date})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_BackendErrorPassesThrough(t *testing.T) {
	backendErr := errors.New("availability.service: backend unavailable")
	uc := newTestUseCase(&fakeAvailability{windowsErr: backendErr})

	_, err := uc.Execute(context.Background(), &Request{Date: gridDay})
	assert.ErrorIs(t, err, backendErr)
}
