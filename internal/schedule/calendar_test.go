package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixed "now": Thursday, 2026-10-15 14:30 local
var testNow = time.Date(2026, 10, 15, 14, 30, 0, 0, time.UTC)

func TestParseBlockedDates(t *testing.T) {
	blocked, err := ParseBlockedDates([]string{"2026-12-25", "2027-01-01"})
	require.NoError(t, err)

	assert.True(t, blocked.Contains(time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC)))
	assert.False(t, blocked.Contains(time.Date(2026, 12, 26, 0, 0, 0, 0, time.UTC)))

	_, err = ParseBlockedDates([]string{"25/12/2026"})
	assert.Error(t, err)
}

func TestValidateBookableDate(t *testing.T) {
	blocked, err := ParseBlockedDates([]string{"2026-10-20"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		date    time.Time
		wantErr error
	}{
		{
			name: "future weekday",
			date: time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), // Friday
		},
		{
			name: "today is bookable regardless of clock time",
			date: time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "yesterday rejected as past",
			date:    time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC),
			wantErr: ErrDatePast,
		},
		{
			name:    "sunday rejected",
			date:    time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC),
			wantErr: ErrDateSunday,
		},
		{
			name:    "blocked date rejected",
			date:    time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), // Tuesday
			wantErr: ErrDateBlocked,
		},
		{
			name: "past sunday reports past, not sunday",
			date: time.Date(2026, 10, 11, 0, 0, 0, 0, time.UTC),
			// order matters: the past check runs first
			wantErr: ErrDatePast,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBookableDate(tt.date, testNow, blocked)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestDateOnly(t *testing.T) {
	got := DateOnly(time.Date(2026, 10, 15, 23, 59, 58, 123, time.UTC))
	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), got)
}
