package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid", input: "09:00"},
		{name: "valid end of day", input: "23:59"},
		{name: "missing leading zero", input: "9:00", wantErr: true},
		{name: "non-padded minute", input: "09:5", wantErr: true},
		{name: "out of range hour", input: "24:00", wantErr: true},
		{name: "garbage", input: "morning", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestNewTimeStringFromHour(t *testing.T) {
	ts, err := NewTimeStringFromHour(8)
	require.NoError(t, err)
	assert.Equal(t, "08:00", ts.String())

	_, err = NewTimeStringFromHour(24)
	assert.Error(t, err)

	_, err = NewTimeStringFromHour(-1)
	assert.Error(t, err)
}

func TestTimeStringHourAndAddMinutes(t *testing.T) {
	ts := TimeString("10:30")

	hour, err := ts.Hour()
	require.NoError(t, err)
	assert.Equal(t, 10, hour)

	next, err := ts.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), next)

	wrapped, err := TimeString("23:30").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:30"), wrapped)
}

func TestTimeStringComparisons(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("18:00"))
	assert.False(t, TimeString("18:00").IsBefore("08:00"))
	assert.True(t, TimeString("18:00").IsAfter("08:00"))
	assert.False(t, TimeString("08:00").IsBefore("08:00"))
}

func TestTimeStringAt(t *testing.T) {
	date := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

	got, err := TimeString("10:00").At(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC), got)
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan([]byte("18:30:00")))
	assert.Equal(t, TimeString("18:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 1, 1, 9, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("09:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
