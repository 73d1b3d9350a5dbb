package domain

import "errors"

// Business-day bounds: candidate slots run from 08:00 through 18:00 inclusive,
// one hour each, which yields 11 slots per day.
const (
	BusinessDayFirstHour = 8
	BusinessDayLastHour  = 18
	SlotDurationMinutes  = 60
	SlotsPerDay          = BusinessDayLastHour - BusinessDayFirstHour + 1
)

// Validation limits for client-supplied form fields
const (
	MaxClientNameLength = 120
	MaxMessageLength    = 1000
)

// Time format constants
const (
	TimeFormat        = "15:04"      // HH:MM
	DateFormat        = "2006-01-02" // YYYY-MM-DD
	DisplayDateFormat = "02/01/2006" // DD/MM/YYYY, used in client-facing messages
)

// ErrWindowTimesInverted is returned when a window's start is not before its end
var ErrWindowTimesInverted = errors.New("domain: window start time must be before end time")
