package get_schedule_days

import "time"

// Blocking reasons reported per day
const (
	ReasonPast    = "past"
	ReasonSunday  = "sunday"
	ReasonBlocked = "blocked"
)

// Request asks for the day grid of an inclusive date range
type Request struct {
	StartDate time.Time
	EndDate   time.Time
}

// Response carries one entry per day of the range, ascending
type Response struct {
	Days []Day
}

// Day is the calendar view of one date. Reason is set only when the day is
// not bookable; HasAvailability reports whether any open window exists.
type Day struct {
	Date            time.Time
	Bookable        bool
	Reason          string
	HasAvailability bool
}
