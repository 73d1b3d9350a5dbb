package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// timeLayout is the wire format for times of day ("15:04")
const timeLayout = "15:04"

// TimeString represents a time of day in "HH:MM" form.
// It is the storage and API representation for slot start times.
type TimeString string

// NewTimeString builds a TimeString from the clock part of t
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and validates an "HH:MM" string
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromHour builds a TimeString for a whole hour (e.g. 9 -> "09:00")
func NewTimeStringFromHour(hour int) (TimeString, error) {
	if hour < 0 || hour > 23 {
		return "", fmt.Errorf("types: hour out of range: %d", hour)
	}
	return TimeString(fmt.Sprintf("%02d:00", hour)), nil
}

// String returns the "HH:MM" representation
func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the value is empty
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks the canonical "HH:MM" form. time.Parse alone accepts
// "9:00", which would leak non-canonical values into storage and display.
func (t TimeString) Validate() error {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return fmt.Errorf("types: invalid time string format: %v", err)
	}
	if parsed.Format(timeLayout) != string(t) {
		return fmt.Errorf("types: time string not in HH:MM form: %q", t)
	}
	return nil
}

// parse returns the value as a time.Time on the zero date
func (t TimeString) parse() (time.Time, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("types: invalid time string format: %v", err)
	}
	return parsed, nil
}

// Hour returns the hour component (0-23)
func (t TimeString) Hour() (int, error) {
	parsed, err := t.parse()
	if err != nil {
		return 0, err
	}
	return parsed.Hour(), nil
}

// AddMinutes returns the time shifted forward by the given number of minutes.
// The result stays within the same day representation (wraps at midnight).
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := t.parse()
	if err != nil {
		return "", err
	}
	return TimeString(parsed.Add(time.Duration(minutes) * time.Minute).Format(timeLayout)), nil
}

// IsBefore reports whether t is strictly earlier than other
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.parse()
	b, errB := other.parse()
	if errA != nil || errB != nil {
		return false
	}
	return a.Before(b)
}

// IsAfter reports whether t is strictly later than other
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.parse()
	b, errB := other.parse()
	if errA != nil || errB != nil {
		return false
	}
	return a.After(b)
}

// At places the time of day onto the given calendar date
func (t TimeString) At(date time.Time) (time.Time, error) {
	parsed, err := t.parse()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, date.Location()), nil
}

// Value implements driver.Valuer for database storage
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan implements sql.Scanner.
// Postgres TIME columns come back as "HH:MM:SS"; the seconds are dropped.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
}

func (t *TimeString) scanString(s string) error {
	if len(s) >= 5 {
		s = s[:5]
	}
	*t = TimeString(s)
	return t.Validate()
}
