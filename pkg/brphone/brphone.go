// Package brphone validates and formats Brazilian phone numbers.
//
// All functions operate on digits-only strings; Normalize converts free-typed
// input into that form. Validation follows the Anatel numbering plan: two-digit
// DDD area code, and mobile numbers carry a leading '9' on the local part.
package brphone

import (
	"errors"
	"strings"
)

var (
	// ErrTooShort is returned for numbers with fewer than 10 digits
	ErrTooShort = errors.New("brphone: number too short")

	// ErrTooLong is returned for numbers with more than 13 digits
	ErrTooLong = errors.New("brphone: number too long")

	// ErrInvalidAreaCode is returned when the DDD is not a valid Brazilian area code
	ErrInvalidAreaCode = errors.New("brphone: invalid area code")

	// ErrNotMobile is returned when an 11-digit local number does not start with 9 after the DDD
	ErrNotMobile = errors.New("brphone: not a mobile number")

	// ErrInvalidPhone is returned when a number cannot be converted to international form
	ErrInvalidPhone = errors.New("brphone: invalid phone number")
)

// countryCode is the Brazilian country calling code
const countryCode = "55"

// validDDDs holds every DDD in use (Anatel allocation)
var validDDDs = map[string]bool{
	"11": true, "12": true, "13": true, "14": true, "15": true, "16": true, "17": true, "18": true, "19": true,
	"21": true, "22": true, "24": true, "27": true, "28": true,
	"31": true, "32": true, "33": true, "34": true, "35": true, "37": true, "38": true,
	"41": true, "42": true, "43": true, "44": true, "45": true, "46": true, "47": true, "48": true, "49": true,
	"51": true, "53": true, "54": true, "55": true,
	"61": true, "62": true, "63": true, "64": true, "65": true, "66": true, "67": true, "68": true, "69": true,
	"71": true, "73": true, "74": true, "75": true, "77": true, "79": true,
	"81": true, "82": true, "83": true, "84": true, "85": true, "86": true, "87": true, "88": true, "89": true,
	"91": true, "92": true, "93": true, "94": true, "95": true, "96": true, "97": true, "98": true, "99": true,
}

// Normalize strips every non-digit character from the input
func Normalize(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Mask formats digits progressively as "(DD) DDDDD-DDDD".
// The input is normalized first, so re-applying Mask to its own output is safe.
// At most 11 digits are kept.
func Mask(input string) string {
	digits := Normalize(input)
	if len(digits) > 11 {
		digits = digits[:11]
	}

	switch {
	case len(digits) < 3:
		return digits
	case len(digits) <= 7:
		return "(" + digits[:2] + ") " + digits[2:]
	default:
		return "(" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:]
	}
}

// Validate checks a digits-only number against the Brazilian numbering rules.
// It never panics: every input maps to nil or exactly one sentinel error.
func Validate(digits string) error {
	digits = Normalize(digits)

	if len(digits) < 10 {
		return ErrTooShort
	}
	if len(digits) > 13 {
		return ErrTooLong
	}

	local := stripCountryCode(digits)

	if len(local) < 2 || !validDDDs[local[:2]] {
		return ErrInvalidAreaCode
	}

	if len(local) == 11 && local[2] != '9' {
		return ErrNotMobile
	}

	return nil
}

// ToInternational converts a local number into "55" + DDD + 9-digit local form.
//   - 13 digits with the country code: returned unchanged
//   - 11 digits (DDD + mobile): country code prepended
//   - 10 digits (DDD + number missing the mobile '9'): '9' inserted after the
//     DDD, then the country code prepended
func ToInternational(digits string) (string, error) {
	digits = Normalize(digits)

	switch {
	case len(digits) == 13 && strings.HasPrefix(digits, countryCode):
		return digits, nil
	case len(digits) == 11:
		return countryCode + digits, nil
	case len(digits) == 10:
		return countryCode + digits[:2] + "9" + digits[2:], nil
	default:
		return "", ErrInvalidPhone
	}
}

// stripCountryCode removes an optional leading "55" from a 12 or 13 digit number
func stripCountryCode(digits string) string {
	if (len(digits) == 12 || len(digits) == 13) && strings.HasPrefix(digits, countryCode) {
		return digits[2:]
	}
	return digits
}
