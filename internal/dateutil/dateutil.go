// Package dateutil handles the Gregorian side of conversions: strict ISO
// parsing for the AD/BS boundary functions, lenient parsing for command line
// input and user-friendly output patterns.
package dateutil

import (
	"regexp"
	"strings"
	"time"

	"github.com/nepalcal/bsdate/internal/constants"
	"github.com/nepalcal/bsdate/internal/errorutil"
)

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsISODate reports whether s has the lexical shape YYYY-MM-DD.
func IsISODate(s string) bool {
	return isoDatePattern.MatchString(s)
}

// ParseISODate parses s strictly as YYYY-MM-DD and returns UTC midnight of
// that calendar date. Impossible dates such as 2023-02-30 are rejected.
func ParseISODate(s string) (time.Time, error) {
	if !IsISODate(s) {
		return time.Time{}, &errorutil.FormatError{Input: s, Expected: "YYYY-MM-DD"}
	}

	t, err := time.ParseInLocation(constants.ISODateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, &errorutil.FormatError{Input: s, Expected: "a valid calendar date", Err: err}
	}
	return t, nil
}

// FormatISODate renders the calendar date of t in its own location as YYYY-MM-DD.
func FormatISODate(t time.Time) string {
	return t.Format(constants.ISODateLayout)
}

// FormatDateToGoLayout converts user-friendly date format patterns to Go time reference patterns.
//
// Example conversions:
//   - "YYYY" -> "2006" (4-digit year)
//   - "MM" -> "01" (2-digit month with leading zero)
//   - "DD" -> "02" (2-digit day with leading zero)
//   - "M/D/YYYY" -> "1/2/2006"
func FormatDateToGoLayout(userFormat string) string {
	// AIDEV-NOTE: Order matters - replace longer patterns first to avoid partial matches
	replacer := strings.NewReplacer(
		"YYYY", "2006",
		"YY", "06",
		"MMMM", "January",
		"MMM", "Jan",
		"MM", "01",
		"M", "1",
		"DDDD", "Monday",
		"DDD", "Mon",
		"DD", "02",
		"D", "2",
	)

	return replacer.Replace(userFormat)
}

// FormatDateWithPattern formats a Gregorian time using a user-friendly pattern.
func FormatDateWithPattern(t time.Time, userPattern string) string {
	return t.Format(FormatDateToGoLayout(userPattern))
}

// ParseFlexibleDate parses Gregorian dates typed on the command line. The
// result is UTC midnight of the parsed calendar date.
func ParseFlexibleDate(dateStr string) (time.Time, error) {
	// Year-first layouts come first: they are unambiguous.
	formats := []string{
		"2006-01-02",
		"2006-1-2",
		"2006/01/02",
		"2006/1/2",
		"2006.01.02",
		"20060102",
		"1/2/2006",
		"01/02/2006",
		"1-2-2006",
		"01-02-2006",
		"Jan 2, 2006",
		"2 Jan 2006",
	}

	trimmed := strings.TrimSpace(dateStr)
	for _, format := range formats {
		if parsed, err := time.ParseInLocation(format, trimmed, time.UTC); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, &errorutil.FormatError{
		Input:    dateStr,
		Expected: "a Gregorian date such as YYYY-MM-DD or M/D/YYYY",
	}
}

// Today returns UTC midnight of the current calendar date in loc.
func Today(loc *time.Location) time.Time {
	now := time.Now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
