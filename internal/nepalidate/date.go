// Package nepalidate provides NepaliDate, a Bikram Sambat calendar date
// paired with its Gregorian instant, together with BS calendar arithmetic,
// quarter and fiscal year helpers, month grids and the AD/BS string
// conversion functions.
//
// A NepaliDate is a value: every operation that changes a date returns a new
// one rebuilt from BS components, so the instant and the BS fields always
// agree.
package nepalidate

import (
	"fmt"
	"time"

	"github.com/nepalcal/bsdate/internal/calendar"
	"github.com/nepalcal/bsdate/internal/constants"
	"github.com/nepalcal/bsdate/internal/formatter"
	"github.com/nepalcal/bsdate/internal/locale"
)

var table = calendar.Default()

// NepaliDate is a BS date with the Gregorian instant it was built from.
// The zero value is not a valid date.
type NepaliDate struct {
	instant time.Time
	year    int
	month   int // 0-based
	day     int
}

// Now returns the BS date of the current local time.
func Now() (NepaliDate, error) {
	return FromTime(time.Now())
}

// FromTime converts an instant. The BS date is taken from the calendar date
// of t in t's location; the time of day is kept on the instant.
func FromTime(t time.Time) (NepaliDate, error) {
	year, month, day, err := table.ToBS(t)
	if err != nil {
		return NepaliDate{}, err
	}
	return NepaliDate{instant: t, year: year, month: month, day: day}, nil
}

// FromUnixMilli converts milliseconds since the Unix epoch, read in UTC.
func FromUnixMilli(ms int64) (NepaliDate, error) {
	return FromTime(time.UnixMilli(ms).UTC())
}

// New builds a date from a BS year, 0-based month and day. Months outside
// 0-11 carry into the year, so New(2080, 14, 1) is 2081 Asar 1. A day that
// does not exist in the resulting month is a range error.
func New(year, month, day int) (NepaliDate, error) {
	year, month = calendar.NormalizeMonth(year, month)
	if err := table.Validate(year, month, day); err != nil {
		return NepaliDate{}, err
	}

	instant, err := table.ToTime(year, month, day)
	if err != nil {
		return NepaliDate{}, err
	}
	return FromTime(instant)
}

// MustNew is like New but panics if the date does not exist.
func MustNew(year, month, day int) NepaliDate {
	d, err := New(year, month, day)
	if err != nil {
		panic(fmt.Sprintf("nepalidate: %v", err))
	}
	return d
}

// Parse reads YYYY-MM-DD, YYYY/MM/DD or YYYY.MM.DD with a 1-based month.
// Missing month and day components default to 1.
func Parse(s string) (NepaliDate, error) {
	year, month, day, err := table.Parse(s)
	if err != nil {
		return NepaliDate{}, err
	}
	return New(year, month, day)
}

// Clone returns a copy of d.
func (d NepaliDate) Clone() NepaliDate {
	return d
}

// Year returns the BS year.
func (d NepaliDate) Year() int { return d.year }

// Month returns the 0-based BS month.
func (d NepaliDate) Month() int { return d.month }

// Day returns the BS day of month.
func (d NepaliDate) Day() int { return d.day }

// Weekday returns the day of week of the instant, 0 being Sunday.
func (d NepaliDate) Weekday() int { return int(d.instant.Weekday()) }

// Hour returns the hour of the instant.
func (d NepaliDate) Hour() int { return d.instant.Hour() }

// Minute returns the minute of the instant.
func (d NepaliDate) Minute() int { return d.instant.Minute() }

// Second returns the second of the instant.
func (d NepaliDate) Second() int { return d.instant.Second() }

// Millisecond returns the millisecond of the instant.
func (d NepaliDate) Millisecond() int { return d.instant.Nanosecond() / int(time.Millisecond) }

// UnixMilli returns the instant as milliseconds since the Unix epoch.
func (d NepaliDate) UnixMilli() int64 { return d.instant.UnixMilli() }

// Time returns the Gregorian instant.
func (d NepaliDate) Time() time.Time { return d.instant }

// Set rebuilds the date from new BS components with New.
func (d NepaliDate) Set(year, month, day int) (NepaliDate, error) {
	return New(year, month, day)
}

// SetYear returns d moved to year.
func (d NepaliDate) SetYear(year int) (NepaliDate, error) {
	return New(year, d.month, d.day)
}

// SetMonth returns d moved to the 0-based month, carrying overflow into the year.
func (d NepaliDate) SetMonth(month int) (NepaliDate, error) {
	return New(d.year, month, d.day)
}

// SetDay returns d moved to day of the same month.
func (d NepaliDate) SetDay(day int) (NepaliDate, error) {
	return New(d.year, d.month, day)
}

// DaysInMonth returns the length of d's month, or 0 when d is not a valid
// date such as the zero value.
func (d NepaliDate) DaysInMonth() int {
	n, err := table.DaysInMonth(d.year, d.month)
	if err != nil {
		return 0
	}
	return n
}

// IsLeapYear reports whether d's year has 366 days.
func (d NepaliDate) IsLeapYear() bool {
	return table.IsLeapYear(d.year)
}

// WeeksInMonth returns the number of calendar rows d's month spans when
// weeks start on Sunday.
func (d NepaliDate) WeeksInMonth() int {
	first, err := New(d.year, d.month, 1)
	if err != nil {
		return 0
	}
	cells := first.Weekday() + d.DaysInMonth()
	return (cells + constants.DaysPerWeek - 1) / constants.DaysPerWeek
}

// IsValid reports whether d holds an existing BS date.
func (d NepaliDate) IsValid() bool {
	return IsValid(d.year, d.month, d.day)
}

// Format renders d with a pattern, see package formatter.
func (d NepaliDate) Format(pattern string) string {
	return formatter.Format(d, pattern)
}

// String returns YYYY/M/D with a 1-based unpadded month.
func (d NepaliDate) String() string {
	return fmt.Sprintf("%d/%d/%d", d.year, d.month+1, d.day)
}

// MarshalText encodes d as YYYY-MM-DD.
func (d NepaliDate) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("nepalidate: cannot marshal invalid date %s", d)
	}
	return []byte(d.Format(constants.DefaultBSPattern)), nil
}

// UnmarshalText decodes a date written in any form accepted by Parse.
func (d *NepaliDate) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// IsValid reports whether year, 0-based month and day name an existing BS
// date. It never fails.
func IsValid(year, month, day int) bool {
	return table.Validate(year, month, day) == nil
}

// Minimum returns the Gregorian instant of the first supported BS date.
func Minimum() time.Time { return table.Minimum() }

// Maximum returns the Gregorian instant of the last supported BS date.
func Maximum() time.Time { return table.Maximum() }

// MinYear returns the first BS year in the calendar table.
func MinYear() int { return table.MinYear() }

// MaxYear returns the last BS year in the calendar table.
func MaxYear() int { return table.MaxYear() }

// MonthName returns the English or Nepali name of a 0-based month.
func MonthName(month int, short, localized bool) (string, error) {
	return locale.MonthName(month, short, localized)
}

// DayName returns the English or Nepali name of a weekday, 0 being Sunday.
func DayName(day int, short, localized bool) (string, error) {
	return locale.DayName(day, short, localized)
}
