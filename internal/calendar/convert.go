package calendar

import (
	"fmt"
	"time"

	"github.com/nepalcal/bsdate/internal/constants"
	"github.com/nepalcal/bsdate/internal/errorutil"
)

const secondsPerDay = int64(constants.Day / time.Second)

// DayOffsetOf returns the whole days between the epoch and the calendar date
// of t in t's own location. Two instants on the same calendar day share an
// offset regardless of their time of day.
func (t *Table) DayOffsetOf(at time.Time) int {
	midnight := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.UTC)
	return int(floorDiv64(midnight.Unix()-t.epoch.Unix(), secondsPerDay))
}

// FromDayOffset maps a day offset from the epoch to a BS year, 0-based month
// and 1-based day.
func (t *Table) FromDayOffset(days int) (year, month, day int, err error) {
	if days < 0 || days >= t.TotalDays() {
		return 0, 0, 0, &errorutil.RangeError{
			Field: "day offset",
			Value: days,
			Min:   0,
			Max:   t.TotalDays() - 1,
			Msg: fmt.Sprintf("date is outside the supported range %s - %s",
				t.Minimum().Format(constants.ISODateLayout), t.Maximum().Format(constants.ISODateLayout)),
		}
	}

	// The estimate only seeds the scan; both loops below correct it.
	idx := days / constants.AverageYearDays
	if idx >= len(t.entries) {
		idx = len(t.entries) - 1
	}
	for idx > 0 && days < t.entries[idx-1].CumulativeDays {
		idx--
	}
	for days >= t.entries[idx].CumulativeDays {
		idx++
	}

	if idx > 0 {
		days -= t.entries[idx-1].CumulativeDays
	}

	entry := &t.entries[idx]
	month = 0
	for days >= entry.Months[month] {
		days -= entry.Months[month]
		month++
	}

	return entry.Year, month, days + 1, nil
}

// NormalizeMonth carries month overflow or underflow into the year using
// floor division, so month 14 of 2080 is month 2 of 2081 and month -1 is the
// last month of the previous year.
func NormalizeMonth(year, month int) (int, int) {
	return year + floorDiv(month, constants.MonthsPerYear), floorMod(month, constants.MonthsPerYear)
}

// DayOffset returns the day offset from the epoch of a BS date. Month may be
// any integer and is normalised with NormalizeMonth. Day is not range
// checked; callers that need strict validation use Validate.
func (t *Table) DayOffset(year, month, day int) (int, error) {
	year, month = NormalizeMonth(year, month)
	entry, err := t.Entry(year)
	if err != nil {
		return 0, err
	}

	days := entry.CumulativeDays - entry.TotalDays
	for i := 0; i < month; i++ {
		days += entry.Months[i]
	}
	return days + day - 1, nil
}

// ToBS converts an instant to its BS date.
func (t *Table) ToBS(at time.Time) (year, month, day int, err error) {
	return t.FromDayOffset(t.DayOffsetOf(at))
}

// ToTime converts a BS date to the UTC midnight instant of that day.
func (t *Table) ToTime(year, month, day int) (time.Time, error) {
	days, err := t.DayOffset(year, month, day)
	if err != nil {
		return time.Time{}, err
	}
	return t.epoch.AddDate(0, 0, days), nil
}

// Validate reports whether year, 0-based month and day name an existing BS
// date. No normalisation is applied.
func (t *Table) Validate(year, month, day int) error {
	if !t.HasYear(year) {
		return t.yearRangeError(year)
	}
	if month < 0 || month >= constants.MonthsPerYear {
		return &errorutil.RangeError{
			Field: "month",
			Value: month,
			Min:   0,
			Max:   constants.MonthsPerYear - 1,
			Msg:   fmt.Sprintf("invalid nepali month index %d, must be between 0 - 11", month),
		}
	}
	return t.validateDay(year, month, day)
}

func (t *Table) validateDay(year, month, day int) error {
	limit := t.entries[year-t.MinYear()].Months[month]
	if day < 1 || day > limit {
		return &errorutil.RangeError{
			Field: "day",
			Value: day,
			Min:   1,
			Max:   limit,
			Msg: fmt.Sprintf("invalid nepali date %d, must be between 1 - %d in %d %d",
				day, limit, year, month+1),
		}
	}
	return nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

func floorDiv64(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
