// Package calendar holds the Bikram Sambat month-length table and the
// conversion engine mapping day offsets from the epoch to BS dates and back.
//
// The table is built once from literal data when the package is initialised
// and is read-only afterwards, so a *Table is safe for concurrent use.
package calendar

import (
	"fmt"
	"time"

	"github.com/nepalcal/bsdate/internal/constants"
	"github.com/nepalcal/bsdate/internal/errorutil"
)

// YearEntry holds the month lengths of one BS year and the totals derived
// from them when the table is built.
type YearEntry struct {
	Year   int
	Months [constants.MonthsPerYear]int

	// TotalDays is the sum of Months.
	TotalDays int
	// CumulativeDays counts the days from the epoch through the end of Year.
	CumulativeDays int
}

// Table is an immutable BS calendar anchored at an epoch instant that
// corresponds to day 1 of the first entry's Baisakh.
type Table struct {
	epoch   time.Time
	entries []YearEntry
}

var defaultTable = MustNewTable(epoch, bikramSambatYears)

// Default returns the process-wide table covering 1976..2100 BS.
func Default() *Table {
	return defaultTable
}

// NewTable validates rows and derives the per-year and cumulative totals.
// Rows must be non-empty, in strictly increasing contiguous year order and
// every month length must be positive.
func NewTable(epoch time.Time, rows []YearEntry) (*Table, error) {
	if len(rows) == 0 {
		return nil, &errorutil.RangeError{Field: "table", Msg: "calendar table has no entries"}
	}

	entries := make([]YearEntry, len(rows))
	running := 0
	for i, row := range rows {
		if i > 0 && row.Year != rows[i-1].Year+1 {
			return nil, &errorutil.RangeError{
				Field: "year",
				Value: row.Year,
				Msg:   fmt.Sprintf("calendar table year %d does not follow %d", row.Year, rows[i-1].Year),
			}
		}

		total := 0
		for m, days := range row.Months {
			if days <= 0 {
				return nil, &errorutil.RangeError{
					Field: "month length",
					Value: days,
					Msg:   fmt.Sprintf("calendar table year %d month %d has non-positive length %d", row.Year, m+1, days),
				}
			}
			total += days
		}

		running += total
		entries[i] = YearEntry{
			Year:           row.Year,
			Months:         row.Months,
			TotalDays:      total,
			CumulativeDays: running,
		}
	}

	return &Table{
		epoch:   time.Date(epoch.Year(), epoch.Month(), epoch.Day(), 0, 0, 0, 0, time.UTC),
		entries: entries,
	}, nil
}

// MustNewTable is like NewTable but panics on malformed data.
func MustNewTable(epoch time.Time, rows []YearEntry) *Table {
	t, err := NewTable(epoch, rows)
	if err != nil {
		panic(fmt.Sprintf("calendar: %v", err))
	}
	return t
}

// Epoch returns the UTC midnight instant of the first supported BS day.
func (t *Table) Epoch() time.Time { return t.epoch }

// MinYear returns the first supported BS year.
func (t *Table) MinYear() int { return t.entries[0].Year }

// MaxYear returns the last supported BS year.
func (t *Table) MaxYear() int { return t.entries[len(t.entries)-1].Year }

// Len returns the number of years in the table.
func (t *Table) Len() int { return len(t.entries) }

// TotalDays returns the number of days covered by the whole table.
func (t *Table) TotalDays() int { return t.entries[len(t.entries)-1].CumulativeDays }

// Minimum returns the Gregorian instant of the first supported day.
func (t *Table) Minimum() time.Time { return t.epoch }

// Maximum returns the Gregorian instant of the last supported day.
func (t *Table) Maximum() time.Time { return t.epoch.AddDate(0, 0, t.TotalDays()-1) }

// HasYear reports whether year is covered by the table.
func (t *Table) HasYear(year int) bool {
	return year >= t.MinYear() && year <= t.MaxYear()
}

// Entry returns the table row for year.
func (t *Table) Entry(year int) (YearEntry, error) {
	if !t.HasYear(year) {
		return YearEntry{}, t.yearRangeError(year)
	}
	return t.entries[year-t.MinYear()], nil
}

// MonthLengths returns a copy of the 12 month lengths of year.
func (t *Table) MonthLengths(year int) ([constants.MonthsPerYear]int, error) {
	e, err := t.Entry(year)
	if err != nil {
		return [constants.MonthsPerYear]int{}, err
	}
	return e.Months, nil
}

// DaysInMonth returns the length of the 0-based month of year.
func (t *Table) DaysInMonth(year, month int) (int, error) {
	e, err := t.Entry(year)
	if err != nil {
		return 0, err
	}
	if month < 0 || month >= constants.MonthsPerYear {
		return 0, errorutil.NewRangeError("month", month, 0, constants.MonthsPerYear-1)
	}
	return e.Months[month], nil
}

// DaysInYear returns the number of days in year.
func (t *Table) DaysInYear(year int) (int, error) {
	e, err := t.Entry(year)
	if err != nil {
		return 0, err
	}
	return e.TotalDays, nil
}

// IsLeapYear reports whether year has 366 days. Years outside the table
// are never leap years.
func (t *Table) IsLeapYear(year int) bool {
	e, err := t.Entry(year)
	return err == nil && e.TotalDays == constants.LeapYearDays
}

func (t *Table) yearRangeError(year int) *errorutil.RangeError {
	return &errorutil.RangeError{
		Field: "year",
		Value: year,
		Min:   t.MinYear(),
		Max:   t.MaxYear(),
		Msg:   fmt.Sprintf("nepali year %d out of range, must be between %d - %d", year, t.MinYear(), t.MaxYear()),
	}
}
