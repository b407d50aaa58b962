package nepalidate

import (
	"fmt"

	"github.com/nepalcal/bsdate/internal/calendar"
	"github.com/nepalcal/bsdate/internal/constants"
	"github.com/nepalcal/bsdate/internal/errorutil"
)

// Unit selects the granularity of IsSame and Diff.
type Unit string

const (
	UnitYear  Unit = "year"
	UnitMonth Unit = "month"
	UnitDay   Unit = "day"
)

// ParseUnit accepts year, month or day.
func ParseUnit(s string) (Unit, error) {
	switch u := Unit(s); u {
	case UnitYear, UnitMonth, UnitDay:
		return u, nil
	}
	return "", invalidUnit(s)
}

func invalidUnit(u any) error {
	return &errorutil.InvalidArgumentError{Argument: "unit", Value: u, Msg: "must be year, month or day"}
}

// AddDays moves the instant by n calendar days and re-derives the BS date.
// The time of day is kept.
func (d NepaliDate) AddDays(n int) (NepaliDate, error) {
	return FromTime(d.instant.AddDate(0, 0, n))
}

// AddMonths moves d by n months. When the target month is shorter than d's
// day, the day is clamped to the target month's last day. The result is at
// midnight UTC.
func (d NepaliDate) AddMonths(n int) (NepaliDate, error) {
	year, month := calendar.NormalizeMonth(d.year, d.month+n)
	if !table.HasYear(year) {
		return NepaliDate{}, outOfRange(d, fmt.Sprintf("%+d months", n), year)
	}

	last, err := table.DaysInMonth(year, month)
	if err != nil {
		return NepaliDate{}, err
	}
	return New(year, month, min(d.day, last))
}

// AddYears moves d by n years keeping month and day. When the target month
// is shorter than d's day, the day is clamped to its last day. The result is
// at midnight UTC.
func (d NepaliDate) AddYears(n int) (NepaliDate, error) {
	year := d.year + n
	if !table.HasYear(year) {
		return NepaliDate{}, outOfRange(d, fmt.Sprintf("%+d years", n), year)
	}

	last, err := table.DaysInMonth(year, d.month)
	if err != nil {
		return NepaliDate{}, err
	}
	return New(year, d.month, min(d.day, last))
}

func outOfRange(d NepaliDate, delta string, year int) *errorutil.RangeError {
	return &errorutil.RangeError{
		Field: "year",
		Value: year,
		Min:   table.MinYear(),
		Max:   table.MaxYear(),
		Msg: fmt.Sprintf("%s %s lands in year %d, outside the supported range %d - %d",
			d, delta, year, table.MinYear(), table.MaxYear()),
	}
}

// IsBefore reports whether d's instant is strictly before other's.
func (d NepaliDate) IsBefore(other NepaliDate) bool {
	return d.instant.Before(other.instant)
}

// IsAfter reports whether d's instant is strictly after other's.
func (d NepaliDate) IsAfter(other NepaliDate) bool {
	return d.instant.After(other.instant)
}

// IsEqual compares BS year, month and day only.
func (d NepaliDate) IsEqual(other NepaliDate) bool {
	return d.year == other.year && d.month == other.month && d.day == other.day
}

// IsSame reports whether d and other fall in the same BS year, month or day.
func (d NepaliDate) IsSame(other NepaliDate, unit Unit) (bool, error) {
	switch unit {
	case UnitYear:
		return d.year == other.year, nil
	case UnitMonth:
		return d.year == other.year && d.month == other.month, nil
	case UnitDay:
		return d.IsEqual(other), nil
	}
	return false, invalidUnit(unit)
}

// Diff returns d minus other in the given unit. Days are whole elapsed
// 24-hour periods rounded down; months and years are BS field differences.
func (d NepaliDate) Diff(other NepaliDate, unit Unit) (int, error) {
	switch unit {
	case UnitDay:
		ms := d.UnixMilli() - other.UnixMilli()
		return int(floorDiv(ms, constants.Day.Milliseconds())), nil
	case UnitMonth:
		return (d.year-other.year)*constants.MonthsPerYear + d.month - other.month, nil
	case UnitYear:
		return d.year - other.year, nil
	}
	return 0, invalidUnit(unit)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
