package nepalidate

import (
	"time"

	"github.com/nepalcal/bsdate/internal/constants"
	"github.com/nepalcal/bsdate/internal/errorutil"
)

// StartOfDay returns midnight of d's day in the instant's location.
func (d NepaliDate) StartOfDay() NepaliDate {
	t := d.instant
	d.instant = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return d
}

// EndOfDay returns 23:59:59.999 of d's day in the instant's location.
func (d NepaliDate) EndOfDay() NepaliDate {
	t := d.instant
	d.instant = time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999*int(time.Millisecond), t.Location())
	return d
}

// StartOfWeek returns the start of the week containing d, weeks beginning on
// firstDay (0 Sunday through 6 Saturday).
func (d NepaliDate) StartOfWeek(firstDay int) (NepaliDate, error) {
	if firstDay < 0 || firstDay >= constants.DaysPerWeek {
		return NepaliDate{}, &errorutil.InvalidArgumentError{
			Argument: "first day of week",
			Value:    firstDay,
			Msg:      "must be between 0 - 6",
		}
	}

	back := (d.Weekday() - firstDay + constants.DaysPerWeek) % constants.DaysPerWeek
	return d.StartOfDay().AddDays(-back)
}

// EndOfWeek returns the last moment of the week containing d.
func (d NepaliDate) EndOfWeek(firstDay int) (NepaliDate, error) {
	start, err := d.StartOfWeek(firstDay)
	if err != nil {
		return NepaliDate{}, err
	}

	end, err := start.AddDays(constants.DaysPerWeek - 1)
	if err != nil {
		return NepaliDate{}, err
	}
	return end.EndOfDay(), nil
}

// StartOfMonth returns the first day of d's month.
func (d NepaliDate) StartOfMonth() NepaliDate {
	return MustNew(d.year, d.month, 1)
}

// EndOfMonth returns the last moment of d's month.
func (d NepaliDate) EndOfMonth() NepaliDate {
	return MustNew(d.year, d.month, d.DaysInMonth()).EndOfDay()
}

// StartOfYear returns Baisakh 1 of d's year.
func (d NepaliDate) StartOfYear() NepaliDate {
	return MustNew(d.year, 0, 1)
}

// EndOfYear returns the last moment of Chaitra in d's year.
func (d NepaliDate) EndOfYear() NepaliDate {
	last := constants.MonthsPerYear - 1
	days, _ := table.DaysInMonth(d.year, last)
	return MustNew(d.year, last, days).EndOfDay()
}
