package calendar

import (
	"regexp"
	"strconv"

	"github.com/nepalcal/bsdate/internal/constants"
	"github.com/nepalcal/bsdate/internal/errorutil"
)

var dateSeparators = regexp.MustCompile(`[-./]`)

// Parse reads a BS date written as YYYY-MM-DD, YYYY/MM/DD or YYYY.MM.DD and
// returns the year, 0-based month and day. A missing month or day defaults to
// 1, so "2080" is Baisakh 1 and "2080-05" is Bhadra 1.
func (t *Table) Parse(s string) (year, month, day int, err error) {
	parts := dateSeparators.Split(s, 3)

	values := [3]int{0, 1, 1}
	for i, part := range parts {
		n, convErr := strconv.Atoi(part)
		if convErr != nil {
			return 0, 0, 0, &errorutil.FormatError{
				Input:    s,
				Expected: "YYYY-MM-DD, YYYY/MM/DD or YYYY.MM.DD",
				Err:      convErr,
			}
		}
		values[i] = n
	}
	year, month, day = values[0], values[1], values[2]

	if !t.HasYear(year) {
		return 0, 0, 0, t.yearRangeError(year)
	}
	if month < 1 || month > constants.MonthsPerYear {
		return 0, 0, 0, &errorutil.RangeError{
			Field: "month",
			Value: month,
			Min:   1,
			Max:   constants.MonthsPerYear,
			Msg:   "invalid nepali month " + strconv.Itoa(month) + ", must be between 1 - 12",
		}
	}
	if err := t.validateDay(year, month-1, day); err != nil {
		return 0, 0, 0, err
	}

	return year, month - 1, day, nil
}
