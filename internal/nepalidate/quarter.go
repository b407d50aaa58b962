package nepalidate

import (
	"cmp"
	"fmt"

	"github.com/nepalcal/bsdate/internal/constants"
	"github.com/nepalcal/bsdate/internal/errorutil"
)

// Period is an inclusive range of BS dates. End is the last moment of its
// final day.
type Period struct {
	Start NepaliDate
	End   NepaliDate
}

// Contains reports whether d falls on a day inside p. Days are compared by
// their BS fields, so the location of d's instant does not matter.
func (p Period) Contains(d NepaliDate) bool {
	return compareDays(d, p.Start) >= 0 && compareDays(d, p.End) <= 0
}

func compareDays(a, b NepaliDate) int {
	return cmp.Or(cmp.Compare(a.year, b.year), cmp.Compare(a.month, b.month), cmp.Compare(a.day, b.day))
}

// Days returns the number of calendar days p spans.
func (p Period) Days() int {
	n, _ := p.End.StartOfDay().Diff(p.Start.StartOfDay(), UnitDay)
	return n + 1
}

func (p Period) String() string {
	return fmt.Sprintf("%s - %s", p.Start, p.End)
}

// Quarter returns the calendar quarter of d, 1 through 4. Quarter 1 is
// Baisakh to Asar.
func (d NepaliDate) Quarter() int {
	return d.month/constants.MonthsPerQuarter + 1
}

// Quarter returns the start and end of calendar quarter n of year.
func Quarter(n, year int) (Period, error) {
	if err := checkQuarter(n); err != nil {
		return Period{}, err
	}
	return monthSpan(year, (n-1)*constants.MonthsPerQuarter)
}

// Quarters returns the four calendar quarters of year.
func Quarters(year int) ([4]Period, error) {
	var quarters [4]Period
	for i := range quarters {
		q, err := Quarter(i+1, year)
		if err != nil {
			return quarters, err
		}
		quarters[i] = q
	}
	return quarters, nil
}

// FiscalYear returns the fiscal year d belongs to. A fiscal year starts on
// Shrawan 1 and is named after the BS year it starts in.
func (d NepaliDate) FiscalYear() int {
	if d.month < constants.FiscalYearStartMonth {
		return d.year - 1
	}
	return d.year
}

// FiscalQuarter returns the fiscal quarter of d, 1 through 4. Quarter 1 is
// Shrawan to Ashwin and quarter 4 is Baisakh to Asar.
func (d NepaliDate) FiscalQuarter() int {
	shifted := (d.month - constants.FiscalYearStartMonth + constants.MonthsPerYear) % constants.MonthsPerYear
	return shifted/constants.MonthsPerQuarter + 1
}

// FiscalQuarterPeriod returns the fiscal quarter containing d.
func (d NepaliDate) FiscalQuarterPeriod() (Period, error) {
	return FiscalYearQuarter(d.FiscalQuarter(), d.FiscalYear())
}

// CurrentFiscalYear returns the fiscal year of today.
func CurrentFiscalYear() (int, error) {
	today, err := Now()
	if err != nil {
		return 0, err
	}
	return today.FiscalYear(), nil
}

// FiscalYearQuarter returns fiscal quarter n of fiscalYear. Quarter 4 lies in
// the first three months of the following BS year.
func FiscalYearQuarter(n, fiscalYear int) (Period, error) {
	if err := checkQuarter(n); err != nil {
		return Period{}, err
	}

	// AIDEV-NOTE: quarters 1-3 run Shrawan..Chaitra of fiscalYear, quarter 4 wraps.
	if n == 4 {
		return monthSpan(fiscalYear+1, 0)
	}
	return monthSpan(fiscalYear, constants.FiscalYearStartMonth+(n-1)*constants.MonthsPerQuarter)
}

// FiscalYearQuarters returns the four quarters of fiscalYear in order.
func FiscalYearQuarters(fiscalYear int) ([4]Period, error) {
	var quarters [4]Period
	for i := range quarters {
		q, err := FiscalYearQuarter(i+1, fiscalYear)
		if err != nil {
			return quarters, err
		}
		quarters[i] = q
	}
	return quarters, nil
}

// FiscalYearLabel renders a fiscal year the way it is written in Nepal,
// for example 2081/82.
func FiscalYearLabel(fiscalYear int) string {
	return fmt.Sprintf("%d/%02d", fiscalYear, (fiscalYear+1)%100)
}

// monthSpan returns the three month period starting at month of year.
func monthSpan(year, month int) (Period, error) {
	start, err := New(year, month, 1)
	if err != nil {
		return Period{}, err
	}

	lastMonth, err := New(year, month+constants.MonthsPerQuarter-1, 1)
	if err != nil {
		return Period{}, err
	}
	return Period{Start: start, End: lastMonth.EndOfMonth()}, nil
}

func checkQuarter(n int) error {
	if n < 1 || n > 4 {
		return &errorutil.InvalidArgumentError{Argument: "quarter", Value: n, Msg: "must be between 1 - 4"}
	}
	return nil
}
