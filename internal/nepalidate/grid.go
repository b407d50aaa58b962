package nepalidate

import (
	"github.com/nepalcal/bsdate/internal/calendar"
	"github.com/nepalcal/bsdate/internal/constants"
)

// MonthDays lists visible days of one month in a calendar view. Year and
// Month are zero when the month lies outside the calendar table.
type MonthDays struct {
	Year  int
	Month int
	Days  []int
}

// Present reports whether the month is inside the calendar table.
func (m MonthDays) Present() bool {
	return m.Year != 0
}

// CalendarMonthView is the data for a 6x7 month grid starting on Sunday.
type CalendarMonthView struct {
	// PrevRemainingDays is the number of leading cells before day 1.
	PrevRemainingDays int
	PrevMonth         MonthDays
	CurrentMonth      MonthDays
	NextMonth         MonthDays
	// RemainingDays is the number of trailing cells after the last day.
	RemainingDays int
}

// Cell is one square of the month grid.
type Cell struct {
	Year    int
	Month   int
	Day     int
	Current bool
}

// Empty reports whether the cell has no date, which happens when the
// adjacent month is outside the calendar table.
func (c Cell) Empty() bool {
	return c.Day == 0
}

// CalendarDays builds the month view for year and 0-based month. Adjacent
// months outside the calendar table are left out rather than wrapped.
func CalendarDays(year, month int) (CalendarMonthView, error) {
	if err := table.Validate(year, month, 1); err != nil {
		return CalendarMonthView{}, err
	}

	first := MustNew(year, month, 1)
	firstWeekday := first.Weekday()
	daysInMonth := first.DaysInMonth()

	view := CalendarMonthView{
		PrevRemainingDays: firstWeekday,
		CurrentMonth:      MonthDays{Year: year, Month: month, Days: dayRange(1, daysInMonth)},
		RemainingDays:     constants.CalendarGridCells - firstWeekday - daysInMonth,
	}

	prevYear, prevMonth := calendar.NormalizeMonth(year, month-1)
	if table.HasYear(prevYear) {
		view.PrevMonth = MonthDays{Year: prevYear, Month: prevMonth}
		if firstWeekday > 0 {
			prevDays, _ := table.DaysInMonth(prevYear, prevMonth)
			view.PrevMonth.Days = dayRange(prevDays-firstWeekday+1, prevDays)
		}
	}

	nextYear, nextMonth := calendar.NormalizeMonth(year, month+1)
	if table.HasYear(nextYear) {
		view.NextMonth = MonthDays{Year: nextYear, Month: nextMonth}
		if view.RemainingDays > 0 {
			view.NextMonth.Days = dayRange(1, view.RemainingDays)
		}
	}

	return view, nil
}

// Cells lays the view out as 42 cells, row by row.
func (v CalendarMonthView) Cells() []Cell {
	cells := make([]Cell, 0, constants.CalendarGridCells)

	cells = appendMonth(cells, v.PrevMonth, v.PrevRemainingDays, false)
	cells = appendMonth(cells, v.CurrentMonth, len(v.CurrentMonth.Days), true)
	cells = appendMonth(cells, v.NextMonth, v.RemainingDays, false)

	return cells
}

// Weeks splits Cells into rows of seven.
func (v CalendarMonthView) Weeks() [][]Cell {
	cells := v.Cells()
	weeks := make([][]Cell, 0, constants.CalendarGridRows)
	for i := 0; i+constants.DaysPerWeek <= len(cells); i += constants.DaysPerWeek {
		weeks = append(weeks, cells[i:i+constants.DaysPerWeek])
	}
	return weeks
}

func appendMonth(cells []Cell, m MonthDays, count int, current bool) []Cell {
	if len(m.Days) == 0 {
		for i := 0; i < count; i++ {
			cells = append(cells, Cell{})
		}
		return cells
	}
	for _, day := range m.Days {
		cells = append(cells, Cell{Year: m.Year, Month: m.Month, Day: day, Current: current})
	}
	return cells
}

func dayRange(from, to int) []int {
	if to < from {
		return nil
	}
	days := make([]int, 0, to-from+1)
	for d := from; d <= to; d++ {
		days = append(days, d)
	}
	return days
}
