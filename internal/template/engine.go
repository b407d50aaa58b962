// Package template renders BS month calendars for the command line using
// Go's text/template package with locale aware helper functions.
package template

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/nepalcal/bsdate/internal/config"
	"github.com/nepalcal/bsdate/internal/constants"
	"github.com/nepalcal/bsdate/internal/locale"
	"github.com/nepalcal/bsdate/internal/nepalidate"
)

// CalendarRenderer renders month views with the header, week and footer
// templates from the configuration.
type CalendarRenderer struct {
	tmpl     *template.Template
	locale   locale.Locale
	firstDay int
}

// MonthData is passed to the header and footer templates.
type MonthData struct {
	Year       int
	Month      int
	FiscalYear int
	Weekdays   []int
	Weeks      []WeekData
	// Today is the current date when it falls in the rendered month.
	Today *nepalidate.NepaliDate
}

// WeekData is passed to the week template once per row.
type WeekData struct {
	Index int
	Days  []DayData
}

// DayData is one cell of a week row. Day is zero for cells outside the table.
type DayData struct {
	Year    int
	Month   int
	Day     int
	Current bool
	Today   bool
}

// NewCalendarRenderer parses the calendar templates. Weeks start on firstDay,
// 0 being Sunday.
func NewCalendarRenderer(cfg config.CalendarConfig, loc locale.Locale, firstDay int) (*CalendarRenderer, error) {
	if firstDay < 0 || firstDay >= constants.DaysPerWeek {
		return nil, fmt.Errorf("first day of week %d out of range 0-6", firstDay)
	}

	r := &CalendarRenderer{locale: loc, firstDay: firstDay}
	tmpl, err := parseCalendarTemplates(cfg, r.funcMap())
	if err != nil {
		return nil, err
	}
	r.tmpl = tmpl
	return r, nil
}

// ValidateTemplates checks that cfg parses with the renderer's functions.
func ValidateTemplates(cfg config.CalendarConfig) error {
	r := &CalendarRenderer{locale: locale.English}
	_, err := parseCalendarTemplates(cfg, r.funcMap())
	return err
}

func parseCalendarTemplates(cfg config.CalendarConfig, funcMap template.FuncMap) (*template.Template, error) {
	var text strings.Builder

	if cfg.Header != "" {
		text.WriteString(`{{define "header"}}`)
		text.WriteString(cfg.Header)
		text.WriteString("{{end}}")
	}

	if cfg.Week == "" {
		return nil, fmt.Errorf("week template is required")
	}
	text.WriteString(`{{define "week"}}`)
	text.WriteString(cfg.Week)
	text.WriteString("{{end}}")

	if cfg.Footer != "" {
		text.WriteString(`{{define "footer"}}`)
		text.WriteString(cfg.Footer)
		text.WriteString("{{end}}")
	}

	tmpl, err := template.New("calendar").Funcs(funcMap).Parse(text.String())
	if err != nil {
		return nil, fmt.Errorf("parsing calendar template: %w", err)
	}
	return tmpl, nil
}

func (r *CalendarRenderer) funcMap() template.FuncMap {
	return template.FuncMap{
		"pad":    pad,
		"center": center,
		"repeat": strings.Repeat,
		"digits": r.locale.Number,
		"monthName": func(month int) (string, error) {
			return r.locale.MonthName(month, false)
		},
		"dayName": func(day int) (string, error) {
			return r.locale.DayName(day, true)
		},
	}
}

// Render executes the templates for view. today marks the matching cell.
func (r *CalendarRenderer) Render(view nepalidate.CalendarMonthView, today nepalidate.NepaliDate) (string, error) {
	data := r.buildMonthData(view, today)

	var out bytes.Buffer
	if r.tmpl.Lookup("header") != nil {
		if err := r.tmpl.ExecuteTemplate(&out, "header", data); err != nil {
			return "", fmt.Errorf("executing header template: %w", err)
		}
	}

	for _, week := range data.Weeks {
		if err := r.tmpl.ExecuteTemplate(&out, "week", week); err != nil {
			return "", fmt.Errorf("executing week template: %w", err)
		}
	}

	if r.tmpl.Lookup("footer") != nil {
		if err := r.tmpl.ExecuteTemplate(&out, "footer", data); err != nil {
			return "", fmt.Errorf("executing footer template: %w", err)
		}
	}

	return out.String(), nil
}

// buildMonthData rotates the Sunday based grid so rows begin on firstDay
// and drops trailing rows without days of the current month.
func (r *CalendarRenderer) buildMonthData(view nepalidate.CalendarMonthView, today nepalidate.NepaliDate) MonthData {
	current := view.CurrentMonth
	data := MonthData{
		Year:  current.Year,
		Month: current.Month,
	}

	first := nepalidate.MustNew(current.Year, current.Month, 1)
	data.FiscalYear = first.FiscalYear()

	for i := 0; i < constants.DaysPerWeek; i++ {
		data.Weekdays = append(data.Weekdays, (r.firstDay+i)%constants.DaysPerWeek)
	}

	if today.IsValid() && today.Year() == current.Year && today.Month() == current.Month {
		data.Today = &today
	}

	cells := view.Cells()
	lead := (view.PrevRemainingDays - r.firstDay + constants.DaysPerWeek) % constants.DaysPerWeek
	start := view.PrevRemainingDays - lead

	for row := 0; row < constants.CalendarGridRows; row++ {
		week := WeekData{Index: row}
		hasCurrent := false
		for col := 0; col < constants.DaysPerWeek; col++ {
			var cell nepalidate.Cell
			if idx := start + row*constants.DaysPerWeek + col; idx >= 0 && idx < len(cells) {
				cell = cells[idx]
			}
			day := DayData{Year: cell.Year, Month: cell.Month, Day: cell.Day, Current: cell.Current}
			day.Today = cell.Current && data.Today != nil && cell.Day == data.Today.Day()
			hasCurrent = hasCurrent || cell.Current
			week.Days = append(week.Days, day)
		}
		if !hasCurrent {
			break
		}
		data.Weeks = append(data.Weeks, week)
	}

	return data
}

// pad right aligns s in width runes.
func pad(width int, s string) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}

// center places s in the middle of width runes.
func center(width int, s string) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
