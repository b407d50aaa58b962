package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nepalcal/bsdate/internal/constants"
	"github.com/nepalcal/bsdate/internal/dateutil"
	"github.com/nepalcal/bsdate/internal/locale"
	"github.com/nepalcal/bsdate/internal/nepalidate"
	"github.com/nepalcal/bsdate/internal/template"
)

func (a *app) newToBSCommand() *cobra.Command {
	var (
		pattern  string
		flexible bool
	)

	cmd := &cobra.Command{
		Use:   "tobs <ad-date>",
		Short: "Convert an AD date (YYYY-MM-DD) to BS",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			d, err := bsFromAD(args[0], flexible)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.Format(a.pattern(pattern)))
			return nil
		}),
	}

	cmd.Flags().StringVarP(&pattern, "format", "f", "", "BS output pattern, e.g. YYYY-MM-DD or DDDD, MMMM D")
	cmd.Flags().BoolVar(&flexible, "flexible", false, "Accept other AD layouts such as 04/13/2024 or Apr 13, 2024")
	return cmd
}

func bsFromAD(input string, flexible bool) (nepalidate.NepaliDate, error) {
	if !flexible {
		bs, err := nepalidate.ADtoBS(input)
		if err != nil {
			return nepalidate.NepaliDate{}, err
		}
		return nepalidate.Parse(bs)
	}

	t, err := dateutil.ParseFlexibleDate(input)
	if err != nil {
		return nepalidate.NepaliDate{}, err
	}
	return nepalidate.FromTime(t)
}

func (a *app) newToADCommand() *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "toad [bs-date]",
		Short: "Convert a BS date (YYYY-MM-DD) to AD, today when omitted",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}

			ad, err := nepalidate.BStoAD(input)
			if err != nil {
				return err
			}

			if pattern != "" {
				t, err := dateutil.ParseISODate(ad)
				if err != nil {
					return err
				}
				ad = dateutil.FormatDateWithPattern(t, pattern)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ad)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&pattern, "format", "f", "", "AD output pattern, e.g. YYYY/MM/DD or DDDD, MMMM D, YYYY")
	return cmd
}

func (a *app) newFormatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "format <bs-date> [pattern]",
		Short: "Format a BS date with a pattern",
		Long: `Format a BS date with a pattern. Y, M and D render Latin digits and English
names, y, m and d render Devanagari digits and Nepali names. Runs of three or
four M or D letters select short or full month and weekday names. Text in
double quotes is copied as is.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			d, err := nepalidate.Parse(args[0])
			if err != nil {
				return err
			}

			explicit := ""
			if len(args) == 2 {
				explicit = args[1]
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.Format(a.pattern(explicit)))
			return nil
		}),
	}
}

func (a *app) newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info [bs-date]",
		Short: "Show weekday, quarter, fiscal year and week of a BS date",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			d, err := bsArgOrToday(args, 0)
			if err != nil {
				return err
			}
			return a.printInfo(cmd.OutOrStdout(), d)
		}),
	}
}

func (a *app) printInfo(w io.Writer, d nepalidate.NepaliDate) error {
	weekday, err := a.locale.DayName(d.Weekday(), false)
	if err != nil {
		return err
	}

	quarter, err := nepalidate.Quarter(d.Quarter(), d.Year())
	if err != nil {
		return err
	}
	fiscal, err := d.FiscalQuarterPeriod()
	if err != nil {
		return err
	}
	weekStart, err := d.StartOfWeek(a.cfg.FirstDay())
	if err != nil {
		return err
	}
	weekEnd, err := d.EndOfWeek(a.cfg.FirstDay())
	if err != nil {
		return err
	}

	leap := "no"
	if d.IsLeapYear() {
		leap = "yes"
	}

	rows := [][2]string{
		{"Date", fmt.Sprintf("%s (%s)", a.show(d), weekday)},
		{"AD", dateutil.FormatISODate(d.Time())},
		{"Days in month", strconv.Itoa(d.DaysInMonth())},
		{"Weeks in month", strconv.Itoa(d.WeeksInMonth())},
		{"Leap year", leap},
		{"Quarter", fmt.Sprintf("Q%d (%s)", d.Quarter(), a.span(quarter))},
		{"Fiscal year", fmt.Sprintf("%s Q%d (%s)", nepalidate.FiscalYearLabel(d.FiscalYear()), d.FiscalQuarter(), a.span(fiscal))},
		{"Week", a.span(nepalidate.Period{Start: weekStart, End: weekEnd})},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "%-15s %s\n", row[0]+":", row[1])
	}
	return nil
}

func (a *app) newAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <bs-date> <n> <day|month|year>",
		Short: "Add days, months or years to a BS date",
		Long: `Add days, months or years to a BS date. Adding months clamps the day to the
length of the target month, and so does adding years when the same month of
the target year is shorter.`,
		Args: cobra.ExactArgs(3),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			d, err := nepalidate.Parse(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}
			unit, err := nepalidate.ParseUnit(args[2])
			if err != nil {
				return err
			}

			var result nepalidate.NepaliDate
			switch unit {
			case nepalidate.UnitDay:
				result, err = d.AddDays(n)
			case nepalidate.UnitMonth:
				result, err = d.AddMonths(n)
			case nepalidate.UnitYear:
				result, err = d.AddYears(n)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), a.show(result))
			return nil
		}),
	}
}

func (a *app) newDiffCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <from> <to> [day|month|year]",
		Short: "Count days, months or years between two BS dates",
		Args:  cobra.RangeArgs(2, 3),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			from, err := nepalidate.Parse(args[0])
			if err != nil {
				return err
			}
			to, err := nepalidate.Parse(args[1])
			if err != nil {
				return err
			}

			unit := nepalidate.UnitDay
			if len(args) == 3 {
				if unit, err = nepalidate.ParseUnit(args[2]); err != nil {
					return err
				}
			}

			n, err := to.Diff(from, unit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		}),
	}
}

func (a *app) newCalendarCommand() *cobra.Command {
	var firstDay int

	cmd := &cobra.Command{
		Use:   "cal [year [month]]",
		Short: "Print a BS month calendar, or a whole year",
		Long: `Print a BS month calendar. Without arguments the current month is shown,
with a year every month of that year, with a year and a month that month.
The month is a 1-based number or a name such as Shrawan, Saun or श्रावण.`,
		Args: cobra.RangeArgs(0, 2),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			if firstDay < 0 {
				firstDay = a.cfg.FirstDay()
			}
			renderer, err := template.NewCalendarRenderer(a.cfg.Calendar, a.locale, firstDay)
			if err != nil {
				return err
			}

			today, err := nepalidate.Now()
			if err != nil {
				return err
			}

			resolver, err := a.cfg.MonthResolver()
			if err != nil {
				return err
			}
			months, err := calendarMonths(args, today, resolver)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, ym := range months {
				if i > 0 {
					fmt.Fprintln(out)
				}
				view, err := nepalidate.CalendarDays(ym[0], ym[1])
				if err != nil {
					return err
				}
				text, err := renderer.Render(view, today)
				if err != nil {
					return err
				}
				fmt.Fprint(out, text)
			}
			return nil
		}),
	}

	cmd.Flags().IntVar(&firstDay, "first-day", -1, "First day of the week, 0 Sunday through 6 Saturday (default from config)")
	return cmd
}

// calendarMonths returns the (year, 0-based month) pairs selected by args.
func calendarMonths(args []string, today nepalidate.NepaliDate, months *locale.MonthResolver) ([][2]int, error) {
	if len(args) == 0 {
		return [][2]int{{today.Year(), today.Month()}}, nil
	}

	year, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("invalid year %q: %w", args[0], err)
	}

	if len(args) == 1 {
		all := make([][2]int, 0, constants.MonthsPerYear)
		for m := 0; m < constants.MonthsPerYear; m++ {
			all = append(all, [2]int{year, m})
		}
		return all, nil
	}

	month, err := months.Resolve(args[1])
	if err != nil {
		return nil, err
	}
	return [][2]int{{year, month}}, nil
}

func (a *app) newFiscalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fiscal [fiscal-year]",
		Short: "List the quarters of a fiscal year, the current one when omitted",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			var (
				fy  int
				err error
			)
			if len(args) == 1 {
				fy, err = strconv.Atoi(args[0])
			} else {
				fy, err = nepalidate.CurrentFiscalYear()
			}
			if err != nil {
				return err
			}

			quarters, err := nepalidate.FiscalYearQuarters(fy)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Fiscal year %s\n", nepalidate.FiscalYearLabel(fy))
			for i, q := range quarters {
				fmt.Fprintf(out, "Q%d  %s  AD %s - %s  %d days\n", i+1, a.span(q),
					dateutil.FormatISODate(q.Start.Time()), dateutil.FormatISODate(q.End.Time()), q.Days())
			}
			return nil
		}),
	}
}

func (a *app) newRangeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "range",
		Short: "Show the supported date range",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			first, err := nepalidate.FromTime(nepalidate.Minimum())
			if err != nil {
				return err
			}
			last, err := nepalidate.FromTime(nepalidate.Maximum())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "BS %s - %s\n", a.show(first), a.show(last))
			fmt.Fprintf(out, "AD %s - %s\n",
				dateutil.FormatISODate(nepalidate.Minimum()), dateutil.FormatISODate(nepalidate.Maximum()))
			return nil
		}),
	}
}

// show formats d with the configured pattern.
func (a *app) show(d nepalidate.NepaliDate) string {
	return d.Format(a.pattern(""))
}

func (a *app) span(p nepalidate.Period) string {
	return a.show(p.Start) + " - " + a.show(p.End)
}

// bsArgOrToday parses args[i] as a BS date, or returns today when absent.
func bsArgOrToday(args []string, i int) (nepalidate.NepaliDate, error) {
	if len(args) > i {
		return nepalidate.Parse(args[i])
	}
	return nepalidate.Now()
}
