package constants

import "time"

// Calendar arithmetic
const (
	// MonthsPerYear in the Bikram Sambat calendar
	MonthsPerYear = 12

	// DaysPerWeek for week boundary and grid computations
	DaysPerWeek = 7

	// Day is the length of one calendar day on a UTC instant
	Day = 24 * time.Hour

	// AverageYearDays seeds the year lookup; the scan corrects any estimate error
	AverageYearDays = 366

	// LeapYearDays marks a BS year treated as a leap year
	LeapYearDays = 366
)

// Calendar grid and fiscal year layout
const (
	// CalendarGridRows and CalendarGridCells describe a 6x7 month view
	CalendarGridRows  = 6
	CalendarGridCells = CalendarGridRows * DaysPerWeek

	// FiscalYearStartMonth is Shrawan, the 4th BS month (0-based index)
	FiscalYearStartMonth = 3

	// MonthsPerQuarter for calendar and fiscal quarters
	MonthsPerQuarter = 3
)

// Text layouts
const (
	// ISODateLayout is the strict Gregorian layout used by the AD/BS boundary functions
	ISODateLayout = "2006-01-02"

	// DefaultBSPattern renders a BS date the same way as ISODateLayout
	DefaultBSPattern = "YYYY-MM-DD"
)

// File and logging configuration
const (
	// DefaultMaxLogFiles to keep in rotation
	DefaultMaxLogFiles = 7

	// DefaultMaxLogSizeMB per log file
	DefaultMaxLogSizeMB = 10
)
