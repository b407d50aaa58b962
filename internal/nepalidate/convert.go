package nepalidate

import (
	"github.com/nepalcal/bsdate/internal/constants"
	"github.com/nepalcal/bsdate/internal/dateutil"
	"github.com/nepalcal/bsdate/internal/errorutil"
	"github.com/nepalcal/bsdate/internal/logger"
)

const (
	opADtoBS = "AD to BS"
	opBStoAD = "BS to AD"
)

// ADtoBS converts a Gregorian YYYY-MM-DD date to the BS date written as
// YYYY-MM-DD. Any failure is returned as a *errorutil.ConversionError that
// wraps the cause.
func ADtoBS(adDate string) (string, error) {
	t, err := dateutil.ParseISODate(adDate)
	if err != nil {
		return "", conversionFailed(opADtoBS, adDate, err)
	}

	d, err := FromTime(t)
	if err != nil {
		return "", conversionFailed(opADtoBS, adDate, err)
	}
	return d.Format(constants.DefaultBSPattern), nil
}

// BStoAD converts a BS YYYY-MM-DD date to the Gregorian date written as
// YYYY-MM-DD. An empty input converts today. Any failure is returned as a
// *errorutil.ConversionError that wraps the cause.
func BStoAD(bsDate string) (string, error) {
	d, err := parseBoundaryBS(bsDate)
	if err != nil {
		return "", conversionFailed(opBStoAD, bsDate, err)
	}
	return dateutil.FormatISODate(d.Time()), nil
}

func parseBoundaryBS(bsDate string) (NepaliDate, error) {
	if bsDate == "" {
		return Now()
	}
	if !dateutil.IsISODate(bsDate) {
		return NepaliDate{}, &errorutil.FormatError{Input: bsDate, Expected: "YYYY-MM-DD"}
	}
	return Parse(bsDate)
}

func conversionFailed(op, input string, err error) error {
	errorutil.LogDebug(logger.Get().Logger, "convert "+op, err, errorutil.DateContext(input)...)
	return &errorutil.ConversionError{Op: op, Input: input, Err: err}
}
