// Package locale provides the English and Nepali name tables for BS months
// and weekdays, Devanagari digit rendering and locale selection.
package locale

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/nepalcal/bsdate/internal/errorutil"
)

var (
	monthsEnglish      = [12]string{"Baisakh", "Jestha", "Asar", "Shrawan", "Bhadra", "Aswin", "Kartik", "Mangsir", "Poush", "Magh", "Falgun", "Chaitra"}
	monthsShortEnglish = [12]string{"Bai", "Jes", "Asa", "Shr", "Bhd", "Asw", "Kar", "Man", "Pou", "Mag", "Fal", "Cha"}
	monthsNepali       = [12]string{"बैशाख", "जेठ", "असार", "श्रावण", "भाद्र", "आश्विन", "कार्तिक", "मंसिर", "पौष", "माघ", "फाल्गुण", "चैत्र"}
	monthsShortNepali  = [12]string{"बै", "जे", "अ", "श्रा", "भा", "आ", "का", "मं", "पौ", "मा", "फा", "चै"}

	weekdaysEnglish      = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	weekdaysShortEnglish = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	weekdaysNepali       = [7]string{"आइतबार", "सोमबार", "मंगलबार", "बुधबार", "बिहिबार", "शुक्रबार", "शनिबार"}
	weekdaysShortNepali  = [7]string{"आइत", "सोम", "मंगल", "बुध", "बिहि", "शुक्र", "शनि"}
)

// devanagariZero is U+0966, the first of the ten contiguous Devanagari digits.
const devanagariZero = '०'

var devanagariDigits = runes.Map(func(r rune) rune {
	if r >= '0' && r <= '9' {
		return devanagariZero + (r - '0')
	}
	return r
})

// Digits replaces every ASCII digit in s with its Devanagari counterpart.
func Digits(s string) string {
	out, _, err := transform.String(devanagariDigits, s)
	if err != nil {
		return s
	}
	return out
}

// MonthName returns the name of the 0-based BS month.
func MonthName(month int, short, nepali bool) (string, error) {
	if month < 0 || month > 11 {
		return "", &errorutil.InvalidArgumentError{Argument: "month index", Value: month, Msg: "must be between 0-11"}
	}
	switch {
	case nepali && short:
		return monthsShortNepali[month], nil
	case nepali:
		return monthsNepali[month], nil
	case short:
		return monthsShortEnglish[month], nil
	default:
		return monthsEnglish[month], nil
	}
}

// DayName returns the name of the weekday, 0 being Sunday.
func DayName(day int, short, nepali bool) (string, error) {
	if day < 0 || day > 6 {
		return "", &errorutil.InvalidArgumentError{Argument: "day index", Value: day, Msg: "must be between 0-6"}
	}
	switch {
	case nepali && short:
		return weekdaysShortNepali[day], nil
	case nepali:
		return weekdaysNepali[day], nil
	case short:
		return weekdaysShortEnglish[day], nil
	default:
		return weekdaysEnglish[day], nil
	}
}

// Locale selects between Latin and Nepali output.
type Locale struct {
	Tag language.Tag
}

var (
	English = Locale{Tag: language.English}
	Nepali  = Locale{Tag: language.Nepali}
)

var matcher = language.NewMatcher([]language.Tag{language.English, language.Nepali})

// Parse resolves a BCP 47 tag such as "en", "en-US", "ne" or "ne-NP" to the
// closest supported locale. Unknown but well-formed tags fall back to English.
func Parse(tag string) (Locale, error) {
	if tag == "" {
		return English, nil
	}

	parsed, err := language.Parse(tag)
	if err != nil {
		return Locale{}, &errorutil.InvalidArgumentError{Argument: "locale", Value: tag, Msg: err.Error()}
	}

	_, idx, confidence := matcher.Match(parsed)
	if confidence == language.No || idx != 1 {
		return English, nil
	}
	return Nepali, nil
}

// Localized reports whether names and digits should be rendered in Nepali.
func (l Locale) Localized() bool {
	base, _ := l.Tag.Base()
	nepaliBase, _ := language.Nepali.Base()
	return base == nepaliBase
}

// String returns the BCP 47 form of the locale.
func (l Locale) String() string {
	return l.Tag.String()
}

// MonthName returns the month name for this locale.
func (l Locale) MonthName(month int, short bool) (string, error) {
	return MonthName(month, short, l.Localized())
}

// DayName returns the weekday name for this locale.
func (l Locale) DayName(day int, short bool) (string, error) {
	return DayName(day, short, l.Localized())
}

// Number renders n in this locale's digits.
func (l Locale) Number(n int) string {
	s := fmt.Sprint(n)
	if l.Localized() {
		return Digits(s)
	}
	return s
}
