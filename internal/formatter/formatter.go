// Package formatter renders BS dates from compact format patterns.
//
// A pattern is tokenized left to right into renderers. Runs of the letters
// below select a field, the run length selects its width:
//
//	Y / y   year   1-2: last two digits, 3: last three, 4+: full
//	M / m   month  1: numeric, 2: zero padded, 3: short name, 4+: full name
//	D / d   day    1: numeric, 2: zero padded, 3: short weekday, 4+: full weekday
//
// Upper case letters render Latin digits and English names, lower case
// letters render Devanagari digits and Nepali names. A double quote toggles a
// literal region in which pattern letters are copied verbatim. Every other
// character is copied unchanged.
package formatter

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/nepalcal/bsdate/internal/locale"
)

// Fields is the read side of a BS date needed for rendering.
type Fields interface {
	Year() int
	// Month is 0-based.
	Month() int
	Day() int
	// Weekday is 0 for Sunday.
	Weekday() int
}

// FieldKind identifies the date field a pattern letter renders.
type FieldKind int

const (
	FieldYear FieldKind = iota
	FieldMonth
	FieldDay
)

// Field is a parsed pattern letter run.
type Field struct {
	Kind   FieldKind
	Nepali bool
	Size   int
}

// patternLetters maps every recognised letter to its field.
var patternLetters = map[rune]Field{
	'Y': {Kind: FieldYear},
	'y': {Kind: FieldYear, Nepali: true},
	'M': {Kind: FieldMonth},
	'm': {Kind: FieldMonth, Nepali: true},
	'D': {Kind: FieldDay},
	'd': {Kind: FieldDay, Nepali: true},
}

// Renderer produces one piece of output for a date.
type Renderer func(Fields) string

// Tokenize splits pattern into renderers.
func Tokenize(pattern string) []Renderer {
	var (
		tokens  []Renderer
		literal strings.Builder
		inQuote bool
		special rune
		size    int
	)

	flushField := func() {
		if special != 0 {
			f := patternLetters[special]
			f.Size = size
			tokens = append(tokens, f.render)
			special, size = 0, 0
		}
	}
	flushLiteral := func() {
		if literal.Len() > 0 {
			tokens = append(tokens, pass(literal.String()))
			literal.Reset()
		}
	}

	for _, ch := range pattern {
		if special != 0 && ch == special {
			size++
			continue
		}
		flushField()

		if ch == '"' {
			inQuote = !inQuote
			continue
		}

		if _, ok := patternLetters[ch]; !ok || inQuote {
			literal.WriteRune(ch)
			continue
		}

		flushLiteral()
		special, size = ch, 1
	}

	flushField()
	flushLiteral()

	return tokens
}

// Format renders fields with pattern.
func Format(fields Fields, pattern string) string {
	var b strings.Builder
	for _, render := range Tokenize(pattern) {
		b.WriteString(render(fields))
	}
	return b.String()
}

func pass(s string) Renderer {
	return func(Fields) string { return s }
}

func (f Field) render(d Fields) string {
	var out string
	switch f.Kind {
	case FieldYear:
		out = yearDigits(d.Year(), f.Size)
	case FieldMonth:
		switch f.Size {
		case 1:
			out = strconv.Itoa(d.Month() + 1)
		case 2:
			out = pad(d.Month() + 1)
		default:
			name, _ := locale.MonthName(d.Month(), f.Size == 3, f.Nepali)
			return name
		}
	case FieldDay:
		// Day letters switch to the weekday name from a run of three.
		switch f.Size {
		case 1:
			out = strconv.Itoa(d.Day())
		case 2:
			out = pad(d.Day())
		default:
			name, _ := locale.DayName(d.Weekday(), f.Size == 3, f.Nepali)
			return name
		}
	}

	if f.Nepali {
		return locale.Digits(out)
	}
	return out
}

func yearDigits(year, size int) string {
	s := strconv.Itoa(year)
	switch {
	case size <= 2:
		return dropPrefix(s, 2)
	case size == 3:
		return dropPrefix(s, 1)
	default:
		return s
	}
}

func dropPrefix(s string, n int) string {
	if len(s) <= n {
		return ""
	}
	return s[n:]
}

func pad(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// Localize switches every pattern letter outside quotes to its lower case
// Devanagari form, so "YYYY-MM-DD" renders as "yyyy-mm-dd" would.
func Localize(pattern string) string {
	var b strings.Builder
	inQuote := false
	for _, ch := range pattern {
		if ch == '"' {
			inQuote = !inQuote
		} else if f, ok := patternLetters[ch]; ok && !f.Nepali && !inQuote {
			ch = unicode.ToLower(ch)
		}
		b.WriteRune(ch)
	}
	return b.String()
}
