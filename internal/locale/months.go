package locale

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/nepalcal/bsdate/internal/errorutil"
)

// commonMonthSpellings are romanizations in everyday use besides the ones
// in the name tables.
var commonMonthSpellings = map[string]string{
	"baishakh": "Baisakh",
	"baisakh":  "Baisakh",
	"jeth":     "Jestha",
	"jeshtha":  "Jestha",
	"ashadh":   "Asar",
	"asadh":    "Asar",
	"ashar":    "Asar",
	"saun":     "Shrawan",
	"sawan":    "Shrawan",
	"shrawan":  "Shrawan",
	"bhadau":   "Bhadra",
	"ashoj":    "Aswin",
	"asoj":     "Aswin",
	"ashwin":   "Aswin",
	"kartik":   "Kartik",
	"mangsir":  "Mangsir",
	"marga":    "Mangsir",
	"push":     "Poush",
	"poush":    "Poush",
	"magh":     "Magh",
	"phagun":   "Falgun",
	"fagun":    "Falgun",
	"phalgun":  "Falgun",
	"chait":    "Chaitra",
}

// MonthResolver maps month names, short names, spellings and 1-based
// numbers to 0-based month indexes. Lookups ignore case.
type MonthResolver struct {
	index map[string]int
}

// NewMonthResolver builds a resolver from the name tables, the common
// spellings and extra aliases mapping an alias to a canonical English month
// name. An alias claimed by two different months is an error.
func NewMonthResolver(extra map[string]string) (*MonthResolver, error) {
	r := &MonthResolver{index: make(map[string]int)}
	claims := make(map[string]map[int]bool)

	claim := func(name string, month int) {
		key := normalizeMonthName(name)
		if key == "" {
			return
		}
		if claims[key] == nil {
			claims[key] = make(map[int]bool)
		}
		claims[key][month] = true
		r.index[key] = month
	}

	for i := range monthsEnglish {
		claim(monthsEnglish[i], i)
		claim(monthsShortEnglish[i], i)
		claim(monthsNepali[i], i)
		claim(monthsShortNepali[i], i)
	}
	for alias, canonical := range commonMonthSpellings {
		claim(alias, englishMonthIndex(canonical))
	}

	for alias, canonical := range extra {
		month := englishMonthIndex(canonical)
		if month < 0 {
			return nil, &errorutil.InvalidArgumentError{
				Argument: "month alias",
				Value:    alias,
				Msg:      fmt.Sprintf("%q is not an English month name", canonical),
			}
		}
		claim(alias, month)
	}

	var conflicts []string
	for key, months := range claims {
		if len(months) > 1 {
			conflicts = append(conflicts, key)
		}
	}
	if len(conflicts) > 0 {
		sort.Strings(conflicts)
		return nil, &errorutil.InvalidArgumentError{
			Argument: "month alias",
			Value:    strings.Join(conflicts, ", "),
			Msg:      "claimed by more than one month",
		}
	}

	return r, nil
}

// Resolve returns the 0-based month for a name or a 1-based number.
func (r *MonthResolver) Resolve(nameOrNumber string) (int, error) {
	key := normalizeMonthName(nameOrNumber)
	if n, err := strconv.Atoi(key); err == nil {
		if n < 1 || n > 12 {
			return 0, errorutil.NewRangeError("month", n, 1, 12)
		}
		return n - 1, nil
	}

	if month, ok := r.index[key]; ok {
		return month, nil
	}
	return 0, &errorutil.InvalidArgumentError{Argument: "month", Value: nameOrNumber, Msg: "unknown month name"}
}

// Names returns every name the resolver accepts, sorted.
func (r *MonthResolver) Names() []string {
	names := make([]string, 0, len(r.index))
	for name := range r.index {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func englishMonthIndex(name string) int {
	for i, m := range monthsEnglish {
		if strings.EqualFold(m, name) {
			return i
		}
	}
	return -1
}

func normalizeMonthName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
