package nepalidate

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nepalcal/bsdate/internal/constants"
	"github.com/nepalcal/bsdate/internal/errorutil"
)

func TestADtoBS(t *testing.T) {
	tests := []struct {
		ad   string
		want string
	}{
		{"1986-01-01", "2042-09-17"},
		{"1986-01-02", "2042-09-18"},
		{"1943-04-14", "2000-01-01"},
		{"2024-04-13", "2081-01-01"},
		{"2024-04-12", "2080-12-30"},
		{"1919-04-13", "1976-01-01"},
		{"2044-04-12", "2100-12-31"},
	}

	for _, tt := range tests {
		got, err := ADtoBS(tt.ad)
		require.NoError(t, err, tt.ad)
		if got != tt.want {
			t.Errorf("ADtoBS(%q) = %q, want %q", tt.ad, got, tt.want)
		}
	}
}

func TestBStoAD(t *testing.T) {
	tests := []struct {
		bs   string
		want string
	}{
		{"2042-09-17", "1986-01-01"},
		{"2081-01-01", "2024-04-13"},
		{"2082-01-01", "2025-04-14"},
		{"2081-04-01", "2024-07-16"},
	}

	for _, tt := range tests {
		got, err := BStoAD(tt.bs)
		require.NoError(t, err, tt.bs)
		if got != tt.want {
			t.Errorf("BStoAD(%q) = %q, want %q", tt.bs, got, tt.want)
		}
	}
}

func TestBStoADEmptyIsToday(t *testing.T) {
	today, err := Now()
	require.NoError(t, err)

	got, err := BStoAD("")
	require.NoError(t, err)
	assert.Equal(t, today.Time().Format(constants.ISODateLayout), got)
}

func TestConversionErrors(t *testing.T) {
	tests := []struct {
		name  string
		conv  func(string) (string, error)
		input string
		cause error
	}{
		{"ad wrong shape", ADtoBS, "1986/01/01", errorutil.ErrFormat},
		{"ad impossible date", ADtoBS, "2023-02-30", errorutil.ErrFormat},
		{"ad before table", ADtoBS, "1919-04-12", errorutil.ErrRange},
		{"ad after table", ADtoBS, "2044-04-13", errorutil.ErrRange},
		{"bs wrong shape", BStoAD, "2081-1-1", errorutil.ErrFormat},
		{"bs missing day", BStoAD, "2080-12-31", errorutil.ErrRange},
		{"bs year out of table", BStoAD, "2101-01-01", errorutil.ErrRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.conv(tt.input)
			require.Error(t, err)

			var convErr *errorutil.ConversionError
			require.True(t, errors.As(err, &convErr), "error %v is not a ConversionError", err)
			assert.Equal(t, tt.input, convErr.Input)
			assert.ErrorIs(t, err, errorutil.ErrConversion)
			assert.ErrorIs(t, err, tt.cause)
		})
	}
}

func TestStringRoundTripFullRange(t *testing.T) {
	day := Minimum()
	for !day.After(Maximum()) {
		ad := day.Format(constants.ISODateLayout)

		bs, err := ADtoBS(ad)
		require.NoError(t, err, ad)
		back, err := BStoAD(bs)
		require.NoError(t, err, bs)
		if back != ad {
			t.Fatalf("BStoAD(ADtoBS(%q)) = %q", ad, back)
		}

		day = day.AddDate(0, 0, 1)
	}
}

func TestBSStringRoundTrip(t *testing.T) {
	for year := MinYear(); year <= MaxYear(); year++ {
		for month := 0; month < constants.MonthsPerYear; month++ {
			d := MustNew(year, month, 1).EndOfMonth()
			bs := d.Format(constants.DefaultBSPattern)

			ad, err := BStoAD(bs)
			require.NoError(t, err, bs)
			got, err := ADtoBS(ad)
			require.NoError(t, err, ad)
			if got != bs {
				t.Fatalf("ADtoBS(BStoAD(%q)) = %q", bs, got)
			}
		}
	}
}

func TestNowIsInRange(t *testing.T) {
	today, err := Now()
	require.NoError(t, err)
	assert.False(t, today.Time().Before(Minimum()))
	assert.WithinDuration(t, time.Now(), today.Time(), time.Minute)
}
