package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDatetimeGregorian(t *testing.T) {
	// 2024-03-20 was a Wednesday.
	const dt = "2024-03-20 09:05:03"

	cases := []struct {
		name   string
		format string
		want   string
	}{
		{"full date", "%Y-%m-%d", "2024-3-20"},
		{"month name", "%B %d, %Y", "March 20, 2024"},
		{"weekday", "%A", "Wednesday"},
		{"time is never zero padded", "%H:%M:%S", "9:5:3"},
		{"empty directive", "%Y%N%m", "20243"},
		{"unknown directive passes through", "%Y %x", "2024 %x"},
		{"literal text survives", "on %d day", "on 20 day"},
		{"trailing percent survives", "%Y%", "2024%"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FormatDatetime(dt, tc.format, CalendarGregorian)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatDatetimeJalali(t *testing.T) {
	format := func(t *testing.T, dt, layout string) string {
		t.Helper()
		got, err := FormatDatetime(dt, layout, CalendarJalali)
		require.NoError(t, err)
		return got
	}

	t.Run("nowruz", func(t *testing.T) {
		assert.Equal(t, "1403-1-1", format(t, "2024-03-20 12:00:00", "%Y-%m-%d"))
	})

	t.Run("last day of the year", func(t *testing.T) {
		assert.Equal(t, "1402-12-29", format(t, "2024-03-19 12:00:00", "%Y-%m-%d"))
	})

	t.Run("month name", func(t *testing.T) {
		assert.Equal(t, "Farvardin", format(t, "2024-03-20 12:00:00", "%B"))
	})

	t.Run("weekday stays gregorian", func(t *testing.T) {
		assert.Equal(t, "Wednesday", format(t, "2024-03-20 12:00:00", "%A"))
	})

	t.Run("time fields are calendar independent", func(t *testing.T) {
		assert.Equal(t, "23:59:1", format(t, "2024-03-20 23:59:01", "%H:%M:%S"))
	})
}

func TestFormatDatetimeMalformed(t *testing.T) {
	// Stored timestamps have exactly one shape; anything else is
	// corrupted data and must surface as an error, not slip through.
	for _, dt := range []string{"not a date", "2024-03-20", "2024-13-40 99:99:99", ""} {
		_, err := FormatDatetime(dt, "%Y", CalendarGregorian)
		assert.Error(t, err, "timestamp %q", dt)
	}
}
