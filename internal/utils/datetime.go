package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Calendar values accepted by FormatDatetime.
const (
	CalendarGregorian = "Gregorian"
	CalendarJalali    = "Jalali"
)

// datetimeLayout is the storage form of every post and comment timestamp.
const datetimeLayout = "2006-01-02 15:04:05"

var jalaliMonths = []string{
	"Farvardin", "Ordibehesht", "Khordad", "Tir", "Mordad", "Shahrivar",
	"Mehr", "Aban", "Azar", "Dey", "Bahman", "Esfand",
}

// FormatDatetime renders a stored "YYYY-MM-DD HH:MM:SS" timestamp
// according to the blog's date format string. Recognized directives:
//
//	%Y %m %B %d — year, month number, month name, day (calendar-aware)
//	%A          — weekday name, always taken from the Gregorian date
//	%H %M %S    — hour, minute, second
//	%N          — nothing (drops the directive)
//
// Values are never zero-padded. The format is consumed in a single
// left-to-right pass, so a substituted value can not be re-read as a
// directive. Unknown %x pairs and bare text pass through unchanged.
//
// A timestamp that does not parse is reported as an error: the stored
// form is fixed, so a bad one means corrupted data, not bad input.
func FormatDatetime(datetime, format, calendar string) (string, error) {
	t, err := time.Parse(datetimeLayout, datetime)
	if err != nil {
		return "", fmt.Errorf("malformed stored timestamp %q: %w", datetime, err)
	}

	year, month, day := t.Year(), int(t.Month()), t.Day()
	monthName := Tr(t.Month().String())
	if calendar == CalendarJalali {
		year, month, day = ToJalali(t.Year(), int(t.Month()), t.Day())
		monthName = Tr(jalaliMonths[month-1])
	}

	var b strings.Builder
	for i := 0; i < len(format); i++ {
		if format[i] != '%' || i+1 == len(format) {
			b.WriteByte(format[i])
			continue
		}
		i++
		switch format[i] {
		case 'Y':
			b.WriteString(strconv.Itoa(year))
		case 'm':
			b.WriteString(strconv.Itoa(month))
		case 'B':
			b.WriteString(monthName)
		case 'd':
			b.WriteString(strconv.Itoa(day))
		case 'A':
			b.WriteString(Tr(t.Weekday().String()))
		case 'H':
			b.WriteString(strconv.Itoa(t.Hour()))
		case 'M':
			b.WriteString(strconv.Itoa(t.Minute()))
		case 'S':
			b.WriteString(strconv.Itoa(t.Second()))
		case 'N':
			// swallowed
		default:
			b.WriteByte('%')
			b.WriteByte(format[i])
		}
	}
	return b.String(), nil
}
