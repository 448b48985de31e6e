package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/daywell/internal/constants"
)

// Clock returns the current instant. Production code passes time.Now.
type Clock func() time.Time

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	_, err := LoadLocation(timezone)
	return err == nil
}

// DateKey formats t as a calendar date (YYYY-MM-DD) in loc.
func DateKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(constants.DateFormat)
}

// Today returns the current calendar date in loc.
func Today(clock Clock, loc *time.Location) string {
	return DateKey(clock(), loc)
}

// ParseDate parses a YYYY-MM-DD string into midnight of that day in loc.
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", dateStr)
	}
	if loc == nil {
		loc = time.Local
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// AddDays shifts a YYYY-MM-DD date by n calendar days.
func AddDays(dateStr string, n int) (string, error) {
	t, err := ParseDate(dateStr, time.UTC)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(constants.DateFormat), nil
}

// LastNDates returns the n dates ending at today, oldest first.
func LastNDates(today string, n int) ([]string, error) {
	if n <= 0 {
		return []string{}, nil
	}
	end, err := ParseDate(today, time.UTC)
	if err != nil {
		return nil, err
	}
	dates := make([]string, n)
	for i := 0; i < n; i++ {
		dates[i] = end.AddDate(0, 0, i-(n-1)).Format(constants.DateFormat)
	}
	return dates, nil
}

// DaysInMonth returns the number of days of month in year.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthDates returns every date of the month in order.
func MonthDates(year int, month time.Month) []string {
	n := DaysInMonth(year, month)
	dates := make([]string, n)
	for d := 1; d <= n; d++ {
		dates[d-1] = time.Date(year, month, d, 0, 0, 0, 0, time.UTC).Format(constants.DateFormat)
	}
	return dates
}

// DateOfMillis converts epoch milliseconds to a date in loc.
func DateOfMillis(ms int64, loc *time.Location) string {
	return DateKey(time.UnixMilli(ms), loc)
}
