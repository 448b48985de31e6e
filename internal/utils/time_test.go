package utils

import (
	"reflect"
	"testing"
	"time"
)

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{"empty string returns local", "", false},
		{"Local returns local", "Local", false},
		{"valid timezone UTC", "UTC", false},
		{"valid timezone Asia/Tokyo", "Asia/Tokyo", false},
		{"invalid timezone", "Invalid/Timezone", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadLocation() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && loc == nil {
				t.Errorf("LoadLocation() returned nil location without error")
			}
		})
	}
}

func TestTodayUsesLocation(t *testing.T) {
	instant := time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)
	clock := func() time.Time { return instant }

	if got := Today(clock, time.UTC); got != "2024-03-01" {
		t.Errorf("Today(UTC) = %s, want 2024-03-01", got)
	}

	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	if got := Today(clock, tokyo); got != "2024-03-02" {
		t.Errorf("Today(Tokyo) = %s, want 2024-03-02", got)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-02-29", time.UTC)
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if got.Year() != 2024 || got.Month() != time.February || got.Day() != 29 {
		t.Errorf("ParseDate() = %v", got)
	}

	for _, bad := range []string{"", "2024-13-01", "02/29/2024", "2023-02-29"} {
		if _, err := ParseDate(bad, time.UTC); err == nil {
			t.Errorf("ParseDate(%q) expected error", bad)
		}
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		date string
		n    int
		want string
	}{
		{"2024-03-01", -1, "2024-02-29"},
		{"2023-12-31", 1, "2024-01-01"},
		{"2024-05-10", 0, "2024-05-10"},
	}
	for _, tt := range tests {
		got, err := AddDays(tt.date, tt.n)
		if err != nil {
			t.Fatalf("AddDays(%s, %d) error = %v", tt.date, tt.n, err)
		}
		if got != tt.want {
			t.Errorf("AddDays(%s, %d) = %s, want %s", tt.date, tt.n, got, tt.want)
		}
	}
}

func TestLastNDates(t *testing.T) {
	got, err := LastNDates("2024-01-02", 3)
	if err != nil {
		t.Fatalf("LastNDates() error = %v", err)
	}
	want := []string{"2023-12-31", "2024-01-01", "2024-01-02"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LastNDates() = %v, want %v", got, want)
	}

	empty, err := LastNDates("2024-01-02", 0)
	if err != nil || len(empty) != 0 {
		t.Errorf("LastNDates(n=0) = %v, %v", empty, err)
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %s) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}

	dates := MonthDates(2024, time.February)
	if len(dates) != 29 || dates[0] != "2024-02-01" || dates[28] != "2024-02-29" {
		t.Errorf("MonthDates() = %v", dates)
	}
}
