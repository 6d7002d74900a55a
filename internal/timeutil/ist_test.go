package timeutil

import (
	"testing"
	"time"
)

func TestFormatIST(t *testing.T) {
	// 18:30 UTC is midnight in IST (UTC+5:30), next day.
	utc := time.Date(2025, 3, 10, 18, 30, 0, 0, time.UTC)

	if got := FormatIST(utc, DateTimeLayout); got != "2025-03-11 00:00:00" {
		t.Errorf("FormatIST(DateTimeLayout) = %q", got)
	}
	if got := FormatIST(utc, DisplayLayout); got != "11 Mar 2025, 12:00 AM" {
		t.Errorf("FormatIST(DisplayLayout) = %q", got)
	}
}

func TestSplitDate(t *testing.T) {
	cases := []struct {
		in               string
		year, month, day int
		ok               bool
	}{
		{"2025-03-10", 2025, 3, 10, true},
		{"2024-12-01", 2024, 12, 1, true},
		{"2025-13-01", 0, 0, 0, false},
		{"2025-00-01", 0, 0, 0, false},
		{"2025/03/10", 0, 0, 0, false},
		{"not-a-date", 0, 0, 0, false},
		{"", 0, 0, 0, false},
	}
	for _, tc := range cases {
		year, month, day, ok := SplitDate(tc.in)
		if ok != tc.ok || year != tc.year || month != tc.month || day != tc.day {
			t.Errorf("SplitDate(%q) = %d, %d, %d, %v; want %d, %d, %d, %v",
				tc.in, year, month, day, ok, tc.year, tc.month, tc.day, tc.ok)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month, want int
	}{
		{2025, 1, 31},
		{2025, 4, 30},
		{2025, 2, 28},
		{2024, 2, 29},
		{2025, 12, 31},
	}
	for _, tc := range cases {
		if got := DaysInMonth(tc.year, tc.month); got != tc.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}

func TestMonthDate(t *testing.T) {
	if got := MonthDate(2025, 3, 7); got != "2025-03-07" {
		t.Errorf("MonthDate = %q, want 2025-03-07", got)
	}
}
