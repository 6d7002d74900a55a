package timeutil

import (
	"strconv"
	"strings"
	"time"
)

// IST is the Indian Standard Time location (UTC+5:30)
var IST *time.Location

func init() {
	var err error
	IST, err = time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// Fallback: create fixed zone if Asia/Kolkata not available
		IST = time.FixedZone("IST", 5*60*60+30*60) // UTC+5:30
	}
}

// Now returns the current time in IST
func Now() time.Time {
	return time.Now().In(IST)
}

// Today returns the current IST date in YYYY-MM-DD form.
func Today() string {
	return Now().Format(DateLayout)
}

// FormatIST formats a time in IST using the given layout
func FormatIST(t time.Time, layout string) string {
	return t.In(IST).Format(layout)
}

// SplitDate splits a YYYY-MM-DD string into integer components without
// going through a time.Time, so dates compare the same regardless of the
// process time zone.
func SplitDate(s string) (year, month, day int, ok bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	var err error
	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, false
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, 0, false
	}
	day, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, false
	}
	return year, month, day, true
}

// DaysInMonth returns the number of calendar days in the given month
// (1-12). Day zero of the following month normalizes to the last day.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month+1), 0, 0, 0, 0, 0, IST).Day()
}

// MonthDate formats a (year, month, day) triple back into YYYY-MM-DD.
func MonthDate(year, month, day int) string {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, IST).Format(DateLayout)
}

// Common layouts for IST formatting
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
	DisplayLayout  = "02 Jan 2006, 03:04 PM"
)
