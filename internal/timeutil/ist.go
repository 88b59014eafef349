package timeutil

import (
	"time"
)

// IST is the Indian Standard Time location (UTC+5:30). All guest-facing
// dates and bill timestamps are rendered in IST.
var IST *time.Location

func init() {
	var err error
	IST, err = time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// Fallback: create fixed zone if Asia/Kolkata not available
		IST = time.FixedZone("IST", 5*60*60+30*60) // UTC+5:30
	}
}

// Now returns the current time in IST.
func Now() time.Time {
	return time.Now().In(IST)
}

// ToIST converts any time to IST.
func ToIST(t time.Time) time.Time {
	return t.In(IST)
}

// Today returns today's date in IST as YYYY-MM-DD, the format bill and
// booking dates are stored in.
func Today() string {
	return Now().Format(DateLayout)
}

// DisplayDate re-renders a stored YYYY-MM-DD date as DD-MM-YYYY for
// exports. Unparseable input is passed through unchanged.
func DisplayDate(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format(DisplayDateLayout)
}

// FormatIST formats a time in IST using the given layout.
func FormatIST(t time.Time, layout string) string {
	return t.In(IST).Format(layout)
}

// Common layouts
const (
	DateLayout        = "2006-01-02"
	DisplayDateLayout = "02-01-2006"
	DateTimeLayout    = "2006-01-02 15:04:05"
	DisplayLayout     = "02 Jan 2006, 03:04 PM"
)
