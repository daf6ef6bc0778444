package timeutil

import (
	"time"
)

// Vienna is the business time zone; invoices and PDFs use Austrian local time
var Vienna *time.Location

func init() {
	var err error
	Vienna, err = time.LoadLocation("Europe/Vienna")
	if err != nil {
		// Fallback: CET if the tz database is unavailable
		Vienna = time.FixedZone("CET", 1*60*60)
	}
}

// Now returns the current time in Vienna local time
func Now() time.Time {
	return time.Now().In(Vienna)
}

// ToVienna converts any time to Vienna local time
func ToVienna(t time.Time) time.Time {
	return t.In(Vienna)
}

// Format formats a time in Vienna local time using the given layout
func Format(t time.Time, layout string) string {
	return t.In(Vienna).Format(layout)
}

// Common layouts (Austrian conventions)
const (
	DateLayout     = "02.01.2006"
	DateTimeLayout = "02.01.2006 15:04"
	MonthLayout    = "2006-01"
)
