package utils

import "time"

// Rwanda time (CAT, +02:00).
var kigaliLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Africa/Kigali"); err == nil {
		return loc
	}
	return time.FixedZone("CAT", 2*3600)
}()

func KigaliLocation() *time.Location { return kigaliLoc }

// DateStamp formats t as YYYY-MM-DD in Kigali time. Used for export file names.
func DateStamp(t time.Time) string {
	return t.In(kigaliLoc).Format("2006-01-02")
}

// FormatDisplay renders a timestamp for emails and notifications.
func FormatDisplay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(kigaliLoc).Format("January 2, 2006 15:04")
}
