package domain

import "time"

// DateLayout is the wire and storage format of calendar dates ("yyyy-MM-dd").
// Activities are matched to a day by plain string equality on this format.
const DateLayout = "2006-01-02"

// TimeLayout is the format of an activity's start time ("HH:mm").
const TimeLayout = "15:04"

// FormatDate formats t as a DateLayout string in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a DateLayout string as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func validDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

func validTime(s string) bool {
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}
