package discord

import "time"

// FormatClock renders t as HH:MM in loc (t's own zone when loc is nil).
func FormatClock(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format("15:04")
}
