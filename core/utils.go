package core

import (
	"strings"
	"time"
)

// NowFunc returns the current time; mockable in tests.
var NowFunc = time.Now

// ISODateFormat is the layout of all persisted calendar dates.
const ISODateFormat = "2006-01-02"

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// LocalDateString returns today's date on the local calendar as YYYY-MM-DD.
func LocalDateString() string {
	return NowFunc().Format(ISODateFormat)
}

// ValidISODate reports whether s is a YYYY-MM-DD calendar date.
func ValidISODate(s string) bool {
	_, err := time.Parse(ISODateFormat, s)
	return err == nil
}

// EpochMillisID returns a time-based integer id.
func EpochMillisID() int {
	return int(NowFunc().UnixNano() / int64(time.Millisecond))
}
