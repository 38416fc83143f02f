// Package date parses the dates and times users type on the command line.
package date

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DateFormat is the format used to display a day, in ISO-8601 format.
const DateFormat = "2006-01-02"

// DateTimeFormat is the format used to display a date and time.
const DateTimeFormat = "2006-01-02 15:04"

const Day = 24 * time.Hour

// readFormats are the permissive formats accepted on read (single-digit month,
// day and hour are allowed).
var readFormats = []string{
	time.RFC3339,
	"2006-1-2 15:04:05",
	"2006-1-2 15:04",
	"2006-1-2T15:04",
	"2006-1-2",
}

// relative matches durations like -1d, -2w, -3h or -30m.
var relative = regexp.MustCompile(`^-(\d+)([mhdw])$`)

// Parse parses a date and time typed by a user.
//
// It accepts "now", durations in the past relative to now ("-30m", "-3h",
// "-1d", "-2w"), and absolute dates with an optional time ("2025-7-1",
// "2025-07-01 14:30", RFC 3339). Absolute dates without a zone are read in
// now's location.
func Parse(str string, now time.Time) (time.Time, error) {
	if str == "now" {
		return now, nil
	}
	if m := relative.FindStringSubmatch(str); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid relative date %q: %w", str, err)
		}
		unit := map[string]time.Duration{"m": time.Minute, "h": time.Hour, "d": Day, "w": 7 * Day}[m[2]]
		return now.Add(-time.Duration(n) * unit), nil
	}
	for _, layout := range readFormats {
		if t, err := time.ParseInLocation(layout, str, now.Location()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q want format %q or %q", str, DateFormat, DateTimeFormat)
}

// MustParse is like Parse but panics on error.
func MustParse(str string, now time.Time) time.Time {
	t, err := Parse(str, now)
	if err != nil {
		panic(err.Error())
	}
	return t
}

// Format formats t as a day when it is exactly midnight, as a date and time
// otherwise.
func Format(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(DateFormat)
	}
	return t.Format(DateTimeFormat)
}
