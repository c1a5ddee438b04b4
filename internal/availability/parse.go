// Package availability implements the time parsing and matching rules used to
// decide whether a desk slot is bookable. All functions are pure.
package availability

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
)

const minutesPerDay = 24 * 60

var (
	dateRe     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe     = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})\s*(am|pm)?$`)
	hoursRe    = regexp.MustCompile(`(?i)(\d+)\s*h`)
	minutesRe  = regexp.MustCompile(`(?i)(\d+)\s*m`)
	todayToken = "today"
)

// ParseDate accepts "YYYY-MM-DD" or the word "today" (any case).
// The result is a civil date at midnight UTC. Anything else is not parseable.
func ParseDate(token string, today time.Time) (time.Time, bool) {
	token = strings.TrimSpace(token)

	if strings.EqualFold(token, todayToken) {
		return CivilDate(today), true
	}

	if !dateRe.MatchString(token) {
		return time.Time{}, false
	}

	date, err := time.Parse(domain.DateFormat, token)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

// ParseTime accepts H:MM or HH:MM with an optional am/pm suffix and returns
// the minute of day.
func ParseTime(token string) (int, bool) {
	m := timeRe.FindStringSubmatch(strings.TrimSpace(token))
	if m == nil {
		return 0, false
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])

	switch strings.ToLower(m[3]) {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	if hour > 23 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

// ParseDuration sums "<N>h" and "<N>m" parts. A total of zero is not parseable.
func ParseDuration(token string) (int, bool) {
	total := 0
	matched := false

	if m := hoursRe.FindStringSubmatch(token); m != nil {
		hours, err := strconv.Atoi(m[1])
		if err == nil {
			total += hours * 60
			matched = true
		}
	}
	if m := minutesRe.FindStringSubmatch(token); m != nil {
		minutes, err := strconv.Atoi(m[1])
		if err == nil {
			total += minutes
			matched = true
		}
	}

	if !matched || total <= 0 {
		return 0, false
	}
	return total, true
}

// CivilDate drops the clock and location, keeping the calendar day of t.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDate compares calendar days regardless of clock and location.
func SameDate(a, b time.Time) bool {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	return ya == yb && ma == mb && da == db
}
