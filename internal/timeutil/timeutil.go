// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"
)

const (
	minutesInAnHour  = 60
	secondsInAMinute = 60
)

var (
	errParsingDate = errors.New(
		"unable to parse the specified time (e.g. '09:15', '20 mins ago', 'yesterday 5pm')",
	)

	errUnknownWeekday = errors.New("unknown day of the week")
)

// Clock supplies the current wall-clock time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local device time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ClockFunc adapts an ordinary function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// Fixed returns a Clock that always reports t.
func Fixed(t time.Time) Clock {
	return ClockFunc(func() time.Time {
		return t
	})
}

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = int(math.Floor(float64(val) / float64(minutesInAnHour)))
	mins = val % minutesInAnHour

	return
}

// SplitDuration expresses a duration as whole hours, minutes and seconds.
// Negative durations are reported as zero.
func SplitDuration(d time.Duration) (hrs, mins, secs int) {
	if d < 0 {
		return 0, 0, 0
	}

	total := int(d / time.Second)
	hrs, mins = MinsToHoursAndMins(total / secondsInAMinute)
	secs = total % secondsInAMinute

	return
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// SameDay reports whether a falls on the same calendar day as b, as seen
// from b's location.
func SameDay(a, b time.Time) bool {
	return RoundToStart(a.In(b.Location())).Equal(RoundToStart(b))
}

// ClockFormat returns the layout used to display a time of day.
func ClockFormat(twentyFourHour bool) string {
	if twentyFourHour {
		return "15:04:05"
	}

	return "03:04:05 PM"
}

// FromStr parses a human readable time relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errParsingDate
	}

	dt, err := dps.Parse(&dps.Configuration{
		CurrentTime: now,
	}, s)
	if err != nil {
		return time.Time{}, errParsingDate
	}

	return dt.Time, nil
}

// ParseWeekday converts a day name such as "saturday" or "Sat" into a
// time.Weekday.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if len(s) >= 3 {
		for d := time.Sunday; d <= time.Saturday; d++ {
			name := strings.ToLower(d.String())
			if strings.HasPrefix(name, s) {
				return d, nil
			}
		}
	}

	return time.Sunday, fmt.Errorf("%w: %q", errUnknownWeekday, s)
}
