package session

import (
	"strings"
	"time"

	"github.com/ayoisaiah/clockout/internal/settings"
)

// DaySet is a set of days of the week.
type DaySet uint8

// DefaultWeekend is the day-set whose logins use the weekend hours.
var DefaultWeekend = NewDaySet(time.Saturday, time.Sunday)

func NewDaySet(days ...time.Weekday) DaySet {
	var d DaySet
	for _, w := range days {
		d |= 1 << uint(w)
	}

	return d
}

func (d DaySet) Contains(w time.Weekday) bool {
	return d&(1<<uint(w)) != 0
}

// Days lists the members of the set starting from Sunday.
func (d DaySet) Days() []time.Weekday {
	var days []time.Weekday

	for w := time.Sunday; w <= time.Saturday; w++ {
		if d.Contains(w) {
			days = append(days, w)
		}
	}

	return days
}

func (d DaySet) String() string {
	days := d.Days()

	names := make([]string, len(days))
	for i, w := range days {
		names[i] = w.String()
	}

	return strings.Join(names, ", ")
}

// PolicyHours returns the working hours that apply to a session that began
// at loginTime. The day is classified in loginTime's own location.
func PolicyHours(loginTime time.Time, s settings.Settings, weekend DaySet) int {
	if weekend.Contains(loginTime.Weekday()) {
		return s.WeekendHours
	}

	return s.WeekdayHours
}

// ProjectLogout returns the expected logout time for a session that began at
// loginTime.
func ProjectLogout(loginTime time.Time, s settings.Settings, weekend DaySet) time.Time {
	hours := PolicyHours(loginTime, s, weekend)

	return loginTime.Add(time.Duration(hours) * time.Hour)
}
