package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ayoisaiah/clockout/internal/timeutil"
)

// timestampLayout is the stored form: UTC with millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

var errBadDuration = errors.New("duration must be in HH:MM format")

// Duration is the length of a completed break in whole hours and minutes.
type Duration struct {
	Hours   int
	Minutes int
}

// ComputeDuration returns the whole minutes between start and end, split
// into hours and minutes. end must be after start.
func ComputeDuration(start, end time.Time) (Duration, error) {
	if !end.After(start) {
		return Duration{}, ErrClockSkew.Fmt(
			formatTimestamp(end),
			formatTimestamp(start),
		)
	}

	totalMinutes := int(end.Sub(start) / time.Minute)

	hrs, mins := timeutil.MinsToHoursAndMins(totalMinutes)

	return Duration{Hours: hrs, Minutes: mins}, nil
}

// Total returns the duration as a time.Duration.
func (d Duration) Total() time.Duration {
	return time.Duration(d.Hours)*time.Hour + time.Duration(d.Minutes)*time.Minute
}

func (d Duration) String() string {
	return fmt.Sprintf("%02d:%02d", d.Hours, d.Minutes)
}

func parseDuration(s string) (Duration, error) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return Duration{}, errBadDuration
	}

	hrs, err := strconv.Atoi(h)
	if err != nil || hrs < 0 {
		return Duration{}, errBadDuration
	}

	mins, err := strconv.Atoi(m)
	if err != nil || mins < 0 || mins > 59 {
		return Duration{}, errBadDuration
	}

	return Duration{Hours: hrs, Minutes: mins}, nil
}

// BreakRecord is a completed break.
type BreakRecord struct {
	Start    time.Time
	End      time.Time
	Duration Duration
}

// recordJSON is the stored form of a BreakRecord. Every field is a string.
type recordJSON struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Duration string `json:"duration"`
}

func (r BreakRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{
		Start:    formatTimestamp(r.Start),
		End:      formatTimestamp(r.End),
		Duration: r.Duration.String(),
	})
}

func (r *BreakRecord) UnmarshalJSON(b []byte) error {
	var raw recordJSON

	err := json.Unmarshal(b, &raw)
	if err != nil {
		return err
	}

	start, err := parseTimestamp(raw.Start)
	if err != nil {
		return fmt.Errorf("break start: %w", err)
	}

	end, err := parseTimestamp(raw.End)
	if err != nil {
		return fmt.Errorf("break end: %w", err)
	}

	if !end.After(start) {
		return fmt.Errorf("break ends at %s before it starts at %s", raw.End, raw.Start)
	}

	d, err := parseDuration(raw.Duration)
	if err != nil {
		return err
	}

	*r = BreakRecord{Start: start, End: end, Duration: d}

	return nil
}

func encodeLedger(records []BreakRecord) (string, error) {
	if records == nil {
		records = []BreakRecord{}
	}

	b, err := json.Marshal(records)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

func decodeLedger(s string) ([]BreakRecord, error) {
	var records []BreakRecord

	err := json.Unmarshal([]byte(s), &records)
	if err != nil {
		return nil, err
	}

	for i := 1; i < len(records); i++ {
		if records[i].Start.Before(records[i-1].End) {
			return nil, fmt.Errorf("break %d overlaps the one before it", i+1)
		}
	}

	return records, nil
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// parseTimestamp accepts any RFC 3339 timestamp, with or without fractional
// seconds.
func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
}
