package session

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/clockout/internal/settings"
)

func TestComputeDuration(t *testing.T) {
	start := monday.Add(3 * time.Hour)

	testCases := []struct {
		name    string
		elapsed time.Duration
		want    Duration
		wantErr error
	}{
		{name: "ninety minutes", elapsed: 90 * time.Minute, want: Duration{Hours: 1, Minutes: 30}},
		{name: "floors seconds", elapsed: 59*time.Minute + 59*time.Second, want: Duration{Minutes: 59}},
		{name: "under a minute", elapsed: 30 * time.Second, want: Duration{}},
		{name: "several hours", elapsed: 125 * time.Minute, want: Duration{Hours: 2, Minutes: 5}},
		{name: "zero length", elapsed: 0, wantErr: ErrClockSkew},
		{name: "negative", elapsed: -time.Minute, wantErr: ErrClockSkew},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ComputeDuration(start, start.Add(tc.elapsed))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.LessOrEqual(t, got.Total(), tc.elapsed)
		})
	}
}

func TestDurationString(t *testing.T) {
	assert.Equal(t, "01:30", Duration{Hours: 1, Minutes: 30}.String())
	assert.Equal(t, "00:05", Duration{Minutes: 5}.String())
	assert.Equal(t, "12:00", Duration{Hours: 12}.String())
}

func TestParseDuration(t *testing.T) {
	d, err := parseDuration("02:45")
	require.NoError(t, err)
	assert.Equal(t, Duration{Hours: 2, Minutes: 45}, d)

	for _, s := range []string{"", "0245", "ab:10", "01:60", "-1:00"} {
		_, err := parseDuration(s)
		assert.ErrorIs(t, err, errBadDuration, s)
	}
}

func TestBreakRecordJSON(t *testing.T) {
	rec := BreakRecord{
		Start:    time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC),
		End:      time.Date(2024, 1, 8, 12, 45, 30, 0, time.UTC),
		Duration: Duration{Minutes: 45},
	}

	b, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(
		t,
		`{"start":"2024-01-08T12:00:00.000Z","end":"2024-01-08T12:45:30.000Z","duration":"00:45"}`,
		string(b),
	)

	var got BreakRecord

	require.NoError(t, json.Unmarshal(b, &got))
	assert.True(t, got.Start.Equal(rec.Start))
	assert.True(t, got.End.Equal(rec.End))
	assert.Equal(t, rec.Duration, got.Duration)
}

func TestDecodeLedger(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantLen int
		wantErr bool
	}{
		{name: "empty", input: `[]`},
		{
			name:    "source format",
			input:   `[{"start":"2024-01-08T12:00:00.000Z","end":"2024-01-08T13:30:00.000Z","duration":"01:30"}]`,
			wantLen: 1,
		},
		{
			name: "overlapping",
			input: `[{"start":"2024-01-08T12:00:00Z","end":"2024-01-08T13:00:00Z","duration":"01:00"},
				{"start":"2024-01-08T12:30:00Z","end":"2024-01-08T12:40:00Z","duration":"00:10"}]`,
			wantErr: true,
		},
		{name: "not an array", input: `{}`, wantErr: true},
		{name: "bad duration", input: `[{"start":"2024-01-08T12:00:00Z","end":"2024-01-08T13:00:00Z","duration":"1h"}]`, wantErr: true},
		{name: "bad timestamp", input: `[{"start":"noon","end":"2024-01-08T13:00:00Z","duration":"01:00"}]`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := decodeLedger(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Len(t, got, tc.wantLen)
		})
	}
}

func TestEncodeEmptyLedger(t *testing.T) {
	s, err := encodeLedger(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", s)
}

func TestProjectLogout(t *testing.T) {
	s := settings.Settings{WeekdayHours: 8, WeekendHours: 5}
	cet := time.FixedZone("CET", 60*60)

	testCases := []struct {
		name    string
		login   time.Time
		weekend DaySet
		want    time.Time
	}{
		{
			name:    "weekday",
			login:   monday,
			weekend: DefaultWeekend,
			want:    time.Date(2024, 1, 8, 17, 0, 0, 0, time.UTC),
		},
		{
			name:    "saturday",
			login:   time.Date(2024, 1, 13, 9, 0, 0, 0, time.UTC),
			weekend: DefaultWeekend,
			want:    time.Date(2024, 1, 13, 14, 0, 0, 0, time.UTC),
		},
		{
			name:    "friday in a custom weekend",
			login:   time.Date(2024, 1, 12, 9, 0, 0, 0, time.UTC),
			weekend: NewDaySet(time.Friday, time.Saturday),
			want:    time.Date(2024, 1, 12, 14, 0, 0, 0, time.UTC),
		},
		{
			name:    "sunday in a custom weekend",
			login:   time.Date(2024, 1, 14, 9, 0, 0, 0, time.UTC),
			weekend: NewDaySet(time.Friday, time.Saturday),
			want:    time.Date(2024, 1, 14, 17, 0, 0, 0, time.UTC),
		},
		{
			// 23:30 on Sunday in UTC is already Monday in CET
			name:    "classified in the login location",
			login:   time.Date(2024, 1, 8, 0, 30, 0, 0, cet),
			weekend: DefaultWeekend,
			want:    time.Date(2024, 1, 8, 8, 30, 0, 0, cet),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ProjectLogout(tc.login, s, tc.weekend)
			assert.True(t, got.Equal(tc.want), "got %s, want %s", got, tc.want)

			// the projection is a pure function of its inputs
			assert.True(t, got.Equal(ProjectLogout(tc.login, s, tc.weekend)))
		})
	}
}

func TestDaySet(t *testing.T) {
	d := NewDaySet(time.Saturday, time.Sunday)

	assert.True(t, d.Contains(time.Saturday))
	assert.False(t, d.Contains(time.Monday))
	assert.Equal(t, []time.Weekday{time.Sunday, time.Saturday}, d.Days())
	assert.Equal(t, "Sunday, Saturday", d.String())
	assert.Empty(t, NewDaySet().Days())
}

func TestIsStale(t *testing.T) {
	assert.False(t, isStale(monday, monday.Add(14*time.Hour)))
	assert.True(t, isStale(monday, monday.Add(15*time.Hour)))
}
