package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestWithCLIConfig(t *testing.T) {
	f := flag.NewFlagSet("clockout", flag.ContinueOnError)
	_ = f.String("db-driver", "", "")
	_ = f.String("db-path", "", "")
	_ = f.Bool("debug", false, "")

	require.NoError(t, f.Parse([]string{"-db-driver", "SQLite", "-db-path", "/tmp/x.sqlite", "-debug"}))

	ctx := cli.NewContext(&cli.App{}, f, nil)

	c := &Config{Store: StoreConfig{Driver: "bolt"}}

	require.NoError(t, WithCLIConfig(ctx)(c))

	assert.Equal(t, "sqlite", c.Store.Driver)
	assert.Equal(t, "/tmp/x.sqlite", c.Store.Path)
	assert.True(t, c.CLI.Debug)
	assert.False(t, c.CLI.NoColor)
	assert.True(t, c.CLI.At.IsZero())
}

func TestApplyCLIAt(t *testing.T) {
	now := time.Date(2024, 1, 8, 9, 30, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		at      string
		want    time.Time
		wantErr error
	}{
		{
			name: "relative",
			at:   "20 minutes ago",
			want: time.Date(2024, 1, 8, 9, 10, 0, 0, time.UTC),
		},
		{
			name:    "future",
			at:      "2024-01-09 10:00",
			wantErr: errFutureAt,
		},
		{
			name:    "blank",
			at:      "   ",
			wantErr: errInvalidAt,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := &Config{}

			err := applyCLIOptions(c, CLIOptions{At: tc.at}, now)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, c.CLI.At.Equal(tc.want), "got %s", c.CLI.At)
		})
	}
}

func TestApplyCLIKeepsFileValues(t *testing.T) {
	c := &Config{Store: StoreConfig{Driver: "sqlite", Path: "/data/clockout.sqlite"}}

	require.NoError(t, applyCLIOptions(c, CLIOptions{NoColor: true}, time.Now()))

	assert.Equal(t, "sqlite", c.Store.Driver)
	assert.Equal(t, "/data/clockout.sqlite", c.Store.Path)
	assert.True(t, c.CLI.NoColor)
}
