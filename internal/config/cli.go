package config

import (
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/clockout/internal/timeutil"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	DBDriver string
	DBPath   string
	At       string
	Debug    bool
	NoColor  bool
}

// WithCLIConfig returns an Option that applies command-line flags on top of
// the file configuration.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			DBDriver: ctx.String("db-driver"),
			DBPath:   ctx.String("db-path"),
			At:       ctx.String("at"),
			Debug:    ctx.Bool("debug"),
			NoColor:  ctx.Bool("no-color"),
		}

		return applyCLIOptions(c, opts, time.Now())
	}
}

func applyCLIOptions(c *Config, opts CLIOptions, now time.Time) error {
	if opts.DBDriver != "" {
		c.Store.Driver = strings.ToLower(opts.DBDriver)
	}

	if opts.DBPath != "" {
		c.Store.Path = opts.DBPath
	}

	c.CLI.Debug = opts.Debug
	c.CLI.NoColor = opts.NoColor

	if opts.At == "" {
		return nil
	}

	at, err := timeutil.FromStr(opts.At, now)
	if err != nil {
		return errInvalidAt.Fmt(opts.At).Wrap(err)
	}

	if at.After(now) {
		return errFutureAt.Fmt(at.Format(time.DateTime))
	}

	c.CLI.At = at

	return nil
}
