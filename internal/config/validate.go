package config

import (
	"time"

	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/clockout/internal/session"
	"github.com/ayoisaiah/clockout/internal/timeutil"
	"github.com/ayoisaiah/clockout/store"
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "", store.DriverBolt, store.DriverSQLite:
	default:
		return errUnknownDriver.Fmt(c.Store.Driver)
	}

	if _, err := c.Weekend(); err != nil {
		return err
	}

	hooks := []struct {
		name string
		cmd  string
	}{
		{"login", c.Hooks.Login},
		{"break_start", c.Hooks.BreakStart},
		{"break_stop", c.Hooks.BreakStop},
	}

	for _, h := range hooks {
		if _, err := shellquote.Split(h.cmd); err != nil {
			return errInvalidHook.Fmt(h.name).Wrap(err)
		}
	}

	return nil
}

// Weekend returns the configured weekend days as a day-set.
func (c *Config) Weekend() (session.DaySet, error) {
	days := make([]time.Weekday, 0, len(c.Settings.WeekendDays))

	for _, name := range c.Settings.WeekendDays {
		d, err := timeutil.ParseWeekday(name)
		if err != nil {
			return 0, errInvalidWeekendDay.Fmt(name).Wrap(err)
		}

		days = append(days, d)
	}

	return session.NewDaySet(days...), nil
}
