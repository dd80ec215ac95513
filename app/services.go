package app

import (
	"errors"
	"io"
	"log/slog"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/clockout/internal/config"
	"github.com/ayoisaiah/clockout/internal/hook"
	"github.com/ayoisaiah/clockout/internal/logging"
	"github.com/ayoisaiah/clockout/internal/pathutil"
	"github.com/ayoisaiah/clockout/internal/session"
	"github.com/ayoisaiah/clockout/internal/settings"
	"github.com/ayoisaiah/clockout/internal/timeutil"
	"github.com/ayoisaiah/clockout/internal/ui"
	"github.com/ayoisaiah/clockout/store"
)

// services holds what a command needs, opened from the configuration.
type services struct {
	cfg      *config.Config
	kv       store.KV
	settings *settings.StoreProvider
	engine   *session.Engine
	clock    timeutil.Clock
	hooks    *hook.Runner
	log      io.Closer
}

// loadConfig reads the config file and applies the command-line flags.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	return config.New(
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
}

// open loads the configuration, the data store and the session engine.
// Engine events run the configured hooks.
func open(ctx *cli.Context) (*services, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	s := &services{
		cfg:   cfg,
		clock: timeutil.SystemClock{},
		log:   logging.Setup(pathutil.LogFilePath(), cfg.CLI.Debug),
	}

	if !cfg.CLI.At.IsZero() {
		s.clock = timeutil.Fixed(cfg.CLI.At)
	}

	path := cfg.Store.Path
	if path == "" {
		path = pathutil.DBFilePath(cfg.Store.Driver)
	}

	s.kv, err = store.Open(cfg.Store.Driver, path)
	if err != nil {
		_ = s.log.Close()
		return nil, err
	}

	s.settings = &settings.StoreProvider{KV: s.kv}

	weekend, err := cfg.Weekend()
	if err != nil {
		_ = s.Close()
		return nil, err
	}

	s.engine, err = session.New(
		s.kv,
		s.settings,
		session.WithClock(s.clock),
		session.WithWeekend(weekend),
	)
	if err != nil {
		_ = s.Close()
		return nil, err
	}

	for _, w := range s.engine.Warnings() {
		pterm.Warning.WithWriter(config.Stderr).Println(w)
	}

	s.hooks = hook.New(cfg.Hooks)
	s.engine.Subscribe(s.hooks.Listener(ctx.Context))

	if st, err := s.settings.Settings(); err == nil {
		ui.SetDarkTheme(st.DarkTheme)
	}

	slog.Debug(
		"services opened",
		slog.String("driver", cfg.Store.Driver),
		slog.String("path", path),
	)

	return s, nil
}

// Close waits for running hooks, then releases the engine, the store and
// the log file.
func (s *services) Close() error {
	var errs []error

	if s.hooks != nil {
		s.hooks.Wait()
	}

	if s.engine != nil {
		errs = append(errs, s.engine.Close())
	}

	if s.kv != nil {
		errs = append(errs, s.kv.Close())
	}

	errs = append(errs, s.log.Close())

	return errors.Join(errs...)
}
