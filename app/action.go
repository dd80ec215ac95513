package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/clockout/internal/config"
	"github.com/ayoisaiah/clockout/internal/osutil"
	"github.com/ayoisaiah/clockout/internal/pathutil"
	"github.com/ayoisaiah/clockout/internal/session"
	"github.com/ayoisaiah/clockout/internal/settings"
	"github.com/ayoisaiah/clockout/internal/timeutil"
	"github.com/ayoisaiah/clockout/internal/ui"
	"github.com/ayoisaiah/clockout/timer"
)

const (
	envNoColor         = "NO_COLOR"
	envClockoutNoColor = "CLOCKOUT_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// withServices opens the services for the duration of fn.
func withServices(ctx *cli.Context, fn func(s *services) error) error {
	s, err := open(ctx)
	if err != nil {
		return err
	}

	err = fn(s)

	if cerr := s.Close(); cerr != nil && err == nil {
		err = cerr
	}

	return err
}

func success(format string, a ...any) {
	pterm.Success.WithWriter(config.Stdout).Printfln(format, a...)
}

// loginAction handles the login command which starts today's session.
func loginAction(ctx *cli.Context) error {
	return withServices(ctx, func(s *services) error {
		now := s.clock.Now()

		if at := s.cfg.CLI.At; !at.IsZero() && !timeutil.SameDay(at, timeutil.SystemClock{}.Now()) {
			return errAtNotToday.Fmt(at.Format(time24h))
		}

		before, err := s.engine.Snapshot()
		if err != nil {
			return err
		}

		err = s.engine.Login()
		if err != nil {
			return err
		}

		rm, err := s.engine.Snapshot()
		if err != nil {
			return err
		}

		clock := timeutil.ClockFormat(s.cfg.Settings.TwentyFourHour)

		if before.State != session.LoggedOut {
			pterm.Info.WithWriter(config.Stdout).Printfln(
				"The session from %s has been moved to the history",
				before.LoginTime.Format("Mon, Jan 02"),
			)
		}

		success(
			"Logged in at %s. You can clock out at %s",
			now.Format(clock),
			ui.Green(rm.LogoutTime.Format(clock)),
		)

		return nil
	})
}

// breakStartAction handles the break start command.
func breakStartAction(ctx *cli.Context) error {
	return withServices(ctx, func(s *services) error {
		err := s.engine.StartBreak()
		if err != nil {
			return err
		}

		clock := timeutil.ClockFormat(s.cfg.Settings.TwentyFourHour)

		success("Break started at %s", s.clock.Now().Format(clock))

		return nil
	})
}

// breakStopAction handles the break stop command.
func breakStopAction(ctx *cli.Context) error {
	return withServices(ctx, func(s *services) error {
		rec, err := s.engine.StopBreak()
		if err != nil {
			return err
		}

		rm, err := s.engine.Snapshot()
		if err != nil {
			return err
		}

		success(
			"Break of %s recorded. You have taken %s of breaks today",
			ui.Highlight(rec.Duration),
			ui.FormatDuration(rm.TotalBreak),
		)

		return nil
	})
}

// statusAction handles the status command which prints the read model.
func statusAction(ctx *cli.Context) error {
	return withServices(ctx, func(s *services) error {
		rm, err := s.engine.Snapshot()
		if err != nil {
			return err
		}

		if ctx.Bool("json") {
			return ui.WriteJSON(config.Stdout, ui.NewStatusView(rm))
		}

		return ui.PrintStatus(config.Stdout, rm, s.clock.Now(), s.cfg.Settings.TwentyFourHour)
	})
}

// breaksAction handles the breaks command which prints the ledger.
func breaksAction(ctx *cli.Context) error {
	return withServices(ctx, func(s *services) error {
		ledger := s.engine.Ledger()

		if ctx.Bool("json") {
			return ui.WriteJSON(config.Stdout, ui.NewBreakViews(ledger))
		}

		return ui.PrintLedger(config.Stdout, ledger, s.cfg.Settings.TwentyFourHour)
	})
}

// historyAction handles the history command which prints archived sessions.
func historyAction(ctx *cli.Context) error {
	return withServices(ctx, func(s *services) error {
		history, err := s.engine.History()
		if err != nil {
			return err
		}

		if ctx.Bool("json") {
			if history == nil {
				history = []session.ArchivedSession{}
			}

			return ui.WriteJSON(config.Stdout, history)
		}

		return ui.PrintHistory(config.Stdout, history, s.cfg.Settings.TwentyFourHour)
	})
}

// watchAction handles the watch command which opens the live dashboard.
func watchAction(ctx *cli.Context) error {
	return withServices(ctx, func(s *services) error {
		st, err := s.settings.Settings()
		if err != nil {
			return err
		}

		t, err := timer.New(ctx.Context, s.engine, timer.Options{
			Clock:          s.clock,
			TwentyFourHour: s.cfg.Settings.TwentyFourHour,
			DarkTheme:      st.DarkTheme,
			Notifications:  s.cfg.Notifications.Enabled,
		})
		if err != nil {
			return err
		}

		return t.Run()
	})
}

// settingsAction handles the settings command. Without flags it prints the
// current settings.
func settingsAction(ctx *cli.Context) error {
	return withServices(ctx, func(s *services) error {
		current, err := s.settings.Settings()
		if err != nil {
			return err
		}

		next, err := applySettingsFlags(ctx, current)
		if err != nil {
			return err
		}

		if ctx.Bool("interactive") {
			next, err = config.PromptSettings(next)
			if err != nil {
				return err
			}
		}

		if next == current && !ctx.Bool("interactive") {
			return printSettings(current)
		}

		err = settings.Save(s.kv, next)
		if err != nil {
			return err
		}

		ui.SetDarkTheme(next.DarkTheme)

		success("Settings saved")

		return printSettings(next)
	})
}

func applySettingsFlags(ctx *cli.Context, s settings.Settings) (settings.Settings, error) {
	if ctx.IsSet("weekday-hours") {
		s.WeekdayHours = ctx.Int("weekday-hours")
	}

	if ctx.IsSet("weekend-hours") {
		s.WeekendHours = ctx.Int("weekend-hours")
	}

	if ctx.IsSet("theme") {
		dark, err := settings.ParseTheme(ctx.String("theme"))
		if err != nil {
			return s, err
		}

		s.DarkTheme = dark
	}

	return s, s.Validate()
}

func printSettings(s settings.Settings) error {
	data := [][]string{
		{"SETTING", "VALUE"},
		{"Weekday hours", fmt.Sprint(s.WeekdayHours)},
		{"Weekend hours", fmt.Sprint(s.WeekendHours)},
		{"Theme", s.ThemeName()},
	}

	return ui.PrintTable(data, config.Stdout)
}

// editConfigAction handles the edit-config command which opens the clockout
// config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	// validates and creates the file if missing
	if _, err := loadConfig(ctx); err != nil {
		return err
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		osutil.DefaultEditor(),
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if CLOCKOUT_NO_COLOR is set
	if _, exists := os.LookupEnv(envClockoutNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") || !isTerminal(os.Stdout) {
		disableStyling()
	}

	return nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func afterAction(ctx *cli.Context) error {
	slog.DebugContext(ctx.Context, "exiting clockout")

	return nil
}
