// Package app defines the clockout command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/clockout/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the clockout app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "clockout",
		Usage: `
		clockout tracks your working day from the command-line. Log in once a
		day to see when you can clock out, and record your breaks as you take
		them.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "login",
				Usage:  "Start today's session",
				Flags:  []cli.Flag{atFlag},
				Action: loginAction,
			},
			{
				Name:  "break",
				Usage: "Start or stop a break",
				Subcommands: []*cli.Command{
					{
						Name:   "start",
						Usage:  "Start a break now",
						Action: breakStartAction,
					},
					{
						Name:   "stop",
						Usage:  "Stop the current break and record it",
						Action: breakStopAction,
					},
				},
			},
			{
				Name:   "status",
				Usage:  "Print the current session and the projected logout time",
				Flags:  []cli.Flag{jsonFlag},
				Action: statusAction,
			},
			{
				Name:   "breaks",
				Usage:  "List the breaks taken in the current session",
				Flags:  []cli.Flag{jsonFlag},
				Action: breaksAction,
			},
			{
				Name:   "history",
				Usage:  "List the sessions of previous days",
				Flags:  []cli.Flag{jsonFlag},
				Action: historyAction,
			},
			{
				Name:   "watch",
				Usage:  "Open the live dashboard",
				Action: watchAction,
			},
			{
				Name:  "settings",
				Usage: "Print or change the working hours and theme",
				Flags: []cli.Flag{
					weekdayHoursFlag,
					weekendHoursFlag,
					themeFlag,
					interactiveFlag,
				},
				Action: settingsAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			dbDriverFlag,
			dbPathFlag,
			debugFlag,
			noColorFlag,
		},
		Before: beforeAction,
		After:  afterAction,
	}
}
