package app

import "github.com/urfave/cli/v2"

var (
	dbDriverFlag = &cli.StringFlag{
		Name:  "db-driver",
		Usage: "Data store backend: bolt or sqlite. Overrides store.driver in the config file",
	}

	dbPathFlag = &cli.StringFlag{
		Name:  "db-path",
		Usage: "Path to the data store file. Overrides store.path in the config file",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug messages to the log file",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	atFlag = &cli.StringFlag{
		Name:  "at",
		Usage: "Log in at an earlier time today (e.g. '20 mins ago' or '8:45am')",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	weekdayHoursFlag = &cli.IntFlag{
		Name:  "weekday-hours",
		Usage: "Working hours for sessions that start on a weekday (1-24)",
	}

	weekendHoursFlag = &cli.IntFlag{
		Name:  "weekend-hours",
		Usage: "Working hours for sessions that start on a weekend day (1-24)",
	}

	themeFlag = &cli.StringFlag{
		Name:  "theme",
		Usage: "Colour theme: dark or light",
	}

	interactiveFlag = &cli.BoolFlag{
		Name:    "interactive",
		Aliases: []string{"i"},
		Usage:   "Choose the settings from a form",
	}
)
