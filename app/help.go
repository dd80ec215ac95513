package app

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/clockout/internal/hook"
	"github.com/ayoisaiah/clockout/internal/session"
)

func helpText() string {
	description := fmt.Sprintf(
		"%s\n\t\t{{.Usage}}\n\n",
		pterm.Yellow("DESCRIPTION"),
	)

	usage := fmt.Sprintf(
		"%s\n\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}\n\n",
		pterm.Yellow("USAGE"),
	)

	version := fmt.Sprintf(
		"{{if .Version}}%s\n\t\t{{.Version}}{{end}}\n\n",
		pterm.Yellow("VERSION"),
	)

	commands := fmt.Sprintf(
		"%s\n{{range .Commands}}{{if not .HideHelp}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}\n\n",
		pterm.Yellow("COMMANDS"),
		pterm.Green("{{join .Names `, `}}"),
	)

	options := fmt.Sprintf(
		"%s\n{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
		pterm.Yellow("OPTIONS"),
		pterm.Green("-{{$element}}"),
		pterm.Green("--{{.Name}} {{.DefaultText}}"),
	)

	env := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		pterm.Yellow("ENVIRONMENTAL VARIABLES"),
		envHelp(),
	)

	hooks := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		pterm.Yellow("HOOKS"),
		hookHelp(),
	)

	examples := fmt.Sprintf(
		"%s\n%s\n",
		pterm.Yellow("EXAMPLES"),
		exampleHelp(),
	)

	return description + usage + version + commands + options + env + hooks + examples
}

// hookHelp lists the variables passed to the commands under hooks in the
// config file.
func hookHelp() string {
	vars := []string{
		fmt.Sprintf(
			"%s: one of %s, %s or %s",
			hook.EnvEvent,
			session.EventLogin,
			session.EventBreakStarted,
			session.EventBreakStopped,
		),
		hook.EnvLoginTime + ": the login time in RFC 3339",
		hook.EnvLogoutTime + ": the projected logout time in RFC 3339",
		hook.EnvTotalBreak + ": total break time as a Go duration (e.g. 1h5m0s)",
	}

	return "Commands set under hooks.login, hooks.break_start and hooks.break_stop run after the transition with:\n\n\t\t" +
		strings.Join(vars, "\n\t\t")
}

func exampleHelp() string {
	examples := [][2]string{
		{"clockout login", "start today's session now"},
		{`clockout login --at "20 minutes ago"`, "start it earlier today"},
		{"clockout break start", "go on a break"},
		{"clockout status --json", "print the session for scripts"},
		{"clockout settings --weekday-hours 7", "shorten the working day"},
	}

	var b strings.Builder

	for _, e := range examples {
		fmt.Fprintf(&b, "\t\t%s\n\t\t\t\t%s\n\n", pterm.Green(e[0]), e[1])
	}

	return b.String()
}

func envHelp() string {
	return `
CLOCKOUT_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

CLOCKOUT_ENV: keep the config, data store and log under separate names (e.g. config_dev.yml).

Variables may also be set in a .env file in the working directory.`
}
