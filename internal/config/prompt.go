package config

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/ayoisaiah/clockout/internal/settings"
)

const asciiLogo = `
 ██████╗██╗      ██████╗  ██████╗██╗  ██╗ ██████╗ ██╗   ██╗████████╗
██╔════╝██║     ██╔═══██╗██╔════╝██║ ██╔╝██╔═══██╗██║   ██║╚══██╔══╝
██║     ██║     ██║   ██║██║     █████╔╝ ██║   ██║██║   ██║   ██║
██║     ██║     ██║   ██║██║     ██╔═██╗ ██║   ██║██║   ██║   ██║
╚██████╗███████╗╚██████╔╝╚██████╗██║  ██╗╚██████╔╝╚██████╔╝   ██║
 ╚═════╝╚══════╝ ╚═════╝  ╚═════╝╚═╝  ╚═╝ ╚═════╝  ╚═════╝    ╚═╝`

// PromptSettings asks the user for their working hours and theme, starting
// from the current values.
func PromptSettings(current settings.Settings) (settings.Settings, error) {
	s := current

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Select your preferred value, or press ENTER to keep the current one.
Hours apply to sessions that begin after the change and to the current one.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Working hours on weekdays").
				Options(hourOptions(current.WeekdayHours)...).
				Value(&s.WeekdayHours),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Working hours on weekends").
				Options(hourOptions(current.WeekendHours)...).
				Value(&s.WeekendHours),
		),
		huh.NewGroup(
			huh.NewSelect[bool]().
				Title("Theme").
				Options(
					huh.NewOption("Dark", true).Selected(current.DarkTheme),
					huh.NewOption("Light", false).Selected(!current.DarkTheme),
				).
				Value(&s.DarkTheme),
		),
	)

	err := form.Run()
	if err != nil {
		return current, fmt.Errorf("form interaction failed: %w", err)
	}

	return s, nil
}

func hourOptions(selected int) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, 24)

	for h := 1; h <= 24; h++ {
		label := strconv.Itoa(h) + " hours"
		if h == 1 {
			label = "1 hour"
		}

		opts = append(opts, huh.NewOption(label, h).Selected(h == selected))
	}

	return opts
}
