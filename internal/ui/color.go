// Package ui renders session state for the terminal
package ui

import (
	"github.com/pterm/pterm"
)

var darkTheme = true

// SetDarkTheme switches between the palettes for dark and light terminal
// backgrounds.
func SetDarkTheme(dark bool) {
	darkTheme = dark
}

func Green(a any) string {
	if darkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if darkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Yellow(a any) string {
	if darkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Red(a any) string {
	if darkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Highlight(a any) string {
	if darkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}
