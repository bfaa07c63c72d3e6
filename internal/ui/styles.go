package ui

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/mystery-number/internal/config"
)

// Dark-terminal fallbacks for the text colours, which the theme picks for a
// light background.
const (
	darkTitle   = "#e8e2d8"
	darkBody    = "#c9d1d9"
	darkCounter = "#a6adb1"
)

type styles struct {
	screen       lipgloss.Style
	title        lipgloss.Style
	input        lipgloss.Style
	inputFocused lipgloss.Style
	placeholder  lipgloss.Style
	feedback     lipgloss.Style
	counter      lipgloss.Style
	status       lipgloss.Style
	hint         lipgloss.Style

	submit  buttonColors
	restart buttonColors

	emblemRing   color.RGBA
	emblemCenter color.RGBA
}

type buttonColors struct {
	normal  lipgloss.Color
	pressed lipgloss.Color
	text    lipgloss.Color
}

func newStyles(theme config.Theme) styles {
	c := theme.Colors
	input := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.InputBorder)).
		Padding(0, 1).
		Width(30)

	return styles{
		screen:       lipgloss.NewStyle().Padding(1, 2).Align(lipgloss.Center),
		title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: c.Title, Dark: darkTitle}),
		input:        input,
		inputFocused: input.BorderForeground(lipgloss.Color(c.Submit)),
		placeholder:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Placeholder)),
		feedback:     lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: c.Feedback, Dark: darkBody}).Height(1),
		counter:      lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: c.Counter, Dark: darkCounter}),
		status:       lipgloss.NewStyle().Foreground(lipgloss.Color(c.RestartPressed)),
		hint:         lipgloss.NewStyle().Foreground(lipgloss.Color(c.Placeholder)).Faint(true),
		submit: buttonColors{
			normal:  lipgloss.Color(c.Submit),
			pressed: lipgloss.Color(c.SubmitPressed),
			text:    lipgloss.Color(c.ButtonText),
		},
		restart: buttonColors{
			normal:  lipgloss.Color(c.Restart),
			pressed: lipgloss.Color(c.RestartPressed),
			text:    lipgloss.Color(c.ButtonText),
		},
		emblemRing:   config.MustHex(c.Restart),
		emblemCenter: config.MustHex(c.Submit),
	}
}

// button draws a solid block; the focused button gets the pressed shade and
// an underline so focus is visible without colour too.
func (s styles) button(colors buttonColors, focused bool) lipgloss.Style {
	st := lipgloss.NewStyle().
		Bold(true).
		Foreground(colors.text).
		Background(colors.normal).
		Padding(0, 4).
		MarginTop(1)
	if focused {
		st = st.Background(colors.pressed).Underline(true)
	}
	return st
}
