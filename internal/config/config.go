// Package config loads the optional theme file. Everything in it is styling;
// none of it changes how the game plays.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidColor = errors.New("invalid color")
	ErrInvalidSize  = errors.New("invalid size")
)

// Theme represents the theme YAML file.
type Theme struct {
	Window Window `yaml:"window"`
	Colors Colors `yaml:"colors"`
	Fonts  Fonts  `yaml:"fonts"`
}

type Window struct {
	Width  int32 `yaml:"width,omitempty"`
	Height int32 `yaml:"height,omitempty"`
}

// Colors holds hex strings ("#rrggbb", "#rgb" or "#rrggbbaa").
type Colors struct {
	Background     string `yaml:"background,omitempty"`
	Title          string `yaml:"title,omitempty"`
	InputBorder    string `yaml:"input_border,omitempty"`
	InputFill      string `yaml:"input_fill,omitempty"`
	Submit         string `yaml:"submit,omitempty"`
	SubmitPressed  string `yaml:"submit_pressed,omitempty"`
	Restart        string `yaml:"restart,omitempty"`
	RestartPressed string `yaml:"restart_pressed,omitempty"`
	ButtonText     string `yaml:"button_text,omitempty"`
	Feedback       string `yaml:"feedback,omitempty"`
	Counter        string `yaml:"counter,omitempty"`
	Placeholder    string `yaml:"placeholder,omitempty"`
}

type Fonts struct {
	Title    int32 `yaml:"title,omitempty"`
	Body     int32 `yaml:"body,omitempty"`
	Feedback int32 `yaml:"feedback,omitempty"`
}

// DefaultTheme returns the stock look: light blue screen, green submit
// button, orange restart button.
func DefaultTheme() Theme {
	return Theme{
		Window: Window{Width: 420, Height: 760},
		Colors: Colors{
			Background:     "#f0f8ff",
			Title:          "#333333",
			InputBorder:    "#cccccc",
			InputFill:      "#ffffff",
			Submit:         "#4caf50",
			SubmitPressed:  "#45a049",
			Restart:        "#ff5722",
			RestartPressed: "#e64a19",
			ButtonText:     "#ffffff",
			Feedback:       "#000000",
			Counter:        "#555555",
			Placeholder:    "#999999",
		},
		Fonts: Fonts{Title: 24, Body: 16, Feedback: 18},
	}
}

// LoadTheme reads path over the defaults. An empty path returns the defaults.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()
	if strings.TrimSpace(path) == "" {
		return theme, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return Theme{}, fmt.Errorf("parse theme %s: %w", path, err)
	}
	if err := theme.Validate(); err != nil {
		return Theme{}, fmt.Errorf("theme %s: %w", path, err)
	}
	return theme, nil
}

// Validate checks every color parses and every size is positive.
func (t Theme) Validate() error {
	for _, f := range t.colorFields() {
		if _, err := ParseHex(f.value); err != nil {
			return fmt.Errorf("colors.%s: %w", f.name, err)
		}
	}
	sizes := []struct {
		name  string
		value int32
	}{
		{"window.width", t.Window.Width},
		{"window.height", t.Window.Height},
		{"fonts.title", t.Fonts.Title},
		{"fonts.body", t.Fonts.Body},
		{"fonts.feedback", t.Fonts.Feedback},
	}
	for _, s := range sizes {
		if s.value <= 0 {
			return fmt.Errorf("%s: %w: %d", s.name, ErrInvalidSize, s.value)
		}
	}
	return nil
}

type colorField struct {
	name  string
	value string
}

func (t Theme) colorFields() []colorField {
	c := t.Colors
	return []colorField{
		{"background", c.Background},
		{"title", c.Title},
		{"input_border", c.InputBorder},
		{"input_fill", c.InputFill},
		{"submit", c.Submit},
		{"submit_pressed", c.SubmitPressed},
		{"restart", c.Restart},
		{"restart_pressed", c.RestartPressed},
		{"button_text", c.ButtonText},
		{"feedback", c.Feedback},
		{"counter", c.Counter},
		{"placeholder", c.Placeholder},
	}
}

// ParseHex turns "#rgb", "#rrggbb" or "#rrggbbaa" into a color.
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// MustHex is ParseHex for values already checked by Validate.
func MustHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
