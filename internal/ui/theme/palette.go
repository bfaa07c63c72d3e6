package theme

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/mystery-number/internal/config"
)

// Palette is the theme file's colours resolved for raylib.
type Palette struct {
	Background     rl.Color
	Title          rl.Color
	InputBorder    rl.Color
	InputFill      rl.Color
	Submit         rl.Color
	SubmitPressed  rl.Color
	Restart        rl.Color
	RestartPressed rl.Color
	ButtonText     rl.Color
	Feedback       rl.Color
	Counter        rl.Color
	Placeholder    rl.Color
}

// PaletteFrom converts a validated theme.
func PaletteFrom(t config.Theme) Palette {
	c := t.Colors
	return Palette{
		Background:     hexColor(c.Background),
		Title:          hexColor(c.Title),
		InputBorder:    hexColor(c.InputBorder),
		InputFill:      hexColor(c.InputFill),
		Submit:         hexColor(c.Submit),
		SubmitPressed:  hexColor(c.SubmitPressed),
		Restart:        hexColor(c.Restart),
		RestartPressed: hexColor(c.RestartPressed),
		ButtonText:     hexColor(c.ButtonText),
		Feedback:       hexColor(c.Feedback),
		Counter:        hexColor(c.Counter),
		Placeholder:    hexColor(c.Placeholder),
	}
}

func hexColor(s string) rl.Color {
	c := config.MustHex(s)
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
