package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/mystery-number/internal/config"
	"github.com/appengine-ltd/mystery-number/internal/emblem"
)

const iconSize = 64

func setWindowIcon(theme config.Theme) {
	img := emblem.Bullseye(iconSize, iconSize, config.MustHex(theme.Colors.Restart), config.MustHex(theme.Colors.Submit))
	icon := rl.NewImageFromImage(img)
	rl.SetWindowIcon(*icon)
	rl.UnloadImage(icon)
}
