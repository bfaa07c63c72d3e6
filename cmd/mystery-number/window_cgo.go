//go:build cgo
// +build cgo

package main

import (
	"github.com/rs/zerolog"

	"github.com/appengine-ltd/mystery-number/internal/config"
	"github.com/appengine-ltd/mystery-number/internal/gui"
)

const windowAvailable = true

func runWindow(o options, theme config.Theme, logger zerolog.Logger) error {
	return gui.NewApp(gui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		Theme:     theme,
		GameOpts:  gameOptions(o),
		Logger:    logger,
	}).Run()
}
