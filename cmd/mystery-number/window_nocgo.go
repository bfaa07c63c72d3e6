//go:build !cgo
// +build !cgo

package main

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/appengine-ltd/mystery-number/internal/config"
)

// The raylib window needs cgo.
const windowAvailable = false

func runWindow(options, config.Theme, zerolog.Logger) error {
	return errors.New("window front end requires a cgo build")
}
