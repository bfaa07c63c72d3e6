//go:build ignore

// gen_icon.go – run with:
//
//	go run scripts/gen_icon.go
//
// Writes assets/icon.png, the bullseye used as the window icon, for
// packaging. Colours come from the default theme.
package main

import (
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/appengine-ltd/mystery-number/internal/config"
	"github.com/appengine-ltd/mystery-number/internal/emblem"
)

func main() {
	if err := os.MkdirAll("assets", 0o755); err != nil {
		log.Fatal(err)
	}

	theme := config.DefaultTheme()
	for _, size := range []int{256, 64} {
		img := emblem.Bullseye(size, size, config.MustHex(theme.Colors.Restart), config.MustHex(theme.Colors.Submit))
		name := "icon.png"
		if size != 256 {
			name = "icon_64.png"
		}
		path := filepath.Join("assets", name)
		f, err := os.Create(path)
		if err != nil {
			log.Fatal(err)
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			log.Fatal(err)
		}
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", path)
	}
}
