// Package emblem draws the bullseye mark used next to the title and as the
// window icon.
package emblem

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

var white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Bullseye returns a w x h image with alternating rings around a filled
// centre on a transparent background.
func Bullseye(w, h int, ring, center color.RGBA) image.Image {
	dc := gg.NewContext(w, h)
	dc.SetRGBA(0, 0, 0, 0)
	dc.Clear()

	cx := float64(w) / 2
	cy := float64(h) / 2
	r := float64(min(w, h))/2 - 0.5

	rings := []color.RGBA{ring, white, ring, center}
	for i, c := range rings {
		radius := r * (1 - float64(i)*0.24)
		if radius <= 0 {
			break
		}
		dc.SetColor(c)
		dc.DrawCircle(cx, cy, radius)
		dc.Fill()
	}
	return dc.Image()
}
