package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/appengine-ltd/mystery-number/internal/emblem"
)

// renderEmblemANSI rasterises the bullseye shown next to the title into
// half-block cells, two pixel rows per text row.
func renderEmblemANSI(widthChars, heightRows int, ring, center color.RGBA) string {
	if widthChars < 4 || heightRows < 2 {
		return ""
	}

	img := emblem.Bullseye(widthChars, heightRows*2, ring, center)
	return rgbaImageToANSIHalfBlocks(img)
}

func rgbaImageToANSIHalfBlocks(img image.Image) string {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return ""
	}

	var out strings.Builder
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			tr, tg, tb, ta := rgba8(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			br, bg, bb, ba := uint8(0), uint8(0), uint8(0), uint8(0)
			if y+1 < height {
				br, bg, bb, ba = rgba8(img.At(bounds.Min.X+x, bounds.Min.Y+y+1))
			}

			switch {
			case ta < 8 && ba < 8:
				out.WriteByte(' ')
			case ba < 8:
				out.WriteString(fmt.Sprintf("\x1b[38;2;%d;%d;%dm▀\x1b[0m", tr, tg, tb))
			case ta < 8:
				out.WriteString(fmt.Sprintf("\x1b[38;2;%d;%d;%dm▄\x1b[0m", br, bg, bb))
			default:
				out.WriteString(fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀", tr, tg, tb, br, bg, bb))
			}
		}
		out.WriteString("\x1b[0m")
		if y+2 < height {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func rgba8(c color.Color) (r, g, b, a uint8) {
	r16, g16, b16, a16 := c.RGBA()
	return uint8(r16 >> 8), uint8(g16 >> 8), uint8(b16 >> 8), uint8(a16 >> 8)
}
