package gui

import (
	"math"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	uitheme "github.com/appengine-ltd/mystery-number/internal/ui/theme"
)

// fontAtlasSize is the size glyphs are rasterised at; smaller sizes are
// scaled down from it.
const fontAtlasSize = 48

type typographyState struct {
	base     rl.Font
	bold     rl.Font
	ownsBase bool
	ownsBold bool
}

var uiType typographyState

func initTypography() {
	uiType.base = rl.GetFontDefault()
	uiType.bold = uiType.base

	fontCandidates := []string{
		filepath.Join("assets", "fonts", "Inter-Regular.ttf"),
		filepath.Join("assets", "fonts", "NotoSans-Regular.ttf"),
	}
	if f, ok := loadFontFromCandidates(fontCandidates, fontAtlasSize); ok {
		uiType.base = f
		uiType.ownsBase = true
	} else if f, ok := loadFontFromMemory(goregular.TTF, fontAtlasSize); ok {
		uiType.base = f
		uiType.ownsBase = true
	}
	if f, ok := loadFontFromMemory(gobold.TTF, fontAtlasSize); ok {
		uiType.bold = f
		uiType.ownsBold = true
	} else {
		uiType.bold = uiType.base
	}

	rl.SetTextureFilter(uiType.base.Texture, rl.FilterBilinear)
	rl.SetTextureFilter(uiType.bold.Texture, rl.FilterBilinear)
	uitheme.SetTextRenderer(drawText, drawBoldText, measureText)
}

func shutdownTypography() {
	if uiType.ownsBold && uiType.bold.Texture.ID != 0 {
		rl.UnloadFont(uiType.bold)
	}
	if uiType.ownsBase && uiType.base.Texture.ID != 0 && uiType.base.Texture.ID != uiType.bold.Texture.ID {
		rl.UnloadFont(uiType.base)
	}
	uiType = typographyState{}
}

func loadFontFromCandidates(candidates []string, fontSize int32) (rl.Font, bool) {
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		font := rl.LoadFontEx(path, fontSize, nil, 0)
		if font.Texture.ID == 0 {
			continue
		}
		return font, true
	}
	return rl.Font{}, false
}

func loadFontFromMemory(ttf []byte, fontSize int32) (rl.Font, bool) {
	font := rl.LoadFontFromMemory(".ttf", ttf, fontSize, nil)
	if font.Texture.ID == 0 {
		return rl.Font{}, false
	}
	return font, true
}

func drawText(text string, x, y, fontSize int32, clr rl.Color) {
	drawWithFont(uiType.base, text, x, y, fontSize, clr)
}

func drawBoldText(text string, x, y, fontSize int32, clr rl.Color) {
	drawWithFont(uiType.bold, text, x, y, fontSize, clr)
}

func drawWithFont(font rl.Font, text string, x, y, fontSize int32, clr rl.Color) {
	if font.Texture.ID == 0 {
		rl.DrawText(text, x, y, fontSize, clr)
		return
	}
	rl.DrawTextEx(font, text, rl.Vector2{X: float32(x), Y: float32(y)}, float32(fontSize), 1, clr)
}

func measureText(text string, fontSize int32) int32 {
	if uiType.base.Texture.ID == 0 {
		return int32(rl.MeasureText(text, fontSize))
	}
	return int32(math.Round(float64(rl.MeasureTextEx(uiType.base, text, float32(fontSize), 1).X)))
}
