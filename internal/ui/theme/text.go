package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// TextDrawFunc renders text with caller-provided font handling.
type TextDrawFunc func(text string, x, y, fontSize int32, clr rl.Color)

// TextMeasureFunc reports text width in pixels for the active font.
type TextMeasureFunc func(text string, fontSize int32) int32

var (
	textDrawFn TextDrawFunc = func(text string, x, y, fontSize int32, clr rl.Color) {
		rl.DrawText(text, x, y, fontSize, clr)
	}
	boldDrawFn    = textDrawFn
	textMeasureFn TextMeasureFunc = func(text string, fontSize int32) int32 {
		return int32(rl.MeasureText(text, fontSize))
	}
)

// SetTextRenderer wires theme helpers to the GUI text system. Nil arguments
// keep the current function.
func SetTextRenderer(draw, bold TextDrawFunc, measure TextMeasureFunc) {
	if draw != nil {
		textDrawFn = draw
	}
	if bold != nil {
		boldDrawFn = bold
	}
	if measure != nil {
		textMeasureFn = measure
	}
}

func DrawText(text string, x, y, fontSize int32, clr rl.Color) {
	textDrawFn(text, x, y, fontSize, clr)
}

func DrawBoldText(text string, x, y, fontSize int32, clr rl.Color) {
	boldDrawFn(text, x, y, fontSize, clr)
}

func MeasureText(text string, fontSize int32) int32 {
	return textMeasureFn(text, fontSize)
}

// DrawTextCentered centres text horizontally on cx.
func DrawTextCentered(text string, cx float32, y, fontSize int32, clr rl.Color, bold bool) {
	w := MeasureText(text, fontSize)
	x := int32(cx - float32(w)/2)
	if bold {
		DrawBoldText(text, x, y, fontSize, clr)
		return
	}
	DrawText(text, x, y, fontSize, clr)
}
