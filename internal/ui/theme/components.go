package theme

import rl "github.com/gen2brain/raylib-go/raylib"

type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonHover
	ButtonPressed
)

// ButtonColors are the fill for each state plus the label colour.
type ButtonColors struct {
	Fill    rl.Color
	Pressed rl.Color
	Label   rl.Color
}

func DrawButton(rect rl.Rectangle, state ButtonState, text string, colors ButtonColors, fontSize int32) {
	fill := colors.Fill
	switch state {
	case ButtonHover:
		fill = mix(colors.Fill, colors.Pressed, 0.5)
	case ButtonPressed:
		fill = colors.Pressed
	}

	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, fill)

	if text == "" {
		return
	}
	labelW := MeasureText(text, fontSize)
	textX := int32(rect.X + (rect.Width-float32(labelW))/2)
	textY := int32(rect.Y + (rect.Height-float32(fontSize))/2)
	DrawBoldText(text, textX, textY, fontSize, colors.Label)
}

// DrawInput renders a single-line text field. placeholder is shown when text
// is empty; a caret follows the text while focused.
func DrawInput(rect rl.Rectangle, text, placeholder string, focused, caretOn bool, p Palette, fontSize int32) {
	stroke := p.InputBorder
	strokeWidth := BorderWidth
	if focused {
		stroke = mix(p.InputBorder, p.Submit, 0.7)
		strokeWidth = BorderWidthFocus
	}
	rl.DrawRectangleRounded(rect, CornerRadius*0.5, CornerSegments, p.InputFill)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius*0.5, CornerSegments, strokeWidth, stroke)

	x := int32(rect.X + InputPadding)
	y := int32(rect.Y + (rect.Height-float32(fontSize))/2)
	if text == "" {
		DrawText(placeholder, x, y, fontSize, p.Placeholder)
	} else {
		DrawText(text, x, y, fontSize, p.Feedback)
	}
	if focused && caretOn {
		caretX := float32(x) + float32(MeasureText(text, fontSize)) + 1
		if text == "" {
			caretX = float32(x)
		}
		rl.DrawLineEx(rl.NewVector2(caretX, float32(y)), rl.NewVector2(caretX, float32(y+fontSize)), 1.5, p.Feedback)
	}
}

// DrawBullseye draws the target badge that stands in for the title emoji.
func DrawBullseye(cx, cy, radius float32, ring, center rl.Color) {
	rings := []rl.Color{ring, rl.White, ring, center}
	for i, c := range rings {
		r := radius * (1 - float32(i)*0.24)
		if r <= 0 {
			break
		}
		rl.DrawCircleV(rl.NewVector2(cx, cy), r, c)
	}
}

func mix(a, b rl.Color, t float32) rl.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	inv := 1.0 - t
	return rl.NewColor(
		uint8(float32(a.R)*inv+float32(b.R)*t),
		uint8(float32(a.G)*inv+float32(b.G)*t),
		uint8(float32(a.B)*inv+float32(b.B)*t),
		uint8(float32(a.A)*inv+float32(b.A)*t),
	)
}
