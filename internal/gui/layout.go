package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	uitheme "github.com/appengine-ltd/mystery-number/internal/ui/theme"
)

// layout holds where each piece of the screen goes for the current window
// size. The column is centred vertically, like a phone screen with its
// content justified to the middle.
type layout struct {
	Title    rl.Rectangle
	Input    rl.Rectangle
	Submit   rl.Rectangle
	Feedback rl.Rectangle
	Counter  rl.Rectangle
	Restart  rl.Rectangle
}

func computeLayout(width, height int32, ty uitheme.Typography) layout {
	w := float32(width)
	h := float32(height)
	content := w - 2*uitheme.Padding
	if content < 1 {
		content = 1
	}

	titleH := lineHeight(ty.Title, ty.LineFactor)
	inputH := float32(ty.Body) + 2*uitheme.InputPadding + 4
	buttonH := float32(ty.Body) + 2*uitheme.ButtonPadding
	feedbackH := 2 * lineHeight(ty.Feedback, ty.LineFactor)
	counterH := lineHeight(ty.Body, ty.LineFactor)

	const (
		titleGap    = 20
		inputGap    = 20
		submitGap   = 10
		feedbackGap = 10
		counterGap  = 10
		restartGap  = 20
	)

	total := titleH + titleGap +
		inputH + inputGap +
		buttonH + submitGap +
		feedbackGap + feedbackH + feedbackGap +
		counterGap + counterH +
		restartGap + buttonH

	y := (h - total) / 2
	if y < uitheme.Padding {
		y = uitheme.Padding
	}
	cx := w / 2

	var l layout
	l.Title = centredRect(cx, y, content, titleH)
	y += titleH + titleGap
	l.Input = centredRect(cx, y, content*0.8, inputH)
	y += inputH + inputGap
	l.Submit = centredRect(cx, y, content*0.6, buttonH)
	y += buttonH + submitGap + feedbackGap
	l.Feedback = centredRect(cx, y, content, feedbackH)
	y += feedbackH + feedbackGap + counterGap
	l.Counter = centredRect(cx, y, content, counterH)
	y += counterH + restartGap
	l.Restart = centredRect(cx, y, content*0.6, buttonH)
	return l
}

func centredRect(cx, y, width, height float32) rl.Rectangle {
	return rl.NewRectangle(cx-width/2, y, width, height)
}

func lineHeight(size int32, factor float32) float32 {
	if size < 1 {
		size = 1
	}
	if factor <= 0 {
		factor = 1
	}
	return float32(size) * factor
}

func pointInRect(p rl.Vector2, r rl.Rectangle) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}
