package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// frameInput is everything the player did during one frame. pollInput reads
// it from raylib; the screen only ever sees this struct.
type frameInput struct {
	Chars     []rune
	Backspace bool
	Enter     bool
	Restart   bool
	Quit      bool

	Pointer     rl.Vector2
	PointerDown bool
	PointerUp   bool
}

func pollInput() frameInput {
	in := frameInput{
		Backspace:   rl.IsKeyPressed(rl.KeyBackspace),
		Enter:       rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter),
		Restart:     ctrlDown() && rl.IsKeyPressed(rl.KeyR),
		Quit:        rl.IsKeyPressed(rl.KeyEscape),
		Pointer:     rl.GetMousePosition(),
		PointerDown: rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		PointerUp:   rl.IsMouseButtonReleased(rl.MouseButtonLeft),
	}
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		in.Chars = append(in.Chars, rune(ch))
	}
	// Ctrl+R also arrives as a typed 'r' on some platforms.
	if in.Restart {
		in.Chars = nil
	}
	return in
}

// appendTyped adds printable ASCII from chars to text, up to maxLen bytes.
func appendTyped(text string, chars []rune, maxLen int) string {
	for _, ch := range chars {
		if ch >= 32 && ch <= 126 && len(text) < maxLen {
			text += string(ch)
		}
	}
	return text
}

func dropLast(text string) string {
	if len(text) == 0 {
		return text
	}
	return text[:len(text)-1]
}

func ctrlDown() bool {
	return rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)
}
