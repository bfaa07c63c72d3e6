package game

import "strings"

// Feedback is the hint shown after a submitted guess.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackInvalid
	FeedbackTooLow
	FeedbackTooHigh
	FeedbackCorrect
)

var feedbackText = map[Feedback]string{
	FeedbackNone:    "",
	FeedbackInvalid: "⚠️ Please enter a valid number!",
	FeedbackTooLow:  "⬇️ Too low! Try again.",
	FeedbackTooHigh: "⬆️ Too high! Try again.",
	FeedbackCorrect: "🎉 Congratulations! You guessed the number!",
}

// String returns the message as shown to the player, emoji included.
func (f Feedback) String() string {
	return feedbackText[f]
}

// Plain returns the message without its leading emoji, for renderers whose
// font has no emoji glyphs.
func (f Feedback) Plain() string {
	msg := feedbackText[f]
	if i := strings.IndexByte(msg, ' '); i >= 0 {
		return msg[i+1:]
	}
	return msg
}

// Directional reports whether the feedback points the player up or down.
func (f Feedback) Directional() bool {
	return f == FeedbackTooLow || f == FeedbackTooHigh
}
