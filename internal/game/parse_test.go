package game

import (
	"math"
	"testing"
)

func TestParseGuessTable(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{in: "42", want: 42, wantOK: true},
		{in: "42abc", want: 42, wantOK: true},
		{in: "  7", want: 7, wantOK: true},
		{in: "\t15\n", want: 15, wantOK: true},
		{in: "-3", want: -3, wantOK: true},
		{in: "+8", want: 8, wantOK: true},
		{in: "3.9", want: 3, wantOK: true},
		{in: "007", want: 7, wantOK: true},
		{in: "0x1A", want: 26, wantOK: true},
		{in: "0Xff", want: 255, wantOK: true},
		{in: "0", want: 0, wantOK: true},
		{in: "12 34", want: 12, wantOK: true},
		{in: "", wantOK: false},
		{in: "   ", wantOK: false},
		{in: "abc", wantOK: false},
		{in: "a42", wantOK: false},
		{in: "-", wantOK: false},
		{in: "+x", wantOK: false},
		{in: "0x", wantOK: false},
		{in: "0xg", wantOK: false},
		{in: "--5", wantOK: false},
		{in: ".5", wantOK: false},
		{in: "٣", wantOK: false},
	}
	for _, tc := range tests {
		got, ok := ParseGuess(tc.in)
		if ok != tc.wantOK {
			t.Fatalf("ParseGuess(%q) ok=%v want=%v", tc.in, ok, tc.wantOK)
		}
		if ok && got != tc.want {
			t.Fatalf("ParseGuess(%q)=%d want=%d", tc.in, got, tc.want)
		}
	}
}

func TestParseGuessSaturates(t *testing.T) {
	if got, ok := ParseGuess("99999999999999999999999"); !ok || got != math.MaxInt {
		t.Fatalf("expected saturation to MaxInt, got %d ok=%v", got, ok)
	}
	if got, ok := ParseGuess("-99999999999999999999999"); !ok || got != math.MinInt {
		t.Fatalf("expected saturation to MinInt, got %d ok=%v", got, ok)
	}
}

func TestHugeGuessIsTooHigh(t *testing.T) {
	r := Reduce(Round{Target: 100, Input: "123456789012345678901234567890"}, Submit{}, nil, Rules{})
	if r.Feedback != FeedbackTooHigh || r.Guesses != 1 {
		t.Fatalf("expected counted too-high guess, got %+v", r)
	}
}

func TestPermissiveInputIsScored(t *testing.T) {
	r := Reduce(Round{Target: 42, Input: "42abc"}, Submit{}, nil, Rules{})
	if r.Feedback != FeedbackCorrect {
		t.Fatalf("expected trailing text to be ignored, got %v", r.Feedback)
	}
}
