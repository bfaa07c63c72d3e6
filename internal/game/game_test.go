package game

import (
	"strconv"
	"testing"
)

func submitText(g *Game, text string) Round {
	g.SetInput(text)
	g.Submit()
	return g.Round()
}

func TestNewGameStartsEmptyRound(t *testing.T) {
	g := NewGame(WithSeed(3))
	r := g.Round()
	if r.Target < MinTarget || r.Target > MaxTarget {
		t.Fatalf("target %d outside [%d,%d]", r.Target, MinTarget, MaxTarget)
	}
	if r.Input != "" || r.Feedback != FeedbackNone || r.Guesses != 0 {
		t.Fatalf("expected empty round, got %+v", r)
	}
	if r.Status != StatusInProgress || r.Number != 1 {
		t.Fatalf("expected first in-progress round, got %+v", r)
	}
}

func TestDirectionalFeedbackForAllGuessesAndTargets(t *testing.T) {
	for target := MinTarget; target <= MaxTarget; target++ {
		for guess := MinTarget; guess <= MaxTarget; guess++ {
			r := Reduce(Round{Target: target, Input: strconv.Itoa(guess)}, Submit{}, nil, Rules{})
			var want Feedback
			switch {
			case guess < target:
				want = FeedbackTooLow
			case guess > target:
				want = FeedbackTooHigh
			default:
				want = FeedbackCorrect
			}
			if r.Feedback != want {
				t.Fatalf("target=%d guess=%d: got %v want %v", target, guess, r.Feedback, want)
			}
			if r.Guesses != 1 {
				t.Fatalf("target=%d guess=%d: expected one guess counted, got %d", target, guess, r.Guesses)
			}
		}
	}
}

func TestNonNumericInputLeavesCountUnchanged(t *testing.T) {
	g := NewGame(WithTarget(50))
	submitText(g, "10")

	r := submitText(g, "abc")
	if r.Feedback != FeedbackInvalid {
		t.Fatalf("expected invalid feedback, got %v", r.Feedback)
	}
	if r.Guesses != 1 {
		t.Fatalf("expected count to stay at 1, got %d", r.Guesses)
	}
}

func TestEmptyInputIsInvalid(t *testing.T) {
	g := NewGame(WithTarget(50))
	r := submitText(g, "")
	if r.Feedback != FeedbackInvalid {
		t.Fatalf("expected invalid feedback, got %v", r.Feedback)
	}
	if r.Guesses != 0 {
		t.Fatalf("expected count 0, got %d", r.Guesses)
	}
}

func TestSameWrongGuessTwiceCountsTwice(t *testing.T) {
	g := NewGame(WithTarget(50))
	first := submitText(g, "20")
	second := submitText(g, "20")
	if first.Feedback != FeedbackTooLow || second.Feedback != FeedbackTooLow {
		t.Fatalf("expected too low twice, got %v then %v", first.Feedback, second.Feedback)
	}
	if second.Guesses != 2 {
		t.Fatalf("expected count 2, got %d", second.Guesses)
	}
}

func TestScenarioTargetFifty(t *testing.T) {
	g := NewGame(WithTarget(50))

	steps := []struct {
		input    string
		feedback Feedback
		count    int
	}{
		{input: "30", feedback: FeedbackTooLow, count: 1},
		{input: "70", feedback: FeedbackTooHigh, count: 2},
		{input: "50", feedback: FeedbackCorrect, count: 3},
	}
	for _, step := range steps {
		r := submitText(g, step.input)
		if r.Feedback != step.feedback || r.Guesses != step.count {
			t.Fatalf("after %q: got feedback=%v count=%d want feedback=%v count=%d",
				step.input, r.Feedback, r.Guesses, step.feedback, step.count)
		}
	}
	if g.Round().Status != StatusWon {
		t.Fatalf("expected round to be won")
	}

	g.Restart()
	r := g.Round()
	if r.Guesses != 0 || r.Feedback != FeedbackNone || r.Input != "" {
		t.Fatalf("expected cleared round after restart, got %+v", r)
	}
	if r.Status != StatusInProgress {
		t.Fatalf("expected in-progress status after restart, got %v", r.Status)
	}
	if r.Number != 2 {
		t.Fatalf("expected round number 2, got %d", r.Number)
	}
}

func TestSubmitDoesNotClearInput(t *testing.T) {
	g := NewGame(WithTarget(50))
	r := submitText(g, "12")
	if r.Input != "12" {
		t.Fatalf("expected input to be kept, got %q", r.Input)
	}
}

func TestGuessingContinuesAfterWin(t *testing.T) {
	g := NewGame(WithTarget(50))
	submitText(g, "50")
	r := submitText(g, "80")
	if r.Feedback != FeedbackTooHigh {
		t.Fatalf("expected further guesses to be scored, got %v", r.Feedback)
	}
	if r.Guesses != 2 {
		t.Fatalf("expected count 2, got %d", r.Guesses)
	}
	if r.Status != StatusWon {
		t.Fatalf("expected round to stay won, got %v", r.Status)
	}
}

func TestLockOnWinIgnoresLaterSubmits(t *testing.T) {
	g := NewGame(WithTarget(50), WithLockOnWin(true))
	submitText(g, "50")
	r := submitText(g, "80")
	if r.Feedback != FeedbackCorrect {
		t.Fatalf("expected locked round to keep correct feedback, got %v", r.Feedback)
	}
	if r.Guesses != 1 {
		t.Fatalf("expected count to stay at 1, got %d", r.Guesses)
	}
	if r.Input != "80" {
		t.Fatalf("expected edits to still reach the input, got %q", r.Input)
	}

	g.Restart()
	r = submitText(g, "10")
	if r.Feedback != FeedbackTooLow || r.Guesses != 1 {
		t.Fatalf("expected restart to unlock, got %+v", r)
	}
}

func TestRestartDrawsFromSource(t *testing.T) {
	g := NewGame(WithSource(&SequenceSource{Values: []int{5, 95}}))
	if got := g.Round().Target; got != 5 {
		t.Fatalf("expected first target 5, got %d", got)
	}
	g.Restart()
	if got := g.Round().Target; got != 95 {
		t.Fatalf("expected second target 95, got %d", got)
	}
}

func TestRestartWithRandomSourceStaysInRange(t *testing.T) {
	g := NewGame(WithSeed(99))
	for i := 0; i < 200; i++ {
		submitText(g, "1")
		g.Restart()
		r := g.Round()
		if r.Target < MinTarget || r.Target > MaxTarget {
			t.Fatalf("restart %d: target %d out of range", i, r.Target)
		}
		if r.Guesses != 0 || r.Input != "" || r.Feedback != FeedbackNone {
			t.Fatalf("restart %d: expected cleared round, got %+v", i, r)
		}
	}
}

func TestNilSourceOptionKeepsDefault(t *testing.T) {
	g := NewGame(WithSource(nil))
	if g.source == nil {
		t.Fatalf("expected default source")
	}
}
