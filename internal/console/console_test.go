package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/appengine-ltd/mystery-number/internal/game"
)

func newTestConsole(t *testing.T, out io.Writer) *Console {
	t.Helper()
	return New(Config{
		GameOpts: []game.Option{game.WithTarget(50)},
		Logger:   zerolog.Nop(),
	}, out)
}

func TestRunScriptedScenario(t *testing.T) {
	var out bytes.Buffer
	c := newTestConsole(t, &out)

	in := strings.NewReader("30\n70\n50\n:restart\n")
	if err := c.Run(context.Background(), in); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	wantInOrder := []string{
		"Mystery Number Challenge",
		"Too low! Try again.", "Guesses: 1",
		"Too high! Try again.", "Guesses: 2",
		"Congratulations! You guessed the number!", "Guesses: 3",
		"New secret number chosen.", "Guesses: 0",
	}
	rest := got
	for _, w := range wantInOrder {
		i := strings.Index(rest, w)
		if i < 0 {
			t.Fatalf("expected %q after earlier output, full output:\n%s", w, got)
		}
		rest = rest[i+len(w):]
	}

	r := c.Round()
	if r.Guesses != 0 || r.Feedback != game.FeedbackNone || r.Input != "" {
		t.Fatalf("expected cleared round, got %+v", r)
	}
}

func TestInvalidLineDoesNotCount(t *testing.T) {
	var out bytes.Buffer
	c := newTestConsole(t, &out)

	c.HandleLine("abc")
	c.HandleLine("")
	r := c.Round()
	if r.Guesses != 0 || r.Feedback != game.FeedbackInvalid {
		t.Fatalf("expected invalid feedback without a count, got %+v", r)
	}
	if !strings.Contains(out.String(), "Please enter a valid number!") {
		t.Fatalf("expected warning in output, got:\n%s", out.String())
	}
}

func TestPermissiveLineIsScored(t *testing.T) {
	c := newTestConsole(t, io.Discard)
	c.HandleLine("50 is my guess")
	if r := c.Round(); r.Feedback != game.FeedbackCorrect {
		t.Fatalf("expected correct feedback, got %v", r.Feedback)
	}
}

func TestQuitStopsBeforeRemainingLines(t *testing.T) {
	c := newTestConsole(t, io.Discard)
	if err := c.Run(context.Background(), strings.NewReader("10\n:quit\n20\n")); err != nil {
		t.Fatalf("run: %v", err)
	}
	if r := c.Round(); r.Guesses != 1 {
		t.Fatalf("expected only the guess before :quit to count, got %d", r.Guesses)
	}
}

func TestHelpAndUnknownCommands(t *testing.T) {
	var out bytes.Buffer
	c := newTestConsole(t, &out)

	c.HandleLine(":help")
	for _, want := range []string{":restart", ":status", ":help", ":quit"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in help output:\n%s", want, out.String())
		}
	}

	out.Reset()
	c.HandleLine(":hlep")
	if !strings.Contains(out.String(), "Unknown command, try :help") {
		t.Fatalf("expected suggestion, got %q", out.String())
	}

	out.Reset()
	c.HandleLine(":zzzzzzzz")
	if strings.TrimSpace(out.String()) != "Unknown command" {
		t.Fatalf("expected bare unknown message, got %q", out.String())
	}
}

func TestStatusCommandPrintsRound(t *testing.T) {
	var out bytes.Buffer
	c := newTestConsole(t, &out)
	c.HandleLine("10")
	out.Reset()

	c.HandleLine(":status")
	if !strings.Contains(out.String(), "Too low! Try again.") || !strings.Contains(out.String(), "Guesses: 1") {
		t.Fatalf("unexpected status output %q", out.String())
	}
	if r := c.Round(); r.Guesses != 1 {
		t.Fatalf("expected status to leave count alone, got %d", r.Guesses)
	}
}

func TestPromptIsOptional(t *testing.T) {
	var out bytes.Buffer
	c := New(Config{GameOpts: []game.Option{game.WithTarget(5)}, Logger: zerolog.Nop(), Prompt: true}, &out)
	if err := c.Run(context.Background(), strings.NewReader("1\n")); err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.Count(out.String(), prompt) != 2 {
		t.Fatalf("expected a prompt before and after the guess, got:\n%s", out.String())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	c := newTestConsole(t, io.Discard)
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx, pr) }()

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("run did not stop after cancel")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestRunReportsReadError(t *testing.T) {
	c := newTestConsole(t, io.Discard)
	err := c.Run(context.Background(), failingReader{})
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected wrapped read error, got %v", err)
	}
}
