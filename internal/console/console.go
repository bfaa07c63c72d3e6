// Package console plays the game over plain text lines, one guess or
// ':' command per line. It suits pipes and scripted sessions.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/appengine-ltd/mystery-number/internal/game"
	"github.com/appengine-ltd/mystery-number/internal/parser"
)

const (
	title       = "🎯 Mystery Number Challenge"
	placeholder = "Enter your guess (1-100)"
	prompt      = "> "
)

type Config struct {
	GameOpts []game.Option
	Logger   zerolog.Logger
	// Prompt toggles the "> " prompt; off for piped input.
	Prompt bool
}

type Console struct {
	cfg      Config
	log      zerolog.Logger
	game     *game.Game
	commands *parser.Registry
	out      io.Writer
	quit     bool
}

func New(cfg Config, out io.Writer) *Console {
	c := &Console{
		cfg:      cfg,
		log:      cfg.Logger.With().Str("frontend", "plain").Logger(),
		game:     game.NewGame(cfg.GameOpts...),
		commands: parser.DefaultRegistry(),
		out:      out,
	}
	c.log.Debug().Int("round", c.game.Round().Number).Msg("round started")
	return c
}

// Run reads lines from in until EOF, a quit command, or ctx is done.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- sc.Err()
	}()

	c.printf("%s\n%s, or :help\n", title, placeholder)
	c.showPrompt()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("read input: %w", err)
					}
				default:
				}
				return nil
			}
			c.HandleLine(line)
			if c.quit {
				c.log.Info().Msg("quit")
				return nil
			}
			c.showPrompt()
		}
	}
}

// HandleLine applies one line of input: a ':' command, or else a guess that
// is typed into the entry field and submitted.
func (c *Console) HandleLine(line string) {
	if parser.IsCommand(line) {
		c.runCommand(line)
		return
	}

	before := c.game.Round().Status
	c.game.SetInput(line)
	c.game.Submit()
	r := c.game.Round()
	if before != game.StatusWon && r.Status == game.StatusWon {
		c.log.Info().Int("round", r.Number).Int("guesses", r.Guesses).Msg("round won")
	}
	c.printRound(r)
}

func (c *Console) Round() game.Round {
	return c.game.Round()
}

func (c *Console) runCommand(line string) {
	m := c.commands.Match(line)
	switch m.Kind {
	case parser.Ambiguous:
		c.printf("Did you mean %s?\n", joinCommands(m.Suggestions))
		return
	case parser.Unknown:
		if len(m.Suggestions) > 0 {
			c.printf("Unknown command, try %s\n", joinCommands(m.Suggestions))
			return
		}
		c.printf("Unknown command\n")
		return
	}

	switch m.Command {
	case parser.CmdRestart:
		c.game.Restart()
		c.log.Debug().Int("round", c.game.Round().Number).Msg("round started")
		c.printf("New secret number chosen. %s\n", placeholder)
		c.printRound(c.game.Round())
	case parser.CmdStatus:
		c.printRound(c.game.Round())
	case parser.CmdHelp:
		for _, cmd := range c.commands.Commands() {
			c.printf("  %s%-8s %s\n", parser.Prefix, cmd.Canonical, cmd.Help)
		}
	case parser.CmdQuit:
		c.quit = true
	}
}

func (c *Console) printRound(r game.Round) {
	if msg := r.Feedback.String(); msg != "" {
		c.printf("%s\n", msg)
	}
	c.printf("Guesses: %d\n", r.Guesses)
}

func (c *Console) showPrompt() {
	if c.cfg.Prompt {
		c.printf("%s", prompt)
	}
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

func joinCommands(names []string) string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = parser.Prefix + n
	}
	return strings.Join(out, " or ")
}
