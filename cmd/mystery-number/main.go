package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/appengine-ltd/mystery-number/internal/config"
	"github.com/appengine-ltd/mystery-number/internal/console"
	"github.com/appengine-ltd/mystery-number/internal/game"
	"github.com/appengine-ltd/mystery-number/internal/ui"
)

// version, commit, date are injected at build time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	frontWindow = "window"
	frontTUI    = "tui"
	frontPlain  = "plain"
)

type options struct {
	showVersion bool
	tui         bool
	plain       bool
	seed        int64
	lockOnWin   bool
	themePath   string
	logLevel    string
	logFile     string
}

func (o options) frontEnd() string {
	switch {
	case o.plain:
		return frontPlain
	case o.tui, !windowAvailable:
		return frontTUI
	}
	return frontWindow
}

func main() {
	_ = godotenv.Load()

	opts, err := parseFlags(os.Args[1:], os.Getenv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if opts.showVersion {
		fmt.Printf("Mystery Number %s (%s) %s\n", version, commit, date)
		return
	}

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseFlags reads command-line flags. MYSTERY_SEED, MYSTERY_THEME and
// MYSTERY_LOG_LEVEL, from the environment or a .env file, supply defaults.
func parseFlags(args []string, getenv func(string) string) (options, error) {
	var o options
	fs := flag.NewFlagSet("mystery-number", flag.ContinueOnError)

	seedDefault := int64(0)
	if v := getenv("MYSTERY_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return o, fmt.Errorf("MYSTERY_SEED: %w", err)
		}
		seedDefault = n
	}
	levelDefault := "info"
	if v := getenv("MYSTERY_LOG_LEVEL"); v != "" {
		levelDefault = v
	}

	fs.BoolVar(&o.showVersion, "version", false, "print version and exit")
	fs.BoolVar(&o.tui, "tui", false, "play in the terminal instead of a window")
	fs.BoolVar(&o.plain, "plain", false, "play over plain stdin/stdout lines")
	fs.Int64Var(&o.seed, "seed", seedDefault, "seed for the secret number (0 uses the clock)")
	fs.BoolVar(&o.lockOnWin, "lock-on-win", false, "ignore guesses after a win until restart")
	fs.StringVar(&o.themePath, "theme", getenv("MYSTERY_THEME"), "path to a YAML theme file")
	fs.StringVar(&o.logLevel, "log-level", levelDefault, "log level (trace, debug, info, warn, error)")
	fs.StringVar(&o.logFile, "log-file", "", "write logs to this file")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if o.tui && o.plain {
		return o, errors.New("-tui and -plain cannot be combined")
	}
	return o, nil
}

// newLogger builds the process logger. The terminal UI owns the screen, so
// without a log file its logs are dropped.
func newLogger(o options, stderr io.Writer) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(o.logLevel)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("log level %q: %w", o.logLevel, err)
	}
	zerolog.SetGlobalLevel(level)

	var (
		out    io.Writer
		closer io.Closer
	)
	switch {
	case o.logFile != "":
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f
	case o.frontEnd() == frontTUI:
		out = io.Discard
	default:
		out = zerolog.ConsoleWriter{
			Out:        stderr,
			TimeFormat: time.TimeOnly,
			NoColor:    !isTerminal(stderr),
		}
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return logger, closer, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func gameOptions(o options) []game.Option {
	gameOpts := []game.Option{game.WithLockOnWin(o.lockOnWin)}
	if o.seed != 0 {
		gameOpts = append(gameOpts, game.WithSeed(o.seed))
	}
	return gameOpts
}

func run(o options) error {
	logger, closer, err := newLogger(o, os.Stderr)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	theme, err := config.LoadTheme(o.themePath)
	if err != nil {
		return err
	}

	front := o.frontEnd()
	if !windowAvailable && !o.tui && !o.plain {
		fmt.Fprintln(os.Stderr, "built without cgo, no window available; using the terminal UI")
	}
	logger.Info().Str("version", version).Str("frontend", front).Msg("starting mystery-number")

	switch front {
	case frontPlain:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		c := console.New(console.Config{
			GameOpts: gameOptions(o),
			Logger:   logger,
			Prompt:   isTerminal(os.Stdin),
		}, os.Stdout)
		err = c.Run(ctx, os.Stdin)
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	case frontTUI:
		err = runTUI(o, theme, logger)
	default:
		err = runWindow(o, theme, logger)
	}
	if err != nil {
		logger.Error().Err(err).Str("frontend", front).Msg("front end failed")
	}
	return err
}

func runTUI(o options, theme config.Theme, logger zerolog.Logger) error {
	return ui.NewApp(ui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		Theme:     theme,
		GameOpts:  gameOptions(o),
		Logger:    logger,
	}).Run()
}
