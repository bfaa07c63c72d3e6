package gui

import (
	"fmt"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"github.com/appengine-ltd/mystery-number/internal/config"
	"github.com/appengine-ltd/mystery-number/internal/game"
	uitheme "github.com/appengine-ltd/mystery-number/internal/ui/theme"
)

const (
	windowTitle = "Mystery Number Challenge"
	placeholder = "Enter your guess (1-100)"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
	Theme     config.Theme
	GameOpts  []game.Option
	Logger    zerolog.Logger
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	s := newScreen(a.cfg)
	return s.Run()
}

type control int

const (
	controlNone control = iota
	controlInput
	controlSubmit
	controlRestart
)

// screen is the single game screen: one Game, its layout, and which control
// the pointer is on.
type screen struct {
	cfg     AppConfig
	log     zerolog.Logger
	game    *game.Game
	palette uitheme.Palette
	fonts   uitheme.Typography

	width  int32
	height int32
	layout layout

	inputFocused bool
	hover        control
	pressed      control
	quit         bool

	started time.Time
}

func newScreen(cfg AppConfig) *screen {
	if cfg.Theme == (config.Theme{}) {
		cfg.Theme = config.DefaultTheme()
	}
	s := &screen{
		cfg:          cfg,
		log:          cfg.Logger.With().Str("frontend", "window").Logger(),
		game:         game.NewGame(cfg.GameOpts...),
		palette:      uitheme.PaletteFrom(cfg.Theme),
		fonts:        uitheme.TypographyFrom(cfg.Theme.Fonts),
		inputFocused: true,
		started:      time.Now(),
	}
	s.resize(cfg.Theme.Window.Width, cfg.Theme.Window.Height)
	s.log.Debug().Int("round", s.game.Round().Number).Msg("round started")
	return s
}

func (s *screen) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(s.width, s.height, windowTitle)
	if !rl.IsWindowReady() {
		return fmt.Errorf("open window %dx%d", s.width, s.height)
	}
	setWindowIcon(s.cfg.Theme)
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	initTypography()
	s.log.Info().Int32("width", s.width).Int32("height", s.height).Msg("window opened")

	for !s.quit && !rl.WindowShouldClose() {
		s.resize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
		s.handle(pollInput())
		s.updateCursor()

		rl.BeginDrawing()
		rl.ClearBackground(s.palette.Background)
		s.draw()
		rl.EndDrawing()
	}

	shutdownTypography()
	rl.CloseWindow()
	s.log.Info().Msg("quit")
	return nil
}

func (s *screen) resize(width, height int32) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.layout = computeLayout(width, height, s.fonts)
}

func (s *screen) hit(p rl.Vector2) control {
	switch {
	case pointInRect(p, s.layout.Input):
		return controlInput
	case pointInRect(p, s.layout.Submit):
		return controlSubmit
	case pointInRect(p, s.layout.Restart):
		return controlRestart
	}
	return controlNone
}

// handle applies one frame of input. Buttons fire on release, and only when
// the pointer is still on the control it went down on.
func (s *screen) handle(in frameInput) {
	if in.Quit {
		s.quit = true
		return
	}

	s.hover = s.hit(in.Pointer)
	if in.PointerDown {
		s.pressed = s.hover
		switch s.hover {
		case controlInput:
			s.inputFocused = true
		case controlNone:
			s.inputFocused = false
		}
	}
	if in.PointerUp {
		if s.pressed != controlNone && s.pressed == s.hover {
			s.activate(s.pressed)
		}
		s.pressed = controlNone
	}

	if in.Restart {
		s.restart()
		return
	}

	if s.inputFocused {
		text := s.game.Round().Input
		if len(in.Chars) > 0 {
			text = appendTyped(text, in.Chars, game.MaxInputLen)
		}
		if in.Backspace {
			text = dropLast(text)
		}
		if text != s.game.Round().Input {
			s.game.SetInput(text)
		}
		if in.Enter {
			s.submit()
		}
	}
}

func (s *screen) activate(c control) {
	switch c {
	case controlSubmit:
		s.submit()
	case controlRestart:
		s.restart()
	}
}

func (s *screen) submit() {
	before := s.game.Round().Status
	s.game.Submit()
	r := s.game.Round()
	if before != game.StatusWon && r.Status == game.StatusWon {
		s.log.Info().Int("round", r.Number).Int("guesses", r.Guesses).Msg("round won")
	}
}

func (s *screen) restart() {
	s.game.Restart()
	s.inputFocused = true
	s.log.Debug().Int("round", s.game.Round().Number).Msg("round started")
}

func (s *screen) updateCursor() {
	switch s.hover {
	case controlInput:
		rl.SetMouseCursor(rl.MouseCursorIBeam)
	case controlSubmit, controlRestart:
		rl.SetMouseCursor(rl.MouseCursorPointingHand)
	default:
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}
}

func (s *screen) buttonState(c control) uitheme.ButtonState {
	switch {
	case s.pressed == c && s.hover == c:
		return uitheme.ButtonPressed
	case s.hover == c:
		return uitheme.ButtonHover
	}
	return uitheme.ButtonNormal
}

func (s *screen) draw() {
	r := s.game.Round()
	l := s.layout
	p := s.palette
	ty := s.fonts

	title := windowTitle
	titleW := float32(uitheme.MeasureText(title, ty.Title))
	badge := float32(ty.Title) * 0.5
	cx := l.Title.X + l.Title.Width/2
	startX := cx - (titleW+badge*2+8)/2
	uitheme.DrawBullseye(startX+badge, l.Title.Y+float32(ty.Title)/2, badge, p.Restart, p.Submit)
	uitheme.DrawBoldText(title, int32(startX+badge*2+8), int32(l.Title.Y), ty.Title, p.Title)

	caretOn := time.Since(s.started)%time.Second < 530*time.Millisecond
	uitheme.DrawInput(l.Input, r.Input, placeholder, s.inputFocused, caretOn, p, ty.Body)

	uitheme.DrawButton(l.Submit, s.buttonState(controlSubmit), "Submit Guess", uitheme.ButtonColors{
		Fill: p.Submit, Pressed: p.SubmitPressed, Label: p.ButtonText,
	}, ty.Body)

	lines := wrapText(r.Feedback.Plain(), ty.Feedback, int32(l.Feedback.Width))
	lh := int32(lineHeight(ty.Feedback, ty.LineFactor))
	for i, line := range lines {
		uitheme.DrawTextCentered(line, cx, int32(l.Feedback.Y)+int32(i)*lh, ty.Feedback, p.Feedback, false)
	}

	uitheme.DrawTextCentered(fmt.Sprintf("Guesses: %d", r.Guesses), cx, int32(l.Counter.Y), ty.Body, p.Counter, false)

	uitheme.DrawButton(l.Restart, s.buttonState(controlRestart), "Restart Game", uitheme.ButtonColors{
		Fill: p.Restart, Pressed: p.RestartPressed, Label: p.ButtonText,
	}, ty.Body)
}

func wrapText(text string, size int32, maxWidth int32) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	lines := make([]string, 0, 2)
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if uitheme.MeasureText(candidate, size) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	lines = append(lines, current)
	return lines
}
