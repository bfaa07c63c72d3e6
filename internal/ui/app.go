package ui

import (
	"fmt"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/appengine-ltd/mystery-number/internal/config"
	"github.com/appengine-ltd/mystery-number/internal/game"
	"github.com/appengine-ltd/mystery-number/internal/parser"
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
	m := newModel(a.cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type focus int

const (
	focusInput focus = iota
	focusSubmit
	focusRestart
	focusCount
)

type model struct {
	cfg      AppConfig
	log      zerolog.Logger
	game     *game.Game
	commands *parser.Registry
	styles   styles

	focus  focus
	status string
	width  int
}

func newModel(cfg AppConfig) model {
	if cfg.Theme == (config.Theme{}) {
		cfg.Theme = config.DefaultTheme()
	}
	m := model{
		cfg:      cfg,
		log:      cfg.Logger.With().Str("frontend", "tui").Logger(),
		game:     game.NewGame(cfg.GameOpts...),
		commands: parser.DefaultRegistry(),
		styles:   newStyles(cfg.Theme),
	}
	m.log.Debug().Int("round", m.game.Round().Number).Msg("round started")
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.log.Info().Msg("quit")
		return m, tea.Quit
	case tea.KeyCtrlR:
		m.restart()
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		m.focus = (m.focus + 1) % focusCount
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.focus = (m.focus + focusCount - 1) % focusCount
		return m, nil
	case tea.KeyEnter:
		if m.focus == focusRestart {
			m.restart()
			return m, nil
		}
		return m.submitInput()
	case tea.KeyBackspace:
		if m.focus == focusInput {
			in := []rune(m.game.Round().Input)
			if len(in) > 0 {
				m.game.SetInput(string(in[:len(in)-1]))
			}
		}
		return m, nil
	case tea.KeyRunes, tea.KeySpace:
		if m.focus != focusInput {
			return m, nil
		}
		runes := msg.Runes
		if msg.Type == tea.KeySpace {
			runes = []rune{' '}
		}
		m.typeRunes(runes)
		return m, nil
	}
	return m, nil
}

func (m *model) typeRunes(runes []rune) {
	in := []rune(m.game.Round().Input)
	for _, r := range runes {
		if !unicode.IsPrint(r) || len(in) >= game.MaxInputLen {
			continue
		}
		in = append(in, r)
	}
	m.game.SetInput(string(in))
}

// submitInput runs a ':' command or scores the entry as a guess.
func (m model) submitInput() (tea.Model, tea.Cmd) {
	input := m.game.Round().Input
	if parser.IsCommand(input) {
		return m.runCommand(input)
	}

	m.status = ""
	before := m.game.Round().Status
	m.game.Submit()
	after := m.game.Round()
	if before != game.StatusWon && after.Status == game.StatusWon {
		m.log.Info().Int("round", after.Number).Int("guesses", after.Guesses).Msg("round won")
	}
	return m, nil
}

func (m model) runCommand(line string) (tea.Model, tea.Cmd) {
	match := m.commands.Match(line)
	m.game.SetInput("")
	switch match.Kind {
	case parser.Ambiguous:
		m.status = "Did you mean " + joinCommands(match.Suggestions, " or ") + "?"
		return m, nil
	case parser.Unknown:
		m.status = "Unknown command"
		if len(match.Suggestions) > 0 {
			m.status += ", try " + joinCommands(match.Suggestions, " or ")
		}
		return m, nil
	}

	switch match.Command {
	case parser.CmdRestart:
		m.restart()
	case parser.CmdStatus:
		r := m.game.Round()
		m.status = fmt.Sprintf("Guesses: %d | %s", r.Guesses, safeText(r.Feedback.String()))
	case parser.CmdHelp:
		parts := make([]string, 0, len(m.commands.Commands()))
		for _, c := range m.commands.Commands() {
			parts = append(parts, parser.Prefix+c.Canonical)
		}
		m.status = "Commands: " + strings.Join(parts, " ")
	case parser.CmdQuit:
		m.log.Info().Msg("quit")
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) restart() {
	m.game.Restart()
	m.status = ""
	m.focus = focusInput
	m.log.Debug().Int("round", m.game.Round().Number).Msg("round started")
}

func (m model) View() string {
	r := m.game.Round()
	s := m.styles

	emblem := renderEmblemANSI(6, 3, s.emblemRing, s.emblemCenter)
	title := lipgloss.JoinHorizontal(lipgloss.Center, emblem, "  ", s.title.Render("Mystery Number Challenge"))

	inputText := r.Input
	inputStyle := s.input
	if inputText == "" {
		inputText = s.placeholder.Render("Enter your guess (1-100)")
	} else if m.focus == focusInput {
		inputText += "_"
	}
	if m.focus == focusInput {
		inputStyle = s.inputFocused
	}

	submit := s.button(s.submit, m.focus == focusSubmit).Render("Submit Guess")
	restart := s.button(s.restart, m.focus == focusRestart).Render("Restart Game")

	lines := []string{
		title,
		"",
		inputStyle.Render(inputText),
		submit,
		"",
		s.feedback.Render(r.Feedback.String()),
		s.counter.Render(fmt.Sprintf("Guesses: %d", r.Guesses)),
		"",
		restart,
		"",
	}
	if m.status != "" {
		lines = append(lines, s.status.Render(m.status))
	}
	lines = append(lines, s.hint.Render("enter submit · tab focus · ctrl+r restart · esc quit · :help"))
	if m.cfg.Version != "" {
		lines = append(lines, s.hint.Render("v"+m.cfg.Version))
	}

	screen := s.screen
	if m.width > 0 {
		screen = screen.Width(m.width)
	}
	return screen.Render(lipgloss.JoinVertical(lipgloss.Center, lines...)) + "\n"
}

func joinCommands(names []string, sep string) string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = parser.Prefix + n
	}
	return strings.Join(out, sep)
}

func safeText(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
