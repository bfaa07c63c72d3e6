package parser

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type commandPhrase struct {
	canonical string
	alias     string
}

type Registry struct {
	commands map[string]CommandDef
	order    []string
	phrases  []commandPhrase
}

func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]CommandDef),
	}
}

func (r *Registry) RegisterCommand(c CommandDef) {
	c.Canonical = normaliseInput(c.Canonical)
	if c.Canonical == "" {
		return
	}
	if _, exists := r.commands[c.Canonical]; !exists {
		r.order = append(r.order, c.Canonical)
	}
	r.commands[c.Canonical] = c

	r.phrases = append(r.phrases, commandPhrase{canonical: c.Canonical, alias: c.Canonical})
	for _, a := range c.Aliases {
		n := normaliseInput(a)
		if n == "" {
			continue
		}
		r.phrases = append(r.phrases, commandPhrase{canonical: c.Canonical, alias: n})
	}
}

// Commands returns the registered commands in registration order.
func (r *Registry) Commands() []CommandDef {
	out := make([]CommandDef, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.commands[name])
	}
	return out
}

type commandCandidate struct {
	Canonical string
	Score     float64
	Source    string
}

// Match resolves a ':'-prefixed line to a command. Lines without the prefix
// come back as NotCommand.
func (r *Registry) Match(line string) Match {
	m := Match{Raw: line}
	if !IsCommand(line) {
		m.Kind = NotCommand
		return m
	}

	body := strings.TrimPrefix(strings.TrimSpace(line), Prefix)
	fields := strings.Fields(body)
	if len(fields) == 0 {
		m.Kind = Unknown
		return m
	}
	word := normaliseInput(fields[0])
	if word == "" {
		m.Kind = Unknown
		return m
	}

	cands := r.candidates(word)
	if len(cands) == 0 {
		m.Kind = Unknown
		m.Suggestions = r.nearest(word)
		return m
	}

	best := cands[0]
	if len(cands) > 1 && best.Source != "exact" && best.Source != "alias" && cands[1].Score == best.Score {
		m.Kind = Ambiguous
		for _, c := range cands {
			if c.Score != best.Score {
				break
			}
			m.Suggestions = append(m.Suggestions, c.Canonical)
		}
		return m
	}

	m.Kind = Matched
	m.Command = best.Canonical
	m.Source = best.Source
	m.Confidence = best.Score
	return m
}

// candidates returns one entry per canonical command, best score first.
func (r *Registry) candidates(word string) []commandCandidate {
	bestByCommand := make(map[string]commandCandidate)
	consider := func(c commandCandidate) {
		if prev, ok := bestByCommand[c.Canonical]; !ok || c.Score > prev.Score {
			bestByCommand[c.Canonical] = c
		}
	}

	for _, phrase := range r.phrases {
		if word == phrase.alias {
			score := 1.0
			source := "exact"
			if phrase.alias != phrase.canonical {
				score = 0.97
				source = "alias"
			}
			consider(commandCandidate{Canonical: phrase.canonical, Score: score, Source: source})
			continue
		}

		if len(word) >= 2 && strings.HasPrefix(phrase.alias, word) {
			consider(commandCandidate{Canonical: phrase.canonical, Score: 0.9, Source: "prefix"})
			continue
		}

		if len(word) < 3 {
			continue
		}
		dist := levenshtein.ComputeDistance(word, phrase.alias)
		if dist > levenshteinLimit(len(phrase.alias)) {
			continue
		}
		consider(commandCandidate{Canonical: phrase.canonical, Score: 0.72 - (0.08 * float64(dist)), Source: "lev"})
	}

	cands := make([]commandCandidate, 0, len(bestByCommand))
	for _, c := range bestByCommand {
		cands = append(cands, c)
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Score == cands[j].Score {
			return cands[i].Canonical < cands[j].Canonical
		}
		return cands[i].Score > cands[j].Score
	})
	return cands
}

// nearest suggests the closest canonical names even when none is within the
// fuzzy limit.
func (r *Registry) nearest(word string) []string {
	type scored struct {
		name string
		dist int
	}
	all := make([]scored, 0, len(r.order))
	for _, name := range r.order {
		all = append(all, scored{name: name, dist: levenshtein.ComputeDistance(word, name)})
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].dist < all[j].dist })

	out := make([]string, 0, 2)
	for _, s := range all {
		if s.dist > max(2, len(word)/2) || len(out) == 2 {
			break
		}
		out = append(out, s.name)
	}
	return out
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	default:
		return 2
	}
}

const (
	CmdRestart = "restart"
	CmdQuit    = "quit"
	CmdHelp    = "help"
	CmdStatus  = "status"
)

// DefaultRegistry holds the commands every front end understands.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	commands := []CommandDef{
		{Canonical: CmdRestart, Aliases: []string{"new", "reset"}, Help: "start a new round with a new secret number"},
		{Canonical: CmdStatus, Help: "show the current feedback and guess count"},
		{Canonical: CmdHelp, Aliases: []string{"h", "?"}, Help: "list commands"},
		{Canonical: CmdQuit, Aliases: []string{"q", "exit"}, Help: "leave the game"},
	}
	for _, cmd := range commands {
		r.RegisterCommand(cmd)
	}
	return r
}
