package game

// Game owns the current round and the source new targets come from. It is
// not safe for concurrent use; each screen drives its own Game from its event
// loop.
type Game struct {
	round  Round
	source TargetSource
	rules  Rules
}

type Option func(*Game)

// WithSource sets where targets come from.
func WithSource(src TargetSource) Option {
	return func(g *Game) {
		if src != nil {
			g.source = src
		}
	}
}

// WithSeed uses a seeded random source. Zero seeds from the clock.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.source = NewRandomSource(seed)
	}
}

// WithTarget pins every round to the same target.
func WithTarget(n int) Option {
	return WithSource(FixedSource(n))
}

func WithLockOnWin(lock bool) Option {
	return func(g *Game) {
		g.rules.LockOnWin = lock
	}
}

func NewGame(opts ...Option) *Game {
	g := &Game{}
	for _, opt := range opts {
		opt(g)
	}
	if g.source == nil {
		g.source = NewRandomSource(0)
	}
	g.round = NewRound(g.source, 1)
	return g
}

// Round returns a copy of the current round.
func (g *Game) Round() Round {
	return g.round
}

func (g *Game) Rules() Rules {
	return g.rules
}

// Apply feeds ev through Reduce and returns the new round.
func (g *Game) Apply(ev Event) Round {
	g.round = Reduce(g.round, ev, g.source, g.rules)
	return g.round
}

func (g *Game) SetInput(text string) {
	g.Apply(EditInput{Text: text})
}

// Submit scores the current input and returns the resulting feedback.
func (g *Game) Submit() Feedback {
	return g.Apply(Submit{}).Feedback
}

func (g *Game) Restart() {
	g.Apply(Restart{})
}
