package game

const (
	MinTarget = 1
	MaxTarget = 100

	// MaxInputLen bounds how much text the front ends let the player type.
	MaxInputLen = 32
)

type Status int

const (
	StatusInProgress Status = iota
	StatusWon
)

func (s Status) String() string {
	if s == StatusWon {
		return "won"
	}
	return "in_progress"
}

// Round is everything the screen shows for one secret target.
type Round struct {
	Target   int
	Input    string
	Feedback Feedback
	Guesses  int
	Status   Status
	// Number counts rounds since the screen opened, starting at 1.
	Number int
}

// Rules tweak how events are applied.
type Rules struct {
	// LockOnWin ignores submits once the target has been guessed.
	LockOnWin bool
}

// Event is one user action against a round.
type Event interface {
	isEvent()
}

// EditInput replaces the text in the entry field.
type EditInput struct {
	Text string
}

// Submit scores the current input.
type Submit struct{}

// Restart draws a new target and clears the round.
type Restart struct{}

func (EditInput) isEvent() {}
func (Submit) isEvent()    {}
func (Restart) isEvent()   {}

// NewRound starts round number n with a target from src.
func NewRound(src TargetSource, n int) Round {
	return Round{
		Target: drawTarget(src),
		Number: n,
	}
}

// Reduce returns the round that results from applying ev to r. src is only
// consulted for Restart.
func Reduce(r Round, ev Event, src TargetSource, rules Rules) Round {
	switch ev := ev.(type) {
	case EditInput:
		r.Input = ev.Text
	case Submit:
		r = submit(r, rules)
	case Restart:
		r = NewRound(src, r.Number+1)
	}
	return r
}

func submit(r Round, rules Rules) Round {
	if rules.LockOnWin && r.Status == StatusWon {
		return r
	}

	guess, ok := ParseGuess(r.Input)
	if !ok {
		r.Feedback = FeedbackInvalid
		return r
	}

	r.Guesses++
	switch {
	case guess < r.Target:
		r.Feedback = FeedbackTooLow
	case guess > r.Target:
		r.Feedback = FeedbackTooHigh
	default:
		r.Feedback = FeedbackCorrect
		r.Status = StatusWon
	}
	return r
}
