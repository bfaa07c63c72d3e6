package parser

// Prefix marks a line as a command rather than a guess.
const Prefix = ":"

type MatchKind int

const (
	// NotCommand means the line is a guess and should be submitted.
	NotCommand MatchKind = iota
	Matched
	Ambiguous
	Unknown
)

type Match struct {
	Raw        string
	Kind       MatchKind
	Command    string
	Source     string
	Confidence float64
	// Suggestions lists close canonical names for Ambiguous and Unknown.
	Suggestions []string
}

type CommandDef struct {
	Canonical string
	Aliases   []string
	Help      string
}
