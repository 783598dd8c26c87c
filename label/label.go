package label

import (
	"fmt"

	"github.com/peco/sneak/match"
)

// DefaultAlphabet holds the label characters, in the order they are
// handed out.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// Overflow decides what happens to matches when there are more matches
// than label characters.
type Overflow int

const (
	// OverflowTruncate labels as many matches as there are characters
	// and leaves the rest unlabeled.
	OverflowTruncate Overflow = iota
	// OverflowGroup lets the first few characters label a whole group
	// of matches. Typing a group label narrows down to that group and
	// relabels it.
	OverflowGroup
)

func (o Overflow) String() string {
	switch o {
	case OverflowTruncate:
		return "truncate"
	case OverflowGroup:
		return "group"
	}
	return fmt.Sprintf("Overflow(%d)", int(o))
}

func (o *Overflow) unmarshal(s string) error {
	switch s {
	case "", "truncate":
		*o = OverflowTruncate
	case "group":
		*o = OverflowGroup
	default:
		return fmt.Errorf("invalid label overflow %q: must be %q or %q", s, OverflowTruncate, OverflowGroup)
	}
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler (used by JSON/YAML decoders).
func (o *Overflow) UnmarshalText(b []byte) error {
	return o.unmarshal(string(b))
}

// UnmarshalFlag implements go-flags Unmarshaler (used by CLI flag parsing).
func (o *Overflow) UnmarshalFlag(s string) error {
	return o.unmarshal(s)
}

// Alphabet returns the characters of chars in order, without
// duplicates and without any of the reserved runes.
func Alphabet(chars string, reserved ...rune) []rune {
	seen := make(map[rune]struct{}, len(chars))
	for _, r := range reserved {
		seen[r] = struct{}{}
	}

	var out []rune
	for _, r := range chars {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

// Label binds a character to a match.
type Label struct {
	Ch    rune
	Match match.Match
}

// OutcomeKind tells the caller what a label keystroke did.
type OutcomeKind int

const (
	// NoMatch means the character is not a live label.
	NoMatch OutcomeKind = iota
	// Narrowed means several matches share the label; they have been
	// relabeled and are in Outcome.Labels.
	Narrowed
	// Resolved means exactly one match carried the label. It is in
	// Outcome.Match.
	Resolved
)

func (k OutcomeKind) String() string {
	switch k {
	case NoMatch:
		return "no-match"
	case Narrowed:
		return "narrowed"
	case Resolved:
		return "resolved"
	}
	return "unknown"
}

// Outcome is the result of Assigner.Filter.
type Outcome struct {
	Kind   OutcomeKind
	Labels []Label
	Match  match.Match
}
