package sneak

import (
	"github.com/peco/sneak/keyseq"
	"github.com/peco/sneak/label"
	"github.com/peco/sneak/match"
	"github.com/peco/sneak/query"
)

// State is where the Mode is in a search.
type State int

const (
	StateAwaitingKey State = iota // collecting the search key
	StateCycling                  // moving between matches with the cycle keys
	StateLabeling                 // narrowing matches down by label
	StateDone                     // finished, waiting for Enter
)

// ActionKind tells the host what to do after a key was handled.
type ActionKind int

const (
	ActionStay   ActionKind = iota // the mode stays active
	ActionSelect                   // select Action.Match and return to the default mode
	ActionExit                     // return to the default mode without a selection
)

// Action is the result of handing one key to the Mode.
type Action struct {
	Kind  ActionKind
	Match match.Match
}

// Host is the editor the Mode runs in. The Mode only ever reads the
// visible text, asks for the directionality preference, and reports
// terminal actions back.
type Host interface {
	// VisibleText returns the lines currently on screen, in document order.
	VisibleText() []match.Line
	// AltIsReverse reports whether the Alt-modified cycle key is the
	// "previous" key. It is asked on every keystroke.
	AltIsReverse() bool
	// Emit receives ActionSelect and ActionExit when a search ends.
	Emit(Action)
}

// CaretReporter is implemented by hosts that can report the cursor.
// It is only used when Config.StartAtCaret is set.
type CaretReporter interface {
	Caret() match.Position
}

// Config holds the settings of a Mode. It is copied when the Mode is
// created and never changes afterwards.
type Config struct {
	// NextKey selects the next match while cycling.
	NextKey keyseq.Key
	// PrevKey selects the previous match while cycling. When left as
	// the zero Key it is "N", or "M-n" if the host says Alt is reverse.
	PrevKey keyseq.Key
	// Len is the number of characters in a search key.
	Len int
	// MinForLabels is the number of matches at which labels are used
	// instead of cycling. Zero disables labels.
	MinForLabels int
	// LabelAlphabet lists the label characters. Characters used by the
	// cycle keys are left out.
	LabelAlphabet string
	// LabelOverflow decides what happens when matches outnumber the
	// label characters.
	LabelOverflow label.Overflow
	// StartAtCaret starts cycling at the first match after the caret
	// instead of the first visible match.
	StartAtCaret bool
}

// Mode is the jump-to-text state machine. It is driven by a single
// input loop and is not safe for concurrent use.
type Mode struct {
	host    Host
	config  Config
	acc     *query.Accumulator
	scanner *match.Scanner

	state  State
	set    *match.Set
	labels *label.Assigner
	result Action
}
