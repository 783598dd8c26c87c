package mock

import (
	"github.com/peco/sneak"
	"github.com/peco/sneak/match"
)

// Host is a sneak.Host over a fixed block of text. Every call is
// recorded.
type Host struct {
	*Interceptor
	Lines   []match.Line
	AltRev  bool
	Pos     match.Position
	Emitted []sneak.Action
}

// NewHost creates a Host whose whole text is visible.
func NewHost(text string) *Host {
	return &Host{
		Interceptor: NewInterceptor(),
		Lines:       match.SplitLines(text, 0, 0),
	}
}

func (h *Host) VisibleText() []match.Line {
	h.Record("VisibleText", nil)
	return h.Lines
}

func (h *Host) AltIsReverse() bool {
	h.Record("AltIsReverse", nil)
	return h.AltRev
}

func (h *Host) Emit(a sneak.Action) {
	h.Record("Emit", []interface{}{a})
	h.Emitted = append(h.Emitted, a)
}

// Caret implements sneak.CaretReporter
func (h *Host) Caret() match.Position {
	return h.Pos
}

// LastEmitted returns the last action passed to Emit.
func (h *Host) LastEmitted() (sneak.Action, bool) {
	if len(h.Emitted) == 0 {
		return sneak.Action{}, false
	}
	return h.Emitted[len(h.Emitted)-1], true
}
