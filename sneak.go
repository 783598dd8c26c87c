package sneak

import (
	"github.com/lestrrat-go/pdebug"
	"github.com/peco/sneak/keyseq"
	"github.com/peco/sneak/label"
	"github.com/peco/sneak/match"
	"github.com/peco/sneak/query"
	"github.com/pkg/errors"
)

// New creates a Mode that runs inside host. The Mode starts out
// waiting for the first character of a search key.
func New(host Host, cfg Config) (*Mode, error) {
	if host == nil {
		return nil, errors.New("host is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid sneak configuration")
	}

	return &Mode{
		host:    host,
		config:  cfg,
		acc:     query.NewAccumulator(cfg.Len),
		scanner: match.NewScanner(),
		state:   StateAwaitingKey,
	}, nil
}

// Config returns the configuration the Mode was created with.
func (m *Mode) Config() Config {
	return m.config
}

// Scanner returns the scanner used for searches, so the host can set
// its tab stop to match the way it draws tabs.
func (m *Mode) Scanner() *match.Scanner {
	return m.scanner
}

// Enter starts a new search. The last completed key is kept.
func (m *Mode) Enter() {
	if pdebug.Enabled {
		pdebug.Printf("Mode.Enter")
	}
	m.acc.Reset()
	m.state = StateAwaitingKey
	m.set = nil
	m.labels = nil
	m.result = Action{}
}

// State returns the current state.
func (m *Mode) State() State {
	return m.state
}

// Active reports whether the Mode still wants keys.
func (m *Mode) Active() bool {
	return m.state != StateDone
}

// Result returns the action that ended the last search. It is only
// meaningful in StateDone.
func (m *Mode) Result() Action {
	return m.result
}

// Matches returns the matches of the running search, or nil while the
// key is still being typed.
func (m *Mode) Matches() *match.Set {
	return m.set
}

// Labels returns the live labels while in StateLabeling.
func (m *Mode) Labels() []label.Label {
	if m.state != StateLabeling || m.labels == nil {
		return nil
	}
	return m.labels.Labels()
}

// Pending returns the matches of the partially typed key: the typed
// characters followed by enough characters to fill a whole key.
func (m *Mode) Pending() []match.Match {
	if m.state != StateAwaitingKey || m.acc.Len() == 0 {
		return nil
	}
	return m.scanner.ScanPrefix(m.acc.Pending(), m.acc.Size()-m.acc.Len(), m.host.VisibleText())
}

// Typed returns the characters of the key typed so far.
func (m *Mode) Typed() query.Key {
	return m.acc.Pending()
}

// LastKey returns the last completed search key.
func (m *Mode) LastKey() (query.Key, bool) {
	return m.acc.Last()
}

// NextKey returns the key that selects the next match.
func (m *Mode) NextKey() keyseq.Key {
	return m.config.NextKey
}

// PrevKey returns the key that selects the previous match. Unless one
// was configured it depends on the host's current Alt preference, so
// it is worked out again on every call.
func (m *Mode) PrevKey() keyseq.Key {
	if !m.config.PrevKey.IsZero() {
		return m.config.PrevKey
	}
	if m.host.AltIsReverse() {
		return defaultAltPrevKey
	}
	return defaultPrevKey
}

func (m *Mode) isCycleKey(k keyseq.Key) bool {
	return k.Equals(m.NextKey()) || k.Equals(m.PrevKey())
}

// SendKey hands one key press to the Mode and returns what the host
// should do next. Every key has a defined outcome; keys that mean
// nothing in the current state end the search as documented for that
// state.
func (m *Mode) SendKey(k keyseq.Key) Action {
	if pdebug.Enabled {
		g := pdebug.Marker("Mode.SendKey %s (state=%s)", k, m.state)
		defer g.End()
	}

	switch m.state {
	case StateAwaitingKey:
		return m.awaitKey(k)
	case StateCycling:
		return m.cycle(k)
	case StateLabeling:
		return m.filterLabel(k)
	}
	return Action{Kind: ActionExit}
}

func (m *Mode) awaitKey(k keyseq.Key) Action {
	if m.acc.Len() == 0 && m.isCycleKey(k) {
		if last, ok := m.acc.Last(); ok {
			return m.search(last)
		}
	}

	ch, ok := k.Char()
	if !ok {
		return m.namedKey(k)
	}

	key, done := m.acc.Feed(ch)
	if !done {
		return Action{Kind: ActionStay}
	}
	return m.search(key)
}

// namedKey handles keys that cannot be part of a search key
func (m *Mode) namedKey(k keyseq.Key) Action {
	if k.Key == keyseq.KeyEsc {
		return m.finish(Action{Kind: ActionExit})
	}
	if key, ok := m.acc.Flush(); ok {
		return m.search(key)
	}
	if last, ok := m.acc.Last(); ok {
		return m.search(last)
	}
	return m.finish(Action{Kind: ActionExit})
}

func (m *Mode) search(key query.Key) Action {
	set := match.NewSet(m.scanner.Scan(key, m.host.VisibleText()))
	if pdebug.Enabled {
		pdebug.Printf("Mode.search %q: %d matches", key.String(), set.Len())
	}

	m.set = set
	switch set.Class() {
	case match.ClassNone:
		return m.finish(Action{Kind: ActionExit})
	case match.ClassSingle:
		return m.finish(Action{Kind: ActionSelect, Match: set.Current()})
	}

	if m.config.StartAtCaret {
		if cr, ok := m.host.(CaretReporter); ok {
			set.SeekAfter(cr.Caret())
		}
	}

	if m.config.labelsEnabled(set.Len()) {
		m.labels = label.NewAssigner(m.config.alphabet(), m.config.LabelOverflow)
		m.labels.Assign(set.All())
		m.state = StateLabeling
		return Action{Kind: ActionStay}
	}

	m.state = StateCycling
	return Action{Kind: ActionStay}
}

func (m *Mode) cycle(k keyseq.Key) Action {
	switch {
	case k.Equals(m.NextKey()):
		m.set.Advance(match.Next)
	case k.Equals(m.PrevKey()):
		m.set.Advance(match.Previous)
	default:
		return m.finish(Action{Kind: ActionSelect, Match: m.set.Current()})
	}
	return Action{Kind: ActionStay}
}

func (m *Mode) filterLabel(k keyseq.Key) Action {
	ch, ok := k.Char()
	if !ok {
		return m.finish(Action{Kind: ActionExit})
	}

	out := m.labels.Filter(ch)
	switch out.Kind {
	case label.Resolved:
		return m.finish(Action{Kind: ActionSelect, Match: out.Match})
	case label.Narrowed:
		return Action{Kind: ActionStay}
	}
	return m.finish(Action{Kind: ActionExit})
}

func (m *Mode) finish(a Action) Action {
	if pdebug.Enabled {
		pdebug.Printf("Mode.finish %s", a)
	}
	m.state = StateDone
	m.result = a
	m.host.Emit(a)
	return a
}
