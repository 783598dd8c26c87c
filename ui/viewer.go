package ui

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/lestrrat-go/pdebug"
	"github.com/peco/sneak"
	"github.com/peco/sneak/config"
	"github.com/peco/sneak/keyseq"
	"github.com/peco/sneak/match"
	"github.com/pkg/errors"
)

// NewViewer creates a Viewer showing text on screen. The screen must
// already be initialized.
func NewViewer(screen tcell.Screen, text string, cfg *config.Config) (*Viewer, error) {
	mc, err := cfg.ModeConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to configure sneak mode")
	}

	tabStop := cfg.TabStop
	if tabStop < 1 {
		tabStop = match.DefaultTabStop
	}

	lines := match.SplitLines(text, 0, 0)
	if len(lines) == 0 {
		lines = []match.Line{{}}
	}

	keymap := DefaultKeymap()
	if err := keymap.Apply(cfg.Keymap); err != nil {
		return nil, errors.Wrap(err, "failed to apply keymap")
	}

	v := &Viewer{
		screen:    screen,
		lines:     lines,
		keymap:    keymap,
		styles:    newStyles(cfg.Style),
		tabStop:   tabStop,
		altRev:    cfg.AltIsReverse,
		errWriter: os.Stderr,
	}

	mode, err := sneak.New(v, mc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create sneak mode")
	}
	mode.Scanner().TabStop = tabStop
	v.mode = mode
	return v, nil
}

// Mode returns the hosted sneak mode.
func (v *Viewer) Mode() *sneak.Mode {
	return v.mode
}

// Caret returns the caret position. It implements sneak.CaretReporter.
func (v *Viewer) Caret() match.Position {
	return v.caret.Pos()
}

// Sneaking reports whether a search is in progress.
func (v *Viewer) Sneaking() bool {
	return v.sneaking
}

// Status returns the message shown after the last search.
func (v *Viewer) Status() string {
	return v.status
}

// Top returns the first line on screen.
func (v *Viewer) Top() int {
	return v.top
}

func (v *Viewer) textHeight() int {
	_, h := v.screen.Size()
	// the last row holds the status line
	return max(h-1, 1)
}

// VisibleText returns the lines on screen. It implements sneak.Host.
func (v *Viewer) VisibleText() []match.Line {
	end := min(v.top+v.textHeight(), len(v.lines))
	return v.lines[v.top:end]
}

// AltIsReverse implements sneak.Host.
func (v *Viewer) AltIsReverse() bool {
	return v.altRev
}

// SetAltIsReverse changes which key moves to the previous match. It
// takes effect on the next key, even in the middle of a search.
func (v *Viewer) SetAltIsReverse(b bool) {
	v.altRev = b
}

// Emit implements sneak.Host. A selection moves the caret to the start
// of the match.
func (v *Viewer) Emit(a sneak.Action) {
	if pdebug.Enabled {
		pdebug.Printf("Viewer.Emit %s", a)
	}

	switch a.Kind {
	case sneak.ActionSelect:
		v.caret.SetPos(a.Match.Position())
		v.scrollToCaret()
		v.status = "jumped"
	case sneak.ActionExit:
		v.status = "no match"
	}
}

// HandleKey runs one key through the active search, or through the
// keymap when no search is running.
func (v *Viewer) HandleKey(k keyseq.Key) {
	if v.sneaking {
		if a := v.mode.SendKey(k); a.Kind != sneak.ActionStay {
			v.sneaking = false
		}
		return
	}

	if cmd, ok := v.keymap.Lookup(k); ok {
		cmd(v)
	}
}

func (v *Viewer) startSneak() {
	v.mode.Enter()
	v.sneaking = true
	v.status = ""
}

func (v *Viewer) moveLine(n int) {
	pos := v.caret.Pos()
	pos.Line = max(0, min(pos.Line+n, len(v.lines)-1))
	pos.Byte = min(pos.Byte, len(v.lines[pos.Line].Text))
	v.caret.SetPos(pos)
	v.scrollToCaret()
}

func (v *Viewer) moveChar(n int) {
	pos := v.caret.Pos()
	text := v.lines[pos.Line].Text
	for ; n > 0 && pos.Byte < len(text); n-- {
		_, w := utf8.DecodeRuneInString(text[pos.Byte:])
		pos.Byte += w
	}
	for ; n < 0 && pos.Byte > 0; n++ {
		_, w := utf8.DecodeLastRuneInString(text[:pos.Byte])
		pos.Byte -= w
	}
	v.caret.SetPos(pos)
}

func (v *Viewer) scrollToCaret() {
	line := v.caret.Pos().Line
	h := v.textHeight()
	switch {
	case line < v.top:
		v.top = line
	case line >= v.top+h:
		v.top = line - h + 1
	}
}

// Draw paints the visible text, the state of a running search and the
// status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	visible := v.VisibleText()
	for y, l := range visible {
		v.Start().Y(y).Style(v.styles.basic).Msg(l.Text).Print()
	}

	if v.sneaking {
		v.drawSearch()
	}

	pos := v.caret.Pos()
	if row := pos.Line - v.top; row >= 0 && row < len(visible) {
		v.screen.ShowCursor(match.DisplayColumn(v.lines[pos.Line].Text, pos.Byte, v.tabStop), row)
	} else {
		v.screen.HideCursor()
	}

	v.Start().Y(v.textHeight()).Style(v.styles.status).Msg(v.statusLine()).Fill(true).Print()
	v.screen.Show()
}

func (v *Viewer) drawSearch() {
	switch v.mode.State() {
	case sneak.StateAwaitingKey:
		for _, m := range v.mode.Pending() {
			v.paintMatch(m, v.styles.pending)
		}
	case sneak.StateCycling:
		set := v.mode.Matches()
		for i, m := range set.All() {
			st := v.styles.match
			if i == set.Index() {
				st = v.styles.current
			}
			v.paintMatch(m, st)
		}
	case sneak.StateLabeling:
		for _, l := range v.mode.Labels() {
			v.paintMatch(l.Match, v.styles.match)
			v.Start().X(l.Match.Column).Y(l.Match.Line - v.top).Style(v.styles.label).Msg(string(l.Ch)).Print()
		}
	}
}

func (v *Viewer) paintMatch(m match.Match, st tcell.Style) {
	text := v.lines[m.Line].Text
	v.Start().X(m.Column).Y(m.Line - v.top).Style(st).Msg(text[m.Byte : m.Byte+m.Size]).Print()
}

func (v *Viewer) statusLine() string {
	if !v.sneaking {
		pos := v.caret.Pos()
		col := match.DisplayColumn(v.lines[pos.Line].Text, pos.Byte, v.tabStop)
		if v.status != "" {
			return fmt.Sprintf(" %d:%d  %s", pos.Line+1, col+1, v.status)
		}
		return fmt.Sprintf(" %d:%d  s: sneak  q: quit", pos.Line+1, col+1)
	}

	switch v.mode.State() {
	case sneak.StateCycling:
		set := v.mode.Matches()
		last, _ := v.mode.LastKey()
		return fmt.Sprintf(" sneak %q  %d/%d  %s/%s", last.String(), set.Index()+1, set.Len(), v.mode.NextKey(), v.mode.PrevKey())
	case sneak.StateLabeling:
		last, _ := v.mode.LastKey()
		return fmt.Sprintf(" sneak %q  %d labels", last.String(), len(v.mode.Labels()))
	}
	return fmt.Sprintf(" sneak: %s", v.mode.Typed().String())
}

// PollEvent returns a channel of the screen's events. The polling is
// done in a separate goroutine, which stops when ctx is canceled or the
// screen is finalized.
func (v *Viewer) PollEvent(ctx context.Context) chan tcell.Event {
	evCh := make(chan tcell.Event)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				fmt.Fprintf(v.errWriter, "sneak: panic in PollEvent goroutine: %v\n%s", r, debug.Stack())
			}
			close(evCh)
		}()

		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}

			select {
			case <-ctx.Done():
				return
			case evCh <- ev:
			}
		}
	}()
	return evCh
}

// Loop draws the viewer and handles events until the user quits, the
// screen goes away or ctx is canceled.
func (v *Viewer) Loop(ctx context.Context) error {
	if pdebug.Enabled {
		g := pdebug.Marker("Viewer.Loop")
		defer g.End()
	}

	evCh := v.PollEvent(ctx)
	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-evCh:
			if !ok {
				return nil
			}

			switch ev := ev.(type) {
			case *tcell.EventKey:
				if k, ok := KeyFromEvent(ev); ok {
					v.HandleKey(k)
				}
			case *tcell.EventResize:
				v.screen.Sync()
				v.scrollToCaret()
			}

			if v.quit {
				return nil
			}
			v.Draw()
		}
	}
}
