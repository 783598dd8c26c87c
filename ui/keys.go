package ui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/peco/sneak/keyseq"
)

var tcellToKey = map[tcell.Key]keyseq.KeyType{
	tcell.KeyEscape:     keyseq.KeyEsc,
	tcell.KeyEnter:      keyseq.KeyEnter,
	tcell.KeyTab:        keyseq.KeyTab,
	tcell.KeyBackspace:  keyseq.KeyBackspace,
	tcell.KeyBackspace2: keyseq.KeyBackspace,
	tcell.KeyInsert:     keyseq.KeyInsert,
	tcell.KeyDelete:     keyseq.KeyDelete,
	tcell.KeyHome:       keyseq.KeyHome,
	tcell.KeyEnd:        keyseq.KeyEnd,
	tcell.KeyPgUp:       keyseq.KeyPgup,
	tcell.KeyPgDn:       keyseq.KeyPgdn,
	tcell.KeyUp:         keyseq.KeyArrowUp,
	tcell.KeyDown:       keyseq.KeyArrowDown,
	tcell.KeyLeft:       keyseq.KeyArrowLeft,
	tcell.KeyRight:      keyseq.KeyArrowRight,
	tcell.KeyF1:         keyseq.KeyF1,
	tcell.KeyF2:         keyseq.KeyF2,
	tcell.KeyF3:         keyseq.KeyF3,
	tcell.KeyF4:         keyseq.KeyF4,
	tcell.KeyF5:         keyseq.KeyF5,
	tcell.KeyF6:         keyseq.KeyF6,
	tcell.KeyF7:         keyseq.KeyF7,
	tcell.KeyF8:         keyseq.KeyF8,
	tcell.KeyF9:         keyseq.KeyF9,
	tcell.KeyF10:        keyseq.KeyF10,
	tcell.KeyF11:        keyseq.KeyF11,
	tcell.KeyF12:        keyseq.KeyF12,
}

func modifiers(m tcell.ModMask) keyseq.ModifierKey {
	var mod keyseq.ModifierKey
	if m&tcell.ModAlt != 0 {
		mod |= keyseq.ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= keyseq.ModCtrl
	}
	if m&tcell.ModShift != 0 {
		mod |= keyseq.ModShift
	}
	return mod
}

// KeyFromEvent converts a tcell key event into a keyseq.Key. Control
// characters come out as C- plus the lowercase letter, however tcell
// reports them. Shift is dropped from printable runes since it is
// already part of the rune. Keys with no keyseq equivalent report false.
func KeyFromEvent(ev *tcell.EventKey) (keyseq.Key, bool) {
	mod := modifiers(ev.Modifiers())

	if ev.Key() == tcell.KeyRune {
		ch := ev.Rune()
		if mod&keyseq.ModCtrl != 0 {
			ch = unicode.ToLower(ch)
		}
		return keyseq.Key{Modifier: mod &^ keyseq.ModShift, Ch: ch}, true
	}

	// checked before the control range: Tab, Enter and Backspace share
	// their codes with C-i, C-m and C-h
	if k, ok := tcellToKey[ev.Key()]; ok {
		return keyseq.Key{Modifier: mod, Key: k}, true
	}

	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		ch := 'a' + rune(ev.Key()-tcell.KeyCtrlA)
		return keyseq.Key{Modifier: (mod | keyseq.ModCtrl) &^ keyseq.ModShift, Ch: ch}, true
	}

	return keyseq.Key{}, false
}
