package ui

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/peco/sneak"
	"github.com/peco/sneak/keyseq"
	"github.com/peco/sneak/match"
)

// Viewer is a read-only terminal file viewer. It hosts a sneak.Mode:
// the visible part of the file is what the mode searches, and a
// selected match moves the caret.
type Viewer struct {
	screen  tcell.Screen
	lines   []match.Line
	top     int
	caret   Caret
	mode    *sneak.Mode
	keymap  Keymap
	styles  styles
	tabStop int
	altRev  bool

	sneaking bool
	status   string
	quit     bool

	errWriter io.Writer // destination for panics in the poll goroutine
}

// Caret is the position of the cursor in the document.
type Caret struct {
	mutex sync.Mutex
	pos   match.Position
}

// Command is something the viewer does in response to a key outside
// of a search.
type Command func(*Viewer)

// Keymap binds keys to viewer commands.
type Keymap map[keyseq.Key]Command

// PrintCtx builds a single call to print a string on the screen.
type PrintCtx struct {
	screen  tcell.Screen
	tabStop int
	args    *printArgs
}

type printArgs struct {
	X       int
	XOffset int
	Y       int
	Style   tcell.Style
	Msg     string
	Fill    bool
}
