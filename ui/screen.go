package ui

import (
	"sync"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

func (ctx *PrintCtx) X(v int) *PrintCtx {
	ctx.args.X = v
	return ctx
}

func (ctx *PrintCtx) XOffset(v int) *PrintCtx {
	ctx.args.XOffset = v
	return ctx
}

func (ctx *PrintCtx) Y(v int) *PrintCtx {
	ctx.args.Y = v
	return ctx
}

func (ctx *PrintCtx) Style(v tcell.Style) *PrintCtx {
	ctx.args.Style = v
	return ctx
}

func (ctx *PrintCtx) Msg(v string) *PrintCtx {
	ctx.args.Msg = v
	return ctx
}

func (ctx *PrintCtx) Fill(v bool) *PrintCtx {
	ctx.args.Fill = v
	return ctx
}

// Print draws the message and returns the number of cells written.
func (ctx *PrintCtx) Print() int {
	n := screenPrint(ctx.screen, ctx.tabStop, ctx.args)
	releasePrintArgs(ctx.args)
	return n
}

var printArgsPool = sync.Pool{
	New: allocPrintArgs,
}

func allocPrintArgs() interface{} {
	return &printArgs{}
}

func getPrintArgs() *printArgs {
	return printArgsPool.Get().(*printArgs)
}

func releasePrintArgs(args *printArgs) {
	args.X = 0
	args.XOffset = 0
	args.Y = 0
	args.Style = tcell.StyleDefault
	args.Msg = ""
	args.Fill = false
	printArgsPool.Put(args)
}

// Start begins a print on the viewer's screen.
func (v *Viewer) Start() *PrintCtx {
	return &PrintCtx{
		screen:  v.screen,
		tabStop: v.tabStop,
		args:    getPrintArgs(),
	}
}

// screenPrint draws msg cell by cell. Tabs advance to the next tab
// stop, counted from column XOffset, and wide runes take up as many
// cells as runewidth says.
func screenPrint(s tcell.Screen, tabStop int, args *printArgs) int {
	var written int

	style := args.Style
	msg := args.Msg
	x := args.X
	y := args.Y
	xOffset := args.XOffset
	for len(msg) > 0 {
		c, w := utf8.DecodeRuneInString(msg)
		if c == utf8.RuneError {
			c = '?'
			w = 1
		}
		msg = msg[w:]
		if c == '\t' {
			n := tabStop - (x+xOffset)%tabStop
			for i := 0; i < n; i++ {
				s.SetContent(x+i, y, ' ', nil, style)
			}
			written += n
			x += n
		} else {
			s.SetContent(x, y, c, nil, style)
			n := runewidth.RuneWidth(c)
			x += n
			written += n
		}
	}

	if !args.Fill {
		return written
	}

	width, _ := s.Size()
	for ; x < width; x++ {
		s.SetContent(x, y, ' ', nil, style)
		written++
	}
	return written
}
