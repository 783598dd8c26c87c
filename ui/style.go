package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/peco/sneak/config"
)

const colorMask = 0x00ffffff

func attributeToColor(a config.Attribute) tcell.Color {
	if a&config.AttrTrueColor != 0 {
		return tcell.NewHexColor(int32(a & colorMask))
	}
	n := int(a & 0x1ff)
	if n == 0 {
		return tcell.ColorDefault
	}
	// palette entries are stored off by one so that zero means default
	return tcell.PaletteColor(n - 1)
}

// tcellStyle converts a configured style into a tcell.Style. Bold,
// underline and reverse may be set on either half of the style.
func tcellStyle(s config.Style) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(attributeToColor(s.Fg)).
		Background(attributeToColor(s.Bg))

	attrs := s.Fg | s.Bg
	if attrs&config.AttrBold != 0 {
		st = st.Bold(true)
	}
	if attrs&config.AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if attrs&config.AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}

type styles struct {
	basic   tcell.Style
	match   tcell.Style
	current tcell.Style
	label   tcell.Style
	pending tcell.Style
	status  tcell.Style
}

func newStyles(ss config.StyleSet) styles {
	return styles{
		basic:   tcellStyle(ss.Basic),
		match:   tcellStyle(ss.Match),
		current: tcellStyle(ss.Current),
		label:   tcellStyle(ss.Label),
		pending: tcellStyle(ss.Pending),
		status:  tcellStyle(ss.Status),
	}
}
