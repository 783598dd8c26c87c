package ui

import (
	"github.com/peco/sneak/keyseq"
	"github.com/pkg/errors"
)

var commands = map[string]Command{
	"viewer.Sneak":     func(v *Viewer) { v.startSneak() },
	"viewer.Quit":      func(v *Viewer) { v.quit = true },
	"viewer.LineDown":  func(v *Viewer) { v.moveLine(1) },
	"viewer.LineUp":    func(v *Viewer) { v.moveLine(-1) },
	"viewer.CharRight": func(v *Viewer) { v.moveChar(1) },
	"viewer.CharLeft":  func(v *Viewer) { v.moveChar(-1) },
	"viewer.PageDown":  func(v *Viewer) { v.moveLine(v.textHeight()) },
	"viewer.PageUp":    func(v *Viewer) { v.moveLine(-v.textHeight()) },
	"viewer.Top":       func(v *Viewer) { v.moveLine(-len(v.lines)) },
	"viewer.Bottom":    func(v *Viewer) { v.moveLine(len(v.lines)) },
	"viewer.Nop":       func(*Viewer) {},
}

var defaultKeyBinding = map[string]string{
	"s":          "viewer.Sneak",
	"q":          "viewer.Quit",
	"C-c":        "viewer.Quit",
	"j":          "viewer.LineDown",
	"ArrowDown":  "viewer.LineDown",
	"k":          "viewer.LineUp",
	"ArrowUp":    "viewer.LineUp",
	"l":          "viewer.CharRight",
	"ArrowRight": "viewer.CharRight",
	"h":          "viewer.CharLeft",
	"ArrowLeft":  "viewer.CharLeft",
	"C-f":        "viewer.PageDown",
	"Pgdn":       "viewer.PageDown",
	"C-b":        "viewer.PageUp",
	"Pgup":       "viewer.PageUp",
	"g":          "viewer.Top",
	"Home":       "viewer.Top",
	"G":          "viewer.Bottom",
	"End":        "viewer.Bottom",
}

// DefaultKeymap returns the keymap used when nothing is configured.
func DefaultKeymap() Keymap {
	km := Keymap{}
	if err := km.Apply(defaultKeyBinding); err != nil {
		panic(err)
	}
	return km
}

// Apply adds bindings from key names to command names, replacing
// existing bindings for the same keys.
func (km Keymap) Apply(bindings map[string]string) error {
	for name, cmdName := range bindings {
		k, err := keyseq.Parse(name)
		if err != nil {
			return errors.Wrapf(err, "invalid key %q in keymap", name)
		}
		cmd, ok := commands[cmdName]
		if !ok {
			return errors.Errorf("unknown command %q bound to %s", cmdName, name)
		}
		km[k] = cmd
	}
	return nil
}

// Lookup returns the command bound to k.
func (km Keymap) Lookup(k keyseq.Key) (Command, bool) {
	cmd, ok := km[k]
	return cmd, ok
}
