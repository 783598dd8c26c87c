package keyseq

import "strings"

// ModifierKey is a bit set of the modifiers held while a key was pressed.
type ModifierKey int

const (
	ModNone  ModifierKey = 0
	ModAlt   ModifierKey = 1 << 0 // 0x01
	ModCtrl  ModifierKey = 1 << 1 // 0x02
	ModShift ModifierKey = 1 << 2 // 0x04
)

// KeyType identifies a named (non-character) key. The zero value means
// the Key carries a character in Ch instead.
type KeyType uint16

const (
	KeyNone KeyType = iota
	KeyEsc
	KeyEnter
	KeyTab
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Key is a single key press: either a character or a named key, plus
// the modifiers that were held.
type Key struct {
	Modifier ModifierKey // Alt, etc
	Key      KeyType
	Ch       rune
}

// NewRuneKey creates an unmodified character key.
func NewRuneKey(ch rune) Key {
	return Key{Ch: ch}
}

// NewKeyFromKey creates an unmodified named key.
func NewKeyFromKey(k KeyType) Key {
	return Key{
		Modifier: 0,
		Key:      k,
		Ch:       rune(0),
	}
}

// IsZero reports whether k is the zero Key, which is used to mean
// "not configured".
func (k Key) IsZero() bool {
	return k == Key{}
}

// IsNamed reports whether k is a named key such as Esc or F1.
func (k Key) IsNamed() bool {
	return k.Key != KeyNone
}

// Char returns the character typed by k. Keys held with Alt or Ctrl
// are not characters; Shift is ignored since it is already folded into
// the rune.
func (k Key) Char() (rune, bool) {
	if k.Key != KeyNone || k.Ch == 0 {
		return 0, false
	}
	if k.Modifier&(ModAlt|ModCtrl) != 0 {
		return 0, false
	}
	return k.Ch, true
}

// Compare orders keys by modifier, then named key, then character.
func (k Key) Compare(x Key) int {
	if k.Modifier < x.Modifier {
		return -1
	} else if k.Modifier > x.Modifier {
		return 1
	}

	if k.Key < x.Key {
		return -1
	} else if k.Key > x.Key {
		return 1
	}

	if k.Ch < x.Ch {
		return -1
	} else if k.Ch > x.Ch {
		return 1
	}

	return 0
}

// Equals reports whether k and x describe the same key press. Shift
// is not significant for character keys.
func (k Key) Equals(x Key) bool {
	if k.Key == KeyNone && x.Key == KeyNone {
		k.Modifier &^= ModShift
		x.Modifier &^= ModShift
	}
	return k.Compare(x) == 0
}

func (m ModifierKey) String() string {
	var parts []string
	if m&ModCtrl != 0 {
		parts = append(parts, "C")
	}
	if m&ModShift != 0 {
		parts = append(parts, "S")
	}
	if m&ModAlt != 0 {
		parts = append(parts, "M")
	}
	return strings.Join(parts, "-")
}

func (k Key) String() string {
	var s string
	if m := k.Modifier.String(); m != "" {
		s += m + "-"
	}

	if k.Key == KeyNone {
		s += string([]rune{k.Ch})
	} else {
		s += keyToString[k.Key]
	}

	return s
}

// KeyList is just the list of keys
type KeyList []Key

func (kl KeyList) String() string {
	list := make([]string, len(kl))
	for i := range kl {
		list[i] = kl[i].String()
	}
	return strings.Join(list, ",")
}

// Equals reports whether both lists hold the same keys in order.
func (kl KeyList) Equals(x KeyList) bool {
	if len(kl) != len(x) {
		return false
	}

	for i := range kl {
		if !kl[i].Equals(x[i]) {
			return false
		}
	}
	return true
}
