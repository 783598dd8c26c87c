package keyseq

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

var stringToKey = map[string]KeyType{}
var keyToString = map[KeyType]string{}

func mapkey(n string, k KeyType) {
	stringToKey[n] = k
	// key->string can only have one mapping
	if _, ok := keyToString[k]; !ok {
		keyToString[k] = n
	}
}

func init() {
	for i := 0; i < 12; i++ {
		mapkey(fmt.Sprintf("F%d", i+1), KeyF1+KeyType(i))
	}

	mapkey("Esc", KeyEsc)
	mapkey("Enter", KeyEnter)
	mapkey("Tab", KeyTab)
	mapkey("BS", KeyBackspace)
	mapkey("Insert", KeyInsert)
	mapkey("Delete", KeyDelete)
	mapkey("Home", KeyHome)
	mapkey("End", KeyEnd)
	mapkey("Pgup", KeyPgup)
	mapkey("Pgdn", KeyPgdn)
	mapkey("ArrowUp", KeyArrowUp)
	mapkey("ArrowDown", KeyArrowDown)
	mapkey("ArrowLeft", KeyArrowLeft)
	mapkey("ArrowRight", KeyArrowRight)

	// aliases
	mapkey("Escape", KeyEsc)
	mapkey("Backspace", KeyBackspace)
}

var modifierPrefixes = []struct {
	prefix string
	mod    ModifierKey
}{
	{"M-", ModAlt},
	{"A-", ModAlt},
	{"C-", ModCtrl},
	{"S-", ModShift},
}

// Parse converts a key name such as "n", "N", "M-n", "C-x", "Esc" or
// "S-ArrowUp" into a Key. "Space" is accepted for the space character.
func Parse(name string) (Key, error) {
	var key Key
	rest := name

OUTER:
	for {
		for _, p := range modifierPrefixes {
			if strings.HasPrefix(rest, p.prefix) && len(rest) > len(p.prefix) {
				key.Modifier |= p.mod
				rest = rest[len(p.prefix):]
				continue OUTER
			}
		}
		break
	}

	if rest == "" {
		return Key{}, errors.Errorf("empty key name in %q", name)
	}

	if rest == "Space" {
		key.Ch = ' '
		return key, nil
	}

	if k, ok := stringToKey[rest]; ok {
		key.Key = k
		return key, nil
	}

	// If this is a single rune, just allow it
	ch, size := utf8.DecodeRuneInString(rest)
	if ch == utf8.RuneError || size != len(rest) {
		return Key{}, errors.Errorf("no such key %s", name)
	}
	key.Ch = ch
	return key, nil
}

// ParseList converts a comma separated list of key names.
func ParseList(ksk string) (KeyList, error) {
	list := KeyList{}
	for _, term := range strings.Split(ksk, ",") {
		term = strings.TrimSpace(term)

		k, err := Parse(term)
		if err != nil {
			return list, errors.Wrapf(err, "failed to convert '%s'", term)
		}

		list = append(list, k)
	}
	return list, nil
}
