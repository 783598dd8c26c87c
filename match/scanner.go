package match

import (
	"strings"
	"unicode/utf8"

	"github.com/lestrrat-go/pdebug"
)

// Scanner finds occurrences of a key in visible lines. It never looks
// past the lines it is given.
type Scanner struct {
	TabStop int
}

// NewScanner creates a Scanner using DefaultTabStop.
func NewScanner() *Scanner {
	return &Scanner{TabStop: DefaultTabStop}
}

// Scan returns every position where key occurs in lines, in document
// order. The search is exact and case sensitive. Occurrences may
// overlap, but each start position is reported once. Matches never
// span two lines.
func (s *Scanner) Scan(key []rune, lines []Line) []Match {
	if len(key) == 0 {
		return nil
	}
	if pdebug.Enabled {
		g := pdebug.Marker("Scanner.Scan %q over %d lines", string(key), len(lines))
		defer g.End()
	}

	needle := string(key)
	var matches []Match
	for _, l := range lines {
		text := l.Text
		for from := 0; from < len(text); {
			i := strings.Index(text[from:], needle)
			if i < 0 {
				break
			}
			i += from
			matches = append(matches, s.newMatch(l, i, len(key), len(needle)))

			// step one character so overlapping occurrences are found
			_, w := utf8.DecodeRuneInString(text[i:])
			from = i + w
		}
	}
	return matches
}

// ScanPrefix returns every position where prefix occurs followed by at
// least remaining more characters on the same line. The returned
// matches cover the prefix and those characters. It is used to preview
// matches while the key is still being typed.
func (s *Scanner) ScanPrefix(prefix []rune, remaining int, lines []Line) []Match {
	if remaining <= 0 {
		return s.Scan(prefix, lines)
	}
	if len(prefix) == 0 {
		return nil
	}

	needle := string(prefix)
	var matches []Match
	for _, l := range lines {
		text := l.Text
		for from := 0; from < len(text); {
			i := strings.Index(text[from:], needle)
			if i < 0 {
				break
			}
			i += from

			size := len(needle)
			n := 0
			for n < remaining && i+size < len(text) {
				_, w := utf8.DecodeRuneInString(text[i+size:])
				size += w
				n++
			}
			if n < remaining {
				// every later occurrence on this line is shorter still
				break
			}
			matches = append(matches, s.newMatch(l, i, len(prefix)+remaining, size))

			_, w := utf8.DecodeRuneInString(text[i:])
			from = i + w
		}
	}
	return matches
}

func (s *Scanner) newMatch(l Line, at, n, size int) Match {
	return Match{
		Line:   l.Number,
		Byte:   at,
		Offset: l.Offset + at,
		Column: DisplayColumn(l.Text, at, s.TabStop),
		Len:    n,
		Size:   size,
	}
}
