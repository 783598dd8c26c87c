package match

import "github.com/google/btree"

// Class groups match sets by size, which decides what happens after a
// search completes.
type Class int

const (
	ClassNone     Class = iota // nothing matched
	ClassSingle                // exactly one match, selected immediately
	ClassMultiple              // needs cycling or labels
)

func (c Class) String() string {
	switch c {
	case ClassNone:
		return "none"
	case ClassSingle:
		return "single"
	case ClassMultiple:
		return "multiple"
	}
	return "unknown"
}

// Direction is the way Advance moves the current match.
type Direction int

const (
	Next Direction = iota
	Previous
)

// item orders a match's position inside the btree index
type item struct {
	pos Position
	idx int
}

// Less implements the btree.Item interface
func (it item) Less(than btree.Item) bool {
	return it.pos.Compare(than.(item).pos) < 0
}

// Set is the ordered result of one search plus the index of the
// current match. When the Set is not empty the current index is always
// valid.
type Set struct {
	matches []Match
	current int
	index   *btree.BTree
}

// NewSet creates a Set over matches, which must be in document order.
// The current match is the first one.
func NewSet(matches []Match) *Set {
	s := &Set{
		matches: make([]Match, len(matches)),
		index:   btree.New(32),
	}
	copy(s.matches, matches)
	for i, m := range s.matches {
		s.index.ReplaceOrInsert(item{pos: m.Position(), idx: i})
	}
	return s
}

// Class returns the size class of the set.
func (s *Set) Class() Class {
	switch len(s.matches) {
	case 0:
		return ClassNone
	case 1:
		return ClassSingle
	}
	return ClassMultiple
}

// Len returns the number of matches.
func (s *Set) Len() int {
	return len(s.matches)
}

// At returns the i-th match in document order.
func (s *Set) At(i int) Match {
	return s.matches[i]
}

// All returns a copy of the matches in document order.
func (s *Set) All() []Match {
	out := make([]Match, len(s.matches))
	copy(out, s.matches)
	return out
}

// Index returns the index of the current match.
func (s *Set) Index() int {
	return s.current
}

// Current returns the current match. It must not be called on an
// empty Set.
func (s *Set) Current() Match {
	return s.matches[s.current]
}

// Advance moves the current match one step in the given direction,
// wrapping around at either end. It is a no-op on an empty Set.
func (s *Set) Advance(dir Direction) {
	n := len(s.matches)
	if n == 0 {
		return
	}
	switch dir {
	case Previous:
		s.current = (s.current - 1 + n) % n
	default:
		s.current = (s.current + 1) % n
	}
}

// SetCurrent makes the i-th match current. Out of range values are
// ignored and false is returned.
func (s *Set) SetCurrent(i int) bool {
	if i < 0 || i >= len(s.matches) {
		return false
	}
	s.current = i
	return true
}

// SeekAfter makes the first match that starts after pos current. When
// no match starts after pos, the last match becomes current. It returns
// the new current index.
func (s *Set) SeekAfter(pos Position) int {
	if len(s.matches) == 0 {
		return 0
	}

	found := -1
	s.index.AscendGreaterOrEqual(item{pos: pos}, func(it btree.Item) bool {
		v := it.(item)
		if v.pos.Compare(pos) == 0 {
			return true
		}
		found = v.idx
		return false
	})
	if found < 0 {
		found = len(s.matches) - 1
	}
	s.current = found
	return found
}
