package query

// Key is a completed search key: the characters typed after entering
// the mode, in order.
type Key []rune

func (k Key) String() string {
	return string(k)
}

// Len returns the number of characters in the key.
func (k Key) Len() int {
	return len(k)
}

// Equal reports whether k and x hold the same characters.
func (k Key) Equal(x Key) bool {
	if len(k) != len(x) {
		return false
	}
	for i := range k {
		if k[i] != x[i] {
			return false
		}
	}
	return true
}

func (k Key) clone() Key {
	out := make(Key, len(k))
	copy(out, k)
	return out
}

// Accumulator collects a fixed number of characters into a Key. It
// remembers the last key it completed so that a later search can reuse
// it without typing it again.
//
// Accumulator is not safe for concurrent use; it is driven by a single
// input loop.
type Accumulator struct {
	size int
	buf  []rune
	last Key
}

// NewAccumulator creates an Accumulator that completes a Key every size
// characters. Sizes below 1 are treated as 1.
func NewAccumulator(size int) *Accumulator {
	if size < 1 {
		size = 1
	}
	return &Accumulator{
		size: size,
		buf:  make([]rune, 0, size),
	}
}

// Size returns the length of a completed key.
func (a *Accumulator) Size() int {
	return a.size
}

// Len returns the number of characters buffered so far.
func (a *Accumulator) Len() int {
	return len(a.buf)
}

// Feed appends ch to the buffer. Once the buffer holds Size characters
// the completed Key is returned with true, the buffer is emptied and the
// key is remembered as the last key.
func (a *Accumulator) Feed(ch rune) (Key, bool) {
	a.buf = append(a.buf, ch)
	if len(a.buf) < a.size {
		return nil, false
	}
	return a.complete(), true
}

// Flush completes the key early with whatever has been buffered. It
// returns false when nothing was buffered.
func (a *Accumulator) Flush() (Key, bool) {
	if len(a.buf) == 0 {
		return nil, false
	}
	return a.complete(), true
}

func (a *Accumulator) complete() Key {
	k := Key(a.buf).clone()
	a.buf = a.buf[:0]
	a.last = k
	return k.clone()
}

// Pending returns a copy of the characters buffered so far.
func (a *Accumulator) Pending() Key {
	return Key(a.buf).clone()
}

// Last returns the last completed key, if any.
func (a *Accumulator) Last() (Key, bool) {
	if a.last == nil {
		return nil, false
	}
	return a.last.clone(), true
}

// Reset drops any buffered characters. The last completed key is kept.
func (a *Accumulator) Reset() {
	a.buf = a.buf[:0]
}
