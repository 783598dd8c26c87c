package label

import (
	"github.com/lestrrat-go/pdebug"
	"github.com/peco/sneak/match"
)

// Assigner hands out labels to matches and narrows them down as label
// characters are typed.
type Assigner struct {
	alphabet  []rune
	overflow  Overflow
	labels    []Label
	unlabeled int
}

// NewAssigner creates an Assigner drawing labels from alphabet. An
// empty alphabet falls back to DefaultAlphabet.
func NewAssigner(alphabet []rune, overflow Overflow) *Assigner {
	if len(alphabet) == 0 {
		alphabet = []rune(DefaultAlphabet)
	}
	a := make([]rune, len(alphabet))
	copy(a, alphabet)
	return &Assigner{
		alphabet: a,
		overflow: overflow,
	}
}

// Alphabet returns a copy of the label characters.
func (a *Assigner) Alphabet() []rune {
	out := make([]rune, len(a.alphabet))
	copy(out, a.alphabet)
	return out
}

// Assign labels matches in document order and makes them the live
// labels. Matches that do not get a label are dropped; Unlabeled
// reports how many.
func (a *Assigner) Assign(matches []match.Match) []Label {
	seq := a.sequence(len(matches))
	a.labels = make([]Label, 0, len(seq))
	for i, ch := range seq {
		a.labels = append(a.labels, Label{Ch: ch, Match: matches[i]})
	}
	a.unlabeled = len(matches) - len(seq)

	if pdebug.Enabled {
		pdebug.Printf("Assigner.Assign: %d labels, %d unlabeled", len(a.labels), a.unlabeled)
	}
	return a.Labels()
}

// Labels returns a copy of the live labels in document order.
func (a *Assigner) Labels() []Label {
	out := make([]Label, len(a.labels))
	copy(out, a.labels)
	return out
}

// Unlabeled returns how many matches were left without a label by the
// last Assign.
func (a *Assigner) Unlabeled() int {
	return a.unlabeled
}

// Lookup returns the matches currently carrying ch.
func (a *Assigner) Lookup(ch rune) []match.Match {
	var out []match.Match
	for _, l := range a.labels {
		if l.Ch == ch {
			out = append(out, l.Match)
		}
	}
	return out
}

// Filter keeps only the matches labeled ch. A single survivor is
// Resolved; several survivors are relabeled and reported as Narrowed.
// When ch is not a live label nothing changes and NoMatch is returned.
func (a *Assigner) Filter(ch rune) Outcome {
	kept := a.Lookup(ch)

	switch len(kept) {
	case 0:
		return Outcome{Kind: NoMatch}
	case 1:
		a.labels = a.labels[:0]
		a.unlabeled = 0
		return Outcome{Kind: Resolved, Match: kept[0]}
	}

	return Outcome{Kind: Narrowed, Labels: a.Assign(kept)}
}

// sequence returns the label characters for total matches, in order.
func (a *Assigner) sequence(total int) []rune {
	size := len(a.alphabet)
	if total <= size || a.overflow != OverflowGroup {
		return a.alphabet[:min(total, size)]
	}

	// The first `groups` characters each label a run of up to `size`
	// matches at the end; the remaining characters label one match each.
	groups := min(total/size, size)
	seq := make([]rune, 0, total)
	seq = append(seq, a.alphabet[groups:]...)
	for _, ch := range a.alphabet[:groups] {
		for i := 0; i < size && len(seq) < total; i++ {
			seq = append(seq, ch)
		}
	}
	return seq[:min(len(seq), total)]
}
