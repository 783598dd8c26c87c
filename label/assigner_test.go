package label

import (
	"strings"
	"testing"

	"github.com/peco/sneak/match"
	"github.com/stretchr/testify/require"
)

func matchesIn(t *testing.T, text, key string) []match.Match {
	t.Helper()
	return match.NewScanner().Scan([]rune(key), match.SplitLines(text, 0, 0))
}

func labelChars(labels []Label) string {
	var sb strings.Builder
	for _, l := range labels {
		sb.WriteRune(l.Ch)
	}
	return sb.String()
}

func TestAlphabet(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		chars    string
		reserved []rune
		want     string
	}{
		{"default", DefaultAlphabet, nil, DefaultAlphabet},
		{"cycle key removed", DefaultAlphabet, []rune{'n', 'N'}, "abcdefghijklmopqrstuvwxyz"},
		{"duplicates removed", "asdfasdf", nil, "asdf"},
		{"everything reserved", "ab", []rune{'a', 'b'}, ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, string(Alphabet(tt.chars, tt.reserved...)))
		})
	}
}

func TestAssignUniqueInDocumentOrder(t *testing.T) {
	t.Parallel()
	ms := matchesIn(t, strings.Repeat("ab ", 10), "ab")
	require.Len(t, ms, 10)

	a := NewAssigner(Alphabet(DefaultAlphabet, 'n'), OverflowTruncate)
	labels := a.Assign(ms)
	require.Len(t, labels, 10)
	require.Equal(t, "abcdefghij", labelChars(labels))

	seen := map[rune]bool{}
	for i, l := range labels {
		require.False(t, seen[l.Ch], "label %c assigned twice", l.Ch)
		seen[l.Ch] = true
		require.Equal(t, ms[i], l.Match, "labels follow document order")
	}
	require.Equal(t, 0, a.Unlabeled())
}

func TestAssignTruncatesToAlphabet(t *testing.T) {
	t.Parallel()
	ms := matchesIn(t, strings.Repeat("x", 11), "x")
	a := NewAssigner([]rune("abc"), OverflowTruncate)
	labels := a.Assign(ms)
	require.Equal(t, "abc", labelChars(labels))
	require.Equal(t, 8, a.Unlabeled())
	require.Equal(t, ms[2], labels[2].Match)

	out := a.Filter('c')
	require.Equal(t, Resolved, out.Kind)
	require.Equal(t, ms[2], out.Match)
}

func TestFilterResolves(t *testing.T) {
	t.Parallel()
	ms := matchesIn(t, strings.Repeat("ab ", 10), "ab")
	a := NewAssigner(nil, OverflowTruncate)
	a.Assign(ms)

	out := a.Filter('d')
	require.Equal(t, Resolved, out.Kind)
	require.Equal(t, ms[3], out.Match, "label of match #4 resolves to match #4")
	require.Empty(t, a.Labels())
}

func TestFilterNoMatch(t *testing.T) {
	t.Parallel()
	ms := matchesIn(t, strings.Repeat("ab ", 5), "ab")
	a := NewAssigner(nil, OverflowTruncate)
	a.Assign(ms)

	for _, ch := range []rune{'z', 'f', 'A', '1'} {
		out := a.Filter(ch)
		require.Equal(t, NoMatch, out.Kind, "%c is not a live label", ch)
	}
	require.Len(t, a.Labels(), 5, "a miss leaves labels untouched")
}

func TestAssignGroupOverflow(t *testing.T) {
	t.Parallel()
	ms := matchesIn(t, strings.Repeat("x", 30), "x")
	a := NewAssigner(nil, OverflowGroup)
	labels := a.Assign(ms)
	require.Len(t, labels, 30)
	require.Equal(t, "bcdefghijklmnopqrstuvwxyz"+"aaaaa", labelChars(labels))

	out := a.Filter('a')
	require.Equal(t, Narrowed, out.Kind)
	require.Equal(t, "abcde", labelChars(out.Labels))
	require.Equal(t, ms[25], out.Labels[0].Match)
	require.Equal(t, ms[29], out.Labels[4].Match)

	out = a.Filter('c')
	require.Equal(t, Resolved, out.Kind)
	require.Equal(t, ms[27], out.Match)
}

func TestAssignGroupOverflowResolvesAfterManySteps(t *testing.T) {
	t.Parallel()
	alphabet := []rune("ab")
	ms := matchesIn(t, strings.Repeat("x", 4), "x")
	a := NewAssigner(alphabet, OverflowGroup)

	// 4 matches over 2 characters: both characters label a group of two
	require.Equal(t, "aabb", labelChars(a.Assign(ms)))

	out := a.Filter('b')
	require.Equal(t, Narrowed, out.Kind)
	require.Equal(t, "ab", labelChars(out.Labels))

	out = a.Filter('a')
	require.Equal(t, Resolved, out.Kind)
	require.Equal(t, ms[2], out.Match)
}

func TestAssignGroupOverflowIsBounded(t *testing.T) {
	t.Parallel()
	ms := matchesIn(t, strings.Repeat("x", 7), "x")
	a := NewAssigner([]rune("ab"), OverflowGroup)
	labels := a.Assign(ms)
	require.Len(t, labels, 4, "two groups of two is all two characters can reach")
	require.Equal(t, 3, a.Unlabeled())
}

func TestOverflowUnmarshal(t *testing.T) {
	t.Parallel()
	var o Overflow
	require.NoError(t, o.UnmarshalText([]byte("group")))
	require.Equal(t, OverflowGroup, o)
	require.NoError(t, o.UnmarshalFlag(""))
	require.Equal(t, OverflowTruncate, o)
	require.Error(t, o.UnmarshalText([]byte("nope")))
	require.Equal(t, "group", OverflowGroup.String())
}
