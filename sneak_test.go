package sneak_test

import (
	"strings"
	"testing"

	"github.com/peco/sneak"
	"github.com/peco/sneak/internal/mock"
	"github.com/peco/sneak/keyseq"
	"github.com/peco/sneak/label"
	"github.com/peco/sneak/match"
	"github.com/stretchr/testify/require"
)

var (
	keyN    = keyseq.NewRuneKey('n')
	keyPrev = keyseq.NewRuneKey('N')
	keyAltN = keyseq.Key{Modifier: keyseq.ModAlt, Ch: 'n'}
	keyEsc  = keyseq.NewKeyFromKey(keyseq.KeyEsc)
	keyRet  = keyseq.NewKeyFromKey(keyseq.KeyEnter)
)

func newMode(t *testing.T, h sneak.Host, mutate func(*sneak.Config)) *sneak.Mode {
	t.Helper()
	cfg := sneak.NewConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	m, err := sneak.New(h, cfg)
	require.NoError(t, err)
	return m
}

func typeString(m *sneak.Mode, s string) sneak.Action {
	var a sneak.Action
	for _, r := range s {
		a = m.SendKey(keyseq.NewRuneKey(r))
	}
	return a
}

func TestCyclingScenario(t *testing.T) {
	t.Parallel()
	h := mock.NewHost("abcabcabc")
	m := newMode(t, h, nil)

	require.Equal(t, sneak.ActionStay, typeString(m, "a").Kind)
	require.Equal(t, sneak.StateAwaitingKey, m.State())

	require.Equal(t, sneak.ActionStay, typeString(m, "b").Kind)
	require.Equal(t, sneak.StateCycling, m.State())
	require.Equal(t, 3, m.Matches().Len())
	require.Equal(t, 0, m.Matches().Current().Offset)

	require.Equal(t, sneak.ActionStay, m.SendKey(keyN).Kind)
	require.Equal(t, sneak.ActionStay, m.SendKey(keyN).Kind)
	require.Equal(t, 6, m.Matches().Current().Offset)

	a := typeString(m, "x")
	require.Equal(t, sneak.ActionSelect, a.Kind)
	require.Equal(t, 6, a.Match.Offset)
	require.Equal(t, sneak.StateDone, m.State())

	require.Len(t, h.Emitted, 1)
	require.Equal(t, a, h.Emitted[0])
	require.Equal(t, a, m.Result())
}

func TestNoMatchExits(t *testing.T) {
	t.Parallel()
	h := mock.NewHost("abcabcabc")
	m := newMode(t, h, nil)

	a := typeString(m, "xy")
	require.Equal(t, sneak.ActionExit, a.Kind)
	require.Equal(t, sneak.StateDone, m.State())
	require.Equal(t, 0, m.Matches().Len())

	last, ok := h.LastEmitted()
	require.True(t, ok)
	require.Equal(t, sneak.ActionExit, last.Kind)
}

func TestSingleMatchSelectsImmediately(t *testing.T) {
	t.Parallel()
	h := mock.NewHost("abcxyz")
	m := newMode(t, h, func(c *sneak.Config) { c.MinForLabels = 1 })

	typeString(m, "x")
	require.Equal(t, sneak.StateAwaitingKey, m.State())

	a := typeString(m, "y")
	require.Equal(t, sneak.ActionSelect, a.Kind)
	require.Equal(t, 3, a.Match.Offset)
	require.Equal(t, 2, a.Match.Len)
	require.Equal(t, sneak.StateDone, m.State())
	require.Nil(t, m.Labels())
}

func TestPreviousKeyWraps(t *testing.T) {
	t.Parallel()
	h := mock.NewHost("ab ab ab ab")
	m := newMode(t, h, nil)

	typeString(m, "ab")
	m.SendKey(keyPrev)
	require.Equal(t, 3, m.Matches().Index())
	m.SendKey(keyPrev)
	require.Equal(t, 2, m.Matches().Index())
	m.SendKey(keyN)
	require.Equal(t, 3, m.Matches().Index())
}

func TestAltIsReverseIsReadOnEveryKey(t *testing.T) {
	t.Parallel()
	h := mock.NewHost("ab ab ab ab")
	m := newMode(t, h, nil)

	typeString(m, "ab")
	require.Equal(t, keyPrev, m.PrevKey())

	m.SendKey(keyPrev)
	require.Equal(t, 3, m.Matches().Index())

	// the host flips its preference mid-search
	h.AltRev = true
	require.Equal(t, keyAltN, m.PrevKey())

	before := h.Count("AltIsReverse")
	require.Equal(t, sneak.ActionStay, m.SendKey(keyAltN).Kind)
	require.Greater(t, h.Count("AltIsReverse"), before, "preference is queried per keystroke")
	require.Equal(t, 2, m.Matches().Index())

	// "N" is no longer a cycle key, so it selects the current match
	a := m.SendKey(keyPrev)
	require.Equal(t, sneak.ActionSelect, a.Kind)
	require.Equal(t, 6, a.Match.Offset)
}

func TestCustomSelectKeys(t *testing.T) {
	t.Parallel()
	h := mock.NewHost("foo fox foo fog foo")
	m := newMode(t, h, func(c *sneak.Config) {
		c.PrevKey = keyseq.NewRuneKey(';')
		c.NextKey = keyseq.NewRuneKey(',')
		c.Len = 3
	})

	require.Equal(t, sneak.ActionStay, typeString(m, "foo").Kind)
	require.Equal(t, 3, m.Matches().Len())

	m.SendKey(keyseq.NewRuneKey(','))
	require.Equal(t, 8, m.Matches().Current().Offset)
	m.SendKey(keyseq.NewRuneKey(';'))
	m.SendKey(keyseq.NewRuneKey(';'))
	require.Equal(t, 16, m.Matches().Current().Offset)

	a := m.SendKey(keyN)
	require.Equal(t, sneak.ActionSelect, a.Kind, "n is an ordinary key here")
	require.Equal(t, 16, a.Match.Offset)
}

func TestLabelingScenario(t *testing.T) {
	t.Parallel()
	h := mock.NewHost(strings.Repeat("ab ", 10))
	m := newMode(t, h, func(c *sneak.Config) { c.MinForLabels = 8 })

	require.Equal(t, sneak.ActionStay, typeString(m, "ab").Kind)
	require.Equal(t, sneak.StateLabeling, m.State())

	labels := m.Labels()
	require.Len(t, labels, 10)
	seen := map[rune]bool{}
	for _, l := range labels {
		require.False(t, seen[l.Ch], "label %c is not unique", l.Ch)
		require.NotEqual(t, 'n', l.Ch, "cycle keys are not labels")
		seen[l.Ch] = true
	}

	fourth := labels[3]
	a := m.SendKey(keyseq.NewRuneKey(fourth.Ch))
	require.Equal(t, sneak.ActionSelect, a.Kind)
	require.Equal(t, m.Matches().At(3), a.Match)
	require.Equal(t, 9, a.Match.Offset)
}

func TestLabelingBelowThresholdCycles(t *testing.T) {
	t.Parallel()
	h := mock.NewHost(strings.Repeat("ab ", 7))
	m := newMode(t, h, func(c *sneak.Config) { c.MinForLabels = 8 })

	typeString(m, "ab")
	require.Equal(t, sneak.StateCycling, m.State())
	require.Nil(t, m.Labels())
}

func TestLabelingUnknownKeyExits(t *testing.T) {
	t.Parallel()
	for _, k := range []keyseq.Key{keyseq.NewRuneKey('Z'), keyEsc, keyAltN} {
		h := mock.NewHost(strings.Repeat("ab ", 10))
		m := newMode(t, h, func(c *sneak.Config) { c.MinForLabels = 8 })
		typeString(m, "ab")

		a := m.SendKey(k)
		require.Equal(t, sneak.ActionExit, a.Kind, "key %s", k)
		require.Equal(t, sneak.StateDone, m.State())
	}
}

func TestLabelingGroupOverflow(t *testing.T) {
	t.Parallel()
	h := mock.NewHost(strings.Repeat("ab ", 30))
	m := newMode(t, h, func(c *sneak.Config) {
		c.MinForLabels = 8
		c.LabelOverflow = label.OverflowGroup
	})

	typeString(m, "ab")
	require.Len(t, m.Labels(), 30)

	require.Equal(t, sneak.ActionStay, typeString(m, "a").Kind)
	require.Equal(t, sneak.StateLabeling, m.State())
	require.Len(t, m.Labels(), 6)

	a := typeString(m, "c")
	require.Equal(t, sneak.ActionSelect, a.Kind)
	require.Equal(t, 26*3, a.Match.Offset)
}

func TestReuseLastKey(t *testing.T) {
	t.Parallel()
	texts := []string{"abcabcabc", "abc", "xyz", strings.Repeat("ab ", 10)}
	for _, text := range texts {
		for _, cycle := range []keyseq.Key{keyN, keyPrev} {
			h := mock.NewHost(text)
			m := newMode(t, h, nil)
			typeString(m, "ab")
			want := m.Matches().Class()
			wantState := m.State()

			// the same Mode, re-entered, with the same text
			m.Enter()
			require.Equal(t, sneak.StateAwaitingKey, m.State())
			require.Nil(t, m.Matches())
			m.SendKey(cycle)
			require.Equal(t, want, m.Matches().Class(), "text %q", text)
			require.Equal(t, wantState, m.State(), "text %q", text)

			last, ok := m.LastKey()
			require.True(t, ok)
			require.Equal(t, "ab", last.String())
		}
	}
}

func TestCycleKeyWithoutLastKeyStartsAKey(t *testing.T) {
	t.Parallel()
	h := mock.NewHost("no on no")
	m := newMode(t, h, nil)

	require.Equal(t, sneak.ActionStay, m.SendKey(keyN).Kind)
	require.Equal(t, sneak.StateAwaitingKey, m.State())
	typeString(m, "o")
	require.Equal(t, sneak.StateCycling, m.State())
	require.Equal(t, 2, m.Matches().Len())
}

func TestCycleKeyInsideAKeyIsACharacter(t *testing.T) {
	t.Parallel()
	h := mock.NewHost("an an ab")
	m := newMode(t, h, nil)
	typeString(m, "ab")
	m.Enter()

	typeString(m, "a")
	m.SendKey(keyN)
	require.Equal(t, sneak.StateCycling, m.State())
	require.Equal(t, 2, m.Matches().Len(), "searched for \"an\", not the last key")
}

func TestNamedKeysWhileTyping(t *testing.T) {
	t.Parallel()

	t.Run("Esc exits", func(t *testing.T) {
		t.Parallel()
		m := newMode(t, mock.NewHost("abab"), nil)
		typeString(m, "a")
		require.Equal(t, sneak.ActionExit, m.SendKey(keyEsc).Kind)
	})

	t.Run("other key searches the prefix", func(t *testing.T) {
		t.Parallel()
		m := newMode(t, mock.NewHost("axe ab"), func(c *sneak.Config) { c.Len = 3 })
		typeString(m, "a")
		require.Equal(t, sneak.ActionStay, m.SendKey(keyRet).Kind)
		require.Equal(t, sneak.StateCycling, m.State())
		require.Equal(t, 1, m.Matches().Current().Len)

		last, _ := m.LastKey()
		require.Equal(t, "a", last.String())
	})

	t.Run("other key reuses the last key", func(t *testing.T) {
		t.Parallel()
		m := newMode(t, mock.NewHost("abab"), nil)
		typeString(m, "ab")
		m.Enter()
		m.SendKey(keyRet)
		require.Equal(t, sneak.StateCycling, m.State())
		require.Equal(t, 2, m.Matches().Len())
	})

	t.Run("other key without anything exits", func(t *testing.T) {
		t.Parallel()
		m := newMode(t, mock.NewHost("abab"), nil)
		require.Equal(t, sneak.ActionExit, m.SendKey(keyRet).Kind)
		require.Equal(t, sneak.ActionExit, m.SendKey(keyAltN).Kind, "Done ignores further keys")
	})
}

func TestStartAtCaret(t *testing.T) {
	t.Parallel()
	h := mock.NewHost("abcabcabc")
	h.Pos = match.Position{Line: 0, Byte: 4}
	m := newMode(t, h, func(c *sneak.Config) { c.StartAtCaret = true })

	typeString(m, "ab")
	require.Equal(t, 6, m.Matches().Current().Offset)

	h.Pos = match.Position{Line: 0, Byte: 8}
	m.Enter()
	typeString(m, "ab")
	require.Equal(t, 6, m.Matches().Current().Offset, "nothing after the caret picks the last match")
}

func TestDoneIgnoresKeys(t *testing.T) {
	t.Parallel()
	h := mock.NewHost("abc")
	m := newMode(t, h, nil)
	typeString(m, "ab")
	require.Equal(t, sneak.StateDone, m.State())
	require.False(t, m.Active())

	require.Equal(t, sneak.ActionExit, typeString(m, "ab").Kind)
	require.Len(t, h.Emitted, 1, "nothing more is emitted after Done")
}

func TestPending(t *testing.T) {
	t.Parallel()
	h := mock.NewHost("abc abd a")
	m := newMode(t, h, func(c *sneak.Config) { c.Len = 3 })

	require.Nil(t, m.Pending())
	typeString(m, "a")
	require.Len(t, m.Pending(), 2, "the trailing 'a' is too short for a whole key")
	typeString(m, "b")
	require.Len(t, m.Pending(), 2)
	typeString(m, "c")
	require.Nil(t, m.Pending())
}

func TestNewRejectsBadConfig(t *testing.T) {
	t.Parallel()
	h := mock.NewHost("")

	_, err := sneak.New(nil, sneak.NewConfig())
	require.Error(t, err)

	cfg := sneak.NewConfig()
	cfg.Len = 0
	_, err = sneak.New(h, cfg)
	require.Error(t, err)
}
