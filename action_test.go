package sneak

import (
	"testing"

	"github.com/peco/sneak/match"
	"github.com/stretchr/testify/require"
)

func TestActionString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "stay", Action{Kind: ActionStay}.String())
	require.Equal(t, "exit", Action{Kind: ActionExit}.String())
	require.Equal(t, "select 2:5", Action{Kind: ActionSelect, Match: match.Match{Line: 2, Byte: 5}}.String())
	require.Equal(t, "ActionKind(9)", ActionKind(9).String())

	require.Equal(t, "awaiting-key", StateAwaitingKey.String())
	require.Equal(t, "labeling", StateLabeling.String())
}

func TestActionSelected(t *testing.T) {
	t.Parallel()

	start, end, ok := Action{Kind: ActionSelect, Match: match.Match{Offset: 10, Size: 2}}.Selected()
	require.True(t, ok)
	require.Equal(t, 10, start)
	require.Equal(t, 12, end)

	_, _, ok = Action{Kind: ActionExit}.Selected()
	require.False(t, ok)
}
