package keys

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap_Assignments(t *testing.T) {
	k := DefaultKeyMap()

	require.Equal(t, []string{"ctrl+e"}, k.RunQuery.Keys())
	require.Equal(t, []string{"tab"}, k.FocusNext.Keys())
	require.Equal(t, []string{"ctrl+h"}, k.History.Keys())
	require.Equal(t, []string{"ctrl+c"}, k.Quit.Keys())
}

func TestDefaultKeyMap_HelpText(t *testing.T) {
	k := DefaultKeyMap()

	help := k.RunQuery.Help()
	require.Equal(t, "ctrl+e", help.Key)
	require.Equal(t, "run query", help.Desc)
}

func TestKeyMap_HelpViews(t *testing.T) {
	k := DefaultKeyMap()

	require.NotEmpty(t, k.ShortHelp())
	require.NotEmpty(t, k.FullHelp())
	for _, row := range k.FullHelp() {
		require.NotEmpty(t, row)
	}
}
