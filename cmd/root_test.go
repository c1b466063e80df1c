package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlpen/sqlpen/internal/config"
)

// setupConfig resets the package-level config so resolveDatabase can be
// exercised without running the TUI.
func setupConfig(conns ...config.ConnectionConfig) {
	cfg = config.Defaults()
	cfg.Connections = conns
}

func TestResolveDatabase_PositionalArg(t *testing.T) {
	setupConfig()

	path, readOnly, err := resolveDatabase(rootCmd, []string{"/tmp/app.db"})
	require.NoError(t, err)
	require.Equal(t, "/tmp/app.db", path)
	require.False(t, readOnly)
}

func TestResolveDatabase_ConfigFallback(t *testing.T) {
	setupConfig()
	cfg.Database = "/tmp/default.db"

	path, _, err := resolveDatabase(rootCmd, nil)
	require.NoError(t, err)
	require.Equal(t, "/tmp/default.db", path)
}

func TestResolveDatabase_NothingSpecified(t *testing.T) {
	setupConfig()

	_, _, err := resolveDatabase(rootCmd, nil)
	require.ErrorContains(t, err, "no database specified")
}

func TestResolveDatabase_SavedConnection(t *testing.T) {
	setupConfig(config.ConnectionConfig{Name: "app", Path: "/tmp/saved.db", ReadOnly: true})
	require.NoError(t, rootCmd.Flags().Set("connection", "app"))
	t.Cleanup(func() { _ = rootCmd.Flags().Set("connection", "") })

	path, readOnly, err := resolveDatabase(rootCmd, []string{"/tmp/ignored.db"})
	require.NoError(t, err)
	require.Equal(t, "/tmp/saved.db", path)
	// The connection's read_only setting carries over.
	require.True(t, readOnly)
}

func TestResolveDatabase_UnknownConnection(t *testing.T) {
	setupConfig()
	require.NoError(t, rootCmd.Flags().Set("connection", "ghost"))
	t.Cleanup(func() { _ = rootCmd.Flags().Set("connection", "") })

	_, _, err := resolveDatabase(rootCmd, nil)
	require.ErrorContains(t, err, "ghost")
}

func TestResolveDatabase_ReadOnlyFlag(t *testing.T) {
	setupConfig()
	require.NoError(t, rootCmd.Flags().Set("read-only", "true"))
	t.Cleanup(func() { _ = rootCmd.Flags().Set("read-only", "false") })

	_, readOnly, err := resolveDatabase(rootCmd, []string{"/tmp/app.db"})
	require.NoError(t, err)
	require.True(t, readOnly)
}
