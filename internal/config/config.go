// Package config provides configuration types and defaults for sqlpen.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sqlpen/sqlpen/internal/log"
)

// ConnectionConfig defines a single saved database connection.
type ConnectionConfig struct {
	Name     string `mapstructure:"name" yaml:"name"`
	Path     string `mapstructure:"path" yaml:"path"`           // SQLite database file path
	ReadOnly bool   `mapstructure:"read_only" yaml:"read_only"` // Open with mode=ro
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowStatusBar  bool `mapstructure:"show_status_bar"` // Show status bar at bottom
	HighlightSQL   bool `mapstructure:"highlight_sql"`   // Syntax-highlight the query pane
	ShowRowNumbers bool `mapstructure:"show_row_numbers"`
	ResultPageSize int  `mapstructure:"result_page_size"` // Rows shown per results page
	EditorHeight   int  `mapstructure:"editor_height"`    // Query pane height in lines
}

// HistoryConfig holds query history configuration.
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`  // History store location; empty uses the default
	Limit   int    `mapstructure:"limit"` // Entries kept after pruning
}

// Config holds all configuration options for sqlpen.
type Config struct {
	Database    string             `mapstructure:"database"` // Database opened when no argument is given
	ReadOnly    bool               `mapstructure:"read_only"`
	AutoRefresh bool               `mapstructure:"auto_refresh"` // Refresh results when the db file changes
	UI          UIConfig           `mapstructure:"ui"`
	History     HistoryConfig      `mapstructure:"history"`
	Connections []ConnectionConfig `mapstructure:"connections"`
}

// DefaultHistoryPath returns ~/.config/sqlpen/history.db, or empty string if
// the home dir is unavailable.
func DefaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "sqlpen", "history.db")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		AutoRefresh: true,
		UI: UIConfig{
			ShowStatusBar:  true,
			HighlightSQL:   true,
			ShowRowNumbers: false,
			ResultPageSize: 100,
			EditorHeight:   8,
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    "", // Derived from config dir at runtime
			Limit:   1000,
		},
	}
}

// FindConnection returns the saved connection with the given name.
func (c Config) FindConnection(name string) (ConnectionConfig, bool) {
	for _, conn := range c.Connections {
		if conn.Name == name {
			return conn, true
		}
	}
	return ConnectionConfig{}, false
}

// ValidateConnections checks connection configuration for errors.
// Returns nil if connections are valid or empty.
func ValidateConnections(conns []ConnectionConfig) error {
	seen := make(map[string]struct{}, len(conns))
	for i, conn := range conns {
		if conn.Name == "" {
			return fmt.Errorf("connection %d: name is required", i)
		}
		if conn.Path == "" {
			return fmt.Errorf("connection %d (%s): path is required", i, conn.Name)
		}
		if _, dup := seen[conn.Name]; dup {
			return fmt.Errorf("connection %d (%s): duplicate name", i, conn.Name)
		}
		seen[conn.Name] = struct{}{}
	}
	return nil
}

// Validate checks the full configuration for errors.
func (c Config) Validate() error {
	if err := ValidateConnections(c.Connections); err != nil {
		return err
	}
	if c.UI.ResultPageSize < 0 {
		return fmt.Errorf("ui.result_page_size must not be negative, got %d", c.UI.ResultPageSize)
	}
	if c.UI.EditorHeight < 0 {
		return fmt.Errorf("ui.editor_height must not be negative, got %d", c.UI.EditorHeight)
	}
	if c.History.Limit < 0 {
		return fmt.Errorf("history.limit must not be negative, got %d", c.History.Limit)
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# sqlpen Configuration

# Database opened when sqlpen starts without an argument
# database: /path/to/data.db

# Open databases read-only by default
read_only: false

# Auto-refresh results when the database file changes on disk
auto_refresh: true

# UI settings
ui:
  show_status_bar: true   # Show mode/cursor status bar at bottom
  highlight_sql: true     # Syntax-highlight the query pane
  show_row_numbers: false # Prefix result rows with their index
  result_page_size: 100   # Rows shown per results page
  editor_height: 8        # Query pane height in lines

# Query history
history:
  enabled: true
  # path: ~/.config/sqlpen/history.db
  limit: 1000             # Entries kept after pruning

# Saved connections - open by name with 'sqlpen --connection NAME'
# connections:
#   - name: app
#     path: /srv/app/data.db
#   - name: metrics
#     path: /srv/metrics/rollups.db
#     read_only: true
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
