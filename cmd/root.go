package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sqlpen/sqlpen/internal/config"
	"github.com/sqlpen/sqlpen/internal/db"
	"github.com/sqlpen/sqlpen/internal/history"
	"github.com/sqlpen/sqlpen/internal/log"
	"github.com/sqlpen/sqlpen/internal/ui/app"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "sqlpen [database]",
	Short:   "A terminal SQLite client with a modal query editor",
	Long:    `A terminal user interface for browsing and querying SQLite databases, with a vim-style modal editor in the query pane.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/sqlpen/config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false,
		"write debug logs to .sqlpen/debug.log")
	rootCmd.Flags().String("connection", "",
		"open a saved connection by name")
	rootCmd.Flags().Bool("read-only", false,
		"open the database read-only")
	rootCmd.Flags().Bool("no-auto-refresh", false,
		"disable automatic refresh when the database file changes")
	rootCmd.Flags().Bool("no-history", false,
		"do not record executed statements")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("auto_refresh", defaults.AutoRefresh)
	viper.SetDefault("ui.show_status_bar", defaults.UI.ShowStatusBar)
	viper.SetDefault("ui.highlight_sql", defaults.UI.HighlightSQL)
	viper.SetDefault("ui.show_row_numbers", defaults.UI.ShowRowNumbers)
	viper.SetDefault("ui.result_page_size", defaults.UI.ResultPageSize)
	viper.SetDefault("ui.editor_height", defaults.UI.EditorHeight)
	viper.SetDefault("history.enabled", defaults.History.Enabled)
	viper.SetDefault("history.limit", defaults.History.Limit)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .sqlpen/config.yaml (current directory)
		// 2. ~/.config/sqlpen/config.yaml (user config)
		if _, err := os.Stat(".sqlpen/config.yaml"); err == nil {
			viper.SetConfigFile(".sqlpen/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "sqlpen"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere; continue with defaults.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// resolveDatabase picks the database path and read-only flag from, in order
// of precedence: the positional argument, --connection, the config file.
func resolveDatabase(cmd *cobra.Command, args []string) (path string, readOnly bool, err error) {
	readOnly = cfg.ReadOnly
	if flagRO, _ := cmd.Flags().GetBool("read-only"); flagRO {
		readOnly = true
	}

	if name, _ := cmd.Flags().GetString("connection"); name != "" {
		conn, ok := cfg.FindConnection(name)
		if !ok {
			return "", false, fmt.Errorf("no saved connection named %q", name)
		}
		return conn.Path, readOnly || conn.ReadOnly, nil
	}

	if len(args) > 0 {
		return args[0], readOnly, nil
	}
	if cfg.Database != "" {
		return cfg.Database, readOnly, nil
	}
	return "", false, fmt.Errorf("no database specified: pass a path, --connection, or set database in the config")
}

func runApp(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if debugEnabled(cmd) {
		_ = os.MkdirAll(".sqlpen", 0o750)
		if cleanup, err := log.InitWithTeaLog(filepath.Join(".sqlpen", "debug.log"), "sqlpen"); err == nil {
			defer cleanup()
		}
	}

	dbPath, readOnly, err := resolveDatabase(cmd, args)
	if err != nil {
		return err
	}

	if noRefresh, _ := cmd.Flags().GetBool("no-auto-refresh"); noRefresh {
		cfg.AutoRefresh = false
	}

	conn, err := db.Open(dbPath, db.Options{ReadOnly: readOnly})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = conn.Close() }()

	hist := openHistory(cmd)
	if hist != nil {
		defer func() { _ = hist.Close() }()
	}

	model := app.New(app.Options{
		Conn:    conn,
		History: hist,
		Config:  cfg,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err = p.Run()

	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// openHistory opens the history store, pruning it to the configured limit.
// Any failure degrades to running without history.
func openHistory(cmd *cobra.Command) *history.Store {
	if noHist, _ := cmd.Flags().GetBool("no-history"); noHist || !cfg.History.Enabled {
		return nil
	}

	path := cfg.History.Path
	if path == "" {
		path = config.DefaultHistoryPath()
	}
	if path == "" {
		return nil
	}

	hist, err := history.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history disabled: %v\n", err)
		return nil
	}
	if cfg.History.Limit > 0 {
		_ = hist.Prune(cfg.History.Limit)
	}
	return hist
}

func debugEnabled(cmd *cobra.Command) bool {
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		return true
	}
	return os.Getenv("SQLPEN_DEBUG") != ""
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
