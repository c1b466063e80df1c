// Package app contains the root application model: the query pane on top,
// the results table below it, and a status bar reporting editor mode and
// query outcomes.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sqlpen/sqlpen/internal/config"
	"github.com/sqlpen/sqlpen/internal/db"
	"github.com/sqlpen/sqlpen/internal/editor"
	"github.com/sqlpen/sqlpen/internal/history"
	"github.com/sqlpen/sqlpen/internal/keys"
	"github.com/sqlpen/sqlpen/internal/log"
	"github.com/sqlpen/sqlpen/internal/sqltext"
	"github.com/sqlpen/sqlpen/internal/ui/querypane"
	"github.com/sqlpen/sqlpen/internal/ui/styles"
	"github.com/sqlpen/sqlpen/internal/watcher"
)

// queryTimeout bounds how long a single statement may run.
const queryTimeout = 30 * time.Second

type focusArea int

const (
	focusQuery focusArea = iota
	focusResults
)

// resultsContent tracks what the results table currently shows, since the
// history and table listings reuse the same pane.
type resultsContent int

const (
	contentResults resultsContent = iota
	contentHistory
	contentTables
)

// Messages produced by async commands.
type (
	queryResultMsg struct {
		statement string
		result    *db.Result
		err       error
	}

	dbChangedMsg struct{}

	historyLoadedMsg struct {
		entries []history.Entry
		err     error
	}

	tablesLoadedMsg struct {
		rows [][]string
		err  error
	}
)

// Options configures the root model.
type Options struct {
	Conn    *db.Conn
	History *history.Store // nil disables history
	Config  config.Config
}

// Model is the root application state.
type Model struct {
	conn *db.Conn
	hist *history.Store
	cfg  config.Config

	keys keys.KeyMap
	help help.Model

	query   querypane.Model
	results table.Model
	content resultsContent

	// historyRows backs the table rows while content is contentHistory.
	historyRows []history.Entry
	// tableNames backs the table rows while content is contentTables.
	tableNames []string

	focus  focusArea
	width  int
	height int

	lastStatement string
	lastResult    *db.Result
	lastErr       error
	running       bool
	truncated     int // rows hidden by the result page size

	watcherHandle *watcher.Watcher
	changes       <-chan struct{}
}

// New creates the root model. The file watcher is started here when
// auto-refresh is enabled; init errors are ignored since the app works fine
// without it.
func New(opts Options) Model {
	query := querypane.New()
	query.Focus()
	query.SetHighlight(opts.Config.UI.HighlightSQL)

	var (
		watcherHandle *watcher.Watcher
		changes       <-chan struct{}
	)
	if opts.Config.AutoRefresh && opts.Conn.Path() != "" {
		if w, err := watcher.New(watcher.DefaultConfig(opts.Conn.Path())); err == nil {
			if ch, err := w.Start(); err == nil {
				watcherHandle = w
				changes = ch
			} else {
				_ = w.Stop()
			}
		}
	}

	return Model{
		conn:          opts.Conn,
		hist:          opts.History,
		cfg:           opts.Config,
		keys:          keys.DefaultKeyMap(),
		help:          help.New(),
		query:         query,
		results:       newResultsTable(),
		watcherHandle: watcherHandle,
		changes:       changes,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return waitForChange(m.changes)
}

// waitForChange blocks on the watcher channel and reports a change.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		<-ch
		return dbChangedMsg{}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.applyLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case querypane.SubmitMsg:
		return m.submit(msg.Statement)

	case queryResultMsg:
		return m.handleQueryResult(msg)

	case dbChangedMsg:
		return m.handleDBChanged()

	case historyLoadedMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.showHistory(msg.entries)
		return m, nil

	case tablesLoadedMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.showTables(msg.rows)
		return m, nil
	}

	return m, nil
}

// handleKey routes a key event. Quit is global; everything else depends on
// which pane has focus and, for the query pane, on the editing mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.FocusNext):
		// Tab belongs to the buffer while inserting text.
		if m.focus == focusQuery && m.query.Mode() == editor.ModeInsert {
			break
		}
		m.toggleFocus()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.applyLayout()
		return m, nil

	case key.Matches(msg, m.keys.History):
		if m.hist == nil {
			m.lastErr = errors.New("history is disabled")
			return m, nil
		}
		return m, loadHistoryCmd(m.hist, m.cfg.History.Limit)

	case key.Matches(msg, m.keys.Tables):
		return m, loadTablesCmd(m.conn)
	}

	if m.focus == focusResults {
		return m.handleResultsKey(msg)
	}

	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	return m, cmd
}

// handleResultsKey handles keys while the results table has focus.
func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.toggleFocus()
		return m, nil

	case msg.Type == tea.KeyEnter:
		return m.activateRow()

	case key.Matches(msg, m.keys.RunQuery):
		return m.submit(m.query.Value())
	}

	var cmd tea.Cmd
	m.results, cmd = m.results.Update(msg)
	return m, cmd
}

// activateRow acts on the selected results row. History rows load their
// statement back into the editor; table rows browse the table.
func (m Model) activateRow() (tea.Model, tea.Cmd) {
	idx := m.results.Cursor()

	switch m.content {
	case contentHistory:
		if idx < 0 || idx >= len(m.historyRows) {
			return m, nil
		}
		m.query.SetValue(m.historyRows[idx].Statement)
		m.toggleFocus()
		return m, nil

	case contentTables:
		if idx < 0 || idx >= len(m.tableNames) {
			return m, nil
		}
		statement := fmt.Sprintf("SELECT * FROM %q LIMIT %d", m.tableNames[idx], m.cfg.UI.ResultPageSize)
		m.query.SetValue(statement)
		m.toggleFocus()
		return m.submit(statement)
	}
	return m, nil
}

func (m *Model) toggleFocus() {
	if m.focus == focusQuery {
		m.focus = focusResults
		m.query.Blur()
		m.results.Focus()
	} else {
		m.focus = focusQuery
		m.results.Blur()
		m.query.Focus()
	}
}

// submit starts execution of a statement. Blank buffers are ignored.
func (m Model) submit(statement string) (tea.Model, tea.Cmd) {
	if sqltext.Classify(statement) == sqltext.KindEmpty {
		return m, nil
	}
	m.running = true
	m.lastErr = nil
	return m, executeCmd(m.conn, m.hist, statement, true)
}

// executeCmd runs a statement and records it in history. Auto-refresh
// re-runs pass record=false so refreshes do not pile up as entries.
func executeCmd(conn *db.Conn, hist *history.Store, statement string, record bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		defer cancel()

		res, err := conn.Execute(ctx, statement)

		if record && hist != nil {
			entry := history.Entry{
				Statement: statement,
				Database:  conn.Path(),
			}
			if err != nil {
				entry.Err = err.Error()
			} else {
				entry.DurationMs = res.Duration.Milliseconds()
				if res.Kind == sqltext.KindQuery {
					entry.RowCount = int64(len(res.Rows))
				} else {
					entry.RowCount = res.RowsAffected
				}
			}
			if recErr := hist.Record(&entry); recErr != nil {
				log.ErrorErr(log.CatHistory, "Failed to record history entry", recErr)
			}
		}

		return queryResultMsg{statement: statement, result: res, err: err}
	}
}

func (m Model) handleQueryResult(msg queryResultMsg) (tea.Model, tea.Cmd) {
	m.running = false

	if msg.err != nil {
		m.lastErr = msg.err
		return m, nil
	}

	m.lastErr = nil
	m.lastStatement = msg.statement
	m.lastResult = msg.result
	m.showResult(msg.result)
	return m, nil
}

// handleDBChanged reacts to an external write: the schema cache is dropped
// and the last query re-runs so stale rows do not linger on screen.
func (m Model) handleDBChanged() (tea.Model, tea.Cmd) {
	m.conn.Schema().Invalidate()
	log.Debug(log.CatUI, "Database changed on disk, refreshing")

	cmds := []tea.Cmd{waitForChange(m.changes)}
	if m.lastStatement != "" && m.lastResult != nil && m.lastResult.Kind == sqltext.KindQuery {
		cmds = append(cmds, executeCmd(m.conn, m.hist, m.lastStatement, false))
	}
	return m, tea.Batch(cmds...)
}

// loadHistoryCmd fetches recent history entries.
func loadHistoryCmd(hist *history.Store, limit int) tea.Cmd {
	return func() tea.Msg {
		entries, err := hist.Recent(limit)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

// loadTablesCmd lists tables with column and row counts via the schema
// cache.
func loadTablesCmd(conn *db.Conn) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		defer cancel()

		names, err := conn.Schema().Tables(ctx)
		if err != nil {
			return tablesLoadedMsg{err: err}
		}

		rows := make([][]string, 0, len(names))
		for _, name := range names {
			cols, err := conn.Schema().Columns(ctx, name)
			if err != nil {
				return tablesLoadedMsg{err: err}
			}
			count, err := conn.Schema().RowCount(ctx, name)
			if err != nil {
				return tablesLoadedMsg{err: err}
			}
			rows = append(rows, []string{
				name,
				fmt.Sprintf("%d", len(cols)),
				fmt.Sprintf("%d", count),
			})
		}
		return tablesLoadedMsg{rows: rows}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	queryBorder := styles.PaneBorderStyle
	resultsBorder := styles.PaneBorderStyle
	if m.focus == focusQuery {
		queryBorder = styles.PaneBorderFocusStyle
	} else {
		resultsBorder = styles.PaneBorderFocusStyle
	}

	contentWidth := max(m.width-2, 0)
	queryBox := queryBorder.
		Width(contentWidth).
		Height(m.editorHeight()).
		Render(m.query.View())
	resultsBox := resultsBorder.
		Width(contentWidth).
		Render(m.results.View())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		queryBox,
		resultsBox,
		m.statusView(),
		m.help.View(m.keys),
	)
}

func (m Model) editorHeight() int {
	h := m.cfg.UI.EditorHeight
	if h <= 0 {
		h = 8
	}
	return h
}

// applyLayout distributes the window height between panes. Each bordered
// pane costs two extra rows; the status bar and help line sit below.
func (m *Model) applyLayout() {
	contentWidth := max(m.width-2, 0)
	m.query.SetSize(contentWidth, m.editorHeight())

	helpHeight := lipgloss.Height(m.help.View(m.keys))
	resultsHeight := m.height - m.editorHeight() - 4 - 1 - helpHeight
	if resultsHeight < 1 {
		resultsHeight = 1
	}
	m.results.SetWidth(contentWidth)
	m.results.SetHeight(resultsHeight)
}

// Close releases resources held by the application.
func (m *Model) Close() error {
	if m.watcherHandle != nil {
		return m.watcherHandle.Stop()
	}
	return nil
}
