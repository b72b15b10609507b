// ============================================================================
// pyanalyzer (pyan) - Analysewerkzeug fuer Python-aehnlichen Quelltext
// ============================================================================
//
// Package:     explorer
// Description: Main Bubbletea model for the pyan Explorer
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package explorer

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/msto63/pyanalyzer/foundation/pylang"
	"github.com/msto63/pyanalyzer/foundation/pylang/ast"
	"github.com/msto63/pyanalyzer/foundation/pylang/symtab"
	"github.com/msto63/pyanalyzer/foundation/pylang/token"

	mdwerror "github.com/msto63/pyanalyzer/foundation/core/error"
	mdwlog "github.com/msto63/pyanalyzer/foundation/core/log"
	mdwstringx "github.com/msto63/pyanalyzer/foundation/utils/stringx"
)

// Tab identifies one view of the explorer
type Tab int

const (
	TabTokens Tab = iota
	TabSymbols
	TabTree
	TabDiagnostics
)

var tabNames = [...]string{"Tokens", "Symbole", "Parse-Baum", "Fehler"}

func (t Tab) String() string {
	if t < 0 || int(t) >= len(tabNames) {
		return "Tab(" + strconv.Itoa(int(t)) + ")"
	}
	return tabNames[t]
}

// Config holds Explorer configuration
type Config struct {
	// Path is the analyzed file. When empty, Source is analyzed instead
	// and reloading re-runs the same text.
	Path     string
	Source   string
	Watch    bool
	Analyzer pylang.Options
	Logger   *mdwlog.Logger
}

// Model is the main Bubbletea model for the Explorer
type Model struct {
	// State
	width     int
	height    int
	ready     bool
	loading   bool
	filtering bool
	err       error
	tab       Tab
	runs      int

	// Components
	tokenTable  table.Model
	symbolTable table.Model
	viewport    viewport.Model
	spinner     spinner.Model
	filter      textinput.Model

	// Analysis
	cfg      Config
	analyzer *pylang.Analyzer
	result   *pylang.Result
	watcher  *fileWatcher
	logger   *mdwlog.Logger
}

// New creates a new Explorer model
func New(cfg Config) (Model, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = mdwlog.GetDefault()
	}
	opts := cfg.Analyzer
	if opts.Logger == nil {
		opts.Logger = logger
	}
	analyzer, err := pylang.New(opts)
	if err != nil {
		return Model{}, err
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	filter := textinput.New()
	filter.Placeholder = "Filter (unscharf)..."
	filter.Prompt = "/ "
	filter.CharLimit = 64
	filter.Width = 30

	tokenTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Zeile", Width: 6},
			{Title: "Spalte", Width: 6},
			{Title: "Lexem", Width: 24},
			{Title: "Art", Width: 22},
		}),
		table.WithFocused(true),
	)
	tokenTable.SetStyles(tableStyles())

	symbolTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 5},
			{Title: "Bezeichner", Width: 24},
			{Title: "Typ", Width: 10},
			{Title: "Wert", Width: 30},
		}),
		table.WithFocused(true),
	)
	symbolTable.SetStyles(tableStyles())

	return Model{
		loading:     true,
		spinner:     sp,
		filter:      filter,
		tokenTable:  tokenTable,
		symbolTable: symbolTable,
		cfg:         cfg,
		analyzer:    analyzer,
		logger:      logger.WithField("component", "explorer"),
	}, nil
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, m.analyze}
	if m.watcher != nil {
		cmds = append(cmds, m.watcher.wait())
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			return m.handleFilterKey(msg)
		}
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case analyzedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.result = msg.result
			m.runs++
			m.logger.Debug("source analyzed", mdwlog.Fields{
				"run_id": msg.result.RunID,
				"errors": msg.result.ErrorCount(),
			})
		}
		m.refresh()

	case fileChangedMsg:
		m.loading = true
		cmds = append(cmds, m.analyze, m.spinner.Tick)
		if m.watcher != nil {
			cmds = append(cmds, m.watcher.wait())
		}

	case watchErrMsg:
		m.err = msg.err
		if m.watcher != nil {
			cmds = append(cmds, m.watcher.wait())
		}
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input outside the filter
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "tab", "right":
		m.setTab((m.tab + 1) % Tab(len(tabNames)))
		return m, nil

	case "shift+tab", "left":
		m.setTab((m.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames)))
		return m, nil

	case "1", "2", "3", "4":
		m.setTab(Tab(msg.String()[0] - '1'))
		return m, nil

	case "/":
		m.filtering = true
		return m, m.filter.Focus()

	case "r":
		m.loading = true
		return m, tea.Batch(m.analyze, m.spinner.Tick)
	}

	// Forward navigation keys to the active component
	var cmd tea.Cmd
	switch m.tab {
	case TabTokens:
		m.tokenTable, cmd = m.tokenTable.Update(msg)
	case TabSymbols:
		m.symbolTable, cmd = m.symbolTable.Update(msg)
	default:
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

// handleFilterKey handles keyboard input while the filter is focused
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		return m, nil

	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.refresh()
	return m, cmd
}

// setTab switches the active tab
func (m *Model) setTab(tab Tab) {
	m.tab = tab
	m.updateViewportContent()
	m.viewport.GotoTop()
}

// resize lays out the components for a new window size
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	headerHeight := 4 // Title panel + tab bar
	footerHeight := 4 // Status bar + help
	bodyHeight := height - headerHeight - footerHeight - 2
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	bodyWidth := width - 4
	if bodyWidth < 20 {
		bodyWidth = 20
	}

	if !m.ready {
		m.viewport = viewport.New(bodyWidth, bodyHeight)
		m.ready = true
	} else {
		m.viewport.Width = bodyWidth
		m.viewport.Height = bodyHeight
	}
	m.tokenTable.SetWidth(bodyWidth)
	m.tokenTable.SetHeight(bodyHeight)
	m.symbolTable.SetWidth(bodyWidth)
	m.symbolTable.SetHeight(bodyHeight)
	m.updateViewportContent()
}

// refresh rebuilds all views from the current result and filter
func (m *Model) refresh() {
	if m.result == nil {
		return
	}
	query := strings.TrimSpace(m.filter.Value())
	m.tokenTable.SetRows(tokenRows(m.result.Tokens, query))
	m.tokenTable.SetCursor(0)
	m.symbolTable.SetRows(symbolRows(m.result.Symbols.Entries(), query))
	m.symbolTable.SetCursor(0)
	m.updateViewportContent()
}

// updateViewportContent fills the viewport for the tree and error tabs
func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	switch m.tab {
	case TabTree:
		m.viewport.SetContent(m.treeContent())
	case TabDiagnostics:
		m.viewport.SetContent(m.diagnosticsContent())
	}
}

// treeContent renders the parse tree or the reason it is hidden
func (m Model) treeContent() string {
	switch {
	case m.result == nil:
		return ""
	case m.result.TreeVisible():
		return TreeStyle.Render(strings.TrimRight(ast.Render(m.result.Tree), "\n"))
	default:
		return NoticeStyle.Render(m.result.Status())
	}
}

// diagnosticsContent lists lexical errors followed by syntax errors
func (m Model) diagnosticsContent() string {
	if m.result == nil {
		return ""
	}
	diagnostics := m.result.Diagnostics()
	if len(diagnostics) == 0 {
		return StatusOKStyle.Render(m.result.Status())
	}

	lines := make([]string, 0, len(diagnostics)+2)
	for _, d := range diagnostics {
		lines = append(lines, DiagnosticStyle.Render(d.String()))
	}
	lines = append(lines, "", NoticeStyle.Render(m.result.Status()))
	return strings.Join(lines, "\n")
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Lade Explorer..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderTabBar())
	b.WriteString("\n")

	b.WriteString(m.renderBody())
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the title panel with the analyzed source
func (m Model) renderHeader() string {
	source := m.cfg.Path
	if source == "" {
		source = "<stdin>"
	}
	header := LogoStyle.Render(Logo) + "   " + PathStyle.Render(source)
	if m.watcher != nil {
		header += "   " + StatusWatchStyle.Render("[beobachtet]")
	}
	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

// renderTabBar renders the tab selection
func (m Model) renderTabBar() string {
	tabs := make([]string, len(tabNames))
	for i := range tabNames {
		tabs[i] = RenderTab(fmt.Sprintf("%d %s", i+1, Tab(i)), Tab(i) == m.tab)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderBody renders the active tab
func (m Model) renderBody() string {
	var content string
	switch m.tab {
	case TabTokens:
		content = m.tokenTable.View()
	case TabSymbols:
		content = m.symbolTable.View()
	default:
		content = m.viewport.View()
	}
	return PanelStyle.Width(m.width - 2).Render(content)
}

// renderStatusBar renders counts, run state and the filter input
func (m Model) renderStatusBar() string {
	var left string
	if m.filtering || m.filter.Value() != "" {
		left = m.filter.View()
	} else if m.result != nil {
		left = HelpDescStyle.Render(fmt.Sprintf("Tokens: %d  Symbole: %d  Fehler: %d  Laeufe: %d",
			len(m.result.Tokens), m.result.Symbols.Len(), m.result.ErrorCount(), m.runs))
	}

	var right string
	switch {
	case m.loading:
		right = m.spinner.View() + " Analysiere..."
	case m.err != nil:
		right = StatusErrorStyle.Render(mdwstringx.Truncate(m.err.Error(), 60))
	case m.result != nil && m.result.HasErrors():
		right = StatusErrorStyle.Render(m.result.Status())
	case m.result != nil:
		right = StatusOKStyle.Render(m.result.Status())
	}

	padding := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if padding < 2 {
		padding = 2
	}
	return StatusBarStyle.Width(m.width - 2).Render(left + strings.Repeat(" ", padding) + right)
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("1-4/Tab", "Ansicht"),
		RenderKeyHint("/", "Filter"),
		RenderKeyHint("Esc", "Filter leeren"),
		RenderKeyHint("r", "Neu analysieren"),
		RenderKeyHint("q", "Beenden"),
	}
	return HelpStyle.Render(strings.Join(items, "  "))
}

// analyze runs the analyzer on the configured source
func (m Model) analyze() tea.Msg {
	src := m.cfg.Source
	if m.cfg.Path != "" {
		data, err := os.ReadFile(m.cfg.Path)
		if err != nil {
			return analyzedMsg{err: mdwerror.Wrap(err, "failed to read source file").
				WithCode(mdwerror.CodeNotFound).
				WithDetail("path", m.cfg.Path)}
		}
		src = string(data)
	}
	result, err := m.analyzer.Run(src)
	return analyzedMsg{result: result, err: err}
}

// tokenRows converts tokens to table rows, keeping those that match query
func tokenRows(tokens []token.Token, query string) []table.Row {
	rows := make([]table.Row, 0, len(tokens))
	for _, tok := range tokens {
		lexeme := mdwstringx.EscapeControl(tok.Lexeme)
		kind := tok.Kind.String()
		if !matches(query, lexeme, kind) {
			continue
		}
		rows = append(rows, table.Row{
			strconv.Itoa(tok.Line),
			strconv.Itoa(tok.Column),
			lexeme,
			kind,
		})
	}
	return rows
}

// symbolRows converts symbol entries to table rows, keeping those that
// match query
func symbolRows(entries []symtab.Entry, query string) []table.Row {
	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		value := mdwstringx.EscapeControl(e.Value)
		if !matches(query, e.Name, e.DataType, value) {
			continue
		}
		rows = append(rows, table.Row{strconv.Itoa(e.ID), e.Name, e.DataType, value})
	}
	return rows
}

// matches reports whether query fuzzily matches any field. An empty
// query matches everything.
func matches(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	for _, f := range fields {
		if fuzzy.MatchFold(query, f) {
			return true
		}
	}
	return false
}

// Run starts the Explorer TUI
func Run(cfg Config) error {
	m, err := New(cfg)
	if err != nil {
		return err
	}

	if cfg.Watch && cfg.Path != "" {
		w, err := startWatch(cfg.Path)
		if err != nil {
			return mdwerror.Wrap(err, "failed to watch source file").
				WithCode(mdwerror.CodeInvalidInput).
				WithDetail("path", cfg.Path)
		}
		defer w.Close()
		m.watcher = w
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
