package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/firegrid/internal/storage"
)

// Browser layout constants
const (
	idColumnWidth = 8   // Short ID prefix shown in the table
	maxScenarios  = 200 // Max scenarios to load
)

// BrowserKeyMap defines the key bindings for the scenario browser.
type BrowserKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Open    key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open},
		{k.Delete, k.Refresh, k.Quit},
	}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BrowserModel is the Bubble Tea model for the scenario library table.
type BrowserModel struct {
	store     *storage.Store
	limit     int
	scenarios []storage.ScenarioEntry
	table     table.Model
	help      help.Model
	keys      BrowserKeyMap
	width     int
	height    int
	status    string
	opened    string // ID chosen with Open
	quitting  bool
}

// NewBrowserModel creates a new scenario browser.
func NewBrowserModel(store *storage.Store, width, height, limit int) BrowserModel {
	if limit <= 0 {
		limit = maxScenarios
	}

	h := help.New()
	h.ShowAll = false

	m := BrowserModel{
		store:  store,
		limit:  limit,
		keys:   DefaultBrowserKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.loadScenarios()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *BrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Size", Width: 9},
		{Title: "Saved", Width: 14},
		{Title: "ID", Width: idColumnWidth},
	}

	// Give extra width to the name column
	if extra := m.width - 4 - 24 - 9 - 14 - idColumnWidth - 8; extra > 0 {
		columns[0].Width += min(extra, 24)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadScenarios reloads the library listing.
func (m *BrowserModel) loadScenarios() {
	if m.store == nil {
		m.scenarios = nil
		m.updateTableRows()
		return
	}

	scenarios, err := m.store.ListScenarios(m.limit)
	if err != nil {
		m.scenarios = nil
		m.status = err.Error()
	} else {
		m.scenarios = scenarios
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current scenarios.
func (m *BrowserModel) updateTableRows() {
	rows := make([]table.Row, len(m.scenarios))
	for i, s := range m.scenarios {
		id := s.ID
		if len(id) > idColumnWidth {
			id = id[:idColumnWidth]
		}
		rows[i] = table.Row{
			s.Name,
			fmt.Sprintf("%dx%d", s.Width, s.Height),
			s.CreatedAt.Local().Format("Jan 02 15:04"),
			id,
		}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.GotoTop()
	}
}

// selectedEntry returns the entry under the table cursor.
func (m BrowserModel) selectedEntry() (storage.ScenarioEntry, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.scenarios) {
		return storage.ScenarioEntry{}, false
	}
	return m.scenarios[i], true
}

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Open):
			if e, ok := m.selectedEntry(); ok {
				m.opened = e.ID
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if e, ok := m.selectedEntry(); ok && m.store != nil {
				if err := m.store.DeleteScenario(e.ID); err != nil {
					m.status = err.Error()
				} else {
					m.status = fmt.Sprintf("deleted %s (%s)", e.Name, e.ID)
				}
				m.loadScenarios()
			}
			return m, nil

		case key.Matches(msg, m.keys.Refresh):
			m.status = ""
			m.loadScenarios()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting || m.opened != "" {
		return ""
	}

	var b strings.Builder

	// Title
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(centerText(fmt.Sprintf("SCENARIOS (%d)", len(m.scenarios)), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("108")).Render(m.status))
	}

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m BrowserModel) renderTableContent() string {
	if len(m.scenarios) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No scenarios saved yet.\nExport with --save <name> to add one!")
	}

	return m.table.View()
}

// Opened returns the ID of the scenario chosen with Open, or "".
func (m BrowserModel) Opened() string {
	return m.opened
}

// IsQuitting returns true if the user quit without opening a scenario.
func (m BrowserModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers each line of text within the given width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if pad := (width - lipgloss.Width(line)) / 2; pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}

// RunBrowser runs the scenario browser.
// Returns the ID of the scenario to open, or "" if the user quit.
func RunBrowser(store *storage.Store, width, height, limit int) (string, error) {
	model := NewBrowserModel(store, width, height, limit)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(BrowserModel)
	if !ok {
		return "", nil
	}

	return m.Opened(), nil
}
