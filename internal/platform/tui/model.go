package tui

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/firegrid/internal/core"
	"github.com/vovakirdan/firegrid/internal/editor"
	"github.com/vovakirdan/firegrid/internal/scenario"
)

// Editor layout: one header line above the grid; inspector, status and
// help lines below it.
const (
	headerHeight = 1
	footerHeight = 3
)

// EditorOptions configures an EditorModel.
type EditorOptions struct {
	Title           string // Shown in the header, e.g. the input file
	Theme           *Theme
	Logger          *log.Logger
	MoistureStep    int
	MoistureBigStep int

	// OnExport receives the grid when the user exports. The editor quits
	// after a successful export. Nil writes flat records to stdout.
	OnExport editor.ExportFunc

	// Clipboard enables the yank key. Disabled for remote sessions, where
	// the clipboard would be the server's.
	Clipboard bool

	// Encode renders the grid for the clipboard. Nil uses flat records.
	Encode func(g *scenario.Grid) ([]byte, error)
}

// EditorModel is the Bubble Tea model of the scenario editor.
type EditorModel struct {
	ctrl   *editor.Controller
	view   *gridView
	opts   EditorOptions
	keys   EditorKeyMap
	help   help.Model
	input  textinput.Model
	logger *log.Logger

	gridArea core.Rect
	width    int
	height   int

	editing  bool // Moisture text input focused
	status   string
	errored  bool
	exported bool
	quitting bool
}

// NewEditorModel creates an editor for grid. A nil session state starts in
// the STATE view with the modifier released.
func NewEditorModel(grid *scenario.Grid, state *editor.InputState, opts EditorOptions) EditorModel {
	if opts.Theme == nil {
		opts.Theme = DefaultTheme()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.MoistureStep <= 0 {
		opts.MoistureStep = 1
	}
	if opts.MoistureBigStep <= 0 {
		opts.MoistureBigStep = 10
	}

	ctrl := editor.New(grid, state, opts.Logger)
	if opts.OnExport != nil {
		ctrl.SetExportHandler(opts.OnExport)
	}

	ti := textinput.New()
	ti.CharLimit = 4
	ti.Width = 6
	ti.Validate = func(s string) error {
		if s == "" || s == "-" {
			return nil
		}
		_, err := strconv.Atoi(s)
		return err
	}

	h := help.New()
	h.ShowAll = false

	m := EditorModel{
		ctrl:   ctrl,
		view:   newGridView(ctrl, opts.Theme),
		opts:   opts,
		keys:   DefaultEditorKeyMap(),
		help:   h,
		input:  ti,
		logger: opts.Logger,
	}
	return m
}

// Init initializes the editor.
func (m EditorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the editor state.
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.editing {
			return m.handleInputKey(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// resize lays out the header, grid and footer.
func (m *EditorModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.gridArea = core.NewRect(0, headerHeight, width, core.Max(height-headerHeight-footerHeight, 0))
	m.view.Resize(m.gridArea.W, m.gridArea.H)
}

// handleMouse maps mouse presses to editor events: left press is a cell
// click, right press clears the selection, the wheel scrolls.
func (m EditorModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.view.Scroll(-1, 0)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.view.Scroll(1, 0)
		return m, nil
	case tea.MouseButtonWheelLeft:
		m.view.Scroll(0, -1)
		return m, nil
	case tea.MouseButtonWheelRight:
		m.view.Scroll(0, 1)
		return m, nil
	}

	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		if !m.gridArea.Contains(msg.X, msg.Y) {
			return m, nil
		}
		pos, ok := m.view.HitTest(msg.X-m.gridArea.X, msg.Y-m.gridArea.Y)
		if !ok {
			return m, nil
		}
		m.view.SetCursor(pos)

		// Terminals report shift with the press only, never as key
		// events, so a shift-click is a complete down/click/up sequence.
		wrap := msg.Shift && !m.ctrl.Input().ShiftHeld
		if wrap {
			m.dispatch(editor.Event{Kind: editor.EventModifierDown})
		}
		m.dispatch(editor.Click(pos.X, pos.Y))
		if wrap {
			m.dispatch(editor.Event{Kind: editor.EventModifierUp})
		}

	case tea.MouseButtonRight:
		m.dispatch(editor.Event{Kind: editor.EventSecondaryClick})
	}

	return m, nil
}

// handleKey processes keyboard input outside the moisture prompt.
func (m EditorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status, m.errored = "", false

	if s, ok := m.keys.StateTools[msg.String()]; ok {
		m.dispatch(editor.StateTool(s))
		return m, nil
	}
	if v, ok := m.keys.VegTools[msg.String()]; ok {
		m.dispatch(editor.VegTool(v))
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.view.MoveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.view.MoveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.view.MoveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.view.MoveCursor(0, 1)

	case key.Matches(msg, m.keys.Click):
		c := m.view.Cursor()
		m.dispatch(editor.Click(c.X, c.Y))

	case key.Matches(msg, m.keys.Modifier):
		kind := editor.EventModifierDown
		if m.ctrl.Input().ShiftHeld {
			kind = editor.EventModifierUp
		}
		m.dispatch(editor.Event{Kind: kind})

	case key.Matches(msg, m.keys.Reset):
		m.dispatch(editor.Event{Kind: editor.EventSecondaryClick})

	case key.Matches(msg, m.keys.MoistureUp):
		m.adjustMoisture(m.opts.MoistureStep)
	case key.Matches(msg, m.keys.MoistureDown):
		m.adjustMoisture(-m.opts.MoistureStep)
	case key.Matches(msg, m.keys.MoistureBigUp):
		m.adjustMoisture(m.opts.MoistureBigStep)
	case key.Matches(msg, m.keys.MoistureBigDown):
		m.adjustMoisture(-m.opts.MoistureBigStep)

	case key.Matches(msg, m.keys.MoistureInput):
		m.editing = true
		m.input.Prompt = m.moisturePrompt()
		m.input.SetValue("")
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.View):
		m.dispatch(editor.ViewModeChange(m.ctrl.Input().ViewMode.Next()))

	case key.Matches(msg, m.keys.Export):
		if err := m.ctrl.Dispatch(editor.Event{Kind: editor.EventExport}); err != nil {
			m.setError(fmt.Errorf("export failed: %w", err))
			return m, nil
		}
		m.exported = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Yank):
		m.yank()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleInputKey drives the moisture prompt.
func (m EditorModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = false
		m.input.Blur()
		return m, nil

	case tea.KeyEnter:
		m.editing = false
		m.input.Blur()
		value, err := strconv.Atoi(strings.TrimSpace(m.input.Value()))
		if err != nil {
			m.setError(fmt.Errorf("moisture must be an integer"))
			return m, nil
		}
		m.dispatch(editor.MoistureChange(value))
		return m, nil

	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// adjustMoisture steps the moisture control. With several cells selected the
// step is sent as a delta; otherwise it moves the absolute value.
func (m *EditorModel) adjustMoisture(step int) {
	if m.ctrl.Grid().IsMultiSelect() {
		m.dispatch(editor.MoistureChange(step))
		return
	}
	m.dispatch(editor.MoistureChange(m.ctrl.Moisture() + step))
}

func (m EditorModel) moisturePrompt() string {
	if m.ctrl.Grid().IsMultiSelect() {
		return "moisture delta: "
	}
	return "moisture: "
}

// yank copies the encoded grid to the system clipboard.
func (m *EditorModel) yank() {
	if !m.opts.Clipboard {
		m.setError(fmt.Errorf("clipboard is not available in this session"))
		return
	}
	data, err := m.encode()
	if err != nil {
		m.setError(err)
		return
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		m.setError(fmt.Errorf("clipboard: %w", err))
		return
	}
	m.status = fmt.Sprintf("copied %d cells to clipboard", m.ctrl.Grid().Len())
}

func (m *EditorModel) encode() ([]byte, error) {
	if m.opts.Encode != nil {
		return m.opts.Encode(m.ctrl.Grid())
	}
	var buf bytes.Buffer
	if err := scenario.Export(&buf, m.ctrl.Grid()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (m *EditorModel) dispatch(ev editor.Event) {
	if err := m.ctrl.Dispatch(ev); err != nil {
		m.setError(err)
	}
}

func (m *EditorModel) setError(err error) {
	m.logger.Warn("editor", "error", err)
	m.status = err.Error()
	m.errored = true
}

// View renders the editor.
func (m EditorModel) View() string {
	if m.quitting || m.exported {
		return ""
	}
	if m.width == 0 {
		return "loading..."
	}
	if m.gridArea.Empty() {
		return m.opts.Theme.Error.Render(fmt.Sprintf("terminal too small (%dx%d)", m.width, m.height))
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.view.View())
	for i := m.view.rows; i < m.gridArea.H; i++ {
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.renderInspector())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.opts.Theme.Help.Render(m.help.View(m.keys)))
	return b.String()
}

func (m EditorModel) renderHeader() string {
	g := m.ctrl.Grid()
	in := m.ctrl.Input()

	title := "firegrid"
	if m.opts.Title != "" {
		title += " - " + m.opts.Title
	}
	mod := "single"
	if in.ShiftHeld {
		mod = "rect"
	}
	info := fmt.Sprintf("%dx%d  view:%s  select:%s  selected:%d  moisture:%d",
		g.Width(), g.Height(), in.ViewMode, mod, g.SelectedCount(), m.ctrl.Moisture())

	header := m.opts.Theme.Header.Render(title) + " " + m.opts.Theme.Accent.Render(info)
	return lipgloss.NewStyle().MaxWidth(m.width).Render(header)
}

func (m EditorModel) renderInspector() string {
	c := m.view.Cursor()
	cell := m.ctrl.Grid().Cell(c)
	if cell == nil {
		return ""
	}
	line := fmt.Sprintf("%s %s color=%s", c, cell, m.ctrl.Color(c))
	return m.opts.Theme.Inspect.MaxWidth(m.width).Render(line)
}

func (m EditorModel) renderStatus() string {
	if m.editing {
		return m.input.View()
	}
	if m.errored {
		return m.opts.Theme.Error.Render(m.status)
	}
	return m.opts.Theme.Status.Render(m.status)
}

// Controller returns the editor's controller.
func (m EditorModel) Controller() *editor.Controller {
	return m.ctrl
}

// Exported returns true if the editor quit after a successful export.
func (m EditorModel) Exported() bool {
	return m.exported
}

// IsQuitting returns true if the user quit without exporting.
func (m EditorModel) IsQuitting() bool {
	return m.quitting
}

// Run starts the editor and blocks until it exits.
// Returns the final model so callers can check Exported.
func Run(grid *scenario.Grid, state *editor.InputState, opts EditorOptions, progOpts ...tea.ProgramOption) (EditorModel, error) {
	model := NewEditorModel(grid, state, opts)

	progOpts = append([]tea.ProgramOption{
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse for cell clicks
	}, progOpts...)
	p := tea.NewProgram(model, progOpts...)

	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if em, ok := final.(EditorModel); ok {
		return em, nil
	}
	return model, nil
}
