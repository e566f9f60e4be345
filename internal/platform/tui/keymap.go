package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/firegrid/internal/scenario"
)

// EditorKeyMap defines the key bindings of the scenario editor.
type EditorKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Click    key.Binding
	Modifier key.Binding
	Reset    key.Binding

	StateTools map[string]scenario.CellState
	VegTools   map[string]scenario.VegType

	MoistureUp      key.Binding
	MoistureDown    key.Binding
	MoistureBigUp   key.Binding
	MoistureBigDown key.Binding
	MoistureInput   key.Binding

	View   key.Binding
	Export key.Binding
	Yank   key.Binding
	Help   key.Binding
	Quit   key.Binding

	// Tool bindings exist only for the help view.
	stateHelp key.Binding
	vegHelp   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k EditorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Click, k.Modifier, k.stateHelp, k.vegHelp, k.MoistureUp, k.View, k.Export, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k EditorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Click, k.Modifier, k.Reset},
		{k.stateHelp, k.vegHelp},
		{k.MoistureUp, k.MoistureDown, k.MoistureBigUp, k.MoistureBigDown, k.MoistureInput},
		{k.View, k.Export, k.Yank, k.Help, k.Quit},
	}
}

// DefaultEditorKeyMap returns default key bindings. Fire states use the
// upper-case record code and vegetation types the lower-case one.
func DefaultEditorKeyMap() EditorKeyMap {
	k := EditorKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "cursor up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "cursor down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "cursor left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "cursor right"),
		),
		Click: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Modifier: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "rect select"),
		),
		Reset: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear selection"),
		),
		MoistureUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+/-", "moisture"),
		),
		MoistureDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "moisture down"),
		),
		MoistureBigUp: key.NewBinding(
			key.WithKeys("pgup", "]"),
			key.WithHelp("pgup/]", "moisture +big"),
		),
		MoistureBigDown: key.NewBinding(
			key.WithKeys("pgdown", "["),
			key.WithHelp("pgdn/[", "moisture -big"),
		),
		MoistureInput: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "type moisture"),
		),
		View: key.NewBinding(
			key.WithKeys("v", "tab"),
			key.WithHelp("v", "view"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		StateTools: make(map[string]scenario.CellState),
		VegTools:   make(map[string]scenario.VegType),
		stateHelp: key.NewBinding(
			key.WithKeys("N", "F", "O"),
			key.WithHelp("N/F/O", "state"),
		),
		vegHelp: key.NewBinding(
			key.WithKeys("b", "s", "g", "f", "a", "n"),
			key.WithHelp("b/s/g/f/a/n", "vegetation"),
		),
	}

	for _, s := range scenario.AllStates() {
		k.StateTools[string(s.Code())] = s
	}
	for _, v := range scenario.AllVegTypes() {
		k.VegTools[strings.ToLower(string(v.Code()))] = v
	}
	return k
}
