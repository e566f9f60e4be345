package tui

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/firegrid/internal/core"
)

// defaultPalette maps projection color names to terminal colors.
var defaultPalette = map[core.Color]string{
	core.ColorGreen:      "2",
	core.ColorRed:        "1",
	core.ColorBlack:      "16",
	core.ColorBlue:       "4",
	core.ColorDarkGreen:  "22",
	core.ColorLightGreen: "120",
	core.ColorYellow:     "3",
	core.ColorGrey:       "245",
	core.ColorWhite:      "15",
}

// Theme holds the palette and the chrome styles of the editor.
// A Theme is safe for concurrent use; SSH sessions share one.
type Theme struct {
	mu      sync.RWMutex // Guards palette and styles
	palette map[core.Color]lipgloss.Color
	styles  map[[2]core.Color]lipgloss.Style

	Header   lipgloss.Style
	Accent   lipgloss.Style
	Inspect  lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
	Selected core.Color // Foreground of selection brackets
	Cursor   core.Color // Foreground of the keyboard cursor
}

// DefaultTheme returns the default editor theme.
func DefaultTheme() *Theme {
	t := &Theme{
		palette: make(map[core.Color]lipgloss.Color, len(defaultPalette)),
		styles:  make(map[[2]core.Color]lipgloss.Style),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1),
		Accent:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		Inspect:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("108")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Selected: core.ColorWhite,
		Cursor:   core.ColorYellow,
	}
	for name, c := range defaultPalette {
		t.palette[name] = lipgloss.Color(c)
	}
	return t
}

// WithOverrides replaces palette entries by color name, e.g.
// {"grey": "#777777"}. Unknown names are added as new entries.
func (t *Theme) WithOverrides(overrides map[string]string) *Theme {
	t.mu.Lock()
	defer t.mu.Unlock()
	for name, c := range overrides {
		t.palette[core.Color(name)] = lipgloss.Color(c)
	}
	t.styles = make(map[[2]core.Color]lipgloss.Style)
	return t
}

// TerminalColor resolves a projection color. Literal "#rrggbb" colors pass
// through unchanged.
func (t *Theme) TerminalColor(c core.Color) lipgloss.TerminalColor {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.terminalColor(c)
}

// terminalColor must be called with mu held.
func (t *Theme) terminalColor(c core.Color) lipgloss.TerminalColor {
	if c == core.ColorNone {
		return lipgloss.NoColor{}
	}
	if c.IsLiteral() {
		return lipgloss.Color(string(c))
	}
	if tc, ok := t.palette[c]; ok {
		return tc
	}
	return lipgloss.NoColor{}
}

// Style returns the cached style for a foreground/background pair.
func (t *Theme) Style(fg, bg core.Color) lipgloss.Style {
	k := [2]core.Color{fg, bg}

	t.mu.RLock()
	s, ok := t.styles[k]
	t.mu.RUnlock()
	if ok {
		return s
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok := t.styles[k]; ok {
		return s
	}
	s = lipgloss.NewStyle().
		Foreground(t.terminalColor(fg)).
		Background(t.terminalColor(bg))
	t.styles[k] = s
	return s
}
