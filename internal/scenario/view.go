package scenario

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/firegrid/internal/core"
)

// ViewMode selects which cell attribute is projected onto display colors.
// It affects rendering only.
type ViewMode int

const (
	ViewState ViewMode = iota
	ViewType
	ViewMoisture
	viewModeCount
)

var viewModeNames = [viewModeCount]string{
	ViewState:    "STATE",
	ViewType:     "TYPE",
	ViewMoisture: "MOISTURE",
}

// String returns the mode name.
func (m ViewMode) String() string {
	if m < 0 || m >= viewModeCount {
		return "UNKNOWN"
	}
	return viewModeNames[m]
}

// Next returns the mode that follows m, wrapping around.
func (m ViewMode) Next() ViewMode {
	return (m + 1) % viewModeCount
}

// ParseViewMode parses a mode name, ignoring case.
func ParseViewMode(s string) (ViewMode, error) {
	for i, name := range viewModeNames {
		if strings.EqualFold(s, name) {
			return ViewMode(i), nil
		}
	}
	return ViewState, fmt.Errorf("unknown view mode %q", s)
}

// AllViewModes returns every view mode in cycle order.
func AllViewModes() []ViewMode {
	return []ViewMode{ViewState, ViewType, ViewMoisture}
}

var stateColors = [stateCount]core.Color{
	StateNormal:   core.ColorGreen,
	StateOnFire:   core.ColorRed,
	StateBurntOut: core.ColorBlack,
}

var vegColors = [vegCount]core.Color{
	VegBroadleaves:  core.ColorBlue,
	VegShrubs:       core.ColorDarkGreen,
	VegGrassland:    core.ColorLightGreen,
	VegFireProne:    core.ColorRed,
	VegAgroforestry: core.ColorYellow,
	VegNotFireProne: core.ColorGrey,
}

// Project maps a cell to its display color under mode. It never mutates the
// cell and returns ColorNone for values outside the known enums.
func Project(c Cell, mode ViewMode) core.Color {
	switch mode {
	case ViewState:
		if c.state.Valid() {
			return stateColors[c.state]
		}
	case ViewType:
		if c.vegType.Valid() {
			return vegColors[c.vegType]
		}
	case ViewMoisture:
		return MoistureColor(c.moisture)
	}
	return core.ColorNone
}

// MoistureColor encodes moisture as the low byte of a "#1111" prefix, for
// example 80 becomes "#111150".
func MoistureColor(m int) core.Color {
	m = core.Clamp(m, MinMoisture, MaxMoisture)
	return core.Color("#1111" + fmt.Sprintf("%02x", m))
}
