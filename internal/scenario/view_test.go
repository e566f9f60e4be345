package scenario

import (
	"testing"

	"github.com/vovakirdan/firegrid/internal/core"
)

func TestProjectState(t *testing.T) {
	tests := []struct {
		state    CellState
		expected core.Color
	}{
		{StateNormal, core.ColorGreen},
		{StateOnFire, core.ColorRed},
		{StateBurntOut, core.ColorBlack},
	}
	for _, tc := range tests {
		t.Run(tc.state.String(), func(t *testing.T) {
			c := MakeCell(tc.state, VegShrubs, 10)
			if got := Project(c, ViewState); got != tc.expected {
				t.Errorf("Project(%v, STATE) = %q, expected %q", c, got, tc.expected)
			}
		})
	}
}

func TestProjectType(t *testing.T) {
	tests := []struct {
		veg      VegType
		expected core.Color
	}{
		{VegBroadleaves, core.ColorBlue},
		{VegShrubs, core.ColorDarkGreen},
		{VegGrassland, core.ColorLightGreen},
		{VegFireProne, core.ColorRed},
		{VegAgroforestry, core.ColorYellow},
		{VegNotFireProne, core.ColorGrey},
	}
	for _, tc := range tests {
		t.Run(tc.veg.String(), func(t *testing.T) {
			c := MakeCell(StateBurntOut, tc.veg, 10)
			if got := Project(c, ViewType); got != tc.expected {
				t.Errorf("Project(%v, TYPE) = %q, expected %q", c, got, tc.expected)
			}
		})
	}
}

func TestMoistureColor(t *testing.T) {
	tests := []struct {
		moisture int
		expected core.Color
	}{
		{0, "#111100"},
		{9, "#111109"},
		{10, "#11110a"},
		{80, "#111150"},
		{100, "#111164"},
	}
	for _, tc := range tests {
		c := MakeCell(StateNormal, VegGrassland, tc.moisture)
		if got := Project(c, ViewMoisture); got != tc.expected {
			t.Errorf("Project(moisture=%d) = %q, expected %q", tc.moisture, got, tc.expected)
		}
	}
}

func TestProjectDoesNotMutate(t *testing.T) {
	c := MakeCell(StateOnFire, VegShrubs, 42)
	before := c
	for _, m := range AllViewModes() {
		Project(c, m)
	}
	if c != before {
		t.Errorf("Project mutated the cell: %v", c)
	}
}

func TestParseViewMode(t *testing.T) {
	tests := []struct {
		in       string
		expected ViewMode
		wantErr  bool
	}{
		{"STATE", ViewState, false},
		{"type", ViewType, false},
		{"Moisture", ViewMoisture, false},
		{"heat", ViewState, true},
	}
	for _, tc := range tests {
		got, err := ParseViewMode(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseViewMode(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseViewMode(%q) = %s, expected %s", tc.in, got, tc.expected)
		}
	}
}

func TestViewModeNext(t *testing.T) {
	if ViewState.Next() != ViewType || ViewType.Next() != ViewMoisture || ViewMoisture.Next() != ViewState {
		t.Error("Next() should cycle STATE -> TYPE -> MOISTURE -> STATE")
	}
}
