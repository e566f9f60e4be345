// Package scenario holds the fire-scenario data model: cells with a fire
// state, a vegetation type and a moisture level, the grid that owns them,
// rectangular selection over that grid, the view projection and the flat
// record codec consumed by the simulator.
// This package is UI-agnostic.
package scenario

import "fmt"

// CellState is the dynamic fire status of a cell.
type CellState uint8

const (
	StateNormal CellState = iota
	StateOnFire
	StateBurntOut
	stateCount // Sentinel value for iteration
)

// VegType is the static vegetation classification of a cell.
type VegType uint8

const (
	VegBroadleaves VegType = iota
	VegShrubs
	VegGrassland
	VegFireProne
	VegAgroforestry
	VegNotFireProne
	vegCount // Sentinel value for iteration
)

// Code tables. Each enum value maps to exactly one single-byte code; the
// reverse lookups are derived from these tables in init.
var (
	stateCodes = [stateCount]byte{
		StateNormal:   'N',
		StateOnFire:   'F',
		StateBurntOut: 'O',
	}
	stateNames = [stateCount]string{
		StateNormal:   "NORMAL",
		StateOnFire:   "ONFIRE",
		StateBurntOut: "BURNTOUT",
	}

	vegCodes = [vegCount]byte{
		VegBroadleaves:  'B',
		VegShrubs:       'S',
		VegGrassland:    'G',
		VegFireProne:    'F',
		VegAgroforestry: 'A',
		VegNotFireProne: 'N',
	}
	vegNames = [vegCount]string{
		VegBroadleaves:  "BROADLEAVES",
		VegShrubs:       "SHRUBS",
		VegGrassland:    "GRASSLAND",
		VegFireProne:    "FIREPRONE",
		VegAgroforestry: "AGROFORESTRY",
		VegNotFireProne: "NOTFIREPRONE",
	}

	stateByCode map[byte]CellState
	vegByCode   map[byte]VegType
)

func init() {
	stateByCode = make(map[byte]CellState, stateCount)
	for s, code := range stateCodes {
		if code == 0 || stateNames[s] == "" {
			panic(fmt.Sprintf("scenario: cell state %d has no code", s))
		}
		if _, dup := stateByCode[code]; dup {
			panic(fmt.Sprintf("scenario: duplicate cell state code %q", code))
		}
		stateByCode[code] = CellState(s)
	}

	vegByCode = make(map[byte]VegType, vegCount)
	for v, code := range vegCodes {
		if code == 0 || vegNames[v] == "" {
			panic(fmt.Sprintf("scenario: vegetation type %d has no code", v))
		}
		if _, dup := vegByCode[code]; dup {
			panic(fmt.Sprintf("scenario: duplicate vegetation code %q", code))
		}
		vegByCode[code] = VegType(v)
	}
}

// Valid reports whether s is a known cell state.
func (s CellState) Valid() bool {
	return s < stateCount
}

// Code returns the single-character record code of the state.
func (s CellState) Code() byte {
	if !s.Valid() {
		return '?'
	}
	return stateCodes[s]
}

// String returns the state name.
func (s CellState) String() string {
	if !s.Valid() {
		return "UNKNOWN"
	}
	return stateNames[s]
}

// ParseState decodes a state record code.
func ParseState(code string) (CellState, error) {
	if len(code) == 1 {
		if s, ok := stateByCode[code[0]]; ok {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown cell state code %q", code)
}

// AllStates returns every cell state in declaration order.
func AllStates() []CellState {
	out := make([]CellState, 0, stateCount)
	for s := CellState(0); s < stateCount; s++ {
		out = append(out, s)
	}
	return out
}

// Valid reports whether v is a known vegetation type.
func (v VegType) Valid() bool {
	return v < vegCount
}

// Code returns the single-character record code of the vegetation type.
func (v VegType) Code() byte {
	if !v.Valid() {
		return '?'
	}
	return vegCodes[v]
}

// String returns the vegetation type name.
func (v VegType) String() string {
	if !v.Valid() {
		return "UNKNOWN"
	}
	return vegNames[v]
}

// ParseVegType decodes a vegetation record code. The codes live in their own
// namespace: "F" is FIREPRONE here, not the ONFIRE state.
func ParseVegType(code string) (VegType, error) {
	if len(code) == 1 {
		if v, ok := vegByCode[code[0]]; ok {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown vegetation code %q", code)
}

// AllVegTypes returns every vegetation type in declaration order.
func AllVegTypes() []VegType {
	out := make([]VegType, 0, vegCount)
	for v := VegType(0); v < vegCount; v++ {
		out = append(out, v)
	}
	return out
}
