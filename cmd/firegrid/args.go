package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/term"

	"github.com/vovakirdan/firegrid/internal/core"
	"github.com/vovakirdan/firegrid/internal/formats"
	"github.com/vovakirdan/firegrid/internal/registry"
	"github.com/vovakirdan/firegrid/internal/scenario"
)

// ErrInvalidArguments is returned for malformed positional arguments.
var ErrInvalidArguments = errors.New("invalid arguments")

// gridArgs are the parsed "[width height] [file]" arguments.
type gridArgs struct {
	rc    core.RuntimeConfig
	path  string
	sized bool // Width and height were given
}

// parseGridArgs parses "[width height] [file]". The grid size of rc holds
// the defaults on entry.
func parseGridArgs(args []string, rc core.RuntimeConfig) (gridArgs, error) {
	ga := gridArgs{rc: rc}
	switch len(args) {
	case 0:
	case 1:
		ga.path = args[0]
	case 2, 3:
		w, err := parseDimension("width", args[0])
		if err != nil {
			return ga, err
		}
		h, err := parseDimension("height", args[1])
		if err != nil {
			return ga, err
		}
		ga.rc.GridW, ga.rc.GridH = w, h
		ga.sized = true
		if len(args) == 3 {
			ga.path = args[2]
		}
	default:
		return ga, fmt.Errorf("%w: expected [width height] [file], got %d arguments", ErrInvalidArguments, len(args))
	}
	return ga, nil
}

func parseDimension(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", ErrInvalidArguments, name, s)
	}
	return n, nil
}

// parseViewFlag parses a --view value, suggesting the closest mode on a typo.
func parseViewFlag(s string) (scenario.ViewMode, error) {
	mode, err := scenario.ParseViewMode(s)
	if err == nil {
		return mode, nil
	}

	best, bestDist := "", len(s)/2+1
	for _, m := range scenario.AllViewModes() {
		d := levenshtein.ComputeDistance(strings.ToUpper(s), m.String())
		if d < bestDist {
			best, bestDist = m.String(), d
		}
	}
	if best != "" {
		return mode, fmt.Errorf("%w (did you mean %q?)", err, best)
	}
	return mode, err
}

// formatFor picks the format of path: the explicit id if given, else by
// extension, else flat records.
func formatFor(path, id string) (registry.Format, error) {
	if id != "" {
		return registry.Create(id)
	}
	if f, ok := registry.ByExtension(path); ok {
		return f, nil
	}
	return registry.Create(formats.FlatID)
}

// loadGridFile decodes a scenario from path. Formats that record their own
// size ignore the defaults in rc unless sized is set.
func loadGridFile(path, formatID string, rc core.RuntimeConfig, sized bool) (*scenario.Grid, error) {
	format, err := formatFor(path, formatID)
	if err != nil {
		return nil, err
	}

	width, height := rc.GridW, rc.GridH
	if !sized && registry.SelfSized(format) {
		width, height = 0, 0
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := format.Decode(f, width, height)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return g, nil
}

// terminalSize returns the size of the controlling terminal, or rc's
// defaults when stdout is not a terminal.
func terminalSize(rc core.RuntimeConfig) core.RuntimeConfig {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}
	return rc
}
