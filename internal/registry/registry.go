// Package registry provides a global registry of scenario file formats.
// Formats register themselves in init() functions, allowing the CLI and the
// TUI to discover encoders without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"

	"github.com/vovakirdan/firegrid/internal/scenario"
)

// Format is implemented by every scenario encoding.
type Format interface {
	// ID returns a unique identifier used on the command line (e.g. "flat").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Extensions lists the file extensions handled by this format,
	// including the leading dot.
	Extensions() []string

	// Encode writes the whole grid to w.
	Encode(w io.Writer, g *scenario.Grid) error

	// Decode reads a grid from r. Formats that carry their own dimensions
	// may ignore width and height when they are zero.
	Decode(r io.Reader, width, height int) (*scenario.Grid, error)
}

// Sizer is implemented by formats whose documents record the grid size.
// Their Decode accepts a zero width and height.
type Sizer interface {
	SelfSized() bool
}

// SelfSized reports whether f reads the grid size from the document.
func SelfSized(f Format) bool {
	s, ok := f.(Sizer)
	return ok && s.SelfSized()
}

// FormatInfo contains metadata about a registered format.
type FormatInfo struct {
	ID         string
	Title      string
	Extensions []string
}

// Factory is a function that creates a new instance of a format.
type Factory func() Format

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]FormatInfo)
	mu        sync.RWMutex
)

// Register adds a format factory to the registry.
// Typically called from a format's init() function.
// Panics if a format with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: format %q already registered", id))
	}

	factories[id] = f

	// Get metadata by creating a temporary instance
	inst := f()
	infos[id] = FormatInfo{
		ID:         id,
		Title:      inst.Title(),
		Extensions: inst.Extensions(),
	}
}

// List returns information about all registered formats, sorted by ID.
func List() []FormatInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FormatInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a format by its ID.
// The error names the closest registered ID when there is a plausible typo.
func Create(id string) (Format, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		if s := suggest(id); s != "" {
			return nil, fmt.Errorf("registry: unknown format %q (did you mean %q?)", id, s)
		}
		return nil, fmt.Errorf("registry: unknown format %q", id)
	}

	return f(), nil
}

// Exists checks if a format with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// ByExtension returns the format registered for the extension of path.
// Matching is case-insensitive.
func ByExtension(path string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return nil, false
	}

	mu.RLock()
	defer mu.RUnlock()

	ids := make([]string, 0, len(infos))
	for id := range infos {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		for _, e := range infos[id].Extensions {
			if strings.EqualFold(e, ext) {
				return factories[id](), true
			}
		}
	}
	return nil, false
}

// Suggest returns the registered ID closest to id, or "" when nothing is
// close enough.
func Suggest(id string) string {
	mu.RLock()
	defer mu.RUnlock()
	return suggest(id)
}

// suggest must be called with mu held.
func suggest(id string) string {
	id = strings.ToLower(id)
	best := ""
	bestDist := -1
	for cand := range factories {
		dist := levenshtein.ComputeDistance(id, cand)
		if dist > distanceLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist || (dist == bestDist && cand < best) {
			best, bestDist = cand, dist
		}
	}
	return best
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
