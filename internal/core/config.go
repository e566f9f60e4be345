package core

// RuntimeConfig contains the terminal and grid dimensions an editor session
// starts with.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
	GridW   int // Grid width (first index)
	GridH   int // Grid height (second index)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		GridW:   50,
		GridH:   50,
	}
}
