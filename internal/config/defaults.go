package config

import (
	_ "embed"
)

//go:embed defaults/editor.yaml
var defaultEditorYAML []byte

// DefaultEditorConfig returns the default editor configuration.
func DefaultEditorConfig() EditorConfig {
	return EditorConfig{
		Grid: GridConfig{
			Width:  50,
			Height: 50,
		},
		View: ViewConfig{
			Mode: "STATE",
		},
		Moisture: MoistureConfig{
			Step:    1,
			BigStep: 10,
		},
		Storage: StorageConfig{
			DBPath: "~/.firegrid/scenarios.db",
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		SSH: SSHConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 30,
		},
	}
}
