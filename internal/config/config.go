// Package config provides YAML-based editor configuration loading.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/firegrid/internal/scenario"
)

// EditorConfig contains all configuration for the scenario editor.
type EditorConfig struct {
	Grid     GridConfig     `yaml:"grid"`
	View     ViewConfig     `yaml:"view"`
	Moisture MoistureConfig `yaml:"moisture"`
	Storage  StorageConfig  `yaml:"storage"`
	Log      LogConfig      `yaml:"log"`
	SSH      SSHConfig      `yaml:"ssh"`
}

// GridConfig defines the size of a new scenario.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ViewConfig defines the initial view mode and palette overrides.
type ViewConfig struct {
	Mode    string            `yaml:"mode"`    // STATE, TYPE or MOISTURE
	Palette map[string]string `yaml:"palette"` // Color name -> hex or ANSI code
}

// MoistureConfig defines the keyboard moisture adjustment steps.
type MoistureConfig struct {
	Step    int `yaml:"step"`     // +/- keys
	BigStep int `yaml:"big_step"` // PgUp/PgDn
}

// StorageConfig defines where the scenario library lives.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig defines logging output. An empty File discards logs in the
// interactive editor.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// SSHConfig defines the remote editing server.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (c SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMinutes) * time.Minute
}

// ViewMode parses the configured initial view mode.
func (c EditorConfig) ViewMode() (scenario.ViewMode, error) {
	if c.View.Mode == "" {
		return scenario.ViewState, nil
	}
	return scenario.ParseViewMode(c.View.Mode)
}

var validLevels = []string{"debug", "info", "warn", "error"}

// Validate checks the configuration for values the editor cannot use.
func (c EditorConfig) Validate() error {
	var errs []error

	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid size must be positive, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if _, err := c.ViewMode(); err != nil {
		errs = append(errs, err)
	}
	if c.Moisture.Step <= 0 || c.Moisture.BigStep <= 0 {
		errs = append(errs, fmt.Errorf("moisture steps must be positive, got %d/%d", c.Moisture.Step, c.Moisture.BigStep))
	}
	if c.Log.Level != "" && !contains(validLevels, strings.ToLower(c.Log.Level)) {
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Log.Level))
	}
	if c.SSH.IdleTimeoutMinutes < 0 {
		errs = append(errs, fmt.Errorf("ssh idle timeout must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
