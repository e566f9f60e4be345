// firegrid is a terminal editor for wildfire simulation scenarios.
//
// Usage:
//
//	firegrid [width height] [file]   - Edit a scenario (default 50x50)
//	firegrid formats                 - List scenario file formats
//	firegrid scenarios               - List saved scenarios
//	firegrid convert <in> <out>      - Convert between formats
//	firegrid show [width height] <f> - Print a scenario without the editor
//	firegrid serve                   - Start SSH server for remote editing
//
// Global flags:
//
//	--config <path>     - Editor config YAML
//	--db <path>         - Scenario library (default: ~/.firegrid/scenarios.db)
//	--log-file <path>   - Write logs to a rotating file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/firegrid/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "firegrid [width height] [file]",
	Short: "Firegrid - edit wildfire scenarios in your terminal",
	Long: `Firegrid edits the initial conditions of a wildfire simulation: a grid of
cells, each with a fire state, a vegetation type and a moisture level.

Without arguments a 50x50 scenario of default cells is opened. A file
argument preloads it; its format is chosen by extension (flat records
otherwise). Exporting writes the scenario to stdout and exits.

Editing:
  click / enter   - Select a cell
  shift+click / x - Select a rectangle from the anchor cell
  right click/esc - Clear the selection
  N F O           - Set fire state (normal, on fire, burnt out)
  b s g f a n     - Set vegetation type
  + - [ ] m       - Adjust or type moisture
  v               - Cycle view (state, type, moisture)
  e               - Export and exit

Examples:
  firegrid
  firegrid 80 120
  firegrid 80 120 ridge.txt > ridge-edited.txt
  firegrid ridge.yaml --out ridge.txt
  firegrid --scenario ridge --save ridge`,
	Args: cobra.MaximumNArgs(3),
	Run:  runEdit,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to editor config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scenario library (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the editor config and applies the global flag overrides.
func loadConfig() (config.EditorConfig, error) {
	cfg, err := config.LoadEditor(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, cfg.Validate()
}
