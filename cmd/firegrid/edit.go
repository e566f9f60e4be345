package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/firegrid/internal/core"
	"github.com/vovakirdan/firegrid/internal/editor"
	"github.com/vovakirdan/firegrid/internal/platform/logging"
	"github.com/vovakirdan/firegrid/internal/platform/tui"
	"github.com/vovakirdan/firegrid/internal/registry"
	"github.com/vovakirdan/firegrid/internal/scenario"
	"github.com/vovakirdan/firegrid/internal/storage"
)

var (
	flagView     string
	flagOut      string
	flagFormat   string
	flagSave     string
	flagScenario string
)

func init() {
	rootCmd.Flags().StringVar(&flagView, "view", "", "Initial view: STATE, TYPE or MOISTURE")
	rootCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Write the export to this file instead of stdout")
	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "Export format (default by --out extension, else flat)")
	rootCmd.Flags().StringVar(&flagSave, "save", "", "Also save the export to the scenario library under this name")
	rootCmd.Flags().StringVar(&flagScenario, "scenario", "", "Open a saved scenario by name or ID")
}

func runEdit(_ *cobra.Command, args []string) {
	if err := edit(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// edit runs the interactive editor and writes the export, if any.
func edit(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rc := core.DefaultConfig()
	rc.GridW, rc.GridH = cfg.Grid.Width, cfg.Grid.Height
	ga, err := parseGridArgs(args, rc)
	if err != nil {
		return err
	}

	mode, err := cfg.ViewMode()
	if err != nil {
		return err
	}
	if flagView != "" {
		if mode, err = parseViewFlag(flagView); err != nil {
			return err
		}
	}

	// Resolve the export format before the session so typos fail fast
	outFormat, err := formatFor(flagOut, flagFormat)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.Log, logging.Options{Prefix: "firegrid", Interactive: true})
	if err != nil {
		return err
	}
	defer closer.Close()

	var store *storage.Store
	if flagScenario != "" || flagSave != "" {
		store, err = storage.Open(cfg.Storage.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	grid, title, err := openGrid(store, ga)
	if err != nil {
		return err
	}
	logger.Info("editor started", "title", title, "width", grid.Width(), "height", grid.Height(), "view", mode)

	var exported bytes.Buffer
	opts := tui.EditorOptions{
		Title:           title,
		Theme:           tui.DefaultTheme().WithOverrides(cfg.View.Palette),
		Logger:          logger,
		MoistureStep:    cfg.Moisture.Step,
		MoistureBigStep: cfg.Moisture.BigStep,
		Clipboard:       true,
		OnExport: func(g *scenario.Grid) error {
			exported.Reset()
			return outFormat.Encode(&exported, g)
		},
	}
	state := editor.NewInputState()
	state.ViewMode = mode

	model, err := tui.Run(grid, state, opts)
	if err != nil {
		return fmt.Errorf("editor: %w", err)
	}
	if !model.Exported() {
		logger.Info("editor closed without export")
		return nil
	}

	return writeExport(exported.Bytes(), model.Controller().Grid(), store, outFormat, logger)
}

// openGrid builds the starting grid from the library, a file or defaults.
func openGrid(store *storage.Store, ga gridArgs) (*scenario.Grid, string, error) {
	switch {
	case flagScenario != "":
		entry, g, err := store.LoadScenario(flagScenario)
		if err != nil {
			return nil, "", err
		}
		return g, entry.Name, nil

	case ga.path != "":
		g, err := loadGridFile(ga.path, "", ga.rc, ga.sized)
		if err != nil {
			return nil, "", err
		}
		return g, filepath.Base(ga.path), nil
	}

	return scenario.NewGrid(ga.rc.GridW, ga.rc.GridH), "", nil
}

// writeExport delivers the encoded export to --out or stdout, then to the
// library when --save is set.
func writeExport(data []byte, g *scenario.Grid, store *storage.Store, format registry.Format, logger *log.Logger) error {
	var w io.Writer = os.Stdout
	if flagOut != "" {
		f, err := os.Create(flagOut)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	logger.Info("scenario exported", "format", format.ID(), "out", flagOut, "bytes", len(data))

	if flagSave == "" {
		return nil
	}
	entry, err := store.SaveScenario(flagSave, g)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Saved %q as %s\n", entry.Name, entry.ID)
	return nil
}
