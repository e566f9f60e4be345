package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/firegrid/internal/core"
	"github.com/vovakirdan/firegrid/internal/platform/tui"
)

var flagShowView string

var showCmd = &cobra.Command{
	Use:   "show [width height] <file>",
	Short: "Print a scenario in color without the editor",
	Long: `Render one view of a scenario to stdout, two columns per cell.

Examples:
  firegrid show ridge.yaml
  firegrid show 80 120 ridge.txt --view moisture`,
	Args: cobra.RangeArgs(1, 3),
	Run:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&flagShowView, "view", "", "View: STATE, TYPE or MOISTURE (default from config)")
}

func runShow(cmd *cobra.Command, args []string) {
	if err := show(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func show(args []string) error {
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
	if ga.path == "" {
		return fmt.Errorf("%w: missing file", ErrInvalidArguments)
	}

	mode, err := cfg.ViewMode()
	if err != nil {
		return err
	}
	if flagShowView != "" {
		if mode, err = parseViewFlag(flagShowView); err != nil {
			return err
		}
	}

	g, err := loadGridFile(ga.path, "", ga.rc, ga.sized)
	if err != nil {
		return err
	}

	rc = terminalSize(ga.rc)
	if cols := g.Height() * 2; cols > rc.ScreenW {
		fmt.Fprintf(os.Stderr, "Warning: scenario needs %d columns, terminal has %d\n", cols, rc.ScreenW)
	}

	theme := tui.DefaultTheme().WithOverrides(cfg.View.Palette)
	fmt.Println(tui.RenderGrid(g, mode, theme))
	return nil
}
