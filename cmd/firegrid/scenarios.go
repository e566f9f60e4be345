package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/firegrid/internal/core"
	"github.com/vovakirdan/firegrid/internal/platform/tui"
	"github.com/vovakirdan/firegrid/internal/storage"
)

var (
	flagBrowse bool
	flagLimit  int
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List saved scenarios",
	Long: `Display the scenarios saved in the library, newest first.

With --browse an interactive table opens; pressing enter on a scenario
starts the editor on it.

Examples:
  firegrid scenarios
  firegrid scenarios --limit 50
  firegrid scenarios --browse
  firegrid scenarios rm 3f2a9c1e-...`,
	Args: cobra.NoArgs,
	Run:  runScenarios,
}

var scenariosRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a saved scenario",
	Args:  cobra.ExactArgs(1),
	Run:   runScenariosRm,
}

func init() {
	scenariosCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive scenario browser")
	scenariosCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum number of scenarios to show")
	scenariosCmd.AddCommand(scenariosRmCmd)
}

func runScenarios(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open scenario storage
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scenario library: %v\n", err)
		os.Exit(1)
	}

	if flagBrowse {
		rc := terminalSize(core.DefaultConfig())
		id, browseErr := tui.RunBrowser(store, rc.ScreenW, rc.ScreenH, flagLimit)
		store.Close()
		if browseErr != nil {
			fmt.Fprintf(os.Stderr, "Error running browser: %v\n", browseErr)
			os.Exit(1)
		}
		if id == "" {
			return
		}
		flagScenario = id
		runEdit(cmd, nil)
		return
	}
	defer store.Close()

	entries, err := store.ListScenarios(flagLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scenarios: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No scenarios saved yet.")
		fmt.Println()
		fmt.Println("Export with 'firegrid --save <name>' to add one.")
		return
	}

	total, err := store.CountScenarios()
	if err != nil {
		total = len(entries)
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, e := range entries {
		maxNameLen = max(maxNameLen, len(e.Name))
	}

	// Print header
	fmt.Printf("  %-*s  %-9s  %-16s  %s\n", maxNameLen, "Name", "Size", "Saved", "ID")
	fmt.Printf("  %-*s  %-9s  %-16s  %s\n", maxNameLen, "----", "----", "-----", "--")

	// Print scenarios
	for _, e := range entries {
		size := fmt.Sprintf("%dx%d", e.Width, e.Height)
		fmt.Printf("  %-*s  %-9s  %-16s  %s\n", maxNameLen, e.Name, size, e.CreatedAt.Format("2006-01-02 15:04"), e.ID)
	}

	if total > len(entries) {
		fmt.Println()
		fmt.Printf("Showing %d of %d scenarios.\n", len(entries), total)
	}
}

func runScenariosRm(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scenario library: %v\n", err)
		os.Exit(1)
	}

	err = store.DeleteScenario(args[0])
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting scenario: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted scenario %s\n", args[0])
}
