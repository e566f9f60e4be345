package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/firegrid/internal/registry"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List scenario file formats",
	Long:  `Shows the scenario file formats and the extensions that select them.`,
	Run:   runFormats,
}

func runFormats(cmd *cobra.Command, args []string) {
	list := registry.List()

	if len(list) == 0 {
		fmt.Println("No formats available.")
		return
	}

	fmt.Println("Available formats:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, f := range list {
		maxIDLen = max(maxIDLen, len(f.ID))
		maxTitleLen = max(maxTitleLen, len(f.Title))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Extensions")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "----------")

	// Print formats
	for _, f := range list {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, f.ID, maxTitleLen, f.Title, strings.Join(f.Extensions, " "))
	}

	fmt.Println()
	fmt.Println("Files with other extensions are read as flat records.")
}
