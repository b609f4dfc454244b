package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termplay/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	width := len("Name")
	for _, g := range games {
		width = max(width, len(g.Name))
	}
	fmt.Printf("  %-*s  %s\n", width, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", width, "----", "-----------")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", width, g.Name, g.Description)
	}

	fmt.Println()
	fmt.Println("Run 'termplay game <name>' to play a game.")
}
