package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List CPU targeting strategies",
	Long:  `Display all registered CPU strategies that sim can pit against each other.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	strategies := registry.List()

	if len(strategies) == 0 {
		fmt.Println("No strategies registered.")
		return
	}

	fmt.Println("Available strategies:")
	fmt.Println()
	for _, s := range strategies {
		fmt.Printf("  %-12s %s\n", s.ID, s.Title)
	}
	fmt.Println()
	fmt.Println("Use 'battleship sim --first <id> --second <id>' to compare two of them.")
}
