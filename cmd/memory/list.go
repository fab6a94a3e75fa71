package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game modes",
	Long:  `Shows a list of all registered game modes and the face catalogs available to them.`,
	Run:   runList,
}

var listHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	modes := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Mode", "Title").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return listHeaderStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, g := range games {
		modes.Row(g.ID, g.Title)
	}

	fmt.Println(modes)
	if catalogs, err := catalogNames(); err != nil {
		logger.Error("cannot list face catalogs", "error", err)
	} else {
		fmt.Printf("Face catalogs: %s\n", strings.Join(catalogs, ", "))
	}
	fmt.Println("Run 'memory play <mode>' to play.")
}
