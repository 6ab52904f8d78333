package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/matchem-poker/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))

// newTable returns the bordered table the CLI prints listings in.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("245"))).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

func runList(_ *cobra.Command, _ []string) error {
	modes := registry.Modes()
	if len(modes) == 0 {
		fmt.Println("No modes registered.")
		return nil
	}

	t := newTable("Mode", "Title", "About")
	for _, m := range modes {
		t.Row(m.ID, m.Title, m.About)
	}
	fmt.Println(t.Render())
	fmt.Println("Run 'matchem play <mode>' to play.")
	return nil
}
