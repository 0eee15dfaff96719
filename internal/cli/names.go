package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"lvc/pkg/names"
)

// newNamesCmd creates the names command: list every color name a
// literal token may use, with its hex code and a color sample.
func newNamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "List the known color names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printNamesTable()
			return nil
		},
	}
}

func printNamesTable() {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(colorWhite)

	all := names.All()
	rows := make([][]string, 0, len(all))
	for _, e := range all {
		rows = append(rows, []string{e.Name, e.Hex, "██████"})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Hex", "Sample").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 2 {
				return lipgloss.NewStyle().Foreground(lipgloss.Color(all[row].Hex))
			}
			return lipgloss.NewStyle()
		})

	fmt.Println(t)
}
