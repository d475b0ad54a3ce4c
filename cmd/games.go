package cmd

import (
	"fmt"
	"strings"

	"github.com/nikverma/physlab/internal/content"
	"github.com/spf13/cobra"
)

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List the mini-lab catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		games := content.AllGames()

		// Header.
		fmt.Printf("%-16s  %-22s  %-10s  %s\n",
			"ID", "Name", "Model", "Concept")
		fmt.Println(strings.Repeat("─", 90))

		for _, g := range games {
			concept := g.Concept
			if len(concept) > 38 {
				concept = concept[:35] + "..."
			}
			fmt.Printf("%-16s  %-22s  %-10s  %s\n",
				g.ID, g.Name, g.Model, concept)
		}

		fmt.Printf("\n%d labs\n", len(games))
		return nil
	},
}
