package cmd

import (
	"fmt"

	"github.com/nikverma/physlab/internal/content"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [game-id]",
	Short: "Open the lab bench, optionally jumping to a game",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		game := ""
		if len(args) == 1 {
			if _, err := content.GetGame(args[0]); err != nil {
				return fmt.Errorf("%w (run 'physlab games' to list them)", err)
			}
			game = args[0]
		}
		return runApp(cmd, game)
	},
}
