package cmd

import (
	"context"
	"fmt"

	"github.com/nikverma/physlab/internal/content"
	"github.com/nikverma/physlab/internal/progress"
	"github.com/nikverma/physlab/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <game-id>",
	Short: "Reset saved progress for a game (or everything with --all)",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		if !all && len(args) != 1 {
			return fmt.Errorf("pass a game ID or --all")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		snapRepo := s.SnapshotRepo()

		var snapData *store.SnapshotData
		if snap, err := snapRepo.Latest(ctx); err == nil && snap != nil {
			snapData = &snap.Data
		}
		svc := progress.NewService(snapData, snapRepo)

		if all {
			for _, g := range content.AllGames() {
				svc.ResetGame(g.ID)
			}
		} else {
			g, err := content.GetGame(args[0])
			if err != nil {
				return err
			}
			svc.ResetGame(g.ID)
		}

		seq, err := s.NextSequence(ctx)
		if err != nil {
			return fmt.Errorf("reserve sequence: %w", err)
		}
		if err := svc.Persist(ctx, seq); err != nil {
			return fmt.Errorf("save progress: %w", err)
		}

		if all {
			fmt.Println("All lab progress reset.")
		} else {
			fmt.Printf("Progress for %s reset.\n", args[0])
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Reset every game")
}
