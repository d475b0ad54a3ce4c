package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/nikverma/physlab/internal/content"
	"github.com/nikverma/physlab/internal/phase"
	"github.com/nikverma/physlab/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lab statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		gameID, _ := cmd.Flags().GetString("game")

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
		repo := s.EventRepo()

		if gameID != "" {
			return printGameStats(ctx, repo, gameID)
		}

		total, err := repo.SessionCount(ctx)
		if err != nil {
			return fmt.Errorf("count sessions: %w", err)
		}
		fmt.Printf("Lab runs: %d\n\n", total)

		fmt.Printf("%-16s  %-22s  %6s  %6s  %6s\n",
			"ID", "Name", "Runs", "Best", "Last")
		fmt.Println(strings.Repeat("─", 66))

		for _, g := range content.AllGames() {
			scores, err := repo.TestScoreHistory(ctx, g.ID)
			if err != nil {
				return fmt.Errorf("score history for %s: %w", g.ID, err)
			}
			best, last := "-", "-"
			if len(scores) > 0 {
				max := scores[0]
				for _, sc := range scores {
					if sc > max {
						max = sc
					}
				}
				best = fmt.Sprintf("%d%%", max)
				last = fmt.Sprintf("%d%%", scores[len(scores)-1])
			}
			fmt.Printf("%-16s  %-22s  %6d  %6s  %6s\n",
				g.ID, g.Name, len(scores), best, last)
		}

		fmt.Println("\nUse --game <id> for per-phase timing.")
		return nil
	},
}

func printGameStats(ctx context.Context, repo store.EventRepo, gameID string) error {
	g, err := content.GetGame(gameID)
	if err != nil {
		return err
	}

	avgs, err := repo.AvgPhaseMillis(ctx, gameID)
	if err != nil {
		return fmt.Errorf("phase timing for %s: %w", gameID, err)
	}
	if len(avgs) == 0 {
		fmt.Printf("No runs recorded for %s yet.\n", g.Name)
		return nil
	}

	fmt.Printf("%s — average time per phase\n", g.Name)
	fmt.Println(strings.Repeat("─", 40))
	for _, p := range phase.Sequence() {
		ms, ok := avgs[string(p)]
		if !ok {
			continue
		}
		fmt.Printf("%-16s  %6.1fs\n", p.Label(), float64(ms)/1000)
	}
	return nil
}

func init() {
	statsCmd.Flags().String("game", "", "Show per-phase timing for one game")
}
