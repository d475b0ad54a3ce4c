package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/nikverma/physlab/internal/coach"
	"github.com/nikverma/physlab/internal/config"
	"github.com/nikverma/physlab/internal/llm"
	"github.com/nikverma/physlab/internal/store"
	"github.com/spf13/cobra"
)

var coachCmd = &cobra.Command{
	Use:   "coach",
	Short: "Talk to the coach and inspect its API calls",
}

var coachStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which LLM provider the coach would use",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(config.DefaultConfigPath())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		llmCfg, ok := resolveLLMConfig(cfg)
		if !ok {
			fmt.Println("Coach: unavailable (no API key found)")
			fmt.Println("Set PHYSLAB_ANTHROPIC_API_KEY, PHYSLAB_OPENAI_API_KEY, or PHYSLAB_GEMINI_API_KEY.")
			return nil
		}

		model := ""
		switch llmCfg.Provider {
		case "anthropic":
			model = llmCfg.Anthropic.Model
		case "openai":
			model = llmCfg.OpenAI.Model
		case "gemini":
			model = llmCfg.Gemini.Model
		}

		fmt.Println("Coach: ready")
		fmt.Printf("Provider: %s\n", llmCfg.Provider)
		if model != "" {
			fmt.Printf("Model:    %s\n", model)
		}
		return nil
	},
}

var coachAskCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the coach a physics question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")

		cfg, err := config.Load(config.DefaultConfigPath())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		llmCfg, ok := resolveLLMConfig(cfg)
		if !ok {
			return fmt.Errorf("no LLM API key found; set PHYSLAB_ANTHROPIC_API_KEY, PHYSLAB_OPENAI_API_KEY, or PHYSLAB_GEMINI_API_KEY")
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
		provider, err := llm.NewProvider(ctx, llmCfg, s.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}

		svc := coach.NewService(provider, coach.DefaultConfig())
		answer, err := svc.Ask(ctx, question)
		if err != nil {
			return err
		}

		fmt.Println(answer.Headline)
		fmt.Println()
		fmt.Println(answer.Explanation)
		return nil
	},
}

var coachListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent coach API calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

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
		events, err := s.EventRepo().QueryLLMEvents(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No coach API calls logged yet.")
			return nil
		}

		// Header.
		fmt.Printf("%-5s  %-19s  %-14s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 100))

		for _, e := range events {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			fmt.Printf("%-5d  %-19s  %-14s  %-28s  %-6d  %-6d  %-7d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				truncate(e.Model, 28),
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var coachViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View full request/response for a coach API call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id int
		if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
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
		e, err := s.EventRepo().GetLLMEvent(ctx, id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}

		sep := strings.Repeat("─", 60)

		fmt.Printf("ID:        %d\n", e.ID)
		fmt.Printf("Time:      %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Provider:  %s\n", e.Provider)
		fmt.Printf("Model:     %s\n", e.Model)
		fmt.Printf("Purpose:   %s\n", e.Purpose)
		fmt.Printf("Tokens:    %d in / %d out\n", e.InputTokens, e.OutputTokens)
		fmt.Printf("Latency:   %dms\n", e.LatencyMs)
		fmt.Printf("Success:   %v\n", e.Success)
		if e.ErrorMessage != "" {
			fmt.Printf("Error:     %s\n", e.ErrorMessage)
		}

		fmt.Println()
		fmt.Println(sep)
		fmt.Println("REQUEST")
		fmt.Println(sep)
		if e.RequestBody != "" {
			fmt.Println(e.RequestBody)
		} else {
			fmt.Println("(not captured)")
		}

		fmt.Println(sep)
		fmt.Println("RESPONSE")
		fmt.Println(sep)
		if e.ResponseBody != "" {
			fmt.Println(e.ResponseBody)
		} else {
			fmt.Println("(not captured)")
		}

		return nil
	},
}

var coachUsageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show aggregated coach token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		usage, err := s.EventRepo().LLMUsage(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}

		if len(usage) == 0 {
			fmt.Println("No coach usage recorded yet.")
			return nil
		}

		fmt.Printf("%-32s  %6s  %10s  %10s  %10s\n",
			"Model", "Calls", "Input", "Output", "Cost")
		fmt.Println(strings.Repeat("─", 76))

		var totalCost float64
		var unknownModels []string
		for _, u := range usage {
			cost := llm.LookupCost(u.Model)
			if cost == nil {
				unknownModels = append(unknownModels, u.Model)
				fmt.Printf("%-32s  %6d  %10d  %10d  %10s\n",
					truncate(u.Model, 32), u.Requests, u.InputTokens, u.OutputTokens, "?")
				continue
			}
			c := cost.Cost(u.InputTokens, u.OutputTokens)
			totalCost += c
			fmt.Printf("%-32s  %6d  %10d  %10d  %9s\n",
				truncate(u.Model, 32), u.Requests, u.InputTokens, u.OutputTokens, formatCost(c))
		}

		fmt.Println(strings.Repeat("─", 76))
		label := "TOTAL"
		if len(unknownModels) > 0 {
			label = "TOTAL (partial)"
		}
		fmt.Printf("%-32s  %6s  %10s  %10s  %9s\n",
			label, "", "", "", formatCost(totalCost))

		if len(unknownModels) > 0 {
			fmt.Printf("\nPricing unavailable for: %s\n", strings.Join(unknownModels, ", "))
		}
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	coachListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	coachListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (review, twist_review, ask)")

	coachCmd.AddCommand(coachStatusCmd)
	coachCmd.AddCommand(coachAskCmd)
	coachCmd.AddCommand(coachListCmd)
	coachCmd.AddCommand(coachViewCmd)
	coachCmd.AddCommand(coachUsageCmd)
}
