package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/nikverma/physlab/internal/app"
	"github.com/nikverma/physlab/internal/coach"
	"github.com/nikverma/physlab/internal/config"
	"github.com/nikverma/physlab/internal/llm"
	"github.com/nikverma/physlab/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// gameOverride, when non-empty, pre-selects a game on the lab bench.
func runApp(cmd *cobra.Command, gameOverride string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	defaultGame := cfg.DefaultGame
	if gameOverride != "" {
		defaultGame = gameOverride
	}

	opts := app.Options{
		EventRepo:      st.EventRepo(),
		SnapshotRepo:   st.SnapshotRepo(),
		DebounceWindow: cfg.DebounceWindow(),
		SnapshotKeep:   cfg.ResolvedSnapshotKeep(),
		DefaultGame:    defaultGame,
		Sound:          cfg.SoundEnabled(),
		Sequence:       st.NextSequence,
	}

	// Build the LLM coach (optional; the labs work without it).
	llmCfg, ok := resolveLLMConfig(cfg)
	if !ok {
		fmt.Fprintln(os.Stderr, "No LLM API key found; the coach will be unavailable.")
		fmt.Fprintln(os.Stderr, "Set PHYSLAB_ANTHROPIC_API_KEY, PHYSLAB_OPENAI_API_KEY, or PHYSLAB_GEMINI_API_KEY to enable it.")
	} else {
		provider, err := llm.NewProvider(ctx, llmCfg, st.EventRepo())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "The coach will be unavailable.")
		} else {
			opts.Coach = coach.NewService(provider, coach.DefaultConfig())
		}
	}

	return app.Run(opts)
}

// resolveLLMConfig merges env vars and the config file into an LLM config.
// Env vars win; the config file's [coach] section fills in what they leave
// unset; as a last resort standard API key env vars are probed.
func resolveLLMConfig(cfg config.Config) (llm.Config, bool) {
	llmCfg := llm.ConfigFromEnv()

	if os.Getenv("PHYSLAB_LLM_PROVIDER") == "" && cfg.Coach.Provider != "" {
		llmCfg.Provider = cfg.Coach.Provider
	}
	if m := cfg.Coach.Model; m != "" {
		switch llmCfg.Provider {
		case "anthropic":
			if os.Getenv("PHYSLAB_ANTHROPIC_MODEL") == "" {
				llmCfg.Anthropic.Model = m
			}
		case "openai":
			if os.Getenv("PHYSLAB_OPENAI_MODEL") == "" {
				llmCfg.OpenAI.Model = m
			}
		case "gemini":
			if os.Getenv("PHYSLAB_GEMINI_MODEL") == "" {
				llmCfg.Gemini.Model = m
			}
		}
	}

	if llmCfg.Validate() == nil {
		return llmCfg, true
	}
	if discovered, found := llm.DiscoverConfig(); found {
		return discovered, true
	}
	return llm.Config{}, false
}
