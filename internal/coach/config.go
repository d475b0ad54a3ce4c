package coach

// Config holds review generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for review generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.5,
	}
}
