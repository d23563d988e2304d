package questionbank

// Config controls the LLM-backed bank.
type Config struct {
	// Validators run in order on every generated question; the first
	// failure rejects the whole set.
	Validators []Validator

	// MaxTokens is the token budget for one question-set response.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the standard validator chain and limits.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&AnswerConsistencyValidator{},
		},
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}
