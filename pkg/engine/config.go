package engine

// DefaultModel serves recommendations unless configuration names another.
const DefaultModel = "llama-3.3-70b-versatile"

// Config holds configuration for the recommendation engine.
type Config struct {
	// Model is the backend model used for every completion.
	// Empty string means use DefaultModel.
	Model string

	// Temperature overrides the sampling temperature. Nil pins it to 0
	// for reproducible recommendations.
	Temperature *float64

	// MaxTokens caps the completion length. Nil means backend default.
	MaxTokens *int
}

// model returns the effective model name.
func (c Config) model() string {
	if c.Model == "" {
		return DefaultModel
	}
	return c.Model
}

// temperature returns the effective sampling temperature.
func (c Config) temperature() *float64 {
	if c.Temperature == nil {
		zero := 0.0
		return &zero
	}
	return c.Temperature
}
