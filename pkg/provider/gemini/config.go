package gemini

// Config holds configuration for the Gemini provider adapter.
type Config struct {
	// APIKey for the Gemini API (required).
	APIKey string
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return errMissingAPIKey
	}
	return nil
}
