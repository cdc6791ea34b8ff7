package config

import (
	"fmt"
	"slices"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

var (
	knownDrivers   = []string{DriverPostgres, DriverSQLite}
	knownProviders = []string{ProviderGemini, ProviderOpenAI}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if !slices.Contains(knownDrivers, c.Database.Driver) {
		return fmt.Errorf("database.driver must be one of %v (got %q)", knownDrivers, c.Database.Driver)
	}

	if c.Auth.JWTSecret != "" && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.RequireToken && c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.require_token needs auth.jwt_secret")
	}

	if err := c.validateProviderChoice("recognition", c.Recognition.Provider, c.Recognition.Fallback); err != nil {
		return err
	}
	if err := c.validateProviderChoice("pronunciation", c.Pronunciation.Provider, c.Pronunciation.Fallback); err != nil {
		return err
	}

	if c.Recognition.MaxImageBytes <= 0 {
		return fmt.Errorf("recognition.max_image_bytes must be > 0 (got %d)", c.Recognition.MaxImageBytes)
	}
	if c.Pronunciation.CacheSize < 0 {
		return fmt.Errorf("pronunciation.cache_size must be >= 0 (got %d)", c.Pronunciation.CacheSize)
	}
	if c.Providers.BreakerMaxFailures == 0 {
		return fmt.Errorf("providers.breaker_max_failures must be > 0")
	}
	// Zero turns limiting off for that endpoint.
	if c.RateLimit.IdentifyPerMinute < 0 || c.RateLimit.PronunciationPerMinute < 0 {
		return fmt.Errorf("rate_limit per-minute values must be >= 0")
	}
	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %s)", c.RateLimit.CleanupInterval)
	}

	return nil
}

func (c *Config) validateProviderChoice(section, primary, fallback string) error {
	if !slices.Contains(knownProviders, primary) {
		return fmt.Errorf("%s.provider must be one of %v (got %q)", section, knownProviders, primary)
	}
	if !c.hasKey(primary) {
		return fmt.Errorf("%s.provider %q has no API key configured", section, primary)
	}
	if fallback == "" {
		return nil
	}
	if !slices.Contains(knownProviders, fallback) {
		return fmt.Errorf("%s.fallback must be one of %v (got %q)", section, knownProviders, fallback)
	}
	if fallback == primary {
		return fmt.Errorf("%s.fallback must differ from %s.provider", section, section)
	}
	if !c.hasKey(fallback) {
		return fmt.Errorf("%s.fallback %q has no API key configured", section, fallback)
	}
	return nil
}

func (c *Config) hasKey(provider string) bool {
	switch provider {
	case ProviderGemini:
		return c.Providers.GeminiAPIKey != ""
	case ProviderOpenAI:
		return c.Providers.OpenAIAPIKey != ""
	}
	return false
}
