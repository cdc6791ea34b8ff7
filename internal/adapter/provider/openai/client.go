// Package openai implements object recognition and speech synthesis on the
// OpenAI API. It serves as the fallback behind Gemini.
package openai

import (
	goopenai "github.com/sashabaranov/go-openai"
)

// NewClient creates an OpenAI client. An empty baseURL keeps the public API.
func NewClient(apiKey, baseURL string) *goopenai.Client {
	cfg := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return goopenai.NewClientWithConfig(cfg)
}
