package app

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/heartmarshall/lenslearn/internal/adapter/provider/breaker"
	"github.com/heartmarshall/lenslearn/internal/adapter/provider/gemini"
	"github.com/heartmarshall/lenslearn/internal/adapter/provider/openai"
	"github.com/heartmarshall/lenslearn/internal/config"
	"github.com/heartmarshall/lenslearn/internal/provider"
)

// providerClients creates each SDK client at most once.
type providerClients struct {
	cfg    config.ProvidersConfig
	gemini *genai.Client
	openai *goopenai.Client
}

func (c *providerClients) geminiClient(ctx context.Context) (*genai.Client, error) {
	if c.gemini == nil {
		client, err := gemini.NewClient(ctx, c.cfg.GeminiAPIKey)
		if err != nil {
			return nil, err
		}
		c.gemini = client
	}
	return c.gemini, nil
}

func (c *providerClients) openaiClient() *goopenai.Client {
	if c.openai == nil {
		c.openai = openai.NewClient(c.cfg.OpenAIAPIKey, c.cfg.OpenAIBaseURL)
	}
	return c.openai
}

// chain lists the primary provider and, when set, the fallback.
func chain(primary, fallback string) []string {
	if fallback == "" {
		return []string{primary}
	}
	return []string{primary, fallback}
}

func (c *providerClients) recognizer(ctx context.Context, cfg config.RecognitionConfig, logger *slog.Logger) (*breaker.Recognizer, error) {
	var recognizers []provider.Recognizer
	for _, name := range chain(cfg.Provider, cfg.Fallback) {
		switch name {
		case config.ProviderGemini:
			client, err := c.geminiClient(ctx)
			if err != nil {
				return nil, err
			}
			recognizers = append(recognizers, gemini.NewRecognizer(client.Models, cfg.GeminiModel, logger))
		case config.ProviderOpenAI:
			recognizers = append(recognizers, openai.NewRecognizer(c.openaiClient(), cfg.OpenAIModel, logger))
		default:
			return nil, fmt.Errorf("unknown recognition provider %q", name)
		}
	}
	return breaker.NewRecognizer(logger, c.breakerSettings(), recognizers...), nil
}

func (c *providerClients) speaker(ctx context.Context, cfg config.PronunciationConfig, logger *slog.Logger) (*breaker.Speaker, error) {
	var speakers []provider.Speaker
	for _, name := range chain(cfg.Provider, cfg.Fallback) {
		switch name {
		case config.ProviderGemini:
			client, err := c.geminiClient(ctx)
			if err != nil {
				return nil, err
			}
			speakers = append(speakers, gemini.NewSpeaker(client.Models, cfg.GeminiModel, logger))
		case config.ProviderOpenAI:
			speakers = append(speakers, openai.NewSpeaker(c.openaiClient(), cfg.OpenAIModel, cfg.OpenAIVoice, logger))
		default:
			return nil, fmt.Errorf("unknown pronunciation provider %q", name)
		}
	}
	return breaker.NewSpeaker(logger, c.breakerSettings(), speakers...), nil
}

func (c *providerClients) breakerSettings() breaker.Settings {
	return breaker.Settings{
		MaxFailures: c.cfg.BreakerMaxFailures,
		OpenTimeout: c.cfg.BreakerOpenTimeout,
		CallTimeout: c.cfg.RequestTimeout,
	}
}
