package openai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/heartmarshall/lenslearn/internal/domain"
	"github.com/heartmarshall/lenslearn/internal/provider"
)

// pcmFormat is 24 kHz signed 16-bit little-endian mono, matching Gemini.
const pcmFormat goopenai.SpeechResponseFormat = "pcm"

// Speaker synthesizes speech with the OpenAI speech endpoint.
type Speaker struct {
	client *goopenai.Client
	model  string
	voice  string
	log    *slog.Logger
}

// NewSpeaker creates a Speaker.
func NewSpeaker(client *goopenai.Client, model, voice string, logger *slog.Logger) *Speaker {
	return &Speaker{
		client: client,
		model:  model,
		voice:  voice,
		log:    logger.With("adapter", "openai", "model", model),
	}
}

func (s *Speaker) Name() string { return "openai" }

// Speak returns raw PCM, or nil when the endpoint returned an empty body.
func (s *Speaker) Speak(ctx context.Context, text string, lang domain.Language) ([]byte, error) {
	req := goopenai.CreateSpeechRequest{
		Model:          goopenai.SpeechModel(s.model),
		Input:          text,
		Voice:          goopenai.SpeechVoice(s.voice),
		ResponseFormat: pcmFormat,
	}
	if s.model == "gpt-4o-mini-tts" {
		req.Instructions = fmt.Sprintf("Speak %s clearly and slowly, as a language teacher would.", lang)
	}

	resp, err := s.client.CreateSpeech(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("openai: create speech: %w", err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("openai: read speech: %w", err)
	}

	s.log.DebugContext(ctx, "openai speech response",
		slog.String("voice", s.voice),
		slog.Int("audio_bytes", len(audio)),
	)
	if len(audio) == 0 {
		return nil, nil
	}
	return audio, nil
}

var _ provider.Speaker = (*Speaker)(nil)
