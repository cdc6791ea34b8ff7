package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/heartmarshall/lenslearn/internal/domain"
	"github.com/heartmarshall/lenslearn/internal/provider"
)

const (
	defaultVoice  = "Kore"
	japaneseVoice = "Puck"
)

// Speaker synthesizes speech with a Gemini TTS model. The model answers with
// PCM16 mono at 24 kHz in an inline data part.
type Speaker struct {
	models generator
	model  string
	log    *slog.Logger
}

// NewSpeaker creates a Speaker. models is usually client.Models.
func NewSpeaker(models generator, model string, logger *slog.Logger) *Speaker {
	return &Speaker{
		models: models,
		model:  model,
		log:    logger.With("adapter", "gemini", "model", model),
	}
}

func (s *Speaker) Name() string { return "gemini" }

// VoiceFor picks the prebuilt voice for a language.
func VoiceFor(lang domain.Language) string {
	if lang == domain.LanguageJapanese {
		return japaneseVoice
	}
	return defaultVoice
}

// Speak returns raw PCM, or nil when the response carries no audio part.
func (s *Speaker) Speak(ctx context.Context, text string, lang domain.Language) ([]byte, error) {
	voice := VoiceFor(lang)

	resp, err := s.models.GenerateContent(ctx, s.model,
		genai.Text(provider.SpeechPrompt(text)),
		&genai.GenerateContentConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &genai.SpeechConfig{
				VoiceConfig: &genai.VoiceConfig{
					PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: voice},
				},
			},
		})
	if err != nil {
		return nil, fmt.Errorf("gemini: generate speech: %w", err)
	}

	audio := firstInlineData(resp)
	s.log.DebugContext(ctx, "gemini speech response",
		slog.String("voice", voice),
		slog.Int("audio_bytes", len(audio)),
	)
	return audio, nil
}

func firstInlineData(resp *genai.GenerateContentResponse) []byte {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return nil
	}
	for _, part := range content.Parts {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data
		}
	}
	return nil
}
