package openai

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/heartmarshall/lenslearn/internal/domain"
	"github.com/heartmarshall/lenslearn/internal/provider"
)

var errNoChoices = fmt.Errorf("%w: no choices", domain.ErrMalformedResponse)

// jsonModeSuffix is appended because JSON mode only emits objects.
const jsonModeSuffix = `
Wrap the array in a JSON object under the key "objects".`

// Recognizer identifies objects with a vision-capable chat model.
type Recognizer struct {
	client *goopenai.Client
	model  string
	log    *slog.Logger
}

// NewRecognizer creates a Recognizer.
func NewRecognizer(client *goopenai.Client, model string, logger *slog.Logger) *Recognizer {
	return &Recognizer{
		client: client,
		model:  model,
		log:    logger.With("adapter", "openai", "model", model),
	}
}

func (r *Recognizer) Name() string { return "openai" }

// Recognize sends the image as a data URL and decodes the JSON answer.
func (r *Recognizer) Recognize(ctx context.Context, req provider.RecognizeRequest) ([]provider.RecognizedObject, error) {
	mime := req.MIMEType
	if mime == "" {
		mime = "image/jpeg"
	}
	dataURL := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(req.Image)

	resp, err := r.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: r.model,
		Messages: []goopenai.ChatCompletionMessage{{
			Role: goopenai.ChatMessageRoleUser,
			MultiContent: []goopenai.ChatMessagePart{
				{
					Type: goopenai.ChatMessagePartTypeText,
					Text: provider.RecognitionPrompt(req.Language) + jsonModeSuffix,
				},
				{
					Type:     goopenai.ChatMessagePartTypeImageURL,
					ImageURL: &goopenai.ChatMessageImageURL{URL: dataURL, Detail: goopenai.ImageURLDetailAuto},
				},
			},
		}},
		ResponseFormat: &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: %w", errNoChoices)
	}

	objects, err := provider.ParseObjects([]byte(resp.Choices[0].Message.Content))
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}

	r.log.DebugContext(ctx, "openai recognize response",
		slog.Int("objects", len(objects)),
		slog.Int("total_tokens", resp.Usage.TotalTokens),
	)
	return objects, nil
}
