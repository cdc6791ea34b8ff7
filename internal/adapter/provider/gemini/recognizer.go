package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/heartmarshall/lenslearn/internal/provider"
)

// Recognizer identifies objects with a multimodal Gemini model.
type Recognizer struct {
	models generator
	model  string
	log    *slog.Logger
}

// NewRecognizer creates a Recognizer. models is usually client.Models.
func NewRecognizer(models generator, model string, logger *slog.Logger) *Recognizer {
	return &Recognizer{
		models: models,
		model:  model,
		log:    logger.With("adapter", "gemini", "model", model),
	}
}

func (r *Recognizer) Name() string { return "gemini" }

// objectsSchema constrains the model to the array shape ParseObjects expects.
var objectsSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":        {Type: genai.TypeString},
			"translation": {Type: genai.TypeString},
			"x":           {Type: genai.TypeNumber},
			"y":           {Type: genai.TypeNumber},
		},
		Required: []string{"name", "translation", "x", "y"},
	},
}

// Recognize sends the image with the recognition prompt and decodes the JSON answer.
func (r *Recognizer) Recognize(ctx context.Context, req provider.RecognizeRequest) ([]provider.RecognizedObject, error) {
	mime := req.MIMEType
	if mime == "" {
		mime = "image/jpeg"
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(req.Image, mime),
			genai.NewPartFromText(provider.RecognitionPrompt(req.Language)),
		}, genai.RoleUser),
	}

	r.log.DebugContext(ctx, "gemini recognize request",
		slog.String("language", req.Language.String()),
		slog.Int("image_bytes", len(req.Image)),
	)

	resp, err := r.models.GenerateContent(ctx, r.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   objectsSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: generate content: %w", err)
	}

	objects, err := provider.ParseObjects([]byte(resp.Text()))
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}

	r.log.DebugContext(ctx, "gemini recognize response", slog.Int("objects", len(objects)))
	return objects, nil
}
