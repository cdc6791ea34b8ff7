package recognition

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/lenslearn/internal/domain"
	"github.com/heartmarshall/lenslearn/internal/provider"
)

// Identify asks the recognizer for the objects in the image. Entries without
// a name are dropped; positions are returned as reported.
func (s *Service) Identify(ctx context.Context, input IdentifyInput) ([]domain.IdentifiedObject, error) {
	img, lang, err := input.decode(s.maxImageBytes)
	if err != nil {
		return nil, err
	}

	raw, err := s.recognizer.Recognize(ctx, provider.RecognizeRequest{
		Image:    img.data,
		MIMEType: img.mimeType,
		Language: lang,
	})
	if err != nil {
		return nil, fmt.Errorf("recognize: %w", err)
	}

	objects := make([]domain.IdentifiedObject, 0, len(raw))
	for _, o := range raw {
		name := strings.TrimSpace(o.Name)
		if name == "" {
			continue
		}
		objects = append(objects, domain.IdentifiedObject{
			ID:          domain.ObjectID(len(objects)),
			Name:        name,
			Translation: strings.TrimSpace(o.Translation),
			Position:    domain.Position{X: o.X, Y: o.Y},
			Language:    lang,
		})
	}

	s.log.InfoContext(ctx, "objects identified",
		slog.String("provider", s.recognizer.Name()),
		slog.String("language", lang.String()),
		slog.Int("image_bytes", len(img.data)),
		slog.Int("objects", len(objects)),
		slog.Int("dropped", len(raw)-len(objects)),
	)

	return objects, nil
}
