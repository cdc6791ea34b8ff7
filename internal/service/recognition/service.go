package recognition

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/lenslearn/internal/provider"
)

type recognizer interface {
	Name() string
	Recognize(ctx context.Context, req provider.RecognizeRequest) ([]provider.RecognizedObject, error)
}

// Service identifies objects in photos.
type Service struct {
	recognizer    recognizer
	maxImageBytes int
	log           *slog.Logger
}

// NewService creates a new recognition service. maxImageBytes bounds the
// decoded image size.
func NewService(
	log *slog.Logger,
	recognizer recognizer,
	maxImageBytes int,
) *Service {
	return &Service{
		recognizer:    recognizer,
		maxImageBytes: maxImageBytes,
		log:           log.With("service", "recognition"),
	}
}
