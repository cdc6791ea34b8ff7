package vocabulary

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/lenslearn/internal/domain"
)

type wordRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.SavedWord, error)
	Create(ctx context.Context, w domain.SavedWord) (*domain.SavedWord, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type glosser interface {
	Build(name string, lang domain.Language) string
}

// Service manages a user's saved vocabulary.
type Service struct {
	words wordRepo
	gloss glosser
	log   *slog.Logger
}

// NewService creates a new vocabulary service.
func NewService(
	log *slog.Logger,
	words wordRepo,
	gloss glosser,
) *Service {
	return &Service{
		words: words,
		gloss: gloss,
		log:   log.With("service", "vocabulary"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
