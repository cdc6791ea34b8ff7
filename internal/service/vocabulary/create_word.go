package vocabulary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/lenslearn/internal/domain"
	"github.com/heartmarshall/lenslearn/pkg/ctxutil"
)

// CreateWord saves a word for the current user. When no translation is given
// the primary gloss is built from the word itself.
func (s *Service) CreateWord(ctx context.Context, input CreateWordInput) (*domain.SavedWord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	lang, err := input.Validate()
	if err != nil {
		return nil, err
	}

	word := strings.TrimSpace(input.Word)
	translation := strings.TrimSpace(input.Translation)
	if translation == "" {
		translation = s.gloss.Build(word, lang)
	}

	created, err := s.words.Create(ctx, domain.SavedWord{
		UserID:               userID,
		Word:                 word,
		Translation:          translation,
		SecondaryTranslation: trimOrNil(input.SecondaryTranslation),
		Language:             lang,
	})
	if err != nil {
		return nil, fmt.Errorf("create word: %w", err)
	}

	s.log.InfoContext(ctx, "word saved",
		slog.String("user_id", userID.String()),
		slog.String("word_id", created.ID.String()),
		slog.String("language", lang.String()),
	)

	return created, nil
}
