package vocabulary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/lenslearn/internal/domain"
	"github.com/heartmarshall/lenslearn/pkg/ctxutil"
)

// DeleteWord removes a word owned by the current user.
func (s *Service) DeleteWord(ctx context.Context, input DeleteWordInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.words.Delete(ctx, userID, input.WordID); err != nil {
		return fmt.Errorf("delete word: %w", err)
	}

	s.log.InfoContext(ctx, "word deleted",
		slog.String("user_id", userID.String()),
		slog.String("word_id", input.WordID.String()),
	)

	return nil
}
