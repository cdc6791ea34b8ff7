package vocabulary

import (
	"context"
	"fmt"

	"github.com/heartmarshall/lenslearn/internal/domain"
	"github.com/heartmarshall/lenslearn/pkg/ctxutil"
)

// ListWords returns every word of the current user, newest first.
func (s *Service) ListWords(ctx context.Context) ([]domain.SavedWord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	words, err := s.words.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	if words == nil {
		words = []domain.SavedWord{}
	}
	return words, nil
}
