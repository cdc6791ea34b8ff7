package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/lenslearn/internal/domain"
)

// SeedWord inserts a saved word for userID with an explicit creation time.
// Returns the persisted domain.SavedWord.
func SeedWord(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, word string, lang domain.Language, createdAt time.Time) domain.SavedWord {
	t.Helper()

	w := domain.SavedWord{
		ID:          uuid.New(),
		UserID:      userID,
		Word:        word,
		Translation: word,
		Language:    lang,
		CreatedAt:   createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO saved_words (id, user_id, word, translation, language, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		w.ID, w.UserID, w.Word, w.Translation, string(w.Language), w.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert: %v", err)
	}

	return w
}
