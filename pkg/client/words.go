package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

type wordPayload struct {
	ID                   uuid.UUID `json:"id"`
	Word                 string    `json:"word"`
	Translation          string    `json:"translation"`
	SecondaryTranslation *string   `json:"secondary_translation"`
	Language             Language  `json:"language"`
	CreatedAt            time.Time `json:"created_at"`
}

type createWordRequest struct {
	Word                 string    `json:"word"`
	Translation          string    `json:"translation"`
	SecondaryTranslation *string   `json:"secondary_translation"`
	Language             Language  `json:"language"`
	UserID               uuid.UUID `json:"user_id"`
}

func (p wordPayload) toWord() SavedWord {
	return SavedWord{
		ID:                   p.ID,
		Word:                 p.Word,
		Translation:          p.Translation,
		SecondaryTranslation: p.SecondaryTranslation,
		Language:             p.Language,
		CreatedAt:            p.CreatedAt,
	}
}

// ListWords returns every word saved by the session user, newest first.
func (c *Client) ListWords(ctx context.Context, s Session) ([]SavedWord, error) {
	if err := checkSession(s); err != nil {
		return nil, err
	}

	var payload []wordPayload
	if err := c.do(ctx, http.MethodGet, "/api/words", sessionQuery(s), s.Token, nil, &payload); err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}

	words := make([]SavedWord, len(payload))
	for i, p := range payload {
		words[i] = p.toWord()
	}
	return words, nil
}

// CreateWord persists w. The returned word carries the server-assigned id and
// creation time.
func (c *Client) CreateWord(ctx context.Context, s Session, w NewWord) (*SavedWord, error) {
	if err := checkSession(s); err != nil {
		return nil, err
	}
	if strings.TrimSpace(w.Word) == "" {
		return nil, invalid("word is empty")
	}
	if !w.Language.Valid() {
		return nil, invalid("unsupported language %q", w.Language)
	}

	req := createWordRequest{
		Word:                 w.Word,
		Translation:          w.Translation,
		SecondaryTranslation: w.SecondaryTranslation,
		Language:             w.Language,
		UserID:               s.UserID,
	}
	var payload wordPayload
	if err := c.do(ctx, http.MethodPost, "/api/words", nil, s.Token, req, &payload); err != nil {
		return nil, fmt.Errorf("create word: %w", err)
	}
	if payload.ID == uuid.Nil {
		return nil, fmt.Errorf("create word: %w: missing id", ErrMalformedResponse)
	}

	saved := payload.toWord()
	return &saved, nil
}

// DeleteWord removes one of the session user's words.
func (c *Client) DeleteWord(ctx context.Context, s Session, id uuid.UUID) error {
	if err := checkSession(s); err != nil {
		return err
	}
	if id == uuid.Nil {
		return invalid("word id is empty")
	}

	if err := c.do(ctx, http.MethodDelete, "/api/words/"+id.String(), sessionQuery(s), s.Token, nil, nil); err != nil {
		return fmt.Errorf("delete word: %w", err)
	}
	return nil
}

func checkSession(s Session) error {
	if s.UserID == uuid.Nil {
		return invalid("session has no user id")
	}
	return nil
}
