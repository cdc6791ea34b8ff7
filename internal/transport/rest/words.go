package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lenslearn/internal/domain"
	"github.com/heartmarshall/lenslearn/internal/service/vocabulary"
)

type vocabularyService interface {
	ListWords(ctx context.Context) ([]domain.SavedWord, error)
	CreateWord(ctx context.Context, input vocabulary.CreateWordInput) (*domain.SavedWord, error)
	DeleteWord(ctx context.Context, input vocabulary.DeleteWordInput) error
}

// WordHandler serves the saved-words endpoints.
type WordHandler struct {
	svc          vocabularyService
	maxBodyBytes int64
	log          *slog.Logger
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(svc vocabularyService, maxBodyBytes int64, logger *slog.Logger) *WordHandler {
	return &WordHandler{svc: svc, maxBodyBytes: maxBodyBytes, log: logger.With("handler", "words")}
}

type wordResponse struct {
	ID                   string    `json:"id"`
	Word                 string    `json:"word"`
	Translation          string    `json:"translation"`
	SecondaryTranslation *string   `json:"secondary_translation"`
	Language             string    `json:"language"`
	CreatedAt            time.Time `json:"created_at"`
}

type createWordRequest struct {
	Word                 string  `json:"word"`
	Translation          string  `json:"translation"`
	SecondaryTranslation *string `json:"secondary_translation"`
	Language             string  `json:"language"`
	UserID               string  `json:"user_id"`
}

// List handles GET /api/words?user_id=.
func (h *WordHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, err := withUser(r.Context(), r.URL.Query().Get("user_id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	words, err := h.svc.ListWords(ctx)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]wordResponse, len(words))
	for i, word := range words {
		resp[i] = toWordResponse(word)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /api/words.
func (h *WordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createWordRequest
	if err := decodeJSON(w, r, h.maxBodyBytes, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = r.URL.Query().Get("user_id")
	}
	ctx, err := withUser(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	word, err := h.svc.CreateWord(ctx, vocabulary.CreateWordInput{
		Word:                 req.Word,
		Translation:          req.Translation,
		SecondaryTranslation: req.SecondaryTranslation,
		Language:             req.Language,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toWordResponse(*word))
}

// Delete handles DELETE /api/words/{id}?user_id=.
func (h *WordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, err := withUser(r.Context(), r.URL.Query().Get("user_id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("id", "must be a UUID"))
		return
	}

	if err := h.svc.DeleteWord(ctx, vocabulary.DeleteWordInput{WordID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toWordResponse(w domain.SavedWord) wordResponse {
	return wordResponse{
		ID:                   w.ID.String(),
		Word:                 w.Word,
		Translation:          w.Translation,
		SecondaryTranslation: w.SecondaryTranslation,
		Language:             w.Language.String(),
		CreatedAt:            w.CreatedAt.UTC(),
	}
}
