package rest

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/lenslearn/internal/service/pronunciation"
)

type pronunciationService interface {
	Pronounce(ctx context.Context, input pronunciation.PronounceInput) ([]byte, error)
}

// PronunciationHandler serves spoken audio.
type PronunciationHandler struct {
	svc          pronunciationService
	maxBodyBytes int64
	log          *slog.Logger
}

// NewPronunciationHandler creates a PronunciationHandler.
func NewPronunciationHandler(svc pronunciationService, maxBodyBytes int64, logger *slog.Logger) *PronunciationHandler {
	return &PronunciationHandler{svc: svc, maxBodyBytes: maxBodyBytes, log: logger.With("handler", "pronunciation")}
}

type pronunciationRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// pronunciationResponse carries base64 PCM16, or null when no audio exists.
type pronunciationResponse struct {
	Audio *string `json:"audio"`
}

// Pronounce handles POST /api/pronunciation.
func (h *PronunciationHandler) Pronounce(w http.ResponseWriter, r *http.Request) {
	var req pronunciationRequest
	if err := decodeJSON(w, r, h.maxBodyBytes, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	audio, err := h.svc.Pronounce(r.Context(), pronunciation.PronounceInput{
		Text:     req.Text,
		Language: req.Language,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var resp pronunciationResponse
	if len(audio) > 0 {
		encoded := base64.StdEncoding.EncodeToString(audio)
		resp.Audio = &encoded
	}
	writeJSON(w, http.StatusOK, resp)
}
