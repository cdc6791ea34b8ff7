package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/lenslearn/internal/domain"
	"github.com/heartmarshall/lenslearn/internal/service/recognition"
)

type recognitionService interface {
	Identify(ctx context.Context, input recognition.IdentifyInput) ([]domain.IdentifiedObject, error)
}

// IdentifyHandler serves object identification.
type IdentifyHandler struct {
	svc          recognitionService
	maxBodyBytes int64
	log          *slog.Logger
}

// NewIdentifyHandler creates an IdentifyHandler.
func NewIdentifyHandler(svc recognitionService, maxBodyBytes int64, logger *slog.Logger) *IdentifyHandler {
	return &IdentifyHandler{svc: svc, maxBodyBytes: maxBodyBytes, log: logger.With("handler", "identify")}
}

type identifyRequest struct {
	ImageBase64    string `json:"image_base64"`
	TargetLanguage string `json:"target_language"`
}

type objectResponse struct {
	Name        string  `json:"name"`
	Translation string  `json:"translation"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
}

// Identify handles POST /api/identify.
func (h *IdentifyHandler) Identify(w http.ResponseWriter, r *http.Request) {
	var req identifyRequest
	if err := decodeJSON(w, r, h.maxBodyBytes, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	objects, err := h.svc.Identify(r.Context(), recognition.IdentifyInput{
		ImageBase64: req.ImageBase64,
		Language:    req.TargetLanguage,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]objectResponse, len(objects))
	for i, o := range objects {
		resp[i] = objectResponse{
			Name:        o.Name,
			Translation: o.Translation,
			X:           o.Position.X,
			Y:           o.Position.Y,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
