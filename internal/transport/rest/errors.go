package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/lenslearn/internal/domain"
)

// statusClientClosedRequest records requests the client abandoned; nothing
// reads the response, but the access log keeps an honest status.
const statusClientClosedRequest = 499

// handleError maps a service error onto a status code and JSON error body.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrProviderUnavailable), errors.Is(err, domain.ErrMalformedResponse):
		log.WarnContext(r.Context(), "provider error", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "model provider failed")
	case errors.Is(err, context.Canceled):
		log.DebugContext(r.Context(), "request canceled")
		w.WriteHeader(statusClientClosedRequest)
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, "timed out")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
