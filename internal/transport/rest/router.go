package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/lenslearn/internal/config"
	"github.com/heartmarshall/lenslearn/internal/transport/middleware"
)

// Limits are the per-IP request budgets of the model-backed endpoints.
type Limits struct {
	IdentifyPerMinute      int
	PronunciationPerMinute int
}

// Router holds everything NewRouter mounts.
type Router struct {
	Words         *WordHandler
	Identify      *IdentifyHandler
	Pronunciation *PronunciationHandler
	Health        *HealthHandler

	Auth    middleware.Middleware
	CORS    config.CORSConfig
	Limiter *middleware.RateLimiter
	Limits  Limits
	Logger  *slog.Logger
}

// Handler builds the HTTP handler. Probes skip auth; API routes go through
// the full chain.
func (rt Router) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("GET /api/words", rt.Words.List)
	api.HandleFunc("POST /api/words", rt.Words.Create)
	api.HandleFunc("DELETE /api/words/{id}", rt.Words.Delete)
	api.Handle("POST /api/identify",
		rt.Limiter.Limit("identify", rt.Limits.IdentifyPerMinute)(http.HandlerFunc(rt.Identify.Identify)))
	api.Handle("POST /api/pronunciation",
		rt.Limiter.Limit("pronunciation", rt.Limits.PronunciationPerMinute)(http.HandlerFunc(rt.Pronunciation.Pronounce)))

	root := http.NewServeMux()
	root.HandleFunc("GET /live", rt.Health.Live)
	root.HandleFunc("GET /ready", rt.Health.Ready)
	root.HandleFunc("GET /health", rt.Health.Health)
	root.Handle("/api/", rt.Auth(api))

	return middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(rt.Logger),
		middleware.CORS(rt.CORS),
		middleware.Logger(rt.Logger),
	)(root)
}
