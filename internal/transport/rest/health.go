package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/heartmarshall/lenslearn/internal/provider"
)

// pingTimeout bounds the store round trip of a probe.
const pingTimeout = 3 * time.Second

// Health statuses.
const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
	StatusDown     = "down"
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to dbPinger, e.g. (*sql.DB).PingContext.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// ProviderChain is a capability served by one or more model providers.
type ProviderChain interface {
	Name() string
	Availability() []provider.Availability
}

// HealthHandler serves the probes and the detailed health report.
type HealthHandler struct {
	db      dbPinger
	version string
	chains  map[string]ProviderChain
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler. chains maps a capability
// (recognition, pronunciation) to the providers serving it.
func NewHealthHandler(db dbPinger, version string, chains map[string]ProviderChain) *HealthHandler {
	return &HealthHandler{db: db, version: version, chains: chains, now: time.Now}
}

// HealthResponse is the body of every health endpoint.
type HealthResponse struct {
	Status     string               `json:"status"`
	Version    string               `json:"version,omitempty"`
	Components map[string]Component `json:"components,omitempty"`
	Timestamp  time.Time            `json:"timestamp"`
}

// Component is the health of the store or of one provider chain.
type Component struct {
	Status    string                  `json:"status"`
	Latency   string                  `json:"latency,omitempty"`
	Chain     string                  `json:"chain,omitempty"`
	Providers []provider.Availability `json:"providers,omitempty"`
}

// Live always answers 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: StatusOK, Timestamp: h.now().UTC()})
}

// Ready answers 503 while the vocabulary store is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())
	status := http.StatusOK
	if db.Status != StatusOK {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, HealthResponse{Status: db.Status, Timestamp: h.now().UTC()})
}

// Health reports the store and every provider chain. Providers are billed
// per call, so their breaker state is reported instead of probing them. A
// chain whose breakers are all open degrades the service but keeps it ready.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())
	components := map[string]Component{"database": db}
	overall := db.Status

	for name, chain := range h.chains {
		c := chainComponent(chain)
		components[name] = c
		if c.Status == StatusDegraded && overall == StatusOK {
			overall = StatusDegraded
		}
	}

	status := http.StatusOK
	if overall == StatusDown {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  h.now().UTC(),
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) Component {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return Component{Status: StatusDown}
	}
	return Component{Status: StatusOK, Latency: time.Since(start).String()}
}

func chainComponent(chain ProviderChain) Component {
	providers := chain.Availability()
	status := StatusDegraded
	for _, p := range providers {
		if !p.Open() {
			status = StatusOK
			break
		}
	}
	return Component{Status: status, Chain: chain.Name(), Providers: providers}
}
