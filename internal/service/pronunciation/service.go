// Package pronunciation synthesizes spoken audio for saved and identified
// words. Concurrent identical requests share one batch; a batch first reads
// the clip store and only calls the speaker for what is missing. Results are
// kept in an expiring LRU cache in front of both.
package pronunciation

import (
	"context"
	"log/slog"
	"time"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/heartmarshall/lenslearn/internal/domain"
)

const (
	maxBatch    = 16
	parallelism = 4
)

type speaker interface {
	Name() string
	Speak(ctx context.Context, text string, lang domain.Language) ([]byte, error)
}

// clipStore persists synthesized audio.
type clipStore interface {
	GetMany(ctx context.Context, keys []domain.ClipKey) (map[domain.ClipKey][]byte, error)
	Put(ctx context.Context, clip domain.Clip) error
}

type key = domain.ClipKey

// Options tunes coalescing and caching.
type Options struct {
	// CacheSize is the number of clips kept. Zero disables caching.
	CacheSize int
	CacheTTL  time.Duration
	// BatchWait is how long the loader collects requests before calling out.
	BatchWait time.Duration
}

// Service provides pronunciation audio.
type Service struct {
	speaker speaker
	clips   clipStore
	loader  *dataloader.Loader[key, []byte]
	cache   *expirable.LRU[key, []byte]
	log     *slog.Logger
}

// NewService creates a new pronunciation service. clips may be nil, in which
// case every cache miss goes to the speaker.
func NewService(
	log *slog.Logger,
	speaker speaker,
	clips clipStore,
	opts Options,
) *Service {
	s := &Service{
		speaker: speaker,
		clips:   clips,
		log:     log.With("service", "pronunciation"),
	}
	if opts.CacheSize > 0 {
		s.cache = expirable.NewLRU[key, []byte](opts.CacheSize, nil, opts.CacheTTL)
	}
	// The loader is long-lived, so its own cache is disabled; the LRU above
	// owns expiry.
	s.loader = dataloader.NewBatchedLoader(
		s.batch,
		dataloader.WithWait[key, []byte](opts.BatchWait),
		dataloader.WithBatchCapacity[key, []byte](maxBatch),
		dataloader.WithCache[key, []byte](&dataloader.NoCache[key, []byte]{}),
	)
	return s
}
