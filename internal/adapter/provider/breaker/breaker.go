// Package breaker puts each model provider behind a circuit breaker and
// falls through an ordered list of providers until one answers.
package breaker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/heartmarshall/lenslearn/internal/domain"
	"github.com/heartmarshall/lenslearn/internal/provider"
)

// Settings configures every breaker in a chain.
type Settings struct {
	// MaxFailures is the number of consecutive failures that opens a breaker.
	MaxFailures uint32
	// OpenTimeout is how long an open breaker rejects calls before probing.
	OpenTimeout time.Duration
	// CallTimeout bounds a single provider call. Zero means no extra bound.
	CallTimeout time.Duration
}

type link struct {
	name string
	cb   *gobreaker.CircuitBreaker
}

func newLink(kind, name string, s Settings, log *slog.Logger) link {
	return link{
		name: name,
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        kind + ":" + name,
			MaxRequests: 1,
			Timeout:     s.OpenTimeout,
			ReadyToTrip: func(c gobreaker.Counts) bool {
				return c.ConsecutiveFailures >= s.MaxFailures
			},
			// A caller giving up says nothing about the provider's health.
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, context.Canceled)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Warn("circuit breaker state change",
					slog.String("breaker", name),
					slog.String("from", from.String()),
					slog.String("to", to.String()),
				)
			},
		}),
	}
}

// execute runs fn through the breaker with the per-call timeout applied.
func execute[T any](ctx context.Context, l link, timeout time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	res, err := l.cb.Execute(func() (interface{}, error) {
		return fn(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return res.(T), nil
}

func chainName(links []link) string {
	names := make([]string, len(links))
	for i, l := range links {
		names[i] = l.name
	}
	return strings.Join(names, "+")
}

func availability(links []link) []provider.Availability {
	out := make([]provider.Availability, len(links))
	for i, l := range links {
		out[i] = provider.Availability{Provider: l.name, State: l.cb.State().String()}
	}
	return out
}

func unavailable(errs []error) error {
	return fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, errors.Join(errs...))
}

// Recognizer tries each recognizer in order.
type Recognizer struct {
	links    []link
	backends []provider.Recognizer
	timeout  time.Duration
	log      *slog.Logger
}

// NewRecognizer chains recognizers; the first is primary.
func NewRecognizer(logger *slog.Logger, s Settings, recognizers ...provider.Recognizer) *Recognizer {
	log := logger.With("adapter", "breaker")
	r := &Recognizer{backends: recognizers, timeout: s.CallTimeout, log: log}
	for _, rec := range recognizers {
		r.links = append(r.links, newLink("recognizer", rec.Name(), s, log))
	}
	return r
}

func (r *Recognizer) Name() string { return chainName(r.links) }

// Availability reports each recognizer's breaker state, primary first.
func (r *Recognizer) Availability() []provider.Availability { return availability(r.links) }

// Recognize returns the first successful answer. When every provider fails
// the error wraps domain.ErrProviderUnavailable and each provider's error.
func (r *Recognizer) Recognize(ctx context.Context, req provider.RecognizeRequest) ([]provider.RecognizedObject, error) {
	var errs []error
	for i, l := range r.links {
		backend := r.backends[i]
		out, err := execute(ctx, l, r.timeout, func(ctx context.Context) ([]provider.RecognizedObject, error) {
			return backend.Recognize(ctx, req)
		})
		if err == nil {
			return out, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		r.log.WarnContext(ctx, "recognizer failed",
			slog.String("provider", l.name),
			slog.String("error", err.Error()),
		)
		errs = append(errs, fmt.Errorf("%s: %w", l.name, err))
	}
	return nil, unavailable(errs)
}

// Speaker tries each speaker in order. A provider returning no audio is not a
// failure, but the next provider still gets a chance to produce some.
type Speaker struct {
	links    []link
	backends []provider.Speaker
	timeout  time.Duration
	log      *slog.Logger
}

// NewSpeaker chains speakers; the first is primary.
func NewSpeaker(logger *slog.Logger, s Settings, speakers ...provider.Speaker) *Speaker {
	log := logger.With("adapter", "breaker")
	sp := &Speaker{backends: speakers, timeout: s.CallTimeout, log: log}
	for _, b := range speakers {
		sp.links = append(sp.links, newLink("speaker", b.Name(), s, log))
	}
	return sp
}

func (s *Speaker) Name() string { return chainName(s.links) }

// Availability reports each speaker's breaker state, primary first.
func (s *Speaker) Availability() []provider.Availability { return availability(s.links) }

// Speak returns the first non-empty audio. It returns nil, nil when every
// reachable provider answered without audio.
func (s *Speaker) Speak(ctx context.Context, text string, lang domain.Language) ([]byte, error) {
	var errs []error
	answered := false
	for i, l := range s.links {
		backend := s.backends[i]
		audio, err := execute(ctx, l, s.timeout, func(ctx context.Context) ([]byte, error) {
			return backend.Speak(ctx, text, lang)
		})
		if err == nil {
			if len(audio) > 0 {
				return audio, nil
			}
			answered = true
			continue
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.log.WarnContext(ctx, "speaker failed",
			slog.String("provider", l.name),
			slog.String("error", err.Error()),
		)
		errs = append(errs, fmt.Errorf("%s: %w", l.name, err))
	}
	if answered {
		return nil, nil
	}
	return nil, unavailable(errs)
}
