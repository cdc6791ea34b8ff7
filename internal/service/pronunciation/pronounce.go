package pronunciation

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/graph-gophers/dataloader/v7"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/lenslearn/internal/domain"
)

// Pronounce returns PCM16 audio for the text. It returns nil, nil when the
// provider produced no audio.
func (s *Service) Pronounce(ctx context.Context, input PronounceInput) ([]byte, error) {
	k, err := input.Validate()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if audio, ok := s.cache.Get(k); ok {
			s.log.DebugContext(ctx, "pronunciation cache hit", slog.String("language", k.Language.String()))
			return audio, nil
		}
	}

	audio, err := s.loader.Load(ctx, k)()
	if err != nil {
		return nil, fmt.Errorf("pronounce: %w", err)
	}
	return audio, nil
}

type outcome struct {
	audio []byte
	err   error
}

// batch resolves every distinct key once. Keys repeat because the loader
// cache is off, so duplicates are folded here.
func (s *Service) batch(ctx context.Context, keys []key) []*dataloader.Result[[]byte] {
	// The batch serves several callers; one of them leaving must not fail
	// the rest.
	ctx = context.WithoutCancel(ctx)

	results := make(map[key]outcome, len(keys))
	var unique []key
	for _, k := range keys {
		if _, seen := results[k]; !seen {
			results[k] = outcome{}
			unique = append(unique, k)
		}
	}

	missing := s.fromStore(ctx, unique, results)
	s.synthesize(ctx, missing, results)

	out := make([]*dataloader.Result[[]byte], len(keys))
	for i, k := range keys {
		o := results[k]
		out[i] = &dataloader.Result[[]byte]{Data: o.audio, Error: o.err}
	}

	s.log.DebugContext(ctx, "pronunciation batch",
		slog.Int("requests", len(keys)),
		slog.Int("unique", len(unique)),
		slog.Int("synthesized", len(missing)),
	)
	return out
}

// fromStore fills results with stored clips and returns the keys still
// missing. A store failure is logged and every key is treated as missing.
func (s *Service) fromStore(ctx context.Context, keys []key, results map[key]outcome) []key {
	if s.clips == nil {
		return keys
	}

	stored, err := s.clips.GetMany(ctx, keys)
	if err != nil {
		s.log.WarnContext(ctx, "clip store read failed", slog.String("error", err.Error()))
		return keys
	}

	var missing []key
	for _, k := range keys {
		audio, ok := stored[k]
		if !ok || len(audio) == 0 {
			missing = append(missing, k)
			continue
		}
		results[k] = outcome{audio: audio}
		s.remember(k, audio)
	}
	return missing
}

// synthesize calls the speaker for keys, at most parallelism at a time, and
// persists the audio it gets back.
func (s *Service) synthesize(ctx context.Context, keys []key, results map[key]outcome) {
	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(parallelism)
	for _, k := range keys {
		g.Go(func() error {
			audio, err := s.speaker.Speak(ctx, k.Text, k.Language)
			mu.Lock()
			results[k] = outcome{audio: audio, err: err}
			mu.Unlock()

			switch {
			case err != nil:
				s.log.WarnContext(ctx, "speech synthesis failed",
					slog.String("provider", s.speaker.Name()),
					slog.String("language", k.Language.String()),
					slog.String("error", err.Error()),
				)
			case audio == nil:
				s.log.InfoContext(ctx, "provider returned no audio", slog.String("language", k.Language.String()))
			default:
				s.remember(k, audio)
				s.store(ctx, k, audio)
			}
			return nil
		})
	}
	_ = g.Wait()
}

func (s *Service) remember(k key, audio []byte) {
	if s.cache != nil {
		s.cache.Add(k, audio)
	}
}

func (s *Service) store(ctx context.Context, k key, audio []byte) {
	if s.clips == nil {
		return
	}
	clip := domain.Clip{ClipKey: k, Audio: audio, Provider: s.speaker.Name()}
	if err := s.clips.Put(ctx, clip); err != nil {
		s.log.WarnContext(ctx, "clip store write failed",
			slog.String("language", k.Language.String()),
			slog.String("error", err.Error()),
		)
	}
}
