package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/heartmarshall/lenslearn/pkg/client"
)

// Deps are the collaborators of a Studio.
type Deps struct {
	Recognizer recognizer
	Words      wordStore
	Pronouncer pronouncer
	Player     Player
	Notifier   Notifier
	Logger     *slog.Logger
}

// Studio drives one capture at a time: it holds the learning language, the
// captured image and whether recognition is running, and opens a ResultView
// for every successful identification.
type Studio struct {
	deps    Deps
	session client.Session
	library *Library
	log     *slog.Logger

	mu         sync.Mutex
	language   client.Language
	processing bool
	image      string
	view       *ResultView
}

// NewStudio creates a Studio for the session. The library receives every word
// saved from a result view.
func NewStudio(deps Deps, session client.Session, language client.Language) (*Studio, error) {
	if !language.Valid() {
		return nil, fmt.Errorf("%w: unsupported language %q", client.ErrInvalidArgument, language)
	}
	if deps.Logger == nil {
		deps.Logger = discardLogger()
	}
	if deps.Notifier == nil {
		deps.Notifier = NotifierFunc(func(string) {})
	}

	return &Studio{
		deps:     deps,
		session:  session,
		library:  NewLibrary(deps.Words, session),
		log:      deps.Logger.With("component", "studio"),
		language: language,
	}, nil
}

// Library returns the session's vocabulary list.
func (s *Studio) Library() *Library { return s.library }

// Language returns the current learning language.
func (s *Studio) Language() client.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// SetLanguage changes the learning language for later identifications.
func (s *Studio) SetLanguage(lang client.Language) error {
	if !lang.Valid() {
		return fmt.Errorf("%w: unsupported language %q", client.ErrInvalidArgument, lang)
	}
	s.mu.Lock()
	s.language = lang
	s.mu.Unlock()
	return nil
}

// Processing reports whether an identification is running.
func (s *Studio) Processing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.processing
}

// Image returns the captured image, or "" when there is none.
func (s *Studio) Image() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.image
}

// View returns the open result view, or nil.
func (s *Studio) View() *ResultView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Identify sends the base64 JPEG for recognition. On success with at least one
// object it opens and returns a ResultView, closing any previous one. An empty
// result returns nil and opens nothing. On failure the captured image is
// dropped and the user gets exactly one notification.
func (s *Studio) Identify(ctx context.Context, image string) (*ResultView, error) {
	s.mu.Lock()
	if s.processing {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	s.processing = true
	s.image = image
	lang := s.language
	previous := s.view
	s.view = nil
	s.mu.Unlock()

	if previous != nil {
		previous.Close()
	}

	objects, err := s.deps.Recognizer.Identify(ctx, s.session, image, lang)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.processing = false

	if err != nil {
		s.image = ""
		s.log.Warn("identify failed", slog.String("language", string(lang)), slog.String("error", err.Error()))
		s.deps.Notifier.Notify(MsgRecognitionFailed)
		return nil, fmt.Errorf("identify: %w", err)
	}
	if len(objects) == 0 {
		s.image = ""
		s.log.Info("no objects identified", slog.String("language", string(lang)))
		return nil, nil
	}

	var view *ResultView
	view = newResultView(ctx, image, objects, viewDeps{
		session:    s.session,
		words:      s.deps.Words,
		pronouncer: s.deps.Pronouncer,
		player:     s.deps.Player,
		library:    s.library,
		notifier:   s.deps.Notifier,
		onClose:    func() { s.viewClosed(view) },
		log:        s.deps.Logger.With("component", "result_view"),
	})
	s.view = view
	return view, nil
}

// viewClosed drops the captured image when the open view is closed.
func (s *Studio) viewClosed(v *ResultView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view == v {
		s.view = nil
		s.image = ""
	}
}
