// Package workflow holds the client-side state machines a UI binds to:
// capturing and identifying a photo, acting on the identified objects and
// browsing the saved vocabulary.
package workflow

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/lenslearn/pkg/client"
)

var (
	// ErrBusy is returned by Studio.Identify while a previous call is running.
	ErrBusy = errors.New("identification already in progress")
	// ErrPlaybackInFlight is returned by ResultView.Play while audio is playing.
	ErrPlaybackInFlight = errors.New("playback already in flight")
	// ErrViewClosed is returned by ResultView actions after Close.
	ErrViewClosed = errors.New("result view closed")
	// ErrUnknownObject is returned for an object id not in the view.
	ErrUnknownObject = errors.New("unknown object")
	// ErrNoSelection is returned by Play when nothing is selected.
	ErrNoSelection = errors.New("no object selected")
	// ErrNoAudio is returned by Play when the server has no audio for the word.
	ErrNoAudio = errors.New("no audio available")
)

// User-facing notification texts.
const (
	MsgRecognitionFailed = "could not recognize objects"
	MsgSaveFailed        = "could not save word"
	MsgPlaybackFailed    = "could not play pronunciation"
)

type recognizer interface {
	Identify(ctx context.Context, s client.Session, imageBase64 string, lang client.Language) ([]client.IdentifiedObject, error)
}

type wordStore interface {
	ListWords(ctx context.Context, s client.Session) ([]client.SavedWord, error)
	CreateWord(ctx context.Context, s client.Session, w client.NewWord) (*client.SavedWord, error)
	DeleteWord(ctx context.Context, s client.Session, id uuid.UUID) error
}

type pronouncer interface {
	Pronounce(ctx context.Context, s client.Session, text string, lang client.Language) (*client.Audio, error)
}

// Player plays decoded audio and returns when playback ends.
type Player interface {
	Play(ctx context.Context, audio *client.Audio) error
}

// Notifier shows a short message to the user.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }

func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
