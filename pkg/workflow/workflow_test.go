package workflow

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lenslearn/pkg/client"
)

//go:generate moq -out recognizer_mock_test.go -pkg workflow . recognizer
//go:generate moq -out word_store_mock_test.go -pkg workflow . wordStore
//go:generate moq -out pronouncer_mock_test.go -pkg workflow . pronouncer

var testSession = client.Session{UserID: uuid.MustParse("5f1c2a3e-8b7d-4c6e-9f01-23456789abcd")}

type recordingNotifier struct {
	mu   sync.Mutex
	msgs []string
}

func (n *recordingNotifier) Notify(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msgs = append(n.msgs, msg)
}

func (n *recordingNotifier) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.msgs...)
}

type fakePlayer struct {
	calls atomic.Int32
	err   error
}

func (p *fakePlayer) Play(_ context.Context, _ *client.Audio) error {
	p.calls.Add(1)
	return p.err
}

func sampleObjects(lang client.Language) []client.IdentifiedObject {
	return []client.IdentifiedObject{
		{ID: "obj-0", Name: "cup", Translation: "杯子", Position: client.Position{X: 40, Y: 60}, Language: lang},
		{ID: "obj-1", Name: "table", Translation: "桌子", Position: client.Position{X: -12, Y: 140}, Language: lang},
		{ID: "obj-2", Name: "chair", Translation: "", Position: client.Position{X: 100, Y: 0}, Language: lang},
	}
}

// createdWord returns a CreateWordFunc that echoes the request with a fresh id.
func createdWord() func(context.Context, client.Session, client.NewWord) (*client.SavedWord, error) {
	var seq atomic.Int64
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return func(_ context.Context, _ client.Session, w client.NewWord) (*client.SavedWord, error) {
		n := seq.Add(1)
		return &client.SavedWord{
			ID:                   uuid.New(),
			Word:                 w.Word,
			Translation:          w.Word,
			SecondaryTranslation: w.SecondaryTranslation,
			Language:             w.Language,
			CreatedAt:            base.Add(time.Duration(n) * time.Second),
		}, nil
	}
}

type testEnv struct {
	rec      *recognizerMock
	words    *wordStoreMock
	speech   *pronouncerMock
	player   *fakePlayer
	notifier *recordingNotifier
	studio   *Studio
}

func newTestEnv(t *testing.T, lang client.Language) *testEnv {
	t.Helper()

	env := &testEnv{
		rec: &recognizerMock{
			IdentifyFunc: func(_ context.Context, _ client.Session, _ string, l client.Language) ([]client.IdentifiedObject, error) {
				return sampleObjects(l), nil
			},
		},
		words:    &wordStoreMock{CreateWordFunc: createdWord()},
		speech:   &pronouncerMock{},
		player:   &fakePlayer{},
		notifier: &recordingNotifier{},
	}

	studio, err := NewStudio(Deps{
		Recognizer: env.rec,
		Words:      env.words,
		Pronouncer: env.speech,
		Player:     env.player,
		Notifier:   env.notifier,
	}, testSession, lang)
	if err != nil {
		t.Fatalf("NewStudio: %v", err)
	}
	env.studio = studio
	return env
}

func (env *testEnv) openView(t *testing.T) *ResultView {
	t.Helper()
	view, err := env.studio.Identify(context.Background(), "aW1n")
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}
	if view == nil {
		t.Fatal("Identify returned no view")
	}
	t.Cleanup(view.Close)
	return view
}
