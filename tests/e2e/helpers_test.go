//go:build e2e

package e2e_test

import (
	"context"
	"image"
	"log/slog"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	pgpronunciation "github.com/heartmarshall/lenslearn/internal/adapter/postgres/pronunciation"
	"github.com/heartmarshall/lenslearn/internal/adapter/provider/breaker"
	"github.com/heartmarshall/lenslearn/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/lenslearn/internal/adapter/postgres/word"
	"github.com/heartmarshall/lenslearn/internal/auth"
	"github.com/heartmarshall/lenslearn/internal/config"
	"github.com/heartmarshall/lenslearn/internal/domain"
	"github.com/heartmarshall/lenslearn/internal/gloss"
	"github.com/heartmarshall/lenslearn/internal/provider"
	"github.com/heartmarshall/lenslearn/internal/service/pronunciation"
	"github.com/heartmarshall/lenslearn/internal/service/recognition"
	"github.com/heartmarshall/lenslearn/internal/service/vocabulary"
	"github.com/heartmarshall/lenslearn/internal/transport/middleware"
	"github.com/heartmarshall/lenslearn/internal/transport/rest"
	"github.com/heartmarshall/lenslearn/pkg/capture"
	"github.com/heartmarshall/lenslearn/pkg/client"
)

const (
	jwtSecret = "e2e-secret-at-least-32-chars-long!!"
	jwtIssuer = "e2e-issuer"
)

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// fakeRecognizer reports a fixed set of objects for every image.
type fakeRecognizer struct {
	objects []provider.RecognizedObject
	err     error
}

func (f *fakeRecognizer) Name() string { return "fake" }

func (f *fakeRecognizer) Recognize(context.Context, provider.RecognizeRequest) ([]provider.RecognizedObject, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.objects, nil
}

// fakeSpeaker returns the text bytes as audio and counts calls.
type fakeSpeaker struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeSpeaker) Name() string { return "fake" }

func (f *fakeSpeaker) Speak(_ context.Context, text string, _ domain.Language) ([]byte, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if text == "silence" {
		return nil, nil
	}
	// Doubled so the clip has an even byte count.
	return []byte(text + text), nil
}

func (f *fakeSpeaker) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// testServer is the full HTTP stack over a real PostgreSQL database.
type testServer struct {
	URL      string
	Pool     *pgxpool.Pool
	Speaker  *fakeSpeaker
	Verifier *auth.Verifier
}

func setupTestServer(t *testing.T, objects ...provider.RecognizedObject) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	glosses, err := gloss.New()
	require.NoError(t, err)

	fakeSp := &fakeSpeaker{}
	verifier := auth.NewVerifier(jwtSecret, jwtIssuer, "")

	settings := breaker.Settings{MaxFailures: 3, OpenTimeout: time.Minute, CallTimeout: 5 * time.Second}
	recognizer := breaker.NewRecognizer(logger, settings, &fakeRecognizer{objects: objects})
	speaker := breaker.NewSpeaker(logger, settings, fakeSp)

	vocabSvc := vocabulary.NewService(logger, word.New(pool), glosses)
	recognitionSvc := recognition.NewService(logger, recognizer, 1<<20)
	pronunciationSvc := pronunciation.NewService(logger, speaker, pgpronunciation.New(pool), pronunciation.Options{
		CacheSize: 16,
		CacheTTL:  time.Hour,
	})

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	const maxBody = 1 << 20
	router := rest.Router{
		Words:         rest.NewWordHandler(vocabSvc, maxBody, logger),
		Identify:      rest.NewIdentifyHandler(recognitionSvc, maxBody, logger),
		Pronunciation: rest.NewPronunciationHandler(pronunciationSvc, maxBody, logger),
		Health:        rest.NewHealthHandler(pool, "e2e", map[string]rest.ProviderChain{"recognition": recognizer, "pronunciation": speaker}),
		Auth:          middleware.Auth(verifier, false),
		CORS:          config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,DELETE,OPTIONS"},
		Limiter:       limiter,
		Limits:        rest.Limits{IdentifyPerMinute: 600, PronunciationPerMinute: 600},
		Logger:        logger,
	}

	srv := httptest.NewServer(router.Handler())
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Pool: pool, Speaker: fakeSp, Verifier: verifier}
}

func (ts *testServer) client(t *testing.T) *client.Client {
	t.Helper()
	c, err := client.New(ts.URL)
	require.NoError(t, err)
	return c
}

func (ts *testServer) token(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := ts.Verifier.IssueToken(userID, time.Hour)
	require.NoError(t, err)
	return token
}

// samplePhoto is a tiny valid JPEG payload, base64-encoded.
func samplePhoto(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	encoded, err := capture.Encode(img, capture.Options{})
	require.NoError(t, err)
	return encoded
}
