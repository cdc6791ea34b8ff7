package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/lenslearn/internal/config"
	"github.com/heartmarshall/lenslearn/internal/domain"
	"github.com/heartmarshall/lenslearn/internal/service/recognition"
	"github.com/heartmarshall/lenslearn/internal/transport/middleware"
)

type stubValidator struct{ subject uuid.UUID }

func (v stubValidator) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	if token != "good" {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return v.subject, nil
}

func newTestRouter(t *testing.T, requireToken bool, subject uuid.UUID) (http.Handler, *vocabularyServiceMock) {
	t.Helper()

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	words := &vocabularyServiceMock{ListWordsFunc: func(context.Context) ([]domain.SavedWord, error) {
		return []domain.SavedWord{}, nil
	}}
	objects := &recognitionServiceMock{IdentifyFunc: func(context.Context, recognition.IdentifyInput) ([]domain.IdentifiedObject, error) {
		return nil, nil
	}}

	rt := Router{
		Words:         NewWordHandler(words, 1<<20, discardLogger()),
		Identify:      NewIdentifyHandler(objects, 1<<20, discardLogger()),
		Pronunciation: NewPronunciationHandler(&pronunciationServiceMock{}, 1<<20, discardLogger()),
		Health:        NewHealthHandler(PingFunc(func(context.Context) error { return nil }), "test", nil),
		Auth:          middleware.Auth(stubValidator{subject: subject}, requireToken),
		CORS:          config.CORSConfig{AllowedOrigins: "*"},
		Limiter:       limiter,
		Limits:        Limits{IdentifyPerMinute: 2, PronunciationPerMinute: 2},
		Logger:        discardLogger(),
	}
	return rt.Handler(), words
}

func TestRouter_ProbesSkipAuth(t *testing.T) {
	t.Parallel()

	h, _ := newTestRouter(t, true, uuid.New())
	for _, path := range []string{"/live", "/ready", "/health"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.NotEmpty(t, rec.Header().Get("X-Request-Id"), path)
	}
}

func TestRouter_RequireToken(t *testing.T) {
	t.Parallel()

	subject := uuid.New()
	h, words := newTestRouter(t, true, subject)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/words?user_id="+subject.String(), nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/words", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, words.ListWordsCalls(), 1)
}

func TestRouter_RateLimitsIdentify(t *testing.T) {
	t.Parallel()

	h, _ := newTestRouter(t, false, uuid.New())

	codes := make([]int, 3)
	for i := range codes {
		req := httptest.NewRequest(http.MethodPost, "/api/identify", strings.NewReader(`{"image_base64":"x","target_language":"French"}`))
		req.RemoteAddr = "9.9.9.9:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes[i] = rec.Code
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRouter_UnknownRoute(t *testing.T) {
	t.Parallel()

	h, _ := newTestRouter(t, false, uuid.New())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nothing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
