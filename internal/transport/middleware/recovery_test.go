package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecovery_PassThrough(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	h := Recovery(slog.New(slog.NewTextHandler(&logs, nil)))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/words", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, logs.String())
}

func TestRecovery_Panic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "nil map write", "nil map write"},
		{"error", assert.AnError, assert.AnError.Error()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var logs bytes.Buffer
			h := Chain(RequestID, Recovery(slog.New(slog.NewTextHandler(&logs, nil))))(
				http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic(tt.value) }),
			)

			req := httptest.NewRequest(http.MethodPost, "/api/identify", nil)
			req.Header.Set(HeaderRequestID, "req-1")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())

			out := logs.String()
			assert.Contains(t, out, "panic recovered")
			assert.Contains(t, out, tt.want)
			assert.Contains(t, out, "path=/api/identify")
			assert.Contains(t, out, "request_id=req-1")
			assert.Contains(t, out, "stack=")
		})
	}
}

func TestRecovery_AbortHandlerRepanics(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	h := Recovery(slog.New(slog.NewTextHandler(&logs, nil)))(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic(http.ErrAbortHandler) }),
	)

	defer func() {
		rec := recover()
		require.NotNil(t, rec)
		assert.Equal(t, http.ErrAbortHandler, rec)
		assert.Empty(t, logs.String())
	}()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}
