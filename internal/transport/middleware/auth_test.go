package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/lenslearn/pkg/ctxutil"
)

//go:generate moq -out token_validator_mock_test.go -pkg middleware . tokenValidator

func TestAuth(t *testing.T) {
	t.Parallel()

	subject := uuid.New()
	newValidator := func() *tokenValidatorMock {
		return &tokenValidatorMock{
			ValidateTokenFunc: func(_ context.Context, token string) (uuid.UUID, error) {
				if token == "good" {
					return subject, nil
				}
				return uuid.Nil, errors.New("invalid token")
			},
		}
	}

	tests := []struct {
		name         string
		header       string
		requireToken bool
		noValidator  bool
		wantStatus   int
		wantSubject  bool
		wantCalls    int
	}{
		{"valid token", "Bearer good", false, false, http.StatusOK, true, 1},
		{"valid token required", "Bearer good", true, false, http.StatusOK, true, 1},
		{"invalid token", "Bearer bad", false, false, http.StatusUnauthorized, false, 1},
		{"anonymous", "", false, false, http.StatusOK, false, 0},
		{"anonymous when required", "", true, false, http.StatusUnauthorized, false, 0},
		{"basic auth is anonymous", "Basic dXNlcjpwYXNz", false, false, http.StatusOK, false, 0},
		{"token without validator", "Bearer good", false, true, http.StatusUnauthorized, false, 0},
		{"anonymous without validator", "", false, true, http.StatusOK, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := newValidator()
			var validator tokenValidator = mock
			if tt.noValidator {
				validator = nil
			}

			var gotSubject, gotUser uuid.UUID
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotSubject, _ = ctxutil.TokenSubjectFromCtx(r.Context())
				gotUser, _ = ctxutil.UserIDFromCtx(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/words", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			Auth(validator, tt.requireToken)(handler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Len(t, mock.ValidateTokenCalls(), tt.wantCalls)
			if tt.wantSubject {
				assert.Equal(t, subject, gotSubject)
				assert.Equal(t, subject, gotUser, "subject is also the effective user")
			} else {
				assert.Equal(t, uuid.Nil, gotSubject)
				assert.Equal(t, uuid.Nil, gotUser)
			}
			if rec.Code == http.StatusUnauthorized {
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
				assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "Bearer")
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":                   "",
		"Bearer abc":         "abc",
		"bearer abc":         "abc",
		"BEARER abc":         "abc",
		"Bearer  abc ":       "abc",
		"Basic dXNlcjpwYXNz": "",
		"Bearerabc":          "",
		"Bearer ":            "",
		"Bearer":             "",
	}
	for header, want := range tests {
		assert.Equal(t, want, bearerToken(header), "header %q", header)
	}
}
