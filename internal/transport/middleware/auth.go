package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/lenslearn/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// Auth resolves the caller from an optional bearer token.
//
// A verified token's subject becomes both the token subject and the
// effective user. Requests without a token continue anonymously unless
// requireToken is set. With a nil validator every presented token is
// rejected, since none can be verified.
func Auth(validator tokenValidator, requireToken bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))

			switch {
			case token == "" && !requireToken:
				next.ServeHTTP(w, r)
				return
			case token == "", validator == nil:
				unauthorized(w)
				return
			}

			subject, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := ctxutil.WithUserID(ctxutil.WithTokenSubject(r.Context(), subject), subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="lenslearn"`)
	writeError(w, http.StatusUnauthorized, "unauthorized")
}

// bearerToken returns the credentials of a "Bearer" Authorization header
// (scheme matched case-insensitively), or "".
func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
