// Package ctxutil carries request-scoped identity through context.
//
// Two user identities exist per request: the token subject, set only when a
// bearer token was verified, and the effective user whose data the request
// reads or writes. Without auth the effective user comes from the request
// itself.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type (
	userKey      struct{}
	subjectKey   struct{}
	requestIDKey struct{}
)

// WithUserID stores the effective user that owns the request's data.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userKey{}, id)
}

// UserIDFromCtx returns the effective user. A missing or nil id reports false.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	return lookupID(ctx, userKey{})
}

// WithTokenSubject stores the subject of a verified bearer token.
func WithTokenSubject(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, subjectKey{}, id)
}

// TokenSubjectFromCtx returns the verified token subject, if a token was presented.
func TokenSubjectFromCtx(ctx context.Context) (uuid.UUID, bool) {
	return lookupID(ctx, subjectKey{})
}

func lookupID(ctx context.Context, key any) (uuid.UUID, bool) {
	id, _ := ctx.Value(key).(uuid.UUID)
	return id, id != uuid.Nil
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns the request id, or "" outside a request.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// LogAttrs returns the identifiers present in ctx as log attributes:
// request_id and user_id, each only when set.
func LogAttrs(ctx context.Context) []slog.Attr {
	var attrs []slog.Attr
	if id := RequestIDFromCtx(ctx); id != "" {
		attrs = append(attrs, slog.String("request_id", id))
	}
	if id, ok := UserIDFromCtx(ctx); ok {
		attrs = append(attrs, slog.String("user_id", id.String()))
	}
	return attrs
}
