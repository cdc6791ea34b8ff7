package rest

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/lenslearn/internal/domain"
	"github.com/heartmarshall/lenslearn/pkg/ctxutil"
)

// withUser resolves the user that owns the request's data. A verified token
// subject wins; an explicit user_id must agree with it. Without a token the
// user_id is taken as given.
func withUser(ctx context.Context, rawUserID string) (context.Context, error) {
	subject, hasToken := ctxutil.TokenSubjectFromCtx(ctx)

	rawUserID = strings.TrimSpace(rawUserID)
	if rawUserID == "" {
		if hasToken {
			return ctxutil.WithUserID(ctx, subject), nil
		}
		return ctx, domain.NewValidationError("user_id", "required")
	}

	id, err := uuid.Parse(rawUserID)
	if err != nil || id == uuid.Nil {
		return ctx, domain.NewValidationError("user_id", "must be a UUID")
	}
	if hasToken && id != subject {
		return ctx, domain.ErrForbidden
	}
	return ctxutil.WithUserID(ctx, id), nil
}
