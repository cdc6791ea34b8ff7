package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/lenslearn/internal/domain"
)

// sqlStates maps the SQLSTATE codes the schema can raise onto domain errors.
var sqlStates = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23514": domain.ErrValidation,    // check_violation: language outside the enum
	"23502": domain.ErrValidation,    // not_null_violation
	"22001": domain.ErrValidation,    // string_data_right_truncation
	"22P02": domain.ErrValidation,    // invalid_text_representation
}

// MapError prefixes err with the entity and id and translates driver errors
// into domain errors. Context errors are kept as they are so callers can tell
// a cancelled request from a failed one.
func MapError(err error, entity string, id fmt.Stringer) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %s: %w", entity, id, translate(err))
}

func translate(err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, pgx.ErrNoRows):
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if mapped, ok := sqlStates[pgErr.Code]; ok {
			if pgErr.ConstraintName != "" {
				return fmt.Errorf("%w (%s)", mapped, pgErr.ConstraintName)
			}
			return mapped
		}
	}
	return err
}
