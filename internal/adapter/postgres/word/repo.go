// Package word implements the saved-word repository using PostgreSQL.
package word

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/lenslearn/internal/adapter/postgres"
	"github.com/heartmarshall/lenslearn/internal/domain"
)

const table = "saved_words"

var columns = []string{
	"id", "user_id", "word", "translation", "secondary_translation", "language", "created_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides saved-word persistence backed by PostgreSQL.
// The database assigns id and created_at.
type Repo struct {
	db postgres.Querier
}

// New creates a new saved-word repository. db is usually a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID                   uuid.UUID `db:"id"`
	UserID               uuid.UUID `db:"user_id"`
	Word                 string    `db:"word"`
	Translation          string    `db:"translation"`
	SecondaryTranslation *string   `db:"secondary_translation"`
	Language             string    `db:"language"`
	CreatedAt            time.Time `db:"created_at"`
}

func (r row) toDomain() domain.SavedWord {
	return domain.SavedWord{
		ID:                   r.ID,
		UserID:               r.UserID,
		Word:                 r.Word,
		Translation:          r.Translation,
		SecondaryTranslation: r.SecondaryTranslation,
		Language:             domain.Language(r.Language),
		CreatedAt:            r.CreatedAt.UTC(),
	}
}

// List returns every word of the user, newest first.
// Returns an empty slice if the user has no words.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]domain.SavedWord, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list saved_words: %w", err)
	}

	words := make([]domain.SavedWord, len(rows))
	for i, rw := range rows {
		words[i] = rw.toDomain()
	}
	return words, nil
}

// Create inserts a word and returns it with the store-assigned id and timestamp.
func (r *Repo) Create(ctx context.Context, w domain.SavedWord) (*domain.SavedWord, error) {
	query, args, err := psql.Insert(table).
		Columns("user_id", "word", "translation", "secondary_translation", "language").
		Values(w.UserID, w.Word, w.Translation, w.SecondaryTranslation, string(w.Language)).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	var created row
	if err := pgxscan.Get(ctx, r.db, &created, query, args...); err != nil {
		return nil, postgres.MapError(err, "saved_word", w.UserID)
	}

	out := created.toDomain()
	return &out, nil
}

// Delete removes a word owned by userID. Returns domain.ErrNotFound if the
// word does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query, args, err := psql.Delete(table).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "saved_word", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("saved_word %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
