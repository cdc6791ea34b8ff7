// Package word implements the saved-word repository on SQLite.
package word

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/lenslearn/internal/adapter/sqlite"
	"github.com/heartmarshall/lenslearn/internal/domain"
)

const table = "saved_words"

var columns = []string{
	"id", "user_id", "word", "translation", "secondary_translation", "language", "created_at",
}

// Repo provides saved-word persistence backed by SQLite.
// SQLite has no uuid or clock defaults, so the repository assigns id and
// created_at itself.
type Repo struct {
	db  *sql.DB
	now func() time.Time
}

// New creates a new repository over an opened and migrated database.
func New(db *sql.DB) *Repo {
	return &Repo{db: db, now: time.Now}
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

// List returns every word of the user, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]domain.SavedWord, error) {
	query, args, err := sq.Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID.String()}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var rows []row
	if err := sqlscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list saved_words: %w", err)
	}

	words := make([]domain.SavedWord, len(rows))
	for i, rw := range rows {
		words[i] = domain.SavedWord{
			ID:                   rw.ID,
			UserID:               rw.UserID,
			Word:                 rw.Word,
			Translation:          rw.Translation,
			SecondaryTranslation: rw.SecondaryTranslation,
			Language:             domain.Language(rw.Language),
			CreatedAt:            rw.CreatedAt.UTC(),
		}
	}
	return words, nil
}

// Create inserts a word, assigning its id and creation time.
func (r *Repo) Create(ctx context.Context, w domain.SavedWord) (*domain.SavedWord, error) {
	w.ID = uuid.New()
	w.CreatedAt = r.now().UTC()

	query, args, err := sq.Insert(table).
		Columns(columns...).
		Values(w.ID.String(), w.UserID.String(), w.Word, w.Translation, w.SecondaryTranslation, string(w.Language), w.CreatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, sqlite.MapError(err, "saved_word", w.ID)
	}
	return &w, nil
}

// Delete removes a word owned by userID. Returns domain.ErrNotFound if the
// word does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query, args, err := sq.Delete(table).
		Where(sq.Eq{"id": id.String(), "user_id": userID.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return sqlite.MapError(err, "saved_word", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("saved_word %s: rows affected: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("saved_word %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
