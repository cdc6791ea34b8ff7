// Package pronunciation stores synthesized pronunciation clips in SQLite.
package pronunciation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/heartmarshall/lenslearn/internal/adapter/sqlite"
	"github.com/heartmarshall/lenslearn/internal/domain"
)

const table = "pronunciation_clips"

// Repo provides clip persistence backed by SQLite.
type Repo struct {
	db  *sql.DB
	now func() time.Time
}

// New creates a new clip repository over an opened and migrated database.
func New(db *sql.DB) *Repo {
	return &Repo{db: db, now: time.Now}
}

type row struct {
	Text     string `db:"text"`
	Language string `db:"language"`
	Audio    []byte `db:"audio"`
}

// GetMany returns the stored audio for every key that has a clip.
func (r *Repo) GetMany(ctx context.Context, keys []domain.ClipKey) (map[domain.ClipKey][]byte, error) {
	out := make(map[domain.ClipKey][]byte, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	match := make(sq.Or, len(keys))
	for i, k := range keys {
		match[i] = sq.And{sq.Eq{"language": string(k.Language)}, sq.Eq{"text": k.Text}}
	}

	query, args, err := sq.Select("text", "language", "audio").
		From(table).
		Where(match).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build clip query: %w", err)
	}

	var rows []row
	if err := sqlscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get pronunciation_clips: %w", err)
	}

	for _, rw := range rows {
		out[domain.ClipKey{Text: rw.Text, Language: domain.Language(rw.Language)}] = rw.Audio
	}
	return out, nil
}

// Put stores a clip. An existing clip for the same key is kept.
func (r *Repo) Put(ctx context.Context, clip domain.Clip) error {
	query, args, err := sq.Insert(table).
		Columns("text", "language", "audio", "provider", "created_at").
		Values(clip.Text, string(clip.Language), clip.Audio, clip.Provider, r.now().UTC()).
		Suffix("ON CONFLICT (language, text) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build clip insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "pronunciation_clip", clip.ClipKey)
	}
	return nil
}
