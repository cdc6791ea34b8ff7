package workflow

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/lenslearn/pkg/client"
)

// All passed to Filter selects every language.
const All client.Language = "All"

// Library is the in-memory list of the user's saved words. The store stays
// the source of truth; the list only lives for the session.
type Library struct {
	store   wordStore
	session client.Session

	mu    sync.RWMutex
	words []client.SavedWord
}

// NewLibrary creates an empty Library. Call Load to fill it.
func NewLibrary(store wordStore, session client.Session) *Library {
	return &Library{store: store, session: session}
}

// Load replaces the list with the store's contents, newest first. On failure
// the previous list is kept.
func (l *Library) Load(ctx context.Context) error {
	words, err := l.store.ListWords(ctx, l.session)
	if err != nil {
		return fmt.Errorf("load library: %w", err)
	}

	l.mu.Lock()
	l.words = words
	l.mu.Unlock()
	return nil
}

// Add prepends a word whose creation the store confirmed. A word already in
// the list is ignored.
func (l *Library) Add(w client.SavedWord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, existing := range l.words {
		if existing.ID == w.ID {
			return
		}
	}
	l.words = append([]client.SavedWord{w}, l.words...)
}

// Words returns a copy of the whole list.
func (l *Library) Words() []client.SavedWord {
	return l.Filter(All)
}

// Filter returns the words in lang, or every word for All, in list order.
func (l *Library) Filter(lang client.Language) []client.SavedWord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]client.SavedWord, 0, len(l.words))
	for _, w := range l.words {
		if lang == All || w.Language == lang {
			out = append(out, w)
		}
	}
	return out
}

// Len returns the number of words in the list.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.words)
}

// Delete removes a word from the store and, once the store confirms, from the
// list.
func (l *Library) Delete(ctx context.Context, id uuid.UUID) error {
	if err := l.store.DeleteWord(ctx, l.session, id); err != nil {
		return fmt.Errorf("delete word: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for i, w := range l.words {
		if w.ID == id {
			l.words = append(l.words[:i:i], l.words[i+1:]...)
			break
		}
	}
	return nil
}
