package domain

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxWordLength        = 200
	MaxTranslationLength = 500
)

// SavedWord is a durable vocabulary entry owned by one user.
// It is created by an explicit save and never mutated afterwards.
type SavedWord struct {
	ID                   uuid.UUID
	UserID               uuid.UUID
	Word                 string
	Translation          string
	SecondaryTranslation *string
	Language             Language
	CreatedAt            time.Time
}

// ValidateWordFields checks the user-supplied fields of a new entry.
func ValidateWordFields(word, translation string, secondary *string, lang Language) []FieldError {
	var errs []FieldError

	switch n := utf8.RuneCountInString(word); {
	case n == 0:
		errs = append(errs, FieldError{Field: "word", Message: "required"})
	case n > MaxWordLength:
		errs = append(errs, FieldError{Field: "word", Message: "too long"})
	}
	if utf8.RuneCountInString(translation) > MaxTranslationLength {
		errs = append(errs, FieldError{Field: "translation", Message: "too long"})
	}
	if secondary != nil && utf8.RuneCountInString(*secondary) > MaxTranslationLength {
		errs = append(errs, FieldError{Field: "secondary_translation", Message: "too long"})
	}
	if !lang.IsValid() {
		errs = append(errs, FieldError{Field: "language", Message: "unsupported language"})
	}

	return errs
}

// FilterByLanguage returns the entries in the given language, order preserved.
// A nil language pointer means all languages and returns words unchanged.
func FilterByLanguage(words []SavedWord, lang *Language) []SavedWord {
	if lang == nil {
		return words
	}
	out := make([]SavedWord, 0, len(words))
	for _, w := range words {
		if w.Language == *lang {
			out = append(out, w)
		}
	}
	return out
}
