package pronunciation

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/lenslearn/internal/domain"
)

// MaxTextLength bounds the text of one request, in characters.
const MaxTextLength = 200

// PronounceInput holds the parameters for one pronunciation request.
type PronounceInput struct {
	Text     string
	Language string
}

// Validate checks all fields and collects all errors. On success it returns
// the normalized lookup key.
func (i PronounceInput) Validate() (key, error) {
	var errs []domain.FieldError

	text := strings.TrimSpace(i.Text)
	switch n := utf8.RuneCountInString(text); {
	case n == 0:
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	case n > MaxTextLength:
		errs = append(errs, domain.FieldError{Field: "text", Message: "too long"})
	}

	lang, err := domain.ParseLanguage(i.Language)
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "language", Message: "unsupported language"})
	}

	if len(errs) > 0 {
		return key{}, domain.NewValidationErrors(errs)
	}
	return key{Text: text, Language: lang}, nil
}
