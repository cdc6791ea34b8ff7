package vocabulary

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/lenslearn/internal/domain"
)

// CreateWordInput holds the parameters for saving a word.
type CreateWordInput struct {
	Word                 string
	Translation          string
	SecondaryTranslation *string
	Language             string
}

// Validate checks all fields and collects all errors. On success it returns
// the parsed language.
func (i CreateWordInput) Validate() (domain.Language, error) {
	lang, err := domain.ParseLanguage(i.Language)
	if err != nil {
		// Keep the raw value; ValidateWordFields reports it with the other fields.
		lang = domain.Language(i.Language)
	}

	errs := domain.ValidateWordFields(
		strings.TrimSpace(i.Word),
		strings.TrimSpace(i.Translation),
		trimOrNil(i.SecondaryTranslation),
		lang,
	)
	if len(errs) > 0 {
		return "", domain.NewValidationErrors(errs)
	}
	return lang, nil
}

// DeleteWordInput holds the parameters for deleting a word.
type DeleteWordInput struct {
	WordID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteWordInput) Validate() error {
	if i.WordID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return nil
}
