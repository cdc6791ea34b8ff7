package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{"single", NewValidationError("word", "required"), "validation: word: required"},
		{
			"several",
			NewValidationErrors([]FieldError{
				{Field: "word", Message: "required"},
				{Field: "language", Message: `unsupported language "Elvish"`},
			}),
			`validation: word: required; language: unsupported language "Elvish"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.EqualError(t, tt.err, tt.want)
			assert.ErrorIs(t, tt.err, ErrValidation)
		})
	}
}

func TestValidationError_Fields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "image_base64", Message: "invalid base64"},
		{Field: "target_language", Message: "unsupported language"},
	})
	assert.Equal(t, []string{"image_base64", "target_language"}, err.Fields())
}

func TestValidationError_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("create word: %w", NewValidationError("word", "too long"))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"word"}, ve.Fields())
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrNotFound, ErrAlreadyExists, ErrValidation,
		ErrUnauthorized, ErrForbidden,
		ErrProviderUnavailable, ErrMalformedResponse,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel errors %d and %d should not match", i, j)
			}
		}
	}
}
