// Package gloss builds the primary translation stored with a saved word.
package gloss

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/heartmarshall/lenslearn/internal/domain"
)

// Builder constructs glosses. Safe for concurrent use.
type Builder struct {
	t *tokenizer.Tokenizer
}

// New loads the IPA dictionary once; construction is slow, reuse the Builder.
func New() (*Builder, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("gloss: init tokenizer: %w", err)
	}
	return &Builder{t: t}, nil
}

// Build returns the primary translation for name in lang.
//
//	English:  "the " + name
//	Japanese: name plus its katakana reading when it differs
//	others:   name
func (b *Builder) Build(name string, lang domain.Language) string {
	name = strings.TrimSpace(name)
	switch lang {
	case domain.LanguageEnglish:
		return "the " + name
	case domain.LanguageJapanese:
		r := b.Reading(name)
		if r == "" || r == name {
			return name
		}
		return name + " (" + r + ")"
	default:
		return name
	}
}

// Reading returns the katakana reading of text. Tokens the dictionary has no
// reading for contribute their surface form.
func (b *Builder) Reading(text string) string {
	var sb strings.Builder
	for _, tok := range b.t.Tokenize(text) {
		if tok.Class == tokenizer.DUMMY {
			continue
		}
		if strings.TrimSpace(tok.Surface) == "" {
			continue
		}
		// IPA features: index 7 is the katakana reading.
		if f := tok.Features(); len(f) > 7 && f[7] != "*" {
			sb.WriteString(f[7])
			continue
		}
		sb.WriteString(tok.Surface)
	}
	return sb.String()
}
