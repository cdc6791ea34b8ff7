package domain

import "strings"

// Language is a learning language. Values are the exact wire strings.
type Language string

const (
	LanguageSpanish  Language = "Spanish"
	LanguageJapanese Language = "Japanese"
	LanguageEnglish  Language = "English"
	LanguageFrench   Language = "French"
	LanguageGerman   Language = "German"
	LanguageKorean   Language = "Korean"
)

// Languages lists every supported language in display order.
var Languages = []Language{
	LanguageSpanish,
	LanguageJapanese,
	LanguageEnglish,
	LanguageFrench,
	LanguageGerman,
	LanguageKorean,
}

func (l Language) String() string { return string(l) }

func (l Language) IsValid() bool {
	switch l {
	case LanguageSpanish, LanguageJapanese, LanguageEnglish,
		LanguageFrench, LanguageGerman, LanguageKorean:
		return true
	}
	return false
}

// ParseLanguage matches s case-insensitively against the supported languages.
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	for _, l := range Languages {
		if strings.EqualFold(s, string(l)) {
			return l, nil
		}
	}
	return "", NewValidationError("language", "unsupported language "+quote(s))
}

func quote(s string) string { return `"` + s + `"` }
