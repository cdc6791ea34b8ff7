package provider

import (
	"fmt"

	"github.com/heartmarshall/lenslearn/internal/domain"
)

// ReferenceLanguage is the language every object is glossed in.
const ReferenceLanguage = "Chinese (Simplified)"

// RecognitionPrompt is the instruction sent with every image.
func RecognitionPrompt(lang domain.Language) string {
	return fmt.Sprintf(`Identify 3 to 5 clear, distinct everyday objects in this image.
For each object, provide:
1. Its name in %s.
2. Its translation in %s.
3. Its approximate center coordinates (x, y) as percentages (0-100) of the image dimensions.

Return the result strictly as a JSON array of objects with keys: "name", "translation", "x", "y".`, lang, ReferenceLanguage)
}

// SpeechPrompt wraps the text to be spoken.
func SpeechPrompt(text string) string {
	return "Say clearly: " + text
}
