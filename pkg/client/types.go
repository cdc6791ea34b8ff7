package client

import (
	"time"

	"github.com/google/uuid"
)

// Language is a learning language. Values are the exact wire strings.
type Language string

const (
	Spanish  Language = "Spanish"
	Japanese Language = "Japanese"
	English  Language = "English"
	French   Language = "French"
	German   Language = "German"
	Korean   Language = "Korean"
)

// Languages lists every supported language in display order.
var Languages = []Language{Spanish, Japanese, English, French, German, Korean}

func (l Language) Valid() bool {
	for _, known := range Languages {
		if l == known {
			return true
		}
	}
	return false
}

// Session identifies the caller. Token is optional when the server does not
// require one.
type Session struct {
	UserID uuid.UUID
	Token  string
}

// Position is the center of an object in percent of image width and height.
// Values outside 0..100 are passed through unchanged.
type Position struct {
	X float64
	Y float64
}

// IdentifiedObject is one object found in an image. ID is only unique within
// the response it came from.
type IdentifiedObject struct {
	ID          string
	Name        string
	Translation string
	Position    Position
	Language    Language
}

// SavedWord is a persisted vocabulary entry.
type SavedWord struct {
	ID                   uuid.UUID
	Word                 string
	Translation          string
	SecondaryTranslation *string
	Language             Language
	CreatedAt            time.Time
}

// NewWord is the payload for CreateWord. An empty Translation lets the server
// build one.
type NewWord struct {
	Word                 string
	Translation          string
	SecondaryTranslation *string
	Language             Language
}

// Audio is raw signed 16-bit little-endian PCM.
type Audio struct {
	PCM        []byte
	SampleRate int
	Channels   int
}

const (
	AudioSampleRate = 24000
	AudioChannels   = 1
)
