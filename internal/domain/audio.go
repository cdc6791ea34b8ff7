package domain

import "time"

// PCM format produced by every speech provider: signed 16-bit little-endian mono.
const (
	AudioSampleRate = 24000
	AudioChannels   = 1
	AudioBitDepth   = 16
)

// ClipKey identifies one synthesized pronunciation.
type ClipKey struct {
	Text     string
	Language Language
}

// Clip is stored pronunciation audio in the PCM format above.
type Clip struct {
	ClipKey
	Audio     []byte
	Provider  string
	CreatedAt time.Time
}

func (k ClipKey) String() string { return string(k.Language) + ":" + k.Text }
