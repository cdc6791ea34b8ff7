// Package provider defines the contracts the model adapters implement and the
// prompt and payload handling they share.
package provider

import (
	"context"

	"github.com/heartmarshall/lenslearn/internal/domain"
)

// RecognizeRequest is one identification call.
type RecognizeRequest struct {
	Image    []byte
	MIMEType string
	Language domain.Language
}

// RecognizedObject is a single object as reported by a model, before any
// normalization. X and Y are center percentages and may fall outside [0,100].
type RecognizedObject struct {
	Name        string
	Translation string
	X           float64
	Y           float64
}

// Recognizer identifies objects in an image.
type Recognizer interface {
	Name() string
	Recognize(ctx context.Context, req RecognizeRequest) ([]RecognizedObject, error)
}

// Speaker synthesizes speech as raw PCM16 mono at domain.AudioSampleRate.
// It returns nil, nil when the model produced no audio.
type Speaker interface {
	Name() string
	Speak(ctx context.Context, text string, lang domain.Language) ([]byte, error)
}

// Availability is the circuit state of one provider in a chain: "closed"
// (healthy), "half-open" (probing) or "open" (skipped).
type Availability struct {
	Provider string `json:"provider"`
	State    string `json:"state"`
}

// Open reports whether calls to the provider are currently skipped.
func (a Availability) Open() bool { return a.State == "open" }
