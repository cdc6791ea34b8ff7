package provider

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/lenslearn/internal/domain"
)

type rawObject struct {
	Name        *string  `json:"name"`
	Translation string   `json:"translation"`
	X           *float64 `json:"x"`
	Y           *float64 `json:"y"`
}

// ParseObjects decodes a model's JSON answer into objects. It accepts a bare
// array or an object wrapping the array under "objects", optionally inside a
// markdown code fence. Any other shape, a missing name, or non-numeric
// coordinates yield domain.ErrMalformedResponse.
func ParseObjects(raw []byte) ([]RecognizedObject, error) {
	raw = stripFence(bytes.TrimSpace(raw))
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty payload", domain.ErrMalformedResponse)
	}

	var items []rawObject
	switch raw[0] {
	case '[':
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
		}
	case '{':
		var wrapped struct {
			Objects *[]rawObject `json:"objects"`
		}
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
		}
		if wrapped.Objects == nil {
			return nil, fmt.Errorf("%w: object without \"objects\" array", domain.ErrMalformedResponse)
		}
		items = *wrapped.Objects
	default:
		return nil, fmt.Errorf("%w: expected JSON array", domain.ErrMalformedResponse)
	}

	out := make([]RecognizedObject, 0, len(items))
	for i, it := range items {
		if it.Name == nil {
			return nil, fmt.Errorf("%w: item %d has no name", domain.ErrMalformedResponse, i)
		}
		if it.X == nil || it.Y == nil {
			return nil, fmt.Errorf("%w: item %d has no coordinates", domain.ErrMalformedResponse, i)
		}
		out = append(out, RecognizedObject{
			Name:        *it.Name,
			Translation: it.Translation,
			X:           *it.X,
			Y:           *it.Y,
		})
	}
	return out, nil
}

func stripFence(b []byte) []byte {
	if !bytes.HasPrefix(b, []byte("```")) {
		return b
	}
	b = b[3:]
	if nl := bytes.IndexByte(b, '\n'); nl >= 0 {
		b = b[nl+1:]
	}
	b = bytes.TrimSuffix(bytes.TrimSpace(b), []byte("```"))
	return bytes.TrimSpace(b)
}
