package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

type identifyRequest struct {
	ImageBase64    string   `json:"image_base64"`
	TargetLanguage Language `json:"target_language"`
}

// Identify sends a base64 JPEG to the server and returns the objects it found.
// Object ids are "obj-<index>" and are only meaningful within this result.
func (c *Client) Identify(ctx context.Context, s Session, imageBase64 string, lang Language) ([]IdentifiedObject, error) {
	if strings.TrimSpace(imageBase64) == "" {
		return nil, invalid("image is empty")
	}
	if !lang.Valid() {
		return nil, invalid("unsupported language %q", lang)
	}

	var raw json.RawMessage
	err := c.do(ctx, http.MethodPost, "/api/identify", nil, s.Token,
		identifyRequest{ImageBase64: imageBase64, TargetLanguage: lang}, &raw)
	if err != nil {
		return nil, fmt.Errorf("identify: %w", err)
	}

	objects, err := parseObjects(raw, lang)
	if err != nil {
		return nil, fmt.Errorf("identify: %w", err)
	}
	return objects, nil
}

// parseObjects requires an array whose items carry a string name and numeric
// x and y. Translation may be absent.
func parseObjects(raw json.RawMessage, lang Language) ([]IdentifiedObject, error) {
	var items []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: expected an array of objects", ErrMalformedResponse)
	}

	objects := make([]IdentifiedObject, 0, len(items))
	for i, item := range items {
		if item == nil {
			return nil, fmt.Errorf("%w: item %d is not an object", ErrMalformedResponse, i)
		}

		var name string
		if err := decodeField(item, "name", &name); err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrMalformedResponse, i, err)
		}
		var x, y float64
		if err := decodeField(item, "x", &x); err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrMalformedResponse, i, err)
		}
		if err := decodeField(item, "y", &y); err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrMalformedResponse, i, err)
		}

		var translation string
		if rawTr, ok := item["translation"]; ok && string(rawTr) != "null" {
			if err := json.Unmarshal(rawTr, &translation); err != nil {
				return nil, fmt.Errorf("%w: item %d: translation is not a string", ErrMalformedResponse, i)
			}
		}

		objects = append(objects, IdentifiedObject{
			ID:          "obj-" + strconv.Itoa(i),
			Name:        name,
			Translation: translation,
			Position:    Position{X: x, Y: y},
			Language:    lang,
		})
	}
	return objects, nil
}

func decodeField(item map[string]json.RawMessage, field string, dst any) error {
	raw, ok := item[field]
	if !ok || string(raw) == "null" {
		return fmt.Errorf("missing %s", field)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%s has wrong type", field)
	}
	return nil
}
