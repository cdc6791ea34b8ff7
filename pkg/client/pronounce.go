package client

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
)

type pronunciationRequest struct {
	Text     string   `json:"text"`
	Language Language `json:"language"`
}

type pronunciationResponse struct {
	Audio *string `json:"audio"`
}

// Pronounce fetches spoken audio for text. It returns nil, nil when the server
// has no audio for the request.
func (c *Client) Pronounce(ctx context.Context, s Session, text string, lang Language) (*Audio, error) {
	if strings.TrimSpace(text) == "" {
		return nil, invalid("text is empty")
	}
	if !lang.Valid() {
		return nil, invalid("unsupported language %q", lang)
	}

	var resp pronunciationResponse
	err := c.do(ctx, http.MethodPost, "/api/pronunciation", nil, s.Token,
		pronunciationRequest{Text: text, Language: lang}, &resp)
	if err != nil {
		return nil, fmt.Errorf("pronounce: %w", err)
	}
	if resp.Audio == nil || *resp.Audio == "" {
		return nil, nil
	}

	pcm, err := base64.StdEncoding.DecodeString(*resp.Audio)
	if err != nil {
		return nil, fmt.Errorf("pronounce: %w: audio is not base64", ErrMalformedResponse)
	}
	return &Audio{PCM: pcm, SampleRate: AudioSampleRate, Channels: AudioChannels}, nil
}
