package gemini

import (
	"context"
	"sync"

	"google.golang.org/genai"
)

var _ generator = &generatorMock{}

// generatorMock is a hand-written mock of the generator interface.
type generatorMock struct {
	GenerateContentFunc func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)

	calls struct {
		GenerateContent []struct {
			Model    string
			Contents []*genai.Content
			Config   *genai.GenerateContentConfig
		}
	}
	lockGenerateContent sync.RWMutex
}

func (mock *generatorMock) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	if mock.GenerateContentFunc == nil {
		panic("generatorMock.GenerateContentFunc: method is nil but generator.GenerateContent was just called")
	}
	mock.lockGenerateContent.Lock()
	mock.calls.GenerateContent = append(mock.calls.GenerateContent, struct {
		Model    string
		Contents []*genai.Content
		Config   *genai.GenerateContentConfig
	}{model, contents, config})
	mock.lockGenerateContent.Unlock()
	return mock.GenerateContentFunc(ctx, model, contents, config)
}

func (mock *generatorMock) GenerateContentCalls() []struct {
	Model    string
	Contents []*genai.Content
	Config   *genai.GenerateContentConfig
} {
	mock.lockGenerateContent.RLock()
	defer mock.lockGenerateContent.RUnlock()
	return mock.calls.GenerateContent
}
