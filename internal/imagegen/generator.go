package imagegen

import (
	"context"
	"encoding/base64"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Generator produces a PNG image for a text prompt.
type Generator interface {
	// Generate returns the raw PNG bytes for the prompt.
	Generate(ctx context.Context, prompt string) ([]byte, error)
}

// OpenAIGenerator implements Generator using the OpenAI Images API.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

// NewOpenAIGenerator creates an image generator for the given model. The
// model must support 512x512 output (e.g. dall-e-2).
func NewOpenAIGenerator(apiKey string, model string) *OpenAIGenerator {
	return &OpenAIGenerator{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := g.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Model:          g.model,
		N:              1,
		Size:           openai.CreateImageSize512x512,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("image API returned no data")
	}

	png, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("decoding image payload: %w", err)
	}
	return png, nil
}
