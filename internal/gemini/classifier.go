package gemini

import (
	"context"
	"encoding/base64"
	"fmt"

	"google.golang.org/genai"

	"github.com/Hetwork/swachhsathi-cf/internal/config"
	"github.com/Hetwork/swachhsathi-cf/pkg/e"
)

// Classifier is the generative fallback: one multimodal request per image,
// the caller supplies the full prompt and parses the textual response.
type Classifier struct {
	client *genai.Client
	model  string
}

func NewClassifier(ctx context.Context, cfg config.GeminiConfig) (*Classifier, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Classifier{client: client, model: model}, nil
}

// Classify sends the base64-encoded image with the prompt and returns the
// raw text response.
func (c *Classifier) Classify(ctx context.Context, imageB64, prompt string) (string, error) {
	const op = "gemini.Classify"

	img, err := base64.StdEncoding.DecodeString(imageB64)
	if err != nil {
		return "", fmt.Errorf("%s: %w: decode image: %w", op, e.ErrExternalService, err)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(img, "image/jpeg"),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", op, e.ErrExternalService, err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("%s: %w: empty response", op, e.ErrExternalService)
	}

	return text, nil
}
