package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const defaultImageBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiImageClient implements ImageGenerator against the Gemini image
// model. The image endpoint is not covered by the text SDK, so this
// speaks to the REST API directly.
type GeminiImageClient struct {
	BaseURL string
	apiKey  string
	model   string
	client  *http.Client
}

func NewGeminiImageClient() *GeminiImageClient {
	model := os.Getenv("GEMINI_IMAGE_MODEL")
	if model == "" {
		model = "gemini-2.5-flash-image"
	}
	return &GeminiImageClient{
		BaseURL: defaultImageBaseURL,
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// GenerateDishImage returns the synthesized photo as a data URI.
// A rate-limit rejection maps to ErrQuotaExhausted; every other failure
// is a generic generation error.
func (g *GeminiImageClient) GenerateDishImage(ctx context.Context, title string) (string, error) {
	if g.apiKey == "" {
		return "", errors.New("missing GEMINI_API_KEY")
	}
	if title == "" {
		return "", errors.New("empty dish title")
	}

	url := fmt.Sprintf(
		"%s/models/%s:generateContent?key=%s",
		g.BaseURL,
		g.model,
		g.apiKey,
	)

	payload := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]string{
					{"text": BuildImagePrompt(title)},
				},
			},
		},
		"generationConfig": map[string]any{
			"imageConfig": map[string]string{
				"aspectRatio": "1:1",
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		url,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode == http.StatusTooManyRequests ||
		bytes.Contains(raw, []byte("RESOURCE_EXHAUSTED")) {
		return "", ErrQuotaExhausted
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini api error: %s", string(raw))
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					InlineData struct {
						MimeType string `json:"mimeType"`
						Data     string `json:"data"`
					} `json:"inlineData"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}

	// The free tier drops candidates entirely instead of returning 429.
	if len(result.Candidates) == 0 {
		return "", ErrQuotaExhausted
	}

	for _, part := range result.Candidates[0].Content.Parts {
		if part.InlineData.Data != "" {
			return fmt.Sprintf(
				"data:%s;base64,%s",
				part.InlineData.MimeType,
				part.InlineData.Data,
			), nil
		}
	}

	return "", errors.New("no image data returned")
}
