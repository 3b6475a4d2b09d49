package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiExtractor implements Extractor on the Gemini API. The response
// schema pins the output to the exact field set of ExtractedDish.
type GeminiExtractor struct {
	apiKey string
	model  string
}

func NewGeminiExtractor() *GeminiExtractor {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &GeminiExtractor{
		apiKey: os.Getenv("GEMINI_API_KEY"),
		model:  model,
	}
}

func (g *GeminiExtractor) Configured() bool {
	return g.apiKey != ""
}

func (g *GeminiExtractor) ExtractDish(ctx context.Context, description string) (*ExtractedDish, error) {
	if g.apiKey == "" {
		return nil, errors.New("missing GEMINI_API_KEY")
	}
	if strings.TrimSpace(description) == "" {
		return nil, errors.New("empty description")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.model)
	model.SetTemperature(0.2)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":       {Type: genai.TypeString},
			"description": {Type: genai.TypeString},
			"price":       {Type: genai.TypeNumber},
			"isVeg":       {Type: genai.TypeBoolean},
			"category":    {Type: genai.TypeString},
		},
		Required: []string{"title", "description", "price", "isVeg", "category"},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(BuildExtractionPrompt(description)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return nil, errors.New("no candidates returned from gemini")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return nil, errors.New("empty content returned from gemini")
	}

	text, ok := candidate.Content.Parts[0].(genai.Text)
	if !ok {
		return nil, errors.New("unexpected response format from gemini")
	}

	var dish ExtractedDish
	if err := json.Unmarshal([]byte(text), &dish); err != nil {
		return nil, errors.New("invalid LLM JSON output")
	}

	if err := validateExtracted(&dish); err != nil {
		return nil, err
	}

	return &dish, nil
}

// Extraction is trusted but not blindly: required fields and the
// non-negative price are checked before the draft is handed out.
func validateExtracted(dish *ExtractedDish) error {
	if strings.TrimSpace(dish.Title) == "" {
		return errors.New("extracted dish has no title")
	}
	if strings.TrimSpace(dish.Category) == "" {
		return errors.New("extracted dish has no category")
	}
	if dish.Price < 0 {
		return errors.New("extracted dish has negative price")
	}
	return nil
}
