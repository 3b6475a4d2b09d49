package llm

import (
	"context"
	"errors"
)

// ErrQuotaExhausted signals the image capability's rate/usage limit.
// It is decided once at the HTTP boundary; callers switch to the
// keyword fallback instead of surfacing a blocking error.
var ErrQuotaExhausted = errors.New("llm: quota exhausted")

// Extractor converts a free-text dish description into structured fields.
type Extractor interface {
	Configured() bool
	ExtractDish(ctx context.Context, description string) (*ExtractedDish, error)
}

// ImageGenerator synthesizes a product photo for a dish title and
// returns it as an embeddable URI.
type ImageGenerator interface {
	GenerateDishImage(ctx context.Context, title string) (string, error)
}
