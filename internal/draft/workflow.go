package draft

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"flavorflow/internal/catalog"
	"flavorflow/internal/images"
	"flavorflow/internal/llm"

	"github.com/google/uuid"
)

type State string

const (
	StateIdle    State = "IDLE"
	StateDrafted State = "DRAFTED"
)

// AdvisoryQuotaFallback is surfaced when a rate-limited AI image request
// is recovered automatically with the keyword fallback. It is an
// advisory, not a blocking error.
const AdvisoryQuotaFallback = "AI image limit reached; switched to a stock photo fallback"

// Draft is the unpublished candidate produced by extraction. It gets an
// identifier and timestamp only when published.
type Draft struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	IsVeg       bool    `json:"isVeg"`
	Category    string  `json:"category"`
}

// Uploader stores custom photo bytes in a media bucket. Optional; when
// absent, uploads are embedded inline as data URIs.
type Uploader interface {
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
}

// Workflow is the two-state merchant creation flow: Idle → Drafted →
// Idle (on publish or discard). A single draft is active at a time; the
// busy flag refuses new submissions while a capability call is in
// flight, without touching the catalog or cart.
type Workflow struct {
	mu    sync.Mutex
	busy  bool
	state State
	draft *Draft
	image string // PendingImage: never empty while a draft exists

	extractor llm.Extractor
	generator llm.ImageGenerator
	uploader  Uploader
	catalog   *catalog.Service
}

func NewWorkflow(
	extractor llm.Extractor,
	generator llm.ImageGenerator,
	uploader Uploader,
	catalogService *catalog.Service,
) *Workflow {
	return &Workflow{
		state:     StateIdle,
		extractor: extractor,
		generator: generator,
		uploader:  uploader,
		catalog:   catalogService,
	}
}

// Snapshot reports the workflow for rendering.
func (w *Workflow) Snapshot() (state State, draft *Draft, pendingImage string, busy bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.draft != nil {
		copied := *w.draft
		draft = &copied
	}
	return w.state, draft, w.image, w.busy
}

// Submit runs the extraction capability over the free-text description.
// On success the workflow enters Drafted with the keyword fallback
// already set as the pending image, so the merchant always has a
// publishable default before any image action.
func (w *Workflow) Submit(ctx context.Context, freeText string) (*Draft, error) {
	text := strings.TrimSpace(freeText)
	if text == "" {
		return nil, ErrEmptyDescription
	}
	if w.extractor == nil || !w.extractor.Configured() {
		return nil, ErrNotConfigured
	}

	w.mu.Lock()
	if w.busy {
		w.mu.Unlock()
		return nil, ErrBusy
	}
	if w.state == StateDrafted {
		w.mu.Unlock()
		return nil, ErrDraftActive
	}
	w.busy = true
	w.mu.Unlock()

	extracted, err := w.extractor.ExtractDish(ctx, text)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.busy = false

	if err != nil {
		// The workflow stays Idle; the merchant rephrases and retries.
		return nil, fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	draft := &Draft{
		Title:       extracted.Title,
		Description: extracted.Description,
		Price:       extracted.Price,
		IsVeg:       extracted.IsVeg,
		Category:    extracted.Category,
	}

	w.draft = draft
	w.image = images.KeywordFallback(draft.Title)
	w.state = StateDrafted

	log.Printf("DRAFT_CREATED title=%q price=%.2f", draft.Title, draft.Price)

	copied := *draft
	return &copied, nil
}

// RequestAIImage asks the image capability for a synthesized photo. A
// quota rejection falls back to the keyword image automatically and
// returns an advisory; any other failure leaves the pending image
// untouched.
func (w *Workflow) RequestAIImage(ctx context.Context) (advisory string, err error) {
	w.mu.Lock()
	if w.state != StateDrafted || w.draft == nil {
		w.mu.Unlock()
		return "", ErrNoDraft
	}
	if w.busy {
		w.mu.Unlock()
		return "", ErrBusy
	}
	w.busy = true
	title := w.draft.Title
	w.mu.Unlock()

	image, genErr := w.generator.GenerateDishImage(ctx, title)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.busy = false

	if genErr != nil {
		if errors.Is(genErr, llm.ErrQuotaExhausted) {
			w.image = images.KeywordFallback(title)
			log.Printf("IMAGE_QUOTA_FALLBACK title=%q", title)
			return AdvisoryQuotaFallback, nil
		}
		return "", fmt.Errorf("%w: %v", ErrImageGeneration, genErr)
	}

	w.image = image
	return "", nil
}

// RequestKeywordFallback replaces the pending image with the keyword
// search image. Capability-free, always succeeds.
func (w *Workflow) RequestKeywordFallback() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateDrafted || w.draft == nil {
		return ErrNoDraft
	}

	w.image = images.KeywordFallback(w.draft.Title)
	return nil
}

// UploadCustomImage replaces the pending image with merchant-supplied
// bytes. When a media bucket is configured the bytes land there and the
// public URL becomes the pending image; otherwise, or if the bucket
// rejects the upload, the bytes are embedded inline.
func (w *Workflow) UploadCustomImage(ctx context.Context, data []byte, contentType, filename string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateDrafted || w.draft == nil {
		return ErrNoDraft
	}
	if len(data) == 0 {
		return errors.New("draft: empty image upload")
	}

	if w.uploader != nil {
		key := fmt.Sprintf(
			"dishes/%s%s",
			uuid.New().String(),
			strings.ToLower(filepath.Ext(filename)),
		)
		url, err := w.uploader.Upload(ctx, key, contentType, bytes.NewReader(data))
		if err == nil {
			w.image = url
			return nil
		}
		log.Printf("IMAGE_UPLOAD_FALLBACK err=%v", err)
	}

	w.image = images.DataURI(contentType, data)
	return nil
}

// Discard drops the draft and pending image and returns to Idle.
func (w *Workflow) Discard() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.draft = nil
	w.image = ""
	w.state = StateIdle
}

// Publish converts the draft into a dish with a fresh identifier and
// timestamp, adds it to the catalog, and returns to Idle. A draft with
// no pending image cannot be published.
func (w *Workflow) Publish(ctx context.Context) (catalog.Dish, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateDrafted || w.draft == nil {
		return catalog.Dish{}, ErrNoDraft
	}
	if w.busy {
		return catalog.Dish{}, ErrBusy
	}
	if w.image == "" {
		return catalog.Dish{}, ErrNoImage
	}
	if strings.TrimSpace(w.draft.Title) == "" || w.draft.Price < 0 {
		return catalog.Dish{}, ErrInvalid
	}

	dish := catalog.Dish{
		ID:          uuid.New().String(),
		Title:       w.draft.Title,
		Description: w.draft.Description,
		Price:       w.draft.Price,
		ImageURL:    w.image,
		IsVeg:       w.draft.IsVeg,
		Category:    w.draft.Category,
		CreatedAt:   time.Now().UnixMilli(),
	}

	if err := w.catalog.Add(ctx, dish); err != nil {
		return catalog.Dish{}, err
	}

	w.draft = nil
	w.image = ""
	w.state = StateIdle

	log.Printf("DISH_PUBLISHED id=%s title=%q", dish.ID, dish.Title)
	return dish, nil
}
