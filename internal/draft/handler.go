package draft

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	workflow *Workflow
}

func NewHandler(workflow *Workflow) *Handler {
	return &Handler{workflow: workflow}
}

func (h *Handler) snapshot() gin.H {
	state, draft, image, busy := h.workflow.Snapshot()
	return gin.H{
		"state": state,
		"draft": draft,
		"image": image,
		"busy":  busy,
	}
}

// --------------------------------------------------
// Merchant submits a free-text description
// --------------------------------------------------
func (h *Handler) Submit(c *gin.Context) {
	var req struct {
		Description string `json:"description"`
	}

	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	_, err := h.workflow.Submit(c.Request.Context(), req.Description)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyDescription):
			c.JSON(http.StatusBadRequest, gin.H{"error": "description is required"})
		case errors.Is(err, ErrNotConfigured):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "AI capability is not configured. Check GEMINI_API_KEY.",
			})
		case errors.Is(err, ErrBusy), errors.Is(err, ErrDraftActive):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, ErrExtraction):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Failed to parse dish. Please try describing it more clearly.",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, h.snapshot())
}

// --------------------------------------------------
// Current draft state
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.snapshot())
}

// --------------------------------------------------
// Image source: AI generation (quota → fallback advisory)
// --------------------------------------------------
func (h *Handler) AIImage(c *gin.Context) {
	advisory, err := h.workflow.RequestAIImage(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, ErrNoDraft):
			c.JSON(http.StatusBadRequest, gin.H{"error": "no active draft"})
		case errors.Is(err, ErrBusy):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "AI Generation failed. Try the stock photo or upload instead.",
			})
		}
		return
	}

	out := h.snapshot()
	if advisory != "" {
		out["advisory"] = advisory
	}
	c.JSON(http.StatusOK, out)
}

// --------------------------------------------------
// Image source: keyword search fallback
// --------------------------------------------------
func (h *Handler) FallbackImage(c *gin.Context) {
	if err := h.workflow.RequestKeywordFallback(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no active draft"})
		return
	}

	c.JSON(http.StatusOK, h.snapshot())
}

// --------------------------------------------------
// Image source: custom upload
// --------------------------------------------------
func (h *Handler) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	if err := h.workflow.UploadCustomImage(c.Request.Context(), data, contentType, header.Filename); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.snapshot())
}

// --------------------------------------------------
// Publish the draft to the menu
// --------------------------------------------------
func (h *Handler) Publish(c *gin.Context) {
	dish, err := h.workflow.Publish(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, ErrBusy):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "dish published",
		"dish":    dish,
	})
}

// --------------------------------------------------
// Discard the draft
// --------------------------------------------------
func (h *Handler) Discard(c *gin.Context) {
	h.workflow.Discard()
	c.JSON(http.StatusOK, h.snapshot())
}
