package catalog

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Public menu (browse / filter by category)
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	category := c.Query("category")

	c.JSON(http.StatusOK, gin.H{
		"items":      h.service.List(category),
		"categories": h.service.Categories(),
	})
}

// --------------------------------------------------
// Merchant deletes a published dish
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	h.service.Remove(c.Request.Context(), c.Param("id"))

	c.JSON(http.StatusOK, gin.H{"message": "dish removed"})
}

// --------------------------------------------------
// Share-text generator for a published dish
// --------------------------------------------------
func (h *Handler) Share(c *gin.Context) {
	dish, ok := h.service.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
		return
	}

	orderURL := c.Query("order_url")
	if orderURL == "" {
		orderURL = fmt.Sprintf("http://%s/#/", c.Request.Host)
	}

	c.JSON(http.StatusOK, gin.H{
		"text":         BuildShareText(dish, orderURL),
		"whatsapp_url": WhatsAppShareURL(dish, orderURL),
	})
}
