package cart

import (
	"net/http"

	"flavorflow/internal/catalog"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	cart    *Service
	catalog *catalog.Service
}

func NewHandler(cart *Service, catalog *catalog.Service) *Handler {
	return &Handler{cart: cart, catalog: catalog}
}

func (h *Handler) view() gin.H {
	return gin.H{
		"lines": h.cart.Lines(),
		"count": h.cart.Count(),
		"bill":  h.cart.Bill(),
	}
}

// --------------------------------------------------
// View cart with derived bill
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.view())
}

// --------------------------------------------------
// Add a published dish to the cart
// --------------------------------------------------
func (h *Handler) Add(c *gin.Context) {
	var req struct {
		DishID string `json:"dish_id"`
	}

	if err := c.BindJSON(&req); err != nil || req.DishID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dish_id is required"})
		return
	}

	dish, ok := h.catalog.Get(req.DishID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
		return
	}

	h.cart.Add(dish)
	c.JSON(http.StatusOK, h.view())
}

// --------------------------------------------------
// Apply a quantity delta to a cart line
// --------------------------------------------------
func (h *Handler) UpdateQuantity(c *gin.Context) {
	var req struct {
		Delta int `json:"delta"`
	}

	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	h.cart.UpdateQuantity(c.Param("id"), req.Delta)
	c.JSON(http.StatusOK, h.view())
}
