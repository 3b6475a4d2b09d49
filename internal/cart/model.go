package cart

import "flavorflow/internal/catalog"

// Tax and delivery are fixed for the single-merchant storefront.
const (
	TaxRate        = 0.05
	DeliveryCharge = 0.0
)

// Line is one dish in the active order. It holds a value copy of the
// dish fields taken at add time, so a later catalog edit never changes a
// line already in the cart. Quantity is >= 1 while the line exists.
type Line struct {
	catalog.Dish
	Quantity int `json:"quantity"`
}

// Bill is derived from the lines on every query, never stored, so it can
// never drift from the line items.
type Bill struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Delivery float64 `json:"delivery"`
	Total    float64 `json:"total"`
}
