package catalog

// Dish is a published menu entry. The identifier is generated at publish
// time and never changes afterwards; price is always >= 0.
type Dish struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	IsVeg       bool    `json:"isVeg"`
	Category    string  `json:"category"`
	CreatedAt   int64   `json:"createdAt"` // unix milliseconds, matches the stored document
}
