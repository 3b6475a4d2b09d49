package llm

// ExtractedDish is the structured record the extraction capability
// produces from a free-text description. All fields are required.
type ExtractedDish struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	IsVeg       bool    `json:"isVeg"`
	Category    string  `json:"category"` // e.g. Main Course | Sides | Beverage | Dessert
}
