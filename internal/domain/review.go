package domain

// Ingredient is raw text extracted from an image or a recipe
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
}

// ReviewItem is a resolved ingredient the user can edit before it reaches the cart.
// Cart lines use the same shape.
type ReviewItem struct {
	ID              string     `json:"id"`
	Ingredient      Ingredient `json:"ingredient"`
	Product         Product    `json:"product"`
	Quantity        int        `json:"quantity"`
	SelectedOptions []string   `json:"selectedOptions,omitempty"`
	IsSelected      bool       `json:"isSelected"`
}

// CartTotals is the price breakdown of a cart or order
type CartTotals struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Total       float64 `json:"total"`
	ItemCount   int     `json:"itemCount"`
}
