package domain

// Session is the per-user application state that used to live in the browser
type Session struct {
	User       User            `json:"user"`
	Review     []ReviewItem    `json:"review"`
	Cart       []ReviewItem    `json:"cart"`
	Navigation NavigationState `json:"navigation"`
	Addresses  []Address       `json:"addresses"`
	Cards      []PaymentMethod `json:"cards"`
	LastOrder  *Order          `json:"lastOrder,omitempty"`

	// Detail screens currently open
	ActiveProductID  string `json:"activeProductId,omitempty"`
	ActiveCategory   string `json:"activeCategory,omitempty"`
	ActiveRecipeID   string `json:"activeRecipeId,omitempty"`
	ActiveReviewItem string `json:"activeReviewItem,omitempty"`
}
