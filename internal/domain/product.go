package domain

// MatchType describes how a product relates to the ingredient it was resolved from
type MatchType string

const (
	MatchExact     MatchType = "Exact match"
	MatchSimilar   MatchType = "Similar item"
	MatchBestPrice MatchType = "Best Price"
	MatchPremium   MatchType = "Premium product"
)

// Nutrition holds per-serving macros as display strings, e.g. "2.4g"
type Nutrition struct {
	Protein string `json:"protein"`
	Carbs   string `json:"carbs"`
	Fat     string `json:"fat"`
	Fiber   string `json:"fiber,omitempty"`
}

// Product is a purchasable item, either resolved from a catalog entry or synthesized
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Brand         string    `json:"brand"`
	Price         float64   `json:"price"`
	ImageURL      string    `json:"imageUrl"`
	MatchType     MatchType `json:"matchType"`
	Weight        string    `json:"weight"`
	Category      string    `json:"category"`
	Calories      int       `json:"calories"`
	Nutrition     Nutrition `json:"nutrition"`
	PricePerUnit  string    `json:"pricePerUnit"`
	Allergens     []string  `json:"allergens"`
	DietaryType   []string  `json:"dietaryType"`
	StockQuantity int       `json:"stockQuantity"`
	IsActive      bool      `json:"isActive"`
}
