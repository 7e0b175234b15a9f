package domain

// Recipe is a curated dish whose ingredient names can be resolved into a review list
type Recipe struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	ImageURL        string   `json:"imageUrl"`
	CookTime        string   `json:"cookTime"`
	IngredientCount int      `json:"ingredientCount"`
	Ingredients     []string `json:"ingredients"`
	PriceEstimate   float64  `json:"priceEstimate,omitempty"`
	IsFavorite      bool     `json:"isFavorite,omitempty"`
}
