package catalog

import "github.com/cookeasy/backend/internal/domain"

// RecommendedRecipes returns a fresh copy of the dashboard recipes
func RecommendedRecipes() []domain.Recipe {
	return []domain.Recipe{
		{
			ID:              "1",
			Title:           "Lemon Tea & Mint",
			Description:     "Refreshing cool drink with fresh mint leaves.",
			ImageURL:        unsplash("photo-1513558161293-cdaf765ed2fd"),
			CookTime:        "5 min",
			IngredientCount: 4,
			Ingredients:     []string{"Lemon", "Fresh Mint", "Tea", "Honey"},
		},
		{
			ID:              "2",
			Title:           "Green Avocado Bowl",
			Description:     "Healthy breakfast bowl with seeds and nuts.",
			ImageURL:        unsplash("photo-1546069901-ba9599a7e63c"),
			CookTime:        "15 min",
			IngredientCount: 4,
			Ingredients:     []string{"Avocados", "Spinach", "Banana", "Almond Milk"},
		},
		{
			ID:              "3",
			Title:           "Creamy Pesto Pasta",
			Description:     "Classic Italian basil pesto with pine nuts.",
			ImageURL:        unsplash("photo-1473093295043-cdd812d0e601"),
			CookTime:        "20 min",
			IngredientCount: 5,
			Ingredients:     []string{"Pasta", "Basil", "Pine Nuts", "Parmesan", "Olive Oil"},
		},
		{
			ID:              "4",
			Title:           "Mango Sticky Rice",
			Description:     "Sweet thai dessert with coconut milk.",
			ImageURL:        unsplash("photo-1596797038530-2c107229654b"),
			CookTime:        "30 min",
			IngredientCount: 5,
			Ingredients:     []string{"Mango", "Glutinous Rice", "Coconut Milk", "Sugar", "Sesame Seeds"},
		},
	}
}

// DefaultAddresses are the saved addresses every new session starts with
func DefaultAddresses() []domain.Address {
	return []domain.Address{
		{ID: "a1", Label: "Home", FullAddress: "123 Green St, Apt 4B, New York, NY 10001", IsDefault: true},
		{ID: "a2", Label: "Office", FullAddress: "45 Tech Blvd, Suite 200, San Francisco, CA 94107"},
	}
}

// DefaultCards are the saved cards every new session starts with
func DefaultCards() []domain.PaymentMethod {
	return []domain.PaymentMethod{
		{ID: "p1", Type: "Visa", Last4: "4242", Expiry: "12/25", IsDefault: true},
		{ID: "p2", Type: "Mastercard", Last4: "8888", Expiry: "09/24"},
	}
}

// InitialOrders is the order history the store opens with
func InitialOrders() []domain.Order {
	return []domain.Order{
		{
			ID:           "ORD-7782",
			Date:         "Oct 24, 2023",
			Total:        14.10,
			Status:       domain.OrderDelivered,
			Items:        []domain.ReviewItem{},
			CustomerName: "Tester User",
		},
	}
}

// NewSession is the state a first-time user starts with
func NewSession(user domain.User) domain.Session {
	return domain.Session{
		User:       user,
		Review:     []domain.ReviewItem{},
		Cart:       []domain.ReviewItem{},
		Navigation: domain.InitialNavigation(),
		Addresses:  DefaultAddresses(),
		Cards:      DefaultCards(),
	}
}
