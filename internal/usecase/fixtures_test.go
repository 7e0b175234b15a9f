package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/cookeasy/backend/internal/domain"
	"github.com/cookeasy/backend/internal/infrastructure/catalog"
	"github.com/cookeasy/backend/internal/infrastructure/memory"
)

var (
	shopper = domain.User{ID: "u-shopper", Name: "Tester User", Email: "user@cookeasy.com", Role: domain.RoleUser}
	admin   = domain.User{ID: "u-admin", Name: "Admin User", Email: "admin@cookeasy.com", Role: domain.RoleAdmin}
	guest   = domain.GuestUser("test")
)

// MockCacheRepository is a mock implementation of domain.CacheRepository
type MockCacheRepository struct {
	data      map[string]interface{}
	getError  error
	setError  error
	getCalled bool
	setCalled bool
}

func NewMockCacheRepository() *MockCacheRepository {
	return &MockCacheRepository{
		data: make(map[string]interface{}),
	}
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) (interface{}, error) {
	m.getCalled = true
	if m.getError != nil {
		return nil, m.getError
	}
	if value, ok := m.data[key]; ok {
		return value, nil
	}
	return nil, domain.ErrCacheMiss
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.setCalled = true
	if m.setError != nil {
		return m.setError
	}
	m.data[key] = value
	return nil
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := m.data[key]
	return ok, nil
}

// MockExtractor is a mock implementation of domain.IngredientExtractor
type MockExtractor struct {
	ingredients []domain.Ingredient
	err         error
	calls       int
}

func (m *MockExtractor) ExtractIngredients(ctx context.Context, image []byte, mimeType string) ([]domain.Ingredient, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.ingredients, nil
}

// fixture wires every service over fresh in-memory stores and a seeded resolver
type fixture struct {
	catalogs *catalog.Store
	resolver *Resolver
	products *memory.ProductStore
	recipes  *memory.RecipeStore
	orders   *memory.OrderStore
	sessions *memory.SessionStore
	nav      *Navigator

	review     *ReviewService
	cart       *CartService
	checkout   *CheckoutService
	navigation *NavigationService
	profile    *ProfileService
	catalog    *CatalogService
	admin      *AdminService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger := zerolog.Nop()
	f := &fixture{catalogs: catalog.NewStore(), nav: NewNavigator()}
	f.resolver = NewResolver(f.catalogs, ResolverConfig{Seed: 1})
	f.products = memory.NewProductStore(f.resolver.SeedProducts())
	f.recipes = memory.NewRecipeStore(catalog.RecommendedRecipes())
	f.orders = memory.NewOrderStore(catalog.InitialOrders())
	f.sessions = memory.NewSessionStore(catalog.NewSession)

	f.review = NewReviewService(f.sessions, f.products, f.recipes, f.resolver, f.nav, logger)
	f.cart = NewCartService(f.sessions, f.products, f.orders, f.nav, logger)
	f.checkout = NewCheckoutService(f.sessions, f.orders, f.nav, CheckoutConfig{
		Random: NewRandomSource(3),
		Now:    func() time.Time { return time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC) },
	}, logger)
	f.navigation = NewNavigationService(f.sessions, f.products, f.recipes, f.catalogs, f.nav)
	f.profile = NewProfileService(f.sessions, f.orders)
	f.catalog = NewCatalogService(f.catalogs, f.products, f.recipes, f.resolver)
	f.admin = NewAdminService(f.products, f.recipes, f.orders, logger)
	return f
}

// line builds a cart line for a product with a fixed price
func line(id string, price float64, quantity int) domain.ReviewItem {
	return domain.ReviewItem{
		ID:         "item-" + id,
		Product:    domain.Product{ID: id, Name: "Product " + id, Price: price},
		Quantity:   quantity,
		IsSelected: true,
	}
}

var validPayment = PaymentDetails{
	FullName:   "Tester User",
	CardNumber: "4242424242424242",
	Expiry:     "12/30",
	CVV:        "123",
	Address:    "123 Green St, Apt 4B, New York, NY 10001",
}
