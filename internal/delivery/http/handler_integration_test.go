package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/cookeasy/backend/config"
	"github.com/cookeasy/backend/internal/domain"
	"github.com/cookeasy/backend/internal/infrastructure/cache"
	"github.com/cookeasy/backend/internal/infrastructure/catalog"
	"github.com/cookeasy/backend/internal/infrastructure/memory"
	"github.com/cookeasy/backend/internal/usecase"
)

// TestMain sets up test environment before running tests
func TestMain(m *testing.M) {
	// Set Gin to test mode once for all tests
	gin.SetMode(gin.TestMode)

	exitCode := m.Run()
	os.Exit(exitCode)
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

// fakeExtractor returns fixed ingredients and counts calls
type fakeExtractor struct {
	ingredients []domain.Ingredient
	calls       int
}

func (f *fakeExtractor) ExtractIngredients(ctx context.Context, image []byte, mimeType string) ([]domain.Ingredient, error) {
	f.calls++
	return f.ingredients, nil
}

type testServer struct {
	router    *gin.Engine
	extractor *fakeExtractor
}

// setupTestRouter wires the real services over in-memory stores
func setupTestRouter(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			Environment:    "test",
			AllowedOrigins: []string{"http://localhost:*"},
		},
		RateLimit: config.RateLimitConfig{PerIP: 10000, Burst: 1000},
	}
	logger := zerolog.Nop()

	catalogs := catalog.NewStore()
	resolver := usecase.NewResolver(catalogs, usecase.ResolverConfig{Seed: 42})
	products := memory.NewProductStore(resolver.SeedProducts())
	recipes := memory.NewRecipeStore(catalog.RecommendedRecipes())
	orders := memory.NewOrderStore(catalog.InitialOrders())
	sessions := memory.NewSessionStore(catalog.NewSession)

	analysisCache := cache.NewMemoryCache()
	t.Cleanup(func() { analysisCache.Close() })

	extractor := &fakeExtractor{ingredients: []domain.Ingredient{
		{Name: "Salmon", Quantity: "2 fillets"},
		{Name: "Lemon", Quantity: "1"},
	}}

	nav := usecase.NewNavigator()
	review := usecase.NewReviewService(sessions, products, recipes, resolver, nav, logger)
	services := Services{
		Auth:     usecase.NewAuthService(usecase.AuthConfig{Secret: "test-secret"}, logger),
		Catalog:  usecase.NewCatalogService(catalogs, products, recipes, resolver),
		Review:   review,
		Analysis: usecase.NewAnalysisService(analysisCache, extractor, review, usecase.AnalysisServiceConfig{}, logger),
		Cart:     usecase.NewCartService(sessions, products, orders, nav, logger),
		Checkout: usecase.NewCheckoutService(sessions, orders, nav, usecase.CheckoutConfig{
			Random: usecase.NewRandomSource(7),
		}, logger),
		Navigation: usecase.NewNavigationService(sessions, products, recipes, catalogs, nav),
		Profile:    usecase.NewProfileService(sessions, orders),
		Admin:      usecase.NewAdminService(products, recipes, orders, logger),
	}

	handler := NewHandler(services, 1<<20, logger)
	return &testServer{
		router:    SetupRouter(cfg, handler, logger),
		extractor: extractor,
	}
}

// do sends a JSON request; body may be nil
func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) login(t *testing.T, email, password string) string {
	t.Helper()

	w := s.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": email, "password": password})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}
	var result usecase.AuthResult
	decodeJSON(t, w, &result)
	return result.Token
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("Failed to unmarshal response %q: %v", w.Body.String(), err)
	}
}

func containsToken(list, token string) bool {
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == token {
			return true
		}
	}
	return false
}

func wantStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("Status = %d, want %d (body %s)", w.Code, want, w.Body.String())
	}
}

func TestHealthCheckEndpoint(t *testing.T) {
	t.Run("returns healthy status", func(t *testing.T) {
		server := setupTestRouter(t)

		w := server.do(t, http.MethodGet, "/health", "", nil)
		wantStatus(t, w, http.StatusOK)

		var response map[string]interface{}
		decodeJSON(t, w, &response)

		if response["status"] != "healthy" {
			t.Errorf("status = %v, want healthy", response["status"])
		}
		if response["service"] != "cookeasy-backend" {
			t.Errorf("service = %v, want cookeasy-backend", response["service"])
		}
		version, ok := response["version"].(string)
		if !ok || strings.TrimSpace(version) == "" {
			t.Errorf("version = %v, want non-empty string", response["version"])
		}
	})

	t.Run("accepts GET requests only", func(t *testing.T) {
		server := setupTestRouter(t)

		for _, method := range []string{"POST", "PUT", "DELETE", "PATCH"} {
			w := server.do(t, method, "/health", "", nil)
			if w.Code != http.StatusNotFound {
				t.Errorf("Method %s: Status = %d, want %d", method, w.Code, http.StatusNotFound)
			}
		}
	})
}

func TestAuthEndpoints(t *testing.T) {
	server := setupTestRouter(t)

	t.Run("demo login", func(t *testing.T) {
		token := server.login(t, "user@cookeasy.com", "user")

		w := server.do(t, http.MethodGet, "/api/v1/auth/me", token, nil)
		wantStatus(t, w, http.StatusOK)

		var user domain.User
		decodeJSON(t, w, &user)
		if user.Name != "Tester User" || user.Role != domain.RoleUser {
			t.Errorf("me = %+v, want Tester User with role user", user)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		w := server.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
			"email":    "admin@cookeasy.com",
			"password": "nope",
		})
		wantStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("missing fields", func(t *testing.T) {
		w := server.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "a@b.c"})
		wantStatus(t, w, http.StatusBadRequest)
	})

	t.Run("me requires a token", func(t *testing.T) {
		w := server.do(t, http.MethodGet, "/api/v1/auth/me", "", nil)
		wantStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("register", func(t *testing.T) {
		w := server.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
			"email":    "sam@example.com",
			"password": "secret",
		})
		wantStatus(t, w, http.StatusCreated)

		var result usecase.AuthResult
		decodeJSON(t, w, &result)
		if result.User.Name != "sam" {
			t.Errorf("name = %q, want %q", result.User.Name, "sam")
		}
	})
}

func TestCatalogEndpoints(t *testing.T) {
	server := setupTestRouter(t)

	t.Run("categories", func(t *testing.T) {
		w := server.do(t, http.MethodGet, "/api/v1/categories", "", nil)
		wantStatus(t, w, http.StatusOK)

		var categories []domain.Category
		decodeJSON(t, w, &categories)
		if len(categories) != 6 {
			t.Errorf("len(categories) = %d, want 6", len(categories))
		}
	})

	t.Run("category products", func(t *testing.T) {
		w := server.do(t, http.MethodGet, "/api/v1/categories/3/products", "", nil)
		wantStatus(t, w, http.StatusOK)

		var products []domain.Product
		decodeJSON(t, w, &products)
		if len(products) == 0 {
			t.Fatal("expected seafood products")
		}
		for _, p := range products {
			if p.Category != domain.CategorySeafood {
				t.Errorf("product %s category = %q, want Seafood", p.ID, p.Category)
			}
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		w := server.do(t, http.MethodGet, "/api/v1/categories/99/products", "", nil)
		wantStatus(t, w, http.StatusNotFound)
	})

	t.Run("resolve ingredient", func(t *testing.T) {
		w := server.do(t, http.MethodGet, "/api/v1/resolve?name=Lemon", "", nil)
		wantStatus(t, w, http.StatusOK)

		var detail usecase.ProductDetail
		decodeJSON(t, w, &detail)
		if detail.Product.Name != "Lemons" || detail.Product.Price != 2.00 {
			t.Errorf("resolved = %s %.2f, want Lemons 2.00", detail.Product.Name, detail.Product.Price)
		}
	})

	t.Run("recipes on legacy path", func(t *testing.T) {
		w := server.do(t, http.MethodGet, "/api/recipes", "", nil)
		wantStatus(t, w, http.StatusOK)

		var recipes []domain.Recipe
		decodeJSON(t, w, &recipes)
		if len(recipes) != 4 {
			t.Errorf("len(recipes) = %d, want 4", len(recipes))
		}
	})

	t.Run("recipe search", func(t *testing.T) {
		w := server.do(t, http.MethodGet, "/api/v1/recipes?q=pesto", "", nil)
		wantStatus(t, w, http.StatusOK)

		var recipes []domain.Recipe
		decodeJSON(t, w, &recipes)
		if len(recipes) != 1 || recipes[0].Title != "Creamy Pesto Pasta" {
			t.Errorf("recipes = %+v, want only Creamy Pesto Pasta", recipes)
		}
	})
}

func TestAnalyzeImage(t *testing.T) {
	upload := func(t *testing.T, server *testServer, data []byte) *httptest.ResponseRecorder {
		t.Helper()

		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		part, err := writer.CreateFormFile("image", "dinner.png")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		part.Write(data)
		writer.Close()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/analysis", &body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		req.Header.Set(guestHeader, "camera-test")
		w := httptest.NewRecorder()
		server.router.ServeHTTP(w, req)
		return w
	}

	t.Run("builds review list and caches by content", func(t *testing.T) {
		server := setupTestRouter(t)

		w := upload(t, server, pngHeader)
		wantStatus(t, w, http.StatusOK)

		var result usecase.AnalysisResult
		decodeJSON(t, w, &result)
		if len(result.Session.Review) != 2 {
			t.Fatalf("len(review) = %d, want 2", len(result.Session.Review))
		}
		if result.Session.Navigation.Home != domain.HomeReview {
			t.Errorf("home = %q, want %q", result.Session.Navigation.Home, domain.HomeReview)
		}
		if result.Cached {
			t.Error("first analysis should not be cached")
		}

		w = upload(t, server, pngHeader)
		wantStatus(t, w, http.StatusOK)
		decodeJSON(t, w, &result)
		if !result.Cached {
			t.Error("second analysis of the same image should be cached")
		}
		if server.extractor.calls != 1 {
			t.Errorf("extractor calls = %d, want 1", server.extractor.calls)
		}
	})

	t.Run("rejects non-images", func(t *testing.T) {
		server := setupTestRouter(t)

		w := upload(t, server, []byte("plain text, not a photo"))
		wantStatus(t, w, http.StatusBadRequest)
	})

	t.Run("requires a file", func(t *testing.T) {
		server := setupTestRouter(t)

		w := server.do(t, http.MethodPost, "/api/v1/analysis", "", nil)
		wantStatus(t, w, http.StatusBadRequest)
	})

	t.Run("oversized upload", func(t *testing.T) {
		server := setupTestRouter(t)

		big := append(append([]byte{}, pngHeader...), make([]byte, 2<<20)...)
		w := upload(t, server, big)
		wantStatus(t, w, http.StatusRequestEntityTooLarge)
		if !strings.Contains(w.Body.String(), "at most") {
			t.Errorf("body = %s, want a size message", w.Body.String())
		}
		if server.extractor.calls != 0 {
			t.Errorf("extractor calls = %d, want 0", server.extractor.calls)
		}
	})
}

func TestShoppingFlow(t *testing.T) {
	server := setupTestRouter(t)
	token := server.login(t, "user@cookeasy.com", "user")

	// Lemon Tea & Mint resolves into four review items
	w := server.do(t, http.MethodPost, "/api/v1/recipes/1/review", token, nil)
	wantStatus(t, w, http.StatusOK)

	var session domain.Session
	decodeJSON(t, w, &session)
	if len(session.Review) != 4 {
		t.Fatalf("len(review) = %d, want 4", len(session.Review))
	}

	w = server.do(t, http.MethodPost, "/api/v1/review/item-1/toggle", token, nil)
	wantStatus(t, w, http.StatusOK)

	w = server.do(t, http.MethodPost, "/api/v1/review/item-0/quantity", token, map[string]int{"delta": 2})
	wantStatus(t, w, http.StatusOK)
	var item domain.ReviewItem
	decodeJSON(t, w, &item)
	if item.Quantity != 3 {
		t.Errorf("quantity = %d, want 3", item.Quantity)
	}

	w = server.do(t, http.MethodPost, "/api/v1/cart/from-review", token, nil)
	wantStatus(t, w, http.StatusOK)
	decodeJSON(t, w, &session)
	if len(session.Cart) != 3 {
		t.Fatalf("len(cart) = %d, want 3", len(session.Cart))
	}
	if !session.Navigation.CartOpen || session.Navigation.Home != domain.HomeDashboard {
		t.Errorf("navigation = %+v, want dashboard with cart open", session.Navigation)
	}

	// The review list was already carried over
	w = server.do(t, http.MethodPost, "/api/v1/cart/from-review", token, nil)
	wantStatus(t, w, http.StatusConflict)

	w = server.do(t, http.MethodGet, "/api/v1/cart", token, nil)
	wantStatus(t, w, http.StatusOK)
	var cart usecase.CartView
	decodeJSON(t, w, &cart)
	if cart.Totals.ItemCount != 5 {
		t.Errorf("item count = %d, want 5", cart.Totals.ItemCount)
	}

	t.Run("invalid payment", func(t *testing.T) {
		w := server.do(t, http.MethodPost, "/api/v1/checkout", token, usecase.PaymentDetails{
			FullName:   "Tester User",
			CardNumber: "1234",
			Expiry:     "13/30",
			CVV:        "12",
			Address:    "123 Green St",
		})
		wantStatus(t, w, http.StatusUnprocessableEntity)

		var response struct {
			Fields map[string]string `json:"fields"`
		}
		decodeJSON(t, w, &response)
		for _, field := range []string{"cardNumber", "expiryDate", "cvv"} {
			if _, ok := response.Fields[field]; !ok {
				t.Errorf("fields missing %q: %v", field, response.Fields)
			}
		}
	})

	w = server.do(t, http.MethodPost, "/api/v1/checkout", token, usecase.PaymentDetails{
		FullName:   "Tester User",
		CardNumber: "4242 4242 4242 4242",
		Expiry:     "12/30",
		CVV:        "123",
		Address:    "123 Green St, Apt 4B, New York, NY 10001",
	})
	wantStatus(t, w, http.StatusCreated)

	var order domain.Order
	decodeJSON(t, w, &order)
	if !strings.HasPrefix(order.ID, "ORD-") {
		t.Errorf("order id = %q, want ORD- prefix", order.ID)
	}
	if order.Status != domain.OrderReceived || len(order.Items) != 3 {
		t.Errorf("order = %s with %d items, want %s with 3", order.Status, len(order.Items), domain.OrderReceived)
	}
	if order.Total != cart.Totals.Total {
		t.Errorf("order total = %.2f, want %.2f", order.Total, cart.Totals.Total)
	}

	w = server.do(t, http.MethodGet, "/api/v1/cart", token, nil)
	wantStatus(t, w, http.StatusOK)
	decodeJSON(t, w, &cart)
	if len(cart.Items) != 0 {
		t.Errorf("cart after checkout has %d lines, want 0", len(cart.Items))
	}

	w = server.do(t, http.MethodPost, "/api/v1/checkout", token, usecase.PaymentDetails{})
	wantStatus(t, w, http.StatusBadRequest)

	w = server.do(t, http.MethodGet, "/api/v1/orders", token, nil)
	wantStatus(t, w, http.StatusOK)
	var history []domain.Order
	decodeJSON(t, w, &history)
	if len(history) != 2 || history[0].ID != order.ID {
		t.Errorf("history = %d orders starting %v, want 2 starting %s", len(history), history, order.ID)
	}

	w = server.do(t, http.MethodPost, "/api/v1/navigation/continue-shopping", token, nil)
	wantStatus(t, w, http.StatusOK)
	decodeJSON(t, w, &session)
	if session.Navigation.CartOpen {
		t.Error("cart should be closed after continue shopping")
	}

	w = server.do(t, http.MethodPost, "/api/v1/orders/"+order.ID+"/reorder", token, nil)
	wantStatus(t, w, http.StatusOK)
	decodeJSON(t, w, &cart)
	if len(cart.Items) != 3 {
		t.Errorf("reorder cart has %d lines, want 3", len(cart.Items))
	}
}

func TestGuestRestrictions(t *testing.T) {
	server := setupTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"cart", http.MethodGet, "/api/v1/cart"},
		{"checkout", http.MethodPost, "/api/v1/checkout"},
		{"profile", http.MethodGet, "/api/v1/profile"},
		{"continue review", http.MethodPost, "/api/v1/cart/from-review"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := server.do(t, tt.method, tt.path, "", nil)
			wantStatus(t, w, http.StatusUnauthorized)
		})
	}

	t.Run("guest can open a recipe review", func(t *testing.T) {
		w := server.do(t, http.MethodPost, "/api/v1/recipes/2/review", "", nil)
		wantStatus(t, w, http.StatusOK)
	})

	t.Run("guest cannot open the profile tab", func(t *testing.T) {
		w := server.do(t, http.MethodPost, "/api/v1/navigation", "", usecase.NavigateRequest{
			Area: domain.AreaTab,
			View: string(domain.TabProfile),
		})
		wantStatus(t, w, http.StatusUnauthorized)
	})
}

func TestNavigationEndpoints(t *testing.T) {
	server := setupTestRouter(t)
	token := server.login(t, "user@cookeasy.com", "user")

	tests := []struct {
		name       string
		req        usecase.NavigateRequest
		wantStatus int
	}{
		{
			name:       "dashboard to category detail",
			req:        usecase.NavigateRequest{Area: domain.AreaHome, View: string(domain.HomeCategoryDetail), Category: "Fruits"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "category detail cannot jump to review",
			req:        usecase.NavigateRequest{Area: domain.AreaHome, View: string(domain.HomeReview)},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "back to dashboard",
			req:        usecase.NavigateRequest{Area: domain.AreaHome, View: string(domain.HomeDashboard)},
			wantStatus: http.StatusOK,
		},
		{
			name:       "payment needs the cart open",
			req:        usecase.NavigateRequest{Area: domain.AreaShop, View: string(domain.ShopPayment)},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "admin console is forbidden",
			req:        usecase.NavigateRequest{Area: domain.AreaAdmin, View: string(domain.AdminOrders)},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "unknown area",
			req:        usecase.NavigateRequest{Area: "settings", View: "Menu"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := server.do(t, http.MethodPost, "/api/v1/navigation", token, tt.req)
			wantStatus(t, w, tt.wantStatus)
		})
	}
}

func TestAdminEndpoints(t *testing.T) {
	server := setupTestRouter(t)
	adminToken := server.login(t, "admin@cookeasy.com", "admin")
	userToken := server.login(t, "user@cookeasy.com", "user")

	t.Run("shoppers are forbidden", func(t *testing.T) {
		w := server.do(t, http.MethodGet, "/api/v1/admin/stats", userToken, nil)
		wantStatus(t, w, http.StatusForbidden)
	})

	t.Run("stats", func(t *testing.T) {
		w := server.do(t, http.MethodGet, "/api/v1/admin/stats", adminToken, nil)
		wantStatus(t, w, http.StatusOK)

		var stats domain.OrderStats
		decodeJSON(t, w, &stats)
		if stats.TotalOrders != 1 || stats.TotalRecipes != 4 {
			t.Errorf("stats = %+v, want 1 order and 4 recipes", stats)
		}
	})

	t.Run("product lifecycle", func(t *testing.T) {
		w := server.do(t, http.MethodPost, "/api/v1/admin/products", adminToken, domain.Product{
			Name:     "Manuka Honey",
			Price:    18.5,
			Category: "Pantry",
		})
		wantStatus(t, w, http.StatusCreated)

		var created domain.Product
		decodeJSON(t, w, &created)
		if !strings.HasPrefix(created.ID, "prod-") {
			t.Errorf("id = %q, want prod- prefix", created.ID)
		}

		w = server.do(t, http.MethodGet, "/api/v1/admin/products?q=manuka", adminToken, nil)
		wantStatus(t, w, http.StatusOK)
		var found []domain.Product
		decodeJSON(t, w, &found)
		if len(found) != 1 {
			t.Errorf("search found %d products, want 1", len(found))
		}

		w = server.do(t, http.MethodDelete, "/api/v1/admin/products/"+created.ID, adminToken, nil)
		wantStatus(t, w, http.StatusNoContent)

		w = server.do(t, http.MethodGet, "/api/v1/products/"+created.ID, adminToken, nil)
		wantStatus(t, w, http.StatusNotFound)
	})

	t.Run("invalid product", func(t *testing.T) {
		w := server.do(t, http.MethodPost, "/api/v1/admin/products", adminToken, domain.Product{Name: "Free"})
		wantStatus(t, w, http.StatusBadRequest)
	})

	t.Run("order status workflow", func(t *testing.T) {
		w := server.do(t, http.MethodPatch, "/api/v1/admin/orders/ORD-7782/status", adminToken, usecase.StatusUpdate{
			Status: domain.OrderPreparing,
		})
		wantStatus(t, w, http.StatusConflict)

		w = server.do(t, http.MethodPatch, "/api/v1/admin/orders/ORD-0000/status", adminToken, usecase.StatusUpdate{
			Status: domain.OrderPreparing,
		})
		wantStatus(t, w, http.StatusNotFound)
	})
}

func TestProfileEndpoints(t *testing.T) {
	server := setupTestRouter(t)
	token := server.login(t, "user@cookeasy.com", "user")

	w := server.do(t, http.MethodPost, "/api/v1/profile/addresses", token, usecase.NewAddress{
		Label:       "Gym",
		FullAddress: "1 Fitness Way",
		IsDefault:   true,
	})
	wantStatus(t, w, http.StatusCreated)

	var profile usecase.Profile
	decodeJSON(t, w, &profile)
	if len(profile.Addresses) != 3 {
		t.Fatalf("len(addresses) = %d, want 3", len(profile.Addresses))
	}
	defaults := 0
	for _, a := range profile.Addresses {
		if a.IsDefault {
			defaults++
			if a.Label != "Gym" {
				t.Errorf("default address = %q, want Gym", a.Label)
			}
		}
	}
	if defaults != 1 {
		t.Errorf("default addresses = %d, want 1", defaults)
	}

	w = server.do(t, http.MethodPost, "/api/v1/profile/cards", token, usecase.NewCard{
		Type:       "Visa",
		CardNumber: "123",
		Expiry:     "12/30",
	})
	wantStatus(t, w, http.StatusUnprocessableEntity)

	w = server.do(t, http.MethodDelete, "/api/v1/profile/cards/p2", token, nil)
	wantStatus(t, w, http.StatusOK)
	decodeJSON(t, w, &profile)
	if len(profile.Cards) != 1 {
		t.Errorf("len(cards) = %d, want 1", len(profile.Cards))
	}
}
