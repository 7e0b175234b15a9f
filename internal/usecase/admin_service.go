package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/cookeasy/backend/internal/domain"
	"github.com/cookeasy/backend/internal/fsm"
)

const lowStockThreshold = 5

// NewOrderWorkflow builds the fulfilment state machine. Every non-terminal
// status may also be cancelled.
func NewOrderWorkflow() *fsm.Machine[domain.OrderStatus] {
	return fsm.New("order", map[domain.OrderStatus][]domain.OrderStatus{
		domain.OrderReceived:       {domain.OrderPreparing, domain.OrderCancelled},
		domain.OrderPreparing:      {domain.OrderReadyForPickup, domain.OrderCancelled},
		domain.OrderReadyForPickup: {domain.OrderOutForDelivery, domain.OrderCancelled},
		domain.OrderOutForDelivery: {domain.OrderDelivered, domain.OrderCancelled},
		domain.OrderDelivered:      nil,
		domain.OrderCancelled:      nil,
	})
}

// ProductQuery filters the admin product table
type ProductQuery struct {
	Category string `form:"category"`
	Search   string `form:"q"`
}

// StatusUpdate moves an order along the workflow
type StatusUpdate struct {
	Status  domain.OrderStatus     `json:"status" binding:"required"`
	Partner domain.DeliveryPartner `json:"deliveryPartner,omitempty"`
}

// AdminService backs the admin console
type AdminService struct {
	products domain.ProductRepository
	recipes  domain.RecipeRepository
	orders   domain.OrderRepository
	workflow *fsm.Machine[domain.OrderStatus]
	logger   zerolog.Logger
}

// NewAdminService creates an admin service
func NewAdminService(
	products domain.ProductRepository,
	recipes domain.RecipeRepository,
	orders domain.OrderRepository,
	logger zerolog.Logger,
) *AdminService {
	return &AdminService{
		products: products,
		recipes:  recipes,
		orders:   orders,
		workflow: NewOrderWorkflow(),
		logger:   logger.With().Str("component", "admin").Logger(),
	}
}

// Stats summarises sales, pending orders and stock for the dashboard
func (s *AdminService) Stats(ctx context.Context) (*domain.OrderStats, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	recipes, err := s.recipes.List(ctx)
	if err != nil {
		return nil, err
	}

	sales := decimal.Zero
	for _, o := range orders {
		sales = sales.Add(decimal.NewFromFloat(o.Total))
	}

	return &domain.OrderStats{
		TotalSales:  sales.Round(2).InexactFloat64(),
		TotalOrders: len(orders),
		PendingOrders: lo.CountBy(orders, func(o domain.Order) bool {
			return !o.Status.IsTerminal()
		}),
		LowStock: lo.CountBy(products, func(p domain.Product) bool {
			return p.StockQuantity < lowStockThreshold
		}),
		TotalProducts: len(products),
		TotalRecipes:  len(recipes),
	}, nil
}

// Products lists the product database, optionally by category and search text
func (s *AdminService) Products(ctx context.Context, query ProductQuery) ([]domain.Product, error) {
	all, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(p domain.Product, _ int) bool {
		if query.Category != "" && !strings.EqualFold(p.Category, query.Category) {
			return false
		}
		return MatchesSearch(query.Search, p.Name+" "+p.Brand)
	}), nil
}

// CreateProduct validates and stores a new product, filling defaults
func (s *AdminService) CreateProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	if product.ID == "" {
		product.ID = "prod-" + uuid.NewString()
	}
	if product.MatchType == "" {
		product.MatchType = domain.MatchExact
	}
	if product.Weight == "" {
		product.Weight = "1kg"
	}
	if product.DietaryType == nil {
		product.DietaryType = []string{}
	}
	if product.Allergens == nil {
		product.Allergens = []string{}
	}
	product.IsActive = true

	created, err := s.products.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("product", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

// UpdateProduct replaces the product with the given id
func (s *AdminService) UpdateProduct(ctx context.Context, id string, product domain.Product) (*domain.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	product.ID = id
	return s.products.Update(ctx, product)
}

// DeleteProduct removes a product
func (s *AdminService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("product", id).Msg("product deleted")
	return nil
}

// CreateRecipe validates and stores a new recipe
func (s *AdminService) CreateRecipe(ctx context.Context, recipe domain.Recipe) (*domain.Recipe, error) {
	if strings.TrimSpace(recipe.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidRequest)
	}
	if recipe.ID == "" {
		recipe.ID = "recipe-" + uuid.NewString()
	}
	if recipe.Ingredients == nil {
		recipe.Ingredients = []string{}
	}
	recipe.IngredientCount = len(recipe.Ingredients)
	return s.recipes.Create(ctx, recipe)
}

// UpdateRecipe replaces the recipe with the given id
func (s *AdminService) UpdateRecipe(ctx context.Context, id string, recipe domain.Recipe) (*domain.Recipe, error) {
	if strings.TrimSpace(recipe.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidRequest)
	}
	recipe.ID = id
	recipe.IngredientCount = len(recipe.Ingredients)
	return s.recipes.Update(ctx, recipe)
}

// DeleteRecipe removes a recipe
func (s *AdminService) DeleteRecipe(ctx context.Context, id string) error {
	return s.recipes.Delete(ctx, id)
}

// Orders lists every order, newest first
func (s *AdminService) Orders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

// UpdateOrderStatus moves an order one step through the workflow. A partner
// may be given when the order goes out for delivery.
func (s *AdminService) UpdateOrderStatus(ctx context.Context, id string, update StatusUpdate) (*domain.Order, error) {
	if update.Partner != "" && !update.Partner.Valid() {
		return nil, fmt.Errorf("%w: unknown delivery partner %q", domain.ErrInvalidRequest, update.Partner)
	}

	order, err := s.orders.Update(ctx, id, func(order *domain.Order) error {
		if order.Status == update.Status {
			return fmt.Errorf("%w: order %s is already %s", domain.ErrInvalidTransition, order.ID, order.Status)
		}
		next, err := s.workflow.Transition(order.Status, update.Status)
		if err != nil {
			return err
		}
		order.Status = next
		if next == domain.OrderOutForDelivery && update.Partner != "" {
			order.DeliveryPartner = update.Partner
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("order", order.ID).Str("status", string(order.Status)).Msg("order status updated")
	return order, nil
}

func validateProduct(product domain.Product) error {
	if strings.TrimSpace(product.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidRequest)
	}
	if product.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", domain.ErrInvalidRequest)
	}
	return nil
}
