package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cookeasy/backend/internal/domain"
)

// CartView is the cart with its price breakdown
type CartView struct {
	Items  []domain.ReviewItem `json:"items"`
	Totals domain.CartTotals   `json:"totals"`
}

func newCartView(items []domain.ReviewItem) *CartView {
	if items == nil {
		items = []domain.ReviewItem{}
	}
	return &CartView{Items: items, Totals: CalculateTotals(items)}
}

// AddToCartRequest adds one product, as from the product detail screen
type AddToCartRequest struct {
	ProductID       string   `json:"productId" binding:"required"`
	Quantity        int      `json:"quantity"`
	SelectedOptions []string `json:"selectedOptions,omitempty"`
}

// CartService edits the signed-in user's cart
type CartService struct {
	sessions domain.SessionRepository
	products domain.ProductRepository
	orders   domain.OrderRepository
	nav      *Navigator
	logger   zerolog.Logger
}

// NewCartService creates a cart service
func NewCartService(
	sessions domain.SessionRepository,
	products domain.ProductRepository,
	orders domain.OrderRepository,
	nav *Navigator,
	logger zerolog.Logger,
) *CartService {
	if nav == nil {
		nav = NewNavigator()
	}
	return &CartService{
		sessions: sessions,
		products: products,
		orders:   orders,
		nav:      nav,
		logger:   logger.With().Str("component", "cart").Logger(),
	}
}

// Get returns the cart and totals
func (s *CartService) Get(ctx context.Context, user domain.User) (*CartView, error) {
	session, err := s.sessions.Get(ctx, user)
	if err != nil {
		return nil, err
	}
	return newCartView(session.Cart), nil
}

// AddProduct merges a product from the database into the cart
func (s *CartService) AddProduct(ctx context.Context, user domain.User, req AddToCartRequest) (*CartView, error) {
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrInvalidRequest)
	}
	product, err := s.products.Get(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	item := domain.ReviewItem{
		ID:              "cart-" + uuid.NewString(),
		Ingredient:      domain.Ingredient{Name: product.Name},
		Product:         *product,
		Quantity:        req.Quantity,
		SelectedOptions: req.SelectedOptions,
		IsSelected:      true,
	}
	return s.AddItems(ctx, user, []domain.ReviewItem{item})
}

// AddItems merges items into the cart and opens the cart overlay. Adding from the
// review or recipe screens also returns the home screen to the dashboard.
func (s *CartService) AddItems(ctx context.Context, user domain.User, items []domain.ReviewItem) (*CartView, error) {
	if user.IsGuest() {
		return nil, fmt.Errorf("%w: sign in to add items to the cart", domain.ErrUnauthorized)
	}

	session, err := s.sessions.Update(ctx, user, func(session *domain.Session) error {
		state := &session.Navigation
		if state.Home == domain.HomeReview || state.Home == domain.HomeRecipeDetail {
			if err := s.nav.Home(state, domain.HomeDashboard); err != nil {
				return err
			}
		}
		session.Cart = MergeIntoCart(session.Cart, items)
		s.nav.OpenCart(state)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return newCartView(session.Cart), nil
}

// ChangeQuantity adds delta to the line for productID, never going below one
func (s *CartService) ChangeQuantity(ctx context.Context, user domain.User, productID string, delta int) (*CartView, error) {
	session, err := s.sessions.Update(ctx, user, func(session *domain.Session) error {
		idx := indexOfProduct(session.Cart, productID)
		if idx < 0 {
			return fmt.Errorf("%w: cart line %s", domain.ErrNotFound, productID)
		}
		session.Cart[idx].Quantity = adjustQuantity(session.Cart[idx].Quantity, delta)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return newCartView(session.Cart), nil
}

// Remove drops the line for productID
func (s *CartService) Remove(ctx context.Context, user domain.User, productID string) (*CartView, error) {
	session, err := s.sessions.Update(ctx, user, func(session *domain.Session) error {
		idx := indexOfProduct(session.Cart, productID)
		if idx < 0 {
			return fmt.Errorf("%w: cart line %s", domain.ErrNotFound, productID)
		}
		session.Cart = append(session.Cart[:idx], session.Cart[idx+1:]...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return newCartView(session.Cart), nil
}

// Reorder adds every item of one of the caller's past orders back into the cart
func (s *CartService) Reorder(ctx context.Context, user domain.User, orderID string) (*CartView, error) {
	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerName != user.Name {
		return nil, fmt.Errorf("%w: order %s", domain.ErrNotFound, orderID)
	}

	view, err := s.AddItems(ctx, user, order.Items)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user", user.ID).Str("order", orderID).Int("lines", len(order.Items)).Msg("order added to cart again")
	return view, nil
}

func indexOfProduct(items []domain.ReviewItem, productID string) int {
	for i, item := range items {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}
