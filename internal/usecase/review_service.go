package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/cookeasy/backend/internal/domain"
)

const alternativesCount = 5

// ReviewService manages the editable list of resolved ingredients
type ReviewService struct {
	sessions domain.SessionRepository
	products domain.ProductRepository
	recipes  domain.RecipeRepository
	resolver *Resolver
	nav      *Navigator
	logger   zerolog.Logger
}

// NewReviewService creates a review service
func NewReviewService(
	sessions domain.SessionRepository,
	products domain.ProductRepository,
	recipes domain.RecipeRepository,
	resolver *Resolver,
	nav *Navigator,
	logger zerolog.Logger,
) *ReviewService {
	if nav == nil {
		nav = NewNavigator()
	}
	return &ReviewService{
		sessions: sessions,
		products: products,
		recipes:  recipes,
		resolver: resolver,
		nav:      nav,
		logger:   logger.With().Str("component", "review").Logger(),
	}
}

// ResolveIngredients turns ingredients into review items: the product database
// is consulted first, the resolver fills the gaps. Items are numbered item-0,
// item-1, ... and start selected with quantity 1.
func (s *ReviewService) ResolveIngredients(ctx context.Context, ingredients []domain.Ingredient) ([]domain.ReviewItem, error) {
	items := make([]domain.ReviewItem, 0, len(ingredients))
	for i, ing := range ingredients {
		product, err := s.products.FindByIngredient(ctx, ing.Name)
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrNotFound):
			resolved := s.resolver.Resolve(ing.Name)
			product = &resolved
		default:
			return nil, err
		}

		items = append(items, domain.ReviewItem{
			ID:         fmt.Sprintf("item-%d", i),
			Ingredient: ing,
			Product:    *product,
			Quantity:   1,
			IsSelected: true,
		})
	}
	return items, nil
}

// Build replaces the caller's review list with freshly resolved ingredients and
// moves Upload -> Review
func (s *ReviewService) Build(ctx context.Context, user domain.User, ingredients []domain.Ingredient) (*domain.Session, error) {
	items, err := s.ResolveIngredients(ctx, ingredients)
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.Update(ctx, user, func(session *domain.Session) error {
		if err := s.nav.Home(&session.Navigation, domain.HomeUpload, domain.HomeReview); err != nil {
			return err
		}
		session.Review = items
		session.ActiveRecipeID = ""
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user", user.ID).Int("items", len(items)).Msg("review list built")
	return session, nil
}

// BuildFromRecipe resolves a recipe's ingredient names and moves RecipeDetail -> Review
func (s *ReviewService) BuildFromRecipe(ctx context.Context, user domain.User, recipeID string) (*domain.Session, error) {
	recipe, err := s.recipes.Get(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	ingredients := lo.Map(recipe.Ingredients, func(name string, _ int) domain.Ingredient {
		return domain.Ingredient{Name: name}
	})
	items, err := s.ResolveIngredients(ctx, ingredients)
	if err != nil {
		return nil, err
	}

	return s.sessions.Update(ctx, user, func(session *domain.Session) error {
		if err := s.nav.Home(&session.Navigation, domain.HomeRecipeDetail, domain.HomeReview); err != nil {
			return err
		}
		session.Review = items
		session.ActiveRecipeID = recipe.ID
		return nil
	})
}

// List returns review items whose ingredient or product name matches query
func (s *ReviewService) List(ctx context.Context, user domain.User, query string) ([]domain.ReviewItem, error) {
	session, err := s.sessions.Get(ctx, user)
	if err != nil {
		return nil, err
	}
	return lo.Filter(session.Review, func(item domain.ReviewItem, _ int) bool {
		return MatchesSearch(query, item.Ingredient.Name) || MatchesSearch(query, item.Product.Name)
	}), nil
}

// ToggleSelection flips whether an item will be carried into the cart
func (s *ReviewService) ToggleSelection(ctx context.Context, user domain.User, itemID string) (*domain.ReviewItem, error) {
	return s.editItem(ctx, user, itemID, func(item *domain.ReviewItem) error {
		item.IsSelected = !item.IsSelected
		return nil
	})
}

// ChangeQuantity adds delta to an item's quantity, never going below one
func (s *ReviewService) ChangeQuantity(ctx context.Context, user domain.User, itemID string, delta int) (*domain.ReviewItem, error) {
	return s.editItem(ctx, user, itemID, func(item *domain.ReviewItem) error {
		item.Quantity = adjustQuantity(item.Quantity, delta)
		return nil
	})
}

// ReplaceProduct swaps the product behind an item, e.g. for a chosen alternative
func (s *ReviewService) ReplaceProduct(ctx context.Context, user domain.User, itemID string, product domain.Product) (*domain.ReviewItem, error) {
	if product.ID == "" || product.Name == "" {
		return nil, fmt.Errorf("%w: product id and name are required", domain.ErrInvalidRequest)
	}
	return s.editItem(ctx, user, itemID, func(item *domain.ReviewItem) error {
		item.Product = product
		item.SelectedOptions = nil
		return nil
	})
}

// ItemUpdate is the product detail screen's "update item" action
type ItemUpdate struct {
	Product         *domain.Product `json:"product,omitempty"`
	Quantity        int             `json:"quantity"`
	SelectedOptions []string        `json:"selectedOptions"`
}

// UpdateFromDetail writes product, quantity and options chosen on the product
// detail screen back to a review item and returns to Review
func (s *ReviewService) UpdateFromDetail(ctx context.Context, user domain.User, itemID string, update ItemUpdate) (*domain.Session, error) {
	if update.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrInvalidRequest)
	}
	return s.sessions.Update(ctx, user, func(session *domain.Session) error {
		idx := indexOfItem(session.Review, itemID)
		if idx < 0 {
			return fmt.Errorf("%w: review item %s", domain.ErrNotFound, itemID)
		}
		if err := s.nav.Home(&session.Navigation, domain.HomeReview); err != nil {
			return err
		}
		item := &session.Review[idx]
		if update.Product != nil {
			item.Product = *update.Product
		}
		item.Quantity = update.Quantity
		item.SelectedOptions = update.SelectedOptions
		session.ActiveReviewItem = ""
		return nil
	})
}

// Delete removes an item from the review list
func (s *ReviewService) Delete(ctx context.Context, user domain.User, itemID string) error {
	_, err := s.sessions.Update(ctx, user, func(session *domain.Session) error {
		idx := indexOfItem(session.Review, itemID)
		if idx < 0 {
			return fmt.Errorf("%w: review item %s", domain.ErrNotFound, itemID)
		}
		session.Review = append(session.Review[:idx], session.Review[idx+1:]...)
		return nil
	})
	return err
}

// Alternatives generates replacement candidates for an item's ingredient
func (s *ReviewService) Alternatives(ctx context.Context, user domain.User, itemID string) ([]domain.Product, error) {
	session, err := s.sessions.Get(ctx, user)
	if err != nil {
		return nil, err
	}
	item, ok := findItem(session.Review, itemID)
	if !ok {
		return nil, fmt.Errorf("%w: review item %s", domain.ErrNotFound, itemID)
	}
	return s.resolver.Alternatives(item.Ingredient.Name, alternativesCount), nil
}

// Continue carries the selected items into the cart, then shows the dashboard
// with the cart open. It only runs from the review screen, so a repeated
// request cannot merge the same list twice. Guests must sign in first.
func (s *ReviewService) Continue(ctx context.Context, user domain.User) (*domain.Session, error) {
	if user.IsGuest() {
		return nil, fmt.Errorf("%w: sign in to add items to the cart", domain.ErrUnauthorized)
	}

	return s.sessions.Update(ctx, user, func(session *domain.Session) error {
		selected := lo.Filter(session.Review, func(item domain.ReviewItem, _ int) bool {
			return item.IsSelected
		})
		if session.Navigation.Home != domain.HomeReview {
			return fmt.Errorf("%w: continue needs the review screen, not %s", domain.ErrInvalidTransition, session.Navigation.Home)
		}
		if err := s.nav.Home(&session.Navigation, domain.HomeDashboard); err != nil {
			return err
		}
		session.Cart = MergeIntoCart(session.Cart, selected)
		s.nav.OpenCart(&session.Navigation)
		return nil
	})
}

func (s *ReviewService) editItem(ctx context.Context, user domain.User, itemID string, fn func(*domain.ReviewItem) error) (*domain.ReviewItem, error) {
	var edited domain.ReviewItem
	_, err := s.sessions.Update(ctx, user, func(session *domain.Session) error {
		idx := indexOfItem(session.Review, itemID)
		if idx < 0 {
			return fmt.Errorf("%w: review item %s", domain.ErrNotFound, itemID)
		}
		if err := fn(&session.Review[idx]); err != nil {
			return err
		}
		edited = session.Review[idx]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &edited, nil
}

func indexOfItem(items []domain.ReviewItem, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
