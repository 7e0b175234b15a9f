package usecase

import (
	"context"
	"fmt"

	"github.com/cookeasy/backend/internal/domain"
	"github.com/cookeasy/backend/internal/fsm"
)

// Navigator owns one state machine per navigation area. It is stateless and
// shared; the current screens live in each session's NavigationState.
type Navigator struct {
	tabs    *fsm.Machine[domain.Tab]
	home    *fsm.Machine[domain.HomeView]
	shop    *fsm.Machine[domain.ShopView]
	profile *fsm.Machine[domain.ProfileView]
	admin   *fsm.Machine[domain.AdminView]
}

// NewNavigator builds the screen transition tables
func NewNavigator() *Navigator {
	return &Navigator{
		tabs: fsm.NewComplete("tab",
			domain.TabHome, domain.TabOrders, domain.TabCategories, domain.TabProfile),
		home: fsm.New("home", map[domain.HomeView][]domain.HomeView{
			domain.HomeDashboard:      {domain.HomeUpload, domain.HomeRecipeDetail, domain.HomeCategoryDetail, domain.HomeProductDetail},
			domain.HomeUpload:         {domain.HomeDashboard, domain.HomeReview},
			domain.HomeReview:         {domain.HomeDashboard, domain.HomeUpload, domain.HomeProductDetail, domain.HomeRecipeDetail},
			domain.HomeProductDetail:  {domain.HomeDashboard, domain.HomeReview, domain.HomeCategoryDetail, domain.HomeRecipeDetail},
			domain.HomeCategoryDetail: {domain.HomeDashboard, domain.HomeProductDetail},
			domain.HomeRecipeDetail:   {domain.HomeDashboard, domain.HomeReview},
		}),
		shop: fsm.New("shop", map[domain.ShopView][]domain.ShopView{
			domain.ShopCart:    {domain.ShopPayment},
			domain.ShopPayment: {domain.ShopCart, domain.ShopSuccess},
			domain.ShopSuccess: {domain.ShopCart},
		}),
		profile: fsm.New("profile", map[domain.ProfileView][]domain.ProfileView{
			domain.ProfileMenu:      {domain.ProfileOrders, domain.ProfileAddresses, domain.ProfilePayments, domain.ProfileHelp},
			domain.ProfileOrders:    {domain.ProfileMenu},
			domain.ProfileAddresses: {domain.ProfileMenu},
			domain.ProfilePayments:  {domain.ProfileMenu},
			domain.ProfileHelp:      {domain.ProfileMenu},
		}),
		admin: fsm.NewComplete("admin",
			domain.AdminDashboard, domain.AdminProducts, domain.AdminOrders, domain.AdminRecipes, domain.AdminStock),
	}
}

// SwitchTab changes the bottom tab. Orders and Profile need a signed-in user.
func (n *Navigator) SwitchTab(state *domain.NavigationState, user domain.User, tab domain.Tab) error {
	if (tab == domain.TabOrders || tab == domain.TabProfile) && user.IsGuest() {
		return fmt.Errorf("%w: sign in to open %s", domain.ErrUnauthorized, tab)
	}
	next, err := n.tabs.Transition(state.Tab, tab)
	if err != nil {
		return err
	}
	state.Tab = next
	return nil
}

// Home walks the home screen through path
func (n *Navigator) Home(state *domain.NavigationState, path ...domain.HomeView) error {
	next, err := n.home.Walk(state.Home, path...)
	if err != nil {
		return err
	}
	state.Home = next
	return nil
}

// Shop walks the cart overlay through path. The overlay must be open.
func (n *Navigator) Shop(state *domain.NavigationState, path ...domain.ShopView) error {
	if !state.CartOpen {
		return fmt.Errorf("%w: cart is closed", domain.ErrInvalidTransition)
	}
	next, err := n.shop.Walk(state.Shop, path...)
	if err != nil {
		return err
	}
	state.Shop = next
	return nil
}

// Profile walks the profile screens through path
func (n *Navigator) Profile(state *domain.NavigationState, path ...domain.ProfileView) error {
	next, err := n.profile.Walk(state.Profile, path...)
	if err != nil {
		return err
	}
	state.Profile = next
	return nil
}

// Admin moves the admin console to view
func (n *Navigator) Admin(state *domain.NavigationState, user domain.User, view domain.AdminView) error {
	if !user.IsAdmin() {
		return fmt.Errorf("%w: admin console", domain.ErrForbidden)
	}
	next, err := n.admin.Transition(state.Admin, view)
	if err != nil {
		return err
	}
	state.Admin = next
	return nil
}

// OpenCart shows the cart overlay on its first step
func (n *Navigator) OpenCart(state *domain.NavigationState) {
	if !state.CartOpen {
		state.CartOpen = true
		state.Shop = domain.ShopCart
	}
}

// CloseCart hides the overlay. Leaving from Success also resets the home screen.
func (n *Navigator) CloseCart(state *domain.NavigationState) {
	if state.Shop == domain.ShopSuccess {
		state.Home = domain.HomeDashboard
		state.Tab = domain.TabHome
	}
	state.Shop = domain.ShopCart
	state.CartOpen = false
}

// Move applies a single client-requested transition in one area
func (n *Navigator) Move(state *domain.NavigationState, user domain.User, area domain.NavigationArea, target string) error {
	switch area {
	case domain.AreaTab:
		return n.SwitchTab(state, user, domain.Tab(target))
	case domain.AreaHome:
		return n.Home(state, domain.HomeView(target))
	case domain.AreaShop:
		return n.Shop(state, domain.ShopView(target))
	case domain.AreaProfile:
		if user.IsGuest() {
			return fmt.Errorf("%w: sign in to open profile", domain.ErrUnauthorized)
		}
		return n.Profile(state, domain.ProfileView(target))
	case domain.AreaAdmin:
		return n.Admin(state, user, domain.AdminView(target))
	default:
		return fmt.Errorf("%w: unknown navigation area %q", domain.ErrInvalidRequest, area)
	}
}

// NavigateRequest is a client navigation action. Detail fields select what a
// detail screen shows; CartOpen toggles the overlay.
type NavigateRequest struct {
	Area         domain.NavigationArea `json:"area"`
	View         string                `json:"view"`
	ProductID    string                `json:"productId,omitempty"`
	ReviewItemID string                `json:"reviewItemId,omitempty"`
	Category     string                `json:"category,omitempty"`
	RecipeID     string                `json:"recipeId,omitempty"`
	CartOpen     *bool                 `json:"cartOpen,omitempty"`
}

// NavigationService applies navigation actions to the caller's session
type NavigationService struct {
	sessions domain.SessionRepository
	products domain.ProductRepository
	recipes  domain.RecipeRepository
	catalog  domain.CatalogRepository
	nav      *Navigator
}

// NewNavigationService creates a navigation service
func NewNavigationService(
	sessions domain.SessionRepository,
	products domain.ProductRepository,
	recipes domain.RecipeRepository,
	catalogs domain.CatalogRepository,
	nav *Navigator,
) *NavigationService {
	if nav == nil {
		nav = NewNavigator()
	}
	return &NavigationService{
		sessions: sessions,
		products: products,
		recipes:  recipes,
		catalog:  catalogs,
		nav:      nav,
	}
}

// State returns the caller's session
func (s *NavigationService) State(ctx context.Context, user domain.User) (*domain.Session, error) {
	return s.sessions.Get(ctx, user)
}

// Navigate validates and applies req. Nothing changes when any step fails.
func (s *NavigationService) Navigate(ctx context.Context, user domain.User, req NavigateRequest) (*domain.Session, error) {
	return s.sessions.Update(ctx, user, func(session *domain.Session) error {
		state := &session.Navigation

		if req.CartOpen != nil {
			if *req.CartOpen {
				s.nav.OpenCart(state)
			} else {
				s.nav.CloseCart(state)
			}
		}

		if req.Area == "" {
			if req.CartOpen == nil {
				return fmt.Errorf("%w: area is required", domain.ErrInvalidRequest)
			}
			return nil
		}

		if err := s.selectDetail(ctx, session, req); err != nil {
			return err
		}
		return s.nav.Move(state, user, req.Area, req.View)
	})
}

// ContinueShopping closes the order confirmation and returns to the dashboard
func (s *NavigationService) ContinueShopping(ctx context.Context, user domain.User) (*domain.Session, error) {
	return s.sessions.Update(ctx, user, func(session *domain.Session) error {
		if !session.Navigation.CartOpen || session.Navigation.Shop != domain.ShopSuccess {
			return fmt.Errorf("%w: no completed order to leave", domain.ErrInvalidTransition)
		}
		s.nav.CloseCart(&session.Navigation)
		return nil
	})
}

// Reset puts the caller back on the home dashboard, as after signing out
func (s *NavigationService) Reset(ctx context.Context, user domain.User) (*domain.Session, error) {
	return s.sessions.Update(ctx, user, func(session *domain.Session) error {
		session.Navigation = domain.InitialNavigation()
		session.ActiveProductID = ""
		session.ActiveCategory = ""
		session.ActiveRecipeID = ""
		session.ActiveReviewItem = ""
		return nil
	})
}

// selectDetail records which product, category or recipe a detail screen shows
func (s *NavigationService) selectDetail(ctx context.Context, session *domain.Session, req NavigateRequest) error {
	if req.Area != domain.AreaHome {
		return nil
	}

	switch domain.HomeView(req.View) {
	case domain.HomeProductDetail:
		if req.ProductID == "" && req.ReviewItemID == "" {
			return fmt.Errorf("%w: productId or reviewItemId is required", domain.ErrInvalidRequest)
		}
		productID := req.ProductID
		if req.ReviewItemID != "" {
			item, ok := findItem(session.Review, req.ReviewItemID)
			if !ok {
				return fmt.Errorf("%w: review item %s", domain.ErrNotFound, req.ReviewItemID)
			}
			productID = item.Product.ID
		} else if _, err := s.products.Get(ctx, productID); err != nil {
			return err
		}
		session.ActiveProductID = productID
		session.ActiveReviewItem = req.ReviewItemID

	case domain.HomeCategoryDetail:
		label, ok := categoryLabel(s.catalog, req.Category)
		if !ok {
			return fmt.Errorf("%w: category %q", domain.ErrNotFound, req.Category)
		}
		session.ActiveCategory = label
		session.Navigation.Tab = domain.TabHome

	case domain.HomeRecipeDetail:
		if _, err := s.recipes.Get(ctx, req.RecipeID); err != nil {
			return err
		}
		session.ActiveRecipeID = req.RecipeID
	}
	return nil
}

// categoryLabel resolves a category id or label to its label
func categoryLabel(catalogs domain.CatalogRepository, idOrLabel string) (string, bool) {
	for _, c := range catalogs.Categories() {
		if c.Label == idOrLabel || c.ID == idOrLabel {
			return c.Label, true
		}
	}
	return "", false
}

func findItem(items []domain.ReviewItem, id string) (domain.ReviewItem, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return domain.ReviewItem{}, false
}
