package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/lo"

	"github.com/cookeasy/backend/internal/domain"
)

var (
	meatOptionPattern    = regexp.MustCompile(`chicken|meat|beef|pork|steak|lamb`)
	seafoodOptionPattern = regexp.MustCompile(`fish|shrimp|salmon|seafood|tuna`)
)

// ProductOption is a customisation offered on the product detail screen
type ProductOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ProductDetail is a product with its options and the default selection
type ProductDetail struct {
	Product         domain.Product  `json:"product"`
	Options         []ProductOption `json:"options"`
	SelectedOptions []string        `json:"selectedOptions"`
}

// ProductOptions derives options from the product name and dietary tags
func ProductOptions(product domain.Product) []ProductOption {
	var options []ProductOption
	name := strings.ToLower(product.Name)

	switch {
	case meatOptionPattern.MatchString(name):
		if !lo.Contains(product.DietaryType, "Organic") {
			options = append(options, ProductOption{ID: "premium", Label: "Premium"})
		}
		if !lo.Contains(product.DietaryType, "Halal") {
			options = append(options, ProductOption{ID: "precut", Label: "Pre-Cut"})
		}
	case seafoodOptionPattern.MatchString(name):
		if !lo.Contains(product.DietaryType, "Fresh") {
			options = append(options, ProductOption{ID: "wild", Label: "Wild"})
		}
	default:
		options = append(options, ProductOption{ID: "local", Label: "Local"})
	}

	for _, tag := range product.DietaryType {
		options = append(options, ProductOption{ID: strings.ToLower(tag), Label: tag})
	}
	return options
}

// CatalogService serves the shopper-facing catalog: categories, products and recipes
type CatalogService struct {
	catalog  domain.CatalogRepository
	products domain.ProductRepository
	recipes  domain.RecipeRepository
	resolver *Resolver
}

// NewCatalogService creates a catalog service
func NewCatalogService(
	catalogs domain.CatalogRepository,
	products domain.ProductRepository,
	recipes domain.RecipeRepository,
	resolver *Resolver,
) *CatalogService {
	return &CatalogService{
		catalog:  catalogs,
		products: products,
		recipes:  recipes,
		resolver: resolver,
	}
}

// Categories lists the browsable categories
func (s *CatalogService) Categories() []domain.Category {
	return s.catalog.Categories()
}

// CategoryProducts lists products in one category. categoryID may be an id or a label.
// An unknown category is not found; a known one with no products is an empty list.
func (s *CatalogService) CategoryProducts(ctx context.Context, categoryID string) ([]domain.Product, error) {
	label, ok := categoryLabel(s.catalog, categoryID)
	if !ok {
		return nil, fmt.Errorf("%w: category %q", domain.ErrNotFound, categoryID)
	}
	all, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(p domain.Product, _ int) bool {
		return p.Category == label
	}), nil
}

// SearchProducts returns products whose name, brand or category match every query word
func (s *CatalogService) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	all, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(p domain.Product, _ int) bool {
		return MatchesSearch(query, p.Name+" "+p.Brand+" "+p.Category)
	}), nil
}

// Product returns a product with its options, all selected by default
func (s *CatalogService) Product(ctx context.Context, id string) (*ProductDetail, error) {
	product, err := s.products.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return newProductDetail(*product), nil
}

// Resolve maps a single ingredient name the same way the review list does
func (s *CatalogService) Resolve(ctx context.Context, ingredientName string) (*ProductDetail, error) {
	product, err := s.products.FindByIngredient(ctx, ingredientName)
	if err != nil {
		resolved := s.resolver.Resolve(ingredientName)
		product = &resolved
	}
	return newProductDetail(*product), nil
}

// Recipes lists recipes whose title matches query
func (s *CatalogService) Recipes(ctx context.Context, query string) ([]domain.Recipe, error) {
	all, err := s.recipes.List(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(r domain.Recipe, _ int) bool {
		return MatchesSearch(query, r.Title)
	}), nil
}

// Recipe returns one recipe
func (s *CatalogService) Recipe(ctx context.Context, id string) (*domain.Recipe, error) {
	return s.recipes.Get(ctx, id)
}

// ToggleFavorite flips a recipe's favorite flag
func (s *CatalogService) ToggleFavorite(ctx context.Context, id string) (*domain.Recipe, error) {
	recipe, err := s.recipes.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	recipe.IsFavorite = !recipe.IsFavorite
	return s.recipes.Update(ctx, *recipe)
}

func newProductDetail(product domain.Product) *ProductDetail {
	options := ProductOptions(product)
	return &ProductDetail{
		Product: product,
		Options: options,
		SelectedOptions: lo.Map(options, func(o ProductOption, _ int) string {
			return o.ID
		}),
	}
}
