package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cookeasy/backend/internal/domain"
	"github.com/cookeasy/backend/internal/infrastructure/catalog"
)

// categoryProfile describes how a catalog hit in one category becomes a Product
type categoryProfile struct {
	idPrefix   string
	seedPrefix string
	seedBase   int
	brand      string // empty means use the catalog entry's own brand
	stripWords []string
	stockRange int
	allergens  []string
	dietary    func(item domain.CatalogItem) []string
	calories   func(r RandomSource) int
	nutrition  func(r RandomSource) domain.Nutrition
	// relabel lets a catalog hit show up as "Best Price" one time in five
	relabel bool
}

// Stop words stripped from catalog names (first occurrence only) before checking
// whether the query contains the catalog name. The lists are uneven across
// categories; see DESIGN.md before changing them.
var categoryProfiles = map[string]categoryProfile{
	domain.CategoryVegetables: {
		idPrefix:   "coles-",
		seedPrefix: "veg-",
		seedBase:   100,
		brand:      "Fresh Market",
		stripWords: []string{"coles"},
		stockRange: 50,
		dietary: func(item domain.CatalogItem) []string {
			if strings.Contains(strings.ToLower(item.Name), "organic") {
				return []string{"Vegan", "Organic"}
			}
			return []string{"Vegan"}
		},
		calories: func(r RandomSource) int { return r.IntN(80) + 15 },
		nutrition: func(r RandomSource) domain.Nutrition {
			return domain.Nutrition{
				Protein: grams1(r.Float64() * 2),
				Carbs:   grams1(r.Float64() * 10),
				Fat:     grams1(r.Float64() * 0.5),
				Fiber:   grams1(r.Float64() * 4),
			}
		},
		relabel: true,
	},
	domain.CategoryMeat: {
		idPrefix:   "coles-meat-",
		seedPrefix: "meat-",
		seedBase:   200,
		brand:      "Coles Graze",
		stripWords: []string{"beef"},
		stockRange: 30,
		dietary:    fixedTags("Gluten-Free"),
		calories:   func(RandomSource) int { return 250 },
		nutrition: func(RandomSource) domain.Nutrition {
			return domain.Nutrition{Protein: "25g", Carbs: "0g", Fat: "18g", Fiber: "0g"}
		},
	},
	domain.CategoryFruits: {
		idPrefix:   "coles-fruit-",
		seedPrefix: "fruit-",
		seedBase:   300,
		brand:      "Fresh Orchard",
		stripWords: []string{"apple"},
		stockRange: 50,
		dietary:    fixedTags("Vegan", "Organic"),
		calories:   func(r RandomSource) int { return r.IntN(60) + 40 },
		nutrition: func(r RandomSource) domain.Nutrition {
			return domain.Nutrition{
				Protein: grams1(r.Float64()),
				Carbs:   grams1(r.Float64()*15 + 5),
				Fat:     "0.2g",
				Fiber:   grams1(r.Float64()*3 + 1),
			}
		},
	},
	domain.CategorySeafood: {
		idPrefix:   "coles-seafood-",
		seedPrefix: "seafood-",
		seedBase:   400,
		brand:      "Ocean Catch",
		stripWords: []string{"salmon", "prawns"},
		stockRange: 30,
		allergens:  []string{"Seafood", "Shellfish"},
		dietary:    fixedTags("Gluten-Free", "Pescatarian"),
		calories:   func(r RandomSource) int { return r.IntN(150) + 80 },
		nutrition: func(r RandomSource) domain.Nutrition {
			return domain.Nutrition{
				Protein: grams1(r.Float64()*15 + 15),
				Carbs:   "0g",
				Fat:     grams1(r.Float64() * 10),
				Fiber:   "0g",
			}
		},
	},
	domain.CategoryBakery: {
		idPrefix:   "coles-bakery-",
		seedPrefix: "bakery-",
		seedBase:   500,
		stripWords: []string{"bread", "cake"},
		stockRange: 40,
		allergens:  []string{"Gluten", "Eggs", "Milk"},
		dietary:    fixedTags("Vegetarian"),
		calories:   func(r RandomSource) int { return r.IntN(300) + 150 },
		nutrition: func(r RandomSource) domain.Nutrition {
			return domain.Nutrition{
				Protein: grams1(r.Float64()*5 + 2),
				Carbs:   grams1(r.Float64()*30 + 20),
				Fat:     grams1(r.Float64()*10 + 2),
				Fiber:   grams1(r.Float64() * 2),
			}
		},
	},
	domain.CategoryDairy: {
		idPrefix:   "coles-dairy-",
		seedPrefix: "dairy-",
		seedBase:   600,
		stripWords: []string{"milk", "cheese", "yoghurt"},
		stockRange: 40,
		allergens:  []string{"Milk"},
		dietary:    fixedTags("Vegetarian", "Gluten-Free"),
		calories:   func(r RandomSource) int { return r.IntN(200) + 50 },
		nutrition: func(r RandomSource) domain.Nutrition {
			return domain.Nutrition{
				Protein: grams1(r.Float64()*10 + 2),
				Carbs:   grams1(r.Float64()*10 + 2),
				Fat:     grams1(r.Float64()*10 + 2),
				Fiber:   "0g",
			}
		},
	},
}

// Keyword table for synthesized products, checked in order
var fallbackCategories = []struct {
	category string
	pattern  *regexp.Regexp
}{
	{domain.CategoryMeat, regexp.MustCompile(`chicken|meat|beef|pork|steak|lamb`)},
	{domain.CategorySeafood, regexp.MustCompile(`fish|shrimp|salmon|seafood`)},
	{domain.CategoryFruits, regexp.MustCompile(`apple|banana|orange|lemon|fruit|berry|grape|mango|pear`)},
	{domain.CategoryVegetables, regexp.MustCompile(`carrot|lettuce|onion|vegetable|potato|tomato`)},
	{domain.CategoryDairy, regexp.MustCompile(`milk|cheese|yogurt|butter|cream`)},
	{domain.CategoryBakery, regexp.MustCompile(`bread|cake|muffin|roll|pie|biscuit`)},
}

var fallbackAllergens = []string{"Nuts", "Dairy", "Gluten", "Soy"}

const (
	fallbackBrand  = "MarketChoice"
	fallbackWeight = "500g"
)

// ResolverConfig holds configuration for the product resolver
type ResolverConfig struct {
	// Seed feeds the random source when Random is nil. Zero means time-seeded.
	Seed   uint64
	Random RandomSource
	Logger *zerolog.Logger
}

// Resolver maps free-text ingredient names to products. It never fails:
// a name that matches no catalog entry gets a synthesized product.
type Resolver struct {
	catalog domain.CatalogRepository
	rng     RandomSource
	logger  zerolog.Logger
}

// NewResolver creates a resolver over the given catalogs
func NewResolver(catalogs domain.CatalogRepository, config ResolverConfig) *Resolver {
	rng := config.Random
	if rng == nil {
		rng = NewRandomSource(config.Seed)
	}

	logger := zerolog.Nop()
	if config.Logger != nil {
		logger = config.Logger.With().Str("component", "resolver").Logger()
	}

	return &Resolver{
		catalog: catalogs,
		rng:     rng,
		logger:  logger,
	}
}

// Resolve returns the product for an ingredient name
func (r *Resolver) Resolve(ingredientName string) domain.Product {
	if category, item, ok := r.FindCatalogMatch(ingredientName); ok {
		r.logger.Debug().Str("query", ingredientName).Str("category", category).Str("match", item.Name).Msg("catalog hit")
		return r.fromCatalog(category, item)
	}

	product := r.synthesize(ingredientName)
	r.logger.Debug().Str("query", ingredientName).Str("category", product.Category).Msg("synthesized fallback")
	return product
}

// FindCatalogMatch returns the first catalog entry whose name contains the query,
// or whose normalized name is contained in the query. Categories are scanned in
// catalog order and the first category with a hit wins.
func (r *Resolver) FindCatalogMatch(ingredientName string) (string, domain.CatalogItem, bool) {
	query := strings.ToLower(ingredientName)

	for _, c := range r.catalog.Catalogs() {
		strip := categoryProfiles[c.Category].stripWords
		for _, item := range c.Items {
			if matchesCatalogEntry(query, item.Name, strip) {
				return c.Category, item, true
			}
		}
	}
	return "", domain.CatalogItem{}, false
}

// Alternatives generates n candidate replacements for an ingredient
func (r *Resolver) Alternatives(ingredientName string, n int) []domain.Product {
	products := make([]domain.Product, 0, n)
	for i := 0; i < n; i++ {
		products = append(products, r.Resolve(ingredientName))
	}
	return products
}

// SeedProducts builds the initial product database from every catalog entry,
// with stable ids (veg-100, meat-200, ...) and a random stock level.
func (r *Resolver) SeedProducts() []domain.Product {
	var products []domain.Product
	for _, c := range r.catalog.Catalogs() {
		profile := profileFor(c.Category)
		for i, item := range c.Items {
			p := r.fromCatalog(c.Category, item)
			p.ID = fmt.Sprintf("%s%d", profile.seedPrefix, profile.seedBase+i)
			p.StockQuantity = r.rng.IntN(profile.stockRange) + 5
			p.IsActive = true
			products = append(products, p)
		}
	}
	return products
}

// matchesCatalogEntry checks containment in both directions. query must already be lower-cased.
func matchesCatalogEntry(query, entryName string, stripWords []string) bool {
	name := strings.ToLower(entryName)
	if strings.Contains(name, query) {
		return true
	}
	for _, w := range stripWords {
		name = strings.Replace(name, w, "", 1)
	}
	return strings.Contains(query, strings.TrimSpace(name))
}

func (r *Resolver) fromCatalog(category string, item domain.CatalogItem) domain.Product {
	profile := profileFor(category)

	matchType := domain.MatchExact
	if profile.relabel && r.rng.Float64() > 0.8 {
		matchType = domain.MatchBestPrice
	}

	brand := profile.brand
	if brand == "" {
		brand = item.Brand
	}

	return domain.Product{
		ID:           profile.idPrefix + randomToken(r.rng, 6),
		Name:         item.Name,
		Brand:        brand,
		Price:        item.Price,
		ImageURL:     item.ImageURL,
		MatchType:    matchType,
		Weight:       item.Size,
		Category:     category,
		Calories:     profile.calories(r.rng),
		Nutrition:    profile.nutrition(r.rng),
		PricePerUnit: "per " + item.Size,
		Allergens:    append([]string{}, profile.allergens...),
		DietaryType:  profile.dietary(item),
	}
}

func (r *Resolver) synthesize(ingredientName string) domain.Product {
	var matchType domain.MatchType
	switch roll := r.rng.Float64(); {
	case roll < 0.4:
		matchType = domain.MatchExact
	case roll < 0.6:
		matchType = domain.MatchSimilar
	case roll < 0.8:
		matchType = domain.MatchBestPrice
	default:
		matchType = domain.MatchPremium
	}

	price := decimal.NewFromFloat(r.rng.Float64()*10 + 2).Round(2)

	allergens := []string{}
	if r.rng.Float64() > 0.8 {
		allergens = append(allergens, fallbackAllergens[r.rng.IntN(len(fallbackAllergens))])
	}

	dietary := []string{"Organic", "Halal"}
	if r.rng.Float64() > 0.5 {
		dietary = append(dietary, "Vegan")
	}
	if r.rng.Float64() > 0.7 {
		dietary = append(dietary, "Keto")
	}

	category := FallbackCategory(ingredientName)

	name := ingredientName + " Alternative"
	if matchType == domain.MatchExact {
		name = "Organic " + ingredientName
	}

	return domain.Product{
		ID:        randomToken(r.rng, 9),
		Name:      name,
		Brand:     fallbackBrand,
		Price:     price.InexactFloat64(),
		ImageURL:  catalog.PlaceholderImage(category),
		MatchType: matchType,
		Weight:    fallbackWeight,
		Category:  category,
		Calories:  r.rng.IntN(400) + 50,
		Nutrition: domain.Nutrition{
			Protein: fmt.Sprintf("%dg", r.rng.IntN(30)),
			Carbs:   fmt.Sprintf("%dg", r.rng.IntN(50)),
			Fat:     fmt.Sprintf("%dg", r.rng.IntN(20)),
			Fiber:   fmt.Sprintf("%dg", r.rng.IntN(10)),
		},
		PricePerUnit: "$" + price.Div(decimal.NewFromInt(5)).StringFixed(2) + "/100g",
		Allergens:    allergens,
		DietaryType:  dietary,
	}
}

// FallbackCategory classifies a name by the keyword table, defaulting to Pantry
func FallbackCategory(ingredientName string) string {
	lower := strings.ToLower(ingredientName)
	for _, fc := range fallbackCategories {
		if fc.pattern.MatchString(lower) {
			return fc.category
		}
	}
	return domain.CategoryPantry
}

// profileFor returns the category profile, or a generic one for unknown categories
func profileFor(category string) categoryProfile {
	if p, ok := categoryProfiles[category]; ok {
		return p
	}
	slug := strings.ToLower(category)
	return categoryProfile{
		idPrefix:   "coles-" + slug + "-",
		seedPrefix: slug + "-",
		seedBase:   900,
		stockRange: 40,
		dietary:    fixedTags(),
		calories:   func(r RandomSource) int { return r.IntN(200) + 50 },
		nutrition: func(r RandomSource) domain.Nutrition {
			return domain.Nutrition{
				Protein: grams1(r.Float64() * 10),
				Carbs:   grams1(r.Float64() * 10),
				Fat:     grams1(r.Float64() * 10),
				Fiber:   "0g",
			}
		},
	}
}

func fixedTags(tags ...string) func(domain.CatalogItem) []string {
	return func(domain.CatalogItem) []string {
		return append([]string{}, tags...)
	}
}

func grams1(v float64) string {
	return fmt.Sprintf("%.1fg", v)
}
