package catalog

import (
	"fmt"

	"github.com/cookeasy/backend/internal/domain"
)

const unsplashBase = "https://images.unsplash.com/"

func unsplash(photo string) string {
	return fmt.Sprintf("%s%s?auto=format&fit=crop&w=400", unsplashBase, photo)
}

func thumbnail(photo string) string {
	return fmt.Sprintf("%s%s?auto=format&fit=crop&q=80&w=200&h=150", unsplashBase, photo)
}

// placeholderImages are used for synthesized products, keyed by category
var placeholderImages = map[string]string{
	domain.CategoryVegetables: unsplash("photo-1566385101042-1a0aa0c1268c"),
	domain.CategoryMeat:       unsplash("photo-1607623814075-e51df1bdc82f"),
	domain.CategorySeafood:    unsplash("photo-1615141982883-c7ad0e69fd62"),
	domain.CategoryFruits:     unsplash("photo-1619566636858-adf3ef46400b"),
	domain.CategoryBakery:     unsplash("photo-1509440159596-0249088772ff"),
	domain.CategoryDairy:      unsplash("photo-1628088062854-d1870b4553da"),
}

var defaultPlaceholder = unsplash("photo-1504674900247-0877df9cc836")

// PlaceholderImage returns the stock image for a category, or a generic food image
func PlaceholderImage(category string) string {
	if img, ok := placeholderImages[category]; ok {
		return img
	}
	return defaultPlaceholder
}

// Store serves the static catalogs. It is read-only after construction and safe
// for concurrent use.
type Store struct {
	catalogs   []domain.CategoryCatalog
	categories []domain.Category
}

// NewStore returns the built-in catalogs in resolver scan order:
// Vegetables, Meat, Fruits, Seafood, Bakery, Dairy.
func NewStore() *Store {
	return &Store{
		catalogs: []domain.CategoryCatalog{
			{Category: domain.CategoryVegetables, Items: vegetableItems},
			{Category: domain.CategoryMeat, Items: meatItems},
			{Category: domain.CategoryFruits, Items: fruitItems},
			{Category: domain.CategorySeafood, Items: seafoodItems},
			{Category: domain.CategoryBakery, Items: bakeryItems},
			{Category: domain.CategoryDairy, Items: dairyItems},
		},
		categories: []domain.Category{
			{ID: "1", Label: domain.CategoryVegetables, ImageURL: thumbnail("photo-1540420773420-3366772f4999")},
			{ID: "2", Label: domain.CategoryMeat, ImageURL: thumbnail("photo-1607623814075-e51df1bdc82f")},
			{ID: "3", Label: domain.CategorySeafood, ImageURL: thumbnail("photo-1615141982883-c7ad0e69fd62")},
			{ID: "4", Label: domain.CategoryFruits, ImageURL: thumbnail("photo-1619566636858-adf3ef46400b")},
			{ID: "5", Label: domain.CategoryBakery, ImageURL: thumbnail("photo-1509440159596-0249088772ff")},
			{ID: "6", Label: domain.CategoryDairy, ImageURL: thumbnail("photo-1628088062854-d1870b4553da")},
		},
	}
}

// NewStoreWith builds a store over custom catalogs, mainly for tests
func NewStoreWith(catalogs []domain.CategoryCatalog) *Store {
	return &Store{catalogs: catalogs}
}

// Catalogs returns every category catalog in scan order
func (s *Store) Catalogs() []domain.CategoryCatalog {
	return s.catalogs
}

// Categories returns the browsable category list
func (s *Store) Categories() []domain.Category {
	return s.categories
}

// Items returns the entries of one category, or nil if the category is unknown
func (s *Store) Items(category string) []domain.CatalogItem {
	for _, c := range s.catalogs {
		if c.Category == category {
			return c.Items
		}
	}
	return nil
}

// Size returns the total number of catalog entries
func (s *Store) Size() int {
	n := 0
	for _, c := range s.catalogs {
		n += len(c.Items)
	}
	return n
}
