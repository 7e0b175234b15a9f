package domain

// Category names used by the catalogs and the fallback keyword table
const (
	CategoryVegetables = "Vegetables"
	CategoryMeat       = "Meat"
	CategoryFruits     = "Fruits"
	CategorySeafood    = "Seafood"
	CategoryBakery     = "Bakery"
	CategoryDairy      = "Dairy"
	CategoryPantry     = "Pantry"
)

// CatalogItem is an immutable grocery entry loaded at startup
type CatalogItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Size     string  `json:"size"`
	Brand    string  `json:"brand,omitempty"`
	ImageURL string  `json:"imageUrl"`
}

// Category is a browsable catalog section
type Category struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	ImageURL string `json:"imageUrl"`
}

// CategoryCatalog pairs a category name with its entries, in scan order
type CategoryCatalog struct {
	Category string
	Items    []CatalogItem
}
