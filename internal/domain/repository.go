package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// CatalogRepository exposes the static category catalogs in scan order
type CatalogRepository interface {
	Catalogs() []CategoryCatalog
	Categories() []Category
}

// ProductRepository is the mutable product database managed by admins
type ProductRepository interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id string) (*Product, error)
	FindByIngredient(ctx context.Context, name string) (*Product, error)
	Create(ctx context.Context, product Product) (*Product, error)
	Update(ctx context.Context, product Product) (*Product, error)
	Delete(ctx context.Context, id string) error
}

// RecipeRepository stores recipes shown on the dashboard
type RecipeRepository interface {
	List(ctx context.Context) ([]Recipe, error)
	Get(ctx context.Context, id string) (*Recipe, error)
	Create(ctx context.Context, recipe Recipe) (*Recipe, error)
	Update(ctx context.Context, recipe Recipe) (*Recipe, error)
	Delete(ctx context.Context, id string) error
}

// OrderRepository is the append-only order log
type OrderRepository interface {
	List(ctx context.Context) ([]Order, error)
	ListByCustomer(ctx context.Context, customerName string) ([]Order, error)
	Get(ctx context.Context, id string) (*Order, error)
	Add(ctx context.Context, order Order) error
	Update(ctx context.Context, id string, fn func(*Order) error) (*Order, error)
}

// SessionRepository owns per-user sessions. Update runs fn with exclusive access
// to one session and only persists the result when fn returns nil.
type SessionRepository interface {
	Get(ctx context.Context, user User) (*Session, error)
	Update(ctx context.Context, user User, fn func(*Session) error) (*Session, error)
}

// IngredientExtractor turns a recipe photo into a list of ingredients
type IngredientExtractor interface {
	ExtractIngredients(ctx context.Context, image []byte, mimeType string) ([]Ingredient, error)
}
