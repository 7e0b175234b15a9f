package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/cookeasy/backend/internal/domain"
)

// ProductStore is the mutable product database. It is the only writer of the
// product slice; readers get copies.
type ProductStore struct {
	products []domain.Product
	mutex    sync.RWMutex
}

// NewProductStore creates a store seeded with the given products, in order
func NewProductStore(seed []domain.Product) *ProductStore {
	products := make([]domain.Product, len(seed))
	for i, p := range seed {
		products[i] = cloneProduct(p)
	}
	return &ProductStore{products: products}
}

// List returns every product in database order
func (s *ProductStore) List(ctx context.Context) ([]domain.Product, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]domain.Product, len(s.products))
	for i, p := range s.products {
		out[i] = cloneProduct(p)
	}
	return out, nil
}

// Get returns a product by id
func (s *ProductStore) Get(ctx context.Context, id string) (*domain.Product, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: product %s", domain.ErrNotFound, id)
	}
	p := cloneProduct(s.products[idx])
	return &p, nil
}

// FindByIngredient returns the first product whose lower-cased name contains the
// ingredient name or is contained in it. No stop words are stripped here.
func (s *ProductStore) FindByIngredient(ctx context.Context, name string) (*domain.Product, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	query := strings.ToLower(name)
	for _, p := range s.products {
		productName := strings.ToLower(p.Name)
		if strings.Contains(productName, query) || strings.Contains(query, productName) {
			found := cloneProduct(p)
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: no product for %q", domain.ErrNotFound, name)
}

// Create prepends a product so new admin entries are found first
func (s *ProductStore) Create(ctx context.Context, product domain.Product) (*domain.Product, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.indexOf(product.ID) >= 0 {
		return nil, fmt.Errorf("%w: product %s already exists", domain.ErrInvalidRequest, product.ID)
	}
	product = cloneProduct(product)
	s.products = append([]domain.Product{product}, s.products...)
	return &product, nil
}

// Update replaces a product in place
func (s *ProductStore) Update(ctx context.Context, product domain.Product) (*domain.Product, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	idx := s.indexOf(product.ID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: product %s", domain.ErrNotFound, product.ID)
	}
	product = cloneProduct(product)
	s.products[idx] = product
	return &product, nil
}

// Delete removes a product
func (s *ProductStore) Delete(ctx context.Context, id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: product %s", domain.ErrNotFound, id)
	}
	s.products = append(s.products[:idx], s.products[idx+1:]...)
	return nil
}

// Size returns the number of products
func (s *ProductStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.products)
}

// indexOf must be called with the lock held
func (s *ProductStore) indexOf(id string) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
