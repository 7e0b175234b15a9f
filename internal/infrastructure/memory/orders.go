package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/cookeasy/backend/internal/domain"
)

// OrderStore is the order log, newest first. Orders are never removed.
type OrderStore struct {
	orders []domain.Order
	mutex  sync.RWMutex
}

// NewOrderStore creates a store seeded with existing orders, newest first
func NewOrderStore(seed []domain.Order) *OrderStore {
	orders := make([]domain.Order, len(seed))
	for i, o := range seed {
		orders[i] = cloneOrder(o)
	}
	return &OrderStore{orders: orders}
}

func (s *OrderStore) List(ctx context.Context) ([]domain.Order, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]domain.Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = cloneOrder(o)
	}
	return out, nil
}

// ListByCustomer returns the orders placed under a customer name
func (s *OrderStore) ListByCustomer(ctx context.Context, customerName string) ([]domain.Order, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := []domain.Order{}
	for _, o := range s.orders {
		if o.CustomerName == customerName {
			out = append(out, cloneOrder(o))
		}
	}
	return out, nil
}

func (s *OrderStore) Get(ctx context.Context, id string) (*domain.Order, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			found := cloneOrder(o)
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: order %s", domain.ErrNotFound, id)
}

// Add prepends an order
func (s *OrderStore) Add(ctx context.Context, order domain.Order) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, o := range s.orders {
		if o.ID == order.ID {
			return fmt.Errorf("%w: order %s already exists", domain.ErrInvalidRequest, order.ID)
		}
	}
	s.orders = append([]domain.Order{cloneOrder(order)}, s.orders...)
	return nil
}

// Update applies fn to a copy of the order and stores it if fn succeeds
func (s *OrderStore) Update(ctx context.Context, id string, fn func(*domain.Order) error) (*domain.Order, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for i, o := range s.orders {
		if o.ID != id {
			continue
		}
		updated := cloneOrder(o)
		if err := fn(&updated); err != nil {
			return nil, err
		}
		s.orders[i] = updated
		result := cloneOrder(updated)
		return &result, nil
	}
	return nil, fmt.Errorf("%w: order %s", domain.ErrNotFound, id)
}
