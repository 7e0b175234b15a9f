package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/cookeasy/backend/internal/domain"
)

var errAbort = errors.New("abort")

func TestProductStore(t *testing.T) {
	ctx := context.Background()
	store := NewProductStore([]domain.Product{
		{ID: "veg-100", Name: "Carrots", Price: 1.5, DietaryType: []string{"Vegan"}},
		{ID: "fruit-300", Name: "Lemons", Price: 2},
	})

	t.Run("reads are copies", func(t *testing.T) {
		p, _ := store.Get(ctx, "veg-100")
		p.DietaryType[0] = "Changed"
		p.Name = "Changed"

		again, _ := store.Get(ctx, "veg-100")
		if again.Name != "Carrots" || again.DietaryType[0] != "Vegan" {
			t.Errorf("stored product was modified through a read: %+v", again)
		}
	})

	t.Run("find by ingredient both ways", func(t *testing.T) {
		tests := []struct {
			name   string
			wantID string
		}{
			{"lemon", "fruit-300"},
			{"fresh CARROTS from the market", "veg-100"},
		}
		for _, tt := range tests {
			got, err := store.FindByIngredient(ctx, tt.name)
			if err != nil || got.ID != tt.wantID {
				t.Errorf("FindByIngredient(%q) = %v, %v, want %s", tt.name, got, err, tt.wantID)
			}
		}
		if _, err := store.FindByIngredient(ctx, "saffron"); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("FindByIngredient(saffron) error = %v, want ErrNotFound", err)
		}
	})

	t.Run("create prepends and rejects duplicates", func(t *testing.T) {
		if _, err := store.Create(ctx, domain.Product{ID: "prod-1", Name: "Meyer Lemons", Price: 4}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if _, err := store.Create(ctx, domain.Product{ID: "prod-1", Name: "Again"}); !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("duplicate Create() error = %v, want ErrInvalidRequest", err)
		}

		// The newer product now wins ingredient lookups
		got, _ := store.FindByIngredient(ctx, "lemons")
		if got.ID != "prod-1" {
			t.Errorf("FindByIngredient(lemons) = %s, want prod-1", got.ID)
		}
		if store.Size() != 3 {
			t.Errorf("Size() = %d, want 3", store.Size())
		}
	})

	t.Run("update and delete", func(t *testing.T) {
		if _, err := store.Update(ctx, domain.Product{ID: "nope"}); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Update(nope) error = %v, want ErrNotFound", err)
		}
		if err := store.Delete(ctx, "prod-1"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if err := store.Delete(ctx, "prod-1"); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("second Delete() error = %v, want ErrNotFound", err)
		}
	})
}

func TestOrderStore(t *testing.T) {
	ctx := context.Background()
	store := NewOrderStore([]domain.Order{{ID: "ORD-1", CustomerName: "Ann", Status: domain.OrderDelivered}})

	if err := store.Add(ctx, domain.Order{ID: "ORD-2", CustomerName: "Ben", Status: domain.OrderReceived}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := store.Add(ctx, domain.Order{ID: "ORD-2"}); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("duplicate Add() error = %v, want ErrInvalidRequest", err)
	}

	orders, _ := store.List(ctx)
	if len(orders) != 2 || orders[0].ID != "ORD-2" {
		t.Errorf("List() = %+v, want ORD-2 first", orders)
	}

	mine, _ := store.ListByCustomer(ctx, "Ann")
	if len(mine) != 1 || mine[0].ID != "ORD-1" {
		t.Errorf("ListByCustomer(Ann) = %+v", mine)
	}

	_, err := store.Update(ctx, "ORD-2", func(o *domain.Order) error {
		o.Status = domain.OrderPreparing
		return errAbort
	})
	if !errors.Is(err, errAbort) {
		t.Fatalf("Update() error = %v, want errAbort", err)
	}
	order, _ := store.Get(ctx, "ORD-2")
	if order.Status != domain.OrderReceived {
		t.Errorf("status = %q after a failed update, want unchanged", order.Status)
	}

	updated, err := store.Update(ctx, "ORD-2", func(o *domain.Order) error {
		o.Status = domain.OrderPreparing
		return nil
	})
	if err != nil || updated.Status != domain.OrderPreparing {
		t.Errorf("Update() = %+v, %v", updated, err)
	}

	if _, err := store.Update(ctx, "ORD-9", func(*domain.Order) error { return nil }); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Update(ORD-9) error = %v, want ErrNotFound", err)
	}
}

func TestRecipeStore(t *testing.T) {
	ctx := context.Background()
	store := NewRecipeStore([]domain.Recipe{{ID: "1", Title: "Tea", Ingredients: []string{"Tea"}}})

	if _, err := store.Create(ctx, domain.Recipe{ID: "2", Title: "Toast"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := store.Create(ctx, domain.Recipe{ID: "2"}); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("duplicate Create() error = %v, want ErrInvalidRequest", err)
	}

	recipes, _ := store.List(ctx)
	if len(recipes) != 2 || recipes[1].ID != "2" {
		t.Errorf("List() = %+v, want new recipe appended", recipes)
	}

	recipes[0].Ingredients[0] = "Coffee"
	stored, _ := store.Get(ctx, "1")
	if stored.Ingredients[0] != "Tea" {
		t.Error("stored recipe was modified through a read")
	}

	if err := store.Delete(ctx, "1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Get(ctx, "1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get(1) after delete error = %v, want ErrNotFound", err)
	}
}

func TestSessionStore(t *testing.T) {
	ctx := context.Background()
	user := domain.User{ID: "u-1", Name: "Tester User", Role: domain.RoleUser}

	t.Run("get does not persist", func(t *testing.T) {
		store := NewSessionStore(nil)
		session, _ := store.Get(ctx, user)
		if session.Navigation != domain.InitialNavigation() {
			t.Errorf("navigation = %+v, want the initial state", session.Navigation)
		}
		if store.Size() != 0 {
			t.Errorf("Size() = %d, want 0", store.Size())
		}
	})

	t.Run("failed update rolls back", func(t *testing.T) {
		store := NewSessionStore(nil)
		store.Update(ctx, user, func(s *domain.Session) error {
			s.Cart = []domain.ReviewItem{{ID: "item-0", Quantity: 1}}
			return nil
		})

		_, err := store.Update(ctx, user, func(s *domain.Session) error {
			s.Cart[0].Quantity = 99
			s.Cart = append(s.Cart, domain.ReviewItem{ID: "item-1"})
			return errAbort
		})
		if !errors.Is(err, errAbort) {
			t.Fatalf("Update() error = %v, want errAbort", err)
		}

		session, _ := store.Get(ctx, user)
		if len(session.Cart) != 1 || session.Cart[0].Quantity != 1 {
			t.Errorf("cart = %+v, want the committed single line", session.Cart)
		}
	})

	t.Run("returned session is detached", func(t *testing.T) {
		store := NewSessionStore(nil)
		updated, _ := store.Update(ctx, user, func(s *domain.Session) error {
			s.Review = []domain.ReviewItem{{ID: "item-0", Quantity: 1}}
			return nil
		})
		updated.Review[0].Quantity = 50

		session, _ := store.Get(ctx, user)
		if session.Review[0].Quantity != 1 {
			t.Errorf("quantity = %d, want 1", session.Review[0].Quantity)
		}
	})

	t.Run("concurrent writers do not lose updates", func(t *testing.T) {
		store := NewSessionStore(nil)
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				store.Update(ctx, user, func(s *domain.Session) error {
					s.Cart = append(s.Cart, domain.ReviewItem{Quantity: 1})
					return nil
				})
			}()
		}
		wg.Wait()

		session, _ := store.Get(ctx, user)
		if len(session.Cart) != 50 {
			t.Errorf("len(cart) = %d, want 50", len(session.Cart))
		}
	})
}
