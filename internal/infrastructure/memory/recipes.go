package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/cookeasy/backend/internal/domain"
)

// RecipeStore holds dashboard recipes. New recipes are appended.
type RecipeStore struct {
	recipes []domain.Recipe
	mutex   sync.RWMutex
}

// NewRecipeStore creates a store seeded with the given recipes
func NewRecipeStore(seed []domain.Recipe) *RecipeStore {
	recipes := make([]domain.Recipe, len(seed))
	for i, r := range seed {
		recipes[i] = cloneRecipe(r)
	}
	return &RecipeStore{recipes: recipes}
}

func (s *RecipeStore) List(ctx context.Context) ([]domain.Recipe, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]domain.Recipe, len(s.recipes))
	for i, r := range s.recipes {
		out[i] = cloneRecipe(r)
	}
	return out, nil
}

func (s *RecipeStore) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: recipe %s", domain.ErrNotFound, id)
	}
	r := cloneRecipe(s.recipes[idx])
	return &r, nil
}

func (s *RecipeStore) Create(ctx context.Context, recipe domain.Recipe) (*domain.Recipe, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.indexOf(recipe.ID) >= 0 {
		return nil, fmt.Errorf("%w: recipe %s already exists", domain.ErrInvalidRequest, recipe.ID)
	}
	recipe = cloneRecipe(recipe)
	s.recipes = append(s.recipes, recipe)
	return &recipe, nil
}

func (s *RecipeStore) Update(ctx context.Context, recipe domain.Recipe) (*domain.Recipe, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	idx := s.indexOf(recipe.ID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: recipe %s", domain.ErrNotFound, recipe.ID)
	}
	recipe = cloneRecipe(recipe)
	s.recipes[idx] = recipe
	return &recipe, nil
}

func (s *RecipeStore) Delete(ctx context.Context, id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: recipe %s", domain.ErrNotFound, id)
	}
	s.recipes = append(s.recipes[:idx], s.recipes[idx+1:]...)
	return nil
}

func (s *RecipeStore) indexOf(id string) int {
	for i, r := range s.recipes {
		if r.ID == id {
			return i
		}
	}
	return -1
}
