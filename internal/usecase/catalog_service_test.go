package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/cookeasy/backend/internal/domain"
)

func TestProductOptions(t *testing.T) {
	tests := []struct {
		name    string
		product domain.Product
		want    []string
	}{
		{"plain meat", domain.Product{Name: "Beef Mince"}, []string{"premium", "precut"}},
		{"organic halal chicken", domain.Product{Name: "Chicken Thigh", DietaryType: []string{"Organic", "Halal"}}, []string{"organic", "halal"}},
		{"halal steak", domain.Product{Name: "Scotch Steak", DietaryType: []string{"Halal"}}, []string{"premium", "halal"}},
		{"salmon", domain.Product{Name: "Salmon Fillet"}, []string{"wild"}},
		{"tuna steak counts as meat", domain.Product{Name: "Tuna Steak"}, []string{"premium", "precut"}},
		{"fresh fish", domain.Product{Name: "Fish Fillet", DietaryType: []string{"Fresh"}}, []string{"fresh"}},
		{"anything else", domain.Product{Name: "Carrots", DietaryType: []string{"Vegan"}}, []string{"local", "vegan"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, o := range ProductOptions(tt.product) {
				got = append(got, o.ID)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ProductOptions() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCatalogService(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	t.Run("categories", func(t *testing.T) {
		if got := len(f.catalog.Categories()); got != 6 {
			t.Errorf("len(categories) = %d, want 6", got)
		}
	})

	t.Run("category products by id and label", func(t *testing.T) {
		byID, err := f.catalog.CategoryProducts(ctx, "3")
		if err != nil {
			t.Fatalf("CategoryProducts(3) error = %v", err)
		}
		byLabel, _ := f.catalog.CategoryProducts(ctx, domain.CategorySeafood)
		if len(byID) == 0 || len(byID) != len(byLabel) {
			t.Errorf("by id = %d, by label = %d", len(byID), len(byLabel))
		}

		if _, err := f.catalog.CategoryProducts(ctx, "99"); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("CategoryProducts(99) error = %v, want ErrNotFound", err)
		}
	})

	t.Run("product detail selects every option", func(t *testing.T) {
		detail, err := f.catalog.Product(ctx, "meat-200")
		if err != nil {
			t.Fatalf("Product() error = %v", err)
		}
		if len(detail.SelectedOptions) != len(detail.Options) {
			t.Errorf("selected %v of %d options", detail.SelectedOptions, len(detail.Options))
		}

		if _, err := f.catalog.Product(ctx, "nope"); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Product(nope) error = %v, want ErrNotFound", err)
		}
	})

	t.Run("resolve prefers the product database", func(t *testing.T) {
		detail, err := f.catalog.Resolve(ctx, "Lemon")
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if detail.Product.Name != "Lemons" {
			t.Errorf("Resolve(Lemon) = %q, want Lemons", detail.Product.Name)
		}

		synth, err := f.catalog.Resolve(ctx, "Saffron")
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if synth.Product.Category != domain.CategoryPantry {
			t.Errorf("Resolve(Saffron) category = %q, want %q", synth.Product.Category, domain.CategoryPantry)
		}
	})

	t.Run("search", func(t *testing.T) {
		found, err := f.catalog.SearchProducts(ctx, "tasmanian salmon")
		if err != nil {
			t.Fatalf("SearchProducts() error = %v", err)
		}
		if len(found) < 2 {
			t.Errorf("found %d products, want at least 2", len(found))
		}
		for _, p := range found {
			if !MatchesSearch("tasmanian salmon", p.Name) {
				t.Errorf("%q does not match", p.Name)
			}
		}
	})

	t.Run("recipes and favorites", func(t *testing.T) {
		recipes, _ := f.catalog.Recipes(ctx, "")
		if len(recipes) != 4 {
			t.Fatalf("len(recipes) = %d, want 4", len(recipes))
		}

		before := recipes[0].IsFavorite
		toggled, err := f.catalog.ToggleFavorite(ctx, recipes[0].ID)
		if err != nil {
			t.Fatalf("ToggleFavorite() error = %v", err)
		}
		if toggled.IsFavorite == before {
			t.Error("favorite flag did not flip")
		}

		stored, _ := f.catalog.Recipe(ctx, recipes[0].ID)
		if stored.IsFavorite != toggled.IsFavorite {
			t.Error("toggle was not saved")
		}

		if _, err := f.catalog.ToggleFavorite(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("ToggleFavorite(missing) error = %v, want ErrNotFound", err)
		}
	})
}
