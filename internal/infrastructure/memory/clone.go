package memory

import "github.com/cookeasy/backend/internal/domain"

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string{}, s...)
}

func cloneProduct(p domain.Product) domain.Product {
	p.Allergens = cloneStrings(p.Allergens)
	p.DietaryType = cloneStrings(p.DietaryType)
	return p
}

func cloneItems(items []domain.ReviewItem) []domain.ReviewItem {
	if items == nil {
		return nil
	}
	out := make([]domain.ReviewItem, len(items))
	for i, item := range items {
		item.Product = cloneProduct(item.Product)
		item.SelectedOptions = cloneStrings(item.SelectedOptions)
		out[i] = item
	}
	return out
}

func cloneRecipe(r domain.Recipe) domain.Recipe {
	r.Ingredients = cloneStrings(r.Ingredients)
	return r
}

func cloneOrder(o domain.Order) domain.Order {
	o.Items = cloneItems(o.Items)
	return o
}

func cloneSession(s domain.Session) domain.Session {
	s.Review = cloneItems(s.Review)
	s.Cart = cloneItems(s.Cart)
	s.Addresses = append([]domain.Address(nil), s.Addresses...)
	s.Cards = append([]domain.PaymentMethod(nil), s.Cards...)
	if s.LastOrder != nil {
		o := cloneOrder(*s.LastOrder)
		s.LastOrder = &o
	}
	return s
}
