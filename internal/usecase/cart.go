package usecase

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/cookeasy/backend/internal/domain"
)

// Delivery is free above the threshold, otherwise a flat fee applies
var (
	freeDeliveryThreshold = decimal.NewFromInt(50)
	flatDeliveryFee       = decimal.RequireFromString("3.99")
)

// MergeIntoCart adds items to cart by product id: quantities add for a product
// already in the cart, otherwise the item is appended. Items with quantity <= 0
// are ignored. The input cart is not modified.
func MergeIntoCart(cart []domain.ReviewItem, items []domain.ReviewItem) []domain.ReviewItem {
	merged := append([]domain.ReviewItem{}, cart...)
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		idx := -1
		for i, line := range merged {
			if line.Product.ID == item.Product.ID {
				idx = i
				break
			}
		}
		if idx >= 0 {
			merged[idx].Quantity = addQuantity(merged[idx].Quantity, item.Quantity)
			continue
		}
		merged = append(merged, item)
	}
	return merged
}

// CalculateTotals prices a list of lines. The fee is waived for an empty cart
// and for subtotals strictly above the threshold.
func CalculateTotals(items []domain.ReviewItem) domain.CartTotals {
	subtotal := decimal.Zero
	count := 0
	for _, item := range items {
		line := decimal.NewFromFloat(item.Product.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)
		count = addQuantity(count, item.Quantity)
	}

	fee := flatDeliveryFee
	if len(items) == 0 || subtotal.GreaterThan(freeDeliveryThreshold) {
		fee = decimal.Zero
	}

	return domain.CartTotals{
		Subtotal:    subtotal.Round(2).InexactFloat64(),
		DeliveryFee: fee.InexactFloat64(),
		Total:       subtotal.Add(fee).Round(2).InexactFloat64(),
		ItemCount:   count,
	}
}

// adjustQuantity applies delta with a floor of one
func adjustQuantity(current, delta int) int {
	if q := addQuantity(current, delta); q > 1 {
		return q
	}
	return 1
}

// addQuantity adds two quantities, saturating at math.MaxInt instead of wrapping
func addQuantity(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
