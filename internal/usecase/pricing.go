package usecase

import "github.com/polkiloo/webshop/internal/domain/model"

// LoyaltyDiscount is the fixed amount subtracted from an order total
// when the customer has earned a discount.
const LoyaltyDiscount = 1000

// ordersPerDiscount is how many completed orders earn the next discount.
const ordersPerDiscount = 3

// ComputeBaseTotal sums the unit prices of the given items. It never
// mutates its input.
func ComputeBaseTotal(items []model.ClothesItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price
	}
	return total
}

// ApplyLoyalty applies the loyalty rules to a base order total and
// returns the adjusted total together with the next loyalty state.
//
// An earned discount is consumed on the current order and is not
// floored at zero, so a discount larger than the base total yields a
// negative adjusted total. The order counter resets when this order
// completes the third purchase, which also grants the next discount.
func ApplyLoyalty(state model.LoyaltyState, baseTotal float64) (model.LoyaltyState, float64) {
	adjusted := baseTotal
	if state.HasDiscount {
		adjusted -= LoyaltyDiscount
		state.HasDiscount = false
	}

	state.OrdersCount++
	if state.OrdersCount == ordersPerDiscount {
		state.HasDiscount = true
		state.OrdersCount = 0
	}

	state.TotalSpent += adjusted
	return state, adjusted
}
