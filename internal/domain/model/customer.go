package model

import "github.com/google/uuid"

// Customer represents a shop customer together with its loyalty state.
type Customer struct {
	ID          uuid.UUID
	Name        string
	TotalSpent  float64
	HasDiscount bool
	OrdersCount int
}

// LoyaltyState captures the mutable loyalty fields as a value.
type LoyaltyState struct {
	OrdersCount int
	HasDiscount bool
	TotalSpent  float64
}

// LoyaltyState returns a snapshot of the customer's loyalty fields.
func (c Customer) LoyaltyState() LoyaltyState {
	return LoyaltyState{
		OrdersCount: c.OrdersCount,
		HasDiscount: c.HasDiscount,
		TotalSpent:  c.TotalSpent,
	}
}

// SetLoyaltyState writes a loyalty snapshot back onto the customer.
func (c *Customer) SetLoyaltyState(s LoyaltyState) {
	c.OrdersCount = s.OrdersCount
	c.HasDiscount = s.HasDiscount
	c.TotalSpent = s.TotalSpent
}
