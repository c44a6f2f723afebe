package dto

import "github.com/google/uuid"

// CustomerRequest is the payload for creating or renaming a customer.
type CustomerRequest struct {
	Name string `json:"name" binding:"required"`
}

// CustomerResponse represents a customer returned to clients.
type CustomerResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	TotalSpent  float64   `json:"totalSpent"`
	HasDiscount bool      `json:"hasDiscount"`
	OrdersCount int       `json:"ordersCount"`
}

// SyncResponse reports how many customers the feed import added.
type SyncResponse struct {
	Added int `json:"added"`
}
