package dto

import "github.com/google/uuid"

// OrderRequest is the payload for creating or replacing an order.
type OrderRequest struct {
	CustomerID     uuid.UUID   `json:"customerId" binding:"required"`
	ClothesItemsID []uuid.UUID `json:"clothesItemsId" binding:"required"`
}

// OrderResponse represents an order returned to clients.
type OrderResponse struct {
	ID             uuid.UUID   `json:"id"`
	CustomerID     uuid.UUID   `json:"customerId"`
	ClothesItemsID []uuid.UUID `json:"clothesItemsId"`
	TotalPrice     float64     `json:"totalPrice"`
}
