package dto

import "github.com/google/uuid"

// ClothesItemRequest is the payload for creating or replacing a clothes item.
type ClothesItemRequest struct {
	Name          string    `json:"name" binding:"required"`
	Price         float64   `json:"price" binding:"required"`
	ClothesTypeID uuid.UUID `json:"clothesTypeId" binding:"required"`
}

// ClothesItemResponse represents a clothes item returned to clients.
type ClothesItemResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	ClothesTypeID uuid.UUID `json:"clothesTypeId"`
}

// ClothesTypeRequest is the payload for creating or replacing a clothes type.
type ClothesTypeRequest struct {
	Type string `json:"type" binding:"required"`
}

// ClothesTypeResponse represents a clothes type returned to clients.
type ClothesTypeResponse struct {
	ID   uuid.UUID `json:"id"`
	Type string    `json:"type"`
}
