package model

import "github.com/google/uuid"

// ClothesType groups clothes items under a common label.
type ClothesType struct {
	ID   uuid.UUID
	Type string
}

// ClothesItem describes a single purchasable article.
type ClothesItem struct {
	ID            uuid.UUID
	Name          string
	Price         float64
	ClothesTypeID uuid.UUID
}
