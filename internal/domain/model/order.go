package model

import "github.com/google/uuid"

// Order references a customer and a snapshot of the items chosen at
// creation time. TotalPrice is fixed when the order is created and is
// never recomputed from item prices afterwards.
type Order struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Items      []ClothesItem
	TotalPrice float64
}

// ItemIDs returns the identifiers of the ordered items.
func (o Order) ItemIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(o.Items))
	for _, item := range o.Items {
		ids = append(ids, item.ID)
	}
	return ids
}
