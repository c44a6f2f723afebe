package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/webshop/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	GetAll(ctx context.Context) ([]model.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	Add(ctx context.Context, order *model.Order) error
	Update(ctx context.Context, order *model.Order) error
	Delete(ctx context.Context, id uuid.UUID) error
}
