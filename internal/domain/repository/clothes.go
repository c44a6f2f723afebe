package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/webshop/internal/domain/model"
)

// ClothesItemRepository describes persistence operations for clothes items.
type ClothesItemRepository interface {
	GetAll(ctx context.Context) ([]model.ClothesItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.ClothesItem, error)
	Add(ctx context.Context, item *model.ClothesItem) error
	Update(ctx context.Context, item *model.ClothesItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ClothesTypeRepository describes persistence operations for clothes types.
type ClothesTypeRepository interface {
	GetAll(ctx context.Context) ([]model.ClothesType, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.ClothesType, error)
	Add(ctx context.Context, clothesType *model.ClothesType) error
	Update(ctx context.Context, clothesType *model.ClothesType) error
	Delete(ctx context.Context, id uuid.UUID) error
}
