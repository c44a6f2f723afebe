package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/webshop/internal/domain/errors"
	"github.com/polkiloo/webshop/internal/domain/model"
	"github.com/polkiloo/webshop/internal/domain/repository"
	"github.com/polkiloo/webshop/internal/domain/result"
)

// ClothesItemUseCase implements clothes item CRUD.
type ClothesItemUseCase struct {
	items repository.ClothesItemRepository
}

// NewClothesItemUseCase constructs ClothesItemUseCase.
func NewClothesItemUseCase(items repository.ClothesItemRepository) *ClothesItemUseCase {
	return &ClothesItemUseCase{items: items}
}

// List returns all clothes items. An empty store is reported as a failure.
func (u *ClothesItemUseCase) List(ctx context.Context) (result.Result[[]model.ClothesItem], error) {
	items, err := u.items.GetAll(ctx)
	if err != nil {
		return result.Result[[]model.ClothesItem]{}, err
	}
	if len(items) == 0 {
		return result.FailWith[[]model.ClothesItem](
			result.Error{Message: "No orders found."}.WithReason(result.ReasonEmptyCollection, "the clothes item store holds no rows"),
		), nil
	}
	return result.Ok(items), nil
}

// GetByID returns the matching clothes item.
func (u *ClothesItemUseCase) GetByID(ctx context.Context, id uuid.UUID) (result.Result[model.ClothesItem], error) {
	item, err := u.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return result.FailWith[model.ClothesItem](
				result.Error{Message: "Clothes item not found."}.WithReason(result.ReasonNotFound, "no clothes item with the requested id"),
			), nil
		}
		return result.Result[model.ClothesItem]{}, err
	}
	return result.Ok(*item), nil
}

// Create stores a new clothes item.
func (u *ClothesItemUseCase) Create(ctx context.Context, name string, price float64, clothesTypeID uuid.UUID) (result.Result[model.ClothesItem], error) {
	item := model.ClothesItem{ID: uuid.New(), Name: name, Price: price, ClothesTypeID: clothesTypeID}
	if err := u.items.Add(ctx, &item); err != nil {
		return result.Result[model.ClothesItem]{}, err
	}
	return result.Ok(item), nil
}

// Update replaces the clothes item's fields.
func (u *ClothesItemUseCase) Update(ctx context.Context, id uuid.UUID, name string, price float64, clothesTypeID uuid.UUID) (result.Result[result.Void], error) {
	item, err := u.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return result.FailWith[result.Void](
				result.Error{Message: "Clothes item not found."}.WithReason(result.ReasonNotFound, "no clothes item with the requested id"),
			), nil
		}
		return result.Result[result.Void]{}, err
	}

	item.Name = name
	item.Price = price
	item.ClothesTypeID = clothesTypeID
	if err := u.items.Update(ctx, item); err != nil {
		return result.Result[result.Void]{}, err
	}
	return result.OkVoid(), nil
}

// Delete removes the clothes item.
func (u *ClothesItemUseCase) Delete(ctx context.Context, id uuid.UUID) (result.Result[result.Void], error) {
	if _, err := u.items.GetByID(ctx, id); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return result.FailWith[result.Void](
				result.Error{Message: "Clothes item not found."}.WithReason(result.ReasonNotFound, "no clothes item with the requested id"),
			), nil
		}
		return result.Result[result.Void]{}, err
	}

	if err := u.items.Delete(ctx, id); err != nil {
		return result.Result[result.Void]{}, err
	}
	return result.OkVoid(), nil
}
