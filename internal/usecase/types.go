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

// ClothesTypeUseCase implements clothes type CRUD.
type ClothesTypeUseCase struct {
	types repository.ClothesTypeRepository
}

// NewClothesTypeUseCase constructs ClothesTypeUseCase.
func NewClothesTypeUseCase(types repository.ClothesTypeRepository) *ClothesTypeUseCase {
	return &ClothesTypeUseCase{types: types}
}

// List returns all clothes types. An empty store is reported as a failure.
func (u *ClothesTypeUseCase) List(ctx context.Context) (result.Result[[]model.ClothesType], error) {
	types, err := u.types.GetAll(ctx)
	if err != nil {
		return result.Result[[]model.ClothesType]{}, err
	}
	if len(types) == 0 {
		return result.FailWith[[]model.ClothesType](
			result.Error{Message: "No orders found."}.WithReason(result.ReasonEmptyCollection, "the clothes type store holds no rows"),
		), nil
	}
	return result.Ok(types), nil
}

// GetByID returns the matching clothes type.
func (u *ClothesTypeUseCase) GetByID(ctx context.Context, id uuid.UUID) (result.Result[model.ClothesType], error) {
	clothesType, err := u.types.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return result.FailWith[model.ClothesType](
				result.Error{Message: "Item not found."}.WithReason(result.ReasonNotFound, "no clothes type with the requested id"),
			), nil
		}
		return result.Result[model.ClothesType]{}, err
	}
	return result.Ok(*clothesType), nil
}

// Create stores a new clothes type.
func (u *ClothesTypeUseCase) Create(ctx context.Context, label string) (result.Result[model.ClothesType], error) {
	clothesType := model.ClothesType{ID: uuid.New(), Type: label}
	if err := u.types.Add(ctx, &clothesType); err != nil {
		return result.Result[model.ClothesType]{}, err
	}
	return result.Ok(clothesType), nil
}

// Update replaces the clothes type label.
func (u *ClothesTypeUseCase) Update(ctx context.Context, id uuid.UUID, label string) (result.Result[result.Void], error) {
	clothesType, err := u.types.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return result.FailWith[result.Void](
				result.Error{Message: "Item not found."}.WithReason(result.ReasonNotFound, "no clothes type with the requested id"),
			), nil
		}
		return result.Result[result.Void]{}, err
	}

	clothesType.Type = label
	if err := u.types.Update(ctx, clothesType); err != nil {
		return result.Result[result.Void]{}, err
	}
	return result.OkVoid(), nil
}

// Delete removes the clothes type.
func (u *ClothesTypeUseCase) Delete(ctx context.Context, id uuid.UUID) (result.Result[result.Void], error) {
	if _, err := u.types.GetByID(ctx, id); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return result.FailWith[result.Void](
				result.Error{Message: "Item not found."}.WithReason(result.ReasonNotFound, "no clothes type with the requested id"),
			), nil
		}
		return result.Result[result.Void]{}, err
	}

	if err := u.types.Delete(ctx, id); err != nil {
		return result.Result[result.Void]{}, err
	}
	return result.OkVoid(), nil
}
