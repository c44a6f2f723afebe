package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/webshop/internal/domain/model"
	"github.com/polkiloo/webshop/internal/domain/result"
)

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	Orders(ctx context.Context) (result.Result[[]model.Order], error)
	Order(ctx context.Context, id uuid.UUID) (result.Result[model.Order], error)
	CreateOrder(ctx context.Context, customerID uuid.UUID, itemIDs []uuid.UUID) (result.Result[model.Order], error)
	UpdateOrder(ctx context.Context, id, customerID uuid.UUID, itemIDs []uuid.UUID) (result.Result[result.Void], error)
	DeleteOrder(ctx context.Context, id uuid.UUID) (result.Result[result.Void], error)
}

// CustomerFacade provides customer operations, including feed import.
type CustomerFacade interface {
	Customers(ctx context.Context) (result.Result[[]model.Customer], error)
	Customer(ctx context.Context, id uuid.UUID) (result.Result[model.Customer], error)
	CreateCustomer(ctx context.Context, name string) (result.Result[model.Customer], error)
	UpdateCustomer(ctx context.Context, id uuid.UUID, name string) (result.Result[result.Void], error)
	DeleteCustomer(ctx context.Context, id uuid.UUID) (result.Result[result.Void], error)
	SyncCustomers(ctx context.Context) (int, error)
}

// ClothesItemFacade provides catalog item operations.
type ClothesItemFacade interface {
	ClothesItems(ctx context.Context) (result.Result[[]model.ClothesItem], error)
	ClothesItem(ctx context.Context, id uuid.UUID) (result.Result[model.ClothesItem], error)
	CreateClothesItem(ctx context.Context, name string, price float64, clothesTypeID uuid.UUID) (result.Result[model.ClothesItem], error)
	UpdateClothesItem(ctx context.Context, id uuid.UUID, name string, price float64, clothesTypeID uuid.UUID) (result.Result[result.Void], error)
	DeleteClothesItem(ctx context.Context, id uuid.UUID) (result.Result[result.Void], error)
}

// ClothesTypeFacade provides catalog type operations.
type ClothesTypeFacade interface {
	ClothesTypes(ctx context.Context) (result.Result[[]model.ClothesType], error)
	ClothesType(ctx context.Context, id uuid.UUID) (result.Result[model.ClothesType], error)
	CreateClothesType(ctx context.Context, label string) (result.Result[model.ClothesType], error)
	UpdateClothesType(ctx context.Context, id uuid.UUID, label string) (result.Result[result.Void], error)
	DeleteClothesType(ctx context.Context, id uuid.UUID) (result.Result[result.Void], error)
}

// WebShopFacade aggregates the full set of operations used across handlers.
type WebShopFacade interface {
	OrderFacade
	CustomerFacade
	ClothesItemFacade
	ClothesTypeFacade
}
