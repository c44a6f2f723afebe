package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/webshop/internal/domain/model"
	"github.com/polkiloo/webshop/internal/domain/result"
	"github.com/polkiloo/webshop/internal/usecase"
)

// WebShopFacade collapses the use case layer into the single surface
// consumed by handlers and the feed worker.
type WebShopFacade struct {
	orders       *usecase.OrderUseCase
	customers    *usecase.CustomerUseCase
	clothesItems *usecase.ClothesItemUseCase
	clothesTypes *usecase.ClothesTypeUseCase
}

// NewWebShopFacade constructs the application facade.
func NewWebShopFacade(orders *usecase.OrderUseCase, customers *usecase.CustomerUseCase, clothesItems *usecase.ClothesItemUseCase, clothesTypes *usecase.ClothesTypeUseCase) *WebShopFacade {
	return &WebShopFacade{orders: orders, customers: customers, clothesItems: clothesItems, clothesTypes: clothesTypes}
}

func (f *WebShopFacade) Orders(ctx context.Context) (result.Result[[]model.Order], error) {
	return f.orders.List(ctx)
}

func (f *WebShopFacade) Order(ctx context.Context, id uuid.UUID) (result.Result[model.Order], error) {
	return f.orders.GetByID(ctx, id)
}

func (f *WebShopFacade) CreateOrder(ctx context.Context, customerID uuid.UUID, itemIDs []uuid.UUID) (result.Result[model.Order], error) {
	return f.orders.Create(ctx, customerID, itemIDs)
}

func (f *WebShopFacade) UpdateOrder(ctx context.Context, id, customerID uuid.UUID, itemIDs []uuid.UUID) (result.Result[result.Void], error) {
	return f.orders.Update(ctx, id, customerID, itemIDs)
}

func (f *WebShopFacade) DeleteOrder(ctx context.Context, id uuid.UUID) (result.Result[result.Void], error) {
	return f.orders.Delete(ctx, id)
}

func (f *WebShopFacade) Customers(ctx context.Context) (result.Result[[]model.Customer], error) {
	return f.customers.List(ctx)
}

func (f *WebShopFacade) Customer(ctx context.Context, id uuid.UUID) (result.Result[model.Customer], error) {
	return f.customers.GetByID(ctx, id)
}

func (f *WebShopFacade) CreateCustomer(ctx context.Context, name string) (result.Result[model.Customer], error) {
	return f.customers.Create(ctx, name)
}

func (f *WebShopFacade) UpdateCustomer(ctx context.Context, id uuid.UUID, name string) (result.Result[result.Void], error) {
	return f.customers.Update(ctx, id, name)
}

func (f *WebShopFacade) DeleteCustomer(ctx context.Context, id uuid.UUID) (result.Result[result.Void], error) {
	return f.customers.Delete(ctx, id)
}

func (f *WebShopFacade) SyncCustomers(ctx context.Context) (int, error) {
	return f.customers.SyncFromFeed(ctx)
}

func (f *WebShopFacade) ClothesItems(ctx context.Context) (result.Result[[]model.ClothesItem], error) {
	return f.clothesItems.List(ctx)
}

func (f *WebShopFacade) ClothesItem(ctx context.Context, id uuid.UUID) (result.Result[model.ClothesItem], error) {
	return f.clothesItems.GetByID(ctx, id)
}

func (f *WebShopFacade) CreateClothesItem(ctx context.Context, name string, price float64, clothesTypeID uuid.UUID) (result.Result[model.ClothesItem], error) {
	return f.clothesItems.Create(ctx, name, price, clothesTypeID)
}

func (f *WebShopFacade) UpdateClothesItem(ctx context.Context, id uuid.UUID, name string, price float64, clothesTypeID uuid.UUID) (result.Result[result.Void], error) {
	return f.clothesItems.Update(ctx, id, name, price, clothesTypeID)
}

func (f *WebShopFacade) DeleteClothesItem(ctx context.Context, id uuid.UUID) (result.Result[result.Void], error) {
	return f.clothesItems.Delete(ctx, id)
}

func (f *WebShopFacade) ClothesTypes(ctx context.Context) (result.Result[[]model.ClothesType], error) {
	return f.clothesTypes.List(ctx)
}

func (f *WebShopFacade) ClothesType(ctx context.Context, id uuid.UUID) (result.Result[model.ClothesType], error) {
	return f.clothesTypes.GetByID(ctx, id)
}

func (f *WebShopFacade) CreateClothesType(ctx context.Context, label string) (result.Result[model.ClothesType], error) {
	return f.clothesTypes.Create(ctx, label)
}

func (f *WebShopFacade) UpdateClothesType(ctx context.Context, id uuid.UUID, label string) (result.Result[result.Void], error) {
	return f.clothesTypes.Update(ctx, id, label)
}

func (f *WebShopFacade) DeleteClothesType(ctx context.Context, id uuid.UUID) (result.Result[result.Void], error) {
	return f.clothesTypes.Delete(ctx, id)
}
