package test

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/webshop/internal/domain/model"
	"github.com/polkiloo/webshop/internal/domain/result"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	OrdersFn      func(context.Context) (result.Result[[]model.Order], error)
	OrderFn       func(context.Context, uuid.UUID) (result.Result[model.Order], error)
	CreateOrderFn func(context.Context, uuid.UUID, []uuid.UUID) (result.Result[model.Order], error)
	UpdateOrderFn func(context.Context, uuid.UUID, uuid.UUID, []uuid.UUID) (result.Result[result.Void], error)
	DeleteOrderFn func(context.Context, uuid.UUID) (result.Result[result.Void], error)
}

// Orders delegates to the override or returns a single canned order.
func (s OrderFacadeStub) Orders(ctx context.Context) (result.Result[[]model.Order], error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return result.Ok([]model.Order{{ID: uuid.New(), TotalPrice: 100}}), nil
}

// Order returns an order with the requested identifier.
func (s OrderFacadeStub) Order(ctx context.Context, id uuid.UUID) (result.Result[model.Order], error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return result.Ok(model.Order{ID: id}), nil
}

// CreateOrder echoes the supplied fields back as a stored order.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, customerID uuid.UUID, itemIDs []uuid.UUID) (result.Result[model.Order], error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, customerID, itemIDs)
	}
	items := make([]model.ClothesItem, 0, len(itemIDs))
	for _, id := range itemIDs {
		items = append(items, model.ClothesItem{ID: id})
	}
	return result.Ok(model.Order{ID: uuid.New(), CustomerID: customerID, Items: items}), nil
}

// UpdateOrder reports success unless overridden.
func (s OrderFacadeStub) UpdateOrder(ctx context.Context, id, customerID uuid.UUID, itemIDs []uuid.UUID) (result.Result[result.Void], error) {
	if s.UpdateOrderFn != nil {
		return s.UpdateOrderFn(ctx, id, customerID, itemIDs)
	}
	return result.OkVoid(), nil
}

// DeleteOrder reports success unless overridden.
func (s OrderFacadeStub) DeleteOrder(ctx context.Context, id uuid.UUID) (result.Result[result.Void], error) {
	if s.DeleteOrderFn != nil {
		return s.DeleteOrderFn(ctx, id)
	}
	return result.OkVoid(), nil
}

// CustomerFacadeStub simulates customer operations.
type CustomerFacadeStub struct {
	CustomersFn      func(context.Context) (result.Result[[]model.Customer], error)
	CustomerFn       func(context.Context, uuid.UUID) (result.Result[model.Customer], error)
	CreateCustomerFn func(context.Context, string) (result.Result[model.Customer], error)
	UpdateCustomerFn func(context.Context, uuid.UUID, string) (result.Result[result.Void], error)
	DeleteCustomerFn func(context.Context, uuid.UUID) (result.Result[result.Void], error)
	SyncCustomersFn  func(context.Context) (int, error)
}

// Customers delegates to the override or returns a single canned customer.
func (s CustomerFacadeStub) Customers(ctx context.Context) (result.Result[[]model.Customer], error) {
	if s.CustomersFn != nil {
		return s.CustomersFn(ctx)
	}
	return result.Ok([]model.Customer{{ID: uuid.New(), Name: "customer"}}), nil
}

// Customer returns a customer with the requested identifier.
func (s CustomerFacadeStub) Customer(ctx context.Context, id uuid.UUID) (result.Result[model.Customer], error) {
	if s.CustomerFn != nil {
		return s.CustomerFn(ctx, id)
	}
	return result.Ok(model.Customer{ID: id, Name: "customer"}), nil
}

// CreateCustomer echoes the supplied name back as a stored customer.
func (s CustomerFacadeStub) CreateCustomer(ctx context.Context, name string) (result.Result[model.Customer], error) {
	if s.CreateCustomerFn != nil {
		return s.CreateCustomerFn(ctx, name)
	}
	return result.Ok(model.Customer{ID: uuid.New(), Name: name}), nil
}

// UpdateCustomer reports success unless overridden.
func (s CustomerFacadeStub) UpdateCustomer(ctx context.Context, id uuid.UUID, name string) (result.Result[result.Void], error) {
	if s.UpdateCustomerFn != nil {
		return s.UpdateCustomerFn(ctx, id, name)
	}
	return result.OkVoid(), nil
}

// DeleteCustomer reports success unless overridden.
func (s CustomerFacadeStub) DeleteCustomer(ctx context.Context, id uuid.UUID) (result.Result[result.Void], error) {
	if s.DeleteCustomerFn != nil {
		return s.DeleteCustomerFn(ctx, id)
	}
	return result.OkVoid(), nil
}

// SyncCustomers reports an empty import unless overridden.
func (s CustomerFacadeStub) SyncCustomers(ctx context.Context) (int, error) {
	if s.SyncCustomersFn != nil {
		return s.SyncCustomersFn(ctx)
	}
	return 0, nil
}

// ClothesItemFacadeStub simulates catalog item operations.
type ClothesItemFacadeStub struct {
	ClothesItemsFn      func(context.Context) (result.Result[[]model.ClothesItem], error)
	ClothesItemFn       func(context.Context, uuid.UUID) (result.Result[model.ClothesItem], error)
	CreateClothesItemFn func(context.Context, string, float64, uuid.UUID) (result.Result[model.ClothesItem], error)
	UpdateClothesItemFn func(context.Context, uuid.UUID, string, float64, uuid.UUID) (result.Result[result.Void], error)
	DeleteClothesItemFn func(context.Context, uuid.UUID) (result.Result[result.Void], error)
}

// ClothesItems delegates to the override or returns a single canned item.
func (s ClothesItemFacadeStub) ClothesItems(ctx context.Context) (result.Result[[]model.ClothesItem], error) {
	if s.ClothesItemsFn != nil {
		return s.ClothesItemsFn(ctx)
	}
	return result.Ok([]model.ClothesItem{{ID: uuid.New(), Name: "item", Price: 100}}), nil
}

// ClothesItem returns an item with the requested identifier.
func (s ClothesItemFacadeStub) ClothesItem(ctx context.Context, id uuid.UUID) (result.Result[model.ClothesItem], error) {
	if s.ClothesItemFn != nil {
		return s.ClothesItemFn(ctx, id)
	}
	return result.Ok(model.ClothesItem{ID: id, Name: "item", Price: 100}), nil
}

// CreateClothesItem echoes the supplied fields back as a stored item.
func (s ClothesItemFacadeStub) CreateClothesItem(ctx context.Context, name string, price float64, clothesTypeID uuid.UUID) (result.Result[model.ClothesItem], error) {
	if s.CreateClothesItemFn != nil {
		return s.CreateClothesItemFn(ctx, name, price, clothesTypeID)
	}
	return result.Ok(model.ClothesItem{ID: uuid.New(), Name: name, Price: price, ClothesTypeID: clothesTypeID}), nil
}

// UpdateClothesItem reports success unless overridden.
func (s ClothesItemFacadeStub) UpdateClothesItem(ctx context.Context, id uuid.UUID, name string, price float64, clothesTypeID uuid.UUID) (result.Result[result.Void], error) {
	if s.UpdateClothesItemFn != nil {
		return s.UpdateClothesItemFn(ctx, id, name, price, clothesTypeID)
	}
	return result.OkVoid(), nil
}

// DeleteClothesItem reports success unless overridden.
func (s ClothesItemFacadeStub) DeleteClothesItem(ctx context.Context, id uuid.UUID) (result.Result[result.Void], error) {
	if s.DeleteClothesItemFn != nil {
		return s.DeleteClothesItemFn(ctx, id)
	}
	return result.OkVoid(), nil
}

// ClothesTypeFacadeStub simulates catalog type operations.
type ClothesTypeFacadeStub struct {
	ClothesTypesFn      func(context.Context) (result.Result[[]model.ClothesType], error)
	ClothesTypeFn       func(context.Context, uuid.UUID) (result.Result[model.ClothesType], error)
	CreateClothesTypeFn func(context.Context, string) (result.Result[model.ClothesType], error)
	UpdateClothesTypeFn func(context.Context, uuid.UUID, string) (result.Result[result.Void], error)
	DeleteClothesTypeFn func(context.Context, uuid.UUID) (result.Result[result.Void], error)
}

// ClothesTypes delegates to the override or returns a single canned type.
func (s ClothesTypeFacadeStub) ClothesTypes(ctx context.Context) (result.Result[[]model.ClothesType], error) {
	if s.ClothesTypesFn != nil {
		return s.ClothesTypesFn(ctx)
	}
	return result.Ok([]model.ClothesType{{ID: uuid.New(), Type: "type"}}), nil
}

// ClothesType returns a type with the requested identifier.
func (s ClothesTypeFacadeStub) ClothesType(ctx context.Context, id uuid.UUID) (result.Result[model.ClothesType], error) {
	if s.ClothesTypeFn != nil {
		return s.ClothesTypeFn(ctx, id)
	}
	return result.Ok(model.ClothesType{ID: id, Type: "type"}), nil
}

// CreateClothesType echoes the supplied label back as a stored type.
func (s ClothesTypeFacadeStub) CreateClothesType(ctx context.Context, label string) (result.Result[model.ClothesType], error) {
	if s.CreateClothesTypeFn != nil {
		return s.CreateClothesTypeFn(ctx, label)
	}
	return result.Ok(model.ClothesType{ID: uuid.New(), Type: label}), nil
}

// UpdateClothesType reports success unless overridden.
func (s ClothesTypeFacadeStub) UpdateClothesType(ctx context.Context, id uuid.UUID, label string) (result.Result[result.Void], error) {
	if s.UpdateClothesTypeFn != nil {
		return s.UpdateClothesTypeFn(ctx, id, label)
	}
	return result.OkVoid(), nil
}

// DeleteClothesType reports success unless overridden.
func (s ClothesTypeFacadeStub) DeleteClothesType(ctx context.Context, id uuid.UUID) (result.Result[result.Void], error) {
	if s.DeleteClothesTypeFn != nil {
		return s.DeleteClothesTypeFn(ctx, id)
	}
	return result.OkVoid(), nil
}

// WebShopFacadeStub aggregates all facade stubs for router level tests.
type WebShopFacadeStub struct {
	OrderFacadeStub
	CustomerFacadeStub
	ClothesItemFacadeStub
	ClothesTypeFacadeStub
}
