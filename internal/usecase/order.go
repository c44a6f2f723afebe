package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/webshop/internal/domain/errors"
	"github.com/polkiloo/webshop/internal/domain/model"
	"github.com/polkiloo/webshop/internal/domain/repository"
	"github.com/polkiloo/webshop/internal/domain/result"
)

// OrderUseCase orchestrates the order workflow: loading referenced
// entities, pricing, loyalty bookkeeping, and the paired customer/order
// writes.
type OrderUseCase struct {
	orders    repository.OrderRepository
	items     repository.ClothesItemRepository
	customers repository.CustomerRepository
	uow       repository.UnitOfWork
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, items repository.ClothesItemRepository, customers repository.CustomerRepository, uow repository.UnitOfWork) *OrderUseCase {
	return &OrderUseCase{orders: orders, items: items, customers: customers, uow: uow}
}

// List returns all orders. An empty store is reported as a failure.
func (u *OrderUseCase) List(ctx context.Context) (result.Result[[]model.Order], error) {
	orders, err := u.orders.GetAll(ctx)
	if err != nil {
		return result.Result[[]model.Order]{}, err
	}
	if len(orders) == 0 {
		return result.FailWith[[]model.Order](
			result.Error{Message: "No orders found."}.WithReason(result.ReasonEmptyCollection, "the order store holds no rows"),
		), nil
	}
	return result.Ok(orders), nil
}

// GetByID returns the matching order.
func (u *OrderUseCase) GetByID(ctx context.Context, id uuid.UUID) (result.Result[model.Order], error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return result.FailWith[model.Order](
				result.Error{Message: "Order not found."}.WithReason(result.ReasonNotFound, "no order with the requested id"),
			), nil
		}
		return result.Result[model.Order]{}, err
	}
	return result.Ok(*order), nil
}

// Create builds and persists a new order for the customer.
//
// Referenced clothes items are fetched first; a missing one aborts the
// whole operation before any state is touched. The loyalty transition
// is applied to the customer in memory, then the customer update and
// the order insert are committed in a single unit of work.
func (u *OrderUseCase) Create(ctx context.Context, customerID uuid.UUID, itemIDs []uuid.UUID) (result.Result[model.Order], error) {
	items := make([]model.ClothesItem, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		item, err := u.items.GetByID(ctx, itemID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				return result.FailWith[model.Order](
					result.Error{Message: fmt.Sprintf("Clothes item with ID %s not found.", itemID)}.
						WithReason(result.ReasonReferencedEntityMissing, "order references a clothes item that does not exist"),
				), nil
			}
			return result.Result[model.Order]{}, err
		}
		items = append(items, *item)
	}

	baseTotal := ComputeBaseTotal(items)

	customer, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return result.FailWith[model.Order](
				result.Error{Message: "Customer not found."}.
					WithReason(result.ReasonReferencedEntityMissing, "order references a customer that does not exist"),
			), nil
		}
		return result.Result[model.Order]{}, err
	}

	state, totalPrice := ApplyLoyalty(customer.LoyaltyState(), baseTotal)
	customer.SetLoyaltyState(state)

	order := model.Order{
		ID:         uuid.New(),
		CustomerID: customerID,
		Items:      items,
		TotalPrice: totalPrice,
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.customers.Update(ctx, customer); err != nil {
			return fmt.Errorf("update customer: %w", err)
		}
		if err := u.orders.Add(ctx, &order); err != nil {
			return fmt.Errorf("add order: %w", err)
		}
		return nil
	})
	if err != nil {
		return result.Result[model.Order]{}, err
	}

	return result.Ok(order), nil
}

// Update replaces the order's fields wholesale. Nothing is re-derived:
// the total price is kept and the loyalty state is not re-applied.
func (u *OrderUseCase) Update(ctx context.Context, id, customerID uuid.UUID, itemIDs []uuid.UUID) (result.Result[result.Void], error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return result.FailWith[result.Void](
				result.Error{Message: "Item not found."}.WithReason(result.ReasonNotFound, "no order with the requested id"),
			), nil
		}
		return result.Result[result.Void]{}, err
	}

	order.CustomerID = customerID
	order.Items = make([]model.ClothesItem, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		order.Items = append(order.Items, model.ClothesItem{ID: itemID})
	}

	if err := u.orders.Update(ctx, order); err != nil {
		return result.Result[result.Void]{}, err
	}
	return result.OkVoid(), nil
}

// Delete removes the order. Loyalty state mutated at creation time is
// deliberately not compensated.
func (u *OrderUseCase) Delete(ctx context.Context, id uuid.UUID) (result.Result[result.Void], error) {
	if _, err := u.orders.GetByID(ctx, id); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return result.FailWith[result.Void](
				result.Error{Message: "Item not found."}.WithReason(result.ReasonNotFound, "no order with the requested id"),
			), nil
		}
		return result.Result[result.Void]{}, err
	}

	if err := u.orders.Delete(ctx, id); err != nil {
		return result.Result[result.Void]{}, err
	}
	return result.OkVoid(), nil
}
