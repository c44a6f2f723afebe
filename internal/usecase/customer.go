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

// CustomerFeed supplies customer records from an external source.
type CustomerFeed interface {
	FetchCustomers(ctx context.Context) ([]model.Customer, error)
}

// CustomerUseCase implements customer CRUD and the external feed sync.
type CustomerUseCase struct {
	customers repository.CustomerRepository
	feed      CustomerFeed
}

// NewCustomerUseCase constructs CustomerUseCase.
func NewCustomerUseCase(customers repository.CustomerRepository, feed CustomerFeed) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, feed: feed}
}

// List returns all customers. An empty store is reported as a failure.
func (u *CustomerUseCase) List(ctx context.Context) (result.Result[[]model.Customer], error) {
	customers, err := u.customers.GetAll(ctx)
	if err != nil {
		return result.Result[[]model.Customer]{}, err
	}
	if len(customers) == 0 {
		return result.FailWith[[]model.Customer](
			result.Error{Message: "No orders found."}.WithReason(result.ReasonEmptyCollection, "the customer store holds no rows"),
		), nil
	}
	return result.Ok(customers), nil
}

// GetByID returns the matching customer.
func (u *CustomerUseCase) GetByID(ctx context.Context, id uuid.UUID) (result.Result[model.Customer], error) {
	customer, err := u.customers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return result.FailWith[model.Customer](
				result.Error{Message: "Item not found."}.WithReason(result.ReasonNotFound, "no customer with the requested id"),
			), nil
		}
		return result.Result[model.Customer]{}, err
	}
	return result.Ok(*customer), nil
}

// Create stores a new customer with a fresh loyalty state.
func (u *CustomerUseCase) Create(ctx context.Context, name string) (result.Result[model.Customer], error) {
	customer := model.Customer{ID: uuid.New(), Name: name}
	if err := u.customers.Add(ctx, &customer); err != nil {
		return result.Result[model.Customer]{}, err
	}
	return result.Ok(customer), nil
}

// Update replaces the customer's name. Loyalty fields are owned by the
// order workflow and are left untouched.
func (u *CustomerUseCase) Update(ctx context.Context, id uuid.UUID, name string) (result.Result[result.Void], error) {
	customer, err := u.customers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return result.FailWith[result.Void](
				result.Error{Message: "Item not found."}.WithReason(result.ReasonNotFound, "no customer with the requested id"),
			), nil
		}
		return result.Result[result.Void]{}, err
	}

	customer.Name = name
	if err := u.customers.Update(ctx, customer); err != nil {
		return result.Result[result.Void]{}, err
	}
	return result.OkVoid(), nil
}

// Delete removes the customer.
func (u *CustomerUseCase) Delete(ctx context.Context, id uuid.UUID) (result.Result[result.Void], error) {
	if _, err := u.customers.GetByID(ctx, id); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return result.FailWith[result.Void](
				result.Error{Message: "Item not found."}.WithReason(result.ReasonNotFound, "no customer with the requested id"),
			), nil
		}
		return result.Result[result.Void]{}, err
	}

	if err := u.customers.Delete(ctx, id); err != nil {
		return result.Result[result.Void]{}, err
	}
	return result.OkVoid(), nil
}

// SyncFromFeed imports customers from the external feed, skipping the
// ones whose name is already present. Returns how many were added.
func (u *CustomerUseCase) SyncFromFeed(ctx context.Context) (int, error) {
	records, err := u.feed.FetchCustomers(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch customer feed: %w", err)
	}

	added := 0
	for _, record := range records {
		exists, err := u.customers.ExistsByName(ctx, record.Name)
		if err != nil {
			return added, err
		}
		if exists {
			continue
		}
		customer := model.Customer{ID: uuid.New(), Name: record.Name}
		if err := u.customers.Add(ctx, &customer); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}
