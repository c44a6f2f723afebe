package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/webshop/internal/domain/model"
)

// CustomerRepository describes persistence operations for customers.
type CustomerRepository interface {
	GetAll(ctx context.Context) ([]model.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	Add(ctx context.Context, customer *model.Customer) error
	Update(ctx context.Context, customer *model.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByName(ctx context.Context, name string) (bool, error)
}
