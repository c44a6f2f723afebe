package repository

import "context"

// Factory describes access to different domain repositories.
type Factory interface {
	Customers() CustomerRepository
	ClothesItems() ClothesItemRepository
	ClothesTypes() ClothesTypeRepository
	Orders() OrderRepository
}

// UnitOfWork runs fn inside a single storage transaction. Repository
// calls made with the context passed to fn share that transaction, so
// writes against multiple aggregates commit or roll back together.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
