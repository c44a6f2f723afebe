package test

import (
	"context"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/webshop/internal/domain/errors"
	"github.com/polkiloo/webshop/internal/domain/model"
)

// CustomerRepositoryStub is a map backed customer store for tests.
type CustomerRepositoryStub struct {
	Records map[uuid.UUID]model.Customer
}

// NewCustomerRepositoryStub returns an empty customer store.
func NewCustomerRepositoryStub() *CustomerRepositoryStub {
	return &CustomerRepositoryStub{Records: map[uuid.UUID]model.Customer{}}
}

func (s *CustomerRepositoryStub) GetAll(context.Context) ([]model.Customer, error) {
	out := make([]model.Customer, 0, len(s.Records))
	for _, c := range s.Records {
		out = append(out, c)
	}
	return out, nil
}

func (s *CustomerRepositoryStub) GetByID(_ context.Context, id uuid.UUID) (*model.Customer, error) {
	c, ok := s.Records[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &c, nil
}

func (s *CustomerRepositoryStub) Add(_ context.Context, c *model.Customer) error {
	s.Records[c.ID] = *c
	return nil
}

func (s *CustomerRepositoryStub) Update(_ context.Context, c *model.Customer) error {
	if _, ok := s.Records[c.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	s.Records[c.ID] = *c
	return nil
}

func (s *CustomerRepositoryStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.Records[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Records, id)
	return nil
}

func (s *CustomerRepositoryStub) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, c := range s.Records {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// ClothesItemRepositoryStub is a map backed catalog item store for tests.
type ClothesItemRepositoryStub struct {
	Records map[uuid.UUID]model.ClothesItem
}

// NewClothesItemRepositoryStub returns an empty item store.
func NewClothesItemRepositoryStub() *ClothesItemRepositoryStub {
	return &ClothesItemRepositoryStub{Records: map[uuid.UUID]model.ClothesItem{}}
}

func (s *ClothesItemRepositoryStub) GetAll(context.Context) ([]model.ClothesItem, error) {
	out := make([]model.ClothesItem, 0, len(s.Records))
	for _, item := range s.Records {
		out = append(out, item)
	}
	return out, nil
}

func (s *ClothesItemRepositoryStub) GetByID(_ context.Context, id uuid.UUID) (*model.ClothesItem, error) {
	item, ok := s.Records[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &item, nil
}

func (s *ClothesItemRepositoryStub) Add(_ context.Context, item *model.ClothesItem) error {
	s.Records[item.ID] = *item
	return nil
}

func (s *ClothesItemRepositoryStub) Update(_ context.Context, item *model.ClothesItem) error {
	if _, ok := s.Records[item.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	s.Records[item.ID] = *item
	return nil
}

func (s *ClothesItemRepositoryStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.Records[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Records, id)
	return nil
}

// ClothesTypeRepositoryStub is a map backed catalog type store for tests.
type ClothesTypeRepositoryStub struct {
	Records map[uuid.UUID]model.ClothesType
}

// NewClothesTypeRepositoryStub returns an empty type store.
func NewClothesTypeRepositoryStub() *ClothesTypeRepositoryStub {
	return &ClothesTypeRepositoryStub{Records: map[uuid.UUID]model.ClothesType{}}
}

func (s *ClothesTypeRepositoryStub) GetAll(context.Context) ([]model.ClothesType, error) {
	out := make([]model.ClothesType, 0, len(s.Records))
	for _, ct := range s.Records {
		out = append(out, ct)
	}
	return out, nil
}

func (s *ClothesTypeRepositoryStub) GetByID(_ context.Context, id uuid.UUID) (*model.ClothesType, error) {
	ct, ok := s.Records[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &ct, nil
}

func (s *ClothesTypeRepositoryStub) Add(_ context.Context, ct *model.ClothesType) error {
	s.Records[ct.ID] = *ct
	return nil
}

func (s *ClothesTypeRepositoryStub) Update(_ context.Context, ct *model.ClothesType) error {
	if _, ok := s.Records[ct.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	s.Records[ct.ID] = *ct
	return nil
}

func (s *ClothesTypeRepositoryStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.Records[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Records, id)
	return nil
}

// OrderRepositoryStub is a map backed order store for tests.
type OrderRepositoryStub struct {
	Records map[uuid.UUID]model.Order
}

// NewOrderRepositoryStub returns an empty order store.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Records: map[uuid.UUID]model.Order{}}
}

func (s *OrderRepositoryStub) GetAll(context.Context) ([]model.Order, error) {
	out := make([]model.Order, 0, len(s.Records))
	for _, o := range s.Records {
		out = append(out, o)
	}
	return out, nil
}

func (s *OrderRepositoryStub) GetByID(_ context.Context, id uuid.UUID) (*model.Order, error) {
	o, ok := s.Records[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &o, nil
}

func (s *OrderRepositoryStub) Add(_ context.Context, o *model.Order) error {
	s.Records[o.ID] = *o
	return nil
}

func (s *OrderRepositoryStub) Update(_ context.Context, o *model.Order) error {
	if _, ok := s.Records[o.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	s.Records[o.ID] = *o
	return nil
}

func (s *OrderRepositoryStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.Records[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Records, id)
	return nil
}

// UnitOfWorkStub runs the supplied function without a transaction.
type UnitOfWorkStub struct {
	Calls int
	Err   error
}

// Do counts invocations and either fails or executes fn directly.
func (s *UnitOfWorkStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	s.Calls++
	if s.Err != nil {
		return s.Err
	}
	return fn(ctx)
}
