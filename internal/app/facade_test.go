package app

import (
	"context"
	"testing"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/webshop/internal/domain/errors"
	"github.com/polkiloo/webshop/internal/domain/model"
	testhelpers "github.com/polkiloo/webshop/internal/test"
	"github.com/polkiloo/webshop/internal/usecase"
)

type memCustomers struct {
	records map[uuid.UUID]model.Customer
}

func (m *memCustomers) GetAll(context.Context) ([]model.Customer, error) {
	out := make([]model.Customer, 0, len(m.records))
	for _, c := range m.records {
		out = append(out, c)
	}
	return out, nil
}

func (m *memCustomers) GetByID(_ context.Context, id uuid.UUID) (*model.Customer, error) {
	c, ok := m.records[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &c, nil
}

func (m *memCustomers) Add(_ context.Context, c *model.Customer) error {
	m.records[c.ID] = *c
	return nil
}

func (m *memCustomers) Update(_ context.Context, c *model.Customer) error {
	if _, ok := m.records[c.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	m.records[c.ID] = *c
	return nil
}

func (m *memCustomers) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.records[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(m.records, id)
	return nil
}

func (m *memCustomers) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, c := range m.records {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

type memClothesItems struct {
	records map[uuid.UUID]model.ClothesItem
}

func (m *memClothesItems) GetAll(context.Context) ([]model.ClothesItem, error) {
	out := make([]model.ClothesItem, 0, len(m.records))
	for _, item := range m.records {
		out = append(out, item)
	}
	return out, nil
}

func (m *memClothesItems) GetByID(_ context.Context, id uuid.UUID) (*model.ClothesItem, error) {
	item, ok := m.records[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &item, nil
}

func (m *memClothesItems) Add(_ context.Context, item *model.ClothesItem) error {
	m.records[item.ID] = *item
	return nil
}

func (m *memClothesItems) Update(_ context.Context, item *model.ClothesItem) error {
	if _, ok := m.records[item.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	m.records[item.ID] = *item
	return nil
}

func (m *memClothesItems) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.records[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(m.records, id)
	return nil
}

type memClothesTypes struct {
	records map[uuid.UUID]model.ClothesType
}

func (m *memClothesTypes) GetAll(context.Context) ([]model.ClothesType, error) {
	out := make([]model.ClothesType, 0, len(m.records))
	for _, ct := range m.records {
		out = append(out, ct)
	}
	return out, nil
}

func (m *memClothesTypes) GetByID(_ context.Context, id uuid.UUID) (*model.ClothesType, error) {
	ct, ok := m.records[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &ct, nil
}

func (m *memClothesTypes) Add(_ context.Context, ct *model.ClothesType) error {
	m.records[ct.ID] = *ct
	return nil
}

func (m *memClothesTypes) Update(_ context.Context, ct *model.ClothesType) error {
	if _, ok := m.records[ct.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	m.records[ct.ID] = *ct
	return nil
}

func (m *memClothesTypes) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.records[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(m.records, id)
	return nil
}

type memOrders struct {
	records map[uuid.UUID]model.Order
}

func (m *memOrders) GetAll(context.Context) ([]model.Order, error) {
	out := make([]model.Order, 0, len(m.records))
	for _, o := range m.records {
		out = append(out, o)
	}
	return out, nil
}

func (m *memOrders) GetByID(_ context.Context, id uuid.UUID) (*model.Order, error) {
	o, ok := m.records[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &o, nil
}

func (m *memOrders) Add(_ context.Context, o *model.Order) error {
	m.records[o.ID] = *o
	return nil
}

func (m *memOrders) Update(_ context.Context, o *model.Order) error {
	if _, ok := m.records[o.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	m.records[o.ID] = *o
	return nil
}

func (m *memOrders) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.records[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(m.records, id)
	return nil
}

type passthroughUnitOfWork struct{}

func (passthroughUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestFacade(feed usecase.CustomerFeed) *WebShopFacade {
	customers := &memCustomers{records: map[uuid.UUID]model.Customer{}}
	items := &memClothesItems{records: map[uuid.UUID]model.ClothesItem{}}
	types := &memClothesTypes{records: map[uuid.UUID]model.ClothesType{}}
	orders := &memOrders{records: map[uuid.UUID]model.Order{}}

	return NewWebShopFacade(
		usecase.NewOrderUseCase(orders, items, customers, passthroughUnitOfWork{}),
		usecase.NewCustomerUseCase(customers, feed),
		usecase.NewClothesItemUseCase(items),
		usecase.NewClothesTypeUseCase(types),
	)
}

func TestFacadeLoyaltyFlow(t *testing.T) {
	ctx := context.Background()
	facade := newTestFacade(testhelpers.CustomerFeedStub{})

	customerRes, err := facade.CreateCustomer(ctx, "ana")
	if err != nil || customerRes.IsFailure() {
		t.Fatalf("create customer failed: %v %v", err, customerRes.Errors())
	}
	customerID := customerRes.Value().ID

	typeRes, err := facade.CreateClothesType(ctx, "jackets")
	if err != nil || typeRes.IsFailure() {
		t.Fatalf("create type failed: %v %v", err, typeRes.Errors())
	}

	itemRes, err := facade.CreateClothesItem(ctx, "jacket", 400, typeRes.Value().ID)
	if err != nil || itemRes.IsFailure() {
		t.Fatalf("create item failed: %v %v", err, itemRes.Errors())
	}
	itemID := itemRes.Value().ID

	for i := 0; i < 3; i++ {
		orderRes, err := facade.CreateOrder(ctx, customerID, []uuid.UUID{itemID})
		if err != nil || orderRes.IsFailure() {
			t.Fatalf("order %d failed: %v %v", i+1, err, orderRes.Errors())
		}
		if orderRes.Value().TotalPrice != 400 {
			t.Fatalf("order %d: expected total 400, got %v", i+1, orderRes.Value().TotalPrice)
		}
	}

	stateRes, err := facade.Customer(ctx, customerID)
	if err != nil || stateRes.IsFailure() {
		t.Fatalf("customer lookup failed: %v %v", err, stateRes.Errors())
	}
	state := stateRes.Value()
	if !state.HasDiscount || state.OrdersCount != 0 || state.TotalSpent != 1200 {
		t.Fatalf("unexpected state after third order: %+v", state)
	}

	discounted, err := facade.CreateOrder(ctx, customerID, []uuid.UUID{itemID})
	if err != nil || discounted.IsFailure() {
		t.Fatalf("discounted order failed: %v %v", err, discounted.Errors())
	}
	if discounted.Value().TotalPrice != -600 {
		t.Fatalf("expected discounted total -600, got %v", discounted.Value().TotalPrice)
	}

	stateRes, err = facade.Customer(ctx, customerID)
	if err != nil || stateRes.IsFailure() {
		t.Fatalf("customer lookup failed: %v %v", err, stateRes.Errors())
	}
	state = stateRes.Value()
	if state.HasDiscount || state.OrdersCount != 1 || state.TotalSpent != 600 {
		t.Fatalf("unexpected state after discounted order: %+v", state)
	}
}

func TestFacadeListOrdersEmpty(t *testing.T) {
	facade := newTestFacade(testhelpers.CustomerFeedStub{})

	res, err := facade.Orders(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsFailure() {
		t.Fatal("expected failure for empty order list")
	}
	if res.Errors()[0].Message != "No orders found." {
		t.Fatalf("unexpected message %q", res.Errors()[0].Message)
	}
}

func TestFacadeSyncCustomers(t *testing.T) {
	ctx := context.Background()
	feed := testhelpers.CustomerFeedStub{FetchFn: func(context.Context) ([]model.Customer, error) {
		return []model.Customer{{Name: "ana"}, {Name: "marko"}}, nil
	}}
	facade := newTestFacade(feed)

	if res, err := facade.CreateCustomer(ctx, "ana"); err != nil || res.IsFailure() {
		t.Fatalf("create customer failed: %v", err)
	}

	added, err := facade.SyncCustomers(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added != 1 {
		t.Fatalf("expected 1 customer added, got %d", added)
	}
}
