package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/webshop/internal/domain/errors"
	"github.com/polkiloo/webshop/internal/domain/model"
)

type stubItemRepository struct {
	items map[uuid.UUID]model.ClothesItem
	err   error
}

func (s stubItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ClothesItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	if item, ok := s.items[id]; ok {
		return &item, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (stubItemRepository) GetAll(context.Context) ([]model.ClothesItem, error) {
	panic("not implemented")
}

func (stubItemRepository) Add(context.Context, *model.ClothesItem) error {
	panic("not implemented")
}

func (stubItemRepository) Update(context.Context, *model.ClothesItem) error {
	panic("not implemented")
}

func (stubItemRepository) Delete(context.Context, uuid.UUID) error {
	panic("not implemented")
}

type recordingCustomerRepository struct {
	customers map[uuid.UUID]model.Customer
	updated   []model.Customer
}

func (r *recordingCustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	if c, ok := r.customers[id]; ok {
		return &c, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (r *recordingCustomerRepository) Update(ctx context.Context, c *model.Customer) error {
	r.updated = append(r.updated, *c)
	r.customers[c.ID] = *c
	return nil
}

func (*recordingCustomerRepository) GetAll(context.Context) ([]model.Customer, error) {
	panic("not implemented")
}

func (*recordingCustomerRepository) Add(context.Context, *model.Customer) error {
	panic("not implemented")
}

func (*recordingCustomerRepository) Delete(context.Context, uuid.UUID) error {
	panic("not implemented")
}

func (*recordingCustomerRepository) ExistsByName(context.Context, string) (bool, error) {
	panic("not implemented")
}

type recordingOrderRepository struct {
	orders  map[uuid.UUID]model.Order
	listed  []model.Order
	listErr error
	added   []model.Order
	updated []model.Order
	deleted []uuid.UUID
}

func (r *recordingOrderRepository) GetAll(ctx context.Context) ([]model.Order, error) {
	return r.listed, r.listErr
}

func (r *recordingOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	if o, ok := r.orders[id]; ok {
		return &o, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (r *recordingOrderRepository) Add(ctx context.Context, o *model.Order) error {
	r.added = append(r.added, *o)
	return nil
}

func (r *recordingOrderRepository) Update(ctx context.Context, o *model.Order) error {
	r.updated = append(r.updated, *o)
	return nil
}

func (r *recordingOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.deleted = append(r.deleted, id)
	return nil
}

type stubUnitOfWork struct {
	err   error
	calls int
}

func (s *stubUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	return fn(ctx)
}

func newOrderFixture() (*OrderUseCase, *recordingOrderRepository, stubItemRepository, *recordingCustomerRepository, *stubUnitOfWork) {
	orders := &recordingOrderRepository{orders: map[uuid.UUID]model.Order{}}
	items := stubItemRepository{items: map[uuid.UUID]model.ClothesItem{}}
	customers := &recordingCustomerRepository{customers: map[uuid.UUID]model.Customer{}}
	uow := &stubUnitOfWork{}
	return NewOrderUseCase(orders, items, customers, uow), orders, items, customers, uow
}

func TestOrderListFailsWhenStoreIsEmpty(t *testing.T) {
	uc, _, _, _, _ := newOrderFixture()

	res, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsFailure() {
		t.Fatal("expected failure for empty store")
	}
	errs := res.Errors()
	if len(errs) != 1 || errs[0].Message != "No orders found." {
		t.Fatalf("unexpected errors %v", errs)
	}
	if errs[0].Reason == nil || errs[0].Reason.Name != "EmptyCollection" {
		t.Fatalf("unexpected reason %+v", errs[0].Reason)
	}
}

func TestOrderListReturnsAllRows(t *testing.T) {
	uc, orders, _, _, _ := newOrderFixture()
	orders.listed = []model.Order{
		{ID: uuid.New(), TotalPrice: 50},
		{ID: uuid.New(), TotalPrice: 100},
	}

	res, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsSuccess() {
		t.Fatalf("expected success, got %v", res.Errors())
	}
	if len(res.Value()) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(res.Value()))
	}
}

func TestOrderListPropagatesStoreError(t *testing.T) {
	uc, orders, _, _, _ := newOrderFixture()
	orders.listErr = errors.New("connection lost")

	if _, err := uc.List(context.Background()); err == nil {
		t.Fatal("expected infrastructure error to propagate")
	}
}

func TestOrderGetByID(t *testing.T) {
	uc, orders, _, _, _ := newOrderFixture()
	id := uuid.New()
	orders.orders[id] = model.Order{ID: id, TotalPrice: 75}

	res, err := uc.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsSuccess() || res.Value().TotalPrice != 75 {
		t.Fatalf("unexpected result %+v", res)
	}

	res, err = uc.GetByID(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsSuccess() || res.Errors()[0].Message != "Order not found." {
		t.Fatalf("unexpected result %v", res.Errors())
	}
}

func TestOrderCreateGrantsDiscountOnThirdOrder(t *testing.T) {
	uc, orders, items, customers, uow := newOrderFixture()

	itemID := uuid.New()
	items.items[itemID] = model.ClothesItem{ID: itemID, Name: "shirt", Price: 20}

	customerID := uuid.New()
	customers.customers[customerID] = model.Customer{ID: customerID, TotalSpent: 500, HasDiscount: false, OrdersCount: 2}

	res, err := uc.Create(context.Background(), customerID, []uuid.UUID{itemID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsSuccess() {
		t.Fatalf("expected success, got %v", res.Errors())
	}

	order := res.Value()
	if order.TotalPrice != 20 {
		t.Fatalf("expected total 20, got %v", order.TotalPrice)
	}
	if order.CustomerID != customerID || len(order.Items) != 1 {
		t.Fatalf("unexpected order %+v", order)
	}

	stored := customers.customers[customerID]
	if stored.OrdersCount != 0 || !stored.HasDiscount || stored.TotalSpent != 520 {
		t.Fatalf("unexpected customer state %+v", stored)
	}
	if len(orders.added) != 1 || orders.added[0].ID != order.ID {
		t.Fatalf("order not persisted: %v", orders.added)
	}
	if uow.calls != 1 {
		t.Fatalf("expected single unit of work, got %d", uow.calls)
	}
}

func TestOrderCreateConsumesDiscount(t *testing.T) {
	uc, orders, items, customers, _ := newOrderFixture()

	itemID := uuid.New()
	items.items[itemID] = model.ClothesItem{ID: itemID, Price: 2000}

	customerID := uuid.New()
	customers.customers[customerID] = model.Customer{ID: customerID, HasDiscount: true, OrdersCount: 1}

	res, err := uc.Create(context.Background(), customerID, []uuid.UUID{itemID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsSuccess() {
		t.Fatalf("expected success, got %v", res.Errors())
	}
	if res.Value().TotalPrice != 1000 {
		t.Fatalf("expected discounted total 1000, got %v", res.Value().TotalPrice)
	}

	stored := customers.customers[customerID]
	if stored.HasDiscount || stored.OrdersCount != 2 {
		t.Fatalf("unexpected customer state %+v", stored)
	}
	if len(orders.added) != 1 {
		t.Fatal("expected order to be persisted")
	}
}

func TestOrderCreateFailsFastOnMissingItem(t *testing.T) {
	uc, orders, items, customers, uow := newOrderFixture()

	knownID := uuid.New()
	items.items[knownID] = model.ClothesItem{ID: knownID, Price: 10}
	missingID := uuid.New()

	customerID := uuid.New()
	original := model.Customer{ID: customerID, TotalSpent: 500, OrdersCount: 2}
	customers.customers[customerID] = original

	res, err := uc.Create(context.Background(), customerID, []uuid.UUID{knownID, missingID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsSuccess() {
		t.Fatal("expected failure")
	}

	want := fmt.Sprintf("Clothes item with ID %s not found.", missingID)
	if res.Errors()[0].Message != want {
		t.Fatalf("unexpected message %q, want %q", res.Errors()[0].Message, want)
	}
	if res.Errors()[0].Reason == nil || res.Errors()[0].Reason.Name != "ReferencedEntityMissing" {
		t.Fatalf("unexpected reason %+v", res.Errors()[0].Reason)
	}

	if customers.customers[customerID] != original {
		t.Fatalf("customer modified despite failed create: %+v", customers.customers[customerID])
	}
	if len(customers.updated) != 0 || len(orders.added) != 0 || uow.calls != 0 {
		t.Fatal("expected zero writes on failure")
	}
}

func TestOrderCreateFailsOnMissingCustomer(t *testing.T) {
	uc, orders, items, customers, uow := newOrderFixture()

	itemID := uuid.New()
	items.items[itemID] = model.ClothesItem{ID: itemID, Price: 10}

	res, err := uc.Create(context.Background(), uuid.New(), []uuid.UUID{itemID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsSuccess() || res.Errors()[0].Message != "Customer not found." {
		t.Fatalf("unexpected result %v", res.Errors())
	}
	if len(customers.updated) != 0 || len(orders.added) != 0 || uow.calls != 0 {
		t.Fatal("expected zero writes on failure")
	}
}

func TestOrderCreatePropagatesUnitOfWorkError(t *testing.T) {
	uc, _, items, customers, uow := newOrderFixture()

	itemID := uuid.New()
	items.items[itemID] = model.ClothesItem{ID: itemID, Price: 10}
	customerID := uuid.New()
	customers.customers[customerID] = model.Customer{ID: customerID}
	uow.err = errors.New("begin tx: connection refused")

	if _, err := uc.Create(context.Background(), customerID, []uuid.UUID{itemID}); err == nil {
		t.Fatal("expected infrastructure error to propagate")
	}
}

func TestOrderUpdateReplacesFieldsWithoutRepricing(t *testing.T) {
	uc, orders, _, _, _ := newOrderFixture()

	id := uuid.New()
	orders.orders[id] = model.Order{ID: id, CustomerID: uuid.New(), TotalPrice: 300}

	newCustomer := uuid.New()
	newItem := uuid.New()
	res, err := uc.Update(context.Background(), id, newCustomer, []uuid.UUID{newItem})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsSuccess() {
		t.Fatalf("expected success, got %v", res.Errors())
	}

	if len(orders.updated) != 1 {
		t.Fatal("expected order update to be persisted")
	}
	updated := orders.updated[0]
	if updated.CustomerID != newCustomer {
		t.Fatalf("customer reference not replaced: %+v", updated)
	}
	if len(updated.Items) != 1 || updated.Items[0].ID != newItem {
		t.Fatalf("item references not replaced: %+v", updated.Items)
	}
	if updated.TotalPrice != 300 {
		t.Fatalf("total price must not be recomputed, got %v", updated.TotalPrice)
	}
}

func TestOrderUpdateUnknownID(t *testing.T) {
	uc, orders, _, _, _ := newOrderFixture()

	res, err := uc.Update(context.Background(), uuid.New(), uuid.New(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsSuccess() || res.Errors()[0].Message != "Item not found." {
		t.Fatalf("unexpected result %v", res.Errors())
	}
	if len(orders.updated) != 0 {
		t.Fatal("expected no write")
	}
}

func TestOrderDelete(t *testing.T) {
	uc, orders, _, _, _ := newOrderFixture()

	id := uuid.New()
	orders.orders[id] = model.Order{ID: id}

	res, err := uc.Delete(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsSuccess() {
		t.Fatalf("expected success, got %v", res.Errors())
	}
	if len(orders.deleted) != 1 || orders.deleted[0] != id {
		t.Fatalf("unexpected deletes %v", orders.deleted)
	}

	res, err = uc.Delete(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsSuccess() || res.Errors()[0].Message != "Item not found." {
		t.Fatalf("unexpected result %v", res.Errors())
	}
}
