package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/webshop/internal/domain/errors"
	"github.com/polkiloo/webshop/internal/domain/model"
)

type fakeItemRepository struct {
	byID    map[uuid.UUID]model.ClothesItem
	listed  []model.ClothesItem
	added   []model.ClothesItem
	updated []model.ClothesItem
	deleted []uuid.UUID
}

func newFakeItemRepository() *fakeItemRepository {
	return &fakeItemRepository{byID: map[uuid.UUID]model.ClothesItem{}}
}

func (r *fakeItemRepository) GetAll(ctx context.Context) ([]model.ClothesItem, error) {
	return r.listed, nil
}

func (r *fakeItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ClothesItem, error) {
	if item, ok := r.byID[id]; ok {
		return &item, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (r *fakeItemRepository) Add(ctx context.Context, item *model.ClothesItem) error {
	r.added = append(r.added, *item)
	r.byID[item.ID] = *item
	return nil
}

func (r *fakeItemRepository) Update(ctx context.Context, item *model.ClothesItem) error {
	r.updated = append(r.updated, *item)
	r.byID[item.ID] = *item
	return nil
}

func (r *fakeItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.deleted = append(r.deleted, id)
	delete(r.byID, id)
	return nil
}

func TestClothesItemListEmptyIsFailure(t *testing.T) {
	uc := NewClothesItemUseCase(newFakeItemRepository())

	res, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsSuccess() || res.Errors()[0].Message != "No orders found." {
		t.Fatalf("unexpected result %v", res.Errors())
	}
}

func TestClothesItemCreateAndGet(t *testing.T) {
	repo := newFakeItemRepository()
	uc := NewClothesItemUseCase(repo)

	typeID := uuid.New()
	res, err := uc.Create(context.Background(), "jacket", 4500, typeID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	created := res.Value()
	if created.Name != "jacket" || created.Price != 4500 || created.ClothesTypeID != typeID {
		t.Fatalf("unexpected item %+v", created)
	}

	got, err := uc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsSuccess() || got.Value().ID != created.ID {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestClothesItemGetUnknownID(t *testing.T) {
	uc := NewClothesItemUseCase(newFakeItemRepository())

	res, err := uc.GetByID(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsSuccess() || res.Errors()[0].Message != "Clothes item not found." {
		t.Fatalf("unexpected result %v", res.Errors())
	}
}

func TestClothesItemUpdateAndDelete(t *testing.T) {
	repo := newFakeItemRepository()
	id := uuid.New()
	repo.byID[id] = model.ClothesItem{ID: id, Name: "old", Price: 100}
	uc := NewClothesItemUseCase(repo)

	res, err := uc.Update(context.Background(), id, "new", 200, uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsSuccess() || repo.byID[id].Name != "new" || repo.byID[id].Price != 200 {
		t.Fatalf("update not applied: %+v", repo.byID[id])
	}

	res, err = uc.Delete(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsSuccess() || len(repo.deleted) != 1 {
		t.Fatal("delete not applied")
	}

	res, err = uc.Delete(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsSuccess() || res.Errors()[0].Message != "Clothes item not found." {
		t.Fatalf("unexpected result %v", res.Errors())
	}
}
