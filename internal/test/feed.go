package test

import (
	"context"

	"github.com/polkiloo/webshop/internal/domain/model"
)

// CustomerFeedStub replaces the external customer feed in tests.
type CustomerFeedStub struct {
	FetchFn func(context.Context) ([]model.Customer, error)
}

// FetchCustomers delegates to the override or returns one canned record.
func (s CustomerFeedStub) FetchCustomers(ctx context.Context) ([]model.Customer, error) {
	if s.FetchFn != nil {
		return s.FetchFn(ctx)
	}
	return []model.Customer{{Name: "feed customer"}}, nil
}
