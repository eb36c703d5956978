package service_test

import (
	"context"
	"database/sql"

	"github.com/krongr/adboard/internal/domain"
	"github.com/krongr/adboard/internal/store"
)

// MockUserStore is a function-field mock implementation of store.UserStore.
type MockUserStore struct {
	CreateFn  func(ctx context.Context, user *domain.User) error
	GetByIDFn func(ctx context.Context, id int64) (*domain.User, error)
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return nil
}

func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return &domain.User{ID: id, Name: "someone", Password: "x"}, nil
}

func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}

// MockAdStore is a function-field mock implementation of store.AdStore.
type MockAdStore struct {
	CreateFn  func(ctx context.Context, ad *domain.Ad) error
	GetByIDFn func(ctx context.Context, id int64) (*domain.Ad, error)
	ListFn    func(ctx context.Context) ([]*domain.AdSummary, error)
	UpdateFn  func(ctx context.Context, ad *domain.Ad) error
	DeleteFn  func(ctx context.Context, id int64) error
}

func (m *MockAdStore) Create(ctx context.Context, ad *domain.Ad) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, ad)
	}
	return nil
}

func (m *MockAdStore) GetByID(ctx context.Context, id int64) (*domain.Ad, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return &domain.Ad{ID: id, Title: "t", Text: "x", OwnerID: 1}, nil
}

func (m *MockAdStore) List(ctx context.Context) ([]*domain.AdSummary, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *MockAdStore) Update(ctx context.Context, ad *domain.Ad) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, ad)
	}
	return nil
}

func (m *MockAdStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *MockAdStore) WithTx(tx *sql.Tx) store.AdStore {
	return m
}
