package api_test

import (
	"context"

	"github.com/krongr/adboard/internal/domain"
)

// MockUserService is a function-field mock implementation of service.UserService.
type MockUserService struct {
	CreateUserFn func(ctx context.Context, name, password string) (*domain.User, error)
}

func (m *MockUserService) CreateUser(
	ctx context.Context,
	name, password string,
) (*domain.User, error) {
	if m.CreateUserFn != nil {
		return m.CreateUserFn(ctx, name, password)
	}
	return nil, nil
}

// MockAdService is a function-field mock implementation of service.AdService.
type MockAdService struct {
	CreateAdFn func(ctx context.Context, title, text string, ownerID int64) (*domain.Ad, error)
	ListAdsFn  func(ctx context.Context) ([]*domain.AdSummary, error)
	UpdateAdFn func(ctx context.Context, id int64, title, text string) error
	DeleteAdFn func(ctx context.Context, id int64) error
}

func (m *MockAdService) CreateAd(
	ctx context.Context,
	title, text string,
	ownerID int64,
) (*domain.Ad, error) {
	if m.CreateAdFn != nil {
		return m.CreateAdFn(ctx, title, text, ownerID)
	}
	return nil, nil
}

func (m *MockAdService) ListAds(ctx context.Context) ([]*domain.AdSummary, error) {
	if m.ListAdsFn != nil {
		return m.ListAdsFn(ctx)
	}
	return nil, nil
}

func (m *MockAdService) UpdateAd(ctx context.Context, id int64, title, text string) error {
	if m.UpdateAdFn != nil {
		return m.UpdateAdFn(ctx, id, title, text)
	}
	return nil
}

func (m *MockAdService) DeleteAd(ctx context.Context, id int64) error {
	if m.DeleteAdFn != nil {
		return m.DeleteAdFn(ctx, id)
	}
	return nil
}
