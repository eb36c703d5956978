package service_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/krongr/adboard/internal/domain"
	"github.com/krongr/adboard/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestAdService_ListAds(t *testing.T) {
	fixedTime := time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)

	t.Run("returns summaries from the store", func(t *testing.T) {
		expected := []*domain.AdSummary{
			{ID: 1, Title: "bike", Text: "blue", OwnerName: "alice", CreatedAt: fixedTime},
			{ID: 2, Title: "sofa", Text: "red", OwnerName: "bob", CreatedAt: fixedTime},
		}
		mockStore := &MockAdStore{
			ListFn: func(ctx context.Context) ([]*domain.AdSummary, error) {
				return expected, nil
			},
		}

		adService := service.NewAdService(mockStore, &MockUserStore{}, nil, testLogger())

		summaries, err := adService.ListAds(context.Background())
		require.NoError(t, err)
		assert.Equal(t, expected, summaries)
	})

	t.Run("wraps store failures", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		mockStore := &MockAdStore{
			ListFn: func(ctx context.Context) ([]*domain.AdSummary, error) {
				return nil, storeErr
			},
		}

		adService := service.NewAdService(mockStore, &MockUserStore{}, nil, testLogger())

		_, err := adService.ListAds(context.Background())
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestAdService_CreateAdRejectsInvalidInput(t *testing.T) {
	// Validation failures must surface before any store session is opened,
	// which is why a nil *sql.DB is safe here.
	adService := service.NewAdService(&MockAdStore{}, &MockUserStore{}, nil, testLogger())

	_, err := adService.CreateAd(context.Background(), "", "some text", 1)
	assert.ErrorIs(t, err, domain.ErrEmptyAdTitle)

	_, err = adService.CreateAd(context.Background(), "a title", "", 1)
	assert.ErrorIs(t, err, domain.ErrEmptyAdText)

	_, err = adService.CreateAd(context.Background(), "a title", "some text", 0)
	assert.ErrorIs(t, err, domain.ErrEmptyAdOwner)
}
