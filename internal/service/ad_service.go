package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/krongr/adboard/internal/domain"
	"github.com/krongr/adboard/internal/store"
)

// AdService provides ad-related operations.
type AdService interface {
	// CreateAd creates a new ad owned by the given user.
	// Returns store.ErrUserNotFound (wrapped) if the owner doesn't exist.
	CreateAd(ctx context.Context, title, text string, ownerID int64) (*domain.Ad, error)

	// ListAds returns all ads with the owner column resolved to the owning
	// user's name, ordered by ad ID.
	ListAds(ctx context.Context) ([]*domain.AdSummary, error)

	// UpdateAd applies a partial update to an existing ad. Empty title/text
	// values leave the stored value unchanged.
	// Returns store.ErrAdNotFound (wrapped) if the ad doesn't exist.
	UpdateAd(ctx context.Context, id int64, title, text string) error

	// DeleteAd removes an ad by its ID. Deleting a nonexistent ad is not an
	// error; the operation is idempotent.
	DeleteAd(ctx context.Context, id int64) error
}

// AdServiceImpl implements the AdService interface
type AdServiceImpl struct {
	adStore   store.AdStore
	userStore store.UserStore
	db        *sql.DB
	logger    *slog.Logger
}

// NewAdService creates a new AdService
func NewAdService(
	adStore store.AdStore,
	userStore store.UserStore,
	db *sql.DB,
	logger *slog.Logger,
) AdService {
	return &AdServiceImpl{
		adStore:   adStore,
		userStore: userStore,
		db:        db,
		logger:    logger.With("component", "ad_service"),
	}
}

// CreateAd creates a new ad owned by the given user
// Uses a transaction to ensure atomicity of the operation
func (s *AdServiceImpl) CreateAd(
	ctx context.Context,
	title, text string,
	ownerID int64,
) (*domain.Ad, error) {
	ad, err := domain.NewAd(title, text, ownerID)
	if err != nil {
		s.logger.Warn("failed to create ad object",
			"error", err,
			"owner_id", ownerID)
		return nil, fmt.Errorf("failed to create ad: %w", err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		// Resolve the owner inside the transaction. The foreign key on the
		// ads table still backstops a concurrent user delete.
		if _, err := s.userStore.WithTx(tx).GetByID(ctx, ad.OwnerID); err != nil {
			return err
		}
		return s.adStore.WithTx(tx).Create(ctx, ad)
	})

	if err != nil {
		if store.IsNotFoundError(err) || errors.Is(err, store.ErrInvalidEntity) {
			s.logger.Debug("attempted to create ad for nonexistent user",
				"owner_id", ownerID)
		} else {
			s.logger.Error("failed to save ad to database",
				"error", err,
				"owner_id", ownerID)
		}
		return nil, fmt.Errorf("failed to create ad: %w", err)
	}

	s.logger.Info("ad created successfully",
		"ad_id", ad.ID,
		"owner_id", ad.OwnerID)

	return ad, nil
}

// ListAds returns all ads with their owner names.
// A plain read off the connection pool; no transaction is needed for a
// single statement.
func (s *AdServiceImpl) ListAds(ctx context.Context) ([]*domain.AdSummary, error) {
	summaries, err := s.adStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list ads", "error", err)
		return nil, fmt.Errorf("failed to list ads: %w", err)
	}

	s.logger.Debug("listed ads", "count", len(summaries))
	return summaries, nil
}

// UpdateAd applies a partial update to an existing ad
// Following the pattern of loading the complete ad first, applying the patch,
// and writing the full row back, all within one transaction
func (s *AdServiceImpl) UpdateAd(ctx context.Context, id int64, title, text string) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.adStore.WithTx(tx)

		ad, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}

		ad.ApplyPatch(title, text)

		return txStore.Update(ctx, ad)
	})

	if err != nil {
		if store.IsNotFoundError(err) {
			s.logger.Debug("attempted to update nonexistent ad", "ad_id", id)
			return err
		}
		s.logger.Error("failed to update ad",
			"error", err,
			"ad_id", id)
		return fmt.Errorf("failed to update ad: %w", err)
	}

	s.logger.Info("ad updated successfully", "ad_id", id)
	return nil
}

// DeleteAd removes an ad by its ID
// Deleting an ad that doesn't exist succeeds silently so that the operation
// stays idempotent
func (s *AdServiceImpl) DeleteAd(ctx context.Context, id int64) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.adStore.WithTx(tx)
		return txStore.Delete(ctx, id)
	})

	if err != nil {
		if store.IsNotFoundError(err) {
			s.logger.Debug("delete of nonexistent ad treated as success", "ad_id", id)
			return nil
		}
		s.logger.Error("failed to delete ad",
			"error", err,
			"ad_id", id)
		return fmt.Errorf("failed to delete ad: %w", err)
	}

	s.logger.Info("ad deleted successfully", "ad_id", id)
	return nil
}
