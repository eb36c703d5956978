package store

import (
	"context"
	"database/sql"

	"github.com/krongr/adboard/internal/domain"
)

// AdStore defines the interface for ad data persistence.
type AdStore interface {
	// Create saves a new ad to the store and assigns its generated ID.
	// It validates the ad before inserting.
	// Returns ErrInvalidEntity if the owner does not reference an existing user.
	Create(ctx context.Context, ad *domain.Ad) error

	// GetByID retrieves an ad by its unique ID.
	// Returns ErrAdNotFound if the ad does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Ad, error)

	// List retrieves all ads with their owner column resolved to the owning
	// user's name. The result is ordered by ad ID.
	List(ctx context.Context) ([]*domain.AdSummary, error)

	// Update overwrites an existing ad's title and text.
	// The creation timestamp and owner are never modified.
	// Returns ErrAdNotFound if the ad does not exist.
	Update(ctx context.Context, ad *domain.Ad) error

	// Delete removes an ad from the store by its ID.
	// Returns ErrAdNotFound if the ad does not exist; callers that need
	// idempotent delete semantics ignore that error.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new AdStore instance that uses the provided transaction.
	// This allows for multiple operations to be executed within a single transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) AdStore
}
