package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/krongr/adboard/internal/domain"
	"github.com/krongr/adboard/internal/platform/logger"
	"github.com/krongr/adboard/internal/store"
)

// AdStore implements the store.AdStore interface
// using a PostgreSQL database as the storage backend.
type AdStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewAdStore creates a new PostgreSQL implementation of the AdStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewAdStore(db store.DBTX, log *slog.Logger) *AdStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &AdStore{
		db:     db,
		logger: log.With(slog.String("component", "ad_store")),
	}
}

// Ensure AdStore implements store.AdStore interface
var _ store.AdStore = (*AdStore)(nil)

// Create implements store.AdStore.Create
// It saves a new ad to the database and assigns the generated ID.
// Returns store.ErrInvalidEntity if the owner doesn't exist (foreign key violation).
// Returns validation errors from the domain Ad if data is invalid.
func (s *AdStore) Create(ctx context.Context, ad *domain.Ad) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := ad.Validate(); err != nil {
		log.Warn("ad validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO ads (title, text, owner, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		ad.Title,
		ad.Text,
		ad.OwnerID,
		ad.CreatedAt,
	).Scan(&ad.ID)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during ad creation",
				slog.String("error", err.Error()),
				slog.Int64("owner_id", ad.OwnerID))
			return fmt.Errorf("%w: user with ID %d not found",
				store.ErrInvalidEntity, ad.OwnerID)
		}

		log.Error("failed to create ad",
			slog.String("error", err.Error()),
			slog.Int64("owner_id", ad.OwnerID))
		return store.NewStoreError("ad", "create", "insert failed", MapError(err))
	}

	log.Info("ad created successfully",
		slog.Int64("ad_id", ad.ID),
		slog.Int64("owner_id", ad.OwnerID))
	return nil
}

// GetByID implements store.AdStore.GetByID
// It retrieves an ad by its unique ID.
// Returns store.ErrAdNotFound if the ad does not exist.
func (s *AdStore) GetByID(ctx context.Context, id int64) (*domain.Ad, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, text, owner, created_at
		FROM ads
		WHERE id = $1
	`

	var ad domain.Ad
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&ad.ID,
		&ad.Title,
		&ad.Text,
		&ad.OwnerID,
		&ad.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("ad not found", slog.Int64("ad_id", id))
			return nil, store.ErrAdNotFound
		}
		log.Error("failed to get ad by ID",
			slog.String("error", err.Error()),
			slog.Int64("ad_id", id))
		return nil, store.NewStoreError("ad", "get", "query failed", MapError(err))
	}

	return &ad, nil
}

// List implements store.AdStore.List
// It retrieves all ads joined with their owning user's name, ordered by ad ID.
func (s *AdStore) List(ctx context.Context) ([]*domain.AdSummary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT a.id, a.title, a.text, u.name, a.created_at
		FROM ads a
		JOIN users u ON u.id = a.owner
		ORDER BY a.id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list ads", slog.String("error", err.Error()))
		return nil, store.NewStoreError("ad", "list", "query failed", MapError(err))
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	summaries := make([]*domain.AdSummary, 0)
	for rows.Next() {
		var summary domain.AdSummary
		if err := rows.Scan(
			&summary.ID,
			&summary.Title,
			&summary.Text,
			&summary.OwnerName,
			&summary.CreatedAt,
		); err != nil {
			log.Error("failed to scan ad row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("ad", "list", "row scan failed", MapError(err))
		}
		summaries = append(summaries, &summary)
	}

	if err := rows.Err(); err != nil {
		log.Error("failed while iterating ad rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("ad", "list", "row iteration failed", MapError(err))
	}

	return summaries, nil
}

// Update implements store.AdStore.Update
// It overwrites an existing ad's title and text; the owner and creation
// timestamp are never touched.
// Returns store.ErrAdNotFound if the ad does not exist.
func (s *AdStore) Update(ctx context.Context, ad *domain.Ad) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := ad.Validate(); err != nil {
		log.Warn("ad validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("ad_id", ad.ID))
		return err
	}

	query := `
		UPDATE ads
		SET title = $1, text = $2
		WHERE id = $3
	`

	result, err := s.db.ExecContext(ctx, query, ad.Title, ad.Text, ad.ID)
	if err != nil {
		log.Error("failed to update ad",
			slog.String("error", err.Error()),
			slog.Int64("ad_id", ad.ID))
		return store.NewStoreError("ad", "update", "execute failed", MapError(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to read affected rows after update",
			slog.String("error", err.Error()),
			slog.Int64("ad_id", ad.ID))
		return store.NewStoreError("ad", "update", "affected rows unavailable", MapError(err))
	}

	if affected == 0 {
		log.Debug("ad not found during update", slog.Int64("ad_id", ad.ID))
		return store.ErrAdNotFound
	}

	log.Info("ad updated successfully", slog.Int64("ad_id", ad.ID))
	return nil
}

// Delete implements store.AdStore.Delete
// It removes an ad from the store by its ID.
// Returns store.ErrAdNotFound if the ad does not exist.
func (s *AdStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM ads
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete ad",
			slog.String("error", err.Error()),
			slog.Int64("ad_id", id))
		return store.NewStoreError("ad", "delete", "execute failed", MapError(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to read affected rows after delete",
			slog.String("error", err.Error()),
			slog.Int64("ad_id", id))
		return store.NewStoreError("ad", "delete", "affected rows unavailable", MapError(err))
	}

	if affected == 0 {
		log.Debug("ad not found during delete", slog.Int64("ad_id", id))
		return store.ErrAdNotFound
	}

	log.Info("ad deleted successfully", slog.Int64("ad_id", id))
	return nil
}

// WithTx implements store.AdStore.WithTx
// It returns a new AdStore that executes its operations within the given transaction.
func (s *AdStore) WithTx(tx *sql.Tx) store.AdStore {
	return &AdStore{
		db:     tx,
		logger: s.logger,
	}
}
