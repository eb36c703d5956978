// Package service provides application-level services for managing users and ads.
package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/krongr/adboard/internal/domain"
	"github.com/krongr/adboard/internal/store"
)

// UserService provides user-related operations.
type UserService interface {
	// CreateUser creates a new user with the specified name and password.
	// Returns store.ErrNameExists (wrapped) if the name is already taken.
	CreateUser(ctx context.Context, name, password string) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore store.UserStore
	db        *sql.DB
	logger    *slog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userStore store.UserStore, db *sql.DB, logger *slog.Logger) UserService {
	return &UserServiceImpl{
		userStore: userStore,
		db:        db,
		logger:    logger.With("component", "user_service"),
	}
}

// CreateUser creates a new user with the specified name and password
// Uses a transaction to ensure atomicity of the operation
func (s *UserServiceImpl) CreateUser(ctx context.Context, name, password string) (*domain.User, error) {
	user, err := domain.NewUser(name, password)
	if err != nil {
		s.logger.Warn("failed to create user object",
			"error", err,
			"name", name)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Use a transaction for the user creation
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		// Get a transaction-aware store
		txStore := s.userStore.WithTx(tx)

		// Create the user within the transaction
		return txStore.Create(ctx, user)
	})

	if err != nil {
		if store.IsDuplicateError(err) {
			s.logger.Debug("attempted to create user with existing name",
				"name", name)
		} else {
			s.logger.Error("failed to save user to database",
				"error", err,
				"name", name)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user created successfully",
		"user_id", user.ID,
		"name", user.Name)

	return user, nil
}
