package service_test

import (
	"context"
	"testing"

	"github.com/krongr/adboard/internal/domain"
	"github.com/krongr/adboard/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestUserService_CreateUserRejectsInvalidInput(t *testing.T) {
	// Validation failures must surface before any store session is opened,
	// which is why a nil *sql.DB is safe here.
	userService := service.NewUserService(&MockUserStore{}, nil, testLogger())

	_, err := userService.CreateUser(context.Background(), "", "secret")
	assert.ErrorIs(t, err, domain.ErrEmptyUserName)

	_, err = userService.CreateUser(context.Background(), "alice", "")
	assert.ErrorIs(t, err, domain.ErrEmptyUserPassword)
}
