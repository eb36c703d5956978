package store_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/krongr/adboard/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestEntitySpecificErrorsWrapGenericOnes(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, store.ErrUserNotFound, store.ErrNotFound)
	assert.ErrorIs(t, store.ErrAdNotFound, store.ErrNotFound)
	assert.ErrorIs(t, store.ErrNameExists, store.ErrDuplicate)
}

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	assert.True(t, store.IsNotFoundError(store.ErrNotFound))
	assert.True(t, store.IsNotFoundError(store.ErrUserNotFound))
	assert.True(t, store.IsNotFoundError(store.ErrAdNotFound))
	assert.True(t, store.IsNotFoundError(fmt.Errorf("lookup: %w", store.ErrAdNotFound)))
	assert.False(t, store.IsNotFoundError(store.ErrDuplicate))
	assert.False(t, store.IsNotFoundError(errors.New("something else")))
}

func TestIsDuplicateError(t *testing.T) {
	t.Parallel()

	assert.True(t, store.IsDuplicateError(store.ErrDuplicate))
	assert.True(t, store.IsDuplicateError(store.ErrNameExists))
	assert.False(t, store.IsDuplicateError(store.ErrNotFound))
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	inner := errors.New("boom")
	err := store.NewStoreError("ad", "create", "insert failed", inner)

	assert.Contains(t, err.Error(), "create operation on ad failed")
	assert.Contains(t, err.Error(), "insert failed")
	assert.ErrorIs(t, err, inner)

	withoutInner := store.NewStoreError("user", "get", "bad id", nil)
	assert.Equal(t, "get operation on user failed: bad id", withoutInner.Error())
}
