package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/cinema-box-office/internal/model"
	"github.com/iliyamo/cinema-box-office/internal/repository"
	"github.com/iliyamo/cinema-box-office/internal/utils"
)

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()

	created, err := EnsureAdmin(ctx, store, "  Admin@Cinema.test ", "correct-horse", bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, created)

	u, err := store.GetUserByEmail(ctx, "admin@cinema.test")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, u.Role)
	assert.True(t, utils.VerifyPassword(u.PasswordHash, "correct-horse"))

	created, err = EnsureAdmin(ctx, store, "admin@cinema.test", "another-password", bcrypt.MinCost)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestEnsureAdmin_Disabled(t *testing.T) {
	created, err := EnsureAdmin(context.Background(), repository.NewMemoryStore(), "", "", bcrypt.MinCost)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestEnsureAdmin_ShortPassword(t *testing.T) {
	_, err := EnsureAdmin(context.Background(), repository.NewMemoryStore(), "admin@cinema.test", "short", bcrypt.MinCost)
	assert.Error(t, err)
}
