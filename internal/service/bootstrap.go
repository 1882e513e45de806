package service

import (
	"context"
	"errors"
	"log"

	"github.com/iliyamo/cinema-box-office/internal/model"
	"github.com/iliyamo/cinema-box-office/internal/repository"
	"github.com/iliyamo/cinema-box-office/internal/utils"
)

// AdminStore is the part of the user store the bootstrap needs.
type AdminStore interface {
	CreateUser(ctx context.Context, email, passwordHash, role string) (uint64, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
}

// EnsureAdmin creates the ADMIN account when no user with email exists
// yet.  It reports whether an account was created.  An empty email turns
// the bootstrap off.
func EnsureAdmin(ctx context.Context, users AdminStore, email, password string, cost int) (bool, error) {
	email = repository.NormalizeEmail(email)
	if email == "" {
		return false, nil
	}
	u, err := users.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		if u.Role != model.RoleAdmin {
			log.Printf("bootstrap: %s exists with role %s, not promoted", email, u.Role)
		}
		return false, nil
	case !errors.Is(err, repository.ErrUserNotFound):
		return false, err
	}
	if len(password) < utils.MinPasswordLength {
		return false, errors.New("bootstrap: ADMIN_PASSWORD is shorter than the minimum password length")
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return false, err
	}
	id, err := users.CreateUser(ctx, email, hash, model.RoleAdmin)
	if errors.Is(err, repository.ErrEmailExists) {
		// another instance won the race
		return false, nil
	}
	if err != nil {
		return false, err
	}
	log.Printf("bootstrap: admin %s created (id=%d)", email, id)
	return true, nil
}
