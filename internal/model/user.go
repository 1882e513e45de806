package model

import "time"

// Roles carried in access tokens.
const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

// User mirrors the 'users' table.
type User struct {
	ID           uint64
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
