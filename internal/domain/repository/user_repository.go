// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"nestly/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when no user matches
// the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete
// implementation.
type UserRepository interface {
	// FindByNameAndEmail retrieves the single user matching both username
	// and email exactly. Returns ErrUserNotFound when no record matches.
	FindByNameAndEmail(ctx context.Context, username, email string) (*entity.User, error)

	// Create persists a new user record and fills in the store-assigned ID.
	// Uniqueness of (username, email) is NOT enforced at this layer; the
	// caller must have checked beforehand.
	Create(ctx context.Context, user *entity.User) error
}
