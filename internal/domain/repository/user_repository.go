// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"cinelog/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when an insert collides with the store's
// unique index on email. The store, not the caller, arbitrates the race
// between concurrent signups with the same email.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user and assigns its ID.
	// Returns ErrDuplicateEmail if the email is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a single user by their email address.
	// Returns ErrUserNotFound if no user has that email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List retrieves a page of users ordered by insertion.
	List(ctx context.Context, skip, limit int) ([]*entity.User, error)
}
