// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"cinelog/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new user.
type SignUpInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Age       int
}

// SignInInput defines the data required for a user to sign in.
type SignInInput struct {
	Email    string
	Password string
}

// ListUsersInput selects a page of the user listing.
type ListUsersInput struct {
	Page int
}

// --- Output DTOs ---

// SignInOutput returns the bearer token issued on a successful sign in.
type SignInOutput struct {
	Token string
}

// ListUsersOutput returns one page of users.
type ListUsersOutput struct {
	Page  int
	Users []*entity.User
}

// UserUsecase defines the interface for identity-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// SignUp registers a new account. No token is issued; the caller must
	// sign in separately.
	SignUp(ctx context.Context, input *SignUpInput) error

	// SignIn verifies credentials and issues a bearer token.
	SignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error)

	// SignOut acknowledges a sign-out. There is no server-side session
	// state to clear; issued tokens stay valid until they expire.
	SignOut(ctx context.Context) error

	// ListUsers returns a fixed-size page of registered users.
	ListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error)
}
