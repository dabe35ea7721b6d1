// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"nestly/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput defines the data required to log in. The same username+email
// pair used at signup must be supplied; lookup matches both fields.
type LoginInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --- Output DTOs ---

// RegisterOutput returns the stored user record, including the password hash,
// exactly as persisted.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the issued bearer token and the stored role id.
type LoginOutput struct {
	Token  string
	RoleID entity.RoleID
}

// AccountUsecase defines the interface for registration and authentication.
// This is the contract the delivery layer depends on.
//
// Register fails with domainerrors.ErrAccountExists when the (username,
// email) pair is taken and domainerrors.ErrPasswordTooShort when the password
// has fewer than five characters; no record is created in either case.
// Login fails with domainerrors.ErrInvalidCredentials for an unknown pair or
// a password mismatch.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
