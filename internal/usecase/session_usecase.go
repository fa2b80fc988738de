// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"cryptopress/internal/domain/entity"
)

// RegisterInput carries a registration request. Tags drive both request
// binding and validation at the delivery layer.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=4"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// AuthenticateInput carries a login request.
type AuthenticateInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserView is the outward shape of a user. The password hash is never part of it.
type UserView struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// NewUserView maps a domain user to its outward shape.
func NewUserView(user *entity.User) *UserView {
	if user == nil {
		return nil
	}

	return &UserView{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

// AuthOutput is the result of any operation that issues a token pair.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *UserView
}

// SessionOrchestrator owns the credential and token lifecycle end to end:
// registration, authentication, refresh, logout, and the expiry sweep.
// Every path that issues a new pair first revokes all prior valid tokens for
// the account, so at most one pair is valid per user at any time.
type SessionOrchestrator interface {
	// Register creates a new account and issues its first token pair.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Authenticate verifies email+password and rotates the account's tokens.
	Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthOutput, error)

	// Refresh exchanges a valid refresh token (presented as a Bearer
	// Authorization header) for a fresh pair, revoking everything prior.
	Refresh(ctx context.Context, authHeader string) (*AuthOutput, error)

	// Logout invalidates the presented token. Missing headers and unknown
	// tokens succeed silently; logout is idempotent.
	Logout(ctx context.Context, authHeader string) error

	// SweepExpiredTokens flags every ledger row whose recorded expiry has
	// passed. Returns the number of rows touched.
	SweepExpiredTokens(ctx context.Context) (int64, error)
}
