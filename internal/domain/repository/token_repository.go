// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"cryptopress/internal/domain/entity"
)

// ErrTokenNotFound is returned when a ledger lookup finds no matching row.
var ErrTokenNotFound = errors.New("token not found")

// TokenRepository is the token ledger contract: durable bookkeeping of every
// issued token and its validity flags. Pure persistence; the only business
// rule it owns is uniqueness of the token value.
type TokenRepository interface {
	// Create inserts a new ledger row with both validity flags false.
	// A uniqueness violation on the token value is surfaced, not swallowed.
	Create(ctx context.Context, token *entity.Token) error

	// FindByValue retrieves a ledger row by the signed token string.
	FindByValue(ctx context.Context, value string) (*entity.Token, error)

	// FindValidByUserID retrieves every row for the user with both
	// expired=false and revoked=false.
	FindValidByUserID(ctx context.Context, userID int64) ([]*entity.Token, error)

	// RevokeAll sets both flags true on every row in the batch and persists
	// them together. Flags are monotonic: rows are never un-revoked.
	RevokeAll(ctx context.Context, tokens []*entity.Token) error

	// Revoke sets both flags true on a single row (the logout path).
	Revoke(ctx context.Context, token *entity.Token) error

	// MarkExpiredBefore flags every still-valid row whose recorded expiry
	// precedes the cutoff. Periodic cleanup; returns the number of rows touched.
	MarkExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
