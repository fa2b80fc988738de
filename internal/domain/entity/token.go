// Package entity contains the core business objects of the project.
package entity

import "time"

// TokenKind distinguishes the two bearer credentials the service issues.
type TokenKind string

const (
	// TokenKindAccess is the short-lived credential for ordinary API calls.
	TokenKindAccess TokenKind = "ACCESS"
	// TokenKindRefresh is the long-lived credential usable only to obtain
	// a new access/refresh pair.
	TokenKindRefresh TokenKind = "REFRESH"
)

// String returns the string representation of the TokenKind.
func (k TokenKind) String() string {
	return string(k)
}

// Token is a single ledger row for an issued bearer credential.
// Expired and Revoked are monotonic: once either is set true it is never
// reset, so validity only ever degrades.
type Token struct {
	ID        int64     // Opaque ledger identity.
	UserID    int64     // Owning user; many tokens to one user.
	Value     string    // The signed token string, unique across the ledger.
	Kind      TokenKind // ACCESS or REFRESH.
	Expired   bool      // Set by the revoke pass or the expiry sweep, never cleared.
	Revoked   bool      // Set by revoke-all or logout, never cleared.
	ExpiresAt time.Time // Copy of the signed expiry claim, used by the sweep.
	CreatedAt time.Time
}

// Valid reports whether the ledger still considers this token usable.
// The signed expiry claim is enforced separately by the codec.
func (t *Token) Valid() bool {
	return !t.Expired && !t.Revoked
}
