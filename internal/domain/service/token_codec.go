// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"time"

	"cryptopress/internal/domain/entity"
)

// Claims is the decoded payload of a signed token. Roles is populated only on
// access tokens; Kind is derived from the refresh-type marker claim.
type Claims struct {
	Subject   string
	Roles     []string
	Kind      entity.TokenKind
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IssuedToken is a freshly signed token together with the expiry the codec
// embedded, so the ledger can record it without re-decoding.
type IssuedToken struct {
	Value     string
	ExpiresAt time.Time
}

// TokenCodec signs and verifies bearer tokens. Pure function over the signing
// key: no persistence, no side effects.
type TokenCodec interface {
	// IssueAccessToken signs a short-lived token carrying the subject and role list.
	IssueAccessToken(subject string, roles []string) (*IssuedToken, error)

	// IssueRefreshToken signs a long-lived token carrying the subject and the
	// refresh-kind marker claim.
	IssueRefreshToken(subject string) (*IssuedToken, error)

	// Verify fails closed: it returns nil only if the signature verifies, the
	// token is unexpired, and the embedded subject equals expectedSubject.
	// Failures are the distinct taxonomy kinds (expired, malformed, bad
	// signature, subject mismatch), never one collapsed error.
	Verify(token string, expectedSubject string) error

	// Decode extracts claims without enforcing signature or expiry. Callers
	// that have not called Verify must treat the result as untrusted.
	Decode(token string) (*Claims, error)
}
