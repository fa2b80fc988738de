// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"encoding/base64"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"cryptopress/config"
	"cryptopress/internal/domain/entity"
	domainerrors "cryptopress/internal/domain/errors"
	"cryptopress/internal/domain/service"
)

const (
	// refreshTypeMarker is the value of the "typ" claim that identifies a
	// refresh token, so one presented where an access token is expected (or
	// vice versa) is detectable before any ledger lookup.
	refreshTypeMarker = "refresh_token"

	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// jwtCodec is a concrete implementation of the TokenCodec interface using
// HS256-signed JWTs over a single symmetric key.
type jwtCodec struct {
	key        []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTCodec is the constructor for jwtCodec. The configured secret is
// base64url-encoded; token lifetimes fall back to 15m/7d when unset.
func NewJWTCodec(cfg *config.Config) (service.TokenCodec, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	key, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(cfg.JWT.Secret, "="))
	if err != nil {
		return nil, errors.Wrap(err, "jwt secret is not valid base64url")
	}

	accessTTL := cfg.JWT.AccessTTL
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	refreshTTL := cfg.JWT.RefreshTTL
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}

	return &jwtCodec{
		key:        key,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// IssueAccessToken signs a short-lived token embedding the subject and roles.
func (c *jwtCodec) IssueAccessToken(subject string, roles []string) (*service.IssuedToken, error) {
	now := time.Now()
	expiresAt := now.Add(c.accessTTL)

	claims := jwt.MapClaims{
		"sub":   subject,
		"roles": roles,
		"iat":   now.Unix(),
		"exp":   expiresAt.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	return &service.IssuedToken{Value: signed, ExpiresAt: expiresAt}, nil
}

// IssueRefreshToken signs a long-lived token carrying the refresh-kind marker.
// The jti claim makes two tokens issued for the same subject in the same
// second distinct, which the ledger's uniqueness constraint relies on.
func (c *jwtCodec) IssueRefreshToken(subject string) (*service.IssuedToken, error) {
	now := time.Now()
	expiresAt := now.Add(c.refreshTTL)

	claims := jwt.MapClaims{
		"sub": subject,
		"typ": refreshTypeMarker,
		"jti": uuid.New().String(),
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign refresh token")
	}

	return &service.IssuedToken{Value: signed, ExpiresAt: expiresAt}, nil
}

// Verify fails closed: signature, expiry and subject must all check out.
func (c *jwtCodec) Verify(token string, expectedSubject string) error {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return c.key, nil
	})
	if err != nil {
		return mapJWTError(err)
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil || subject == "" || subject != expectedSubject {
		return domainerrors.ErrInvalidToken.WrapMessage("token subject mismatch")
	}

	return nil
}

// Decode extracts claims without enforcing signature or expiry.
func (c *jwtCodec) Decode(token string) (*service.Claims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, domainerrors.ErrMalformedToken.WrapMessage(err.Error())
	}

	out := &service.Claims{Kind: entity.TokenKindAccess}

	if subject, err := claims.GetSubject(); err == nil {
		out.Subject = subject
	}
	if typ, ok := claims["typ"].(string); ok && typ == refreshTypeMarker {
		out.Kind = entity.TokenKindRefresh
	}
	if rolesClaim, ok := claims["roles"].([]any); ok {
		for _, r := range rolesClaim {
			if role, ok := r.(string); ok {
				out.Roles = append(out.Roles, role)
			}
		}
	}
	if issuedAt, err := claims.GetIssuedAt(); err == nil && issuedAt != nil {
		out.IssuedAt = issuedAt.Time
	}
	if expiresAt, err := claims.GetExpirationTime(); err == nil && expiresAt != nil {
		out.ExpiresAt = expiresAt.Time
	}

	return out, nil
}

// mapJWTError translates jwt/v5 sentinel errors into the distinct taxonomy
// kinds the orchestrator reacts to.
func mapJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return domainerrors.ErrTokenExpired.WrapMessage(err.Error())
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
		return domainerrors.ErrSignatureInvalid.WrapMessage(err.Error())
	case errors.Is(err, jwt.ErrTokenMalformed):
		return domainerrors.ErrMalformedToken.WrapMessage(err.Error())
	default:
		return domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}
}
