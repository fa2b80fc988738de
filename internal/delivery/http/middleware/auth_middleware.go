package middleware

import (
	"slices"
	"strings"

	deliverycontext "cryptopress/internal/delivery/context"
	"cryptopress/internal/delivery/http/response"
	"cryptopress/internal/domain/entity"
	"cryptopress/internal/domain/repository"
	"cryptopress/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards routes with bearer access tokens. A token passes
// only when the signature verifies, the account exists and is active, and
// the ledger row is still unexpired and unrevoked; a verified signature
// alone is not enough.
type AuthMiddleware struct {
	codec  service.TokenCodec
	users  repository.UserRepository
	tokens repository.TokenRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(
	codec service.TokenCodec,
	users repository.UserRepository,
	tokens repository.TokenRepository,
) *AuthMiddleware {
	return &AuthMiddleware{codec: codec, users: users, tokens: tokens}
}

// Authenticate validates the bearer access token and stores the caller
// identity on the request context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_AUTH_HEADER", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || strings.TrimSpace(tokenString) == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.codec.Decode(tokenString)
		if err != nil || claims.Subject == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or malformed token")
		}

		// Refresh tokens only buy new pairs, they never pass the guard.
		if claims.Kind != entity.TokenKindAccess {
			return response.Unauthorized(c, "WRONG_TOKEN_KIND", "Access token required")
		}

		ctx := c.Request().Context()

		user, err := m.users.FindByEmail(ctx, claims.Subject)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		// Deactivated accounts fail the guard even with a verifiable token.
		if !user.Active {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		if err := m.codec.Verify(tokenString, user.Email); err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		// The ledger is the source of truth: a signed token whose row is
		// missing or flagged has been revoked.
		row, err := m.tokens.FindByValue(ctx, tokenString)
		if err != nil || !row.Valid() {
			return response.Unauthorized(c, "TOKEN_REVOKED", "Token has been revoked")
		}

		identity := &deliverycontext.Identity{User: user, Token: tokenString}
		c.SetRequest(c.Request().WithContext(deliverycontext.WithIdentity(ctx, identity)))

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the caller has a
// specific role. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := deliverycontext.GetIdentity(c.Request().Context())
			if identity == nil || identity.User == nil {
				return response.Forbidden(c, "PERMISSION_DENIED", "Permission denied: caller identity missing")
			}

			if !slices.Contains(identity.User.Roles.ToStrings(), requiredRole) {
				return response.Forbidden(c, "PERMISSION_DENIED", "Permission denied: require '"+requiredRole+"' role")
			}

			return next(c)
		}
	}
}
