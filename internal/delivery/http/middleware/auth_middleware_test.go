package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "cryptopress/internal/delivery/context"
	"cryptopress/internal/domain/entity"
	domainerrors "cryptopress/internal/domain/errors"
	"cryptopress/internal/domain/repository"
	"cryptopress/internal/domain/service"
	mockRepo "cryptopress/internal/mocks/repository"
	mockService "cryptopress/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMiddlewareFixture struct {
	codec      *mockService.MockTokenCodec
	users      *mockRepo.MockUserRepository
	tokens     *mockRepo.MockTokenRepository
	middleware *AuthMiddleware
}

func newAuthMiddlewareFixture(t *testing.T) *authMiddlewareFixture {
	t.Helper()

	codec := mockService.NewMockTokenCodec(t)
	users := mockRepo.NewMockUserRepository(t)
	tokens := mockRepo.NewMockTokenRepository(t)

	return &authMiddlewareFixture{
		codec:      codec,
		users:      users,
		tokens:     tokens,
		middleware: NewAuthMiddleware(codec, users, tokens),
	}
}

func newGuardedContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func guardedUser() *entity.User {
	return &entity.User{
		ID:       42,
		Username: "alice",
		Email:    "alice@example.com",
		Roles:    entity.Roles{entity.RoleUser},
		Active:   true,
	}
}

func accessClaims() *service.Claims {
	return &service.Claims{
		Subject:   "alice@example.com",
		Roles:     []string{"ROLE_USER"},
		Kind:      entity.TokenKindAccess,
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(15 * time.Minute),
	}
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	f := newAuthMiddlewareFixture(t)

	f.codec.EXPECT().Decode("valid-token").Return(accessClaims(), nil).Once()
	f.users.EXPECT().FindByEmail(mock.Anything, "alice@example.com").Return(guardedUser(), nil).Once()
	f.codec.EXPECT().Verify("valid-token", "alice@example.com").Return(nil).Once()
	f.tokens.EXPECT().FindByValue(mock.Anything, "valid-token").
		Return(&entity.Token{Value: "valid-token", Kind: entity.TokenKindAccess}, nil).Once()

	c, _ := newGuardedContext("Bearer valid-token")

	var captured *deliverycontext.Identity
	next := func(c echo.Context) error {
		captured = deliverycontext.GetIdentity(c.Request().Context())

		return nil
	}

	require.NoError(t, f.middleware.Authenticate(next)(c))

	require.NotNil(t, captured)
	assert.Equal(t, "alice@example.com", captured.User.Email)
	assert.Equal(t, "valid-token", captured.Token)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	f := newAuthMiddlewareFixture(t)

	c, rec := newGuardedContext("")

	require.NoError(t, f.middleware.Authenticate(failNext(t))(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_AUTH_HEADER")
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	f := newAuthMiddlewareFixture(t)

	c, rec := newGuardedContext("Token abc")

	require.NoError(t, f.middleware.Authenticate(failNext(t))(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestAuthMiddleware_Authenticate_RefreshTokenRejected(t *testing.T) {
	f := newAuthMiddlewareFixture(t)

	claims := accessClaims()
	claims.Kind = entity.TokenKindRefresh
	f.codec.EXPECT().Decode("refresh-token").Return(claims, nil).Once()

	c, rec := newGuardedContext("Bearer refresh-token")

	require.NoError(t, f.middleware.Authenticate(failNext(t))(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "WRONG_TOKEN_KIND")
}

func TestAuthMiddleware_Authenticate_UnknownUser(t *testing.T) {
	f := newAuthMiddlewareFixture(t)

	f.codec.EXPECT().Decode("valid-token").Return(accessClaims(), nil).Once()
	f.users.EXPECT().FindByEmail(mock.Anything, "alice@example.com").
		Return(nil, repository.ErrUserNotFound).Once()

	c, rec := newGuardedContext("Bearer valid-token")

	require.NoError(t, f.middleware.Authenticate(failNext(t))(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_DeactivatedAccount(t *testing.T) {
	f := newAuthMiddlewareFixture(t)

	user := guardedUser()
	user.Active = false
	f.codec.EXPECT().Decode("valid-token").Return(accessClaims(), nil).Once()
	f.users.EXPECT().FindByEmail(mock.Anything, "alice@example.com").Return(user, nil).Once()

	c, rec := newGuardedContext("Bearer valid-token")

	require.NoError(t, f.middleware.Authenticate(failNext(t))(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	f.codec.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestAuthMiddleware_Authenticate_ExpiredSignature(t *testing.T) {
	f := newAuthMiddlewareFixture(t)

	f.codec.EXPECT().Decode("stale-token").Return(accessClaims(), nil).Once()
	f.users.EXPECT().FindByEmail(mock.Anything, "alice@example.com").Return(guardedUser(), nil).Once()
	f.codec.EXPECT().Verify("stale-token", "alice@example.com").
		Return(domainerrors.ErrTokenExpired).Once()

	c, rec := newGuardedContext("Bearer stale-token")

	require.NoError(t, f.middleware.Authenticate(failNext(t))(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_RevokedInLedger(t *testing.T) {
	f := newAuthMiddlewareFixture(t)

	f.codec.EXPECT().Decode("revoked-token").Return(accessClaims(), nil).Once()
	f.users.EXPECT().FindByEmail(mock.Anything, "alice@example.com").Return(guardedUser(), nil).Once()
	f.codec.EXPECT().Verify("revoked-token", "alice@example.com").Return(nil).Once()
	f.tokens.EXPECT().FindByValue(mock.Anything, "revoked-token").
		Return(&entity.Token{Value: "revoked-token", Revoked: true}, nil).Once()

	c, rec := newGuardedContext("Bearer revoked-token")

	require.NoError(t, f.middleware.Authenticate(failNext(t))(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_REVOKED")
}

func TestAuthMiddleware_Authenticate_UnrecordedToken(t *testing.T) {
	f := newAuthMiddlewareFixture(t)

	f.codec.EXPECT().Decode("ghost-token").Return(accessClaims(), nil).Once()
	f.users.EXPECT().FindByEmail(mock.Anything, "alice@example.com").Return(guardedUser(), nil).Once()
	f.codec.EXPECT().Verify("ghost-token", "alice@example.com").Return(nil).Once()
	f.tokens.EXPECT().FindByValue(mock.Anything, "ghost-token").
		Return(nil, repository.ErrTokenNotFound).Once()

	c, rec := newGuardedContext("Bearer ghost-token")

	require.NoError(t, f.middleware.Authenticate(failNext(t))(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_REVOKED")
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	f := newAuthMiddlewareFixture(t)

	c, _ := newGuardedContext("")
	identity := &deliverycontext.Identity{User: guardedUser(), Token: "valid-token"}
	c.SetRequest(c.Request().WithContext(deliverycontext.WithIdentity(c.Request().Context(), identity)))

	called := false
	next := func(c echo.Context) error {
		called = true

		return nil
	}

	require.NoError(t, f.middleware.RequireRole("ROLE_USER")(next)(c))
	assert.True(t, called)
}

func TestAuthMiddleware_RequireRole_Denied(t *testing.T) {
	f := newAuthMiddlewareFixture(t)

	c, rec := newGuardedContext("")
	identity := &deliverycontext.Identity{User: guardedUser(), Token: "valid-token"}
	c.SetRequest(c.Request().WithContext(deliverycontext.WithIdentity(c.Request().Context(), identity)))

	require.NoError(t, f.middleware.RequireRole("ROLE_ADMIN")(failNext(t))(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_RequireRole_NoIdentity(t *testing.T) {
	f := newAuthMiddlewareFixture(t)

	c, rec := newGuardedContext("")

	require.NoError(t, f.middleware.RequireRole("ROLE_USER")(failNext(t))(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// failNext is a next handler that must never run.
func failNext(t *testing.T) echo.HandlerFunc {
	return func(c echo.Context) error {
		t.Fatal("next handler should not be called")

		return nil
	}
}
