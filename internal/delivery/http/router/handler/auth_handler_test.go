package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "cryptopress/internal/delivery/context"
	"cryptopress/internal/delivery/http/validator"
	"cryptopress/internal/domain/entity"
	domainerrors "cryptopress/internal/domain/errors"
	mockUsecase "cryptopress/internal/mocks/usecase"
	"cryptopress/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthHandlerFixture(t *testing.T) (*AuthHandler, *mockUsecase.MockSessionOrchestrator) {
	t.Helper()

	orchestrator := mockUsecase.NewMockSessionOrchestrator(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAuthHandler(orchestrator, logger), orchestrator
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func testAuthOutput() *usecase.AuthOutput {
	return &usecase.AuthOutput{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		User: &usecase.UserView{
			ID:       42,
			Username: "alice",
			Email:    "alice@example.com",
		},
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	handler, orchestrator := newAuthHandlerFixture(t)

	orchestrator.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "secret-password",
		}).
		Return(testAuthOutput(), nil).
		Once()

	c, rec := newJSONContext(http.MethodPost, "/auth/registration",
		`{"username":"alice","email":"alice@example.com","password":"secret-password"}`)

	require.NoError(t, handler.Register(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"accessToken":"access-token"`)
	assert.Contains(t, body, `"refreshToken":"refresh-token"`)
	assert.Contains(t, body, `"username":"alice"`)
	assert.NotContains(t, body, "password")
}

func TestAuthHandler_Register_BindingError(t *testing.T) {
	handler, _ := newAuthHandlerFixture(t)

	c, rec := newJSONContext(http.MethodPost, "/auth/registration", `{"username":`)

	require.NoError(t, handler.Register(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestAuthHandler_Register_ValidationError(t *testing.T) {
	handler, _ := newAuthHandlerFixture(t)

	// Username too short and password missing.
	c, _ := newJSONContext(http.MethodPost, "/auth/registration",
		`{"username":"al","email":"alice@example.com"}`)

	err := handler.Register(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthHandler_Authenticate_Success(t *testing.T) {
	handler, orchestrator := newAuthHandlerFixture(t)

	orchestrator.EXPECT().
		Authenticate(mock.Anything, &usecase.AuthenticateInput{
			Email:    "alice@example.com",
			Password: "secret-password",
		}).
		Return(testAuthOutput(), nil).
		Once()

	c, rec := newJSONContext(http.MethodPost, "/auth/authenticate",
		`{"email":"alice@example.com","password":"secret-password"}`)

	require.NoError(t, handler.Authenticate(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"accessToken":"access-token"`)
}

func TestAuthHandler_Authenticate_InvalidCredentials(t *testing.T) {
	handler, orchestrator := newAuthHandlerFixture(t)

	orchestrator.EXPECT().
		Authenticate(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials).
		Once()

	c, _ := newJSONContext(http.MethodPost, "/auth/authenticate",
		`{"email":"alice@example.com","password":"wrong-password"}`)

	err := handler.Authenticate(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthHandler_RefreshToken_ForwardsHeader(t *testing.T) {
	handler, orchestrator := newAuthHandlerFixture(t)

	orchestrator.EXPECT().
		Refresh(mock.Anything, "Bearer refresh-token").
		Return(testAuthOutput(), nil).
		Once()

	c, rec := newJSONContext(http.MethodPost, "/auth/refresh-token", "")
	c.Request().Header.Set("Authorization", "Bearer refresh-token")

	require.NoError(t, handler.RefreshToken(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"refreshToken":"refresh-token"`)
}

func TestAuthHandler_Logout_Success(t *testing.T) {
	handler, orchestrator := newAuthHandlerFixture(t)

	orchestrator.EXPECT().
		Logout(mock.Anything, "Bearer access-token").
		Return(nil).
		Once()

	c, rec := newJSONContext(http.MethodPost, "/auth/logout", "")
	c.Request().Header.Set("Authorization", "Bearer access-token")

	require.NoError(t, handler.Logout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"success":true`)
	assert.NotContains(t, body, "accessToken")
}

func TestAuthHandler_Me(t *testing.T) {
	handler, _ := newAuthHandlerFixture(t)

	c, rec := newJSONContext(http.MethodGet, "/users/me", "")
	identity := &deliverycontext.Identity{
		User: &entity.User{
			ID:       42,
			Username: "alice",
			Email:    "alice@example.com",
			Roles:    entity.Roles{entity.RoleUser},
		},
		Token: "access-token",
	}
	c.SetRequest(c.Request().WithContext(deliverycontext.WithIdentity(c.Request().Context(), identity)))

	require.NoError(t, handler.Me(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"alice@example.com"`)
	assert.NotContains(t, rec.Body.String(), "PasswordHash")
}

func TestAuthHandler_Me_WithoutIdentity(t *testing.T) {
	handler, _ := newAuthHandlerFixture(t)

	c, rec := newJSONContext(http.MethodGet, "/users/me", "")

	require.NoError(t, handler.Me(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	c, rec := newJSONContext(http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
