package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "cryptopress/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newErrorContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/authenticate", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestErrorMiddleware_AppError(t *testing.T) {
	m := newErrorMiddleware()
	c, rec := newErrorContext()

	m.HandleHTTPError(domainerrors.ErrInvalidCredentials, c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, rec.Body.String(), domainerrors.ErrInvalidCredentials.ErrorCode())
}

func TestErrorMiddleware_WrappedAppError(t *testing.T) {
	m := newErrorMiddleware()
	c, rec := newErrorContext()

	// AppError identity must survive pkg/errors wrapping through the layers.
	err := errors.WithStack(domainerrors.ErrTokenRevoked.WrapMessage("token not recorded"))
	m.HandleHTTPError(err, c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), domainerrors.ErrTokenRevoked.ErrorCode())
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	m := newErrorMiddleware()
	c, rec := newErrorContext()

	m.HandleHTTPError(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}

func TestErrorMiddleware_UnknownError(t *testing.T) {
	m := newErrorMiddleware()
	c, rec := newErrorContext()

	m.HandleHTTPError(errors.New("database on fire"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}
