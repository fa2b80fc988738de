package auth

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptopress/config"
	"cryptopress/internal/domain/entity"
	domainerrors "cryptopress/internal/domain/errors"
	"cryptopress/internal/domain/service"
	"cryptopress/internal/errors"
)

func newTestCodec(t *testing.T, accessTTL, refreshTTL time.Duration) service.TokenCodec {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = base64.RawURLEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
	cfg.JWT.AccessTTL = accessTTL
	cfg.JWT.RefreshTTL = refreshTTL

	codec, err := NewJWTCodec(cfg)
	require.NoError(t, err)

	return codec
}

func TestNewJWTCodec_InvalidSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "not base64url!!"

	_, err := NewJWTCodec(cfg)
	assert.Error(t, err)

	cfg.JWT.Secret = ""
	_, err = NewJWTCodec(cfg)
	assert.Error(t, err)
}

func TestJWTCodec_AccessTokenRoundTrip(t *testing.T) {
	codec := newTestCodec(t, time.Minute, time.Hour)

	issued, err := codec.IssueAccessToken("alice@example.com", []string{"ROLE_USER"})
	require.NoError(t, err)
	require.NotEmpty(t, issued.Value)
	assert.WithinDuration(t, time.Now().Add(time.Minute), issued.ExpiresAt, 5*time.Second)

	require.NoError(t, codec.Verify(issued.Value, "alice@example.com"))

	claims, err := codec.Decode(issued.Value)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Subject)
	assert.Equal(t, entity.TokenKindAccess, claims.Kind)
	assert.Equal(t, []string{"ROLE_USER"}, claims.Roles)
	assert.WithinDuration(t, issued.ExpiresAt, claims.ExpiresAt, time.Second)
}

func TestJWTCodec_RefreshTokenCarriesKindMarker(t *testing.T) {
	codec := newTestCodec(t, time.Minute, time.Hour)

	issued, err := codec.IssueRefreshToken("alice@example.com")
	require.NoError(t, err)

	claims, err := codec.Decode(issued.Value)
	require.NoError(t, err)
	assert.Equal(t, entity.TokenKindRefresh, claims.Kind)
	assert.Equal(t, "alice@example.com", claims.Subject)
	assert.Empty(t, claims.Roles)
}

func TestJWTCodec_RefreshTokensAreUnique(t *testing.T) {
	codec := newTestCodec(t, time.Minute, time.Hour)

	first, err := codec.IssueRefreshToken("alice@example.com")
	require.NoError(t, err)
	second, err := codec.IssueRefreshToken("alice@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, first.Value, second.Value)
}

func TestJWTCodec_VerifySubjectMismatch(t *testing.T) {
	codec := newTestCodec(t, time.Minute, time.Hour)

	issued, err := codec.IssueAccessToken("alice@example.com", nil)
	require.NoError(t, err)

	err = codec.Verify(issued.Value, "mallory@example.com")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTCodec_VerifyExpired(t *testing.T) {
	codec := newTestCodec(t, -time.Minute, time.Hour)

	issued, err := codec.IssueAccessToken("alice@example.com", nil)
	require.NoError(t, err)

	err = codec.Verify(issued.Value, "alice@example.com")
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestJWTCodec_VerifyWrongKey(t *testing.T) {
	codec := newTestCodec(t, time.Minute, time.Hour)

	otherCfg := &config.Config{}
	otherCfg.JWT.Secret = base64.RawURLEncoding.EncodeToString([]byte("ffffffffffffffffffffffffffffffff"))
	other, err := NewJWTCodec(otherCfg)
	require.NoError(t, err)

	issued, err := other.IssueAccessToken("alice@example.com", nil)
	require.NoError(t, err)

	err = codec.Verify(issued.Value, "alice@example.com")
	assert.True(t, errors.Is(err, domainerrors.ErrSignatureInvalid))
}

func TestJWTCodec_VerifyMalformed(t *testing.T) {
	codec := newTestCodec(t, time.Minute, time.Hour)

	err := codec.Verify("definitely.not.a.jwt", "alice@example.com")
	assert.True(t, errors.Is(err, domainerrors.ErrMalformedToken))

	_, err = codec.Decode("garbage")
	assert.True(t, errors.Is(err, domainerrors.ErrMalformedToken))
}
