package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"cryptopress/internal/domain/entity"
	domainerrors "cryptopress/internal/domain/errors"
	"cryptopress/internal/domain/repository"
	"cryptopress/internal/domain/service"
	"cryptopress/internal/errors"
	mockRepo "cryptopress/internal/mocks/repository"
	mockService "cryptopress/internal/mocks/service"
	"cryptopress/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	txManager *mockRepo.MockTransactionManager
	users     *mockRepo.MockUserRepository
	tokens    *mockRepo.MockTokenRepository
	codec     *mockService.MockTokenCodec
	hasher    *mockService.MockPasswordHasher
	publisher *mockService.MockEventPublisher

	orchestrator usecase.SessionOrchestrator
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()

	f := &sessionFixture{
		txManager: mockRepo.NewMockTransactionManager(t),
		users:     mockRepo.NewMockUserRepository(t),
		tokens:    mockRepo.NewMockTokenRepository(t),
		codec:     mockService.NewMockTokenCodec(t),
		hasher:    mockService.NewMockPasswordHasher(t),
		publisher: mockService.NewMockEventPublisher(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.orchestrator = NewSessionOrchestrator(
		f.txManager, f.users, f.tokens, f.codec, f.hasher, f.publisher, logger,
	)

	return f
}

func testUser() *entity.User {
	return &entity.User{
		ID:           42,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
		Roles:        entity.Roles{entity.RoleUser},
		Active:       true,
		CreatedAt:    time.Now(),
	}
}

func issued(value string) *service.IssuedToken {
	return &service.IssuedToken{Value: value, ExpiresAt: time.Now().Add(time.Hour)}
}

func expectIssuePair(f *sessionFixture, tokenRepo *mockRepo.MockTokenRepository, user *entity.User, access, refresh string) {
	f.codec.EXPECT().IssueAccessToken(user.Email, []string{"ROLE_USER"}).Return(issued(access), nil)
	f.codec.EXPECT().IssueRefreshToken(user.Email).Return(issued(refresh), nil)
	tokenRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Token")).Return(nil).Twice()
}

func TestSessionService_Register_Success(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{Username: "alice", Email: "alice@example.com", Password: "password123"}
	f.hasher.EXPECT().Hash("password123").Return("$2a$10$hash", nil)

	var afterCommit func(context.Context)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryTx) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryTx) error) {
			tx := mockRepo.NewMockRepositoryTx(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			tokenRepo := mockRepo.NewMockTokenRepository(t)

			tx.EXPECT().Users().Return(userRepo)
			tx.EXPECT().Tokens().Return(tokenRepo)
			tx.EXPECT().AfterCommit(mock.AnythingOfType("func(context.Context)")).Run(func(fn func(ctx context.Context)) {
				afterCommit = fn
			})

			userRepo.EXPECT().ExistsByEmail(ctx, "alice@example.com").Return(false, nil)
			userRepo.EXPECT().ExistsByUsername(ctx, "alice").Return(false, nil)
			userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = 42
					user.CreatedAt = time.Now()
				}).
				Return(nil)

			f.codec.EXPECT().IssueAccessToken("alice@example.com", []string{"ROLE_USER"}).Return(issued("access-1"), nil)
			f.codec.EXPECT().IssueRefreshToken("alice@example.com").Return(issued("refresh-1"), nil)
			tokenRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Token")).Return(nil).Twice()

			require.NoError(t, fn(tx))
		}).
		Return(nil)

	output, err := f.orchestrator.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access-1", output.AccessToken)
	assert.Equal(t, "refresh-1", output.RefreshToken)
	require.NotNil(t, output.User)
	assert.Equal(t, int64(42), output.User.ID)
	assert.Equal(t, "alice", output.User.Username)

	// The registration event fires only through the after-commit hook.
	require.NotNil(t, afterCommit)
	f.publisher.EXPECT().
		PublishUserRegistered(mock.Anything, mock.AnythingOfType("*service.UserRegisteredEvent")).
		Run(func(ctx context.Context, event *service.UserRegisteredEvent) {
			assert.Equal(t, int64(42), event.UserID)
			assert.Equal(t, "alice@example.com", event.Email)
		}).
		Return(nil)
	afterCommit(context.Background())
}

func TestSessionService_Register_DuplicateEmail(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.hasher.EXPECT().Hash("password123").Return("$2a$10$hash", nil)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryTx) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryTx) error) error {
			tx := mockRepo.NewMockRepositoryTx(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			tx.EXPECT().Users().Return(userRepo)
			userRepo.EXPECT().ExistsByEmail(ctx, "alice@example.com").Return(true, nil)

			return fn(tx)
		})

	input := &usecase.RegisterInput{Username: "alice", Email: "alice@example.com", Password: "password123"}
	output, err := f.orchestrator.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))
}

func TestSessionService_Register_DuplicateUsername(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.hasher.EXPECT().Hash("password123").Return("$2a$10$hash", nil)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryTx) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryTx) error) error {
			tx := mockRepo.NewMockRepositoryTx(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			tx.EXPECT().Users().Return(userRepo)
			userRepo.EXPECT().ExistsByEmail(ctx, "alice@example.com").Return(false, nil)
			userRepo.EXPECT().ExistsByUsername(ctx, "alice").Return(true, nil)

			return fn(tx)
		})

	input := &usecase.RegisterInput{Username: "alice", Email: "alice@example.com", Password: "password123"}
	output, err := f.orchestrator.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateUsername))
}

func expectRotation(t *testing.T, f *sessionFixture, ctx context.Context, user *entity.User, prior []*entity.Token, access, refresh string) {
	t.Helper()

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryTx) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryTx) error) error {
			tx := mockRepo.NewMockRepositoryTx(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			tokenRepo := mockRepo.NewMockTokenRepository(t)

			tx.EXPECT().Users().Return(userRepo)
			tx.EXPECT().Tokens().Return(tokenRepo)

			userRepo.EXPECT().LockForUpdate(ctx, user.ID).Return(nil)
			tokenRepo.EXPECT().FindValidByUserID(ctx, user.ID).Return(prior, nil)
			tokenRepo.EXPECT().RevokeAll(ctx, prior).Run(func(ctx context.Context, tokens []*entity.Token) {
				for _, token := range tokens {
					token.Expired = true
					token.Revoked = true
				}
			}).Return(nil)

			expectIssuePair(f, tokenRepo, user, access, refresh)

			return fn(tx)
		})
}

func TestSessionService_Authenticate_Success(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	user := testUser()

	prior := []*entity.Token{
		{ID: 1, UserID: user.ID, Value: "old-access", Kind: entity.TokenKindAccess},
		{ID: 2, UserID: user.ID, Value: "old-refresh", Kind: entity.TokenKindRefresh},
	}

	f.users.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	f.hasher.EXPECT().Check("password123", user.PasswordHash).Return(true)
	expectRotation(t, f, ctx, user, prior, "access-2", "refresh-2")

	output, err := f.orchestrator.Authenticate(ctx, &usecase.AuthenticateInput{
		Email:    user.Email,
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-2", output.AccessToken)
	assert.Equal(t, "refresh-2", output.RefreshToken)

	// Old pair flipped: validity flags never go back.
	for _, token := range prior {
		assert.False(t, token.Valid())
	}
}

func TestSessionService_Authenticate_UnknownEmail(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.users.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	output, err := f.orchestrator.Authenticate(ctx, &usecase.AuthenticateInput{
		Email:    "ghost@example.com",
		Password: "password123",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestSessionService_Authenticate_DeactivatedAccount(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	user := testUser()
	user.Active = false
	f.users.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)

	output, err := f.orchestrator.Authenticate(ctx, &usecase.AuthenticateInput{
		Email:    "alice@example.com",
		Password: "password123",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	f.hasher.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
}

func TestSessionService_Authenticate_WrongPassword(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	user := testUser()

	f.users.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	f.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

	output, err := f.orchestrator.Authenticate(ctx, &usecase.AuthenticateInput{
		Email:    user.Email,
		Password: "wrong",
	})

	assert.Nil(t, output)
	// Same failure as unknown email; callers cannot tell the two apart.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func refreshClaims(subject string) *service.Claims {
	return &service.Claims{
		Subject:   subject,
		Kind:      entity.TokenKindRefresh,
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestSessionService_Refresh_Success(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	user := testUser()

	f.codec.EXPECT().Decode("refresh-1").Return(refreshClaims(user.Email), nil)
	f.users.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	f.codec.EXPECT().Verify("refresh-1", user.Email).Return(nil)
	f.tokens.EXPECT().FindByValue(ctx, "refresh-1").Return(&entity.Token{
		ID: 7, UserID: user.ID, Value: "refresh-1", Kind: entity.TokenKindRefresh,
	}, nil)
	expectRotation(t, f, ctx, user, nil, "access-3", "refresh-3")

	output, err := f.orchestrator.Refresh(ctx, "Bearer refresh-1")

	require.NoError(t, err)
	assert.Equal(t, "access-3", output.AccessToken)
	assert.Equal(t, "refresh-3", output.RefreshToken)
	require.NotNil(t, output.User)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestSessionService_Refresh_MissingHeader(t *testing.T) {
	f := newSessionFixture(t)

	for _, header := range []string{"", "Token abc", "Bearer ", "Bearer"} {
		output, err := f.orchestrator.Refresh(context.Background(), header)

		assert.Nil(t, output)
		assert.True(t, errors.Is(err, domainerrors.ErrMissingAuthHeader), "header %q", header)
	}
}

func TestSessionService_Refresh_AccessTokenRejected(t *testing.T) {
	f := newSessionFixture(t)

	f.codec.EXPECT().Decode("access-1").Return(&service.Claims{
		Subject: "alice@example.com",
		Kind:    entity.TokenKindAccess,
		Roles:   []string{"ROLE_USER"},
	}, nil)

	output, err := f.orchestrator.Refresh(context.Background(), "Bearer access-1")

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrWrongTokenKind))
}

func TestSessionService_Refresh_EmptySubject(t *testing.T) {
	f := newSessionFixture(t)

	f.codec.EXPECT().Decode("refresh-1").Return(&service.Claims{Kind: entity.TokenKindRefresh}, nil)

	output, err := f.orchestrator.Refresh(context.Background(), "Bearer refresh-1")

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestSessionService_Refresh_RevokedToken(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	user := testUser()

	f.codec.EXPECT().Decode("refresh-1").Return(refreshClaims(user.Email), nil)
	f.users.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	f.codec.EXPECT().Verify("refresh-1", user.Email).Return(nil)
	f.tokens.EXPECT().FindByValue(ctx, "refresh-1").Return(&entity.Token{
		ID: 7, UserID: user.ID, Value: "refresh-1", Kind: entity.TokenKindRefresh,
		Expired: true, Revoked: true,
	}, nil)

	output, err := f.orchestrator.Refresh(ctx, "Bearer refresh-1")

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenRevoked))
}

func TestSessionService_Refresh_UnrecordedToken(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	user := testUser()

	f.codec.EXPECT().Decode("refresh-1").Return(refreshClaims(user.Email), nil)
	f.users.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	f.codec.EXPECT().Verify("refresh-1", user.Email).Return(nil)
	f.tokens.EXPECT().FindByValue(ctx, "refresh-1").Return(nil, repository.ErrTokenNotFound)

	output, err := f.orchestrator.Refresh(ctx, "Bearer refresh-1")

	assert.Nil(t, output)
	// A verified signature is not enough once the ledger row is gone.
	assert.True(t, errors.Is(err, domainerrors.ErrTokenRevoked))
}

func TestSessionService_Refresh_UnknownSubject(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.codec.EXPECT().Decode("refresh-1").Return(refreshClaims("ghost@example.com"), nil)
	f.users.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	output, err := f.orchestrator.Refresh(ctx, "Bearer refresh-1")

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestSessionService_Refresh_DeactivatedAccount(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	user := testUser()
	user.Active = false
	f.codec.EXPECT().Decode("refresh-1").Return(refreshClaims("alice@example.com"), nil)
	f.users.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)

	output, err := f.orchestrator.Refresh(ctx, "Bearer refresh-1")

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	f.codec.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestSessionService_Refresh_ExpiredSignature(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	user := testUser()

	f.codec.EXPECT().Decode("refresh-1").Return(refreshClaims(user.Email), nil)
	f.users.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	f.codec.EXPECT().Verify("refresh-1", user.Email).
		Return(domainerrors.ErrTokenExpired.WrapMessage("token is expired"))

	output, err := f.orchestrator.Refresh(ctx, "Bearer refresh-1")

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestSessionService_Logout_Success(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	row := &entity.Token{ID: 9, UserID: 42, Value: "access-1", Kind: entity.TokenKindAccess}
	f.tokens.EXPECT().FindByValue(ctx, "access-1").Return(row, nil)
	f.tokens.EXPECT().Revoke(ctx, row).Run(func(ctx context.Context, token *entity.Token) {
		token.Expired = true
		token.Revoked = true
	}).Return(nil)

	require.NoError(t, f.orchestrator.Logout(ctx, "Bearer access-1"))
	assert.False(t, row.Valid())
}

func TestSessionService_Logout_Idempotent(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	// Missing header, malformed header, unknown token: all silent successes.
	require.NoError(t, f.orchestrator.Logout(ctx, ""))
	require.NoError(t, f.orchestrator.Logout(ctx, "Basic abc"))

	f.tokens.EXPECT().FindByValue(ctx, "gone").Return(nil, repository.ErrTokenNotFound)
	require.NoError(t, f.orchestrator.Logout(ctx, "Bearer gone"))
}

func TestSessionService_SweepExpiredTokens(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.tokens.EXPECT().MarkExpiredBefore(ctx, mock.AnythingOfType("time.Time")).Return(int64(3), nil)

	count, err := f.orchestrator.SweepExpiredTokens(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
