// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "cryptopress/internal/delivery/context"
	"cryptopress/internal/domain/entity"
	domainerrors "cryptopress/internal/domain/errors"
	"cryptopress/internal/domain/repository"
	"cryptopress/internal/domain/service"
	"cryptopress/internal/usecase"

	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// sessionService implements the SessionOrchestrator interface.
type sessionService struct {
	txManager repository.TransactionManager
	users     repository.UserRepository
	tokens    repository.TokenRepository
	codec     service.TokenCodec
	hasher    service.PasswordHasher
	publisher service.EventPublisher
	locks     *userLocker
	logger    *slog.Logger
}

// NewSessionOrchestrator is the constructor for sessionService.
func NewSessionOrchestrator(
	txManager repository.TransactionManager,
	users repository.UserRepository,
	tokens repository.TokenRepository,
	codec service.TokenCodec,
	hasher service.PasswordHasher,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.SessionOrchestrator {
	return &sessionService{
		txManager: txManager,
		users:     users,
		tokens:    tokens,
		codec:     codec,
		hasher:    hasher,
		publisher: publisher,
		locks:     newUserLocker(),
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account and issues its first token pair. The user
// row, both ledger rows, and the duplicate checks share one transaction; the
// registration event is published only after that transaction commits.
func (srv *sessionService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Registering user", slog.String("email", input.Email))

	// Hash outside the transaction; bcrypt is CPU-bound and must not hold
	// a database connection.
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Roles:        entity.Roles{entity.RoleUser},
		Active:       true,
	}

	var output *usecase.AuthOutput

	err = srv.txManager.Execute(ctx, func(tx repository.RepositoryTx) error {
		userRepo := tx.Users()

		emailTaken, err := userRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email")
		}
		if emailTaken {
			return domainerrors.ErrDuplicateEmail.WrapMessage(input.Email)
		}

		usernameTaken, err := userRepo.ExistsByUsername(ctx, input.Username)
		if err != nil {
			return errors.Wrap(err, "failed to check username")
		}
		if usernameTaken {
			return domainerrors.ErrDuplicateUsername.WrapMessage(input.Username)
		}

		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}

		output, err = srv.issuePair(ctx, tx.Tokens(), user)
		if err != nil {
			return err
		}

		requestID := deliverycontext.GetRequestIDFromContext(ctx)
		event := &service.UserRegisteredEvent{
			RequestID:    requestID,
			UserID:       user.ID,
			Username:     user.Username,
			Email:        user.Email,
			RegisteredAt: user.CreatedAt,
		}
		tx.AfterCommit(func(hookCtx context.Context) {
			// Event failure never propagates to the caller; the account exists.
			if err := srv.publisher.PublishUserRegistered(hookCtx, event); err != nil {
				srv.logger.Error("Failed to publish registration event",
					slog.Any("error", err),
					slog.Int64("user_id", event.UserID),
				)
			}
		})

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.Any("error", err), slog.String("email", input.Email))

		return nil, err
	}
	srv.log(ctx).Info("User registered", slog.Int64("user_id", user.ID))

	return output, nil
}

// Authenticate verifies credentials and rotates the account's tokens. Unknown
// email and wrong password produce the same error so callers cannot probe
// which accounts exist.
func (srv *sessionService) Authenticate(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Authenticating user", slog.String("email", input.Email))

	user, err := srv.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	// Deactivated accounts answer the same as bad credentials so callers
	// cannot tell the two apart.
	if !user.Active {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("account deactivated")
	}

	// Password check stays outside the transaction for the same reason as
	// hashing at registration.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	output, err := srv.rotateTokens(ctx, user)
	if err != nil {
		srv.log(ctx).Warn("Authentication failed", slog.Any("error", err), slog.Int64("user_id", user.ID))

		return nil, err
	}
	srv.log(ctx).Info("User authenticated", slog.Int64("user_id", user.ID))

	return output, nil
}

// Refresh exchanges a valid refresh token for a fresh pair. The signed token
// must verify, carry the refresh kind, and its ledger row must still have
// both validity flags clear.
func (srv *sessionService) Refresh(ctx context.Context, authHeader string) (*usecase.AuthOutput, error) {
	tokenValue, err := bearerToken(authHeader)
	if err != nil {
		return nil, err
	}

	claims, err := srv.codec.Decode(tokenValue)
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token carries no subject")
	}
	if claims.Kind != entity.TokenKindRefresh {
		return nil, domainerrors.ErrWrongTokenKind.WrapMessage("access token presented for refresh")
	}

	user, err := srv.users.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage(claims.Subject)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	// A deactivated account cannot trade its refresh token for a new pair.
	if !user.Active {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("account deactivated")
	}

	if err := srv.codec.Verify(tokenValue, user.Email); err != nil {
		return nil, err
	}

	// Signature alone is not enough: the ledger is the source of truth for
	// revocation, so a verified token whose row is gone or flagged is dead.
	ledgerRow, err := srv.tokens.FindByValue(ctx, tokenValue)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return nil, domainerrors.ErrTokenRevoked.WrapMessage("token not recorded")
		}

		return nil, errors.Wrap(err, "failed to find token")
	}
	if !ledgerRow.Valid() {
		return nil, domainerrors.ErrTokenRevoked.WrapMessage("token flagged in ledger")
	}

	output, err := srv.rotateTokens(ctx, user)
	if err != nil {
		srv.log(ctx).Warn("Refresh failed", slog.Any("error", err), slog.Int64("user_id", user.ID))

		return nil, err
	}
	srv.log(ctx).Info("Tokens refreshed", slog.Int64("user_id", user.ID))

	return output, nil
}

// Logout invalidates the presented token. Every path that cannot locate a
// ledger row is a silent success, so repeated logouts behave identically.
func (srv *sessionService) Logout(ctx context.Context, authHeader string) error {
	tokenValue, err := bearerToken(authHeader)
	if err != nil {
		srv.log(ctx).Debug("Logout without usable bearer token")

		return nil
	}

	ledgerRow, err := srv.tokens.FindByValue(ctx, tokenValue)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			srv.log(ctx).Debug("Logout for unknown token")

			return nil
		}

		return errors.Wrap(err, "failed to find token")
	}

	if err := srv.tokens.Revoke(ctx, ledgerRow); err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to revoke token")
	}
	srv.log(ctx).Info("Token revoked", slog.Int64("user_id", ledgerRow.UserID))

	return nil
}

// SweepExpiredTokens flags every ledger row whose recorded expiry has passed.
func (srv *sessionService) SweepExpiredTokens(ctx context.Context) (int64, error) {
	count, err := srv.tokens.MarkExpiredBefore(ctx, time.Now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to sweep expired tokens")
	}
	if count > 0 {
		srv.log(ctx).Info("Expired tokens swept", slog.Int64("count", count))
	}

	return count, nil
}

// rotateTokens revokes every valid ledger row for the user and records a new
// pair, all within one transaction serialized per user. The in-process lock
// plus the row lock make concurrent rotations for one account queue instead
// of interleave, so two winners can never coexist.
func (srv *sessionService) rotateTokens(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	unlock := srv.locks.Lock(user.ID)
	defer unlock()

	var output *usecase.AuthOutput

	err := srv.txManager.Execute(ctx, func(tx repository.RepositoryTx) error {
		if err := tx.Users().LockForUpdate(ctx, user.ID); err != nil {
			return errors.Wrap(err, "failed to lock user")
		}

		tokenRepo := tx.Tokens()

		valid, err := tokenRepo.FindValidByUserID(ctx, user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to load valid tokens")
		}

		// Revoke strictly before issue. A failure after this point rolls the
		// whole rotation back; old tokens are never left revoked without a
		// replacement pair.
		if err := tokenRepo.RevokeAll(ctx, valid); err != nil {
			return err
		}

		output, err = srv.issuePair(ctx, tokenRepo, user)

		return err
	})

	if err != nil {
		return nil, err
	}

	return output, nil
}

// issuePair signs a fresh access+refresh pair and records both in the ledger.
func (srv *sessionService) issuePair(ctx context.Context, tokenRepo repository.TokenRepository, user *entity.User) (*usecase.AuthOutput, error) {
	access, err := srv.codec.IssueAccessToken(user.Email, user.Roles.ToStrings())
	if err != nil {
		return nil, err
	}

	refresh, err := srv.codec.IssueRefreshToken(user.Email)
	if err != nil {
		return nil, err
	}

	records := []*entity.Token{
		{
			UserID:    user.ID,
			Value:     access.Value,
			Kind:      entity.TokenKindAccess,
			ExpiresAt: access.ExpiresAt,
		},
		{
			UserID:    user.ID,
			Value:     refresh.Value,
			Kind:      entity.TokenKindRefresh,
			ExpiresAt: refresh.ExpiresAt,
		},
	}
	for _, record := range records {
		if err := tokenRepo.Create(ctx, record); err != nil {
			return nil, err
		}
	}

	return &usecase.AuthOutput{
		AccessToken:  access.Value,
		RefreshToken: refresh.Value,
		User:         usecase.NewUserView(user),
	}, nil
}

// bearerToken extracts the raw token from an Authorization header.
func bearerToken(authHeader string) (string, error) {
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", domainerrors.ErrMissingAuthHeader.WrapMessage("expected Bearer scheme")
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
	if token == "" {
		return "", domainerrors.ErrMissingAuthHeader.WrapMessage("empty bearer token")
	}

	return token, nil
}
