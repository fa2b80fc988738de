// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"cryptopress/internal/domain/entity"
	domainerrors "cryptopress/internal/domain/errors"
	"cryptopress/internal/domain/repository"
	"cryptopress/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tokenRepository implements the domain.TokenRepository interface using GORM.
// It is the durable ledger of every issued token.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{db: db}
}

// Create inserts a new ledger row. Both validity flags start false.
func (repo *tokenRepository) Create(ctx context.Context, token *entity.Token) error {
	tokenM := fromTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "token value already recorded")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create token")
	}

	// Update the entity with generated values
	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindByValue retrieves a ledger row by the signed token string.
func (repo *tokenRepository) FindByValue(ctx context.Context, value string) (*entity.Token, error) {
	var tokenM model.TokenModel
	err := repo.db.WithContext(ctx).
		Where("value = ?", value).
		First(&tokenM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find token by value")
	}

	return toTokenDomain(&tokenM), nil
}

// FindValidByUserID retrieves every row for the user that is neither expired nor revoked.
func (repo *tokenRepository) FindValidByUserID(ctx context.Context, userID int64) ([]*entity.Token, error) {
	var tokenModels []model.TokenModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND expired = ? AND revoked = ?", userID, false, false).
		Order("created_at DESC").
		Find(&tokenModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find valid tokens")
	}

	tokens := make([]*entity.Token, 0, len(tokenModels))
	for i := range tokenModels {
		tokens = append(tokens, toTokenDomain(&tokenModels[i]))
	}

	return tokens, nil
}

// RevokeAll flips both flags true on every row in the batch with a single
// statement. The in-memory entities are updated to match so callers never
// observe a token going back to valid.
func (repo *tokenRepository) RevokeAll(ctx context.Context, tokens []*entity.Token) error {
	if len(tokens) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(tokens))
	for _, token := range tokens {
		ids = append(ids, token.ID)
	}

	err := repo.db.WithContext(ctx).
		Model(&model.TokenModel{}).
		Where("id IN ?", ids).
		Updates(map[string]any{"expired": true, "revoked": true}).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to revoke tokens")
	}

	for _, token := range tokens {
		token.Expired = true
		token.Revoked = true
	}

	return nil
}

// Revoke flips both flags true on a single row.
func (repo *tokenRepository) Revoke(ctx context.Context, token *entity.Token) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TokenModel{}).
		Where("id = ?", token.ID).
		Updates(map[string]any{"expired": true, "revoked": true})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to revoke token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTokenNotFound
	}

	token.Expired = true
	token.Revoked = true

	return nil
}

// MarkExpiredBefore flags every still-valid row whose recorded expiry precedes
// the cutoff. Revoked stays untouched; expiry and revocation are separate facts.
func (repo *tokenRepository) MarkExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.TokenModel{}).
		Where("expires_at < ? AND expired = ?", cutoff, false).
		Update("expired", true)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to mark expired tokens")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toTokenDomain converts a GORM TokenModel to a domain Token entity.
func toTokenDomain(data *model.TokenModel) *entity.Token {
	if data == nil {
		return nil
	}

	return &entity.Token{
		ID:        data.ID,
		UserID:    data.UserID,
		Value:     data.Value,
		Kind:      entity.TokenKind(data.Kind),
		Expired:   data.Expired,
		Revoked:   data.Revoked,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromTokenDomain converts a domain Token entity to a GORM TokenModel.
func fromTokenDomain(data *entity.Token) *model.TokenModel {
	if data == nil {
		return nil
	}

	return &model.TokenModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Value:     data.Value,
		Kind:      string(data.Kind),
		Expired:   data.Expired,
		Revoked:   data.Revoked,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
