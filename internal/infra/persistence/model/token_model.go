package model

import (
	"time"
)

// TokenModel mirrors the 'tokens' table, the persistent ledger of every
// issued access and refresh token. The expired and revoked flags only ever
// flip from false to true; rows are never flipped back valid.
type TokenModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"not null;index:idx_tokens_user_id"`
	Value     string    `gorm:"type:text;not null;uniqueIndex:idx_tokens_value"`
	Kind      string    `gorm:"type:varchar(20);not null"`
	Expired   bool      `gorm:"not null;default:false"`
	Revoked   bool      `gorm:"not null;default:false"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TokenModel) TableName() string {
	return "tokens"
}
