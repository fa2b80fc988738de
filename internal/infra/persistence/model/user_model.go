// Package model defines the GORM models mirroring the PostgreSQL schema.
package model

import (
	"time"
)

// UserModel mirrors the 'users' table. IDs are bigserial so they stay ordered
// and cheap to join against the token ledger.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(100);not null;uniqueIndex:idx_users_username"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Active       bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Roles  []UserRoleModel `gorm:"foreignKey:UserID"`
	Tokens []TokenModel    `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserRoleModel mirrors the 'user_roles' join table. Roles are stored as
// plain strings, one row per grant.
type UserRoleModel struct {
	UserID    int64  `gorm:"primaryKey"`
	Role      string `gorm:"type:varchar(50);primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserRoleModel) TableName() string {
	return "user_roles"
}
