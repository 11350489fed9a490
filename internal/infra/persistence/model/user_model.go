package model

import (
	"time"

	"github.com/google/uuid"
)

// Unique index names of the users table. Repositories match on them to report which value is taken.
const (
	UsersUsernameIndex = "idx_users_username"
	UsersEmailIndex    = "idx_users_email"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username     string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_users_username"`
	Email        string    `gorm:"type:varchar(120);not null;uniqueIndex:idx_users_email"`
	PasswordHash string    `gorm:"type:varchar(60);not null"`
	ImageFile    string    `gorm:"type:varchar(255);not null;default:'default.jpg'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
