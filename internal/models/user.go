package models

import "time"

type User struct {
	BaseModel
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Status       UserStatus `gorm:"type:varchar(20);default:'active'" json:"status"`

	// Relations
	Profile       *Profile       `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	Roles         []UserRole     `gorm:"foreignKey:UserID" json:"roles,omitempty"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

// UserRole is a role grant; authorization checks consult these rows.
type UserRole struct {
	ID     string  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID string  `gorm:"not null;uniqueIndex:idx_user_role" json:"user_id"`
	Role   AppRole `gorm:"type:varchar(20);not null;default:'user';uniqueIndex:idx_user_role" json:"role"`
}

func (UserRole) TableName() string { return "user_roles" }

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
