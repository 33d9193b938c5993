package models

// Profile holds the public identity of an account. One row per user,
// created together with the user at registration.
type Profile struct {
	BaseModel
	UserID      string      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	Phone       string      `json:"phone"`
	AvatarURL   string      `json:"avatar_url"`
	AccountType AccountType `gorm:"type:varchar(10);default:'buyer'" json:"account_type"`
}
