package models

// Review rates a Business 1-5. One per (business, user) pair; the unique
// index replaces the racy exists-then-insert check. Business.Rating and
// Business.ReviewCount are recomputed inside the same transaction.
type Review struct {
	BaseModel
	BusinessID string `gorm:"type:uuid;not null;uniqueIndex:idx_review_business_user" json:"business_id"`
	UserID     string `gorm:"type:uuid;not null;uniqueIndex:idx_review_business_user" json:"user_id"`
	Rating     int    `gorm:"not null" json:"rating"`
	Comment    string `json:"comment"`

	// Relations
	Business *Business `gorm:"foreignKey:BusinessID" json:"business,omitempty"`
}
