package models

import (
	"gorm.io/datatypes"
)

// Payment is the receipt row written by the boost flow. There is no
// pending/authorization state machine: the mock provider completes
// instantly and the row is inserted with status=completed in the same
// transaction that flips the target's featured flag.
type Payment struct {
	BaseModel
	UserID     string  `gorm:"type:uuid;not null;index" json:"user_id"`
	ListingID  *string `gorm:"type:uuid;index" json:"listing_id"`
	BusinessID *string `gorm:"type:uuid;index" json:"business_id"`

	PaymentType PaymentType    `gorm:"type:varchar(30);not null" json:"payment_type"`
	Amount      float64        `gorm:"not null" json:"amount"`
	Currency    string         `gorm:"default:'NGN'" json:"currency"`
	Status      PaymentStatus  `gorm:"type:varchar(20);default:'completed'" json:"status"`
	Reference   string         `gorm:"uniqueIndex" json:"reference"`
	Provider    string         `gorm:"default:'mock'" json:"provider"`
	Metadata    datatypes.JSON `gorm:"type:jsonb" json:"metadata"`
}
