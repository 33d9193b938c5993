package models

// Favorite bookmarks exactly one of a Listing or a Business. The two
// composite unique indexes make the toggle idempotent per (user, target)
// pair; the service guarantees one target field is set.
type Favorite struct {
	BaseModel
	UserID     string  `gorm:"type:uuid;not null;index;uniqueIndex:idx_fav_listing;uniqueIndex:idx_fav_business" json:"user_id"`
	ListingID  *string `gorm:"type:uuid;uniqueIndex:idx_fav_listing" json:"listing_id"`
	BusinessID *string `gorm:"type:uuid;uniqueIndex:idx_fav_business" json:"business_id"`

	// Relations; joined targets may be nil when the target was deleted,
	// readers must drop such rows.
	Listing  *Listing  `gorm:"foreignKey:ListingID" json:"listing,omitempty"`
	Business *Business `gorm:"foreignKey:BusinessID" json:"business,omitempty"`
}
