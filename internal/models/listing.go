package models

import (
	"time"

	"github.com/lib/pq"
)

type Listing struct {
	BaseModel
	UserID     string  `gorm:"type:uuid;not null;index" json:"user_id"`
	BusinessID *string `gorm:"type:uuid;index" json:"business_id"`

	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`

	// Free-form category pair; the browse UI supplies values from a fixed
	// client-side list.
	Category    string `gorm:"not null;index" json:"category"`
	Subcategory string `json:"subcategory"`

	Price      float64   `json:"price"`
	PriceLabel string    `json:"price_label"` // display string, e.g. "₦800,000/year"
	PriceType  PriceType `gorm:"type:varchar(20);default:'fixed'" json:"price_type"`

	Location  string `json:"location"`
	Phone     string `json:"phone"`
	Whatsapp  string `json:"whatsapp"`
	Instagram string `json:"instagram"`

	Images pq.StringArray `gorm:"type:text[]" json:"images"` // first element is the cover

	Status ListingStatus `gorm:"type:varchar(20);default:'active';index" json:"status"`

	// Approximate popularity counter; incremented atomically on each
	// detail fetch, not deduplicated per viewer.
	Views int64 `gorm:"default:0" json:"views"`

	IsFeatured    bool       `gorm:"default:false" json:"is_featured"`
	FeaturedUntil *time.Time `json:"featured_until"`
	IsBoosted     bool       `gorm:"default:false" json:"is_boosted"`
	BoostedUntil  *time.Time `json:"boosted_until"`

	// Relations
	Business *Business `gorm:"foreignKey:BusinessID" json:"business,omitempty"`
}

// FeaturedNow reports the effective featured state at read time.
func (l *Listing) FeaturedNow(now time.Time) bool {
	return l.IsFeatured && l.FeaturedUntil != nil && l.FeaturedUntil.After(now)
}
