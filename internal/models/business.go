package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// BusinessCategory is immutable reference data seeded at migration time.
type BusinessCategory struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Slug      string    `gorm:"not null;uniqueIndex" json:"slug"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
}

func (BusinessCategory) TableName() string { return "business_categories" }

type Business struct {
	BaseModel
	UserID       string  `gorm:"type:uuid;not null;index" json:"user_id"`
	Name         string  `gorm:"not null" json:"name"`
	Description  string  `json:"description"`
	CategoryID   *string `gorm:"type:uuid" json:"category_id"`
	CategoryName string  `json:"category_name"` // denormalized from BusinessCategory.Name
	Subcategory  string  `json:"subcategory"`
	Location     string  `json:"location"`

	// Contact channels
	Phone     string `json:"phone"`
	Whatsapp  string `json:"whatsapp"`
	Instagram string `json:"instagram"`
	Website   string `json:"website"`
	Email     string `json:"email"`

	Services pq.StringArray `gorm:"type:text[]" json:"services"`
	Images   pq.StringArray `gorm:"type:text[]" json:"images"` // first element is the cover
	Hours    datatypes.JSON `gorm:"type:jsonb" json:"hours"`   // per-day schedule

	Status        BusinessStatus `gorm:"type:varchar(20);default:'active';index" json:"status"`
	IsFeatured    bool           `gorm:"default:false" json:"is_featured"`
	FeaturedUntil *time.Time     `json:"featured_until"`

	// Aggregates recomputed from reviews inside the review transaction
	Rating      float64 `gorm:"default:0" json:"rating"`
	ReviewCount int     `gorm:"default:0" json:"review_count"`

	OffersDelivery string `json:"offers_delivery"`
	SellsOnline    string `json:"sells_online"`

	// Relations
	Category *BusinessCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// FeaturedNow reports the effective featured state. The stored flag is
// never trusted alone: featured_until in the past means not featured, even
// before the sweep clears the flag.
func (b *Business) FeaturedNow(now time.Time) bool {
	return b.IsFeatured && b.FeaturedUntil != nil && b.FeaturedUntil.After(now)
}
