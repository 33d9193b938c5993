package repositories

import (
	"errors"
	"time"

	"festacconnect_backend/internal/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var ErrListingNotFound = errors.New("listing not found")

// Listing sort options applied on top of the featured-first ordering.
const (
	ListingSortNewest    = "newest"
	ListingSortPriceAsc  = "price_asc"
	ListingSortPriceDesc = "price_desc"
	ListingSortPopular   = "popular"
)

// ListingFilter drives the marketplace browse query. Status is always
// constrained; browse callers pass ListingStatusActive.
type ListingFilter struct {
	Status      models.ListingStatus
	Category    string
	Subcategory string
	Search      string // case-insensitive substring over title/description/location
	UserID      string
	BusinessID  string
	Sort        string
	Limit       int
	Offset      int
}

type ListingRepository interface {
	Create(db *gorm.DB, listing *models.Listing) error
	FindByID(db *gorm.DB, id string) (*models.Listing, error)
	FindWithFilter(db *gorm.DB, filter ListingFilter) ([]models.Listing, int64, error)
	Update(db *gorm.DB, listing *models.Listing) error
	UpdateImages(db *gorm.DB, id string, images []string) error
	Delete(db *gorm.DB, id string) error
	IncrementViews(db *gorm.DB, id string) error
	SetPromotion(db *gorm.DB, id string, until time.Time) error
	ClearExpiredPromotions(db *gorm.DB) (int64, error)
}

type ListingRepositoryImpl struct{}

func NewListingRepository() ListingRepository {
	return &ListingRepositoryImpl{}
}

func (r *ListingRepositoryImpl) Create(db *gorm.DB, listing *models.Listing) error {
	return db.Create(listing).Error
}

func (r *ListingRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Listing, error) {
	var listing models.Listing
	err := db.Preload("Business").First(&listing, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

func (r *ListingRepositoryImpl) FindWithFilter(db *gorm.DB, filter ListingFilter) ([]models.Listing, int64, error) {
	query := db.Model(&models.Listing{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Subcategory != "" {
		query = query.Where("subcategory = ?", filter.Subcategory)
	}
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.BusinessID != "" {
		query = query.Where("business_id = ?", filter.BusinessID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"title ILIKE ? OR description ILIKE ? OR location ILIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Effective featured state first: an expired featured_until must never
	// outrank non-featured rows, so the expiry is checked in the ORDER BY
	// rather than trusting the stored flag.
	query = query.Order("(is_featured AND featured_until > NOW()) DESC")

	switch filter.Sort {
	case ListingSortPriceAsc:
		query = query.Order("price ASC")
	case ListingSortPriceDesc:
		query = query.Order("price DESC")
	case ListingSortPopular:
		query = query.Order("views DESC")
	default:
		query = query.Order("created_at DESC")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var listings []models.Listing
	err := query.Find(&listings).Error
	return listings, total, err
}

func (r *ListingRepositoryImpl) Update(db *gorm.DB, listing *models.Listing) error {
	return db.Save(listing).Error
}

func (r *ListingRepositoryImpl) UpdateImages(db *gorm.DB, id string, images []string) error {
	return db.Model(&models.Listing{}).Where("id = ?", id).
		Update("images", pq.StringArray(images)).Error
}

// Delete removes the listing and its favorites in one transaction so no
// dangling bookmark rows survive.
func (r *ListingRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Favorite{}, "listing_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Listing{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrListingNotFound
		}
		return nil
	})
}

// IncrementViews bumps the popularity counter atomically; concurrent
// detail loads never lose updates.
func (r *ListingRepositoryImpl) IncrementViews(db *gorm.DB, id string) error {
	return db.Model(&models.Listing{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// SetPromotion marks the listing featured and boosted until the given
// time, mirroring what the boost flow writes.
func (r *ListingRepositoryImpl) SetPromotion(db *gorm.DB, id string, until time.Time) error {
	result := db.Model(&models.Listing{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_featured":    true,
		"featured_until": until,
		"is_boosted":     true,
		"boosted_until":  until,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}

// ClearExpiredPromotions flips stale promotion flags off in bulk.
func (r *ListingRepositoryImpl) ClearExpiredPromotions(db *gorm.DB) (int64, error) {
	result := db.Exec(`
		UPDATE listings
		SET is_featured = (featured_until IS NOT NULL AND featured_until > NOW()),
		    is_boosted  = (boosted_until IS NOT NULL AND boosted_until > NOW()),
		    updated_at  = NOW()
		WHERE (is_featured AND (featured_until IS NULL OR featured_until <= NOW()))
		   OR (is_boosted AND (boosted_until IS NULL OR boosted_until <= NOW()))
	`)
	return result.RowsAffected, result.Error
}
