package repositories

import (
	"errors"
	"time"

	"festacconnect_backend/internal/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	ErrBusinessNotFound = errors.New("business not found")
	ErrCategoryNotFound = errors.New("business category not found")
)

// BusinessFilter drives the directory browse query.
type BusinessFilter struct {
	Status       models.BusinessStatus
	CategorySlug string
	Search       string // substring over name/description/location
	UserID       string
	Limit        int
	Offset       int
}

type BusinessRepository interface {
	Create(db *gorm.DB, business *models.Business) error
	FindByID(db *gorm.DB, id string) (*models.Business, error)
	FindWithFilter(db *gorm.DB, filter BusinessFilter) ([]models.Business, int64, error)
	Update(db *gorm.DB, business *models.Business) error
	UpdateImages(db *gorm.DB, id string, images []string) error
	Delete(db *gorm.DB, id string) error
	SetFeatured(db *gorm.DB, id string, until time.Time) error
	ClearExpiredFeatured(db *gorm.DB) (int64, error)

	// Reference data
	FindCategories(db *gorm.DB) ([]models.BusinessCategory, error)
	FindCategoryByID(db *gorm.DB, id string) (*models.BusinessCategory, error)
	FindCategoryBySlug(db *gorm.DB, slug string) (*models.BusinessCategory, error)
}

type BusinessRepositoryImpl struct{}

func NewBusinessRepository() BusinessRepository {
	return &BusinessRepositoryImpl{}
}

func (r *BusinessRepositoryImpl) Create(db *gorm.DB, business *models.Business) error {
	return db.Create(business).Error
}

func (r *BusinessRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Business, error) {
	var business models.Business
	err := db.Preload("Category").First(&business, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}
	return &business, nil
}

func (r *BusinessRepositoryImpl) FindWithFilter(db *gorm.DB, filter BusinessFilter) ([]models.Business, int64, error) {
	query := db.Model(&models.Business{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.CategorySlug != "" {
		query = query.Where(
			"category_id IN (?)",
			db.Model(&models.BusinessCategory{}).Select("id").Where("slug = ?", filter.CategorySlug),
		)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"name ILIKE ? OR description ILIKE ? OR location ILIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Same effective-featured ranking rule as listings
	query = query.Order("(is_featured AND featured_until > NOW()) DESC").
		Order("created_at DESC")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var businesses []models.Business
	err := query.Preload("Category").Find(&businesses).Error
	return businesses, total, err
}

func (r *BusinessRepositoryImpl) Update(db *gorm.DB, business *models.Business) error {
	return db.Save(business).Error
}

func (r *BusinessRepositoryImpl) UpdateImages(db *gorm.DB, id string, images []string) error {
	return db.Model(&models.Business{}).Where("id = ?", id).
		Update("images", pq.StringArray(images)).Error
}

// Delete removes the business, its favorites and its reviews in one
// transaction. Listings that pointed at it keep a dangling business_id and
// are detached instead.
func (r *BusinessRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Favorite{}, "business_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Review{}, "business_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Listing{}).Where("business_id = ?", id).
			Update("business_id", nil).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Business{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrBusinessNotFound
		}
		return nil
	})
}

func (r *BusinessRepositoryImpl) SetFeatured(db *gorm.DB, id string, until time.Time) error {
	result := db.Model(&models.Business{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_featured":    true,
		"featured_until": until,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBusinessNotFound
	}
	return nil
}

func (r *BusinessRepositoryImpl) ClearExpiredFeatured(db *gorm.DB) (int64, error) {
	result := db.Exec(`
		UPDATE businesses
		SET is_featured = false, updated_at = NOW()
		WHERE is_featured AND (featured_until IS NULL OR featured_until <= NOW())
	`)
	return result.RowsAffected, result.Error
}

func (r *BusinessRepositoryImpl) FindCategories(db *gorm.DB) ([]models.BusinessCategory, error) {
	var categories []models.BusinessCategory
	err := db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *BusinessRepositoryImpl) FindCategoryByID(db *gorm.DB, id string) (*models.BusinessCategory, error) {
	var category models.BusinessCategory
	err := db.First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *BusinessRepositoryImpl) FindCategoryBySlug(db *gorm.DB, slug string) (*models.BusinessCategory, error) {
	var category models.BusinessCategory
	err := db.First(&category, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}
