package repositories

import (
	"errors"

	"festacconnect_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrAlreadyRated   = errors.New("business already reviewed by this user")
)

type ReviewRepository interface {
	Create(db *gorm.DB, review *models.Review) error
	FindByID(db *gorm.DB, id string) (*models.Review, error)
	FindByBusiness(db *gorm.DB, businessID string, limit, offset int) ([]models.Review, int64, error)
	FindByBusinessAndUser(db *gorm.DB, businessID, userID string) (*models.Review, error)
	Update(db *gorm.DB, review *models.Review) error
	Delete(db *gorm.DB, id string) error
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

// Create inserts the review and refreshes the business aggregate in one
// transaction. A duplicate (business, user) pair hits the unique index.
func (r *ReviewRepositoryImpl) Create(db *gorm.DB, review *models.Review) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrAlreadyRated
			}
			return err
		}
		return recomputeBusinessRating(tx, review.BusinessID)
	})
}

func (r *ReviewRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Review, error) {
	var review models.Review
	err := db.First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindByBusiness(db *gorm.DB, businessID string, limit, offset int) ([]models.Review, int64, error) {
	query := db.Model(&models.Review{}).Where("business_id = ?", businessID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var reviews []models.Review
	err := query.Find(&reviews).Error
	return reviews, total, err
}

func (r *ReviewRepositoryImpl) FindByBusinessAndUser(db *gorm.DB, businessID, userID string) (*models.Review, error) {
	var review models.Review
	err := db.First(&review, "business_id = ? AND user_id = ?", businessID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) Update(db *gorm.DB, review *models.Review) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(review).Error; err != nil {
			return err
		}
		return recomputeBusinessRating(tx, review.BusinessID)
	})
}

func (r *ReviewRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var review models.Review
		if err := tx.First(&review, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReviewNotFound
			}
			return err
		}
		if err := tx.Delete(&review).Error; err != nil {
			return err
		}
		return recomputeBusinessRating(tx, review.BusinessID)
	})
}

// recomputeBusinessRating rewrites the denormalized aggregate from the
// review rows rather than adjusting it incrementally.
func recomputeBusinessRating(tx *gorm.DB, businessID string) error {
	var agg struct {
		Avg   float64
		Count int64
	}
	err := tx.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("business_id = ?", businessID).
		Scan(&agg).Error
	if err != nil {
		return err
	}
	return tx.Model(&models.Business{}).Where("id = ?", businessID).
		UpdateColumns(map[string]interface{}{
			"rating":       agg.Avg,
			"review_count": agg.Count,
		}).Error
}
