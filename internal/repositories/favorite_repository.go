package repositories

import (
	"errors"

	"festacconnect_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrAlreadyFavorited = errors.New("already in favorites")
)

type FavoriteRepository interface {
	AddListing(db *gorm.DB, userID, listingID string) (*models.Favorite, error)
	AddBusiness(db *gorm.DB, userID, businessID string) (*models.Favorite, error)
	RemoveListing(db *gorm.DB, userID, listingID string) error
	RemoveBusiness(db *gorm.DB, userID, businessID string) error
	FindByUser(db *gorm.DB, userID string) ([]models.Favorite, error)
	IsListingFavorited(db *gorm.DB, userID, listingID string) (bool, error)
	IsBusinessFavorited(db *gorm.DB, userID, businessID string) (bool, error)
}

type FavoriteRepositoryImpl struct{}

func NewFavoriteRepository() FavoriteRepository {
	return &FavoriteRepositoryImpl{}
}

func (r *FavoriteRepositoryImpl) AddListing(db *gorm.DB, userID, listingID string) (*models.Favorite, error) {
	fav := &models.Favorite{UserID: userID, ListingID: &listingID}
	if err := db.Create(fav).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyFavorited
		}
		return nil, err
	}
	return fav, nil
}

func (r *FavoriteRepositoryImpl) AddBusiness(db *gorm.DB, userID, businessID string) (*models.Favorite, error) {
	fav := &models.Favorite{UserID: userID, BusinessID: &businessID}
	if err := db.Create(fav).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyFavorited
		}
		return nil, err
	}
	return fav, nil
}

func (r *FavoriteRepositoryImpl) RemoveListing(db *gorm.DB, userID, listingID string) error {
	result := db.Delete(&models.Favorite{}, "user_id = ? AND listing_id = ?", userID, listingID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func (r *FavoriteRepositoryImpl) RemoveBusiness(db *gorm.DB, userID, businessID string) error {
	result := db.Delete(&models.Favorite{}, "user_id = ? AND business_id = ?", userID, businessID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

// FindByUser preloads both targets. Rows whose target row has since
// disappeared are filtered out rather than surfaced as empty entries.
func (r *FavoriteRepositoryImpl) FindByUser(db *gorm.DB, userID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := db.Where("user_id = ?", userID).
		Preload("Listing").
		Preload("Business").
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}

	out := favorites[:0]
	for _, fav := range favorites {
		if fav.ListingID != nil && fav.Listing == nil {
			continue
		}
		if fav.BusinessID != nil && fav.Business == nil {
			continue
		}
		out = append(out, fav)
	}
	return out, nil
}

func (r *FavoriteRepositoryImpl) IsListingFavorited(db *gorm.DB, userID, listingID string) (bool, error) {
	var count int64
	err := db.Model(&models.Favorite{}).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Count(&count).Error
	return count > 0, err
}

func (r *FavoriteRepositoryImpl) IsBusinessFavorited(db *gorm.DB, userID, businessID string) (bool, error) {
	var count int64
	err := db.Model(&models.Favorite{}).
		Where("user_id = ? AND business_id = ?", userID, businessID).
		Count(&count).Error
	return count > 0, err
}
