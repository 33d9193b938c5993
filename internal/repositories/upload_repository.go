package repositories

import (
	"errors"
	"time"

	"festacconnect_backend/internal/models"

	"gorm.io/gorm"
)

var ErrUploadNotFound = errors.New("upload not found")

type UploadRepository interface {
	Create(db *gorm.DB, upload *models.Upload) error
	FindByID(db *gorm.DB, id string) (*models.Upload, error)
	FindByPath(db *gorm.DB, path string) (*models.Upload, error)
	FindByEntity(db *gorm.DB, entityKind, entityID string) ([]models.Upload, error)
	FindByUser(db *gorm.DB, userID string) ([]models.Upload, error)
	SumSizeByUser(db *gorm.DB, userID string) (int64, error)
	AttachEntity(db *gorm.DB, id, entityID string) error
	Delete(db *gorm.DB, id string) error
	FindOrphanedBefore(db *gorm.DB, cutoff time.Time) ([]models.Upload, error)
}

type UploadRepositoryImpl struct{}

func NewUploadRepository() UploadRepository {
	return &UploadRepositoryImpl{}
}

func (r *UploadRepositoryImpl) Create(db *gorm.DB, upload *models.Upload) error {
	return db.Create(upload).Error
}

func (r *UploadRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Upload, error) {
	var upload models.Upload
	err := db.First(&upload, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUploadNotFound
		}
		return nil, err
	}
	return &upload, nil
}

func (r *UploadRepositoryImpl) FindByPath(db *gorm.DB, path string) (*models.Upload, error) {
	var upload models.Upload
	err := db.First(&upload, "path = ?", path).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUploadNotFound
		}
		return nil, err
	}
	return &upload, nil
}

func (r *UploadRepositoryImpl) FindByEntity(db *gorm.DB, entityKind, entityID string) ([]models.Upload, error) {
	var uploads []models.Upload
	err := db.Where("entity_kind = ? AND entity_id = ?", entityKind, entityID).
		Order("created_at ASC").
		Find(&uploads).Error
	return uploads, err
}

func (r *UploadRepositoryImpl) FindByUser(db *gorm.DB, userID string) ([]models.Upload, error) {
	var uploads []models.Upload
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&uploads).Error
	return uploads, err
}

func (r *UploadRepositoryImpl) SumSizeByUser(db *gorm.DB, userID string) (int64, error) {
	var total int64
	err := db.Model(&models.Upload{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(size), 0)").
		Scan(&total).Error
	return total, err
}

func (r *UploadRepositoryImpl) AttachEntity(db *gorm.DB, id, entityID string) error {
	result := db.Model(&models.Upload{}).Where("id = ?", id).
		UpdateColumn("entity_id", entityID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUploadNotFound
	}
	return nil
}

func (r *UploadRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Upload{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUploadNotFound
	}
	return nil
}

// FindOrphanedBefore returns uploads old enough to be considered abandoned
// whose entity was never attached, or whose listing/business row has since
// been deleted. Avatar and resume uploads stay tied to their user and are
// only collected while unattached.
func (r *UploadRepositoryImpl) FindOrphanedBefore(db *gorm.DB, cutoff time.Time) ([]models.Upload, error) {
	var uploads []models.Upload
	err := db.Where("created_at < ?", cutoff).
		Where(`entity_id = ''
			OR (entity_kind = 'listing' AND NOT EXISTS (
				SELECT 1 FROM listings WHERE listings.id::text = uploads.entity_id))
			OR (entity_kind = 'business' AND NOT EXISTS (
				SELECT 1 FROM businesses WHERE businesses.id::text = uploads.entity_id))`).
		Find(&uploads).Error
	return uploads, err
}
