package repositories

import (
	"errors"

	"festacconnect_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrDuplicatePaymentRef = errors.New("payment reference already exists")
)

type PaymentRepository interface {
	Create(db *gorm.DB, payment *models.Payment) error
	FindByID(db *gorm.DB, id string) (*models.Payment, error)
	FindByReference(db *gorm.DB, reference string) (*models.Payment, error)
	FindByUser(db *gorm.DB, userID string, limit, offset int) ([]models.Payment, int64, error)
}

type PaymentRepositoryImpl struct{}

func NewPaymentRepository() PaymentRepository {
	return &PaymentRepositoryImpl{}
}

func (r *PaymentRepositoryImpl) Create(db *gorm.DB, payment *models.Payment) error {
	if err := db.Create(payment).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicatePaymentRef
		}
		return err
	}
	return nil
}

func (r *PaymentRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Payment, error) {
	var payment models.Payment
	err := db.First(&payment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepositoryImpl) FindByReference(db *gorm.DB, reference string) (*models.Payment, error) {
	var payment models.Payment
	err := db.First(&payment, "reference = ?", reference).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepositoryImpl) FindByUser(db *gorm.DB, userID string, limit, offset int) ([]models.Payment, int64, error) {
	query := db.Model(&models.Payment{}).Where("user_id = ?", userID)

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

	var payments []models.Payment
	err := query.Find(&payments).Error
	return payments, total, err
}
