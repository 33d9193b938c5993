package services

import (
	"crypto/rand"
	"time"

	"festacconnect_backend/internal/models"
	"festacconnect_backend/internal/repositories"
	"festacconnect_backend/internal/services/dto"
	"festacconnect_backend/pkg/apperrors"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// BoostPlan is a fixed-price promotion tier. Plans are code, not data;
// there is no admin surface for editing them.
type BoostPlan struct {
	Name   string
	Amount float64
	Days   int
}

var boostPlans = map[string]BoostPlan{
	"weekly":  {Name: "weekly", Amount: 2000, Days: 7},
	"monthly": {Name: "monthly", Amount: 5000, Days: 30},
	"premium": {Name: "premium", Amount: 10000, Days: 90},
}

type BoostService interface {
	Plans() []*dto.BoostPlanResponse
	BoostListing(db *gorm.DB, userID, listingID, plan string) (*dto.BoostResponse, error)
	BoostBusiness(db *gorm.DB, userID, businessID, plan string) (*dto.BoostResponse, error)
	PaymentHistory(db *gorm.DB, userID string, page, pageSize int) (*dto.PaymentListResponse, error)
}

type BoostServiceImpl struct {
	paymentRepo      repositories.PaymentRepository
	listingRepo      repositories.ListingRepository
	businessRepo     repositories.BusinessRepository
	notificationRepo repositories.NotificationRepository
}

func NewBoostService(
	paymentRepo repositories.PaymentRepository,
	listingRepo repositories.ListingRepository,
	businessRepo repositories.BusinessRepository,
	notificationRepo repositories.NotificationRepository,
) BoostService {
	return &BoostServiceImpl{
		paymentRepo:      paymentRepo,
		listingRepo:      listingRepo,
		businessRepo:     businessRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *BoostServiceImpl) Plans() []*dto.BoostPlanResponse {
	return []*dto.BoostPlanResponse{
		{Name: "weekly", Amount: 2000, Currency: "NGN", Days: 7},
		{Name: "monthly", Amount: 5000, Currency: "NGN", Days: 30},
		{Name: "premium", Amount: 10000, Currency: "NGN", Days: 90},
	}
}

// BoostListing records the mock payment and flips the promotion flags in
// one transaction. Either both land or neither does.
func (s *BoostServiceImpl) BoostListing(db *gorm.DB, userID, listingID, plan string) (*dto.BoostResponse, error) {
	boostPlan, ok := boostPlans[plan]
	if !ok {
		return nil, apperrors.ErrInvalidOperation("boost", "Unknown boost plan")
	}

	listing, err := s.listingRepo.FindByID(db, listingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrListingNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if listing.UserID != userID {
		return nil, apperrors.ErrNotOwner
	}

	until := time.Now().Add(time.Duration(boostPlan.Days) * 24 * time.Hour)
	payment := &models.Payment{
		UserID:      userID,
		ListingID:   &listingID,
		PaymentType: models.PaymentTypeFeaturedListing,
		Amount:      boostPlan.Amount,
		Currency:    "NGN",
		Status:      models.PaymentStatusCompleted,
		Reference:   paymentReference(),
		Provider:    "mock",
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.paymentRepo.Create(tx, payment); err != nil {
			return err
		}
		return s.listingRepo.SetPromotion(tx, listingID, until)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	_ = s.notificationRepo.Create(db, &models.Notification{
		UserID:  userID,
		Type:    "boost",
		Title:   "Listing boosted",
		Message: listing.Title + " is featured until " + until.Format("Jan 2, 2006"),
		Link:    "/listings/" + listingID,
	})

	return &dto.BoostResponse{
		Payment:       buildPaymentResponse(payment),
		FeaturedUntil: until,
	}, nil
}

func (s *BoostServiceImpl) BoostBusiness(db *gorm.DB, userID, businessID, plan string) (*dto.BoostResponse, error) {
	boostPlan, ok := boostPlans[plan]
	if !ok {
		return nil, apperrors.ErrInvalidOperation("boost", "Unknown boost plan")
	}

	business, err := s.businessRepo.FindByID(db, businessID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBusinessNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if business.UserID != userID {
		return nil, apperrors.ErrNotOwner
	}

	until := time.Now().Add(time.Duration(boostPlan.Days) * 24 * time.Hour)
	payment := &models.Payment{
		UserID:      userID,
		BusinessID:  &businessID,
		PaymentType: models.PaymentTypeFeaturedBusiness,
		Amount:      boostPlan.Amount,
		Currency:    "NGN",
		Status:      models.PaymentStatusCompleted,
		Reference:   paymentReference(),
		Provider:    "mock",
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.paymentRepo.Create(tx, payment); err != nil {
			return err
		}
		return s.businessRepo.SetFeatured(tx, businessID, until)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	_ = s.notificationRepo.Create(db, &models.Notification{
		UserID:  userID,
		Type:    "boost",
		Title:   "Business boosted",
		Message: business.Name + " is featured until " + until.Format("Jan 2, 2006"),
		Link:    "/businesses/" + businessID,
	})

	return &dto.BoostResponse{
		Payment:       buildPaymentResponse(payment),
		FeaturedUntil: until,
	}, nil
}

func (s *BoostServiceImpl) PaymentHistory(db *gorm.DB, userID string, page, pageSize int) (*dto.PaymentListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)

	payments, total, err := s.paymentRepo.FindByUser(db, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		responses = append(responses, buildPaymentResponse(&payments[i]))
	}
	return &dto.PaymentListResponse{Payments: responses, Total: total}, nil
}

// paymentReference issues a sortable unique reference like
// "PAY-01J8ZV9K3M...". ULIDs keep receipts ordered by creation time.
func paymentReference() string {
	return "PAY-" + ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

func buildPaymentResponse(payment *models.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:          payment.ID,
		UserID:      payment.UserID,
		ListingID:   payment.ListingID,
		BusinessID:  payment.BusinessID,
		PaymentType: string(payment.PaymentType),
		Amount:      payment.Amount,
		Currency:    payment.Currency,
		Status:      string(payment.Status),
		Reference:   payment.Reference,
		Provider:    payment.Provider,
		CreatedAt:   payment.CreatedAt,
	}
}
