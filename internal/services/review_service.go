package services

import (
	"festacconnect_backend/internal/models"
	"festacconnect_backend/internal/repositories"
	"festacconnect_backend/internal/services/dto"
	"festacconnect_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ReviewService interface {
	Create(db *gorm.DB, userID, businessID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	ListByBusiness(db *gorm.DB, businessID string, page, pageSize int) (*dto.ReviewListResponse, error)
	Update(db *gorm.DB, userID, reviewID string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error)
	Delete(db *gorm.DB, userID, reviewID string, isModerator bool) error
}

type ReviewServiceImpl struct {
	reviewRepo       repositories.ReviewRepository
	businessRepo     repositories.BusinessRepository
	notificationRepo repositories.NotificationRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	businessRepo repositories.BusinessRepository,
	notificationRepo repositories.NotificationRepository,
) ReviewService {
	return &ReviewServiceImpl{
		reviewRepo:       reviewRepo,
		businessRepo:     businessRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *ReviewServiceImpl) Create(db *gorm.DB, userID, businessID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	business, err := s.businessRepo.FindByID(db, businessID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBusinessNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if business.UserID == userID {
		return nil, apperrors.ErrInvalidOperation("review", "Cannot review your own business")
	}

	review := &models.Review{
		BusinessID: businessID,
		UserID:     userID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := s.reviewRepo.Create(db, review); err != nil {
		if apperrors.Is(err, repositories.ErrAlreadyRated) {
			return nil, apperrors.ErrConflict(err, "review", "You already reviewed this business")
		}
		return nil, apperrors.InternalError(err)
	}

	_ = s.notificationRepo.Create(db, &models.Notification{
		UserID:  business.UserID,
		Type:    "review",
		Title:   "New review",
		Message: business.Name + " received a new review",
		Link:    "/businesses/" + businessID,
	})

	return buildReviewResponse(review), nil
}

func (s *ReviewServiceImpl) ListByBusiness(db *gorm.DB, businessID string, page, pageSize int) (*dto.ReviewListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)

	reviews, total, err := s.reviewRepo.FindByBusiness(db, businessID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, buildReviewResponse(&reviews[i]))
	}
	return &dto.ReviewListResponse{
		Reviews:    responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

func (s *ReviewServiceImpl) Update(db *gorm.DB, userID, reviewID string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(db, reviewID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if review.UserID != userID {
		return nil, apperrors.ErrNotOwner
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}

	if err := s.reviewRepo.Update(db, review); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildReviewResponse(review), nil
}

func (s *ReviewServiceImpl) Delete(db *gorm.DB, userID, reviewID string, isModerator bool) error {
	review, err := s.reviewRepo.FindByID(db, reviewID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if review.UserID != userID && !isModerator {
		return apperrors.ErrNotOwner
	}
	if err := s.reviewRepo.Delete(db, reviewID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func buildReviewResponse(review *models.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		ID:         review.ID,
		BusinessID: review.BusinessID,
		UserID:     review.UserID,
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}
}
