package services

import (
	"time"

	"festacconnect_backend/internal/models"
	"festacconnect_backend/internal/repositories"
	"festacconnect_backend/internal/services/dto"
	"festacconnect_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type BusinessService interface {
	Create(db *gorm.DB, userID string, req *dto.CreateBusinessRequest) (*dto.BusinessResponse, error)
	Get(db *gorm.DB, id, viewerID string) (*dto.BusinessResponse, error)
	Browse(db *gorm.DB, criteria dto.BusinessSearchCriteria) (*dto.BusinessListResponse, error)
	MyBusinesses(db *gorm.DB, userID string) (*dto.BusinessListResponse, error)
	Update(db *gorm.DB, userID, id string, req *dto.UpdateBusinessRequest) (*dto.BusinessResponse, error)
	Delete(db *gorm.DB, userID, id string, isAdmin bool) error
	Categories(db *gorm.DB) ([]*dto.BusinessCategoryResponse, error)
}

type BusinessServiceImpl struct {
	businessRepo repositories.BusinessRepository
	favoriteRepo repositories.FavoriteRepository
}

func NewBusinessService(businessRepo repositories.BusinessRepository, favoriteRepo repositories.FavoriteRepository) BusinessService {
	return &BusinessServiceImpl{businessRepo: businessRepo, favoriteRepo: favoriteRepo}
}

func (s *BusinessServiceImpl) Create(db *gorm.DB, userID string, req *dto.CreateBusinessRequest) (*dto.BusinessResponse, error) {
	business := &models.Business{
		UserID:         userID,
		Name:           req.Name,
		Description:    req.Description,
		Subcategory:    req.Subcategory,
		Location:       req.Location,
		Phone:          req.Phone,
		Whatsapp:       req.Whatsapp,
		Instagram:      req.Instagram,
		Website:        req.Website,
		Email:          req.Email,
		Services:       req.Services,
		Images:         req.Images,
		Hours:          req.Hours,
		Status:         models.BusinessStatusActive,
		OffersDelivery: req.OffersDelivery,
		SellsOnline:    req.SellsOnline,
	}

	if req.CategorySlug != "" {
		category, err := s.businessRepo.FindCategoryBySlug(db, req.CategorySlug)
		if err != nil {
			if apperrors.Is(err, repositories.ErrCategoryNotFound) {
				return nil, apperrors.ErrInvalidOperation("business", "Unknown business category")
			}
			return nil, apperrors.InternalError(err)
		}
		business.CategoryID = &category.ID
		business.CategoryName = category.Name
	}

	if err := s.businessRepo.Create(db, business); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildBusinessResponse(business), nil
}

func (s *BusinessServiceImpl) Get(db *gorm.DB, id, viewerID string) (*dto.BusinessResponse, error) {
	business, err := s.businessRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBusinessNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	resp := buildBusinessResponse(business)
	if viewerID != "" {
		resp.Favorited, _ = s.favoriteRepo.IsBusinessFavorited(db, viewerID, id)
	}
	return resp, nil
}

func (s *BusinessServiceImpl) Browse(db *gorm.DB, criteria dto.BusinessSearchCriteria) (*dto.BusinessListResponse, error) {
	page, pageSize := normalizePage(criteria.Page, criteria.PageSize)

	filter := repositories.BusinessFilter{
		Status:       models.BusinessStatusActive,
		CategorySlug: criteria.Category,
		Search:       criteria.Search,
		Limit:        pageSize,
		Offset:       (page - 1) * pageSize,
	}

	businesses, total, err := s.businessRepo.FindWithFilter(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildBusinessList(businesses, total, page, pageSize), nil
}

func (s *BusinessServiceImpl) MyBusinesses(db *gorm.DB, userID string) (*dto.BusinessListResponse, error) {
	businesses, total, err := s.businessRepo.FindWithFilter(db, repositories.BusinessFilter{UserID: userID})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildBusinessList(businesses, total, 1, len(businesses)), nil
}

func (s *BusinessServiceImpl) Update(db *gorm.DB, userID, id string, req *dto.UpdateBusinessRequest) (*dto.BusinessResponse, error) {
	business, err := s.businessRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBusinessNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if business.UserID != userID {
		return nil, apperrors.ErrNotOwner
	}

	if req.Name != nil {
		business.Name = *req.Name
	}
	if req.Description != nil {
		business.Description = *req.Description
	}
	if req.CategorySlug != nil {
		category, err := s.businessRepo.FindCategoryBySlug(db, *req.CategorySlug)
		if err != nil {
			if apperrors.Is(err, repositories.ErrCategoryNotFound) {
				return nil, apperrors.ErrInvalidOperation("business", "Unknown business category")
			}
			return nil, apperrors.InternalError(err)
		}
		business.CategoryID = &category.ID
		business.CategoryName = category.Name
	}
	if req.Subcategory != nil {
		business.Subcategory = *req.Subcategory
	}
	if req.Location != nil {
		business.Location = *req.Location
	}
	if req.Phone != nil {
		business.Phone = *req.Phone
	}
	if req.Whatsapp != nil {
		business.Whatsapp = *req.Whatsapp
	}
	if req.Instagram != nil {
		business.Instagram = *req.Instagram
	}
	if req.Website != nil {
		business.Website = *req.Website
	}
	if req.Email != nil {
		business.Email = *req.Email
	}
	if req.Services != nil {
		business.Services = *req.Services
	}
	if req.Images != nil {
		business.Images = *req.Images
	}
	if req.Hours != nil {
		business.Hours = *req.Hours
	}
	if req.OffersDelivery != nil {
		business.OffersDelivery = *req.OffersDelivery
	}
	if req.SellsOnline != nil {
		business.SellsOnline = *req.SellsOnline
	}
	if req.Status != nil {
		business.Status = models.BusinessStatus(*req.Status)
	}

	if err := s.businessRepo.Update(db, business); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildBusinessResponse(business), nil
}

func (s *BusinessServiceImpl) Delete(db *gorm.DB, userID, id string, isAdmin bool) error {
	business, err := s.businessRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBusinessNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if business.UserID != userID && !isAdmin {
		return apperrors.ErrNotOwner
	}
	if err := s.businessRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *BusinessServiceImpl) Categories(db *gorm.DB) ([]*dto.BusinessCategoryResponse, error) {
	categories, err := s.businessRepo.FindCategories(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	responses := make([]*dto.BusinessCategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, &dto.BusinessCategoryResponse{
			ID:   categories[i].ID,
			Name: categories[i].Name,
			Slug: categories[i].Slug,
			Icon: categories[i].Icon,
		})
	}
	return responses, nil
}

func buildBusinessResponse(business *models.Business) *dto.BusinessResponse {
	resp := &dto.BusinessResponse{
		ID:             business.ID,
		UserID:         business.UserID,
		Name:           business.Name,
		Description:    business.Description,
		CategoryName:   business.CategoryName,
		Subcategory:    business.Subcategory,
		Location:       business.Location,
		Phone:          business.Phone,
		Whatsapp:       business.Whatsapp,
		Instagram:      business.Instagram,
		Website:        business.Website,
		Email:          business.Email,
		Services:       business.Services,
		Images:         business.Images,
		Hours:          business.Hours,
		Status:         string(business.Status),
		// Expired windows read as not featured even before the sweep
		// clears the stored flag.
		IsFeatured:     business.FeaturedNow(time.Now()),
		Rating:         business.Rating,
		ReviewCount:    business.ReviewCount,
		OffersDelivery: business.OffersDelivery,
		SellsOnline:    business.SellsOnline,
		CreatedAt:      business.CreatedAt,
		UpdatedAt:      business.UpdatedAt,
	}
	if business.Category != nil {
		resp.CategorySlug = business.Category.Slug
	}
	return resp
}

func buildBusinessList(businesses []models.Business, total int64, page, pageSize int) *dto.BusinessListResponse {
	responses := make([]*dto.BusinessResponse, 0, len(businesses))
	for i := range businesses {
		responses = append(responses, buildBusinessResponse(&businesses[i]))
	}
	return &dto.BusinessListResponse{
		Businesses: responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}
}
