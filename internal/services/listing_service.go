package services

import (
	"strconv"
	"time"

	"festacconnect_backend/internal/models"
	"festacconnect_backend/internal/repositories"
	"festacconnect_backend/internal/services/dto"
	"festacconnect_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ListingService interface {
	Create(db *gorm.DB, userID string, req *dto.CreateListingRequest) (*dto.ListingResponse, error)
	Get(db *gorm.DB, id, viewerID string) (*dto.ListingResponse, error)
	Browse(db *gorm.DB, criteria dto.ListingSearchCriteria) (*dto.ListingListResponse, error)
	MyListings(db *gorm.DB, userID string) (*dto.ListingListResponse, error)
	Update(db *gorm.DB, userID, id string, req *dto.UpdateListingRequest) (*dto.ListingResponse, error)
	Delete(db *gorm.DB, userID, id string, isAdmin bool) error
	MarkSold(db *gorm.DB, userID, id string) error
}

type ListingServiceImpl struct {
	listingRepo  repositories.ListingRepository
	favoriteRepo repositories.FavoriteRepository
}

func NewListingService(listingRepo repositories.ListingRepository, favoriteRepo repositories.FavoriteRepository) ListingService {
	return &ListingServiceImpl{listingRepo: listingRepo, favoriteRepo: favoriteRepo}
}

func (s *ListingServiceImpl) Create(db *gorm.DB, userID string, req *dto.CreateListingRequest) (*dto.ListingResponse, error) {
	priceType := models.PriceTypeFixed
	if req.PriceType != "" {
		priceType = models.PriceType(req.PriceType)
	}

	listing := &models.Listing{
		UserID:      userID,
		BusinessID:  req.BusinessID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Price:       req.Price,
		PriceType:   priceType,
		PriceLabel:  priceLabel(req.Price, priceType),
		Location:    req.Location,
		Phone:       req.Phone,
		Whatsapp:    req.Whatsapp,
		Instagram:   req.Instagram,
		Images:      req.Images,
		Status:      models.ListingStatusActive,
	}

	if err := s.listingRepo.Create(db, listing); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildListingResponse(listing), nil
}

// Get returns the listing and counts the view. The counter write is
// independent of the read: a lost increment is acceptable, a failed read
// is not. The favorited flag is personalized when a viewer is known.
func (s *ListingServiceImpl) Get(db *gorm.DB, id, viewerID string) (*dto.ListingResponse, error) {
	listing, err := s.listingRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrListingNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.listingRepo.IncrementViews(db, id); err == nil {
		listing.Views++
	}

	resp := buildListingResponse(listing)
	if viewerID != "" {
		resp.Favorited, _ = s.favoriteRepo.IsListingFavorited(db, viewerID, id)
	}
	return resp, nil
}

func (s *ListingServiceImpl) Browse(db *gorm.DB, criteria dto.ListingSearchCriteria) (*dto.ListingListResponse, error) {
	page, pageSize := normalizePage(criteria.Page, criteria.PageSize)

	filter := repositories.ListingFilter{
		Status:      models.ListingStatusActive,
		Category:    criteria.Category,
		Subcategory: criteria.Subcategory,
		Search:      criteria.Search,
		Sort:        criteria.Sort,
		Limit:       pageSize,
		Offset:      (page - 1) * pageSize,
	}

	listings, total, err := s.listingRepo.FindWithFilter(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildListingList(listings, total, page, pageSize), nil
}

func (s *ListingServiceImpl) MyListings(db *gorm.DB, userID string) (*dto.ListingListResponse, error) {
	listings, total, err := s.listingRepo.FindWithFilter(db, repositories.ListingFilter{UserID: userID})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildListingList(listings, total, 1, len(listings)), nil
}

func (s *ListingServiceImpl) Update(db *gorm.DB, userID, id string, req *dto.UpdateListingRequest) (*dto.ListingResponse, error) {
	listing, err := s.listingRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrListingNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if listing.UserID != userID {
		return nil, apperrors.ErrNotOwner
	}

	if req.Title != nil {
		listing.Title = *req.Title
	}
	if req.Description != nil {
		listing.Description = *req.Description
	}
	if req.Category != nil {
		listing.Category = *req.Category
	}
	if req.Subcategory != nil {
		listing.Subcategory = *req.Subcategory
	}
	if req.Price != nil {
		listing.Price = *req.Price
	}
	if req.PriceType != nil {
		listing.PriceType = models.PriceType(*req.PriceType)
	}
	if req.Price != nil || req.PriceType != nil {
		listing.PriceLabel = priceLabel(listing.Price, listing.PriceType)
	}
	if req.Location != nil {
		listing.Location = *req.Location
	}
	if req.Phone != nil {
		listing.Phone = *req.Phone
	}
	if req.Whatsapp != nil {
		listing.Whatsapp = *req.Whatsapp
	}
	if req.Instagram != nil {
		listing.Instagram = *req.Instagram
	}
	if req.Images != nil {
		listing.Images = *req.Images
	}
	if req.Status != nil {
		listing.Status = models.ListingStatus(*req.Status)
	}

	if err := s.listingRepo.Update(db, listing); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildListingResponse(listing), nil
}

func (s *ListingServiceImpl) Delete(db *gorm.DB, userID, id string, isAdmin bool) error {
	listing, err := s.listingRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrListingNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if listing.UserID != userID && !isAdmin {
		return apperrors.ErrNotOwner
	}
	if err := s.listingRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ListingServiceImpl) MarkSold(db *gorm.DB, userID, id string) error {
	listing, err := s.listingRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrListingNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if listing.UserID != userID {
		return apperrors.ErrNotOwner
	}
	listing.Status = models.ListingStatusSold
	if err := s.listingRepo.Update(db, listing); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// priceLabel renders the display price. Amounts get thousands separators;
// the suffix or prefix depends on the price type, e.g. 800000 per-year
// becomes "₦800,000/year".
func priceLabel(price float64, priceType models.PriceType) string {
	amount := "₦" + formatThousands(price)
	switch priceType {
	case models.PriceTypePerMonth:
		return amount + "/month"
	case models.PriceTypePerYear:
		return amount + "/year"
	case models.PriceTypeStarting:
		return "From " + amount
	default:
		return amount
	}
}

func formatThousands(v float64) string {
	raw := strconv.FormatFloat(v, 'f', -1, 64)

	intPart := raw
	fracPart := ""
	for i := 0; i < len(raw); i++ {
		if raw[i] == '.' {
			intPart = raw[:i]
			fracPart = raw[i:]
			break
		}
	}

	sign := ""
	if len(intPart) > 0 && intPart[0] == '-' {
		sign = "-"
		intPart = intPart[1:]
	}

	var out []byte
	for i, c := range []byte(intPart) {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return sign + string(out) + fracPart
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

func totalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

func buildListingResponse(listing *models.Listing) *dto.ListingResponse {
	return &dto.ListingResponse{
		ID:          listing.ID,
		UserID:      listing.UserID,
		BusinessID:  listing.BusinessID,
		Title:       listing.Title,
		Description: listing.Description,
		Category:    listing.Category,
		Subcategory: listing.Subcategory,
		Price:       listing.Price,
		PriceLabel:  listing.PriceLabel,
		PriceType:   string(listing.PriceType),
		Location:    listing.Location,
		Phone:       listing.Phone,
		Whatsapp:    listing.Whatsapp,
		Instagram:   listing.Instagram,
		Images:      listing.Images,
		Status:      string(listing.Status),
		Views:       listing.Views,
		// Expired windows read as not featured even before the sweep
		// clears the stored flag.
		IsFeatured:  listing.FeaturedNow(time.Now()),
		IsBoosted:   listing.IsBoosted,
		BoostedTill: listing.BoostedUntil,
		CreatedAt:   listing.CreatedAt,
		UpdatedAt:   listing.UpdatedAt,
	}
}

func buildListingList(listings []models.Listing, total int64, page, pageSize int) *dto.ListingListResponse {
	responses := make([]*dto.ListingResponse, 0, len(listings))
	for i := range listings {
		responses = append(responses, buildListingResponse(&listings[i]))
	}
	return &dto.ListingListResponse{
		Listings:   responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}
}
