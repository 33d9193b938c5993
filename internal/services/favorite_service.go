package services

import (
	"festacconnect_backend/internal/models"
	"festacconnect_backend/internal/repositories"
	"festacconnect_backend/internal/services/dto"
	"festacconnect_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type FavoriteService interface {
	Add(db *gorm.DB, userID string, req *dto.AddFavoriteRequest) (*dto.FavoriteResponse, error)
	RemoveListing(db *gorm.DB, userID, listingID string) error
	RemoveBusiness(db *gorm.DB, userID, businessID string) error
	List(db *gorm.DB, userID string) (*dto.FavoriteListResponse, error)
}

type FavoriteServiceImpl struct {
	favoriteRepo repositories.FavoriteRepository
	listingRepo  repositories.ListingRepository
	businessRepo repositories.BusinessRepository
}

func NewFavoriteService(
	favoriteRepo repositories.FavoriteRepository,
	listingRepo repositories.ListingRepository,
	businessRepo repositories.BusinessRepository,
) FavoriteService {
	return &FavoriteServiceImpl{
		favoriteRepo: favoriteRepo,
		listingRepo:  listingRepo,
		businessRepo: businessRepo,
	}
}

// Add bookmarks exactly one target. Re-adding an existing favorite is not
// an error; the stored row is the answer either way.
func (s *FavoriteServiceImpl) Add(db *gorm.DB, userID string, req *dto.AddFavoriteRequest) (*dto.FavoriteResponse, error) {
	switch {
	case req.ListingID != nil && req.BusinessID != nil:
		return nil, apperrors.ErrInvalidOperation("favorite", "Specify either listing_id or business_id, not both")
	case req.ListingID != nil:
		if _, err := s.listingRepo.FindByID(db, *req.ListingID); err != nil {
			if apperrors.Is(err, repositories.ErrListingNotFound) {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.InternalError(err)
		}
		fav, err := s.favoriteRepo.AddListing(db, userID, *req.ListingID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrAlreadyFavorited) {
				return s.existing(db, userID, req)
			}
			return nil, apperrors.InternalError(err)
		}
		return buildFavoriteResponse(fav), nil
	case req.BusinessID != nil:
		if _, err := s.businessRepo.FindByID(db, *req.BusinessID); err != nil {
			if apperrors.Is(err, repositories.ErrBusinessNotFound) {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.InternalError(err)
		}
		fav, err := s.favoriteRepo.AddBusiness(db, userID, *req.BusinessID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrAlreadyFavorited) {
				return s.existing(db, userID, req)
			}
			return nil, apperrors.InternalError(err)
		}
		return buildFavoriteResponse(fav), nil
	default:
		return nil, apperrors.ErrInvalidOperation("favorite", "Specify listing_id or business_id")
	}
}

func (s *FavoriteServiceImpl) existing(db *gorm.DB, userID string, req *dto.AddFavoriteRequest) (*dto.FavoriteResponse, error) {
	favorites, err := s.favoriteRepo.FindByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for i := range favorites {
		fav := &favorites[i]
		if req.ListingID != nil && fav.ListingID != nil && *fav.ListingID == *req.ListingID {
			return buildFavoriteResponse(fav), nil
		}
		if req.BusinessID != nil && fav.BusinessID != nil && *fav.BusinessID == *req.BusinessID {
			return buildFavoriteResponse(fav), nil
		}
	}
	return nil, apperrors.ErrNotFound(repositories.ErrFavoriteNotFound)
}

func (s *FavoriteServiceImpl) RemoveListing(db *gorm.DB, userID, listingID string) error {
	if err := s.favoriteRepo.RemoveListing(db, userID, listingID); err != nil {
		if apperrors.Is(err, repositories.ErrFavoriteNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *FavoriteServiceImpl) RemoveBusiness(db *gorm.DB, userID, businessID string) error {
	if err := s.favoriteRepo.RemoveBusiness(db, userID, businessID); err != nil {
		if apperrors.Is(err, repositories.ErrFavoriteNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *FavoriteServiceImpl) List(db *gorm.DB, userID string) (*dto.FavoriteListResponse, error) {
	favorites, err := s.favoriteRepo.FindByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.FavoriteResponse, 0, len(favorites))
	for i := range favorites {
		responses = append(responses, buildFavoriteResponse(&favorites[i]))
	}
	return &dto.FavoriteListResponse{
		Favorites: responses,
		Total:     len(responses),
	}, nil
}

func buildFavoriteResponse(fav *models.Favorite) *dto.FavoriteResponse {
	resp := &dto.FavoriteResponse{
		ID:         fav.ID,
		UserID:     fav.UserID,
		ListingID:  fav.ListingID,
		BusinessID: fav.BusinessID,
		CreatedAt:  fav.CreatedAt,
	}
	if fav.Listing != nil {
		resp.Listing = buildListingResponse(fav.Listing)
	}
	if fav.Business != nil {
		resp.Business = buildBusinessResponse(fav.Business)
	}
	return resp
}
