package dto

import "time"

type AddFavoriteRequest struct {
	ListingID  *string `json:"listing_id,omitempty" validate:"omitempty,uuid"`
	BusinessID *string `json:"business_id,omitempty" validate:"omitempty,uuid"`
}

type FavoriteResponse struct {
	ID         string            `json:"id"`
	UserID     string            `json:"user_id"`
	ListingID  *string           `json:"listing_id,omitempty"`
	BusinessID *string           `json:"business_id,omitempty"`
	Listing    *ListingResponse  `json:"listing,omitempty"`
	Business   *BusinessResponse `json:"business,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

type FavoriteListResponse struct {
	Favorites []*FavoriteResponse `json:"favorites"`
	Total     int                 `json:"total"`
}
