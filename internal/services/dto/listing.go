package dto

import "time"

// ======================
// Request DTOs
// ======================

type CreateListingRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"omitempty,max=5000"`
	Category    string   `json:"category" validate:"required,max=100"`
	Subcategory string   `json:"subcategory" validate:"omitempty,max=100"`
	Price       float64  `json:"price" validate:"omitempty,gte=0"`
	PriceType   string   `json:"price_type" validate:"omitempty,oneof=fixed negotiable starting per-month per-year"`
	Location    string   `json:"location" validate:"omitempty,max=200"`
	Phone       string   `json:"phone" validate:"omitempty,max=20"`
	Whatsapp    string   `json:"whatsapp" validate:"omitempty,max=20"`
	Instagram   string   `json:"instagram" validate:"omitempty,max=100"`
	Images      []string `json:"images" validate:"omitempty,max=10,dive,url"`
	BusinessID  *string  `json:"business_id,omitempty" validate:"omitempty,uuid"`
}

type UpdateListingRequest struct {
	Title       *string   `json:"title,omitempty" validate:"omitempty,max=200"`
	Description *string   `json:"description,omitempty" validate:"omitempty,max=5000"`
	Category    *string   `json:"category,omitempty" validate:"omitempty,max=100"`
	Subcategory *string   `json:"subcategory,omitempty" validate:"omitempty,max=100"`
	Price       *float64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	PriceType   *string   `json:"price_type,omitempty" validate:"omitempty,oneof=fixed negotiable starting per-month per-year"`
	Location    *string   `json:"location,omitempty" validate:"omitempty,max=200"`
	Phone       *string   `json:"phone,omitempty" validate:"omitempty,max=20"`
	Whatsapp    *string   `json:"whatsapp,omitempty" validate:"omitempty,max=20"`
	Instagram   *string   `json:"instagram,omitempty" validate:"omitempty,max=100"`
	Images      *[]string `json:"images,omitempty" validate:"omitempty,max=10,dive,url"`
	Status      *string   `json:"status,omitempty" validate:"omitempty,oneof=active pending sold suspended"`
}

type ListingSearchCriteria struct {
	Category    string `form:"category"`
	Subcategory string `form:"subcategory"`
	Search      string `form:"q" validate:"omitempty,max=200"`
	Sort        string `form:"sort" validate:"omitempty,oneof=newest price_asc price_desc popular"`
	Page        int    `form:"page" validate:"omitempty,min=1"`
	PageSize    int    `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// ======================
// Response DTOs
// ======================

type ListingResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	BusinessID  *string    `json:"business_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Subcategory string     `json:"subcategory,omitempty"`
	Price       float64    `json:"price"`
	PriceLabel  string     `json:"price_label"`
	PriceType   string     `json:"price_type"`
	Location    string     `json:"location"`
	Phone       string     `json:"phone,omitempty"`
	Whatsapp    string     `json:"whatsapp,omitempty"`
	Instagram   string     `json:"instagram,omitempty"`
	Images      []string   `json:"images"`
	Status      string     `json:"status"`
	Views       int64      `json:"views"`
	IsFeatured  bool       `json:"is_featured"`
	IsBoosted   bool       `json:"is_boosted"`
	BoostedTill *time.Time `json:"boosted_until,omitempty"`
	Favorited   bool       `json:"favorited"` // personalized on detail reads
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type ListingListResponse struct {
	Listings   []*ListingResponse `json:"listings"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}
