package dto

import (
	"time"

	"gorm.io/datatypes"
)

// ======================
// Request DTOs
// ======================

type CreateBusinessRequest struct {
	Name           string         `json:"name" validate:"required,max=200"`
	Description    string         `json:"description" validate:"omitempty,max=5000"`
	CategorySlug   string         `json:"category_slug" validate:"omitempty,slug"`
	Subcategory    string         `json:"subcategory" validate:"omitempty,max=100"`
	Location       string         `json:"location" validate:"omitempty,max=200"`
	Phone          string         `json:"phone" validate:"omitempty,max=20"`
	Whatsapp       string         `json:"whatsapp" validate:"omitempty,max=20"`
	Instagram      string         `json:"instagram" validate:"omitempty,max=100"`
	Website        string         `json:"website" validate:"omitempty,url"`
	Email          string         `json:"email" validate:"omitempty,email"`
	Services       []string       `json:"services" validate:"omitempty,max=20,dive,max=100"`
	Images         []string       `json:"images" validate:"omitempty,max=10,dive,url"`
	Hours          datatypes.JSON `json:"hours,omitempty"`
	OffersDelivery string         `json:"offers_delivery" validate:"omitempty,max=50"`
	SellsOnline    string         `json:"sells_online" validate:"omitempty,max=50"`
}

type UpdateBusinessRequest struct {
	Name           *string         `json:"name,omitempty" validate:"omitempty,max=200"`
	Description    *string         `json:"description,omitempty" validate:"omitempty,max=5000"`
	CategorySlug   *string         `json:"category_slug,omitempty" validate:"omitempty,slug"`
	Subcategory    *string         `json:"subcategory,omitempty" validate:"omitempty,max=100"`
	Location       *string         `json:"location,omitempty" validate:"omitempty,max=200"`
	Phone          *string         `json:"phone,omitempty" validate:"omitempty,max=20"`
	Whatsapp       *string         `json:"whatsapp,omitempty" validate:"omitempty,max=20"`
	Instagram      *string         `json:"instagram,omitempty" validate:"omitempty,max=100"`
	Website        *string         `json:"website,omitempty" validate:"omitempty,url"`
	Email          *string         `json:"email,omitempty" validate:"omitempty,email"`
	Services       *[]string       `json:"services,omitempty" validate:"omitempty,max=20,dive,max=100"`
	Images         *[]string       `json:"images,omitempty" validate:"omitempty,max=10,dive,url"`
	Hours          *datatypes.JSON `json:"hours,omitempty"`
	OffersDelivery *string         `json:"offers_delivery,omitempty" validate:"omitempty,max=50"`
	SellsOnline    *string         `json:"sells_online,omitempty" validate:"omitempty,max=50"`
	Status         *string         `json:"status,omitempty" validate:"omitempty,oneof=active pending suspended"`
}

type BusinessSearchCriteria struct {
	Category string `form:"category" validate:"omitempty,slug"`
	Search   string `form:"q" validate:"omitempty,max=200"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// ======================
// Response DTOs
// ======================

type BusinessResponse struct {
	ID             string         `json:"id"`
	UserID         string         `json:"user_id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	CategoryName   string         `json:"category_name,omitempty"`
	CategorySlug   string         `json:"category_slug,omitempty"`
	Subcategory    string         `json:"subcategory,omitempty"`
	Location       string         `json:"location"`
	Phone          string         `json:"phone,omitempty"`
	Whatsapp       string         `json:"whatsapp,omitempty"`
	Instagram      string         `json:"instagram,omitempty"`
	Website        string         `json:"website,omitempty"`
	Email          string         `json:"email,omitempty"`
	Services       []string       `json:"services"`
	Images         []string       `json:"images"`
	Hours          datatypes.JSON `json:"hours,omitempty"`
	Status         string         `json:"status"`
	IsFeatured     bool           `json:"is_featured"`
	Favorited      bool           `json:"favorited"` // personalized on detail reads
	Rating         float64        `json:"rating"`
	ReviewCount    int            `json:"review_count"`
	OffersDelivery string         `json:"offers_delivery,omitempty"`
	SellsOnline    string         `json:"sells_online,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

type BusinessListResponse struct {
	Businesses []*BusinessResponse `json:"businesses"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalPages int                 `json:"total_pages"`
}

type BusinessCategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	Icon string `json:"icon,omitempty"`
}
