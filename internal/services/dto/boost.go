package dto

import "time"

// ======================
// Request DTOs
// ======================

type BoostRequest struct {
	Plan string `json:"plan" validate:"required,oneof=weekly monthly premium"`
}

// ======================
// Response DTOs
// ======================

type BoostPlanResponse struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Days     int     `json:"days"`
}

type BoostResponse struct {
	Payment       *PaymentResponse `json:"payment"`
	FeaturedUntil time.Time        `json:"featured_until"`
}

type PaymentResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ListingID   *string   `json:"listing_id,omitempty"`
	BusinessID  *string   `json:"business_id,omitempty"`
	PaymentType string    `json:"payment_type"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	Reference   string    `json:"reference"`
	Provider    string    `json:"provider"`
	CreatedAt   time.Time `json:"created_at"`
}

type PaymentListResponse struct {
	Payments []*PaymentResponse `json:"payments"`
	Total    int64              `json:"total"`
}
