package models

type UserStatus string
type AppRole string
type AccountType string
type ListingStatus string
type BusinessStatus string
type JobStatus string
type PostStatus string
type PriceType string
type JobType string
type PostType string
type ApplicationStatus string
type PaymentStatus string
type PaymentType string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusBanned    UserStatus = "banned"

	AppRoleAdmin     AppRole = "admin"
	AppRoleModerator AppRole = "moderator"
	AppRoleUser      AppRole = "user"

	AccountTypeBuyer  AccountType = "buyer"
	AccountTypeSeller AccountType = "seller"

	ListingStatusActive    ListingStatus = "active"
	ListingStatusPending   ListingStatus = "pending"
	ListingStatusSold      ListingStatus = "sold"
	ListingStatusSuspended ListingStatus = "suspended"

	BusinessStatusActive    BusinessStatus = "active"
	BusinessStatusPending   BusinessStatus = "pending"
	BusinessStatusSuspended BusinessStatus = "suspended"

	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"

	PostStatusActive  PostStatus = "active"
	PostStatusRemoved PostStatus = "removed"

	PriceTypeFixed      PriceType = "fixed"
	PriceTypeNegotiable PriceType = "negotiable"
	PriceTypeStarting   PriceType = "starting"
	PriceTypePerMonth   PriceType = "per-month"
	PriceTypePerYear    PriceType = "per-year"

	JobTypeFullTime  JobType = "full-time"
	JobTypePartTime  JobType = "part-time"
	JobTypeContract  JobType = "contract"
	JobTypeFreelance JobType = "freelance"

	PostTypeNews       PostType = "news"
	PostTypeReview     PostType = "review"
	PostTypeEvent      PostType = "event"
	PostTypeDiscussion PostType = "discussion"

	ApplicationStatusSubmitted ApplicationStatus = "submitted"
	ApplicationStatusReviewed  ApplicationStatus = "reviewed"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"

	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"

	PaymentTypeFeaturedListing  PaymentType = "featured_listing"
	PaymentTypeFeaturedBusiness PaymentType = "featured_business"
)
