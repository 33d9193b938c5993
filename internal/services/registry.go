package services

import (
	"festacconnect_backend/internal/email"
	"festacconnect_backend/internal/repositories"
	"festacconnect_backend/internal/storage"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService         AuthService
	ProfileService      ProfileService
	ListingService      ListingService
	BusinessService     BusinessService
	JobService          JobService
	CommunityService    CommunityService
	FavoriteService     FavoriteService
	NotificationService NotificationService
	BoostService        BoostService
	ReviewService       ReviewService
	UploadService       UploadService
}

// NewServiceContainer wires repositories into services. Repositories are
// stateless; the database handle flows in per call.
func NewServiceContainer(store storage.Storage, mailer email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	refreshTokenRepo := repositories.NewRefreshTokenRepository()
	listingRepo := repositories.NewListingRepository()
	businessRepo := repositories.NewBusinessRepository()
	jobRepo := repositories.NewJobRepository()
	communityRepo := repositories.NewCommunityRepository()
	favoriteRepo := repositories.NewFavoriteRepository()
	notificationRepo := repositories.NewNotificationRepository()
	paymentRepo := repositories.NewPaymentRepository()
	reviewRepo := repositories.NewReviewRepository()
	uploadRepo := repositories.NewUploadRepository()

	return &ServiceContainer{
		AuthService:         NewAuthService(userRepo, profileRepo, refreshTokenRepo, mailer),
		ProfileService:      NewProfileService(userRepo, profileRepo),
		ListingService:      NewListingService(listingRepo, favoriteRepo),
		BusinessService:     NewBusinessService(businessRepo, favoriteRepo),
		JobService:          NewJobService(jobRepo, notificationRepo),
		CommunityService:    NewCommunityService(communityRepo),
		FavoriteService:     NewFavoriteService(favoriteRepo, listingRepo, businessRepo),
		NotificationService: NewNotificationService(notificationRepo),
		BoostService:        NewBoostService(paymentRepo, listingRepo, businessRepo, notificationRepo),
		ReviewService:       NewReviewService(reviewRepo, businessRepo, notificationRepo),
		UploadService:       NewUploadService(uploadRepo, store),
	}
}
