package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	ProfileHandler      *ProfileHandler
	ListingHandler      *ListingHandler
	BusinessHandler     *BusinessHandler
	JobHandler          *JobHandler
	CommunityHandler    *CommunityHandler
	FavoriteHandler     *FavoriteHandler
	NotificationHandler *NotificationHandler
	BoostHandler        *BoostHandler
	UploadHandler       *UploadHandler
}
