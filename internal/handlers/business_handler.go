package handlers

import (
	"net/http"

	"festacconnect_backend/internal/middleware"
	"festacconnect_backend/internal/models"
	"festacconnect_backend/internal/services"
	"festacconnect_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BusinessHandler struct {
	*BaseHandler
	businessService services.BusinessService
	reviewService   services.ReviewService
}

func NewBusinessHandler(base *BaseHandler, businessService services.BusinessService, reviewService services.ReviewService) *BusinessHandler {
	return &BusinessHandler{
		BaseHandler:     base,
		businessService: businessService,
		reviewService:   reviewService,
	}
}

func (h *BusinessHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Detail reads are public but the favorited flag is personalized when
	// a token is present.
	public := r.Group("/businesses")
	public.Use(middleware.OptionalAuthMiddleware())
	{
		public.GET("", h.Browse)
		public.GET("/categories", h.Categories)
		public.GET("/:businessId", h.Get)
		public.GET("/:businessId/reviews", h.Reviews)
	}

	protected := r.Group("/businesses")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", h.Create)
		protected.GET("/my", h.MyBusinesses)
		protected.PUT("/:businessId", h.Update)
		protected.DELETE("/:businessId", h.Delete)
		protected.POST("/:businessId/reviews", h.CreateReview)
	}

	reviews := r.Group("/reviews")
	reviews.Use(middleware.AuthMiddleware())
	{
		reviews.PUT("/:reviewId", h.UpdateReview)
		reviews.DELETE("/:reviewId", h.DeleteReview)
	}
}

func (h *BusinessHandler) Browse(c *gin.Context) {
	var criteria dto.BusinessSearchCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}

	businesses, err := h.businessService.Browse(h.GetDB(c), criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, businesses)
}

func (h *BusinessHandler) Categories(c *gin.Context) {
	categories, err := h.businessService.Categories(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *BusinessHandler) Get(c *gin.Context) {
	business, err := h.businessService.Get(h.GetDB(c), c.Param("businessId"), middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, business)
}

func (h *BusinessHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBusinessRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	business, err := h.businessService.Create(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, business)
}

func (h *BusinessHandler) MyBusinesses(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	businesses, err := h.businessService.MyBusinesses(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, businesses)
}

func (h *BusinessHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateBusinessRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	business, err := h.businessService.Update(h.GetDB(c), userID, c.Param("businessId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, business)
}

func (h *BusinessHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	isAdmin := middleware.IsRole(c, models.AppRoleAdmin)
	if err := h.businessService.Delete(h.GetDB(c), userID, c.Param("businessId"), isAdmin); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Business deleted"})
}

// --- Reviews ---

func (h *BusinessHandler) Reviews(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	reviews, err := h.reviewService.ListByBusiness(h.GetDB(c), c.Param("businessId"), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

func (h *BusinessHandler) CreateReview(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	review, err := h.reviewService.Create(h.GetDB(c), userID, c.Param("businessId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (h *BusinessHandler) UpdateReview(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateReviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	review, err := h.reviewService.Update(h.GetDB(c), userID, c.Param("reviewId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

func (h *BusinessHandler) DeleteReview(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	isModerator := middleware.IsRole(c, models.AppRoleAdmin) || middleware.IsRole(c, models.AppRoleModerator)
	if err := h.reviewService.Delete(h.GetDB(c), userID, c.Param("reviewId"), isModerator); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}
