package handlers

import (
	"net/http"

	"festacconnect_backend/internal/middleware"
	"festacconnect_backend/internal/models"
	"festacconnect_backend/internal/services"
	"festacconnect_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	*BaseHandler
	listingService services.ListingService
}

func NewListingHandler(base *BaseHandler, listingService services.ListingService) *ListingHandler {
	return &ListingHandler{
		BaseHandler:    base,
		listingService: listingService,
	}
}

func (h *ListingHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Detail reads are public but the favorited flag is personalized when
	// a token is present.
	public := r.Group("/listings")
	public.Use(middleware.OptionalAuthMiddleware())
	{
		public.GET("", h.Browse)
		public.GET("/:listingId", h.Get)
	}

	protected := r.Group("/listings")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", h.Create)
		protected.GET("/my", h.MyListings)
		protected.PUT("/:listingId", h.Update)
		protected.POST("/:listingId/sold", h.MarkSold)
		protected.DELETE("/:listingId", h.Delete)
	}
}

func (h *ListingHandler) Browse(c *gin.Context) {
	var criteria dto.ListingSearchCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}

	listings, err := h.listingService.Browse(h.GetDB(c), criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, listings)
}

func (h *ListingHandler) Get(c *gin.Context) {
	listing, err := h.listingService.Get(h.GetDB(c), c.Param("listingId"), middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

func (h *ListingHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateListingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	listing, err := h.listingService.Create(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, listing)
}

func (h *ListingHandler) MyListings(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	listings, err := h.listingService.MyListings(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, listings)
}

func (h *ListingHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateListingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	listing, err := h.listingService.Update(h.GetDB(c), userID, c.Param("listingId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

func (h *ListingHandler) MarkSold(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.listingService.MarkSold(h.GetDB(c), userID, c.Param("listingId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Listing marked as sold"})
}

func (h *ListingHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	isAdmin := middleware.IsRole(c, models.AppRoleAdmin)
	if err := h.listingService.Delete(h.GetDB(c), userID, c.Param("listingId"), isAdmin); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Listing deleted"})
}
