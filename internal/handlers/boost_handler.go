package handlers

import (
	"net/http"

	"festacconnect_backend/internal/middleware"
	"festacconnect_backend/internal/services"
	"festacconnect_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BoostHandler struct {
	*BaseHandler
	boostService services.BoostService
}

func NewBoostHandler(base *BaseHandler, boostService services.BoostService) *BoostHandler {
	return &BoostHandler{
		BaseHandler:  base,
		boostService: boostService,
	}
}

func (h *BoostHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/boost/plans", h.Plans)

	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/listings/:listingId/boost", h.BoostListing)
		protected.POST("/businesses/:businessId/boost", h.BoostBusiness)
		protected.GET("/payments", h.PaymentHistory)
	}
}

func (h *BoostHandler) Plans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": h.boostService.Plans()})
}

func (h *BoostHandler) BoostListing(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.BoostRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	boost, err := h.boostService.BoostListing(h.GetDB(c), userID, c.Param("listingId"), req.Plan)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, boost)
}

func (h *BoostHandler) BoostBusiness(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.BoostRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	boost, err := h.boostService.BoostBusiness(h.GetDB(c), userID, c.Param("businessId"), req.Plan)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, boost)
}

func (h *BoostHandler) PaymentHistory(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, pageSize := ParsePagination(c)

	payments, err := h.boostService.PaymentHistory(h.GetDB(c), userID, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}
