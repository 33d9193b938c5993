package handlers

import (
	"net/http"

	"festacconnect_backend/internal/middleware"
	"festacconnect_backend/internal/models"
	"festacconnect_backend/internal/services"
	"festacconnect_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CommunityHandler struct {
	*BaseHandler
	communityService services.CommunityService
}

func NewCommunityHandler(base *BaseHandler, communityService services.CommunityService) *CommunityHandler {
	return &CommunityHandler{
		BaseHandler:      base,
		communityService: communityService,
	}
}

func (h *CommunityHandler) RegisterRoutes(r *gin.RouterGroup) {
	// The feed is public but the liked flag is personalized when a token
	// is present.
	public := r.Group("/community")
	public.Use(middleware.OptionalAuthMiddleware())
	{
		public.GET("/posts", h.Feed)
		public.GET("/posts/:postId", h.GetPost)
		public.GET("/posts/:postId/comments", h.Comments)
	}

	protected := r.Group("/community")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/posts", h.CreatePost)
		protected.PUT("/posts/:postId", h.UpdatePost)
		protected.DELETE("/posts/:postId", h.DeletePost)
		protected.POST("/posts/:postId/like", h.ToggleLike)
		protected.POST("/posts/:postId/comments", h.AddComment)
		protected.DELETE("/comments/:commentId", h.DeleteComment)
	}
}

func (h *CommunityHandler) Feed(c *gin.Context) {
	var criteria dto.PostSearchCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}

	posts, err := h.communityService.Feed(h.GetDB(c), middleware.GetUserID(c), criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *CommunityHandler) GetPost(c *gin.Context) {
	post, err := h.communityService.GetPost(h.GetDB(c), c.Param("postId"), middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *CommunityHandler) CreatePost(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	post, err := h.communityService.CreatePost(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *CommunityHandler) UpdatePost(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePostRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	post, err := h.communityService.UpdatePost(h.GetDB(c), userID, c.Param("postId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *CommunityHandler) DeletePost(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	isModerator := middleware.IsRole(c, models.AppRoleAdmin) || middleware.IsRole(c, models.AppRoleModerator)
	if err := h.communityService.DeletePost(h.GetDB(c), userID, c.Param("postId"), isModerator); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

func (h *CommunityHandler) ToggleLike(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	like, err := h.communityService.ToggleLike(h.GetDB(c), userID, c.Param("postId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, like)
}

func (h *CommunityHandler) AddComment(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	comment, err := h.communityService.AddComment(h.GetDB(c), userID, c.Param("postId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (h *CommunityHandler) Comments(c *gin.Context) {
	comments, err := h.communityService.Comments(h.GetDB(c), c.Param("postId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (h *CommunityHandler) DeleteComment(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	isModerator := middleware.IsRole(c, models.AppRoleAdmin) || middleware.IsRole(c, models.AppRoleModerator)
	if err := h.communityService.DeleteComment(h.GetDB(c), userID, c.Param("commentId"), isModerator); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}
