package services

import (
	"festacconnect_backend/internal/models"
	"festacconnect_backend/internal/repositories"
	"festacconnect_backend/internal/services/dto"
	"festacconnect_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CommunityService interface {
	CreatePost(db *gorm.DB, userID string, req *dto.CreatePostRequest) (*dto.PostResponse, error)
	GetPost(db *gorm.DB, postID, viewerID string) (*dto.PostResponse, error)
	Feed(db *gorm.DB, viewerID string, criteria dto.PostSearchCriteria) (*dto.PostListResponse, error)
	UpdatePost(db *gorm.DB, userID, postID string, req *dto.UpdatePostRequest) (*dto.PostResponse, error)
	DeletePost(db *gorm.DB, userID, postID string, isModerator bool) error

	ToggleLike(db *gorm.DB, userID, postID string) (*dto.LikeResponse, error)

	AddComment(db *gorm.DB, userID, postID string, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	Comments(db *gorm.DB, postID string) ([]*dto.CommentResponse, error)
	DeleteComment(db *gorm.DB, userID, commentID string, isModerator bool) error
}

type CommunityServiceImpl struct {
	communityRepo repositories.CommunityRepository
}

func NewCommunityService(communityRepo repositories.CommunityRepository) CommunityService {
	return &CommunityServiceImpl{communityRepo: communityRepo}
}

// validatePostFields enforces the per-type payload shape: a rating belongs
// to review posts, event details to event posts.
func validatePostFields(postType models.PostType, rating *int, eventDate, eventTime, eventLocation *string) error {
	if rating != nil && postType != models.PostTypeReview {
		return apperrors.ErrInvalidOperation("post", "Rating is only valid for review posts")
	}
	if (eventDate != nil || eventTime != nil || eventLocation != nil) && postType != models.PostTypeEvent {
		return apperrors.ErrInvalidOperation("post", "Event fields are only valid for event posts")
	}
	return nil
}

func (s *CommunityServiceImpl) CreatePost(db *gorm.DB, userID string, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	if err := validatePostFields(models.PostType(req.Type), req.Rating, req.EventDate, req.EventTime, req.EventLocation); err != nil {
		return nil, err
	}

	post := &models.CommunityPost{
		UserID:        userID,
		Type:          models.PostType(req.Type),
		Title:         req.Title,
		Content:       req.Content,
		Category:      req.Category,
		Rating:        req.Rating,
		EventDate:     req.EventDate,
		EventTime:     req.EventTime,
		EventLocation: req.EventLocation,
		Status:        models.PostStatusActive,
	}

	if err := s.communityRepo.CreatePost(db, post); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildPostResponse(post, false), nil
}

func (s *CommunityServiceImpl) GetPost(db *gorm.DB, postID, viewerID string) (*dto.PostResponse, error) {
	post, err := s.communityRepo.FindPostByID(db, postID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	liked := false
	if viewerID != "" {
		liked, _ = s.communityRepo.HasLiked(db, postID, viewerID)
	}
	return buildPostResponse(post, liked), nil
}

func (s *CommunityServiceImpl) Feed(db *gorm.DB, viewerID string, criteria dto.PostSearchCriteria) (*dto.PostListResponse, error) {
	page, pageSize := normalizePage(criteria.Page, criteria.PageSize)

	filter := repositories.PostFilter{
		Status: models.PostStatusActive,
		Type:   models.PostType(criteria.Type),
		Search: criteria.Search,
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	}

	posts, total, err := s.communityRepo.FindPostsWithFilter(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.PostResponse, 0, len(posts))
	for i := range posts {
		liked := false
		if viewerID != "" {
			liked, _ = s.communityRepo.HasLiked(db, posts[i].ID, viewerID)
		}
		responses = append(responses, buildPostResponse(&posts[i], liked))
	}

	return &dto.PostListResponse{
		Posts:      responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

func (s *CommunityServiceImpl) UpdatePost(db *gorm.DB, userID, postID string, req *dto.UpdatePostRequest) (*dto.PostResponse, error) {
	post, err := s.communityRepo.FindPostByID(db, postID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if post.UserID != userID {
		return nil, apperrors.ErrNotOwner
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Category != nil {
		post.Category = *req.Category
	}
	if req.Rating != nil {
		post.Rating = req.Rating
	}
	if req.EventDate != nil {
		post.EventDate = req.EventDate
	}
	if req.EventTime != nil {
		post.EventTime = req.EventTime
	}
	if req.EventLocation != nil {
		post.EventLocation = req.EventLocation
	}

	// The type itself is immutable, so the merged post must still respect
	// its type's field shape.
	if err := validatePostFields(post.Type, post.Rating, post.EventDate, post.EventTime, post.EventLocation); err != nil {
		return nil, err
	}

	if err := s.communityRepo.UpdatePost(db, post); err != nil {
		return nil, apperrors.InternalError(err)
	}

	liked, _ := s.communityRepo.HasLiked(db, postID, userID)
	return buildPostResponse(post, liked), nil
}

func (s *CommunityServiceImpl) DeletePost(db *gorm.DB, userID, postID string, isModerator bool) error {
	post, err := s.communityRepo.FindPostByID(db, postID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if post.UserID != userID && !isModerator {
		return apperrors.ErrNotOwner
	}
	if err := s.communityRepo.DeletePost(db, postID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ToggleLike flips the viewer's like. The unique index arbitrates races:
// whichever concurrent request lands second takes the opposite branch.
func (s *CommunityServiceImpl) ToggleLike(db *gorm.DB, userID, postID string) (*dto.LikeResponse, error) {
	if _, err := s.communityRepo.FindPostByID(db, postID); err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	liked := true
	err := s.communityRepo.AddLike(db, postID, userID)
	switch {
	case err == nil:
	case apperrors.Is(err, repositories.ErrAlreadyLiked):
		liked = false
		if err := s.communityRepo.RemoveLike(db, postID, userID); err != nil &&
			!apperrors.Is(err, repositories.ErrLikeNotFound) {
			return nil, apperrors.InternalError(err)
		}
	default:
		return nil, apperrors.InternalError(err)
	}

	post, err := s.communityRepo.FindPostByID(db, postID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LikeResponse{
		PostID:     postID,
		Liked:      liked,
		LikesCount: post.LikesCount,
	}, nil
}

func (s *CommunityServiceImpl) AddComment(db *gorm.DB, userID, postID string, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if _, err := s.communityRepo.FindPostByID(db, postID); err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	comment := &models.CommunityComment{
		PostID:  postID,
		UserID:  userID,
		Content: req.Content,
	}
	if err := s.communityRepo.CreateComment(db, comment); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildCommentResponse(comment), nil
}

func (s *CommunityServiceImpl) Comments(db *gorm.DB, postID string) ([]*dto.CommentResponse, error) {
	comments, err := s.communityRepo.FindCommentsByPost(db, postID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	responses := make([]*dto.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, buildCommentResponse(&comments[i]))
	}
	return responses, nil
}

func (s *CommunityServiceImpl) DeleteComment(db *gorm.DB, userID, commentID string, isModerator bool) error {
	comment, err := s.communityRepo.FindCommentByID(db, commentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCommentNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if comment.UserID != userID && !isModerator {
		return apperrors.ErrNotOwner
	}
	if err := s.communityRepo.DeleteComment(db, commentID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func buildPostResponse(post *models.CommunityPost, liked bool) *dto.PostResponse {
	return &dto.PostResponse{
		ID:            post.ID,
		UserID:        post.UserID,
		Type:          string(post.Type),
		Title:         post.Title,
		Content:       post.Content,
		Category:      post.Category,
		Rating:        post.Rating,
		EventDate:     post.EventDate,
		EventTime:     post.EventTime,
		EventLocation: post.EventLocation,
		LikesCount:    post.LikesCount,
		CommentsCount: post.CommentsCount,
		Liked:         liked,
		CreatedAt:     post.CreatedAt,
		UpdatedAt:     post.UpdatedAt,
	}
}

func buildCommentResponse(comment *models.CommunityComment) *dto.CommentResponse {
	return &dto.CommentResponse{
		ID:        comment.ID,
		PostID:    comment.PostID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}
