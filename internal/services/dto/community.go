package dto

import "time"

// ======================
// Request DTOs
// ======================

type CreatePostRequest struct {
	Type     string `json:"type" validate:"required,oneof=news review event discussion"`
	Title    string `json:"title" validate:"required,max=200"`
	Content  string `json:"content" validate:"required,max=10000"`
	Category string `json:"category" validate:"omitempty,max=100"`

	// Review posts
	Rating *int `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`

	// Event posts
	EventDate     *string `json:"event_date,omitempty" validate:"omitempty,max=30"`
	EventTime     *string `json:"event_time,omitempty" validate:"omitempty,max=30"`
	EventLocation *string `json:"event_location,omitempty" validate:"omitempty,max=200"`
}

type UpdatePostRequest struct {
	Title         *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Content       *string `json:"content,omitempty" validate:"omitempty,max=10000"`
	Category      *string `json:"category,omitempty" validate:"omitempty,max=100"`
	Rating        *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	EventDate     *string `json:"event_date,omitempty" validate:"omitempty,max=30"`
	EventTime     *string `json:"event_time,omitempty" validate:"omitempty,max=30"`
	EventLocation *string `json:"event_location,omitempty" validate:"omitempty,max=200"`
}

type PostSearchCriteria struct {
	Type     string `form:"type" validate:"omitempty,oneof=news review event discussion"`
	Search   string `form:"q" validate:"omitempty,max=200"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"page_size" validate:"omitempty,min=1,max=100"`
}

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,max=5000"`
}

// ======================
// Response DTOs
// ======================

type PostResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Type          string    `json:"type"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Category      string    `json:"category,omitempty"`
	Rating        *int      `json:"rating,omitempty"`
	EventDate     *string   `json:"event_date,omitempty"`
	EventTime     *string   `json:"event_time,omitempty"`
	EventLocation *string   `json:"event_location,omitempty"`
	LikesCount    int64     `json:"likes_count"`
	CommentsCount int64     `json:"comments_count"`
	Liked         bool      `json:"liked"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type PostListResponse struct {
	Posts      []*PostResponse `json:"posts"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

type CommentResponse struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type LikeResponse struct {
	PostID     string `json:"post_id"`
	Liked      bool   `json:"liked"`
	LikesCount int64  `json:"likes_count"`
}
