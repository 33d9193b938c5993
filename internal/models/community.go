package models

type CommunityPost struct {
	BaseModel
	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`

	Type     PostType `gorm:"type:varchar(20);not null;default:'discussion';index" json:"type"`
	Title    string   `gorm:"not null" json:"title"`
	Content  string   `gorm:"not null" json:"content"`
	Category string   `json:"category"`

	// Review posts only
	Rating *int `json:"rating"`

	// Event posts only
	EventDate     *string `json:"event_date"`
	EventTime     *string `json:"event_time"`
	EventLocation *string `json:"event_location"`

	// Maintained by atomic increments in the same transaction as the
	// like/comment row write; never client-computed.
	LikesCount    int64 `gorm:"default:0" json:"likes_count"`
	CommentsCount int64 `gorm:"default:0" json:"comments_count"`

	Status PostStatus `gorm:"type:varchar(20);default:'active';index" json:"status"`
}

func (CommunityPost) TableName() string { return "community_posts" }

type CommunityComment struct {
	BaseModel
	PostID  string `gorm:"type:uuid;not null;index" json:"post_id"`
	UserID  string `gorm:"type:uuid;not null;index" json:"user_id"`
	Content string `gorm:"not null" json:"content"`
}

func (CommunityComment) TableName() string { return "community_comments" }

// CommunityLike existence is the "liked" signal. The unique index makes the
// like toggle race-free: concurrent inserts collapse to one row.
type CommunityLike struct {
	BaseModel
	PostID string `gorm:"type:uuid;not null;uniqueIndex:idx_like_post_user" json:"post_id"`
	UserID string `gorm:"type:uuid;not null;uniqueIndex:idx_like_post_user" json:"user_id"`
}

func (CommunityLike) TableName() string { return "community_likes" }
