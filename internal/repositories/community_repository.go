package repositories

import (
	"errors"

	"festacconnect_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPostNotFound    = errors.New("community post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrAlreadyLiked    = errors.New("post already liked")
	ErrLikeNotFound    = errors.New("like not found")
)

// PostFilter drives the community feed query.
type PostFilter struct {
	Status models.PostStatus
	Type   models.PostType
	Search string // substring over title/content
	UserID string
	Limit  int
	Offset int
}

type CommunityRepository interface {
	// Posts
	CreatePost(db *gorm.DB, post *models.CommunityPost) error
	FindPostByID(db *gorm.DB, id string) (*models.CommunityPost, error)
	FindPostsWithFilter(db *gorm.DB, filter PostFilter) ([]models.CommunityPost, int64, error)
	UpdatePost(db *gorm.DB, post *models.CommunityPost) error
	DeletePost(db *gorm.DB, id string) error

	// Comments: the counter moves in the same transaction as the row
	CreateComment(db *gorm.DB, comment *models.CommunityComment) error
	FindCommentByID(db *gorm.DB, id string) (*models.CommunityComment, error)
	FindCommentsByPost(db *gorm.DB, postID string) ([]models.CommunityComment, error)
	DeleteComment(db *gorm.DB, id string) error

	// Likes: insert-or-conflict, counter in the same transaction
	AddLike(db *gorm.DB, postID, userID string) error
	RemoveLike(db *gorm.DB, postID, userID string) error
	HasLiked(db *gorm.DB, postID, userID string) (bool, error)
}

type CommunityRepositoryImpl struct{}

func NewCommunityRepository() CommunityRepository {
	return &CommunityRepositoryImpl{}
}

// --- Posts ---

func (r *CommunityRepositoryImpl) CreatePost(db *gorm.DB, post *models.CommunityPost) error {
	return db.Create(post).Error
}

func (r *CommunityRepositoryImpl) FindPostByID(db *gorm.DB, id string) (*models.CommunityPost, error) {
	var post models.CommunityPost
	err := db.First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *CommunityRepositoryImpl) FindPostsWithFilter(db *gorm.DB, filter PostFilter) ([]models.CommunityPost, int64, error) {
	query := db.Model(&models.CommunityPost{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR content ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var posts []models.CommunityPost
	err := query.Find(&posts).Error
	return posts, total, err
}

func (r *CommunityRepositoryImpl) UpdatePost(db *gorm.DB, post *models.CommunityPost) error {
	return db.Save(post).Error
}

func (r *CommunityRepositoryImpl) DeletePost(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.CommunityLike{}, "post_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.CommunityComment{}, "post_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.CommunityPost{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPostNotFound
		}
		return nil
	})
}

// --- Comments ---

func (r *CommunityRepositoryImpl) CreateComment(db *gorm.DB, comment *models.CommunityComment) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return tx.Model(&models.CommunityPost{}).Where("id = ?", comment.PostID).
			UpdateColumn("comments_count", gorm.Expr("comments_count + 1")).Error
	})
}

func (r *CommunityRepositoryImpl) FindCommentByID(db *gorm.DB, id string) (*models.CommunityComment, error) {
	var comment models.CommunityComment
	err := db.First(&comment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (r *CommunityRepositoryImpl) FindCommentsByPost(db *gorm.DB, postID string) ([]models.CommunityComment, error) {
	var comments []models.CommunityComment
	err := db.Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (r *CommunityRepositoryImpl) DeleteComment(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var comment models.CommunityComment
		if err := tx.First(&comment, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCommentNotFound
			}
			return err
		}
		if err := tx.Delete(&comment).Error; err != nil {
			return err
		}
		return tx.Model(&models.CommunityPost{}).
			Where("id = ? AND comments_count > 0", comment.PostID).
			UpdateColumn("comments_count", gorm.Expr("comments_count - 1")).Error
	})
}

// --- Likes ---

// AddLike inserts the like row and bumps the counter atomically. A
// concurrent duplicate insert hits the unique index and reports
// ErrAlreadyLiked without touching the counter.
func (r *CommunityRepositoryImpl) AddLike(db *gorm.DB, postID, userID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		like := &models.CommunityLike{PostID: postID, UserID: userID}
		if err := tx.Create(like).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrAlreadyLiked
			}
			return err
		}
		return tx.Model(&models.CommunityPost{}).Where("id = ?", postID).
			UpdateColumn("likes_count", gorm.Expr("likes_count + 1")).Error
	})
}

func (r *CommunityRepositoryImpl) RemoveLike(db *gorm.DB, postID, userID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.CommunityLike{}, "post_id = ? AND user_id = ?", postID, userID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrLikeNotFound
		}
		return tx.Model(&models.CommunityPost{}).
			Where("id = ? AND likes_count > 0", postID).
			UpdateColumn("likes_count", gorm.Expr("likes_count - 1")).Error
	})
}

func (r *CommunityRepositoryImpl) HasLiked(db *gorm.DB, postID, userID string) (bool, error) {
	var count int64
	err := db.Model(&models.CommunityLike{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	return count > 0, err
}
