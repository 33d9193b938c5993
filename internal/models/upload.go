package models

// Upload tracks every object written to blob storage so the reconciliation
// sweep can garbage-collect blobs whose entity was deleted or never
// attached them.
type Upload struct {
	BaseModel
	UserID     string `gorm:"type:uuid;not null;index" json:"user_id"`
	EntityKind string `gorm:"not null;index" json:"entity_kind"` // "listing", "business", "avatar", "resume"
	EntityID   string `gorm:"index" json:"entity_id"`
	Path       string `gorm:"not null" json:"path"`
	URL        string `json:"url"`
	MimeType   string `json:"mime_type"`
	Size       int64  `json:"size"`

	// Set only for image uploads.
	ThumbnailPath string `json:"-"`
	ThumbnailURL  string `json:"thumbnail_url"`
}
