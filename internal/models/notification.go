package models

type Notification struct {
	BaseModel
	UserID  string `gorm:"type:uuid;not null;index" json:"user_id"`
	Type    string `gorm:"not null" json:"type"` // "job_application", "boost", "review"
	Title   string `gorm:"not null" json:"title"`
	Message string `json:"message"`
	Link    string `json:"link"`
	IsRead  bool   `gorm:"default:false;index" json:"is_read"`
}
