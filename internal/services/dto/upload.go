package dto

import "time"

type UploadResponse struct {
	ID         string    `json:"id"`
	EntityKind string    `json:"entity_kind"`
	EntityID   string    `json:"entity_id,omitempty"`
	Path       string    `json:"path"`
	URL        string    `json:"url"`
	Thumbnail  string    `json:"thumbnail_url,omitempty"`
	MimeType   string    `json:"mime_type"`
	Size       int64     `json:"size"`
	CreatedAt  time.Time `json:"created_at"`
}

type AttachUploadRequest struct {
	EntityID string `json:"entity_id" validate:"required,uuid"`
}

type StorageUsageResponse struct {
	UsedBytes  int64 `json:"used_bytes"`
	LimitBytes int64 `json:"limit_bytes"`
}
