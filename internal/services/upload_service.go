package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"festacconnect_backend/internal/config"
	"festacconnect_backend/internal/imageprocessor"
	"festacconnect_backend/internal/logger"
	"festacconnect_backend/internal/models"
	"festacconnect_backend/internal/repositories"
	"festacconnect_backend/internal/services/dto"
	"festacconnect_backend/internal/storage"
	"festacconnect_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// Entity kinds accepted by the upload endpoint.
var allowedEntityKinds = map[string]bool{
	"listing":  true,
	"business": true,
	"avatar":   true,
	"resume":   true,
}

type UploadService interface {
	Upload(ctx context.Context, db *gorm.DB, userID, entityKind, entityID string, file *multipart.FileHeader) (*dto.UploadResponse, error)
	Attach(db *gorm.DB, userID, uploadID, entityID string) error
	Delete(ctx context.Context, db *gorm.DB, userID, uploadID string) error
	MyUploads(db *gorm.DB, userID string) ([]*dto.UploadResponse, error)
	Usage(db *gorm.DB, userID string) (*dto.StorageUsageResponse, error)

	// CollectOrphans removes blobs whose upload row was never attached to
	// an entity within the grace period, or whose entity has since been
	// deleted. Called by the reconciliation worker.
	CollectOrphans(ctx context.Context, db *gorm.DB, olderThan time.Duration) (int, error)
}

type UploadServiceImpl struct {
	uploadRepo repositories.UploadRepository
	store      storage.Storage
	images     *imageprocessor.Processor
}

func NewUploadService(uploadRepo repositories.UploadRepository, store storage.Storage) UploadService {
	return &UploadServiceImpl{
		uploadRepo: uploadRepo,
		store:      store,
		images:     imageprocessor.NewProcessor(85),
	}
}

func (s *UploadServiceImpl) Upload(ctx context.Context, db *gorm.DB, userID, entityKind, entityID string, file *multipart.FileHeader) (*dto.UploadResponse, error) {
	if !allowedEntityKinds[entityKind] {
		return nil, apperrors.ErrInvalidOperation("upload", "Unknown entity kind")
	}

	cfg := config.GetConfig()

	if file.Size > cfg.Upload.MaxSize {
		return nil, apperrors.ErrLimitExceeded("upload",
			fmt.Sprintf("File exceeds the %d byte limit", cfg.Upload.MaxSize))
	}

	contentType := file.Header.Get("Content-Type")
	if !mimeAllowed(contentType, cfg.Upload.AllowedTypes) {
		return nil, apperrors.ErrInvalidOperation("upload", "File type not allowed: "+contentType)
	}

	used, err := s.uploadRepo.SumSizeByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if used+file.Size > cfg.Upload.MaxUserStorage {
		return nil, apperrors.ErrLimitExceeded("upload", "Storage quota exceeded")
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer src.Close()

	path := buildUploadPath(userID, entityKind, entityID, file.Filename)
	if err := s.store.Save(ctx, path, src, contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	url, err := s.store.GetURL(ctx, path)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	upload := &models.Upload{
		UserID:     userID,
		EntityKind: entityKind,
		EntityID:   entityID,
		Path:       path,
		URL:        url,
		MimeType:   contentType,
		Size:       file.Size,
	}
	s.generateThumbnail(ctx, upload, file)

	if err := s.uploadRepo.Create(db, upload); err != nil {
		// The row is the source of truth; an unrecorded blob must not
		// survive, or the sweep could never find it.
		if delErr := s.store.Delete(ctx, path); delErr != nil {
			logger.Warn("failed to remove blob after record error", "path", path, "error", delErr)
		}
		if upload.ThumbnailPath != "" {
			if delErr := s.store.Delete(ctx, upload.ThumbnailPath); delErr != nil {
				logger.Warn("failed to remove thumbnail after record error", "path", upload.ThumbnailPath, "error", delErr)
			}
		}
		return nil, apperrors.InternalError(err)
	}

	return buildUploadResponse(upload), nil
}

// generateThumbnail is best effort. The original stays the authoritative
// asset; a failed thumbnail only costs clients the small rendition.
func (s *UploadServiceImpl) generateThumbnail(ctx context.Context, upload *models.Upload, file *multipart.FileHeader) {
	if !imageprocessor.CanProcess(upload.MimeType) {
		return
	}

	src, err := file.Open()
	if err != nil {
		logger.Warn("thumbnail source open failed", "path", upload.Path, "error", err)
		return
	}
	defer src.Close()

	thumb, err := s.images.Thumbnail(src)
	if err != nil {
		logger.Warn("thumbnail generation failed", "path", upload.Path, "error", err)
		return
	}

	thumbPath := thumbnailPath(upload.Path)
	if err := s.store.Save(ctx, thumbPath, thumb, upload.MimeType); err != nil {
		logger.Warn("thumbnail save failed", "path", thumbPath, "error", err)
		return
	}

	thumbURL, err := s.store.GetURL(ctx, thumbPath)
	if err != nil {
		logger.Warn("thumbnail url failed", "path", thumbPath, "error", err)
		return
	}

	upload.ThumbnailPath = thumbPath
	upload.ThumbnailURL = thumbURL
}

func (s *UploadServiceImpl) Attach(db *gorm.DB, userID, uploadID, entityID string) error {
	upload, err := s.uploadRepo.FindByID(db, uploadID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUploadNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if upload.UserID != userID {
		return apperrors.ErrNotOwner
	}
	if err := s.uploadRepo.AttachEntity(db, uploadID, entityID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UploadServiceImpl) Delete(ctx context.Context, db *gorm.DB, userID, uploadID string) error {
	upload, err := s.uploadRepo.FindByID(db, uploadID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUploadNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if upload.UserID != userID {
		return apperrors.ErrNotOwner
	}

	if err := s.store.Delete(ctx, upload.Path); err != nil {
		logger.Warn("failed to delete blob", "path", upload.Path, "error", err)
	}
	if upload.ThumbnailPath != "" {
		if err := s.store.Delete(ctx, upload.ThumbnailPath); err != nil {
			logger.Warn("failed to delete thumbnail", "path", upload.ThumbnailPath, "error", err)
		}
	}
	if err := s.uploadRepo.Delete(db, uploadID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UploadServiceImpl) MyUploads(db *gorm.DB, userID string) ([]*dto.UploadResponse, error) {
	uploads, err := s.uploadRepo.FindByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	responses := make([]*dto.UploadResponse, 0, len(uploads))
	for i := range uploads {
		responses = append(responses, buildUploadResponse(&uploads[i]))
	}
	return responses, nil
}

func (s *UploadServiceImpl) Usage(db *gorm.DB, userID string) (*dto.StorageUsageResponse, error) {
	used, err := s.uploadRepo.SumSizeByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.StorageUsageResponse{
		UsedBytes:  used,
		LimitBytes: config.GetConfig().Upload.MaxUserStorage,
	}, nil
}

func (s *UploadServiceImpl) CollectOrphans(ctx context.Context, db *gorm.DB, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)
	orphans, err := s.uploadRepo.FindOrphanedBefore(db, cutoff)
	if err != nil {
		return 0, err
	}

	removed := 0
	for i := range orphans {
		orphan := &orphans[i]
		if err := s.store.Delete(ctx, orphan.Path); err != nil {
			logger.Warn("orphan blob delete failed", "path", orphan.Path, "error", err)
			continue
		}
		if orphan.ThumbnailPath != "" {
			if err := s.store.Delete(ctx, orphan.ThumbnailPath); err != nil {
				logger.Warn("orphan thumbnail delete failed", "path", orphan.ThumbnailPath, "error", err)
			}
		}
		if err := s.uploadRepo.Delete(db, orphan.ID); err != nil {
			logger.Warn("orphan row delete failed", "id", orphan.ID, "error", err)
			continue
		}
		removed++
	}
	return removed, nil
}

// buildUploadPath keeps blobs grouped by owner and target entity:
// {owner}/{kind}/{entity}/{timestamp}-{random}{ext}. Unattached uploads
// skip the entity segment.
func buildUploadPath(userID, entityKind, entityID, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))

	suffix := make([]byte, 4)
	_, _ = rand.Read(suffix)
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), hex.EncodeToString(suffix), ext)

	if entityID == "" {
		return fmt.Sprintf("%s/%s/%s", userID, entityKind, name)
	}
	return fmt.Sprintf("%s/%s/%s/%s", userID, entityKind, entityID, name)
}

// thumbnailPath puts the rendition next to its original.
func thumbnailPath(path string) string {
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return dir + "/thumb-" + name
}

func mimeAllowed(contentType string, allowed []string) bool {
	for _, t := range allowed {
		if t == contentType {
			return true
		}
	}
	return false
}

func buildUploadResponse(upload *models.Upload) *dto.UploadResponse {
	return &dto.UploadResponse{
		ID:         upload.ID,
		EntityKind: upload.EntityKind,
		EntityID:   upload.EntityID,
		Path:       upload.Path,
		URL:        upload.URL,
		Thumbnail:  upload.ThumbnailURL,
		MimeType:   upload.MimeType,
		Size:       upload.Size,
		CreatedAt:  upload.CreatedAt,
	}
}
