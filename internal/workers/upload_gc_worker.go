package workers

import (
	"context"
	"time"

	"festacconnect_backend/internal/logger"
	"festacconnect_backend/internal/services"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Uploads older than this without an attached entity are abandoned.
const orphanGracePeriod = 24 * time.Hour

// UploadGCWorker reconciles the uploads table with blob storage, removing
// blobs whose entity was never attached or no longer exists.
type UploadGCWorker struct {
	db            *gorm.DB
	uploadService services.UploadService
}

func NewUploadGCWorker(db *gorm.DB, uploadService services.UploadService) *UploadGCWorker {
	return &UploadGCWorker{db: db, uploadService: uploadService}
}

func (w *UploadGCWorker) Register(c *cron.Cron, spec string) error {
	_, err := c.AddFunc(spec, w.Sweep)
	return err
}

func (w *UploadGCWorker) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	removed, err := w.uploadService.CollectOrphans(ctx, w.db, orphanGracePeriod)
	if err != nil {
		logger.WorkerLog("upload_gc", "collect orphans", err)
		return
	}
	if removed > 0 {
		logger.Info("collected orphaned uploads", "count", removed)
	}
}
