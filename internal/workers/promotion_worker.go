package workers

import (
	"festacconnect_backend/internal/logger"
	"festacconnect_backend/internal/repositories"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// PromotionWorker clears expired featured and boost flags. Reads already
// ignore stale flags through the featured_until predicate; the sweep just
// keeps the stored rows honest.
type PromotionWorker struct {
	db           *gorm.DB
	listingRepo  repositories.ListingRepository
	businessRepo repositories.BusinessRepository
}

func NewPromotionWorker(db *gorm.DB) *PromotionWorker {
	return &PromotionWorker{
		db:           db,
		listingRepo:  repositories.NewListingRepository(),
		businessRepo: repositories.NewBusinessRepository(),
	}
}

// Register schedules the sweep on the given cron runner.
func (w *PromotionWorker) Register(c *cron.Cron, spec string) error {
	_, err := c.AddFunc(spec, w.Sweep)
	return err
}

func (w *PromotionWorker) Sweep() {
	listings, err := w.listingRepo.ClearExpiredPromotions(w.db)
	if err != nil {
		logger.WorkerLog("promotion", "clear expired listing promotions", err)
	} else if listings > 0 {
		logger.Info("cleared expired listing promotions", "count", listings)
	}

	businesses, err := w.businessRepo.ClearExpiredFeatured(w.db)
	if err != nil {
		logger.WorkerLog("promotion", "clear expired business promotions", err)
	} else if businesses > 0 {
		logger.Info("cleared expired business promotions", "count", businesses)
	}
}
