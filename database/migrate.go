package database

import (
	"errors"
	"fmt"

	"festacconnect_backend/internal/config"
	"festacconnect_backend/internal/logger"
	"festacconnect_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var gormDB *gorm.DB

// ConnectGorm opens the shared GORM connection using the configured DSN.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	// Cross-table cleanup happens in delete transactions and the GC
	// sweep, not in database-level cascades.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate migrates every model and seeds reference data.
func AutoMigrate() error {
	db, err := ConnectGorm()
	if err != nil {
		return err
	}

	// uuid_generate_v4 defaults need the extension.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to create uuid-ossp extension: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.UserRole{},
		&models.RefreshToken{},
		&models.Profile{},
		&models.BusinessCategory{},
		&models.Business{},
		&models.Listing{},
		&models.Job{},
		&models.JobApplication{},
		&models.CommunityPost{},
		&models.CommunityComment{},
		&models.CommunityLike{},
		&models.Favorite{},
		&models.Notification{},
		&models.Payment{},
		&models.Review{},
		&models.Upload{},
	)
	if err != nil {
		return fmt.Errorf("AutoMigrate failed: %w", err)
	}

	if err := seedBusinessCategories(db); err != nil {
		return err
	}

	logger.Info("AutoMigrate completed")
	return nil
}

// seedBusinessCategories inserts the fixed category set. Existing slugs
// are left untouched, so re-running migration is safe.
func seedBusinessCategories(db *gorm.DB) error {
	categories := []models.BusinessCategory{
		{Name: "Food & Restaurants", Slug: "food-restaurants", Icon: "utensils"},
		{Name: "Fashion & Tailoring", Slug: "fashion-tailoring", Icon: "shirt"},
		{Name: "Beauty & Salons", Slug: "beauty-salons", Icon: "scissors"},
		{Name: "Electronics & Repairs", Slug: "electronics-repairs", Icon: "cpu"},
		{Name: "Health & Pharmacy", Slug: "health-pharmacy", Icon: "heart-pulse"},
		{Name: "Education & Tutoring", Slug: "education-tutoring", Icon: "graduation-cap"},
		{Name: "Home Services", Slug: "home-services", Icon: "hammer"},
		{Name: "Transport & Logistics", Slug: "transport-logistics", Icon: "truck"},
		{Name: "Events & Entertainment", Slug: "events-entertainment", Icon: "party-popper"},
		{Name: "Professional Services", Slug: "professional-services", Icon: "briefcase"},
		{Name: "Groceries & Markets", Slug: "groceries-markets", Icon: "shopping-basket"},
		{Name: "Other", Slug: "other", Icon: "store"},
	}

	for _, category := range categories {
		var existing models.BusinessCategory
		err := db.Where("slug = ?", category.Slug).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check category %q: %w", category.Slug, err)
		}
		if err := db.Create(&category).Error; err != nil {
			return fmt.Errorf("failed to seed category %q: %w", category.Slug, err)
		}
	}

	return nil
}
