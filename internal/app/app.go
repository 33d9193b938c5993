package app

import (
	"errors"
	"fmt"

	"festacconnect_backend/database"
	"festacconnect_backend/internal/config"
	"festacconnect_backend/internal/email"
	"festacconnect_backend/internal/handlers"
	"festacconnect_backend/internal/logger"
	"festacconnect_backend/internal/middleware"
	"festacconnect_backend/internal/models"
	"festacconnect_backend/internal/routes"
	"festacconnect_backend/internal/services"
	"festacconnect_backend/internal/storage"
	"festacconnect_backend/internal/validator"
	"festacconnect_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	scheduler, err := startWorkers(cfg, gormDB)
	if err != nil {
		logger.Fatal("Failed to start background workers", "error", err)
	}
	defer scheduler.Stop()

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full gin engine with all routes registered.
// Integration tests call it directly against a test database.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storageConfig(cfg))
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	mailer := newMailer(cfg)
	serviceContainer := services.NewServiceContainer(storageInstance, mailer)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

// newMailer picks the SMTP provider when one is configured and falls back
// to the noop provider otherwise, so local setups run without a mail server.
func newMailer(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP is not configured. Outbound email is disabled.")
		return &NoopEmailProvider{}
	}
	return email.NewSMTPProvider(&email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
		UseTLS:    cfg.Email.UseTLS,
	})
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, services.AuthService),
		ProfileHandler:      handlers.NewProfileHandler(baseHandler, services.ProfileService),
		ListingHandler:      handlers.NewListingHandler(baseHandler, services.ListingService),
		BusinessHandler:     handlers.NewBusinessHandler(baseHandler, services.BusinessService, services.ReviewService),
		JobHandler:          handlers.NewJobHandler(baseHandler, services.JobService),
		CommunityHandler:    handlers.NewCommunityHandler(baseHandler, services.CommunityService),
		FavoriteHandler:     handlers.NewFavoriteHandler(baseHandler, services.FavoriteService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, services.NotificationService),
		BoostHandler:        handlers.NewBoostHandler(baseHandler, services.BoostService),
		UploadHandler:       handlers.NewUploadHandler(baseHandler, services.UploadService),
	}
}

func storageConfig(cfg *config.Config) storage.Config {
	return storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		PublicRead: cfg.Storage.PublicRead,
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

func startWorkers(cfg *config.Config, db *gorm.DB) (*cron.Cron, error) {
	scheduler := cron.New()

	promotionWorker := workers.NewPromotionWorker(db)
	if err := promotionWorker.Register(scheduler, cfg.Workers.PromotionSweep); err != nil {
		return nil, fmt.Errorf("failed to register promotion worker: %w", err)
	}

	store, err := storage.NewStorage(storageConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize worker storage: %w", err)
	}

	container := services.NewServiceContainer(store, &NoopEmailProvider{})
	uploadGCWorker := workers.NewUploadGCWorker(db, container.UploadService)
	if err := uploadGCWorker.Register(scheduler, cfg.Workers.UploadGC); err != nil {
		return nil, fmt.Errorf("failed to register upload gc worker: %w", err)
	}

	scheduler.Start()
	logger.Info("Background workers started",
		"promotion_sweep", cfg.Workers.PromotionSweep,
		"upload_gc", cfg.Workers.UploadGC)
	return scheduler, nil
}

// seedFirstAdmin creates the bootstrap admin account on a fresh database.
// Without it there is no way to grant the first admin role.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var adminUser models.User
		result := tx.Where("email = ?", adminEmail).First(&adminUser)

		if result.Error == nil {
			logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
			return nil
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check for admin user: %w", result.Error)
		}

		logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		newAdmin := &models.User{
			Email:        adminEmail,
			PasswordHash: string(hashedPassword),
			Status:       models.UserStatusActive,
		}
		if err := tx.Create(newAdmin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		adminProfile := &models.Profile{
			UserID:      newAdmin.ID,
			FirstName:   "FestacConnect",
			LastName:    "Admin",
			AccountType: models.AccountTypeSeller,
		}
		if err := tx.Create(adminProfile).Error; err != nil {
			return fmt.Errorf("failed to create admin profile: %w", err)
		}

		grant := &models.UserRole{
			UserID: newAdmin.ID,
			Role:   models.AppRoleAdmin,
		}
		if err := tx.Create(grant).Error; err != nil {
			return fmt.Errorf("failed to grant admin role: %w", err)
		}

		logger.Info("Successfully created first admin user", "email", adminEmail)
		return nil
	})
}
