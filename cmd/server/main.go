package main

import (
	"fmt"
	"log"

	"lodgeos/internal/config"
	"lodgeos/internal/email/noop"
	"lodgeos/internal/email/ses"
	"lodgeos/internal/handler"
	"lodgeos/internal/port"
	"lodgeos/internal/repository/postgres"
	"lodgeos/internal/router"
	"lodgeos/internal/service"
	s3storage "lodgeos/internal/storage/s3"
)

// @title           LodgeOS API
// @version         1.0
// @description     Lodge management backend: customers, rooms, bookings, GST billing, and rental reporting.
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	customerRepo := postgres.NewCustomerRepo(db)
	roomTypeRepo := postgres.NewRoomTypeRepo(db)
	roomRepo := postgres.NewRoomRepo(db)
	bookingRepo := postgres.NewBookingRepo(db)
	billRepo := postgres.NewBillRepo(db)
	counterRepo := postgres.NewCounterRepo(db)
	settingsRepo := postgres.NewSettingsRepo(db)
	reportRepo := postgres.NewReportRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email sender
	var emailSender port.EmailSender
	if cfg.Email.Provider == "ses" {
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	} else {
		emailSender = noop.NewNoopSender()
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	customerSvc := service.NewCustomerService(customerRepo, bookingRepo, billRepo, s3Client, &cfg.S3)
	inventorySvc := service.NewInventoryService(roomTypeRepo, roomRepo)
	bookingSvc := service.NewBookingService(bookingRepo, roomRepo, customerRepo)
	billingSvc := service.NewBillingService(billRepo, bookingRepo, customerRepo, settingsRepo, emailSender)
	counterSvc := service.NewCounterService(counterRepo, cfg.Billing)
	settingsSvc := service.NewSettingsService(settingsRepo)
	reportSvc := service.NewReportService(reportRepo)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	customerH := handler.NewCustomerHandler(customerSvc)
	inventoryH := handler.NewInventoryHandler(inventorySvc)
	bookingH := handler.NewBookingHandler(bookingSvc)
	billH := handler.NewBillHandler(billingSvc)
	counterH := handler.NewCounterHandler(counterSvc)
	settingsH := handler.NewSettingsHandler(settingsSvc)
	reportH := handler.NewReportHandler(reportSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, authSvc, authH, customerH, inventoryH, bookingH, billH, counterH, settingsH, reportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
