package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"

	httpapi "bridal-backend/internal/api/http"
	"bridal-backend/internal/cache"
	"bridal-backend/internal/config"
	"bridal-backend/internal/jobs"
	"bridal-backend/internal/logger"
	"bridal-backend/internal/repository/postgres"
	"bridal-backend/internal/scheduler"
	"bridal-backend/internal/security"
	"bridal-backend/internal/service"
	"bridal-backend/internal/storage"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting bridal rental backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Load the entity cache before serving traffic. Availability and
	// quoting read from this snapshot, never from the database.
	snapshot := cache.NewSnapshot()
	if err := snapshot.Load(context.Background(), store); err != nil {
		logger.Error("Failed to load entity cache", "error", err)
		log.Fatalf("Failed to load entity cache: %v", err)
	}
	logger.Info("Entity cache loaded",
		"items", len(snapshot.Items()),
		"reservations", len(snapshot.Reservations()),
		"customers", len(snapshot.Customers()))

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Storage
	localStorage, err := storage.NewLocalStorage(cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Initialize Services
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	userSvc := service.NewUserService(store.UserRepository)
	customerSvc := service.NewCustomerService(store.CustomerRepository, snapshot)
	itemSvc := service.NewItemService(store.ItemRepository, snapshot)
	categorySvc := service.NewCategoryService(store.CategoryRepository)
	reservationSvc := service.NewReservationService(
		store.ReservationRepository,
		store.PaymentRepository,
		store.CustomerRepository,
		store.ItemRepository,
		snapshot,
		cfg.Booking,
	)
	paymentSvc := service.NewPaymentService(store.PaymentRepository, store.ReservationRepository, snapshot)
	attachmentSvc := service.NewAttachmentService(store.AttachmentRepository, localStorage)

	baseURL := fmt.Sprintf("http://%s", cfg.GetServerAddress())
	contractSvc, err := service.NewContractService(
		store.ReservationRepository,
		store.CustomerRepository,
		snapshot,
		cfg.Contract,
		cfg.Booking.Currency,
		baseURL,
	)
	if err != nil {
		logger.Error("Failed to initialize contract service", "error", err)
		log.Fatalf("Failed to initialize contract service: %v", err)
	}

	// Initialize HTTP handlers
	handlers := httpapi.Handlers{
		Auth:        httpapi.NewAuthHandler(authSvc),
		Customer:    httpapi.NewCustomerHandler(customerSvc, reservationSvc),
		Item:        httpapi.NewItemHandler(itemSvc, categorySvc),
		Category:    httpapi.NewCategoryHandler(categorySvc),
		User:        httpapi.NewUserHandler(userSvc),
		Reservation: httpapi.NewReservationHandler(reservationSvc, contractSvc),
		Payment:     httpapi.NewPaymentHandler(paymentSvc),
		Attachment:  httpapi.NewAttachmentHandler(attachmentSvc, cfg.Storage.MaxFileSize),
	}
	router := httpapi.NewRouter(handlers, tokenManager)

	// Start the nightly job scheduler alongside the API server.
	jobRunner := jobs.NewJobRunner(db, &jobs.Services{Email: emailSvc}, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
