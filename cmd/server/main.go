package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"referral-backend/internal/auth"
	"referral-backend/internal/cache"
	"referral-backend/internal/config"
	"referral-backend/internal/database"
	"referral-backend/internal/db"
	"referral-backend/internal/handlers"
	"referral-backend/internal/health"
	h "referral-backend/internal/http"
	"referral-backend/internal/middleware"
	"referral-backend/internal/repositories"
	"referral-backend/internal/services"
	"referral-backend/internal/storage"
	"referral-backend/migrations"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	// Connect to PostgreSQL
	pool := db.Connect(cfg)
	defer pool.Close()

	// Initialize Redis cache (optional - graceful fallback if unavailable)
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (settings reads go to the database)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	// Run database migrations
	// Uses embedded migrations for standalone binary operation
	log.Println("Running database migrations...")
	migrator := database.NewMigrator(pool, migrations.FS)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize health checker
	healthChecker := health.NewHealthChecker(pool)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg)

	// Initialize object storage for report photos (optional)
	uploader, err := storage.NewUploader(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}
	if uploader == nil {
		log.Println("[Storage] Not configured, photo uploads disabled")
	}

	// Initialize repositories
	managerRepo := repositories.NewPropertyManagerRepository(pool)
	companyRepo := repositories.NewCompanyRepository(pool)
	cooperationRepo := repositories.NewCooperationRepository(pool)
	jobRepo := repositories.NewJobRepository(pool)
	jobReportRepo := repositories.NewJobReportRepository(pool)
	invoiceRepo := repositories.NewInvoiceRepository(pool)
	settingsRepo := repositories.NewSettingsRepository(pool)

	// Initialize services
	settingsService := services.NewSettingsService(settingsRepo)
	managerService := services.NewPropertyManagerService(managerRepo)
	companyService := services.NewCompanyService(companyRepo)
	cooperationService := services.NewCooperationService(cooperationRepo)
	jobService := services.NewJobService(jobRepo, jobReportRepo)
	invoiceService := services.NewInvoiceService(jobRepo, invoiceRepo, settingsService)
	pdfService := services.NewPDFService()

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager)
	corsMiddleware := middleware.NewCORS(cfg)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg, jwtManager)
	managerHandler := handlers.NewPropertyManagerHandler(managerService)
	companyHandler := handlers.NewCompanyHandler(companyService)
	cooperationHandler := handlers.NewCooperationHandler(cooperationService)
	jobHandler := handlers.NewJobHandler(jobService, settingsService, pdfService)
	uploadHandler := handlers.NewUploadHandler(uploader, jobService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService, settingsService, pdfService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	router := h.NewRouter(
		authHandler,
		managerHandler,
		companyHandler,
		cooperationHandler,
		jobHandler,
		uploadHandler,
		invoiceHandler,
		settingsHandler,
		healthHandler,
		authMiddleware,
	)

	// Wrap with panic recovery and metrics middleware
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
