package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/batihr/backend/internal"
	"github.com/batihr/backend/internal/email"
	"github.com/batihr/backend/internal/handler"
	"github.com/batihr/backend/internal/metrics"
	"github.com/batihr/backend/internal/middleware"
	"github.com/batihr/backend/internal/notify"
	"github.com/batihr/backend/internal/repository"
	"github.com/batihr/backend/internal/service"
	"github.com/batihr/backend/internal/storage"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize database connection
	db, err := sql.Open("pgx", cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	// Run migrations
	if err := internal.RunMigrations(db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logger.Info("Database ready")

	// Initialize repository
	queries := repository.New(db)

	// Initialize document storage
	var store storage.Storage
	switch cfg.StorageProvider {
	case storage.ProviderR2:
		store, err = storage.NewR2Storage(storage.R2Config{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicURL:       cfg.R2PublicURL,
		}, logger)
	default:
		store, err = storage.NewLocalStorage(storage.LocalConfig{
			BasePath: cfg.LocalStoragePath,
			BaseURL:  cfg.LocalStorageURL,
		}, logger)
	}
	if err != nil {
		return fmt.Errorf("storage initialization failed: %w", err)
	}
	logger.Info("Storage ready", "provider", cfg.StorageProvider)

	// Initialize email dispatch and notification composition
	dispatcher := email.NewSMTPDispatcher(email.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
		FromName: cfg.SMTPFromName,
	}, logger)

	directory := notify.NewDirectory(notify.DirectoryConfig{
		Default:       cfg.EmailDefault,
		Plomberie:     cfg.EmailPlomberie,
		Fumisterie:    cfg.EmailFumisterie,
		Couverture:    cfg.EmailCouverture,
		Administratif: cfg.EmailAdministratif,
	})

	composer, err := notify.NewComposer(directory, cfg.SMTPFromName)
	if err != nil {
		return fmt.Errorf("composer initialization failed: %w", err)
	}

	// Initialize services
	passwordHash, err := service.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("admin password hashing failed: %w", err)
	}

	authService := service.NewAuthService(service.AuthConfig{
		Username:     cfg.AdminUsername,
		PasswordHash: passwordHash,
		JWTSecret:    []byte(cfg.JWTSecret),
		TokenTTL:     cfg.TokenTTL,
	}, logger)

	catalogService := service.NewCatalogService(queries, logger)
	jobService := service.NewJobService(queries, logger)
	projectService := service.NewProjectService(queries, logger)
	imageService := service.NewImageService(queries, store, logger)
	submissionService := service.NewSubmissionService(queries, composer, dispatcher, store, logger)

	// Initialize middleware
	isSecure := cfg.Env != "development"
	loggingMw := middleware.NewRequestLoggingMiddleware(logger)
	securityMw := middleware.NewSecurityHeadersMiddleware(isSecure)
	corsMw := middleware.NewCORSMiddleware(cfg.CORSOrigins)
	authMw := middleware.NewAuthMiddleware(authService, logger)
	metricsAuthMw := middleware.NewMetricsAuthMiddleware(cfg.MetricsUsername, cfg.MetricsPassword)

	limiter := middleware.NewRateLimiter(cfg.SubmitRateLimit, cfg.SubmitRateWindow, logger)
	rateLimitMw := middleware.NewRateLimitMiddleware(limiter, logger)

	// Initialize handlers
	handler.ExposeErrorDetails(cfg.Env == "development")
	contactHandler := handler.NewContactHandler(submissionService, logger)
	appointmentHandler := handler.NewAppointmentHandler(submissionService, logger)
	devisHandler := handler.NewDevisHandler(submissionService, logger)
	jobHandler := handler.NewJobHandler(jobService, submissionService, logger)
	projectHandler := handler.NewProjectHandler(projectService, logger)
	catalogHandler := handler.NewCatalogHandler(catalogService, logger)
	adminHandler := handler.NewAdminHandler(authService, jobService, projectService, catalogService, imageService, logger)

	// ==========================================================================
	// Create router and register routes
	// ==========================================================================

	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Metrics (closed until basic-auth credentials are configured)
	mux.Handle("GET /metrics", metricsAuthMw.Handler(promhttp.Handler()))

	// Uploaded files are served directly when storage is local
	if cfg.StorageProvider != storage.ProviderR2 {
		uploadsFS := http.FileServer(http.Dir(cfg.LocalStoragePath))
		mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", uploadsFS))
	}

	// Public routes
	contactHandler.RegisterRoutes(mux, rateLimitMw.Limit)
	appointmentHandler.RegisterRoutes(mux, rateLimitMw.Limit)
	devisHandler.RegisterRoutes(mux, rateLimitMw.Limit)
	jobHandler.RegisterRoutes(mux, rateLimitMw.Limit)
	projectHandler.RegisterRoutes(mux)
	catalogHandler.RegisterRoutes(mux)

	// Admin routes (JWT required past login)
	adminHandler.RegisterRoutes(mux, authMw.RequireAdmin)

	// Global middleware chain, outermost first
	root := corsMw.Handler(securityMw.Handler(loggingMw.Handler(metrics.Middleware(mux))))

	// ==========================================================================
	// Start server
	// ==========================================================================

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: root,
	}

	// Channel to listen for interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		logger.Info("Server started", "address", server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
		}
	}()

	// Wait for interrupt signal
	<-sigChan
	logger.Info("Shutdown signal received, initiating graceful shutdown...")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Graceful shutdown complete")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
