package main

import (
	"context"
	"crypto/tls"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/srijaidev/tours-backend/internal/api/router"
	appconfig "github.com/srijaidev/tours-backend/internal/config"
	"github.com/srijaidev/tours-backend/internal/content"
	"github.com/srijaidev/tours-backend/internal/http/handlers"
	"github.com/srijaidev/tours-backend/internal/leads"
	"github.com/srijaidev/tours-backend/internal/notify"
	"github.com/srijaidev/tours-backend/internal/observability/metrics"
	"github.com/srijaidev/tours-backend/internal/theme"
	"github.com/srijaidev/tours-backend/internal/vehicletypes"
	"github.com/srijaidev/tours-backend/internal/whatsapp"
	appmigrations "github.com/srijaidev/tours-backend/migrations"
	"github.com/srijaidev/tours-backend/pkg/logging"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting tours-backend API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	if cfg.DatabaseURL == "" {
		logger.Error("DATABASE_URL is required")
		os.Exit(1)
	}

	ctx := context.Background()

	// Postgres: pgx pool for repositories, database/sql handle for the admin
	// aggregation handlers and migrations.
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to create pgx pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	sqlDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to open sql db", "error", err)
		os.Exit(1)
	}
	defer func() { _ = sqlDB.Close() }()

	if err := sqlDB.PingContext(ctx); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	if err := runMigrations(sqlDB); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("database migrations applied")

	// Redis backs the theme and contact-info singletons.
	redisOpts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	redisClient := redis.NewClient(redisOpts)
	defer func() { _ = redisClient.Close() }()

	// Metrics
	registry := prometheus.NewRegistry()
	intakeMetrics := metrics.NewIntakeMetrics(registry)

	// Initialize repositories and services
	leadsRepo := leads.NewPostgresRepository(pool)
	settingsStore := notify.NewPostgresSettingsStore(pool)
	notifier := notify.NewService(settingsStore, cfg.SMTPFromEmail, logger)
	themeStore := theme.NewStore(redisClient)
	contactStore := content.NewContactStore(redisClient)
	contentRepo := content.NewRepository(pool)
	vehicleTypesRepo := vehicletypes.NewRepository(pool)

	whatsappNumber := cfg.WhatsAppNumber
	if info, err := contactStore.Get(ctx); err == nil && info.WhatsAppNumber != "" {
		whatsappNumber = whatsapp.NormalizeNumber(info.WhatsAppNumber)
	}

	// Initialize handlers
	leadsHandler := leads.NewHandler(leadsRepo, notifier, intakeMetrics, whatsappNumber, logger)
	themeHandler := theme.NewHandler(themeStore, logger)
	publicContent := content.NewPublicHandler(contentRepo, contactStore, logger)
	adminContent := content.NewAdminHandler(contentRepo, contactStore, logger)
	vehicleTypesHandler := vehicletypes.NewHandler(vehicleTypesRepo, logger)
	adminDashboard := handlers.NewAdminDashboardHandler(sqlDB, logger)
	adminLeads := handlers.NewAdminLeadsHandler(sqlDB, logger)

	if cfg.AdminJWTSecret == "" {
		logger.Warn("JWT_SECRET not set, admin endpoints disabled")
	}

	// Setup router
	routerCfg := &router.Config{
		Logger:              logger,
		LeadsHandler:        leadsHandler,
		ThemeHandler:        themeHandler,
		ContentHandler:      publicContent,
		AdminContent:        adminContent,
		VehicleTypesHandler: vehicleTypesHandler,
		AdminDashboard:      adminDashboard,
		AdminLeads:          adminLeads,
		AdminAuthSecret:     cfg.AdminJWTSecret,
		MetricsHandler:      promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins:  cfg.CORSAllowedOrigins,
	}
	r := router.New(routerCfg)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}

// runMigrations applies the embedded schema migrations on startup so the
// binary is self-contained in container deployments.
func runMigrations(db *sql.DB) error {
	dbDriver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("db driver: %w", err)
	}

	srcDriver, err := iofs.New(appmigrations.FS, ".")
	if err != nil {
		return fmt.Errorf("source driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", srcDriver, "postgres", dbDriver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}
