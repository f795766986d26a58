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

	_ "github.com/cybrige/platform/docs"
	"github.com/cybrige/platform/internal/auth"
	"github.com/cybrige/platform/internal/cache"
	"github.com/cybrige/platform/internal/config"
	"github.com/cybrige/platform/internal/handlers"
	"github.com/cybrige/platform/internal/logger"
	"github.com/cybrige/platform/internal/middleware"
	"github.com/cybrige/platform/internal/repositories"
	"github.com/cybrige/platform/internal/services"
	"github.com/cybrige/platform/internal/storage"
	"github.com/cybrige/platform/internal/streaming"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

const maxRequestSize = 10 * 1024 * 1024 // 10MB

// @title Cybrige Platform API
// @version 1.0
// @description API for courses, authentication, certificates and authenticated video streaming
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@cybrige.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:5000
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token. The token cookie is accepted as well.
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description API key for service-to-service certificate issuing
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting Cybrige platform")

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := runMigrations(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Connect to Redis (optional); the catalogue is served from MySQL when it is missing
	var courseCache services.CourseCache
	if cfg.Redis.Host != "" {
		rdb, err := connectRedis(cfg)
		if err != nil {
			logger.Logger.Warn("Redis unavailable, course cache disabled", zap.Error(err))
		} else {
			defer rdb.Close()
			courseCache = cache.NewCourseCache(rdb, cfg.Redis.CacheTTL, logger.Logger)
		}
	}

	// Initialize JWT token generator
	tokenGenerator := auth.NewTokenGenerator(cfg.JWT.Secret, cfg.JWT.TokenExpiry)

	// Initialize storage
	mediaStorage := storage.NewLocalStorage(cfg.MediaBasePath)

	// Initialize repositories
	courseRepo := repositories.NewCourseRepository(db, logger.Logger)
	userRepo := repositories.NewUserRepository(db, logger.Logger)
	certificateRepo := repositories.NewCertificateRepository(db, logger.Logger)
	contactRepo := repositories.NewContactRepository(db, logger.Logger)

	// Initialize services
	courseService := services.NewCourseService(courseRepo, courseCache, logger.Logger)
	videoService := services.NewVideoService(courseService, mediaStorage, logger.Logger)
	authService := services.NewAuthService(userRepo, tokenGenerator, logger.Logger)
	certificateService := services.NewCertificateService(certificateRepo, logger.Logger)
	contactService := services.NewContactService(contactRepo, logger.Logger)

	// Initialize middleware
	authMw := middleware.Authenticate(tokenGenerator, true)
	apiKeyMw := middleware.APIKeyMiddleware(cfg.APIKey)

	// Initialize handlers
	courseHandler := handlers.NewCourseHandler(courseService, logger.Logger)
	videoHandler := handlers.NewVideoHandler(videoService, streaming.NewResponder(mediaStorage, logger.Logger), logger.Logger)
	authHandler := handlers.NewAuthHandler(authService, tokenGenerator.Expiry(), cfg.CookieSecure, logger.Logger)
	certificateHandler := handlers.NewCertificateHandler(certificateService, logger.Logger)
	contactHandler := handlers.NewContactHandler(contactService, logger.Logger)
	staticHandler := handlers.NewStaticHandler(cfg.StaticDir, logger.Logger)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware(logger.Logger))
	r.Use(middleware.RecoveryMiddleware(logger.Logger))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middleware.RequestSizeLimitMiddleware(maxRequestSize))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Scope router to /api
	r.Route("/api", func(r chi.Router) {
		courseHandler.RegisterRoutes(r, authMw)
		videoHandler.RegisterRoutes(r, authMw)
		contactHandler.RegisterRoutes(r)

		// Credential endpoints get a stricter per-IP budget
		r.Group(func(r chi.Router) {
			r.Use(httprate.LimitByIP(100, 15*time.Minute))
			authHandler.RegisterRoutes(r, authMw)
			certificateHandler.RegisterRoutes(r, apiKeyMw)
		})
	})

	// Everything else is the frontend
	r.NotFound(staticHandler.ServeHTTP)

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second, // video responses clear their own write deadline
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// connectRedis connects to Redis and checks the connection
func connectRedis(cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return rdb, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	// Get the working directory or use migrations folder relative to the binary
	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Try parent directory if running from cmd
		if _, err := os.Stat("../migrations"); err == nil {
			migrationPath = "file://../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(
		migrationPath,
		"mysql",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
