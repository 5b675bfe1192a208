package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-portfolio/config"
	_ "go-portfolio/docs" // Swagger spec
	"go-portfolio/internal/app"
	"go-portfolio/internal/domain"
	"go-portfolio/internal/repository/postgres"
	"go-portfolio/internal/repository/sqlite"
	"go-portfolio/internal/usecase"
	"go-portfolio/pkg/auth"
	"go-portfolio/pkg/database"
	"go-portfolio/pkg/logger"
	"go-portfolio/pkg/markdown"
	"go-portfolio/pkg/storage"

	"github.com/gin-gonic/gin"
)

// @title           Portfolio API
// @version         1.0.0
// @description     Content API behind the portfolio site and its admin editor.
// @host            localhost:5000
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)
	logger.Log.Info("Starting portfolio API", "port", cfg.Port, "db_driver", cfg.DBDriver, "storage", cfg.StorageProvider)

	ctx := context.Background()

	// 3. Setup Database and Repositories
	var repos app.Repositories
	switch cfg.DBDriver {
	case config.DriverPostgres:
		pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			logger.Log.Error("Failed to migrate database", "error", err)
			os.Exit(1)
		}
		repos = app.PostgresRepositories(pool)
	default:
		db, err := database.NewSQLiteConnection(cfg.SQLitePath)
		if err != nil {
			logger.Log.Error("Failed to open database", "error", err)
			os.Exit(1)
		}
		if err := sqlite.Migrate(db); err != nil {
			logger.Log.Error("Failed to migrate database", "error", err)
			os.Exit(1)
		}
		repos = app.SQLiteRepositories(db)
	}

	// 4. Setup Upload Storage
	var (
		fileStorage   domain.FileStorage
		uploadDir     string
		uploadURLPath string
	)
	switch cfg.StorageProvider {
	case config.StorageS3:
		s3cfg := storage.S3Config{
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			Prefix:          cfg.S3Prefix,
			Endpoint:        cfg.S3Endpoint,
			PublicURL:       cfg.S3PublicURL,
		}
		client, err := storage.NewS3Client(ctx, s3cfg)
		if err != nil {
			logger.Log.Error("Failed to create S3 client", "error", err)
			os.Exit(1)
		}
		fileStorage = storage.NewS3Storage(client, s3cfg)
	default:
		local, err := storage.NewLocalStorage(cfg.UploadDir, cfg.UploadURLPath)
		if err != nil {
			logger.Log.Error("Failed to prepare upload directory", "error", err)
			os.Exit(1)
		}
		fileStorage = local
		uploadDir, uploadURLPath = local.Dir(), local.URLPath()
	}

	// 5. Setup Admin Auth
	hash := cfg.AdminPasswordHash
	if hash == "" {
		hash, err = auth.HashPassword(cfg.AdminPassword)
		if err != nil {
			logger.Log.Error("Failed to hash admin password", "error", err)
			os.Exit(1)
		}
	}

	// 6. Setup Router
	router := app.NewRouter(repos, app.Options{
		Passwords: auth.NewPasswordChecker(hash),
		Tokens:    auth.NewTokenManager([]byte(cfg.JWTSecret), cfg.TokenTTL),
		Storage:   fileStorage,
		Renderer:  markdown.NewRenderer(),
		Upload: usecase.UploadConfig{
			MaxBytes:     cfg.MaxUploadBytes,
			MaxDimension: cfg.MaxImageSize,
		},
		AllowedOrigins: cfg.AllowedOrigins,
		SwaggerEnabled: cfg.SwaggerEnabled,
		UploadDir:      uploadDir,
		UploadURLPath:  uploadURLPath,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
