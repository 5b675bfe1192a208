package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"go-portfolio/pkg/logger"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	StorageLocal = "local"
	StorageS3    = "s3"
)

type Config struct {
	Port    string
	GinMode string

	// Database
	DBDriver   string
	DBUrl      string
	SQLitePath string

	// Admin authentication
	JWTSecret         string
	TokenTTL          time.Duration
	AdminPasswordHash string
	AdminPassword     string // plain fallback, hashed at startup

	AllowedOrigins []string

	// Uploads
	StorageProvider string
	UploadDir       string
	UploadURLPath   string
	MaxUploadBytes  int64
	MaxImageSize    int

	// S3-compatible storage
	S3Bucket          string
	S3Region          string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Endpoint        string
	S3Prefix          string
	S3PublicURL       string

	LogLevel       string
	SwaggerEnabled bool
}

func LoadConfig() (*Config, error) {
	// Missing .env is fine outside of local development.
	_ = godotenv.Load()

	cfg := &Config{
		Port:    getEnv("PORT", "5000"),
		GinMode: getEnv("GIN_MODE", "debug"),

		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		DBUrl:      getEnv("DATABASE_URL", ""),
		SQLitePath: getEnv("SQLITE_PATH", "data/portfolio.db"),

		JWTSecret:         getEnv("JWT_SECRET", ""),
		TokenTTL:          getEnvDuration("TOKEN_TTL", 24*time.Hour),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),

		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),

		StorageProvider: strings.ToLower(getEnv("STORAGE_PROVIDER", StorageLocal)),
		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
		UploadURLPath:   getEnv("UPLOAD_URL_PATH", "/uploads"),
		MaxUploadBytes:  int64(getEnvInt("MAX_UPLOAD_BYTES", 10<<20)),
		MaxImageSize:    getEnvInt("MAX_IMAGE_DIMENSION", 1600),

		S3Bucket:          getEnv("S3_BUCKET", ""),
		S3Region:          getEnv("S3_REGION", "us-east-1"),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Endpoint:        strings.TrimRight(getEnv("S3_ENDPOINT", ""), "/"),
		S3Prefix:          getEnv("S3_PREFIX", ""),
		S3PublicURL:       strings.TrimRight(getEnv("S3_PUBLIC_URL", ""), "/"),

		LogLevel:       getEnv("LOG_LEVEL", "info"),
		SwaggerEnabled: getEnvBool("SWAGGER_ENABLED", true),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.AdminPasswordHash == "" && cfg.AdminPassword != "" {
		logger.Log.Warn("ADMIN_PASSWORD is set in plain text; prefer ADMIN_PASSWORD_HASH (see scripts/genhash.go)")
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" && cfg.GinMode == "release" {
		logger.Log.Warn("ALLOWED_ORIGINS is '*' in release mode")
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case DriverPostgres:
		if c.DBUrl == "" {
			return errors.New("DATABASE_URL is required when DB_DRIVER=postgres")
		}
	case DriverSQLite:
	default:
		return errors.New("DB_DRIVER must be postgres or sqlite")
	}

	switch c.StorageProvider {
	case StorageLocal:
	case StorageS3:
		if c.S3Bucket == "" {
			return errors.New("S3_BUCKET is required when STORAGE_PROVIDER=s3")
		}
	default:
		return errors.New("STORAGE_PROVIDER must be local or s3")
	}

	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.AdminPasswordHash == "" && c.AdminPassword == "" {
		return errors.New("ADMIN_PASSWORD_HASH or ADMIN_PASSWORD is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
