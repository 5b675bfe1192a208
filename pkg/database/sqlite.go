package database

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go-portfolio/pkg/logger"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewSQLiteConnection opens (creating if needed) a SQLite database file.
// An empty path falls back to portfolio.db.
func NewSQLiteConnection(path string) (*gorm.DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "portfolio.db"
	}
	if err := ensureParentDir(path); err != nil {
		return nil, err
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Info("Database connection established", "driver", "sqlite", "path", path)
	return db, nil
}

func ensureParentDir(path string) error {
	if strings.HasPrefix(path, "file:") {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}
	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}
	return err
}
