// Package apptest runs the full API against an in-memory SQLite database
// for tests in other packages.
package apptest

import (
	"fmt"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"go-portfolio/internal/app"
	"go-portfolio/internal/repository/sqlite"
	"go-portfolio/internal/usecase"
	"go-portfolio/pkg/auth"
	"go-portfolio/pkg/markdown"
	"go-portfolio/pkg/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	sqlitedriver "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	Password = "correct horse"
	Secret   = "apptest-secret"
)

var dbCounter atomic.Int64

type Server struct {
	*httptest.Server

	DB        *gorm.DB
	Repos     app.Repositories
	Tokens    *auth.TokenManager
	UploadDir string
}

// AdminToken returns a freshly signed admin token.
func (s *Server) AdminToken(t *testing.T) string {
	t.Helper()
	token, err := s.Tokens.Generate(usecase.AdminSubject)
	require.NoError(t, err)
	return token
}

// NewServer starts the API and closes it when the test ends.
func NewServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := NewDB(t)

	hash, err := auth.HashPassword(Password)
	require.NoError(t, err)

	uploadDir := t.TempDir()
	local, err := storage.NewLocalStorage(uploadDir, "/uploads")
	require.NoError(t, err)

	tokens := auth.NewTokenManager([]byte(Secret), time.Hour)
	repos := app.SQLiteRepositories(db)
	router := app.NewRouter(repos, app.Options{
		Passwords:      auth.NewPasswordChecker(hash),
		Tokens:         tokens,
		Storage:        local,
		Renderer:       markdown.NewRenderer(),
		Upload:         usecase.UploadConfig{MaxBytes: 2 << 20, MaxDimension: 64},
		AllowedOrigins: []string{"*"},
		UploadDir:      uploadDir,
		UploadURLPath:  "/uploads",
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &Server{Server: srv, DB: db, Repos: repos, Tokens: tokens, UploadDir: uploadDir}
}

// NewDB opens a private in-memory database with the schema applied.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:apptest-%d-%d?mode=memory&cache=shared", time.Now().UnixNano(), dbCounter.Add(1))
	db, err := gorm.Open(sqlitedriver.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	require.NoError(t, sqlite.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}
