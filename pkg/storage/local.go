package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalStorage writes uploads to a directory served by the API under
// urlPath.
type LocalStorage struct {
	dir     string
	urlPath string
}

func NewLocalStorage(dir, urlPath string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{dir: dir, urlPath: "/" + strings.Trim(urlPath, "/")}, nil
}

func (s *LocalStorage) Dir() string { return s.dir }

func (s *LocalStorage) URLPath() string { return s.urlPath }

// Save stores body under a fresh name that keeps only the extension of
// name, and returns its URL path.
func (s *LocalStorage) Save(ctx context.Context, name string, contentType string, body io.Reader, size int64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	filename := ObjectName(name)

	f, err := os.OpenFile(filepath.Join(s.dir, filename), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return path.Join(s.urlPath, filename), nil
}

// ObjectName returns "<yyyymmdd>-<uuid><ext>" for an uploaded file name.
func ObjectName(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	return fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)
}
