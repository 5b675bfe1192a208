package domain

import (
	"context"
	"io"
)

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

type AuthUsecase interface {
	// Login checks the admin password and issues a bearer token.
	Login(ctx context.Context, password string) (*AuthResponse, error)
	// Authorize validates a bearer token and returns its subject.
	Authorize(ctx context.Context, token string) (string, error)
}

type UploadResponse struct {
	URL string `json:"url"`
}

// FileStorage stores uploaded files and returns the URL they are served
// from.
type FileStorage interface {
	Save(ctx context.Context, name string, contentType string, body io.Reader, size int64) (string, error)
}

type UploadUsecase interface {
	Upload(ctx context.Context, filename string, body io.Reader, size int64) (*UploadResponse, error)
}
