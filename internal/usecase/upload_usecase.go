package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"go-portfolio/internal/domain"
	"go-portfolio/pkg/apperror"
	"go-portfolio/pkg/imaging"
	"go-portfolio/pkg/logger"
	"go-portfolio/pkg/security"
)

type UploadConfig struct {
	MaxBytes     int64
	MaxDimension int
	JPEGQuality  int
}

type uploadUsecase struct {
	storage domain.FileStorage
	cfg     UploadConfig
}

func NewUploadUsecase(storage domain.FileStorage, cfg UploadConfig) domain.UploadUsecase {
	if cfg.JPEGQuality <= 0 {
		cfg.JPEGQuality = 85
	}
	return &uploadUsecase{storage: storage, cfg: cfg}
}

// Upload validates the file by content, scales large raster images down
// and stores the result.
func (u *uploadUsecase) Upload(ctx context.Context, filename string, body io.Reader, size int64) (*domain.UploadResponse, error) {
	if err := security.ValidateFileExtension(filename); err != nil {
		return nil, apperror.UnsupportedMediaType(err.Error())
	}
	if u.cfg.MaxBytes > 0 && size > u.cfg.MaxBytes {
		return nil, apperror.PayloadTooLarge("File too large")
	}

	data, err := readLimited(body, u.cfg.MaxBytes)
	if err != nil {
		if errors.Is(err, errTooLarge) {
			return nil, apperror.PayloadTooLarge("File too large")
		}
		return nil, apperror.Internal(err)
	}

	result := security.ValidateFile(filename, data)
	if !result.Valid {
		return nil, apperror.UnsupportedMediaType(result.Error)
	}

	name, contentType := filename, result.DetectedMIME
	if security.IsRasterImage(result.Extension) && result.Extension != ".gif" && u.cfg.MaxDimension > 0 {
		shrunk, ok, err := imaging.Shrink(data, u.cfg.MaxDimension, u.cfg.JPEGQuality)
		switch {
		case err != nil:
			logger.Log.WarnContext(ctx, "image resize failed, storing original", "error", err)
		case ok:
			logger.Log.DebugContext(ctx, "image resized", "before", len(data), "after", len(shrunk.Data))
			data = shrunk.Data
			contentType = shrunk.ContentType
			name = strings.TrimSuffix(filename, filepath.Ext(filename)) + shrunk.Extension
		}
	}

	url, err := u.storage.Save(ctx, name, contentType, bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.UploadResponse{URL: url}, nil
}

var errTooLarge = errors.New("file too large")

func readLimited(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, errTooLarge
	}
	return data, nil
}
