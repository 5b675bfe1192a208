package sqlite

import (
	"context"
	"errors"

	"go-portfolio/internal/domain"
	"go-portfolio/pkg/apperror"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const singletonID = 1

type singletonRepo[T any, P domain.Record[T]] struct {
	db      *gorm.DB
	columns []string
}

func NewAboutRepository(db *gorm.DB) domain.SingletonRepository[domain.About] {
	return &singletonRepo[domain.About, *domain.About]{
		db:      db,
		columns: []string{"overview", "profile_image", "updated_at"},
	}
}

func NewContactRepository(db *gorm.DB) domain.SingletonRepository[domain.Contact] {
	return &singletonRepo[domain.Contact, *domain.Contact]{
		db:      db,
		columns: []string{"email", "phone", "linkedin", "github", "location", "cv_url", "updated_at"},
	}
}

func (r *singletonRepo[T, P]) Get(ctx context.Context) (*T, error) {
	var item T
	if err := r.db.WithContext(ctx).First(&item, singletonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}
	return &item, nil
}

func (r *singletonRepo[T, P]) Upsert(ctx context.Context, item *T) error {
	P(item).SetID(singletonID)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(r.columns),
	}).Create(item).Error
	if err != nil {
		return apperror.Internal(err)
	}

	stored, err := r.Get(ctx)
	if err != nil {
		return err
	}
	*item = *stored
	return nil
}
