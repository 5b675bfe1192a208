package sqlite

import (
	"context"
	"errors"
	"net/http"

	"go-portfolio/internal/domain"
	"go-portfolio/pkg/apperror"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const orderByPosition = `"order", id`

type contentRepo[T any, P domain.Record[T]] struct {
	db   *gorm.DB
	noun string
}

func newContentRepo[T any, P domain.Record[T]](db *gorm.DB, noun string) *contentRepo[T, P] {
	return &contentRepo[T, P]{db: db, noun: noun}
}

func (r *contentRepo[T, P]) notFound() *apperror.AppError {
	return apperror.New(http.StatusNotFound, r.noun+" not found", domain.ErrNotFound)
}

func (r *contentRepo[T, P]) List(ctx context.Context) ([]T, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *contentRepo[T, P]) find(q *gorm.DB) ([]T, error) {
	items := []T{}
	if err := q.Order(orderByPosition).Find(&items).Error; err != nil {
		return nil, apperror.Internal(err)
	}
	return items, nil
}

func (r *contentRepo[T, P]) GetByID(ctx context.Context, id int64) (*T, error) {
	var item T
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, r.notFound()
		}
		return nil, apperror.Internal(err)
	}
	return &item, nil
}

func (r *contentRepo[T, P]) Create(ctx context.Context, item *T) error {
	P(item).SetID(0)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error; err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// Update writes every column, zero values included, then reloads the row
// so timestamps match storage.
func (r *contentRepo[T, P]) Update(ctx context.Context, item *T) error {
	id := P(item).GetID()
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	err := r.db.WithContext(ctx).Model(item).
		Select("*").Omit("id", "created_at", clause.Associations).
		Updates(item).Error
	if err != nil {
		return apperror.Internal(err)
	}
	stored, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	*item = *stored
	return nil
}

func (r *contentRepo[T, P]) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return apperror.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return r.notFound()
	}
	return nil
}

func NewSocialLinkRepository(db *gorm.DB) domain.ContentRepository[domain.SocialLink] {
	return newContentRepo[domain.SocialLink](db, "Social link")
}

func NewSkillRepository(db *gorm.DB) domain.ContentRepository[domain.Skill] {
	return newContentRepo[domain.Skill](db, "Skill")
}

func NewServiceRepository(db *gorm.DB) domain.ContentRepository[domain.Service] {
	return newContentRepo[domain.Service](db, "Service")
}

func NewCertificationRepository(db *gorm.DB) domain.ContentRepository[domain.Certification] {
	return newContentRepo[domain.Certification](db, "Certification")
}

func NewProjectRepository(db *gorm.DB) domain.ContentRepository[domain.Project] {
	return newContentRepo[domain.Project](db, "Project")
}
