package usecase

import (
	"context"
	"net/http"

	"go-portfolio/internal/domain"
	"go-portfolio/pkg/apperror"
	"go-portfolio/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type contentUsecase[T any, P domain.Record[T]] struct {
	repo     domain.ContentRepository[T]
	validate *validator.Validate
}

// NewContentUsecase serves one plain listable resource (social links,
// skills, services, certifications, projects).
func NewContentUsecase[T any, P domain.Record[T]](repo domain.ContentRepository[T], validate *validator.Validate) domain.ContentUsecase[T] {
	return newContentUsecase[T, P](repo, validate)
}

func newContentUsecase[T any, P domain.Record[T]](repo domain.ContentRepository[T], validate *validator.Validate) *contentUsecase[T, P] {
	return &contentUsecase[T, P]{repo: repo, validate: validate}
}

func (u *contentUsecase[T, P]) List(ctx context.Context) ([]T, error) {
	return u.repo.List(ctx)
}

func (u *contentUsecase[T, P]) Get(ctx context.Context, id int64) (*T, error) {
	return u.repo.GetByID(ctx, id)
}

func (u *contentUsecase[T, P]) Create(ctx context.Context, item *T) error {
	if err := validateEntity(u.validate, item); err != nil {
		return err
	}
	P(item).SetID(0)
	return u.repo.Create(ctx, item)
}

// Update replaces the stored record. The id always comes from the path,
// never from the body.
func (u *contentUsecase[T, P]) Update(ctx context.Context, id int64, item *T) error {
	if id <= 0 {
		return apperror.BadRequest("Invalid ID")
	}
	P(item).SetID(id)
	if err := validateEntity(u.validate, item); err != nil {
		return err
	}
	return u.repo.Update(ctx, item)
}

func (u *contentUsecase[T, P]) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperror.BadRequest("Invalid ID")
	}
	return u.repo.Delete(ctx, id)
}

// validateEntity runs struct tag validation and, for entities that have
// them, the rules in Check.
func validateEntity(v *validator.Validate, item any) error {
	if err := v.Struct(item); err != nil {
		return apperror.New(http.StatusBadRequest, validation.Message(err), err)
	}
	if c, ok := item.(domain.Checker); ok {
		if err := c.Check(); err != nil {
			return apperror.New(http.StatusBadRequest, err.Error(), err)
		}
	}
	return nil
}
