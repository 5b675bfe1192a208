package usecase

import (
	"context"

	"go-portfolio/internal/domain"
	"go-portfolio/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type singletonUsecase[T any] struct {
	repo     domain.SingletonRepository[T]
	validate *validator.Validate
}

// NewSingletonUsecase serves a resource with at most one record. Get
// returns an empty record until something has been saved.
func NewSingletonUsecase[T any](repo domain.SingletonRepository[T], validate *validator.Validate) domain.SingletonUsecase[T] {
	return &singletonUsecase[T]{repo: repo, validate: validate}
}

func (u *singletonUsecase[T]) Get(ctx context.Context) (*T, error) {
	item, err := u.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if item == nil {
		item = new(T)
	}
	return item, nil
}

func (u *singletonUsecase[T]) Save(ctx context.Context, item *T) error {
	if err := validateEntity(u.validate, item); err != nil {
		return err
	}
	return u.repo.Upsert(ctx, item)
}

type aboutUsecase struct {
	domain.SingletonUsecase[domain.About]
	renderer domain.MarkdownRenderer
}

// NewAboutUsecase fills About.OverviewHTML from the markdown overview on
// every read and write.
func NewAboutUsecase(repo domain.SingletonRepository[domain.About], renderer domain.MarkdownRenderer, validate *validator.Validate) domain.SingletonUsecase[domain.About] {
	return &aboutUsecase{
		SingletonUsecase: NewSingletonUsecase(repo, validate),
		renderer:         renderer,
	}
}

func (u *aboutUsecase) Get(ctx context.Context) (*domain.About, error) {
	about, err := u.SingletonUsecase.Get(ctx)
	if err != nil {
		return nil, err
	}
	return about, u.render(about)
}

func (u *aboutUsecase) Save(ctx context.Context, about *domain.About) error {
	if err := u.SingletonUsecase.Save(ctx, about); err != nil {
		return err
	}
	return u.render(about)
}

func (u *aboutUsecase) render(about *domain.About) error {
	html, err := u.renderer.Render(about.Overview)
	if err != nil {
		return apperror.Internal(err)
	}
	about.OverviewHTML = html
	return nil
}
