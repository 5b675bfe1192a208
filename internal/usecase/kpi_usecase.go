package usecase

import (
	"context"

	"go-portfolio/internal/domain"

	"github.com/go-playground/validator/v10"
)

type kpiUsecase struct {
	*contentUsecase[domain.KPI, *domain.KPI]
	repo domain.KPIRepository
}

func NewKPIUsecase(repo domain.KPIRepository, validate *validator.Validate) domain.KPIUsecase {
	return &kpiUsecase{
		contentUsecase: newContentUsecase[domain.KPI](repo, validate),
		repo:           repo,
	}
}

func (u *kpiUsecase) ListPublic(ctx context.Context) ([]domain.KPI, error) {
	return u.repo.ListByVisibility(ctx, domain.KPIVisibilityPublic)
}

// Create fills in the defaults a new KPI starts with.
func (u *kpiUsecase) Create(ctx context.Context, kpi *domain.KPI) error {
	if kpi.Status == "" {
		kpi.Status = domain.KPIStatusPlanned
	}
	if kpi.Visibility == "" {
		kpi.Visibility = domain.KPIVisibilityPublic
	}
	return u.contentUsecase.Create(ctx, kpi)
}
