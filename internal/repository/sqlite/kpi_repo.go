package sqlite

import (
	"context"

	"go-portfolio/internal/domain"

	"gorm.io/gorm"
)

type kpiRepo struct {
	*contentRepo[domain.KPI, *domain.KPI]
}

func NewKPIRepository(db *gorm.DB) domain.KPIRepository {
	return &kpiRepo{contentRepo: newContentRepo[domain.KPI](db, "KPI")}
}

func (r *kpiRepo) ListByVisibility(ctx context.Context, visibility string) ([]domain.KPI, error) {
	return r.find(r.db.WithContext(ctx).Where("visibility = ?", visibility))
}
