package postgres

import (
	"context"

	"go-portfolio/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type kpiRepo struct {
	*contentRepo[domain.KPI, *domain.KPI]
}

func NewKPIRepository(db *pgxpool.Pool) domain.KPIRepository {
	return &kpiRepo{contentRepo: newContentRepo[domain.KPI](db, kpiTable)}
}

func (r *kpiRepo) ListByVisibility(ctx context.Context, visibility string) ([]domain.KPI, error) {
	return r.query(ctx, kpiTable.selectSQL()+` WHERE visibility = $1 ORDER BY "order", id`, visibility)
}
