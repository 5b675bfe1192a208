package domain

import (
	"context"
	"time"
)

const (
	KPIStatusPlanned    = "Planned"
	KPIStatusInProgress = "In Progress"
	KPIStatusCompleted  = "Completed"

	KPIVisibilityPublic     = "Public"
	KPIVisibilityComingSoon = "Coming Soon"
)

type KPI struct {
	ID          int64     `json:"id,omitempty" db:"id" gorm:"primaryKey"`
	Title       string    `json:"title" db:"title" gorm:"size:200;not null" validate:"notblank,max=200"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null" validate:"notblank"`
	Status      string    `json:"status" db:"status" gorm:"size:50;not null" validate:"required,oneof=Planned 'In Progress' Completed"`
	TargetDate  Date      `json:"target_date,omitzero" db:"target_date"`
	Visibility  string    `json:"visibility" db:"visibility" gorm:"size:50;not null" validate:"required,oneof=Public 'Coming Soon'"`
	Order       int       `json:"order" db:"order" gorm:"column:order;not null"`
	CreatedAt   time.Time `json:"created_at,omitzero" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at,omitzero" db:"updated_at"`
}

func (KPI) TableName() string { return "kpis" }
func (k *KPI) GetID() int64   { return k.ID }
func (k *KPI) SetID(id int64) { k.ID = id }

type KPIRepository interface {
	ContentRepository[KPI]
	ListByVisibility(ctx context.Context, visibility string) ([]KPI, error)
}

type KPIUsecase interface {
	ContentUsecase[KPI]
	// ListPublic returns only KPIs whose visibility is Public.
	ListPublic(ctx context.Context) ([]KPI, error)
}
