package domain

import (
	"context"
	"errors"
	"time"
)

type WorkExperience struct {
	ID        int64     `json:"id,omitempty" db:"id" gorm:"primaryKey"`
	Company   string    `json:"company" db:"company" gorm:"size:200;not null" validate:"notblank,max=200"`
	Role      string    `json:"role" db:"role" gorm:"size:200;not null" validate:"notblank,max=200"`
	StartDate Date      `json:"start_date" db:"start_date" gorm:"not null"`
	EndDate   Date      `json:"end_date,omitzero" db:"end_date"` // zero means current
	Summary   string    `json:"summary,omitempty" db:"summary" gorm:"type:text;not null;default:''"`
	Order     int       `json:"order" db:"order" gorm:"column:order;not null"`
	CreatedAt time.Time `json:"created_at,omitzero" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitzero" db:"updated_at"`

	// Only populated by the detail endpoint.
	SkillsAcquired []ExperienceSkill `json:"skills_acquired,omitempty" db:"-" gorm:"foreignKey:ExperienceID;constraint:OnDelete:CASCADE"`
}

func (WorkExperience) TableName() string { return "work_experience" }
func (w *WorkExperience) GetID() int64   { return w.ID }
func (w *WorkExperience) SetID(id int64) { w.ID = id }

func (w *WorkExperience) Check() error {
	if w.StartDate.IsZero() {
		return errors.New("start_date: is required")
	}
	if !w.EndDate.IsZero() && w.EndDate.Time().Before(w.StartDate.Time()) {
		return errors.New("end_date: must not be before start_date")
	}
	return nil
}

// ExperienceSkill is owned by exactly one WorkExperience.
type ExperienceSkill struct {
	ID           int64     `json:"id,omitempty" db:"id" gorm:"primaryKey"`
	ExperienceID int64     `json:"experience_id,omitempty" db:"experience_id" gorm:"not null;index"`
	SkillName    string    `json:"skill_name" db:"skill_name" gorm:"size:100;not null" validate:"notblank,max=100"`
	Explanation  string    `json:"explanation" db:"explanation" gorm:"type:text;not null" validate:"notblank"`
	Order        int       `json:"order" db:"order" gorm:"column:order;not null"`
	CreatedAt    time.Time `json:"created_at,omitzero" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at,omitzero" db:"updated_at"`
}

func (ExperienceSkill) TableName() string { return "experience_skills" }
func (s *ExperienceSkill) GetID() int64   { return s.ID }
func (s *ExperienceSkill) SetID(id int64) { s.ID = id }

type ExperienceRepository interface {
	ContentRepository[WorkExperience]
	// GetDetail returns the experience with SkillsAcquired loaded.
	GetDetail(ctx context.Context, id int64) (*WorkExperience, error)
}

type ExperienceSkillRepository interface {
	ListByExperience(ctx context.Context, experienceID int64) ([]ExperienceSkill, error)
	GetByID(ctx context.Context, id int64) (*ExperienceSkill, error)
	Create(ctx context.Context, skill *ExperienceSkill) error
	Update(ctx context.Context, skill *ExperienceSkill) error
	Delete(ctx context.Context, id int64) error
}

type ExperienceUsecase interface {
	ContentUsecase[WorkExperience]
	AddSkill(ctx context.Context, experienceID int64, skill *ExperienceSkill) error
	UpdateSkill(ctx context.Context, id int64, skill *ExperienceSkill) error
	DeleteSkill(ctx context.Context, id int64) error
}
