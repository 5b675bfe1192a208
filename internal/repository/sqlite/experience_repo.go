package sqlite

import (
	"context"
	"errors"
	"net/http"

	"go-portfolio/internal/domain"
	"go-portfolio/pkg/apperror"

	"gorm.io/gorm"
)

type experienceRepo struct {
	*contentRepo[domain.WorkExperience, *domain.WorkExperience]
}

func NewExperienceRepository(db *gorm.DB) domain.ExperienceRepository {
	return &experienceRepo{contentRepo: newContentRepo[domain.WorkExperience](db, "Experience")}
}

func (r *experienceRepo) GetDetail(ctx context.Context, id int64) (*domain.WorkExperience, error) {
	var exp domain.WorkExperience
	err := r.db.WithContext(ctx).
		Preload("SkillsAcquired", func(db *gorm.DB) *gorm.DB { return db.Order(orderByPosition) }).
		First(&exp, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, r.notFound()
		}
		return nil, apperror.Internal(err)
	}
	if exp.SkillsAcquired == nil {
		exp.SkillsAcquired = []domain.ExperienceSkill{}
	}
	return &exp, nil
}

// Delete removes the experience and its skills in one transaction; SQLite
// only enforces the cascade when foreign keys are switched on.
func (r *experienceRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("experience_id = ?", id).Delete(&domain.ExperienceSkill{}).Error; err != nil {
			return apperror.Internal(err)
		}
		res := tx.Delete(&domain.WorkExperience{}, id)
		if res.Error != nil {
			return apperror.Internal(res.Error)
		}
		if res.RowsAffected == 0 {
			return r.notFound()
		}
		return nil
	})
}

type experienceSkillRepo struct {
	*contentRepo[domain.ExperienceSkill, *domain.ExperienceSkill]
}

func NewExperienceSkillRepository(db *gorm.DB) domain.ExperienceSkillRepository {
	return &experienceSkillRepo{contentRepo: newContentRepo[domain.ExperienceSkill](db, "Experience skill")}
}

func (r *experienceSkillRepo) ListByExperience(ctx context.Context, experienceID int64) ([]domain.ExperienceSkill, error) {
	return r.find(r.db.WithContext(ctx).Where("experience_id = ?", experienceID))
}

func (r *experienceSkillRepo) Create(ctx context.Context, skill *domain.ExperienceSkill) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.WorkExperience{}).Where("id = ?", skill.ExperienceID).Count(&count).Error; err != nil {
		return apperror.Internal(err)
	}
	if count == 0 {
		return apperror.New(http.StatusNotFound, "Experience not found", domain.ErrNotFound)
	}
	return r.contentRepo.Create(ctx, skill)
}

// Update keeps the owning experience.
func (r *experienceSkillRepo) Update(ctx context.Context, skill *domain.ExperienceSkill) error {
	current, err := r.GetByID(ctx, skill.ID)
	if err != nil {
		return err
	}
	skill.ExperienceID = current.ExperienceID
	return r.contentRepo.Update(ctx, skill)
}
