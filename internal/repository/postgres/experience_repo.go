package postgres

import (
	"context"

	"go-portfolio/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type experienceRepo struct {
	*contentRepo[domain.WorkExperience, *domain.WorkExperience]
	skills *contentRepo[domain.ExperienceSkill, *domain.ExperienceSkill]
}

// NewExperienceRepository returns work experience storage. Skill rows are
// removed with their experience by the ON DELETE CASCADE foreign key.
func NewExperienceRepository(db *pgxpool.Pool) domain.ExperienceRepository {
	return &experienceRepo{
		contentRepo: newContentRepo[domain.WorkExperience](db, experienceTable),
		skills:      newContentRepo[domain.ExperienceSkill](db, experienceSkillTable),
	}
}

func (r *experienceRepo) GetDetail(ctx context.Context, id int64) (*domain.WorkExperience, error) {
	exp, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	skills, err := r.skills.query(ctx,
		experienceSkillTable.selectSQL()+` WHERE experience_id = $1 ORDER BY "order", id`, id)
	if err != nil {
		return nil, err
	}
	exp.SkillsAcquired = skills
	return exp, nil
}

type experienceSkillRepo struct {
	*contentRepo[domain.ExperienceSkill, *domain.ExperienceSkill]
}

func NewExperienceSkillRepository(db *pgxpool.Pool) domain.ExperienceSkillRepository {
	return &experienceSkillRepo{
		contentRepo: newContentRepo[domain.ExperienceSkill](db, experienceSkillTable),
	}
}

func (r *experienceSkillRepo) ListByExperience(ctx context.Context, experienceID int64) ([]domain.ExperienceSkill, error) {
	return r.query(ctx, experienceSkillTable.selectSQL()+` WHERE experience_id = $1 ORDER BY "order", id`, experienceID)
}

// Update keeps the owning experience; a skill never moves between
// experiences.
func (r *experienceSkillRepo) Update(ctx context.Context, skill *domain.ExperienceSkill) error {
	current, err := r.GetByID(ctx, skill.ID)
	if err != nil {
		return err
	}
	skill.ExperienceID = current.ExperienceID
	return r.contentRepo.Update(ctx, skill)
}
