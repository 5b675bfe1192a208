package usecase

import (
	"context"

	"go-portfolio/internal/domain"
	"go-portfolio/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type experienceUsecase struct {
	*contentUsecase[domain.WorkExperience, *domain.WorkExperience]
	repo     domain.ExperienceRepository
	skills   domain.ExperienceSkillRepository
	validate *validator.Validate
}

func NewExperienceUsecase(repo domain.ExperienceRepository, skills domain.ExperienceSkillRepository, validate *validator.Validate) domain.ExperienceUsecase {
	return &experienceUsecase{
		contentUsecase: newContentUsecase[domain.WorkExperience](repo, validate),
		repo:           repo,
		skills:         skills,
		validate:       validate,
	}
}

// Get returns the experience with its skills, ordered by "order".
func (u *experienceUsecase) Get(ctx context.Context, id int64) (*domain.WorkExperience, error) {
	return u.repo.GetDetail(ctx, id)
}

// Create and Update never write skills; they have their own routes.
func (u *experienceUsecase) Create(ctx context.Context, exp *domain.WorkExperience) error {
	exp.SkillsAcquired = nil
	return u.contentUsecase.Create(ctx, exp)
}

func (u *experienceUsecase) Update(ctx context.Context, id int64, exp *domain.WorkExperience) error {
	exp.SkillsAcquired = nil
	return u.contentUsecase.Update(ctx, id, exp)
}

func (u *experienceUsecase) AddSkill(ctx context.Context, experienceID int64, skill *domain.ExperienceSkill) error {
	if experienceID <= 0 {
		return apperror.BadRequest("Invalid ID")
	}
	if _, err := u.repo.GetByID(ctx, experienceID); err != nil {
		return err
	}
	skill.ID = 0
	skill.ExperienceID = experienceID
	if err := validateEntity(u.validate, skill); err != nil {
		return err
	}
	return u.skills.Create(ctx, skill)
}

func (u *experienceUsecase) UpdateSkill(ctx context.Context, id int64, skill *domain.ExperienceSkill) error {
	if id <= 0 {
		return apperror.BadRequest("Invalid ID")
	}
	skill.ID = id
	if err := validateEntity(u.validate, skill); err != nil {
		return err
	}
	return u.skills.Update(ctx, skill)
}

func (u *experienceUsecase) DeleteSkill(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperror.BadRequest("Invalid ID")
	}
	return u.skills.Delete(ctx, id)
}
