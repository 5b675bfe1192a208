package sqlite

import (
	"go-portfolio/internal/domain"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables for every content type.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.SocialLink{},
		&domain.About{},
		&domain.Skill{},
		&domain.Service{},
		&domain.Certification{},
		&domain.WorkExperience{},
		&domain.ExperienceSkill{},
		&domain.Project{},
		&domain.KPI{},
		&domain.Contact{},
	)
}
