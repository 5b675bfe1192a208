// Package app assembles repositories, usecases and the HTTP router.
package app

import (
	v1 "go-portfolio/internal/delivery/http/v1"
	"go-portfolio/internal/domain"
	"go-portfolio/internal/repository/postgres"
	"go-portfolio/internal/repository/sqlite"
	"go-portfolio/internal/usecase"
	"go-portfolio/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"
)

// Repositories is one storage backend's implementation of every
// persisted resource.
type Repositories struct {
	SocialLinks      domain.ContentRepository[domain.SocialLink]
	Skills           domain.ContentRepository[domain.Skill]
	Services         domain.ContentRepository[domain.Service]
	Certifications   domain.ContentRepository[domain.Certification]
	Projects         domain.ContentRepository[domain.Project]
	Experience       domain.ExperienceRepository
	ExperienceSkills domain.ExperienceSkillRepository
	KPIs             domain.KPIRepository
	About            domain.SingletonRepository[domain.About]
	Contact          domain.SingletonRepository[domain.Contact]
}

func PostgresRepositories(db *pgxpool.Pool) Repositories {
	return Repositories{
		SocialLinks:      postgres.NewSocialLinkRepository(db),
		Skills:           postgres.NewSkillRepository(db),
		Services:         postgres.NewServiceRepository(db),
		Certifications:   postgres.NewCertificationRepository(db),
		Projects:         postgres.NewProjectRepository(db),
		Experience:       postgres.NewExperienceRepository(db),
		ExperienceSkills: postgres.NewExperienceSkillRepository(db),
		KPIs:             postgres.NewKPIRepository(db),
		About:            postgres.NewAboutRepository(db),
		Contact:          postgres.NewContactRepository(db),
	}
}

func SQLiteRepositories(db *gorm.DB) Repositories {
	return Repositories{
		SocialLinks:      sqlite.NewSocialLinkRepository(db),
		Skills:           sqlite.NewSkillRepository(db),
		Services:         sqlite.NewServiceRepository(db),
		Certifications:   sqlite.NewCertificationRepository(db),
		Projects:         sqlite.NewProjectRepository(db),
		Experience:       sqlite.NewExperienceRepository(db),
		ExperienceSkills: sqlite.NewExperienceSkillRepository(db),
		KPIs:             sqlite.NewKPIRepository(db),
		About:            sqlite.NewAboutRepository(db),
		Contact:          sqlite.NewContactRepository(db),
	}
}

// Options carries everything the router needs besides storage.
type Options struct {
	Passwords usecase.PasswordChecker
	Tokens    usecase.TokenManager
	Storage   domain.FileStorage
	Renderer  domain.MarkdownRenderer
	Upload    usecase.UploadConfig

	AllowedOrigins []string
	SwaggerEnabled bool
	UploadDir      string
	UploadURLPath  string
}

func NewRouter(repos Repositories, opts Options) *gin.Engine {
	validate := validation.New()

	return v1.NewRouter(v1.RouterDeps{
		AuthUC:   usecase.NewAuthUsecase(opts.Passwords, opts.Tokens),
		UploadUC: usecase.NewUploadUsecase(opts.Storage, opts.Upload),
		HealthUC: usecase.NewHealthUsecase(),

		SocialLinkUC:    usecase.NewContentUsecase(repos.SocialLinks, validate),
		SkillUC:         usecase.NewContentUsecase(repos.Skills, validate),
		ServiceUC:       usecase.NewContentUsecase(repos.Services, validate),
		CertificationUC: usecase.NewContentUsecase(repos.Certifications, validate),
		ProjectUC:       usecase.NewContentUsecase(repos.Projects, validate),
		ExperienceUC:    usecase.NewExperienceUsecase(repos.Experience, repos.ExperienceSkills, validate),
		KPIUC:           usecase.NewKPIUsecase(repos.KPIs, validate),
		AboutUC:         usecase.NewAboutUsecase(repos.About, opts.Renderer, validate),
		ContactUC:       usecase.NewSingletonUsecase(repos.Contact, validate),

		AllowedOrigins: opts.AllowedOrigins,
		MaxUploadBytes: opts.Upload.MaxBytes,
		SwaggerEnabled: opts.SwaggerEnabled,
		UploadDir:      opts.UploadDir,
		UploadURLPath:  opts.UploadURLPath,
	})
}
