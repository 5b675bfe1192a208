package v1

import (
	"go-portfolio/internal/delivery/http/middleware"
	"go-portfolio/internal/domain"
	"go-portfolio/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC   domain.AuthUsecase
	UploadUC domain.UploadUsecase
	HealthUC usecase.HealthUsecase

	SocialLinkUC    domain.ContentUsecase[domain.SocialLink]
	SkillUC         domain.ContentUsecase[domain.Skill]
	ServiceUC       domain.ContentUsecase[domain.Service]
	CertificationUC domain.ContentUsecase[domain.Certification]
	ProjectUC       domain.ContentUsecase[domain.Project]
	ExperienceUC    domain.ExperienceUsecase
	KPIUC           domain.KPIUsecase
	AboutUC         domain.SingletonUsecase[domain.About]
	ContactUC       domain.SingletonUsecase[domain.Contact]

	AllowedOrigins []string
	MaxUploadBytes int64
	SwaggerEnabled bool

	// UploadDir is served under UploadURLPath when set. Left empty when
	// files live in object storage.
	UploadDir     string
	UploadURLPath string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// CORS must run before anything can abort the request.
	r.Use(middleware.CORSMiddleware(deps.AllowedOrigins))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	health := &HealthHandler{healthUC: deps.HealthUC}
	r.GET("/", health.Check)

	if deps.UploadDir != "" && deps.UploadURLPath != "" {
		uploads := r.Group(deps.UploadURLPath)
		uploads.Use(middleware.UploadHeaders())
		uploads.Static("/", deps.UploadDir)
	}

	api := r.Group("/api")
	api.GET("/health", health.Check)

	if deps.SwaggerEnabled {
		api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.AuthUC))
	{
		NewAuthHandler(api, protected, deps.AuthUC)
		NewUploadHandler(protected, deps.UploadUC, deps.MaxUploadBytes)

		NewContentHandler(api, protected, "/social-links", "Social link", deps.SocialLinkUC)
		NewContentHandler(api, protected, "/skills", "Skill", deps.SkillUC)
		NewContentHandler(api, protected, "/services", "Service", deps.ServiceUC)
		NewContentHandler(api, protected, "/certifications", "Certification", deps.CertificationUC)
		NewContentHandler(api, protected, "/projects", "Project", deps.ProjectUC)
		NewExperienceHandler(api, protected, deps.ExperienceUC)
		NewKPIHandler(api, protected, deps.KPIUC)

		NewSingletonHandler(api, protected, "/about", deps.AboutUC)
		NewSingletonHandler(api, protected, "/contact", deps.ContactUC)
	}

	return r
}
