package postgres

import (
	"go-portfolio/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

var socialLinkTable = table[domain.SocialLink]{
	name:    "social_links",
	noun:    "Social link",
	columns: []string{"platform", "url", "icon", "order"},
	values: func(s *domain.SocialLink) []any {
		return []any{s.Platform, s.URL, s.Icon, s.Order}
	},
}

var skillTable = table[domain.Skill]{
	name:    "skills",
	noun:    "Skill",
	columns: []string{"name", "category", "icon", "order"},
	values: func(s *domain.Skill) []any {
		return []any{s.Name, s.Category, s.Icon, s.Order}
	},
}

var serviceTable = table[domain.Service]{
	name:    "services",
	noun:    "Service",
	columns: []string{"title", "description", "icon", "order"},
	values: func(s *domain.Service) []any {
		return []any{s.Title, s.Description, s.Icon, s.Order}
	},
}

var certificationTable = table[domain.Certification]{
	name:    "certifications",
	noun:    "Certification",
	columns: []string{"name", "issuer", "badge_image", "cert_image", "issued_date", "order"},
	values: func(c *domain.Certification) []any {
		return []any{c.Name, c.Issuer, c.BadgeImage, c.CertImage, c.IssuedDate, c.Order}
	},
}

var projectTable = table[domain.Project]{
	name:    "projects",
	noun:    "Project",
	columns: []string{"name", "description", "image", "live_url", "github_url", "technologies", "order"},
	values: func(p *domain.Project) []any {
		return []any{p.Name, p.Description, p.Image, p.LiveURL, p.GithubURL, p.Technologies, p.Order}
	},
}

var experienceTable = table[domain.WorkExperience]{
	name:    "work_experience",
	noun:    "Experience",
	columns: []string{"company", "role", "start_date", "end_date", "summary", "order"},
	values: func(w *domain.WorkExperience) []any {
		return []any{w.Company, w.Role, w.StartDate, w.EndDate, w.Summary, w.Order}
	},
}

var experienceSkillTable = table[domain.ExperienceSkill]{
	name:    "experience_skills",
	noun:    "Experience skill",
	columns: []string{"experience_id", "skill_name", "explanation", "order"},
	values: func(s *domain.ExperienceSkill) []any {
		return []any{s.ExperienceID, s.SkillName, s.Explanation, s.Order}
	},
}

var kpiTable = table[domain.KPI]{
	name:    "kpis",
	noun:    "KPI",
	columns: []string{"title", "description", "status", "target_date", "visibility", "order"},
	values: func(k *domain.KPI) []any {
		return []any{k.Title, k.Description, k.Status, k.TargetDate, k.Visibility, k.Order}
	},
}

var aboutTable = table[domain.About]{
	name:    "about",
	noun:    "About",
	columns: []string{"overview", "profile_image"},
	values: func(a *domain.About) []any {
		return []any{a.Overview, a.ProfileImage}
	},
}

var contactTable = table[domain.Contact]{
	name:    "contact",
	noun:    "Contact",
	columns: []string{"email", "phone", "linkedin", "github", "location", "cv_url"},
	values: func(c *domain.Contact) []any {
		return []any{c.Email, c.Phone, c.LinkedIn, c.Github, c.Location, c.CVURL}
	},
}

func NewSocialLinkRepository(db *pgxpool.Pool) domain.ContentRepository[domain.SocialLink] {
	return newContentRepo[domain.SocialLink](db, socialLinkTable)
}

func NewSkillRepository(db *pgxpool.Pool) domain.ContentRepository[domain.Skill] {
	return newContentRepo[domain.Skill](db, skillTable)
}

func NewServiceRepository(db *pgxpool.Pool) domain.ContentRepository[domain.Service] {
	return newContentRepo[domain.Service](db, serviceTable)
}

func NewCertificationRepository(db *pgxpool.Pool) domain.ContentRepository[domain.Certification] {
	return newContentRepo[domain.Certification](db, certificationTable)
}

func NewProjectRepository(db *pgxpool.Pool) domain.ContentRepository[domain.Project] {
	return newContentRepo[domain.Project](db, projectTable)
}
