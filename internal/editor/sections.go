package editor

import (
	"context"

	"go-portfolio/internal/client"
	"go-portfolio/internal/domain"
)

// AdminState reports whether the session is in admin mode.
type AdminState interface {
	IsAdmin() bool
}

func NewSocialLinks(api *client.API, opts Options) *Section[domain.SocialLink] {
	return NewSection(Definition[domain.SocialLink]{
		Noun:   "social link",
		ID:     func(l domain.SocialLink) int64 { return l.ID },
		Labels: func(l domain.SocialLink) []string { return []string{l.Platform} },
		Empty:  func() domain.SocialLink { return domain.SocialLink{} },
		List:   api.SocialLinks.List,
		Writer: api.SocialLinks,
	}, opts)
}

func NewSkills(api *client.API, opts Options) *Section[domain.Skill] {
	return NewSection(Definition[domain.Skill]{
		Noun:   "skill",
		ID:     func(s domain.Skill) int64 { return s.ID },
		Labels: func(s domain.Skill) []string { return []string{s.Name} },
		Empty:  func() domain.Skill { return domain.Skill{} },
		List:   api.Skills.List,
		Writer: api.Skills,
	}, opts)
}

func NewServices(api *client.API, opts Options) *Section[domain.Service] {
	return NewSection(Definition[domain.Service]{
		Noun:   "service",
		ID:     func(s domain.Service) int64 { return s.ID },
		Labels: func(s domain.Service) []string { return []string{s.Title} },
		Empty:  func() domain.Service { return domain.Service{} },
		List:   api.Services.List,
		Writer: api.Services,
	}, opts)
}

func NewCertifications(api *client.API, opts Options) *Section[domain.Certification] {
	return NewSection(Definition[domain.Certification]{
		Noun:   "certification",
		ID:     func(c domain.Certification) int64 { return c.ID },
		Labels: func(c domain.Certification) []string { return []string{c.Name} },
		Empty:  func() domain.Certification { return domain.Certification{} },
		List:   api.Certifications.List,
		Writer: api.Certifications,
	}, opts)
}

func NewExperience(api *client.API, opts Options) *Section[domain.WorkExperience] {
	return NewSection(Definition[domain.WorkExperience]{
		Noun: "experience",
		ID:   func(e domain.WorkExperience) int64 { return e.ID },
		Labels: func(e domain.WorkExperience) []string {
			return []string{e.Company, e.Role}
		},
		Empty:  func() domain.WorkExperience { return domain.WorkExperience{} },
		List:   api.Experience.List,
		Writer: api.Experience,
	}, opts)
}

func NewProjects(api *client.API, opts Options) *Section[domain.Project] {
	return NewSection(Definition[domain.Project]{
		Noun:   "project",
		ID:     func(p domain.Project) int64 { return p.ID },
		Labels: func(p domain.Project) []string { return []string{p.Name} },
		Empty:  func() domain.Project { return domain.Project{} },
		List:   api.Projects.List,
		Writer: api.Projects,
	}, opts)
}

// NewKPIs lists all KPIs while admin, and only public ones otherwise.
func NewKPIs(api *client.API, admin AdminState, opts Options) *Section[domain.KPI] {
	return NewSection(Definition[domain.KPI]{
		Noun:   "KPI",
		ID:     func(k domain.KPI) int64 { return k.ID },
		Labels: func(k domain.KPI) []string { return []string{k.Title} },
		Empty:  EmptyKPI,
		List: func(ctx context.Context) ([]domain.KPI, error) {
			return api.KPIs.List(ctx, admin.IsAdmin())
		},
		Writer: api.KPIs,
	}, opts)
}

func EmptyKPI() domain.KPI {
	return domain.KPI{Status: domain.KPIStatusPlanned, Visibility: domain.KPIVisibilityPublic}
}

func NewAbout(api *client.API, opts Options) *Singleton[domain.About] {
	return NewSingleton[domain.About]("about", api.About, opts)
}

func NewContact(api *client.API, opts Options) *Singleton[domain.Contact] {
	return NewSingleton[domain.Contact]("contact", api.Contact, opts)
}

func NewExperienceDetailFor(api *client.API, id int64, opts Options) *ExperienceDetail {
	return NewExperienceDetail(id, api.Experience, api.ExperienceSkills, opts)
}

// Apply functions for the attachment fields the page offers.
func SetSkillIcon(s *domain.Skill, url string)          { s.Icon = url }
func SetServiceIcon(s *domain.Service, url string)      { s.Icon = url }
func SetSocialIcon(l *domain.SocialLink, url string)    { l.Icon = url }
func SetBadgeImage(c *domain.Certification, url string) { c.BadgeImage = url }
func SetCertImage(c *domain.Certification, url string)  { c.CertImage = url }
func SetProjectImage(p *domain.Project, url string)     { p.Image = url }
func SetProfileImage(a *domain.About, url string)       { a.ProfileImage = url }
func SetCVURL(c *domain.Contact, url string)            { c.CVURL = url }
