package client

import "go-portfolio/internal/domain"

// API bundles one accessor per portfolio resource.
type API struct {
	*Client

	SocialLinks      *Resource[domain.SocialLink]
	Skills           *Resource[domain.Skill]
	Services         *Resource[domain.Service]
	Certifications   *Resource[domain.Certification]
	Projects         *Resource[domain.Project]
	Experience       *Resource[domain.WorkExperience]
	ExperienceSkills *ExperienceSkills
	KPIs             *KPIs
	About            *Singleton[domain.About]
	Contact          *Singleton[domain.Contact]
}

func NewAPI(c *Client) *API {
	return &API{
		Client:           c,
		SocialLinks:      NewResource[domain.SocialLink](c, "/api/social-links"),
		Skills:           NewResource[domain.Skill](c, "/api/skills"),
		Services:         NewResource[domain.Service](c, "/api/services"),
		Certifications:   NewResource[domain.Certification](c, "/api/certifications"),
		Projects:         NewResource[domain.Project](c, "/api/projects"),
		Experience:       NewResource[domain.WorkExperience](c, "/api/experience"),
		ExperienceSkills: &ExperienceSkills{c: c},
		KPIs:             &KPIs{Resource: NewResource[domain.KPI](c, "/api/kpis")},
		About:            NewSingleton[domain.About](c, "/api/about"),
		Contact:          NewSingleton[domain.Contact](c, "/api/contact"),
	}
}
