// Package shell composes the portfolio page from its sections and wires
// them to the admin session.
package shell

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"go-portfolio/internal/client"
	"go-portfolio/internal/domain"
	"go-portfolio/internal/editor"
	"go-portfolio/internal/session"

	"golang.org/x/sync/errgroup"
)

type Page struct {
	api     *client.API
	session *session.Store
	opts    editor.Options

	SocialLinks    *editor.Section[domain.SocialLink]
	About          *editor.Singleton[domain.About]
	Skills         *editor.Section[domain.Skill]
	Services       *editor.Section[domain.Service]
	Certifications *editor.Section[domain.Certification]
	Experience     *editor.Section[domain.WorkExperience]
	Projects       *editor.Section[domain.Project]
	KPIs           *editor.Section[domain.KPI]
	Contact        *editor.Singleton[domain.Contact]

	mu      sync.Mutex
	admin   bool
	mounted bool
	cancels []func()
}

func NewPage(api *client.API, sess *session.Store, opts editor.Options) *Page {
	return &Page{
		api:            api,
		session:        sess,
		opts:           opts,
		SocialLinks:    editor.NewSocialLinks(api, opts),
		About:          editor.NewAbout(api, opts),
		Skills:         editor.NewSkills(api, opts),
		Services:       editor.NewServices(api, opts),
		Certifications: editor.NewCertifications(api, opts),
		Experience:     editor.NewExperience(api, opts),
		Projects:       editor.NewProjects(api, opts),
		KPIs:           editor.NewKPIs(api, sess, opts),
		Contact:        editor.NewContact(api, opts),
	}
}

// Mount subscribes to the session and loads every section in parallel.
// A section that fails to load keeps its previous content; Mount only
// fails when ctx is done. Mounting an already mounted page only reloads
// it. The subscriptions outlive ctx and last until Unmount.
func (p *Page) Mount(ctx context.Context) error {
	p.subscribe(ctx)

	loaders := []func(context.Context) error{
		p.SocialLinks.Load,
		p.About.Load,
		p.Skills.Load,
		p.Services.Load,
		p.Certifications.Load,
		p.Experience.Load,
		p.Projects.Load,
		p.KPIs.Load,
		p.Contact.Load,
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, load := range loaders {
		g.Go(func() error {
			_ = load(gctx)
			return nil
		})
	}
	_ = g.Wait()
	return ctx.Err()
}

// subscribe registers the page with the session once per mount. The
// session calls back synchronously, so p.mu is not held while
// subscribing.
func (p *Page) subscribe(ctx context.Context) {
	p.mu.Lock()
	if p.mounted {
		p.mu.Unlock()
		return
	}
	p.mounted = true
	p.mu.Unlock()

	subCtx, stop := context.WithCancel(context.WithoutCancel(ctx))
	cancels := []func(){
		stop,
		p.session.Subscribe(p.setAdmin),
		p.KPIs.ReloadOnAdminChange(subCtx, p.session),
	}

	p.mu.Lock()
	p.cancels = append(p.cancels, cancels...)
	p.mu.Unlock()
}

// Unmount drops the session subscriptions.
func (p *Page) Unmount() {
	p.mu.Lock()
	cancels := p.cancels
	p.cancels = nil
	p.mounted = false
	p.mu.Unlock()
	for _, cancel := range cancels {
		cancel()
	}
}

// IsAdmin gates the edit controls of every section.
func (p *Page) IsAdmin() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.admin
}

func (p *Page) setAdmin(admin bool) {
	p.mu.Lock()
	p.admin = admin
	p.mu.Unlock()
}

// OpenExperience loads the detail view of one experience.
func (p *Page) OpenExperience(ctx context.Context, id int64) (*editor.ExperienceDetail, error) {
	detail := editor.NewExperienceDetailFor(p.api, id, p.opts)
	if err := detail.Load(ctx); err != nil {
		return detail, err
	}
	return detail, nil
}

func (p *Page) Logout() error {
	return p.session.Logout()
}

// Route is a parsed client path: "/", "/admin" or "/experience/:id".
type Route struct {
	Name         string
	ExperienceID int64
}

const (
	RouteHome       = "home"
	RouteLogin      = "login"
	RouteExperience = "experience"
)

func ParseRoute(path string) (Route, error) {
	path = "/" + strings.Trim(path, "/")
	switch {
	case path == "/":
		return Route{Name: RouteHome}, nil
	case path == "/admin":
		return Route{Name: RouteLogin}, nil
	case strings.HasPrefix(path, "/experience/"):
		id, err := strconv.ParseInt(strings.TrimPrefix(path, "/experience/"), 10, 64)
		if err != nil || id <= 0 {
			return Route{}, fmt.Errorf("invalid experience id in %q", path)
		}
		return Route{Name: RouteExperience, ExperienceID: id}, nil
	}
	return Route{}, fmt.Errorf("unknown route %q", path)
}
