package client

import (
	"context"
	"net/http"
	"strconv"

	"go-portfolio/internal/domain"
)

// Resource is one listable collection under /api. Reads are public,
// writes carry the admin token.
type Resource[T any] struct {
	c    *Client
	path string
}

func NewResource[T any](c *Client, path string) *Resource[T] {
	return &Resource[T]{c: c, path: path}
}

// List returns items in the order the server sent them.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.c.do(ctx, http.MethodGet, r.path, false, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Resource[T]) Get(ctx context.Context, id int64) (*T, error) {
	item := new(T)
	if err := r.c.do(ctx, http.MethodGet, r.itemPath(id), false, nil, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (r *Resource[T]) Create(ctx context.Context, payload *T) (*T, error) {
	created := new(T)
	if err := r.c.do(ctx, http.MethodPost, r.path, true, payload, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *Resource[T]) Update(ctx context.Context, id int64, payload *T) (*T, error) {
	updated := new(T)
	if err := r.c.do(ctx, http.MethodPut, r.itemPath(id), true, payload, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *Resource[T]) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodDelete, r.itemPath(id), true, nil, nil)
}

func (r *Resource[T]) itemPath(id int64) string {
	return r.path + "/" + strconv.FormatInt(id, 10)
}

// Singleton is a one-record resource saved with POST.
type Singleton[T any] struct {
	c    *Client
	path string
}

func NewSingleton[T any](c *Client, path string) *Singleton[T] {
	return &Singleton[T]{c: c, path: path}
}

func (s *Singleton[T]) Get(ctx context.Context) (*T, error) {
	item := new(T)
	if err := s.c.do(ctx, http.MethodGet, s.path, false, nil, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Singleton[T]) Save(ctx context.Context, payload *T) (*T, error) {
	saved := new(T)
	if err := s.c.do(ctx, http.MethodPost, s.path, true, payload, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// KPIs differs from other resources only in its list: the public one
// hides non-public KPIs.
type KPIs struct {
	*Resource[domain.KPI]
}

func (k *KPIs) List(ctx context.Context, all bool) ([]domain.KPI, error) {
	if !all {
		return k.Resource.List(ctx)
	}
	var items []domain.KPI
	if err := k.c.do(ctx, http.MethodGet, k.path+"/all", true, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

type ExperienceSkills struct {
	c *Client
}

func (s *ExperienceSkills) Add(ctx context.Context, experienceID int64, skill *domain.ExperienceSkill) (*domain.ExperienceSkill, error) {
	created := new(domain.ExperienceSkill)
	path := "/api/experience/" + strconv.FormatInt(experienceID, 10) + "/skills"
	if err := s.c.do(ctx, http.MethodPost, path, true, skill, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *ExperienceSkills) Update(ctx context.Context, id int64, skill *domain.ExperienceSkill) (*domain.ExperienceSkill, error) {
	updated := new(domain.ExperienceSkill)
	if err := s.c.do(ctx, http.MethodPut, skillPath(id), true, skill, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *ExperienceSkills) Delete(ctx context.Context, id int64) error {
	return s.c.do(ctx, http.MethodDelete, skillPath(id), true, nil, nil)
}

func skillPath(id int64) string {
	return "/api/experience-skills/" + strconv.FormatInt(id, 10)
}
