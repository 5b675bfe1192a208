// ABOUTME: Bulk content loading from a YAML file
// ABOUTME: Items are created in file order; experience skills follow their experience

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"go-portfolio/internal/domain"
)

// seedFile uses the same keys and field names as the API.
type seedFile struct {
	SocialLinks    []map[string]any `yaml:"social-links"`
	Skills         []map[string]any `yaml:"skills"`
	Services       []map[string]any `yaml:"services"`
	Certifications []map[string]any `yaml:"certifications"`
	Projects       []map[string]any `yaml:"projects"`
	Experience     []map[string]any `yaml:"experience"`
	KPIs           []map[string]any `yaml:"kpis"`
	About          map[string]any   `yaml:"about"`
	Contact        map[string]any   `yaml:"contact"`
}

type seedSummary struct {
	section string
	count   int
}

func readSeedFile(r io.Reader) (*seedFile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f seedFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	return &f, nil
}

type creator[T any] interface {
	Create(ctx context.Context, payload *T) (*T, error)
}

func seedList[T any](ctx context.Context, section string, items []map[string]any, dst creator[T]) (int, error) {
	for i, raw := range items {
		item, err := decodeAs[T](raw)
		if err != nil {
			return i, fmt.Errorf("%s[%d]: %w", section, i, err)
		}
		if _, err := dst.Create(ctx, item); err != nil {
			return i, fmt.Errorf("%s[%d]: %w", section, i, err)
		}
	}
	return len(items), nil
}

func (c *cli) seed(ctx context.Context, path string) ([]seedSummary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening seed file: %w", err)
	}
	defer file.Close()

	f, err := readSeedFile(file)
	if err != nil {
		return nil, err
	}

	var out []seedSummary
	add := func(section string, n int, err error) error {
		if n > 0 {
			out = append(out, seedSummary{section: section, count: n})
		}
		return err
	}

	steps := []func() error{
		func() error {
			n, err := seedList[domain.SocialLink](ctx, "social-links", f.SocialLinks, c.api.SocialLinks)
			return add("social-links", n, err)
		},
		func() error {
			n, err := seedList[domain.Skill](ctx, "skills", f.Skills, c.api.Skills)
			return add("skills", n, err)
		},
		func() error {
			n, err := seedList[domain.Service](ctx, "services", f.Services, c.api.Services)
			return add("services", n, err)
		},
		func() error {
			n, err := seedList[domain.Certification](ctx, "certifications", f.Certifications, c.api.Certifications)
			return add("certifications", n, err)
		},
		func() error {
			n, err := seedList[domain.Project](ctx, "projects", f.Projects, c.api.Projects)
			return add("projects", n, err)
		},
		func() error {
			n, skills, err := c.seedExperience(ctx, f.Experience)
			if err := add("experience", n, err); err != nil {
				return err
			}
			return add("experience skills", skills, nil)
		},
		func() error {
			n, err := seedList[domain.KPI](ctx, "kpis", f.KPIs, c.api.KPIs)
			return add("kpis", n, err)
		},
		func() error {
			if f.About == nil {
				return nil
			}
			about, err := decodeAs[domain.About](f.About)
			if err == nil {
				_, err = c.api.About.Save(ctx, about)
			}
			if err != nil {
				return fmt.Errorf("about: %w", err)
			}
			return add("about", 1, nil)
		},
		func() error {
			if f.Contact == nil {
				return nil
			}
			contact, err := decodeAs[domain.Contact](f.Contact)
			if err == nil {
				_, err = c.api.Contact.Save(ctx, contact)
			}
			if err != nil {
				return fmt.Errorf("contact: %w", err)
			}
			return add("contact", 1, nil)
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return out, err
		}
	}
	return out, nil
}

// seedExperience creates each experience, then its skills_acquired.
func (c *cli) seedExperience(ctx context.Context, items []map[string]any) (experiences, skills int, err error) {
	for i, raw := range items {
		exp, err := decodeAs[domain.WorkExperience](raw)
		if err != nil {
			return experiences, skills, fmt.Errorf("experience[%d]: %w", i, err)
		}
		nested := exp.SkillsAcquired
		exp.SkillsAcquired = nil

		created, err := c.api.Experience.Create(ctx, exp)
		if err != nil {
			return experiences, skills, fmt.Errorf("experience[%d]: %w", i, err)
		}
		experiences++

		for j := range nested {
			if _, err := c.api.ExperienceSkills.Add(ctx, created.ID, &nested[j]); err != nil {
				return experiences, skills, fmt.Errorf("experience[%d].skills_acquired[%d]: %w", i, j, err)
			}
			skills++
		}
	}
	return experiences, skills, nil
}

// decodeAs converts a YAML mapping to T through its json field names.
func decodeAs[T any](raw map[string]any) (*T, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
