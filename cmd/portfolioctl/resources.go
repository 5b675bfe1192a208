// ABOUTME: Resource table for list, add, edit and delete
// ABOUTME: Each resource drives an editor.Section so prompts, label checks and alerts match the page

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"go-portfolio/internal/domain"
	"go-portfolio/internal/editor"
)

type resource interface {
	list(ctx context.Context, w io.Writer) error
	add(ctx context.Context, fields map[string]string) error
	edit(ctx context.Context, id int64, fields map[string]string) error
	remove(ctx context.Context, id int64) error
}

// fileField is a field whose value may be given as @path, in which case
// the file is uploaded and its URL stored on the draft.
type fileField[T any] struct {
	kind  editor.FileKind
	what  string
	apply func(draft *T, url string)
}

type table[T any] struct {
	section *editor.Section[T]
	id      func(T) int64
	labels  string
	header  []string
	row     func(T) []string
	files   map[string]fileField[T]
}

func (t *table[T]) list(ctx context.Context, w io.Writer) error {
	if err := t.section.Load(ctx); err != nil {
		return err
	}
	items := t.section.Items()
	if len(items) == 0 {
		fmt.Fprintf(w, "  (no %ss)\n", t.section.Noun())
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\t"+strings.Join(t.header, "\t"))
	for _, item := range items {
		fmt.Fprintf(tw, "  %d\t%s\n", t.id(item), strings.Join(t.row(item), "\t"))
	}
	return tw.Flush()
}

func (t *table[T]) add(ctx context.Context, fields map[string]string) error {
	plain, files, err := splitFiles(fields, t.files)
	if err != nil {
		return err
	}

	t.section.StartAdd()
	var applyErr error
	t.section.UpdateNewDraft(func(draft *T) { applyErr = applyFields(draft, plain) })
	if applyErr != nil {
		t.section.CancelAdd()
		return applyErr
	}
	for _, a := range files {
		if err := t.section.AttachNew(a.kind, a.Attachment); err != nil {
			t.section.CancelAdd()
			return err
		}
	}
	return t.labelHint(t.section.Add(ctx))
}

func (t *table[T]) edit(ctx context.Context, id int64, fields map[string]string) error {
	plain, files, err := splitFiles(fields, t.files)
	if err != nil {
		return err
	}
	item, err := t.find(ctx, id)
	if err != nil {
		return err
	}

	t.section.StartEdit(item)
	var applyErr error
	t.section.UpdateEditDraft(func(draft *T) { applyErr = applyFields(draft, plain) })
	if applyErr != nil {
		t.section.CancelEdit()
		return applyErr
	}
	for _, a := range files {
		if err := t.section.AttachEdit(a.kind, a.Attachment); err != nil {
			t.section.CancelEdit()
			return err
		}
	}
	return t.labelHint(t.section.SaveEdit(ctx))
}

func (t *table[T]) remove(ctx context.Context, id int64) error {
	if _, err := t.find(ctx, id); err != nil {
		return err
	}
	return t.section.Delete(ctx, id)
}

func (t *table[T]) find(ctx context.Context, id int64) (T, error) {
	if err := t.section.Load(ctx); err != nil {
		var zero T
		return zero, err
	}
	for _, item := range t.section.Items() {
		if t.id(item) == id {
			return item, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("no %s with id %d", t.section.Noun(), id)
}

func (t *table[T]) labelHint(err error) error {
	if errors.Is(err, editor.ErrLabelRequired) {
		return fmt.Errorf("%s needs %s", t.section.Noun(), t.labels)
	}
	return err
}

type pendingFile[T any] struct {
	editor.Attachment[T]
	kind editor.FileKind
}

// splitFiles reads every @path value of a file field and returns the
// remaining plain fields.
func splitFiles[T any](fields map[string]string, known map[string]fileField[T]) (map[string]string, []pendingFile[T], error) {
	plain := make(map[string]string, len(fields))
	var files []pendingFile[T]

	// Sorted so attachments upload in a stable order.
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := fields[key]
		ff, ok := known[key]
		if !ok || !strings.HasPrefix(value, "@") {
			plain[key] = value
			continue
		}
		path := strings.TrimPrefix(value, "@")
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", key, err)
		}
		files = append(files, pendingFile[T]{
			Attachment: editor.Attachment[T]{What: ff.what, Filename: filepath.Base(path), Data: data, Apply: ff.apply},
			kind:       ff.kind,
		})
	}
	return plain, files, nil
}

func (c *cli) resources() map[string]resource {
	opts := c.editorOptions()
	return map[string]resource{
		"social-links": &table[domain.SocialLink]{
			section: editor.NewSocialLinks(c.api, opts),
			id:      func(l domain.SocialLink) int64 { return l.ID },
			labels:  "platform",
			header:  []string{"PLATFORM", "URL", "ICON", "ORDER"},
			row: func(l domain.SocialLink) []string {
				icon := l.Icon
				if icon == "" {
					icon = domain.PlatformIcon(l.Platform)
				}
				return []string{l.Platform, l.URL, icon, strconv.Itoa(l.Order)}
			},
			files: map[string]fileField[domain.SocialLink]{
				"icon": {editor.ImageFile, "icon", editor.SetSocialIcon},
			},
		},
		"skills": &table[domain.Skill]{
			section: editor.NewSkills(c.api, opts),
			id:      func(s domain.Skill) int64 { return s.ID },
			labels:  "name",
			header:  []string{"NAME", "CATEGORY", "ORDER"},
			row: func(s domain.Skill) []string {
				return []string{s.Name, s.Category, strconv.Itoa(s.Order)}
			},
			files: map[string]fileField[domain.Skill]{
				"icon": {editor.SVGFile, "icon", editor.SetSkillIcon},
			},
		},
		"services": &table[domain.Service]{
			section: editor.NewServices(c.api, opts),
			id:      func(s domain.Service) int64 { return s.ID },
			labels:  "title",
			header:  []string{"TITLE", "DESCRIPTION", "ORDER"},
			row: func(s domain.Service) []string {
				return []string{s.Title, truncate(s.Description, 40), strconv.Itoa(s.Order)}
			},
			files: map[string]fileField[domain.Service]{
				"icon": {editor.SVGFile, "icon", editor.SetServiceIcon},
			},
		},
		"certifications": &table[domain.Certification]{
			section: editor.NewCertifications(c.api, opts),
			id:      func(cert domain.Certification) int64 { return cert.ID },
			labels:  "name",
			header:  []string{"NAME", "ISSUER", "ISSUED", "ORDER"},
			row: func(cert domain.Certification) []string {
				return []string{cert.Name, cert.Issuer, cert.IssuedDate.String(), strconv.Itoa(cert.Order)}
			},
			files: map[string]fileField[domain.Certification]{
				"badge_image": {editor.ImageFile, "badge image", editor.SetBadgeImage},
				"cert_image":  {editor.ImageFile, "certificate image", editor.SetCertImage},
			},
		},
		"projects": &table[domain.Project]{
			section: editor.NewProjects(c.api, opts),
			id:      func(p domain.Project) int64 { return p.ID },
			labels:  "name",
			header:  []string{"NAME", "TECHNOLOGIES", "LIVE", "ORDER"},
			row: func(p domain.Project) []string {
				return []string{p.Name, truncate(p.Technologies, 30), p.LiveURL, strconv.Itoa(p.Order)}
			},
			files: map[string]fileField[domain.Project]{
				"image": {editor.ImageFile, "image", editor.SetProjectImage},
			},
		},
		"experience": &table[domain.WorkExperience]{
			section: editor.NewExperience(c.api, opts),
			id:      func(e domain.WorkExperience) int64 { return e.ID },
			labels:  "company and role",
			header:  []string{"COMPANY", "ROLE", "FROM", "TO", "ORDER"},
			row: func(e domain.WorkExperience) []string {
				return []string{e.Company, e.Role, e.StartDate.String(), until(e.EndDate), strconv.Itoa(e.Order)}
			},
		},
		"kpis": &table[domain.KPI]{
			section: editor.NewKPIs(c.api, c.sess, opts),
			id:      func(k domain.KPI) int64 { return k.ID },
			labels:  "title",
			header:  []string{"TITLE", "STATUS", "VISIBILITY", "TARGET", "ORDER"},
			row: func(k domain.KPI) []string {
				return []string{k.Title, k.Status, k.Visibility, k.TargetDate.String(), strconv.Itoa(k.Order)}
			},
		},
	}
}

// skillTable edits the skills nested under one experience.
func skillTable(detail *editor.ExperienceDetail) *table[domain.ExperienceSkill] {
	return &table[domain.ExperienceSkill]{
		section: detail.Skills,
		id:      func(s domain.ExperienceSkill) int64 { return s.ID },
		labels:  "skill_name",
		header:  []string{"SKILL", "EXPLANATION", "ORDER"},
		row: func(s domain.ExperienceSkill) []string {
			return []string{s.SkillName, truncate(s.Explanation, 50), strconv.Itoa(s.Order)}
		},
	}
}

func resourceNames(m map[string]resource) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func until(d domain.Date) string {
	if d.IsZero() {
		return "present"
	}
	return d.String()
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
