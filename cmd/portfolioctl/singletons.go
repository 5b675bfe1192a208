// ABOUTME: show and set for the About and Contact records
// ABOUTME: Edits go through editor.Singleton, uploading @path files before the upsert

package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"go-portfolio/internal/domain"
	"go-portfolio/internal/editor"
)

type record interface {
	show(ctx context.Context, w io.Writer) error
	set(ctx context.Context, fields map[string]string) error
}

type singletonRecord[T any] struct {
	editor *editor.Singleton[T]
	rows   func(T) [][2]string
	files  map[string]fileField[T]
}

func (r *singletonRecord[T]) show(ctx context.Context, w io.Writer) error {
	if err := r.editor.Load(ctx); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, row := range r.rows(r.editor.Value()) {
		fmt.Fprintf(tw, "  %s\t%s\n", row[0], row[1])
	}
	return tw.Flush()
}

func (r *singletonRecord[T]) set(ctx context.Context, fields map[string]string) error {
	plain, files, err := splitFiles(fields, r.files)
	if err != nil {
		return err
	}
	if err := r.editor.Load(ctx); err != nil {
		return err
	}

	r.editor.StartEdit()
	var applyErr error
	r.editor.UpdateDraft(func(draft *T) { applyErr = applyFields(draft, plain) })
	if applyErr != nil {
		r.editor.CancelEdit()
		return applyErr
	}
	for _, f := range files {
		if err := r.editor.Attach(f.kind, f.Attachment); err != nil {
			r.editor.CancelEdit()
			return err
		}
	}
	return r.editor.Save(ctx)
}

func (c *cli) records() map[string]record {
	opts := c.editorOptions()
	return map[string]record{
		"about": &singletonRecord[domain.About]{
			editor: editor.NewAbout(c.api, opts),
			rows: func(a domain.About) [][2]string {
				return [][2]string{
					{"Overview", truncate(a.Overview, 70)},
					{"Profile image", c.link(a.ProfileImage)},
				}
			},
			files: map[string]fileField[domain.About]{
				"profile_image": {editor.ImageFile, "profile image", editor.SetProfileImage},
			},
		},
		"contact": &singletonRecord[domain.Contact]{
			editor: editor.NewContact(c.api, opts),
			rows: func(ct domain.Contact) [][2]string {
				return [][2]string{
					{"Email", ct.Email},
					{"Phone", ct.Phone},
					{"LinkedIn", ct.LinkedIn},
					{"GitHub", ct.Github},
					{"Location", ct.Location},
					{"CV", c.link(ct.CVURL)},
				}
			},
			files: map[string]fileField[domain.Contact]{
				"cv_url": {editor.AnyFile, "CV", editor.SetCVURL},
			},
		},
	}
}

// link resolves a stored upload path against the API base URL.
func (c *cli) link(ref string) string {
	if ref == "" {
		return ""
	}
	return c.api.ResolveURL(ref)
}
