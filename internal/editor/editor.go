// Package editor holds the admin editing state for each section of the
// portfolio page: the loaded list, the new-item draft and the single
// item being edited.
package editor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
)

var (
	// ErrLabelRequired is returned, without any request or alert, when a
	// draft's label fields are blank.
	ErrLabelRequired = errors.New("label is required")
	// ErrBusy is returned when a save or delete is already in flight for
	// the section.
	ErrBusy = errors.New("another change is in progress")
	// ErrNotEditing is returned by SaveEdit when no item is being edited.
	ErrNotEditing = errors.New("nothing is being edited")
)

// Notifier shows a blocking message to the admin.
type Notifier interface {
	Alert(message string)
}

// Confirmer asks the admin a yes/no question and blocks for the answer.
type Confirmer interface {
	Confirm(prompt string) bool
}

type NotifierFunc func(message string)

func (f NotifierFunc) Alert(message string) { f(message) }

type ConfirmerFunc func(prompt string) bool

func (f ConfirmerFunc) Confirm(prompt string) bool { return f(prompt) }

// Uploader stores a file and returns its URL.
type Uploader interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}

// Writer is the mutating half of a resource client.
type Writer[T any] interface {
	Create(ctx context.Context, payload *T) (*T, error)
	Update(ctx context.Context, id int64, payload *T) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// Options are shared by every view-model on a page.
type Options struct {
	Notifier  Notifier
	Confirmer Confirmer
	Uploader  Uploader
	Logger    *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Notifier == nil {
		o.Notifier = NotifierFunc(func(string) {})
	}
	if o.Confirmer == nil {
		// Nothing is deleted without an explicit yes.
		o.Confirmer = ConfirmerFunc(func(string) bool { return false })
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

func blank(labels []string) bool {
	for _, l := range labels {
		if isBlank(l) {
			return true
		}
	}
	return false
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }
