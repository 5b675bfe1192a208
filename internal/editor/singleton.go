package editor

import (
	"context"
	"sync"
)

// SingletonStore reads and upserts a one-record resource.
type SingletonStore[T any] interface {
	Get(ctx context.Context) (*T, error)
	Save(ctx context.Context, payload *T) (*T, error)
}

// Singleton is the view-model of the About and Contact blocks.
type Singleton[T any] struct {
	noun  string
	store SingletonStore[T]
	opts  Options

	mu      sync.Mutex
	value   T
	editing bool
	draft   T
	files   []Attachment[T]
	busy    bool
}

func NewSingleton[T any](noun string, store SingletonStore[T], opts Options) *Singleton[T] {
	return &Singleton[T]{noun: noun, store: store, opts: opts.withDefaults()}
}

// Load keeps the previous value when the request fails.
func (s *Singleton[T]) Load(ctx context.Context) error {
	v, err := s.store.Get(ctx)
	if err != nil {
		s.opts.Logger.Warn("failed to load "+s.noun, "error", err)
		return err
	}
	s.mu.Lock()
	s.value = *v
	s.mu.Unlock()
	return nil
}

func (s *Singleton[T]) Value() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

func (s *Singleton[T]) StartEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = true
	s.draft = s.value
	s.files = nil
}

func (s *Singleton[T]) Editing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editing
}

func (s *Singleton[T]) Draft() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *Singleton[T]) UpdateDraft(fn func(draft *T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.draft)
}

func (s *Singleton[T]) Attach(kind FileKind, a Attachment[T]) error {
	if err := CheckFile(kind, a.Data); err != nil {
		s.opts.Notifier.Alert(err.Error())
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = append(s.files, a)
	return nil
}

// Save uploads pending attachments, upserts the draft and reloads.
func (s *Singleton[T]) Save(ctx context.Context) error {
	s.mu.Lock()
	if !s.editing {
		s.mu.Unlock()
		return ErrNotEditing
	}
	if s.busy {
		s.mu.Unlock()
		return ErrBusy
	}
	s.busy = true
	draft, files := s.draft, s.files
	s.mu.Unlock()
	defer s.idle()

	return s.save(ctx, draft, files)
}

// UploadAndSave uploads one file onto the current value and saves it
// straight away, without entering edit mode.
func (s *Singleton[T]) UploadAndSave(ctx context.Context, kind FileKind, a Attachment[T]) error {
	if err := CheckFile(kind, a.Data); err != nil {
		s.opts.Notifier.Alert(err.Error())
		return err
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return ErrBusy
	}
	s.busy = true
	value := s.value
	s.mu.Unlock()
	defer s.idle()

	if _, err := uploadAll(ctx, s.opts, &value, []Attachment[T]{a}); err != nil {
		return err
	}
	if _, err := s.store.Save(ctx, &value); err != nil {
		s.fail(err)
		return err
	}
	_ = s.Load(ctx)
	return nil
}

func (s *Singleton[T]) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = false
	var zero T
	s.draft = zero
	s.files = nil
}

func (s *Singleton[T]) save(ctx context.Context, draft T, files []Attachment[T]) error {
	remaining, err := uploadAll(ctx, s.opts, &draft, files)
	if err != nil {
		s.mu.Lock()
		s.draft, s.files = draft, remaining
		s.mu.Unlock()
		return err
	}

	if _, err := s.store.Save(ctx, &draft); err != nil {
		s.mu.Lock()
		s.draft, s.files = draft, nil
		s.mu.Unlock()
		s.fail(err)
		return err
	}

	s.mu.Lock()
	s.editing = false
	var zero T
	s.draft = zero
	s.files = nil
	s.mu.Unlock()

	_ = s.Load(ctx)
	return nil
}

func (s *Singleton[T]) fail(err error) {
	s.opts.Logger.Warn("failed to save "+s.noun, "error", err)
	s.opts.Notifier.Alert("Failed to save " + s.noun)
}

func (s *Singleton[T]) idle() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}
