package editor

import (
	"context"
	"sync"
)

// Definition describes one editable resource.
type Definition[T any] struct {
	// Noun names one item in prompts and alerts, e.g. "social link".
	Noun string
	ID   func(item T) int64
	// Labels returns the fields that must not be blank to save.
	Labels func(item T) []string
	// Empty returns a fresh draft.
	Empty  func() T
	List   func(ctx context.Context) ([]T, error)
	Writer Writer[T]
}

// Section is the view-model of one list on the page. It re-fetches the
// whole list after every successful change instead of patching it.
type Section[T any] struct {
	def  Definition[T]
	opts Options

	mu        sync.Mutex
	items     []T
	adding    bool
	newDraft  T
	newFiles  []Attachment[T]
	editingID int64
	editDraft T
	editFiles []Attachment[T]
	busy      bool
}

func NewSection[T any](def Definition[T], opts Options) *Section[T] {
	if def.Empty == nil {
		def.Empty = func() T {
			var zero T
			return zero
		}
	}
	if def.Labels == nil {
		def.Labels = func(T) []string { return nil }
	}
	return &Section[T]{
		def:       def,
		opts:      opts.withDefaults(),
		newDraft:  def.Empty(),
		editDraft: def.Empty(),
	}
}

func (s *Section[T]) Noun() string { return s.def.Noun }

// Load replaces the list with the server's. On failure the previous
// list is kept and the error is only logged.
func (s *Section[T]) Load(ctx context.Context) error {
	items, err := s.def.List(ctx)
	if err != nil {
		s.opts.Logger.Warn("failed to load "+s.def.Noun+" list", "error", err)
		return err
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

func (s *Section[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]T(nil), s.items...)
}

func (s *Section[T]) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

func (s *Section[T]) StartAdd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adding = true
	s.newDraft = s.def.Empty()
	s.newFiles = nil
}

func (s *Section[T]) Adding() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.adding
}

func (s *Section[T]) NewDraft() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.newDraft
}

func (s *Section[T]) UpdateNewDraft(fn func(draft *T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.newDraft)
}

// AttachNew schedules a file for upload when the new item is added.
func (s *Section[T]) AttachNew(kind FileKind, a Attachment[T]) error {
	if err := s.checkFile(kind, a); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.newFiles = append(s.newFiles, a)
	return nil
}

// Add uploads pending attachments in order, then creates the item. The
// draft survives any failure.
func (s *Section[T]) Add(ctx context.Context) error {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return ErrBusy
	}
	draft := s.newDraft
	if blank(s.def.Labels(draft)) {
		s.mu.Unlock()
		return ErrLabelRequired
	}
	files := s.newFiles
	s.busy = true
	s.mu.Unlock()
	defer s.idle()

	remaining, err := uploadAll(ctx, s.opts, &draft, files)
	if err != nil {
		s.mu.Lock()
		s.newDraft, s.newFiles = draft, remaining
		s.mu.Unlock()
		return err
	}

	if _, err := s.def.Writer.Create(ctx, &draft); err != nil {
		s.mu.Lock()
		s.newDraft, s.newFiles = draft, nil
		s.mu.Unlock()
		s.fail("add", err)
		return err
	}

	s.mu.Lock()
	s.adding = false
	s.newDraft = s.def.Empty()
	s.newFiles = nil
	s.mu.Unlock()

	_ = s.Load(ctx)
	return nil
}

func (s *Section[T]) CancelAdd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adding = false
	s.newDraft = s.def.Empty()
	s.newFiles = nil
}

// StartEdit copies item into the edit draft. Starting another edit
// replaces the current one.
func (s *Section[T]) StartEdit(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingID = s.def.ID(item)
	s.editDraft = item
	s.editFiles = nil
}

// EditingID is 0 when nothing is being edited.
func (s *Section[T]) EditingID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editingID
}

func (s *Section[T]) IsEditing(id int64) bool {
	return id != 0 && s.EditingID() == id
}

func (s *Section[T]) EditDraft() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editDraft
}

func (s *Section[T]) UpdateEditDraft(fn func(draft *T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.editDraft)
}

// AttachEdit schedules a file for upload when the edit is saved.
func (s *Section[T]) AttachEdit(kind FileKind, a Attachment[T]) error {
	if err := s.checkFile(kind, a); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editFiles = append(s.editFiles, a)
	return nil
}

// SaveEdit sends the edit draft. A blank label returns ErrLabelRequired
// without contacting the server; a failed update keeps the item in
// Editing with its draft.
func (s *Section[T]) SaveEdit(ctx context.Context) error {
	s.mu.Lock()
	if s.editingID == 0 {
		s.mu.Unlock()
		return ErrNotEditing
	}
	if s.busy {
		s.mu.Unlock()
		return ErrBusy
	}
	id, draft := s.editingID, s.editDraft
	if blank(s.def.Labels(draft)) {
		s.mu.Unlock()
		return ErrLabelRequired
	}
	files := s.editFiles
	s.busy = true
	s.mu.Unlock()
	defer s.idle()

	remaining, err := uploadAll(ctx, s.opts, &draft, files)
	if err != nil {
		s.keepEdit(id, draft, remaining)
		return err
	}

	if _, err := s.def.Writer.Update(ctx, id, &draft); err != nil {
		s.keepEdit(id, draft, nil)
		s.fail("save", err)
		return err
	}

	s.mu.Lock()
	if s.editingID == id {
		s.editingID = 0
		s.editDraft = s.def.Empty()
		s.editFiles = nil
	}
	s.mu.Unlock()

	_ = s.Load(ctx)
	return nil
}

func (s *Section[T]) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingID = 0
	s.editDraft = s.def.Empty()
	s.editFiles = nil
}

// Delete asks for confirmation first; declining is not an error.
func (s *Section[T]) Delete(ctx context.Context, id int64) error {
	if s.Busy() {
		return ErrBusy
	}
	if !s.opts.Confirmer.Confirm("Delete this " + s.def.Noun + "?") {
		return nil
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return ErrBusy
	}
	s.busy = true
	s.mu.Unlock()
	defer s.idle()

	if err := s.def.Writer.Delete(ctx, id); err != nil {
		s.fail("delete", err)
		return err
	}

	s.mu.Lock()
	if s.editingID == id {
		s.editingID = 0
		s.editDraft = s.def.Empty()
		s.editFiles = nil
	}
	s.mu.Unlock()

	_ = s.Load(ctx)
	return nil
}

// AdminSource publishes the admin state.
type AdminSource interface {
	Subscribe(fn func(isAdmin bool)) (cancel func())
}

// ReloadOnAdminChange reloads the list every time the admin state
// changes after the call.
func (s *Section[T]) ReloadOnAdminChange(ctx context.Context, src AdminSource) (cancel func()) {
	first := true
	return src.Subscribe(func(bool) {
		if first {
			first = false
			return
		}
		_ = s.Load(ctx)
	})
}

func (s *Section[T]) keepEdit(id int64, draft T, files []Attachment[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editingID == id {
		s.editDraft, s.editFiles = draft, files
	}
}

func (s *Section[T]) checkFile(kind FileKind, a Attachment[T]) error {
	if err := CheckFile(kind, a.Data); err != nil {
		s.opts.Notifier.Alert(err.Error())
		return err
	}
	return nil
}

func (s *Section[T]) fail(action string, err error) {
	s.opts.Logger.Warn("failed to "+action+" "+s.def.Noun, "error", err)
	s.opts.Notifier.Alert("Failed to " + action + " " + s.def.Noun)
}

func (s *Section[T]) idle() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}
