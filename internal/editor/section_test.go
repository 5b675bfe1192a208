package editor_test

import (
	"context"
	"errors"
	"testing"

	"go-portfolio/internal/domain"
	"go-portfolio/internal/editor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

var svgIcon = []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 1 1"></svg>`)

type skillFixture struct {
	section  *editor.Section[domain.Skill]
	writer   *MockWriter[domain.Skill]
	list     *lister[domain.Skill]
	alerts   *alerts
	uploader *MockUploader
	confirm  bool
	prompts  []string
}

func newSkillFixture(items ...domain.Skill) *skillFixture {
	f := &skillFixture{
		writer:   new(MockWriter[domain.Skill]),
		list:     &lister[domain.Skill]{items: items},
		alerts:   &alerts{},
		uploader: new(MockUploader),
	}
	f.section = editor.NewSection(editor.Definition[domain.Skill]{
		Noun:   "skill",
		ID:     func(s domain.Skill) int64 { return s.ID },
		Labels: func(s domain.Skill) []string { return []string{s.Name} },
		Empty:  func() domain.Skill { return domain.Skill{} },
		List:   f.list.List,
		Writer: f.writer,
	}, editor.Options{
		Notifier: f.alerts,
		Uploader: f.uploader,
		Confirmer: editor.ConfirmerFunc(func(p string) bool {
			f.prompts = append(f.prompts, p)
			return f.confirm
		}),
	})
	return f
}

func TestSection_LoadKeepsServerOrder(t *testing.T) {
	f := newSkillFixture(domain.Skill{ID: 3, Name: "C", Order: 5}, domain.Skill{ID: 1, Name: "A", Order: 1})

	require.NoError(t, f.section.Load(ctx))
	items := f.section.Items()
	require.Len(t, items, 2)
	assert.Equal(t, int64(3), items[0].ID)
	assert.Equal(t, int64(1), items[1].ID)

	t.Run("failure keeps previous list", func(t *testing.T) {
		f.list.err = errors.New("offline")
		assert.Error(t, f.section.Load(ctx))
		assert.Len(t, f.section.Items(), 2)
		assert.Empty(t, f.alerts.messages)
	})
}

func TestSection_Add(t *testing.T) {
	t.Run("creates then reloads", func(t *testing.T) {
		f := newSkillFixture()
		f.section.StartAdd()
		f.section.UpdateNewDraft(func(d *domain.Skill) { d.Name = "Go" })

		f.writer.On("Create", mock.Anything, domain.Skill{Name: "Go"}).Return(&domain.Skill{ID: 1, Name: "Go"}, nil).Once()
		f.list.items = []domain.Skill{{ID: 1, Name: "Go"}}

		require.NoError(t, f.section.Add(ctx))
		assert.False(t, f.section.Adding())
		assert.Equal(t, domain.Skill{}, f.section.NewDraft())
		assert.Equal(t, 1, f.list.calls)
		assert.Len(t, f.section.Items(), 1)
		f.writer.AssertExpectations(t)
	})

	t.Run("blank label makes no request", func(t *testing.T) {
		f := newSkillFixture()
		f.section.StartAdd()
		f.section.UpdateNewDraft(func(d *domain.Skill) { d.Name = "   " })

		assert.ErrorIs(t, f.section.Add(ctx), editor.ErrLabelRequired)
		assert.True(t, f.section.Adding())
		f.writer.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		assert.Empty(t, f.alerts.messages)
	})

	t.Run("failure keeps draft and alerts", func(t *testing.T) {
		f := newSkillFixture()
		f.section.StartAdd()
		f.section.UpdateNewDraft(func(d *domain.Skill) {
			d.Name = "Go"
			d.Order = 4
		})
		f.writer.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("401"))

		assert.Error(t, f.section.Add(ctx))
		assert.True(t, f.section.Adding())
		assert.Equal(t, domain.Skill{Name: "Go", Order: 4}, f.section.NewDraft())
		assert.Equal(t, []string{"Failed to add skill"}, f.alerts.messages)
		assert.Zero(t, f.list.calls)
	})

	t.Run("uploads icon before create", func(t *testing.T) {
		f := newSkillFixture()
		f.section.StartAdd()
		f.section.UpdateNewDraft(func(d *domain.Skill) { d.Name = "Go" })
		require.NoError(t, f.section.AttachNew(editor.SVGFile, editor.Attachment[domain.Skill]{
			What: "icon", Filename: "go.svg", Data: svgIcon, Apply: editor.SetSkillIcon,
		}))

		f.uploader.On("Upload", mock.Anything, "go.svg").Return("http://api/uploads/go.svg", nil).Once()
		f.writer.On("Create", mock.Anything, domain.Skill{Name: "Go", Icon: "http://api/uploads/go.svg"}).
			Return(&domain.Skill{ID: 1}, nil).Once()

		require.NoError(t, f.section.Add(ctx))
		f.uploader.AssertExpectations(t)
		f.writer.AssertExpectations(t)
	})

	t.Run("upload failure aborts create", func(t *testing.T) {
		f := newSkillFixture()
		f.section.StartAdd()
		f.section.UpdateNewDraft(func(d *domain.Skill) { d.Name = "Go" })
		require.NoError(t, f.section.AttachNew(editor.SVGFile, editor.Attachment[domain.Skill]{
			What: "icon", Filename: "go.svg", Data: svgIcon, Apply: editor.SetSkillIcon,
		}))
		f.uploader.On("Upload", mock.Anything, "go.svg").Return("", errors.New("413"))

		assert.Error(t, f.section.Add(ctx))
		assert.Equal(t, []string{"Failed to upload icon"}, f.alerts.messages)
		assert.Equal(t, domain.Skill{Name: "Go"}, f.section.NewDraft())
		f.writer.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("wrong file kind is rejected on attach", func(t *testing.T) {
		f := newSkillFixture()
		err := f.section.AttachNew(editor.SVGFile, editor.Attachment[domain.Skill]{
			What: "icon", Filename: "go.txt", Data: []byte("plain text"), Apply: editor.SetSkillIcon,
		})
		assert.ErrorIs(t, err, editor.ErrNotSVG)
		assert.Equal(t, []string{"Please select an SVG file"}, f.alerts.messages)
	})
}

func TestSection_Edit(t *testing.T) {
	original := domain.Skill{ID: 7, Name: "Go", Order: 1}

	t.Run("save updates and returns to viewing", func(t *testing.T) {
		f := newSkillFixture(original)
		f.section.StartEdit(original)
		assert.True(t, f.section.IsEditing(7))
		f.section.UpdateEditDraft(func(d *domain.Skill) { d.Name = "Golang" })

		f.writer.On("Update", mock.Anything, int64(7), domain.Skill{ID: 7, Name: "Golang", Order: 1}).
			Return(&domain.Skill{ID: 7, Name: "Golang"}, nil).Once()

		require.NoError(t, f.section.SaveEdit(ctx))
		assert.Zero(t, f.section.EditingID())
		assert.Equal(t, 1, f.list.calls)
		f.writer.AssertExpectations(t)
	})

	t.Run("blank label stays editing without a request", func(t *testing.T) {
		f := newSkillFixture(original)
		f.section.StartEdit(original)
		f.section.UpdateEditDraft(func(d *domain.Skill) { d.Name = "\t " })

		assert.ErrorIs(t, f.section.SaveEdit(ctx), editor.ErrLabelRequired)
		assert.True(t, f.section.IsEditing(7))
		f.writer.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
		assert.Zero(t, f.list.calls)
	})

	t.Run("failure keeps draft", func(t *testing.T) {
		f := newSkillFixture(original)
		f.section.StartEdit(original)
		f.section.UpdateEditDraft(func(d *domain.Skill) { d.Category = "Backend" })
		f.writer.On("Update", mock.Anything, int64(7), mock.Anything).Return(nil, errors.New("500"))

		assert.Error(t, f.section.SaveEdit(ctx))
		assert.True(t, f.section.IsEditing(7))
		assert.Equal(t, "Backend", f.section.EditDraft().Category)
		assert.Equal(t, []string{"Failed to save skill"}, f.alerts.messages)
	})

	t.Run("second edit replaces the first", func(t *testing.T) {
		f := newSkillFixture()
		f.section.StartEdit(original)
		f.section.StartEdit(domain.Skill{ID: 8, Name: "SQL"})
		assert.Equal(t, int64(8), f.section.EditingID())
		assert.Equal(t, "SQL", f.section.EditDraft().Name)
	})

	t.Run("save without edit", func(t *testing.T) {
		f := newSkillFixture()
		assert.ErrorIs(t, f.section.SaveEdit(ctx), editor.ErrNotEditing)
	})
}

func TestSection_CancelIsIdempotent(t *testing.T) {
	f := newSkillFixture()

	f.section.StartEdit(domain.Skill{ID: 1, Name: "Go"})
	f.section.CancelEdit()
	f.section.CancelEdit()
	assert.Zero(t, f.section.EditingID())
	assert.Equal(t, domain.Skill{}, f.section.EditDraft())

	f.section.StartAdd()
	f.section.UpdateNewDraft(func(d *domain.Skill) { d.Name = "x" })
	f.section.CancelAdd()
	f.section.CancelAdd()
	assert.False(t, f.section.Adding())
	assert.Equal(t, domain.Skill{}, f.section.NewDraft())

	f.writer.AssertExpectations(t)
	assert.Zero(t, f.list.calls)
}

func TestSection_Delete(t *testing.T) {
	t.Run("declined does nothing", func(t *testing.T) {
		f := newSkillFixture()
		require.NoError(t, f.section.Delete(ctx, 3))
		assert.Equal(t, []string{"Delete this skill?"}, f.prompts)
		f.writer.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("confirmed deletes and reloads", func(t *testing.T) {
		f := newSkillFixture()
		f.confirm = true
		f.writer.On("Delete", mock.Anything, int64(3)).Return(nil).Once()

		require.NoError(t, f.section.Delete(ctx, 3))
		assert.Equal(t, 1, f.list.calls)
		f.writer.AssertExpectations(t)
	})

	t.Run("failure leaves item", func(t *testing.T) {
		f := newSkillFixture(domain.Skill{ID: 3, Name: "Go"})
		require.NoError(t, f.section.Load(ctx))
		f.confirm = true
		f.writer.On("Delete", mock.Anything, int64(3)).Return(errors.New("403"))

		assert.Error(t, f.section.Delete(ctx, 3))
		assert.Len(t, f.section.Items(), 1)
		assert.Equal(t, []string{"Failed to delete skill"}, f.alerts.messages)
	})
}

func TestSection_BusyGuard(t *testing.T) {
	f := newSkillFixture()
	f.section.StartAdd()
	f.section.UpdateNewDraft(func(d *domain.Skill) { d.Name = "Go" })

	release := make(chan struct{})
	f.writer.On("Create", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return(&domain.Skill{ID: 1}, nil).Once()

	done := make(chan error)
	go func() { done <- f.section.Add(ctx) }()

	assert.Eventually(t, f.section.Busy, timeout, tick)
	assert.ErrorIs(t, f.section.Add(ctx), editor.ErrBusy)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, f.section.Busy())
	f.writer.AssertNumberOfCalls(t, "Create", 1)
}

type fakeAdmin struct {
	subs  []func(bool)
	admin bool
}

func (f *fakeAdmin) IsAdmin() bool { return f.admin }

func (f *fakeAdmin) Subscribe(fn func(bool)) func() {
	f.subs = append(f.subs, fn)
	fn(f.admin)
	return func() {}
}

func (f *fakeAdmin) set(v bool) {
	f.admin = v
	for _, fn := range f.subs {
		fn(v)
	}
}

func TestSection_ReloadOnAdminChange(t *testing.T) {
	f := newSkillFixture()
	admin := &fakeAdmin{}

	f.section.ReloadOnAdminChange(ctx, admin)
	assert.Zero(t, f.list.calls)

	admin.set(true)
	admin.set(false)
	assert.Equal(t, 2, f.list.calls)
}
