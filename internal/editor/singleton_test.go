package editor_test

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"go-portfolio/internal/domain"
	"go-portfolio/internal/editor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

func TestSingleton_EditAndSave(t *testing.T) {
	store := new(MockSingletonStore[domain.Contact])
	notes := &alerts{}
	contact := editor.NewSingleton[domain.Contact]("contact", store, editor.Options{Notifier: notes})

	store.On("Get", mock.Anything).Return(&domain.Contact{Email: "old@example.com"}, nil).Once()
	require.NoError(t, contact.Load(ctx))
	assert.Equal(t, "old@example.com", contact.Value().Email)

	assert.ErrorIs(t, contact.Save(ctx), editor.ErrNotEditing)

	contact.StartEdit()
	assert.Equal(t, "old@example.com", contact.Draft().Email)
	contact.UpdateDraft(func(c *domain.Contact) { c.Email = "new@example.com" })

	store.On("Save", mock.Anything, domain.Contact{Email: "new@example.com"}).Return(nil, errors.New("500")).Once()
	assert.Error(t, contact.Save(ctx))
	assert.True(t, contact.Editing())
	assert.Equal(t, "new@example.com", contact.Draft().Email)
	assert.Equal(t, []string{"Failed to save contact"}, notes.messages)

	store.On("Save", mock.Anything, domain.Contact{Email: "new@example.com"}).Return(&domain.Contact{ID: 1}, nil).Once()
	store.On("Get", mock.Anything).Return(&domain.Contact{ID: 1, Email: "new@example.com"}, nil).Once()
	require.NoError(t, contact.Save(ctx))
	assert.False(t, contact.Editing())
	assert.Equal(t, "new@example.com", contact.Value().Email)

	store.On("Get", mock.Anything).Return(nil, errors.New("offline")).Once()
	assert.Error(t, contact.Load(ctx))
	assert.Equal(t, "new@example.com", contact.Value().Email)

	store.AssertExpectations(t)
}

func TestSingleton_UploadAndSave(t *testing.T) {
	store := new(MockSingletonStore[domain.About])
	uploader := new(MockUploader)
	notes := &alerts{}
	about := editor.NewSingleton[domain.About]("about", store, editor.Options{Notifier: notes, Uploader: uploader})

	store.On("Get", mock.Anything).Return(&domain.About{Overview: "Hi"}, nil).Once()
	require.NoError(t, about.Load(ctx))

	err := about.UploadAndSave(ctx, editor.ImageFile, editor.Attachment[domain.About]{
		What: "image", Filename: "cv.pdf", Data: []byte("%PDF-1.4"), Apply: editor.SetProfileImage,
	})
	assert.ErrorIs(t, err, editor.ErrNotImage)
	assert.Equal(t, []string{"Please select an image file"}, notes.messages)

	uploader.On("Upload", mock.Anything, "me.png").Return("http://api/uploads/me.png", nil).Once()
	store.On("Save", mock.Anything, domain.About{Overview: "Hi", ProfileImage: "http://api/uploads/me.png"}).
		Return(&domain.About{ID: 1}, nil).Once()
	store.On("Get", mock.Anything).Return(&domain.About{Overview: "Hi", ProfileImage: "http://api/uploads/me.png"}, nil).Once()

	require.NoError(t, about.UploadAndSave(ctx, editor.ImageFile, editor.Attachment[domain.About]{
		What: "image", Filename: "me.png", Data: pngBytes(t), Apply: editor.SetProfileImage,
	}))
	assert.Equal(t, "http://api/uploads/me.png", about.Value().ProfileImage)
	assert.False(t, about.Editing())

	uploader.AssertExpectations(t)
	store.AssertExpectations(t)
}
