package editor_test

import (
	"bytes"
	"errors"
	"testing"

	"go-portfolio/internal/domain"
	"go-portfolio/internal/editor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExperienceDetail(t *testing.T) {
	reader := new(MockExperienceReader)
	skills := new(MockSkillClient)
	detail := editor.NewExperienceDetail(5, reader, skills, editor.Options{
		Confirmer: editor.ConfirmerFunc(func(string) bool { return true }),
	})
	assert.Nil(t, detail.Experience())

	goSkill := domain.ExperienceSkill{ID: 11, ExperienceID: 5, SkillName: "Go", Explanation: "Services"}
	reader.On("Get", mock.Anything, int64(5)).Return(&domain.WorkExperience{ID: 5, Company: "Acme"}, nil).Once()
	require.NoError(t, detail.Load(ctx))
	assert.Equal(t, "Acme", detail.Experience().Company)
	assert.Empty(t, detail.Skills.Items())

	detail.Skills.StartAdd()
	detail.Skills.UpdateNewDraft(func(s *domain.ExperienceSkill) {
		s.SkillName = "Go"
		s.Explanation = "Services"
	})
	skills.On("Add", mock.Anything, int64(5), domain.ExperienceSkill{SkillName: "Go", Explanation: "Services"}).
		Return(&goSkill, nil).Once()
	reader.On("Get", mock.Anything, int64(5)).
		Return(&domain.WorkExperience{ID: 5, Company: "Acme", SkillsAcquired: []domain.ExperienceSkill{goSkill}}, nil).Once()

	require.NoError(t, detail.Skills.Add(ctx))
	require.Len(t, detail.Skills.Items(), 1)
	assert.Len(t, detail.Experience().SkillsAcquired, 1)

	_, ok := detail.SelectedSkill()
	assert.False(t, ok)
	detail.SelectSkill(11)
	selected, ok := detail.SelectedSkill()
	require.True(t, ok)
	assert.Equal(t, "Services", selected.Explanation)

	skills.On("Delete", mock.Anything, int64(11)).Return(nil).Once()
	reader.On("Get", mock.Anything, int64(5)).Return(&domain.WorkExperience{ID: 5, Company: "Acme"}, nil).Once()
	require.NoError(t, detail.Skills.Delete(ctx, 11))
	_, ok = detail.SelectedSkill()
	assert.False(t, ok)

	detail.SelectSkill(11)
	detail.ClearSelection()
	_, ok = detail.SelectedSkill()
	assert.False(t, ok)

	reader.AssertExpectations(t)
	skills.AssertExpectations(t)
}

func TestCertificationUploadsInOrder(t *testing.T) {
	writer := new(MockWriter[domain.Certification])
	uploader := new(MockUploader)
	notes := &alerts{}
	certs := editor.NewSection(editor.Definition[domain.Certification]{
		Noun:   "certification",
		ID:     func(c domain.Certification) int64 { return c.ID },
		Labels: func(c domain.Certification) []string { return []string{c.Name} },
		List:   (&lister[domain.Certification]{}).List,
		Writer: writer,
	}, editor.Options{Notifier: notes, Uploader: uploader})

	certs.StartAdd()
	certs.UpdateNewDraft(func(c *domain.Certification) { c.Name = "AWS SAA" })
	img := pngBytes(t)
	require.NoError(t, certs.AttachNew(editor.ImageFile, editor.Attachment[domain.Certification]{
		What: "badge image", Filename: "badge.png", Data: img, Apply: editor.SetBadgeImage,
	}))
	require.NoError(t, certs.AttachNew(editor.ImageFile, editor.Attachment[domain.Certification]{
		What: "certificate image", Filename: "cert.png", Data: bytes.Clone(img), Apply: editor.SetCertImage,
	}))

	var order []string
	record := func(args mock.Arguments) { order = append(order, args.String(1)) }
	uploader.On("Upload", mock.Anything, "badge.png").Run(record).Return("/u/badge.png", nil).Once()
	uploader.On("Upload", mock.Anything, "cert.png").Run(record).Return("", errors.New("boom")).Once()

	assert.Error(t, certs.Add(ctx))
	assert.Equal(t, []string{"Failed to upload certificate image"}, notes.messages)
	assert.Equal(t, "/u/badge.png", certs.NewDraft().BadgeImage)
	writer.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	uploader.On("Upload", mock.Anything, "cert.png").Run(record).Return("/u/cert.png", nil).Once()
	writer.On("Create", mock.Anything, domain.Certification{Name: "AWS SAA", BadgeImage: "/u/badge.png", CertImage: "/u/cert.png"}).
		Return(&domain.Certification{ID: 1}, nil).Once()

	require.NoError(t, certs.Add(ctx))
	assert.Equal(t, []string{"badge.png", "cert.png", "cert.png"}, order)
	writer.AssertExpectations(t)
}

func TestEmptyKPIDefaults(t *testing.T) {
	kpi := editor.EmptyKPI()
	assert.Equal(t, domain.KPIStatusPlanned, kpi.Status)
	assert.Equal(t, domain.KPIVisibilityPublic, kpi.Visibility)
}
