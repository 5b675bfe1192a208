package editor_test

import (
	"context"
	"io"
	"time"

	"go-portfolio/internal/domain"

	"github.com/stretchr/testify/mock"
)

const (
	timeout = time.Second
	tick    = 5 * time.Millisecond
)

type MockWriter[T any] struct {
	mock.Mock
}

func (m *MockWriter[T]) Create(ctx context.Context, payload *T) (*T, error) {
	args := m.Called(ctx, *payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockWriter[T]) Update(ctx context.Context, id int64, payload *T) (*T, error) {
	args := m.Called(ctx, id, *payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockWriter[T]) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	_, _ = io.ReadAll(r)
	args := m.Called(ctx, filename)
	return args.String(0), args.Error(1)
}

type MockSingletonStore[T any] struct {
	mock.Mock
}

func (m *MockSingletonStore[T]) Get(ctx context.Context) (*T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockSingletonStore[T]) Save(ctx context.Context, payload *T) (*T, error) {
	args := m.Called(ctx, *payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

type MockExperienceReader struct {
	mock.Mock
}

func (m *MockExperienceReader) Get(ctx context.Context, id int64) (*domain.WorkExperience, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkExperience), args.Error(1)
}

type MockSkillClient struct {
	mock.Mock
}

func (m *MockSkillClient) Add(ctx context.Context, experienceID int64, skill *domain.ExperienceSkill) (*domain.ExperienceSkill, error) {
	args := m.Called(ctx, experienceID, *skill)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExperienceSkill), args.Error(1)
}

func (m *MockSkillClient) Update(ctx context.Context, id int64, skill *domain.ExperienceSkill) (*domain.ExperienceSkill, error) {
	args := m.Called(ctx, id, *skill)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExperienceSkill), args.Error(1)
}

func (m *MockSkillClient) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// alerts records Notifier messages.
type alerts struct {
	messages []string
}

func (a *alerts) Alert(message string) { a.messages = append(a.messages, message) }

// lister serves a fixed list and counts calls.
type lister[T any] struct {
	items []T
	err   error
	calls int
}

func (l *lister[T]) List(ctx context.Context) ([]T, error) {
	l.calls++
	if l.err != nil {
		return nil, l.err
	}
	return append([]T(nil), l.items...), nil
}
