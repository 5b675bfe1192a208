package usecase_test

import (
	"context"
	"io"

	"go-portfolio/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockContentRepo is a ContentRepository for any entity type.
type MockContentRepo[T any] struct {
	mock.Mock
}

func (m *MockContentRepo[T]) List(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockContentRepo[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockContentRepo[T]) Create(ctx context.Context, item *T) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockContentRepo[T]) Update(ctx context.Context, item *T) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockContentRepo[T]) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockKPIRepo struct {
	MockContentRepo[domain.KPI]
}

func (m *MockKPIRepo) ListByVisibility(ctx context.Context, visibility string) ([]domain.KPI, error) {
	args := m.Called(ctx, visibility)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.KPI), args.Error(1)
}

type MockExperienceRepo struct {
	MockContentRepo[domain.WorkExperience]
}

func (m *MockExperienceRepo) GetDetail(ctx context.Context, id int64) (*domain.WorkExperience, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkExperience), args.Error(1)
}

type MockExperienceSkillRepo struct {
	mock.Mock
}

func (m *MockExperienceSkillRepo) ListByExperience(ctx context.Context, experienceID int64) ([]domain.ExperienceSkill, error) {
	args := m.Called(ctx, experienceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExperienceSkill), args.Error(1)
}

func (m *MockExperienceSkillRepo) GetByID(ctx context.Context, id int64) (*domain.ExperienceSkill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExperienceSkill), args.Error(1)
}

func (m *MockExperienceSkillRepo) Create(ctx context.Context, skill *domain.ExperienceSkill) error {
	return m.Called(ctx, skill).Error(0)
}

func (m *MockExperienceSkillRepo) Update(ctx context.Context, skill *domain.ExperienceSkill) error {
	return m.Called(ctx, skill).Error(0)
}

func (m *MockExperienceSkillRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockSingletonRepo[T any] struct {
	mock.Mock
}

func (m *MockSingletonRepo[T]) Get(ctx context.Context) (*T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockSingletonRepo[T]) Upsert(ctx context.Context, item *T) error {
	return m.Called(ctx, item).Error(0)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Save(ctx context.Context, name string, contentType string, body io.Reader, size int64) (string, error) {
	data, _ := io.ReadAll(body)
	args := m.Called(ctx, name, contentType, data, size)
	return args.String(0), args.Error(1)
}
