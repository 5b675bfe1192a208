package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go-portfolio/internal/domain"
	"go-portfolio/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repo-%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func TestSkillRepository_CRUD(t *testing.T) {
	repo := NewSkillRepository(setupTestDB(t))
	ctx := context.Background()

	skill := &domain.Skill{Name: "Go", Order: 2}
	require.NoError(t, repo.Create(ctx, skill))
	require.NotZero(t, skill.ID)
	assert.False(t, skill.CreatedAt.IsZero())

	require.NoError(t, repo.Create(ctx, &domain.Skill{Name: "SQL", Order: 1}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "SQL", list[0].Name)
	assert.Equal(t, "Go", list[1].Name)

	skill.Category = "Backend"
	skill.Order = 0
	require.NoError(t, repo.Update(ctx, skill))

	got, err := repo.GetByID(ctx, skill.ID)
	require.NoError(t, err)
	assert.Equal(t, "Backend", got.Category)
	assert.Equal(t, 0, got.Order)

	require.NoError(t, repo.Delete(ctx, skill.ID))
	_, err = repo.GetByID(ctx, skill.ID)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
	assert.Equal(t, "Skill not found", appErr.Message)
}

func TestContentRepository_UpdateMissing(t *testing.T) {
	repo := NewProjectRepository(setupTestDB(t))

	err := repo.Update(context.Background(), &domain.Project{ID: 99, Name: "x", Description: "y"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(context.Background(), 99), domain.ErrNotFound)
}

func TestContentRepository_ListEmpty(t *testing.T) {
	list, err := NewServiceRepository(setupTestDB(t)).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestCertificationRepository_Dates(t *testing.T) {
	repo := NewCertificationRepository(setupTestDB(t))
	ctx := context.Background()

	cert := &domain.Certification{Name: "CKA", IssuedDate: domain.NewDate(2023, 6, 15)}
	require.NoError(t, repo.Create(ctx, cert))
	require.NoError(t, repo.Create(ctx, &domain.Certification{Name: "No date"}))

	got, err := repo.GetByID(ctx, cert.ID)
	require.NoError(t, err)
	assert.Equal(t, "2023-06-15", got.IssuedDate.String())

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[1].IssuedDate.IsZero())
}

func TestExperienceRepository_DetailAndCascade(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	exps := NewExperienceRepository(db)
	skills := NewExperienceSkillRepository(db)

	exp := &domain.WorkExperience{Company: "Acme", Role: "Engineer", StartDate: domain.NewDate(2020, 1, 1)}
	require.NoError(t, exps.Create(ctx, exp))

	require.NoError(t, skills.Create(ctx, &domain.ExperienceSkill{ExperienceID: exp.ID, SkillName: "B", Explanation: "b", Order: 2}))
	a := &domain.ExperienceSkill{ExperienceID: exp.ID, SkillName: "A", Explanation: "a", Order: 1}
	require.NoError(t, skills.Create(ctx, a))

	detail, err := exps.GetDetail(ctx, exp.ID)
	require.NoError(t, err)
	require.Len(t, detail.SkillsAcquired, 2)
	assert.Equal(t, "A", detail.SkillsAcquired[0].SkillName)

	list, err := exps.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].SkillsAcquired)

	a.ExperienceID = exp.ID + 50
	a.Explanation = "changed"
	require.NoError(t, skills.Update(ctx, a))
	assert.Equal(t, exp.ID, a.ExperienceID)

	err = skills.Create(ctx, &domain.ExperienceSkill{ExperienceID: exp.ID + 100, SkillName: "X", Explanation: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, exps.Delete(ctx, exp.ID))
	left, err := skills.ListByExperience(ctx, exp.ID)
	require.NoError(t, err)
	assert.Empty(t, left)

	_, err = exps.GetDetail(ctx, exp.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestKPIRepository_ListByVisibility(t *testing.T) {
	repo := NewKPIRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.KPI{Title: "Ship", Description: "d", Status: domain.KPIStatusPlanned, Visibility: domain.KPIVisibilityPublic}))
	require.NoError(t, repo.Create(ctx, &domain.KPI{Title: "Secret", Description: "d", Status: domain.KPIStatusCompleted, Visibility: domain.KPIVisibilityComingSoon}))

	public, err := repo.ListByVisibility(ctx, domain.KPIVisibilityPublic)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Ship", public[0].Title)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSingletonRepository_Upsert(t *testing.T) {
	repo := NewAboutRepository(setupTestDB(t))
	ctx := context.Background()

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	first := &domain.About{Overview: "hello"}
	require.NoError(t, repo.Upsert(ctx, first))
	created := first.CreatedAt

	require.NoError(t, repo.Upsert(ctx, &domain.About{Overview: "updated", ProfileImage: "/uploads/me.png"}))

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "updated", got.Overview)
	assert.Equal(t, "/uploads/me.png", got.ProfileImage)
	assert.True(t, got.CreatedAt.Equal(created))
}
