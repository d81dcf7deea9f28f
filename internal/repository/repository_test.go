package repository

import (
	"path/filepath"
	"skillsync_backend/internal/model"
	"skillsync_backend/pkg/database"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestProgressUpsert(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepository(db)

	now := time.Now()
	require.NoError(t, repo.Upsert(&model.LessonProgress{
		UserID: 1, LessonID: 10, Completed: true, CompletedAt: &now,
	}))
	require.NoError(t, repo.Upsert(&model.LessonProgress{
		UserID: 1, LessonID: 10, Completed: true, CompletedAt: &now,
	}))

	var count int64
	require.NoError(t, db.Model(&model.LessonProgress{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	completed, err := repo.CountCompleted(1, []uint{10, 11})
	require.NoError(t, err)
	assert.Equal(t, int64(1), completed)

	// The upsert also un-completes in place.
	require.NoError(t, repo.Upsert(&model.LessonProgress{
		UserID: 1, LessonID: 10, Completed: false,
	}))
	completed, err = repo.CountCompleted(1, []uint{10})
	require.NoError(t, err)
	assert.Zero(t, completed)

	var row model.LessonProgress
	require.NoError(t, db.Where("user_id = ? AND lesson_id = ?", 1, 10).First(&row).Error)
	assert.False(t, row.Completed)
	assert.Nil(t, row.CompletedAt)
}

func TestCompleteUserSkillTransitionsOnce(t *testing.T) {
	db := newTestDB(t)
	repo := NewEnrollmentRepository(db)

	require.NoError(t, repo.CreateUserSkill(&model.UserSkill{
		UserID: 1, SkillID: 5, Status: model.StatusInProgress, StartedAt: time.Now(),
	}))

	transitioned, err := repo.CompleteUserSkill(1, 5, time.Now())
	require.NoError(t, err)
	assert.True(t, transitioned)

	// Already completed: the guarded update matches no row.
	transitioned, err = repo.CompleteUserSkill(1, 5, time.Now())
	require.NoError(t, err)
	assert.False(t, transitioned)

	// No enrollment at all: same answer.
	transitioned, err = repo.CompleteUserSkill(2, 5, time.Now())
	require.NoError(t, err)
	assert.False(t, transitioned)

	count, err := repo.CountCompletedSkills(1, []uint{5, 6})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAwardOnce(t *testing.T) {
	db := newTestDB(t)
	repo := NewBadgeRepository(db)

	badge, err := repo.EnsureByTitle("First Step", "Your first step into learning!", "flag")
	require.NoError(t, err)

	// A second ensure returns the same row, not a duplicate.
	again, err := repo.EnsureByTitle("First Step", "ignored", "ignored")
	require.NoError(t, err)
	assert.Equal(t, badge.ID, again.ID)
	assert.Equal(t, "flag", again.Icon)

	awarded, err := repo.AwardOnce(1, badge.ID)
	require.NoError(t, err)
	assert.True(t, awarded)

	awarded, err = repo.AwardOnce(1, badge.ID)
	require.NoError(t, err)
	assert.False(t, awarded)

	badges, err := repo.FindByUser(1)
	require.NoError(t, err)
	assert.Len(t, badges, 1)
}

func TestIncrementXP(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := &model.User{Name: "Jordan", Email: "jordan@example.com", Password: "x"}
	require.NoError(t, repo.Create(user))

	require.NoError(t, repo.IncrementXP(user.ID, 500))
	require.NoError(t, repo.IncrementXP(user.ID, 2000))

	fresh, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2500, fresh.XP)
}

func TestDeleteUserSkillFreesUniquePair(t *testing.T) {
	db := newTestDB(t)
	repo := NewEnrollmentRepository(db)

	require.NoError(t, repo.CreateUserSkill(&model.UserSkill{
		UserID: 1, SkillID: 5, Status: model.StatusInProgress, StartedAt: time.Now(),
	}))
	require.NoError(t, repo.DeleteUserSkill(1, 5))

	// No tombstone: the row is gone from the table, so the unique
	// (user_id, skill_id) index cannot reject a fresh enrollment.
	var count int64
	require.NoError(t, db.Unscoped().Model(&model.UserSkill{}).
		Where("user_id = ? AND skill_id = ?", 1, 5).Count(&count).Error)
	assert.Zero(t, count)

	require.NoError(t, repo.CreateUserSkill(&model.UserSkill{
		UserID: 1, SkillID: 5, Status: model.StatusInProgress, StartedAt: time.Now(),
	}))
}

func TestDeleteUserFreesEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := &model.User{Name: "Jordan", Email: "jordan@example.com", Password: "x"}
	require.NoError(t, repo.Create(user))
	require.NoError(t, repo.Delete(user.ID))

	again := &model.User{Name: "Jordan", Email: "jordan@example.com", Password: "x"}
	require.NoError(t, repo.Create(again))
}
