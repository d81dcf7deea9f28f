package repository

import (
	"skillsync_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// Upsert writes the (user, lesson) progress row, updating in place when it
// already exists. Safe to call any number of times.
func (r *ProgressRepository) Upsert(progress *model.LessonProgress) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "completed_at", "updated_at"}),
	}).Create(progress).Error
}

// CountCompleted counts the user's completed rows restricted to a lesson
// set (one skill's lessons, typically).
func (r *ProgressRepository) CountCompleted(userID uint, lessonIDs []uint) (int64, error) {
	if len(lessonIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.DB.Model(&model.LessonProgress{}).
		Where("user_id = ? AND lesson_id IN ? AND completed = ?", userID, lessonIDs, true).
		Count(&count).Error
	return count, err
}

func (r *ProgressRepository) CountAllCompleted(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.LessonProgress{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Count(&count).Error
	return count, err
}

func (r *ProgressRepository) FindByUserAndLessons(userID uint, lessonIDs []uint) ([]model.LessonProgress, error) {
	if len(lessonIDs) == 0 {
		return nil, nil
	}
	var rows []model.LessonProgress
	err := r.DB.
		Where("user_id = ? AND lesson_id IN ?", userID, lessonIDs).
		Find(&rows).Error
	return rows, err
}
