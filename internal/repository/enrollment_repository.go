package repository

import (
	"skillsync_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

// EnrollmentRepository owns the UserSkill and UserRoadmap association
// tables.
type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

func (r *EnrollmentRepository) FindUserSkill(userID, skillID uint) (*model.UserSkill, error) {
	var us model.UserSkill
	err := r.DB.Where("user_id = ? AND skill_id = ?", userID, skillID).First(&us).Error
	if err != nil {
		return nil, err
	}
	return &us, nil
}

func (r *EnrollmentRepository) CreateUserSkill(us *model.UserSkill) error {
	return r.DB.Create(us).Error
}

// DeleteUserSkill removes the enrollment row for good. A soft delete would
// leave the (user_id, skill_id) pair in the table and the unique index
// would block re-enrollment.
func (r *EnrollmentRepository) DeleteUserSkill(userID, skillID uint) error {
	return r.DB.Unscoped().
		Where("user_id = ? AND skill_id = ?", userID, skillID).
		Delete(&model.UserSkill{}).Error
}

func (r *EnrollmentRepository) FindUserSkills(userID uint) ([]model.UserSkill, error) {
	var skills []model.UserSkill
	err := r.DB.Preload("Skill").Where("user_id = ?", userID).Find(&skills).Error
	return skills, err
}

// CompleteUserSkill transitions the enrollment to completed only when it
// is not already there. The returned flag reports whether this call won
// the transition; concurrent callers see RowsAffected == 0.
func (r *EnrollmentRepository) CompleteUserSkill(userID, skillID uint, at time.Time) (bool, error) {
	res := r.DB.Model(&model.UserSkill{}).
		Where("user_id = ? AND skill_id = ? AND status <> ?", userID, skillID, model.StatusCompleted).
		Updates(map[string]interface{}{
			"status":       model.StatusCompleted,
			"completed_at": at,
		})
	return res.RowsAffected > 0, res.Error
}

// CountCompletedSkills counts how many of the given skills the user has
// completed.
func (r *EnrollmentRepository) CountCompletedSkills(userID uint, skillIDs []uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserSkill{}).
		Where("user_id = ? AND skill_id IN ? AND status = ?", userID, skillIDs, model.StatusCompleted).
		Count(&count).Error
	return count, err
}

func (r *EnrollmentRepository) FindUserRoadmap(userID, roadmapID uint) (*model.UserRoadmap, error) {
	var ur model.UserRoadmap
	err := r.DB.Where("user_id = ? AND roadmap_id = ?", userID, roadmapID).First(&ur).Error
	if err != nil {
		return nil, err
	}
	return &ur, nil
}

func (r *EnrollmentRepository) CreateUserRoadmap(ur *model.UserRoadmap) error {
	return r.DB.Create(ur).Error
}

func (r *EnrollmentRepository) FindUserRoadmaps(userID uint) ([]model.UserRoadmap, error) {
	var roadmaps []model.UserRoadmap
	err := r.DB.Where("user_id = ?", userID).Find(&roadmaps).Error
	return roadmaps, err
}

func (r *EnrollmentRepository) FindInProgressRoadmaps(userID uint) ([]model.UserRoadmap, error) {
	var roadmaps []model.UserRoadmap
	err := r.DB.
		Preload("Roadmap").
		Preload("Roadmap.Skills").
		Where("user_id = ? AND status = ?", userID, model.StatusInProgress).
		Find(&roadmaps).Error
	return roadmaps, err
}

// CompleteUserRoadmap is the roadmap counterpart of CompleteUserSkill. It
// is a no-op when no enrollment row exists.
func (r *EnrollmentRepository) CompleteUserRoadmap(userID, roadmapID uint, at time.Time) (bool, error) {
	res := r.DB.Model(&model.UserRoadmap{}).
		Where("user_id = ? AND roadmap_id = ? AND status <> ?", userID, roadmapID, model.StatusCompleted).
		Updates(map[string]interface{}{
			"status":       model.StatusCompleted,
			"completed_at": at,
		})
	return res.RowsAffected > 0, res.Error
}
