package repository

import (
	"skillsync_backend/internal/model"

	"gorm.io/gorm"
)

type SkillRepository struct {
	DB *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{DB: db}
}

func (r *SkillRepository) FindAll() ([]model.Skill, error) {
	var skills []model.Skill
	err := r.DB.
		Preload("Modules", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc")
		}).
		Preload("Modules.Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc")
		}).
		Find(&skills).Error
	return skills, err
}

// FindByID loads the skill with its full module/lesson tree, ordered.
func (r *SkillRepository) FindByID(id uint) (*model.Skill, error) {
	var skill model.Skill
	err := r.DB.
		Preload("Modules", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc")
		}).
		Preload("Modules.Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc")
		}).
		First(&skill, id).Error
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepository) FindByCategories(categories []string, excludeIDs []uint, limit int) ([]model.Skill, error) {
	var skills []model.Skill
	db := r.DB.Where("category IN ?", categories)
	if len(excludeIDs) > 0 {
		db = db.Where("id NOT IN ?", excludeIDs)
	}
	err := db.Limit(limit).Find(&skills).Error
	return skills, err
}

func (r *SkillRepository) FindExcluding(excludeIDs []uint, limit int) ([]model.Skill, error) {
	var skills []model.Skill
	db := r.DB
	if len(excludeIDs) > 0 {
		db = db.Where("id NOT IN ?", excludeIDs)
	}
	err := db.Limit(limit).Find(&skills).Error
	return skills, err
}

func (r *SkillRepository) Create(skill *model.Skill) error {
	return r.DB.Create(skill).Error
}

func (r *SkillRepository) Update(skill *model.Skill) error {
	return r.DB.Save(skill).Error
}

func (r *SkillRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Skill{}, id).Error
}

func (r *SkillRepository) FindLessonByID(id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.First(&lesson, id).Error
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *SkillRepository) FindModuleByID(id uint) (*model.Module, error) {
	var module model.Module
	err := r.DB.First(&module, id).Error
	if err != nil {
		return nil, err
	}
	return &module, nil
}

func (r *SkillRepository) CreateModule(module *model.Module) error {
	return r.DB.Create(module).Error
}

func (r *SkillRepository) CreateLesson(lesson *model.Lesson) error {
	return r.DB.Create(lesson).Error
}
