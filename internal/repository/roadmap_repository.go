package repository

import (
	"skillsync_backend/internal/model"

	"gorm.io/gorm"
)

type RoadmapRepository struct {
	DB *gorm.DB
}

func NewRoadmapRepository(db *gorm.DB) *RoadmapRepository {
	return &RoadmapRepository{DB: db}
}

// FindPage lists roadmaps with LIKE search over title/description and the
// sort keys the catalog UI offers.
func (r *RoadmapRepository) FindPage(search, sort string, page, limit int) ([]model.Roadmap, int64, error) {
	db := r.DB.Model(&model.Roadmap{})

	if search != "" {
		pattern := "%" + search + "%"
		db = db.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy := "created_at desc"
	switch sort {
	case "oldest":
		orderBy = "created_at asc"
	case "name_asc":
		orderBy = "title asc"
	case "name_desc":
		orderBy = "title desc"
	}

	var roadmaps []model.Roadmap
	err := db.
		Preload("Skills", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc")
		}).
		Order(orderBy).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&roadmaps).Error
	return roadmaps, total, err
}

func (r *RoadmapRepository) FindByID(id uint) (*model.Roadmap, error) {
	var roadmap model.Roadmap
	err := r.DB.
		Preload("Skills", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc")
		}).
		Preload("Skills.Skill").
		First(&roadmap, id).Error
	if err != nil {
		return nil, err
	}
	return &roadmap, nil
}

// FindContainingSkill returns every roadmap that links the given skill,
// with its full skill link set preloaded for completion counting.
func (r *RoadmapRepository) FindContainingSkill(skillID uint) ([]model.Roadmap, error) {
	var roadmaps []model.Roadmap
	err := r.DB.
		Joins("JOIN roadmap_skills ON roadmap_skills.roadmap_id = roadmaps.id").
		Where("roadmap_skills.skill_id = ?", skillID).
		Preload("Skills").
		Find(&roadmaps).Error
	return roadmaps, err
}

func (r *RoadmapRepository) Create(roadmap *model.Roadmap) error {
	return r.DB.Create(roadmap).Error
}

func (r *RoadmapRepository) Update(roadmap *model.Roadmap) error {
	return r.DB.Save(roadmap).Error
}

func (r *RoadmapRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Roadmap{}, id).Error
}
