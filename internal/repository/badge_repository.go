package repository

import (
	"skillsync_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BadgeRepository struct {
	DB *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) *BadgeRepository {
	return &BadgeRepository{DB: db}
}

// EnsureByTitle finds the badge with that title or creates it. Title is
// unique, so a concurrent first-award race yields one catalog row.
func (r *BadgeRepository) EnsureByTitle(title, description, icon string) (*model.Badge, error) {
	var badge model.Badge
	err := r.DB.
		Where(model.Badge{Title: title}).
		Attrs(model.Badge{Description: description, Icon: icon}).
		FirstOrCreate(&badge).Error
	if err != nil {
		return nil, err
	}
	return &badge, nil
}

// AwardOnce inserts the (user, badge) pair, ignoring the insert when the
// pair already exists. Returns whether the badge was newly awarded.
func (r *BadgeRepository) AwardOnce(userID, badgeID uint) (bool, error) {
	ub := model.UserBadge{
		UserID:    userID,
		BadgeID:   badgeID,
		AwardedAt: time.Now(),
	}
	res := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "badge_id"}},
		DoNothing: true,
	}).Create(&ub)
	return res.RowsAffected > 0, res.Error
}

func (r *BadgeRepository) FindByUser(userID uint) ([]model.UserBadge, error) {
	var badges []model.UserBadge
	err := r.DB.Preload("Badge").Where("user_id = ?", userID).Find(&badges).Error
	return badges, err
}

func (r *BadgeRepository) FindByID(id uint) (*model.Badge, error) {
	var badge model.Badge
	if err := r.DB.First(&badge, id).Error; err != nil {
		return nil, err
	}
	return &badge, nil
}

func (r *BadgeRepository) FindAll() ([]model.Badge, error) {
	var badges []model.Badge
	err := r.DB.Find(&badges).Error
	return badges, err
}
