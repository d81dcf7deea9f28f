package repository

import (
	"skillsync_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.Preload("Interests").First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindAll() ([]model.User, error) {
	var users []model.User
	err := r.DB.Find(&users).Error
	return users, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

// Delete is a hard delete so the email becomes available for signup
// again.
func (r *UserRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&model.User{}, id).Error
}

// IncrementXP adds to the counter in a single UPDATE so concurrent awards
// cannot lose increments.
func (r *UserRepository) IncrementXP(userID uint, xp int) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("xp", gorm.Expr("xp + ?", xp)).
		Error
}

func (r *UserRepository) FindTopByXP(limit int) ([]model.User, error) {
	var users []model.User
	err := r.DB.Order("xp DESC").Limit(limit).Find(&users).Error
	return users, err
}

func (r *UserRepository) ReplaceInterests(user *model.User, interests []model.Interest) error {
	return r.DB.Model(user).Association("Interests").Replace(interests)
}

type InterestRepository struct {
	DB *gorm.DB
}

func NewInterestRepository(db *gorm.DB) *InterestRepository {
	return &InterestRepository{DB: db}
}

func (r *InterestRepository) FindAll() ([]model.Interest, error) {
	var interests []model.Interest
	err := r.DB.Order("name asc").Find(&interests).Error
	return interests, err
}

func (r *InterestRepository) EnsureByName(name string) (*model.Interest, error) {
	var interest model.Interest
	err := r.DB.Where(model.Interest{Name: name}).FirstOrCreate(&interest).Error
	return &interest, err
}
