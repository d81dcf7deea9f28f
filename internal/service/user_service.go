package service

import (
	"errors"
	"skillsync_backend/internal/model"
	"skillsync_backend/internal/repository"
	"skillsync_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo     *repository.UserRepository
	InterestRepo *repository.InterestRepository
}

func NewUserService(userRepo *repository.UserRepository, interestRepo *repository.InterestRepository) *UserService {
	return &UserService{
		UserRepo:     userRepo,
		InterestRepo: interestRepo,
	}
}

type ProfileUpdate struct {
	Name      string
	Username  string
	Bio       string
	Interests []string
}

// UpdateProfile updates the profile fields and replaces the interest set,
// upserting Interest rows by name.
func (s *UserService) UpdateProfile(userID uint, update ProfileUpdate) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	if update.Name != "" {
		user.Name = update.Name
	}
	if update.Username != "" {
		user.Username = update.Username
	}
	user.Bio = update.Bio

	if update.Interests != nil {
		interests := make([]model.Interest, 0, len(update.Interests))
		for _, name := range update.Interests {
			interest, err := s.InterestRepo.EnsureByName(name)
			if err != nil {
				return nil, err
			}
			interests = append(interests, *interest)
		}
		if err := s.UserRepo.ReplaceInterests(user, interests); err != nil {
			return nil, err
		}
		user.Interests = interests
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetByID(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetAll() ([]model.User, error) {
	return s.UserRepo.FindAll()
}

func (s *UserService) Delete(id uint) error {
	return s.UserRepo.Delete(id)
}

func (s *UserService) GetInterests() ([]model.Interest, error) {
	return s.InterestRepo.FindAll()
}

func (s *UserService) SetAvatar(userID uint, url string) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return err
	}
	user.Avatar = url
	return s.UserRepo.Update(user)
}
