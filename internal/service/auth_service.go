package service

import (
	"errors"
	"skillsync_backend/internal/config"
	"skillsync_backend/internal/model"
	"skillsync_backend/internal/repository"
	"skillsync_backend/internal/util"
	"skillsync_backend/pkg/logger"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo  *repository.UserRepository
	BadgeRepo *repository.BadgeRepository
	Cfg       *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, badgeRepo *repository.BadgeRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo:  userRepo,
		BadgeRepo: badgeRepo,
		Cfg:       cfg,
	}
}

// Register creates the account, grants the signup XP and awards the
// "First Step" badge. A badge failure does not fail the signup.
func (s *AuthService) Register(user *model.User) error {
	_, err := s.UserRepo.FindByEmail(user.Email)
	if err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	user.XP = s.Cfg.Reward.SignupXP

	if err := s.UserRepo.Create(user); err != nil {
		return err
	}

	badge, err := s.BadgeRepo.EnsureByTitle("First Step", "Your first step into learning!", "flag")
	if err == nil {
		_, err = s.BadgeRepo.AwardOnce(user.ID, badge.ID)
	}
	if err != nil {
		logger.Log.Error("Failed to award signup badge", zap.Uint("userId", user.ID), zap.Error(err))
	}

	return nil
}

func (s *AuthService) Login(email, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", nil, util.ErrInvalidCredential
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredential
	}

	user.LastLogin = time.Now()
	if err := s.UserRepo.Update(user); err != nil {
		logger.Log.Warn("Failed to record login time", zap.Uint("userId", user.ID), zap.Error(err))
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, err := s.UserRepo.FindByID(claims.UserID)
	if err != nil {
		return nil
	}
	return user
}
