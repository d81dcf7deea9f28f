package service

import (
	"errors"
	"skillsync_backend/internal/model"
	"skillsync_backend/internal/repository"
	"skillsync_backend/internal/util"

	"gorm.io/gorm"
)

// CommunityService covers skill comments and user notifications.
type CommunityService struct {
	CommentRepo      *repository.CommentRepository
	NotificationRepo *repository.NotificationRepository
	SkillRepo        *repository.SkillRepository
}

func NewCommunityService(
	commentRepo *repository.CommentRepository,
	notificationRepo *repository.NotificationRepository,
	skillRepo *repository.SkillRepository,
) *CommunityService {
	return &CommunityService{
		CommentRepo:      commentRepo,
		NotificationRepo: notificationRepo,
		SkillRepo:        skillRepo,
	}
}

func (s *CommunityService) AddComment(userID, skillID uint, content string) (*model.Comment, error) {
	if _, err := s.SkillRepo.FindByID(skillID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSkillNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		UserID:  userID,
		SkillID: skillID,
		Content: content,
	}
	if err := s.CommentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommunityService) GetComments(skillID uint) ([]model.Comment, error) {
	return s.CommentRepo.FindBySkill(skillID)
}

func (s *CommunityService) DeleteComment(id, userID uint) error {
	return s.CommentRepo.Delete(id, userID)
}

func (s *CommunityService) Notify(userID uint, notificationType, message string) (*model.Notification, error) {
	n := &model.Notification{
		UserID:  userID,
		Type:    notificationType,
		Message: message,
	}
	if err := s.NotificationRepo.Create(n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *CommunityService) GetNotifications(userID uint) ([]model.Notification, error) {
	return s.NotificationRepo.FindByUser(userID)
}

func (s *CommunityService) MarkNotificationRead(id string, userID uint) error {
	return s.NotificationRepo.MarkRead(id, userID)
}
