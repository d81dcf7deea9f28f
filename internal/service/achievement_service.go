package service

import (
	"context"
	"encoding/json"
	"skillsync_backend/internal/model"
	"skillsync_backend/internal/repository"
	"skillsync_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type AchievementService struct {
	UserRepo         *repository.UserRepository
	BadgeRepo        *repository.BadgeRepository
	NotificationRepo *repository.NotificationRepository
	Redis            *redis.Client
}

func NewAchievementService(userRepo *repository.UserRepository, badgeRepo *repository.BadgeRepository, notificationRepo *repository.NotificationRepository, rdb *redis.Client) *AchievementService {
	return &AchievementService{
		UserRepo:         userRepo,
		BadgeRepo:        badgeRepo,
		NotificationRepo: notificationRepo,
		Redis:            rdb,
	}
}

type UserAchievements struct {
	TotalXP      int                `json:"totalXp"`
	CurrentLevel int                `json:"currentLevel"`
	NextLevelXP  int                `json:"nextLevelXp"`
	Badges       []model.UserBadge  `json:"badges"`
	Leaderboard  []LeaderboardEntry `json:"leaderboard"`
}

type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	User   string `json:"user"`
	XP     int    `json:"xp"`
	Avatar string `json:"avatar,omitempty"`
}

const (
	leaderboardKey = "leaderboard:top"
	leaderboardTTL = 30 * time.Second
)

func (s *AchievementService) GetUserAchievements(userID uint) (*UserAchievements, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	badges, err := s.BadgeRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	leaderboard, err := s.GetLeaderboard(10)
	if err != nil {
		return nil, err
	}

	level, nextLevelXP := calculateLevel(user.XP)

	return &UserAchievements{
		TotalXP:      user.XP,
		CurrentLevel: level,
		NextLevelXP:  nextLevelXP,
		Badges:       badges,
		Leaderboard:  leaderboard,
	}, nil
}

// GetLeaderboard serves the top-XP ranking from a short-lived redis cache;
// the ranking tolerates staleness and the query is the hottest read of the
// gamification page.
func (s *AchievementService) GetLeaderboard(limit int) ([]LeaderboardEntry, error) {
	ctx := context.Background()

	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, leaderboardKey).Result(); err == nil {
			var entries []LeaderboardEntry
			if err := json.Unmarshal([]byte(cached), &entries); err == nil && len(entries) >= limit {
				return entries[:limit], nil
			}
		}
	}

	users, err := s.UserRepo.FindTopByXP(limit)
	if err != nil {
		return nil, err
	}

	leaderboard := make([]LeaderboardEntry, len(users))
	for i, user := range users {
		leaderboard[i] = LeaderboardEntry{
			Rank:   i + 1,
			User:   user.Name,
			XP:     user.XP,
			Avatar: user.Avatar,
		}
	}

	if s.Redis != nil {
		if data, err := json.Marshal(leaderboard); err == nil {
			if err := s.Redis.Set(ctx, leaderboardKey, data, leaderboardTTL).Err(); err != nil {
				logger.Log.Warn("Failed to cache leaderboard", zap.Error(err))
			}
		}
	}

	return leaderboard, nil
}

func (s *AchievementService) GetUserBadges(userID uint) ([]model.UserBadge, error) {
	return s.BadgeRepo.FindByUser(userID)
}

// AwardBadge is the manual admin award; duplicate awards are silent
// no-ops. A fresh award notifies the recipient.
func (s *AchievementService) AwardBadge(userID, badgeID uint) (bool, error) {
	badge, err := s.BadgeRepo.FindByID(badgeID)
	if err != nil {
		return false, err
	}

	awarded, err := s.BadgeRepo.AwardOnce(userID, badgeID)
	if err != nil || !awarded {
		return awarded, err
	}

	n := &model.Notification{
		UserID:  userID,
		Type:    "badge_awarded",
		Message: "You earned the \"" + badge.Title + "\" badge!",
	}
	if err := s.NotificationRepo.Create(n); err != nil {
		logger.Log.Warn("Failed to create badge notification", zap.Error(err))
	}
	return true, nil
}

// 200 XP per level.
func calculateLevel(xp int) (int, int) {
	level := xp / 200
	nextLevelXP := (level + 1) * 200
	return level, nextLevelXP
}
