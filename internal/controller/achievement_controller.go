package controller

import (
	"errors"
	"skillsync_backend/internal/service"
	"skillsync_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AchievementController struct {
	AchievementService *service.AchievementService
}

func NewAchievementController(achievementService *service.AchievementService) *AchievementController {
	return &AchievementController{AchievementService: achievementService}
}

// GetAchievements godoc
// @Summary XP, level, badges and leaderboard for the caller
// @Tags achievements
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.UserAchievements}
// @Router /api/achievements [get]
func (c *AchievementController) GetAchievements(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	achievements, err := c.AchievementService.GetUserAchievements(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, achievements)
}

// GetLeaderboard godoc
// @Summary Top users by XP
// @Tags achievements
// @Produce  json
// @Param   limit query int false "entries" default(10)
// @Success 200 {object} util.Response{data=[]service.LeaderboardEntry}
// @Router /api/leaderboard [get]
func (c *AchievementController) GetLeaderboard(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	leaderboard, err := c.AchievementService.GetLeaderboard(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, leaderboard)
}

// GetUserBadges godoc
// @Summary Badges held by a user
// @Tags achievements
// @Produce  json
// @Param   userId path int true "user id"
// @Success 200 {object} util.Response{data=[]model.UserBadge}
// @Router /api/users/{userId}/badges [get]
func (c *AchievementController) GetUserBadges(ctx *gin.Context) {
	badges, err := c.AchievementService.GetUserBadges(util.MustParseUint(ctx.Param("userId")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, badges)
}

// AwardBadge godoc
// @Summary Manually award a badge (admin)
// @Description Awarding an already-held badge is a silent no-op
// @Tags achievements
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "user id"
// @Param   badgeId path int true "badge id"
// @Success 201 {object} util.Response{data=object}
// @Router /api/admin/users/{id}/badges/{badgeId} [post]
func (c *AchievementController) AwardBadge(ctx *gin.Context) {
	awarded, err := c.AchievementService.AwardBadge(
		util.MustParseUint(ctx.Param("id")),
		util.MustParseUint(ctx.Param("badgeId")),
	)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, gin.H{"awarded": awarded})
}
