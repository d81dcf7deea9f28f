package controller

import (
	"errors"
	"skillsync_backend/internal/service"
	"skillsync_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CommunityController struct {
	CommunityService *service.CommunityService
}

func NewCommunityController(communityService *service.CommunityService) *CommunityController {
	return &CommunityController{CommunityService: communityService}
}

type addCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// AddComment godoc
// @Summary Post a comment on a skill
// @Tags community
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "skill id"
// @Param   data body addCommentRequest true "comment"
// @Success 201 {object} util.Response{data=model.Comment}
// @Router /api/skills/{id}/comments [post]
func (c *CommunityController) AddComment(ctx *gin.Context) {
	var req addCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	claims := util.GetUserFromContext(ctx)
	comment, err := c.CommunityService.AddComment(claims.UserID, util.MustParseUint(ctx.Param("id")), req.Content)
	if err != nil {
		if errors.Is(err, util.ErrSkillNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, comment)
}

// GetComments godoc
// @Summary Comments on a skill, newest first
// @Tags community
// @Produce  json
// @Param   id path int true "skill id"
// @Success 200 {object} util.Response{data=[]model.Comment}
// @Router /api/skills/{id}/comments [get]
func (c *CommunityController) GetComments(ctx *gin.Context) {
	comments, err := c.CommunityService.GetComments(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, comments)
}

// DeleteComment godoc
// @Summary Delete the caller's own comment
// @Tags community
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "comment id"
// @Success 200 {object} util.Response
// @Router /api/comments/{id} [delete]
func (c *CommunityController) DeleteComment(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if err := c.CommunityService.DeleteComment(util.MustParseUint(ctx.Param("id")), claims.UserID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// GetNotifications godoc
// @Summary Notifications for the caller, newest first
// @Tags community
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Notification}
// @Router /api/notifications [get]
func (c *CommunityController) GetNotifications(ctx *gin.Context) {
	notifications, err := c.CommunityService.GetNotifications(util.GetUserFromContext(ctx).UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, notifications)
}

// MarkNotificationRead godoc
// @Summary Mark a notification as read
// @Tags community
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "notification id"
// @Success 200 {object} util.Response
// @Router /api/notifications/{id}/read [put]
func (c *CommunityController) MarkNotificationRead(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if err := c.CommunityService.MarkNotificationRead(ctx.Param("id"), claims.UserID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
