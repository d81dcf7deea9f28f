package controller

import (
	"errors"
	"skillsync_backend/internal/model"
	"skillsync_backend/internal/service"
	"skillsync_backend/internal/util"
	"skillsync_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type SkillController struct {
	SkillService    *service.SkillService
	ProgressService *service.ProgressService
}

func NewSkillController(skillService *service.SkillService, progressService *service.ProgressService) *SkillController {
	return &SkillController{
		SkillService:    skillService,
		ProgressService: progressService,
	}
}

func currentUserID(ctx *gin.Context) uint {
	if claims := util.GetUserFromContext(ctx); claims != nil {
		return claims.UserID
	}
	return 0
}

// GetAllSkills godoc
// @Summary Skill catalog
// @Description Lists every skill; logged-in callers see their enrollment status per entry
// @Tags skills
// @Produce  json
// @Success 200 {object} util.Response{data=[]service.SkillSummary}
// @Router /api/skills [get]
func (c *SkillController) GetAllSkills(ctx *gin.Context) {
	skills, err := c.SkillService.GetAllSkills(currentUserID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, skills)
}

// GetSkillByID godoc
// @Summary Skill detail
// @Description Modules and lessons with per-lesson completion flags and progress percentage
// @Tags skills
// @Produce  json
// @Param   id path int true "skill id"
// @Success 200 {object} util.Response{data=service.SkillDetail}
// @Failure 404 {object} util.Response
// @Router /api/skills/{id} [get]
func (c *SkillController) GetSkillByID(ctx *gin.Context) {
	detail, err := c.SkillService.GetSkillByID(util.MustParseUint(ctx.Param("id")), currentUserID(ctx))
	if err != nil {
		if errors.Is(err, util.ErrSkillNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, detail)
}

// StartSkill godoc
// @Summary Enroll in a skill
// @Tags skills
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "skill id"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Router /api/skills/{id}/start [post]
func (c *SkillController) StartSkill(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	status, already, err := c.ProgressService.StartSkill(claims.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrSkillNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	message := "Skill started successfully"
	if already {
		message = "Already enrolled"
	}
	util.Success(ctx, gin.H{"message": message, "status": status})
}

// CompleteLesson godoc
// @Summary Complete a lesson
// @Description Marks the lesson done and cascades skill/roadmap completion, XP and badges
// @Tags skills
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "skill id"
// @Param   lessonId path int true "lesson id"
// @Success 200 {object} util.Response{data=service.CompletionResult}
// @Failure 400 {object} util.Response "lesson does not belong to skill"
// @Failure 404 {object} util.Response
// @Router /api/skills/{id}/lessons/{lessonId}/complete [post]
func (c *SkillController) CompleteLesson(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	result, err := c.ProgressService.CompleteLesson(
		claims.UserID,
		util.MustParseUint(ctx.Param("id")),
		util.MustParseUint(ctx.Param("lessonId")),
	)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSkillNotFound), errors.Is(err, util.ErrLessonNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrLessonNotInSkill):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.LessonCompletions.Inc()
	if result.XPAwarded > 0 {
		monitoring.XPAwarded.Add(float64(result.XPAwarded))
	}

	util.Success(ctx, result)
}

// LeaveSkill godoc
// @Summary Leave a skill
// @Description Removes the enrollment; lesson progress is kept for a later re-enroll
// @Tags skills
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "skill id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/skills/{id}/leave [delete]
func (c *SkillController) LeaveSkill(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if err := c.ProgressService.LeaveSkill(claims.UserID, util.MustParseUint(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrNotEnrolled) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"message": "Successfully left the skill"})
}

type MarkLessonRequest struct {
	Completed bool `json:"completed"`
}

// MarkLesson godoc
// @Summary Toggle raw lesson progress
// @Description Sets the completed flag without running the completion cascade
// @Tags progress
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   lessonId path int true "lesson id"
// @Param   body body MarkLessonRequest true "flag"
// @Success 200 {object} util.Response{data=model.LessonProgress}
// @Router /api/progress/lessons/{lessonId} [put]
func (c *SkillController) MarkLesson(ctx *gin.Context) {
	var req MarkLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	progress, err := c.ProgressService.MarkLesson(claims.UserID, util.MustParseUint(ctx.Param("lessonId")), req.Completed)
	if err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, progress)
}

type CreateSkillRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"`
	Image       string `json:"image"`
}

// CreateSkill godoc
// @Summary Create a skill (admin)
// @Tags skills
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreateSkillRequest true "skill"
// @Success 201 {object} util.Response{data=model.Skill}
// @Router /api/admin/skills [post]
func (c *SkillController) CreateSkill(ctx *gin.Context) {
	var req CreateSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	skill := &model.Skill{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Difficulty:  req.Difficulty,
		Image:       req.Image,
	}
	if err := c.SkillService.CreateSkill(skill); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, skill)
}

type CreateModuleRequest struct {
	SkillID uint   `json:"skillId" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Order   int    `json:"order"`
}

// CreateModule godoc
// @Summary Add a module to a skill (admin)
// @Tags skills
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreateModuleRequest true "module"
// @Success 201 {object} util.Response{data=model.Module}
// @Router /api/admin/modules [post]
func (c *SkillController) CreateModule(ctx *gin.Context) {
	var req CreateModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	module := &model.Module{SkillID: req.SkillID, Title: req.Title, Order: req.Order}
	if err := c.SkillService.CreateModule(module); err != nil {
		if errors.Is(err, util.ErrSkillNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, module)
}

type CreateLessonRequest struct {
	ModuleID uint   `json:"moduleId" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content"`
	Duration int    `json:"duration"`
	Order    int    `json:"order"`
}

// CreateLesson godoc
// @Summary Add a lesson to a module (admin)
// @Tags skills
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreateLessonRequest true "lesson"
// @Success 201 {object} util.Response{data=model.Lesson}
// @Router /api/admin/lessons [post]
func (c *SkillController) CreateLesson(ctx *gin.Context) {
	var req CreateLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson := &model.Lesson{
		ModuleID: req.ModuleID,
		Title:    req.Title,
		Content:  req.Content,
		Duration: req.Duration,
		Order:    req.Order,
	}
	if err := c.SkillService.CreateLesson(lesson); err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, lesson)
}
