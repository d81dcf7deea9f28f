package controller

import (
	"errors"
	"skillsync_backend/internal/model"
	"skillsync_backend/internal/service"
	"skillsync_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type RoadmapController struct {
	RoadmapService *service.RoadmapService
}

func NewRoadmapController(roadmapService *service.RoadmapService) *RoadmapController {
	return &RoadmapController{RoadmapService: roadmapService}
}

// GetAllRoadmaps godoc
// @Summary Roadmap catalog
// @Description Paginated, searchable roadmap list; sort is one of newest|oldest|name_asc|name_desc
// @Tags roadmaps
// @Produce  json
// @Param   page query int false "page" default(1)
// @Param   limit query int false "page size" default(9)
// @Param   search query string false "title/description search"
// @Param   sort query string false "sort key"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/roadmaps [get]
func (c *RoadmapController) GetAllRoadmaps(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "9"))

	roadmaps, total, err := c.RoadmapService.GetAllRoadmaps(currentUserID(ctx), service.RoadmapQuery{
		Page:   page,
		Limit:  limit,
		Search: ctx.Query("search"),
		Sort:   ctx.DefaultQuery("sort", "newest"),
	})
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  roadmaps,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// GetRoadmapByID godoc
// @Summary Roadmap detail
// @Description Ordered skills with per-skill status and locked flags
// @Tags roadmaps
// @Produce  json
// @Param   id path int true "roadmap id"
// @Success 200 {object} util.Response{data=service.RoadmapDetail}
// @Failure 404 {object} util.Response
// @Router /api/roadmaps/{id} [get]
func (c *RoadmapController) GetRoadmapByID(ctx *gin.Context) {
	detail, err := c.RoadmapService.GetRoadmapByID(util.MustParseUint(ctx.Param("id")), currentUserID(ctx))
	if err != nil {
		if errors.Is(err, util.ErrRoadmapNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, detail)
}

// StartRoadmap godoc
// @Summary Start a roadmap
// @Description Creates the enrollment and auto-enrolls the first skill
// @Tags roadmaps
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "roadmap id"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Router /api/roadmaps/{id}/start [post]
func (c *RoadmapController) StartRoadmap(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if err := c.RoadmapService.StartRoadmap(claims.UserID, util.MustParseUint(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrRoadmapNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"message": "Roadmap started", "status": "started"})
}

type CreateRoadmapRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	Image         string `json:"image"`
	EstimatedTime string `json:"estimatedTime"`
	SkillIDs      []uint `json:"skillIds"`
}

// CreateRoadmap godoc
// @Summary Create a roadmap (admin)
// @Tags roadmaps
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreateRoadmapRequest true "roadmap with ordered skill ids"
// @Success 201 {object} util.Response{data=model.Roadmap}
// @Router /api/admin/roadmaps [post]
func (c *RoadmapController) CreateRoadmap(ctx *gin.Context) {
	var req CreateRoadmapRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	roadmap := &model.Roadmap{
		Title:         req.Title,
		Description:   req.Description,
		Image:         req.Image,
		EstimatedTime: req.EstimatedTime,
	}
	for i, skillID := range req.SkillIDs {
		roadmap.Skills = append(roadmap.Skills, model.RoadmapSkill{
			SkillID: skillID,
			Order:   i,
		})
	}

	if err := c.RoadmapService.CreateRoadmap(roadmap); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, roadmap)
}
