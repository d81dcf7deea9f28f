package controller

import (
	"skillsync_backend/internal/service"
	"skillsync_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// GetSummary godoc
// @Summary Dashboard summary
// @Description Ongoing courses, roadmap progress, badges, recommendations and learning stats
// @Tags dashboard
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.Dashboard}
// @Failure 401 {object} util.Response
// @Router /api/dashboard [get]
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	summary, err := c.DashboardService.GetSummary(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}
