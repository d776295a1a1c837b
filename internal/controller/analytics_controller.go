package controller

import (
	"campus_lms_backend/internal/service"
	"campus_lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

// @Summary Aggregate results for a quiz
// @Tags analytics
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} util.Response
// @Router /api/teacher/quizzes/{id}/stats [get]
func (c *AnalyticsController) GetQuizStats(ctx *gin.Context) {
	stats, err := c.AnalyticsService.GetQuizStats(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// @Summary Per-quiz results across a cohort
// @Tags analytics
// @Produce json
// @Param id path int true "Cohort ID"
// @Success 200 {object} util.Response
// @Router /api/teacher/cohorts/{id}/quiz-overview [get]
func (c *AnalyticsController) GetCohortQuizOverview(ctx *gin.Context) {
	rows, err := c.AnalyticsService.GetCohortQuizOverview(ctx.Request.Context(), util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}

// @Summary Submission statistics for an assignment
// @Tags analytics
// @Produce json
// @Param id path int true "Assignment ID"
// @Success 200 {object} util.Response
// @Router /api/teacher/assignments/{id}/stats [get]
func (c *AnalyticsController) GetAssignmentStats(ctx *gin.Context) {
	stats, err := c.AnalyticsService.GetAssignmentStats(ctx.Request.Context(), util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}
