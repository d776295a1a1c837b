package controller

import (
	"campus_lms_backend/internal/middleware"
	"campus_lms_backend/internal/model"
	"campus_lms_backend/internal/service"
	"campus_lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CohortController struct {
	CohortService *service.CohortService
}

func NewCohortController(cohortService *service.CohortService) *CohortController {
	return &CohortController{CohortService: cohortService}
}

// @Summary Create a cohort for a course
// @Tags cohorts
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Success 201 {object} util.Response
// @Router /api/teacher/courses/{id}/cohorts [post]
func (c *CohortController) CreateCohort(ctx *gin.Context) {
	var req service.CohortRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	cohort, err := c.CohortService.CreateCohort(util.ParseUintOrZero(ctx.Param("id")), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, cohort)
}

// @Summary List cohorts of a course
// @Tags cohorts
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{id}/cohorts [get]
func (c *CohortController) ListCohorts(ctx *gin.Context) {
	cohorts, err := c.CohortService.ListCohorts(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, cohorts)
}

// @Summary Enroll the caller into a cohort
// @Tags cohorts
// @Produce json
// @Param id path int true "Cohort ID"
// @Success 201 {object} util.Response
// @Router /api/cohorts/{id}/enroll [post]
func (c *CohortController) Enroll(ctx *gin.Context) {
	id, _ := middleware.GetIdentity(ctx)
	enrollment, err := c.CohortService.Enroll(util.ParseUintOrZero(ctx.Param("id")), id.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, enrollment)
}

// @Summary Change a student's enrollment status
// @Tags cohorts
// @Accept json
// @Produce json
// @Param id path int true "Cohort ID"
// @Param userId path int true "User ID"
// @Success 200 {object} util.Response
// @Router /api/teacher/cohorts/{id}/enrollments/{userId} [put]
func (c *CohortController) SetEnrollmentStatus(ctx *gin.Context) {
	var body struct {
		Status model.EnrollmentStatus `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	switch body.Status {
	case model.EnrollmentActive, model.EnrollmentPaused, model.EnrollmentWithdrawn:
	default:
		util.BadRequest(ctx, "invalid enrollment status")
		return
	}

	enrollment, err := c.CohortService.SetEnrollmentStatus(
		util.ParseUintOrZero(ctx.Param("id")),
		util.ParseUintOrZero(ctx.Param("userId")),
		body.Status,
	)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, enrollment)
}

// @Summary List a cohort's enrollments
// @Tags cohorts
// @Produce json
// @Param id path int true "Cohort ID"
// @Success 200 {object} util.Response
// @Router /api/teacher/cohorts/{id}/enrollments [get]
func (c *CohortController) ListEnrollments(ctx *gin.Context) {
	enrollments, err := c.CohortService.ListEnrollments(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, enrollments)
}

// @Summary Set the unlock window for a module in a cohort
// @Tags timegate
// @Accept json
// @Produce json
// @Param id path int true "Cohort ID"
// @Param moduleId path int true "Module ID"
// @Success 200 {object} util.Response
// @Router /api/teacher/cohorts/{id}/modules/{moduleId}/schedule [put]
func (c *CohortController) SetSchedule(ctx *gin.Context) {
	var req service.ScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	schedule, err := c.CohortService.SetSchedule(
		util.ParseUintOrZero(ctx.Param("id")),
		util.ParseUintOrZero(ctx.Param("moduleId")),
		req,
	)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, schedule)
}

// @Summary Remove the unlock window for a module in a cohort
// @Tags timegate
// @Produce json
// @Param id path int true "Cohort ID"
// @Param moduleId path int true "Module ID"
// @Success 200 {object} util.Response
// @Router /api/teacher/cohorts/{id}/modules/{moduleId}/schedule [delete]
func (c *CohortController) ClearSchedule(ctx *gin.Context) {
	err := c.CohortService.ClearSchedule(
		util.ParseUintOrZero(ctx.Param("id")),
		util.ParseUintOrZero(ctx.Param("moduleId")),
	)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
