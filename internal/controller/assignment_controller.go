package controller

import (
	"time"

	"campus_lms_backend/internal/middleware"
	"campus_lms_backend/internal/service"
	"campus_lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssignmentController struct {
	AssignmentService *service.AssignmentService
}

func NewAssignmentController(assignmentService *service.AssignmentService) *AssignmentController {
	return &AssignmentController{AssignmentService: assignmentService}
}

// @Summary Create an assignment under a lesson
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path int true "Lesson ID"
// @Param body body service.AssignmentRequest true "Assignment fields"
// @Success 201 {object} util.Response
// @Router /api/teacher/lessons/{id}/assignments [post]
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	var req service.AssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	a, err := c.AssignmentService.CreateAssignment(util.ParseUintOrZero(ctx.Param("id")), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, a)
}

// @Summary Update an assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path int true "Assignment ID"
// @Success 200 {object} util.Response
// @Router /api/teacher/assignments/{id} [put]
func (c *AssignmentController) UpdateAssignment(ctx *gin.Context) {
	var req service.AssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	a, err := c.AssignmentService.UpdateAssignment(util.ParseUintOrZero(ctx.Param("id")), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, a)
}

// @Summary List assignments of a lesson
// @Tags assignments
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {object} util.Response
// @Router /api/lessons/{id}/assignments [get]
func (c *AssignmentController) ListAssignments(ctx *gin.Context) {
	assignments, err := c.AssignmentService.ListAssignments(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, assignments)
}

// @Summary Fetch an assignment with the caller's submission status
// @Tags assignments
// @Produce json
// @Param id path int true "Assignment ID"
// @Success 200 {object} util.Response
// @Router /api/assignments/{id} [get]
func (c *AssignmentController) GetAssignment(ctx *gin.Context) {
	id, _ := middleware.GetIdentity(ctx)
	view, err := c.AssignmentService.GetAssignmentForStudent(
		ctx.Request.Context(),
		util.ParseUintOrZero(ctx.Param("id")),
		id.UserID,
		time.Now(),
	)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary Submit work for an assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path int true "Assignment ID"
// @Param body body service.SubmitAssignmentRequest true "Submission content"
// @Success 201 {object} util.Response
// @Router /api/assignments/{id}/submissions [post]
func (c *AssignmentController) Submit(ctx *gin.Context) {
	id, _ := middleware.GetIdentity(ctx)

	var req service.SubmitAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sub, err := c.AssignmentService.Submit(
		ctx.Request.Context(),
		util.ParseUintOrZero(ctx.Param("id")),
		id.UserID,
		req,
		time.Now(),
	)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, sub)
}

// @Summary Grade a submission
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path int true "Submission ID"
// @Param body body service.GradeSubmissionRequest true "Score and feedback"
// @Success 200 {object} util.Response
// @Router /api/teacher/submissions/{id}/grade [post]
func (c *AssignmentController) GradeSubmission(ctx *gin.Context) {
	var req service.GradeSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sub, err := c.AssignmentService.GradeSubmission(util.ParseUintOrZero(ctx.Param("id")), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, sub)
}

// @Summary List submissions for an assignment
// @Tags assignments
// @Produce json
// @Param id path int true "Assignment ID"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} util.Response
// @Router /api/teacher/assignments/{id}/submissions [get]
func (c *AssignmentController) ListSubmissions(ctx *gin.Context) {
	page, limit := util.ParsePagination(ctx.Query("page"), ctx.Query("limit"))
	subs, total, err := c.AssignmentService.ListSubmissions(util.ParseUintOrZero(ctx.Param("id")), page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: subs, Total: total, Page: page, Limit: limit})
}
