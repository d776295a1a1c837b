package controller

import (
	"time"

	"campus_lms_backend/internal/middleware"
	"campus_lms_backend/internal/service"
	"campus_lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Param body body service.CourseRequest true "Course fields"
// @Success 201 {object} util.Response
// @Router /api/teacher/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	id, _ := middleware.GetIdentity(ctx)

	var req service.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.CreateCourse(id.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} util.Response
// @Router /api/teacher/courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req service.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.UpdateCourse(util.ParseUintOrZero(ctx.Param("id")), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// @Summary Fetch a course with its modules and lessons
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.CourseService.GetCourse(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// @Summary List courses
// @Tags courses
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} util.Response
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	page, limit := util.ParsePagination(ctx.Query("page"), ctx.Query("limit"))
	courses, total, err := c.CourseService.ListCourses(page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: courses, Total: total, Page: page, Limit: limit})
}

// @Summary Add a module to a course
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Success 201 {object} util.Response
// @Router /api/teacher/courses/{id}/modules [post]
func (c *CourseController) CreateModule(ctx *gin.Context) {
	var req service.ModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	m, err := c.CourseService.CreateModule(util.ParseUintOrZero(ctx.Param("id")), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, m)
}

// @Summary Add a lesson to a module
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Module ID"
// @Success 201 {object} util.Response
// @Router /api/teacher/modules/{id}/lessons [post]
func (c *CourseController) CreateLesson(ctx *gin.Context) {
	var req service.LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.CourseService.CreateLesson(util.ParseUintOrZero(ctx.Param("id")), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, lesson)
}

// @Summary List a cohort's modules with unlock status
// @Tags timegate
// @Produce json
// @Param id path int true "Cohort ID"
// @Success 200 {object} util.Response
// @Router /api/cohorts/{id}/modules [get]
func (c *CourseController) ListModulesForCohort(ctx *gin.Context) {
	id, _ := middleware.GetIdentity(ctx)
	views, err := c.CourseService.ListModulesForCohort(
		ctx.Request.Context(),
		util.ParseUintOrZero(ctx.Param("id")),
		middleware.IsPrivileged(id),
		time.Now(),
	)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, views)
}

// @Summary Unlock status of one module for a cohort
// @Tags timegate
// @Produce json
// @Param id path int true "Cohort ID"
// @Param moduleId path int true "Module ID"
// @Success 200 {object} util.Response
// @Router /api/cohorts/{id}/modules/{moduleId}/status [get]
func (c *CourseController) GetModuleStatus(ctx *gin.Context) {
	id, _ := middleware.GetIdentity(ctx)
	status, err := c.CourseService.GetModuleStatus(
		ctx.Request.Context(),
		util.ParseUintOrZero(ctx.Param("moduleId")),
		util.ParseUintOrZero(ctx.Param("id")),
		middleware.IsPrivileged(id),
		time.Now(),
	)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, status)
}

// @Summary Fetch lesson content, gated by the cohort schedule
// @Tags timegate
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {object} util.Response
// @Router /api/lessons/{id} [get]
func (c *CourseController) GetLesson(ctx *gin.Context) {
	id, _ := middleware.GetIdentity(ctx)
	lesson, err := c.CourseService.GetLesson(
		ctx.Request.Context(),
		util.ParseUintOrZero(ctx.Param("id")),
		id.UserID,
		middleware.IsPrivileged(id),
		time.Now(),
	)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, lesson)
}
