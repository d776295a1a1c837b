package controller

import (
	"time"

	"campus_lms_backend/internal/middleware"
	"campus_lms_backend/internal/service"
	"campus_lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// @Summary Create a quiz under a lesson
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path int true "Lesson ID"
// @Param body body service.QuizRequest true "Quiz definition"
// @Success 201 {object} util.Response
// @Router /api/teacher/lessons/{id}/quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	lessonID := util.ParseUintOrZero(ctx.Param("id"))
	if lessonID == 0 {
		util.BadRequest(ctx, "invalid lesson id")
		return
	}

	var req service.QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, invalid, err := c.QuizService.CreateQuiz(lessonID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if invalid != nil {
		ctx.JSON(400, util.Response{Code: 400, Message: "invalid quiz configuration", Data: invalid})
		return
	}
	util.Created(ctx, quiz)
}

// @Summary Update a quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param body body service.QuizRequest true "Fields to change"
// @Success 200 {object} util.Response
// @Router /api/teacher/quizzes/{id} [put]
func (c *QuizController) UpdateQuiz(ctx *gin.Context) {
	var req service.QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, invalid, err := c.QuizService.UpdateQuiz(ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if invalid != nil {
		ctx.JSON(400, util.Response{Code: 400, Message: "invalid quiz configuration", Data: invalid})
		return
	}
	util.Success(ctx, quiz)
}

// @Summary Validate a quiz configuration without saving
// @Tags quizzes
// @Accept json
// @Produce json
// @Param body body service.QuizRequest true "Quiz definition"
// @Success 200 {object} util.Response
// @Router /api/teacher/quizzes/validate [post]
func (c *QuizController) ValidateQuiz(ctx *gin.Context) {
	var req service.QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, c.QuizService.Validate(req))
}

// @Summary Fetch a quiz with questions and answer keys
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} util.Response
// @Router /api/teacher/quizzes/{id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	quiz, err := c.QuizService.GetQuizForTeacher(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// @Summary Delete a quiz
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} util.Response
// @Router /api/teacher/quizzes/{id} [delete]
func (c *QuizController) DeleteQuiz(ctx *gin.Context) {
	if err := c.QuizService.DeleteQuiz(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Fetch a quiz as a student (answers stripped, availability resolved)
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} util.Response
// @Router /api/quizzes/{id} [get]
func (c *QuizController) GetQuizForStudent(ctx *gin.Context) {
	id, _ := middleware.GetIdentity(ctx)
	view, err := c.QuizService.GetQuizForStudent(ctx.Param("id"), id.UserID, time.Now())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary Start (or resume) a quiz attempt
// @Tags attempts
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 201 {object} util.Response
// @Router /api/quizzes/{id}/attempts [post]
func (c *QuizController) StartAttempt(ctx *gin.Context) {
	id, _ := middleware.GetIdentity(ctx)
	view, err := c.QuizService.StartAttempt(ctx.Param("id"), id.UserID, time.Now())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, view)
}

// @Summary Submit answers for an attempt
// @Tags attempts
// @Accept json
// @Produce json
// @Param id path string true "Attempt ID"
// @Param body body service.SubmitAttemptRequest true "Answers keyed by question id"
// @Success 200 {object} util.Response
// @Router /api/attempts/{id}/submit [post]
func (c *QuizController) SubmitAttempt(ctx *gin.Context) {
	id, _ := middleware.GetIdentity(ctx)

	var req service.SubmitAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuizService.SubmitAttempt(ctx.Param("id"), id.UserID, req, time.Now())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary Remaining time for a running attempt
// @Tags attempts
// @Produce json
// @Param id path string true "Attempt ID"
// @Success 200 {object} util.Response
// @Router /api/attempts/{id}/time [get]
func (c *QuizController) GetRemainingTime(ctx *gin.Context) {
	id, _ := middleware.GetIdentity(ctx)
	view, err := c.QuizService.GetRemainingTime(ctx.Param("id"), id.UserID, time.Now())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary List my attempts for a quiz
// @Tags attempts
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} util.Response
// @Router /api/quizzes/{id}/attempts [get]
func (c *QuizController) ListMyAttempts(ctx *gin.Context) {
	id, _ := middleware.GetIdentity(ctx)
	attempts, err := c.QuizService.ListMyAttempts(ctx.Param("id"), id.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, attempts)
}

// @Summary List all attempts for a quiz
// @Tags attempts
// @Produce json
// @Param id path string true "Quiz ID"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} util.Response
// @Router /api/teacher/quizzes/{id}/attempts [get]
func (c *QuizController) ListAttempts(ctx *gin.Context) {
	page, limit := util.ParsePagination(ctx.Query("page"), ctx.Query("limit"))
	attempts, total, err := c.QuizService.ListAttempts(ctx.Param("id"), page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: attempts, Total: total, Page: page, Limit: limit})
}
