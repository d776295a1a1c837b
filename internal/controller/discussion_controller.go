package controller

import (
	"campus_lms_backend/internal/middleware"
	"campus_lms_backend/internal/service"
	"campus_lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DiscussionController struct {
	DiscussionService *service.DiscussionService
}

func NewDiscussionController(discussionService *service.DiscussionService) *DiscussionController {
	return &DiscussionController{DiscussionService: discussionService}
}

// @Summary Start a discussion thread in a course
// @Tags discussions
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Success 201 {object} util.Response
// @Router /api/courses/{id}/threads [post]
func (c *DiscussionController) CreateThread(ctx *gin.Context) {
	id, _ := middleware.GetIdentity(ctx)

	var req service.ThreadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	thread, err := c.DiscussionService.CreateThread(util.ParseUintOrZero(ctx.Param("id")), id.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, thread)
}

// @Summary Fetch a thread with replies
// @Tags discussions
// @Produce json
// @Param id path int true "Thread ID"
// @Success 200 {object} util.Response
// @Router /api/threads/{id} [get]
func (c *DiscussionController) GetThread(ctx *gin.Context) {
	thread, err := c.DiscussionService.GetThread(util.ParseUintOrZero(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, thread)
}

// @Summary List threads of a course
// @Tags discussions
// @Produce json
// @Param id path int true "Course ID"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} util.Response
// @Router /api/courses/{id}/threads [get]
func (c *DiscussionController) ListThreads(ctx *gin.Context) {
	page, limit := util.ParsePagination(ctx.Query("page"), ctx.Query("limit"))
	threads, total, err := c.DiscussionService.ListThreads(util.ParseUintOrZero(ctx.Param("id")), page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: threads, Total: total, Page: page, Limit: limit})
}

// @Summary Delete a thread
// @Tags discussions
// @Produce json
// @Param id path int true "Thread ID"
// @Success 200 {object} util.Response
// @Router /api/threads/{id} [delete]
func (c *DiscussionController) DeleteThread(ctx *gin.Context) {
	id, _ := middleware.GetIdentity(ctx)
	err := c.DiscussionService.DeleteThread(
		util.ParseUintOrZero(ctx.Param("id")),
		id.UserID,
		middleware.IsPrivileged(id),
	)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Reply to a thread
// @Tags discussions
// @Accept json
// @Produce json
// @Param id path int true "Thread ID"
// @Success 201 {object} util.Response
// @Router /api/threads/{id}/replies [post]
func (c *DiscussionController) CreateReply(ctx *gin.Context) {
	id, _ := middleware.GetIdentity(ctx)

	var req service.ReplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reply, err := c.DiscussionService.CreateReply(util.ParseUintOrZero(ctx.Param("id")), id.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, reply)
}

// @Summary Delete a reply
// @Tags discussions
// @Produce json
// @Param id path int true "Reply ID"
// @Success 200 {object} util.Response
// @Router /api/replies/{id} [delete]
func (c *DiscussionController) DeleteReply(ctx *gin.Context) {
	id, _ := middleware.GetIdentity(ctx)
	err := c.DiscussionService.DeleteReply(
		util.ParseUintOrZero(ctx.Param("id")),
		id.UserID,
		middleware.IsPrivileged(id),
	)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
