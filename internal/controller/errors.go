package controller

import (
	"errors"
	"net/http"

	"campus_lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError maps domain sentinel errors onto the JSON envelope.
// Anything unrecognized is logged and hidden behind a 500.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrQuizNotFound),
		errors.Is(err, util.ErrAttemptNotFound),
		errors.Is(err, util.ErrLessonNotFound),
		errors.Is(err, util.ErrAssignmentNotFound),
		errors.Is(err, util.ErrSubmissionNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrQuizNotAvailable),
		errors.Is(err, util.ErrLessonLocked),
		errors.Is(err, util.ErrNotEnrolled),
		errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrAttemptSubmitted),
		errors.Is(err, util.ErrAlreadyEnrolled):
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrAttemptExpired),
		errors.Is(err, util.ErrAttemptInProgress),
		errors.Is(err, util.ErrSubmissionNotAllowed):
		util.Error(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, util.ErrScoreOutOfRange):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
