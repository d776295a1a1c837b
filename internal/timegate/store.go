// Package timegate decides when cohort members can see schedule-gated
// course content. It performs no I/O of its own: row lookups go through
// the narrow Store capability and every decision is a pure function of
// the rows it returns plus an explicit clock value.
package timegate

import (
	"context"
	"errors"

	"campus_lms_backend/internal/model"
)

// Programming errors: caller misuse is surfaced as an error, unlike data
// lookup failures which fold into fail-closed statuses.
var (
	ErrNilStore      = errors.New("timegate: store is required")
	ErrMissingModule = errors.New("timegate: module id is required")
	ErrMissingCohort = errors.New("timegate: cohort id is required")
	ErrMissingLesson = errors.New("timegate: lesson id is required")
	ErrMissingUser   = errors.New("timegate: user id is required")
)

// LessonRef locates a lesson's owning module and course.
type LessonRef struct {
	ModuleID uint
	CourseID uint
}

// Store is the lookup capability the engine needs. Implementations may
// signal "no row" either with a nil result or with an error; the engine
// treats both the same way (not found, fail closed).
type Store interface {
	FindSchedule(ctx context.Context, cohortID, moduleID uint) (*model.ModuleSchedule, error)
	FindEnrollment(ctx context.Context, userID, courseID uint) (*model.CohortEnrollment, error)
	FindLessonModule(ctx context.Context, lessonID uint) (*LessonRef, error)
	ListSchedules(ctx context.Context, cohortID uint) ([]model.ModuleSchedule, error)
}
