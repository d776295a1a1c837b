package service

import (
	"context"
	"time"

	"campus_lms_backend/internal/model"
	"campus_lms_backend/internal/repository"
	"campus_lms_backend/internal/timegate"
	"campus_lms_backend/internal/util"
)

type CourseService struct {
	CourseRepo *repository.CourseRepository
	CohortRepo *repository.CohortRepository
}

func NewCourseService(courseRepo *repository.CourseRepository, cohortRepo *repository.CohortRepository) *CourseService {
	return &CourseService{CourseRepo: courseRepo, CohortRepo: cohortRepo}
}

type CourseRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsPublished *bool   `json:"isPublished"`
}

func (s *CourseService) CreateCourse(teacherID uint, req CourseRequest) (*model.Course, error) {
	course := &model.Course{TeacherID: teacherID}
	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.IsPublished != nil {
		course.IsPublished = *req.IsPublished
	}
	if err := s.CourseRepo.CreateCourse(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) UpdateCourse(courseID uint, req CourseRequest) (*model.Course, error) {
	course, err := s.CourseRepo.FindCourseByID(courseID)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.IsPublished != nil {
		course.IsPublished = *req.IsPublished
	}
	if err := s.CourseRepo.UpdateCourse(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) GetCourse(courseID uint) (*model.Course, error) {
	return s.CourseRepo.FindCourseByID(courseID)
}

func (s *CourseService) ListCourses(page, limit int) ([]model.Course, int64, error) {
	return s.CourseRepo.ListCourses(page, limit)
}

type ModuleRequest struct {
	Title string `json:"title" binding:"required"`
	Order int    `json:"order"`
}

func (s *CourseService) CreateModule(courseID uint, req ModuleRequest) (*model.CourseModule, error) {
	m := &model.CourseModule{CourseID: courseID, Title: req.Title, Order: req.Order}
	if err := s.CourseRepo.CreateModule(m); err != nil {
		return nil, err
	}
	return m, nil
}

type LessonRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
	Order   int    `json:"order"`
}

func (s *CourseService) CreateLesson(moduleID uint, req LessonRequest) (*model.Lesson, error) {
	lesson := &model.Lesson{ModuleID: moduleID, Title: req.Title, Content: req.Content, Order: req.Order}
	if err := s.CourseRepo.CreateLesson(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

// ModuleView pairs a module with its unlock status for one cohort,
// rendered with the human-readable unlock hints the clients show.
type ModuleView struct {
	Module          model.CourseModule          `json:"module"`
	Status          timegate.ModuleUnlockStatus `json:"status"`
	UnlockDateText  string                      `json:"unlockDateText"`
	DaysUntilUnlock int                         `json:"daysUntilUnlock"`
}

// ListModulesForCohort resolves every module of the cohort's course
// against the cohort schedule in one pass. Modules without a schedule
// row come back unlocked.
func (s *CourseService) ListModulesForCohort(ctx context.Context, cohortID uint, teacherOverride bool, now time.Time) ([]ModuleView, error) {
	cohort, err := s.CohortRepo.FindCohortByID(cohortID)
	if err != nil {
		return nil, err
	}
	modules, err := s.CourseRepo.ListModules(cohort.CourseID)
	if err != nil {
		return nil, err
	}

	statuses, err := timegate.CohortModuleStatuses(ctx, s.CohortRepo, cohortID, now, teacherOverride)
	if err != nil {
		return nil, err
	}

	views := make([]ModuleView, 0, len(modules))
	for _, m := range modules {
		status, ok := statuses[m.ID]
		if !ok {
			reason := timegate.ReasonNotScheduled
			if teacherOverride {
				reason = timegate.ReasonTeacherOverride
			}
			status = timegate.ModuleUnlockStatus{IsUnlocked: true, Reason: reason}
		}
		views = append(views, ModuleView{
			Module:          m,
			Status:          status,
			UnlockDateText:  timegate.FormatUnlockDate(status.UnlockDate),
			DaysUntilUnlock: timegate.DaysUntilUnlock(status.UnlockDate, now),
		})
	}
	return views, nil
}

func (s *CourseService) GetModuleStatus(ctx context.Context, moduleID, cohortID uint, teacherOverride bool, now time.Time) (*timegate.ModuleUnlockStatus, error) {
	status, err := timegate.ModuleUnlocked(ctx, s.CohortRepo, moduleID, cohortID, now, teacherOverride)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// GetLesson gates lesson content behind enrollment and the module
// schedule. Teachers and admins pass the gate unconditionally.
func (s *CourseService) GetLesson(ctx context.Context, lessonID, userID uint, teacherOverride bool, now time.Time) (*model.Lesson, error) {
	access, err := timegate.CanAccessLesson(ctx, s.CohortRepo, lessonID, userID, now, teacherOverride)
	if err != nil {
		return nil, err
	}
	if !access.CanAccess {
		switch access.Reason {
		case timegate.AccessNotEnrolled:
			return nil, util.ErrNotEnrolled
		default:
			return nil, util.ErrLessonLocked
		}
	}

	lesson, err := s.CourseRepo.FindLessonByID(lessonID)
	if err != nil {
		return nil, util.ErrLessonNotFound
	}
	return lesson, nil
}
