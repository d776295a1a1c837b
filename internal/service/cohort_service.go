package service

import (
	"errors"
	"time"

	"campus_lms_backend/internal/model"
	"campus_lms_backend/internal/repository"
	"campus_lms_backend/internal/util"

	"gorm.io/gorm"
)

type CohortService struct {
	Repo     *repository.CohortRepository
	UserRepo *repository.UserRepository
}

func NewCohortService(repo *repository.CohortRepository, userRepo *repository.UserRepository) *CohortService {
	return &CohortService{Repo: repo, UserRepo: userRepo}
}

type CohortRequest struct {
	Name      string     `json:"name" binding:"required"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

func (s *CohortService) CreateCohort(courseID uint, req CohortRequest) (*model.Cohort, error) {
	cohort := &model.Cohort{
		CourseID:  courseID,
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if err := s.Repo.CreateCohort(cohort); err != nil {
		return nil, err
	}
	return cohort, nil
}

func (s *CohortService) GetCohort(cohortID uint) (*model.Cohort, error) {
	return s.Repo.FindCohortByID(cohortID)
}

func (s *CohortService) ListCohorts(courseID uint) ([]model.Cohort, error) {
	return s.Repo.ListCohortsByCourse(courseID)
}

// Enroll adds a student to a cohort. A withdrawn enrollment is
// reactivated rather than duplicated.
func (s *CohortService) Enroll(cohortID, userID uint) (*model.CohortEnrollment, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		return nil, err
	}
	if _, err := s.Repo.FindCohortByID(cohortID); err != nil {
		return nil, err
	}

	existing, err := s.Repo.FindEnrollmentByCohort(userID, cohortID)
	if err == nil {
		if existing.Status == model.EnrollmentActive {
			return nil, util.ErrAlreadyEnrolled
		}
		existing.Status = model.EnrollmentActive
		if err := s.Repo.UpdateEnrollment(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrollment := &model.CohortEnrollment{
		UserID:   userID,
		CohortID: cohortID,
		Status:   model.EnrollmentActive,
	}
	if err := s.Repo.CreateEnrollment(enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (s *CohortService) SetEnrollmentStatus(cohortID, userID uint, status model.EnrollmentStatus) (*model.CohortEnrollment, error) {
	enrollment, err := s.Repo.FindEnrollmentByCohort(userID, cohortID)
	if err != nil {
		return nil, util.ErrNotEnrolled
	}
	enrollment.Status = status
	if err := s.Repo.UpdateEnrollment(enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (s *CohortService) ListEnrollments(cohortID uint) ([]model.CohortEnrollment, error) {
	return s.Repo.ListEnrollments(cohortID)
}

type ScheduleRequest struct {
	UnlockDate time.Time  `json:"unlockDate" binding:"required"`
	LockDate   *time.Time `json:"lockDate"`
}

// SetSchedule creates or replaces the unlock window for one module of a
// cohort. The lock date, when present, must come after the unlock date.
func (s *CohortService) SetSchedule(cohortID, moduleID uint, req ScheduleRequest) (*model.ModuleSchedule, error) {
	if req.LockDate != nil && !req.LockDate.After(req.UnlockDate) {
		return nil, errors.New("lock date must be after unlock date")
	}

	schedule := &model.ModuleSchedule{
		CohortID:   cohortID,
		ModuleID:   moduleID,
		UnlockDate: req.UnlockDate,
		LockDate:   req.LockDate,
	}
	if err := s.Repo.UpsertSchedule(schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *CohortService) ClearSchedule(cohortID, moduleID uint) error {
	return s.Repo.DeleteSchedule(cohortID, moduleID)
}
