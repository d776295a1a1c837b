package service

import (
	"context"
	"errors"
	"math"
	"time"

	"campus_lms_backend/internal/coursework"
	"campus_lms_backend/internal/model"
	"campus_lms_backend/internal/repository"
	"campus_lms_backend/internal/util"

	"gorm.io/gorm"
)

type AssignmentService struct {
	Repo       *repository.AssignmentRepository
	CohortRepo *repository.CohortRepository
}

func NewAssignmentService(repo *repository.AssignmentRepository, cohortRepo *repository.CohortRepository) *AssignmentService {
	return &AssignmentService{Repo: repo, CohortRepo: cohortRepo}
}

type AssignmentRequest struct {
	Title                *string    `json:"title"`
	Description          *string    `json:"description"`
	DueDate              *time.Time `json:"dueDate"`
	MaxPoints            *int       `json:"maxPoints"`
	AllowLateSubmissions *bool      `json:"allowLateSubmissions"`
	LatePenaltyPercent   *int       `json:"latePenaltyPercent"`
	AllowResubmission    *bool      `json:"allowResubmission"`
	MaxSubmissions       *int       `json:"maxSubmissions"`
}

func applyAssignmentRequest(a *model.Assignment, req AssignmentRequest) {
	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Description != nil {
		a.Description = *req.Description
	}
	if req.DueDate != nil {
		a.DueDate = req.DueDate
	}
	if req.MaxPoints != nil {
		a.MaxPoints = *req.MaxPoints
	}
	if req.AllowLateSubmissions != nil {
		a.AllowLateSubmissions = *req.AllowLateSubmissions
	}
	if req.LatePenaltyPercent != nil {
		a.LatePenaltyPercent = *req.LatePenaltyPercent
	}
	if req.AllowResubmission != nil {
		a.AllowResubmission = *req.AllowResubmission
	}
	if req.MaxSubmissions != nil {
		a.MaxSubmissions = *req.MaxSubmissions
	}
}

func (s *AssignmentService) CreateAssignment(lessonID uint, req AssignmentRequest) (*model.Assignment, error) {
	a := &model.Assignment{LessonID: lessonID, MaxPoints: 100, MaxSubmissions: 1}
	applyAssignmentRequest(a, req)
	if err := s.Repo.CreateAssignment(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AssignmentService) UpdateAssignment(assignmentID uint, req AssignmentRequest) (*model.Assignment, error) {
	a, err := s.Repo.FindAssignmentByID(assignmentID)
	if err != nil {
		return nil, util.ErrAssignmentNotFound
	}
	applyAssignmentRequest(a, req)
	if err := s.Repo.UpdateAssignment(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AssignmentService) ListAssignments(lessonID uint) ([]model.Assignment, error) {
	return s.Repo.ListAssignmentsByLesson(lessonID)
}

// AssignmentView is the assignment as a student sees it: the policy
// fields plus the derived status badge and due-date rendering.
type AssignmentView struct {
	Assignment model.Assignment            `json:"assignment"`
	Status     coursework.Status           `json:"status"`
	DueDate    coursework.DueDateInfo      `json:"dueDate"`
	Latest     *model.AssignmentSubmission `json:"latestSubmission,omitempty"`
}

// GetAssignmentForStudent derives the submission status for one
// student. Enrollment in the assignment's course feeds the derivation
// as the authoritative can-submit flag: a student who is not actively
// enrolled cannot submit no matter what the local policy says.
func (s *AssignmentService) GetAssignmentForStudent(ctx context.Context, assignmentID, userID uint, now time.Time) (*AssignmentView, error) {
	a, err := s.Repo.FindAssignmentByID(assignmentID)
	if err != nil {
		return nil, util.ErrAssignmentNotFound
	}

	latest, err := s.Repo.FindLatestSubmission(assignmentID, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	serverCanSubmit := s.enrollmentGate(ctx, a, latest, userID, now)
	view := &AssignmentView{
		Assignment: *a,
		Status:     coursework.DeriveStatus(*a, latest, serverCanSubmit, now),
		DueDate:    coursework.FormatDueDate(a.DueDate, now),
		Latest:     latest,
	}
	return view, nil
}

// enrollmentGate resolves the server-side can-submit decision. When the
// lesson-to-course chain cannot be resolved the gate stays nil and the
// local policy derivation stands alone.
func (s *AssignmentService) enrollmentGate(ctx context.Context, a *model.Assignment, latest *model.AssignmentSubmission, userID uint, now time.Time) *bool {
	ref, err := s.CohortRepo.FindLessonModule(ctx, a.LessonID)
	if err != nil {
		return nil
	}
	enrolled := false
	if _, err := s.CohortRepo.FindEnrollment(ctx, userID, ref.CourseID); err == nil {
		enrolled = true
	}
	if !enrolled {
		denied := false
		return &denied
	}

	// Enrolled: defer to the same policy the local derivation applies.
	local := coursework.DeriveStatus(*a, latest, nil, now)
	return &local.CanSubmit
}

type SubmitAssignmentRequest struct {
	Content string `json:"content" binding:"required"`
}

// Submit records a new submission when the status engine allows one.
// The submission number continues the student's sequence and late
// submissions are flagged at write time.
func (s *AssignmentService) Submit(ctx context.Context, assignmentID, userID uint, req SubmitAssignmentRequest, now time.Time) (*model.AssignmentSubmission, error) {
	a, err := s.Repo.FindAssignmentByID(assignmentID)
	if err != nil {
		return nil, util.ErrAssignmentNotFound
	}

	latest, err := s.Repo.FindLatestSubmission(assignmentID, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	status := coursework.DeriveStatus(*a, latest, s.enrollmentGate(ctx, a, latest, userID, now), now)
	if !status.CanSubmit {
		return nil, util.ErrSubmissionNotAllowed
	}

	sub := &model.AssignmentSubmission{
		AssignmentID:     assignmentID,
		UserID:           userID,
		SubmissionNumber: status.CurrentSubmissionNumber + 1,
		Content:          req.Content,
		SubmittedAt:      now,
		IsLate:           a.DueDate != nil && now.After(*a.DueDate),
		Status:           model.SubmissionSubmitted,
	}
	if err := s.Repo.CreateSubmission(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

type GradeSubmissionRequest struct {
	Score    *int   `json:"score" binding:"required"`
	Feedback string `json:"feedback"`
}

// GradeSubmission records a grade, applying the late penalty when the
// submission was late and the assignment carries one.
func (s *AssignmentService) GradeSubmission(submissionID uint, req GradeSubmissionRequest) (*model.AssignmentSubmission, error) {
	sub, err := s.Repo.FindSubmissionByID(submissionID)
	if err != nil {
		return nil, util.ErrSubmissionNotFound
	}
	a, err := s.Repo.FindAssignmentByID(sub.AssignmentID)
	if err != nil {
		return nil, util.ErrAssignmentNotFound
	}

	score := *req.Score
	if score < 0 || score > a.MaxPoints {
		return nil, util.ErrScoreOutOfRange
	}
	if sub.IsLate && a.LatePenaltyPercent > 0 {
		score = int(math.Round(float64(score) * float64(100-a.LatePenaltyPercent) / 100))
	}

	sub.Score = &score
	sub.Feedback = req.Feedback
	sub.Status = model.SubmissionGraded
	if err := s.Repo.UpdateSubmission(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *AssignmentService) ListSubmissions(assignmentID uint, page, limit int) ([]model.AssignmentSubmission, int64, error) {
	return s.Repo.ListSubmissions(assignmentID, page, limit)
}
