package repository

import (
	"campus_lms_backend/internal/model"

	"gorm.io/gorm"
)

type AnalyticsRepository struct {
	DB *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

type QuizStats struct {
	QuizID         string  `json:"quizId"`
	SubmittedCount int64   `json:"submittedCount"`
	AverageScore   float64 `json:"averageScore"`
	PassRate       float64 `json:"passRate"`
	NeedsReview    int64   `json:"needsReview"`
}

func (r *AnalyticsRepository) GetQuizStats(quizID string) (*QuizStats, error) {
	stats := &QuizStats{QuizID: quizID}

	base := r.DB.Model(&model.QuizAttempt{}).
		Where("quiz_id = ? AND submitted_at IS NOT NULL", quizID)

	if err := base.Count(&stats.SubmittedCount).Error; err != nil {
		return nil, err
	}
	if stats.SubmittedCount == 0 {
		return stats, nil
	}

	row := struct {
		AvgScore float64
		Passed   int64
		Review   int64
	}{}
	err := r.DB.Model(&model.QuizAttempt{}).
		Where("quiz_id = ? AND submitted_at IS NOT NULL", quizID).
		Select("COALESCE(AVG(score), 0) AS avg_score, " +
			"COUNT(*) FILTER (WHERE passed) AS passed, " +
			"COUNT(*) FILTER (WHERE status = 'needs_review') AS review").
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	stats.AverageScore = row.AvgScore
	stats.PassRate = float64(row.Passed) / float64(stats.SubmittedCount) * 100
	stats.NeedsReview = row.Review
	return stats, nil
}

type CohortQuizRow struct {
	QuizID         string  `json:"quizId"`
	Title          string  `json:"title"`
	SubmittedCount int64   `json:"submittedCount"`
	AverageScore   float64 `json:"averageScore"`
}

// GetCohortQuizOverview aggregates submitted attempts of a cohort's
// members per quiz.
func (r *AnalyticsRepository) GetCohortQuizOverview(cohortID uint) ([]CohortQuizRow, error) {
	var rows []CohortQuizRow
	err := r.DB.Model(&model.QuizAttempt{}).
		Select("quiz_attempts.quiz_id AS quiz_id, quizzes.title AS title, "+
			"COUNT(*) AS submitted_count, COALESCE(AVG(quiz_attempts.score), 0) AS average_score").
		Joins("JOIN quizzes ON quizzes.id = quiz_attempts.quiz_id").
		Joins("JOIN cohort_enrollments ON cohort_enrollments.user_id = quiz_attempts.user_id").
		Where("cohort_enrollments.cohort_id = ? AND quiz_attempts.submitted_at IS NOT NULL", cohortID).
		Group("quiz_attempts.quiz_id, quizzes.title").
		Order("quizzes.title ASC").
		Scan(&rows).Error
	return rows, err
}

type AssignmentStatsRow struct {
	AssignmentID   uint    `json:"assignmentId"`
	SubmittedCount int64   `json:"submittedCount"`
	GradedCount    int64   `json:"gradedCount"`
	LateCount      int64   `json:"lateCount"`
	AverageScore   float64 `json:"averageScore"`
}

func (r *AnalyticsRepository) GetAssignmentStats(assignmentID uint) (*AssignmentStatsRow, error) {
	row := &AssignmentStatsRow{AssignmentID: assignmentID}
	err := r.DB.Model(&model.AssignmentSubmission{}).
		Where("assignment_id = ?", assignmentID).
		Select("COUNT(*) AS submitted_count, " +
			"COUNT(*) FILTER (WHERE status = 'graded') AS graded_count, " +
			"COUNT(*) FILTER (WHERE is_late) AS late_count, " +
			"COALESCE(AVG(score), 0) AS average_score").
		Scan(row).Error
	if err != nil {
		return nil, err
	}
	return row, nil
}
