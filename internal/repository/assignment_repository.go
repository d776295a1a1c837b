package repository

import (
	"campus_lms_backend/internal/model"

	"gorm.io/gorm"
)

type AssignmentRepository struct {
	DB *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

func (r *AssignmentRepository) CreateAssignment(a *model.Assignment) error {
	return r.DB.Create(a).Error
}

func (r *AssignmentRepository) UpdateAssignment(a *model.Assignment) error {
	return r.DB.Save(a).Error
}

func (r *AssignmentRepository) FindAssignmentByID(id uint) (*model.Assignment, error) {
	var a model.Assignment
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AssignmentRepository) ListAssignmentsByLesson(lessonID uint) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.DB.Where("lesson_id = ?", lessonID).Order("due_date ASC").Find(&assignments).Error
	return assignments, err
}

// FindLatestSubmission returns the highest-numbered submission, or nil
// when the student has not submitted yet.
func (r *AssignmentRepository) FindLatestSubmission(assignmentID, userID uint) (*model.AssignmentSubmission, error) {
	var sub model.AssignmentSubmission
	err := r.DB.Where("assignment_id = ? AND user_id = ?", assignmentID, userID).
		Order("submission_number DESC").
		First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *AssignmentRepository) CreateSubmission(sub *model.AssignmentSubmission) error {
	return r.DB.Create(sub).Error
}

func (r *AssignmentRepository) UpdateSubmission(sub *model.AssignmentSubmission) error {
	return r.DB.Save(sub).Error
}

func (r *AssignmentRepository) FindSubmissionByID(id uint) (*model.AssignmentSubmission, error) {
	var sub model.AssignmentSubmission
	if err := r.DB.First(&sub, id).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *AssignmentRepository) ListSubmissions(assignmentID uint, page, limit int) ([]model.AssignmentSubmission, int64, error) {
	var subs []model.AssignmentSubmission
	var total int64

	base := r.DB.Model(&model.AssignmentSubmission{}).Where("assignment_id = ?", assignmentID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := base.Order("submitted_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&subs).Error
	return subs, total, err
}
