package repository

import (
	"campus_lms_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) CreateQuiz(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

func (r *QuizRepository) UpdateQuiz(quiz *model.Quiz) error {
	return r.DB.Save(quiz).Error
}

func (r *QuizRepository) DeleteQuiz(id string) error {
	return r.DB.Delete(&model.Quiz{}, "id = ?", id).Error
}

func (r *QuizRepository) FindQuizByID(id string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("quiz_questions.\"order\" ASC")
	}).Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("quiz_options.position ASC")
	}).First(&quiz, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) ListQuizzesByLesson(lessonID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Where("lesson_id = ?", lessonID).Order("created_at ASC").Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) CreateQuestion(q *model.QuizQuestion) error {
	return r.DB.Create(q).Error
}

func (r *QuizRepository) UpdateQuestion(q *model.QuizQuestion) error {
	return r.DB.Save(q).Error
}

func (r *QuizRepository) DeleteQuestion(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.QuizOption{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.QuizQuestion{}, "id = ?", id).Error
	})
}

// CountSubmittedAttempts only counts attempts that were actually turned
// in; abandoned or expired-but-unsubmitted attempts do not consume a
// slot against the quiz's attempt ceiling.
func (r *QuizRepository) CountSubmittedAttempts(quizID string, userID uint) (int, error) {
	var count int64
	err := r.DB.Model(&model.QuizAttempt{}).
		Where("quiz_id = ? AND user_id = ? AND submitted_at IS NOT NULL", quizID, userID).
		Count(&count).Error
	return int(count), err
}

func (r *QuizRepository) FindOpenAttempt(quizID string, userID uint) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := r.DB.Where("quiz_id = ? AND user_id = ? AND submitted_at IS NULL AND abandoned_at IS NULL", quizID, userID).
		First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *QuizRepository) UpdateAttempt(attempt *model.QuizAttempt) error {
	return r.DB.Save(attempt).Error
}

func (r *QuizRepository) CreateAttempt(attempt *model.QuizAttempt) error {
	return r.DB.Create(attempt).Error
}

func (r *QuizRepository) FindAttemptByID(id string) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := r.DB.Preload("Answers").First(&attempt, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

// SubmitAttempt persists the graded attempt and its per-question answers
// in one transaction.
func (r *QuizRepository) SubmitAttempt(attempt *model.QuizAttempt, answers []model.QuizAnswer) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(attempt).Error; err != nil {
			return err
		}
		for i := range answers {
			answers[i].AttemptID = attempt.ID
			if err := tx.Create(&answers[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *QuizRepository) ListAttemptsByUser(quizID string, userID uint) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.DB.Where("quiz_id = ? AND user_id = ?", quizID, userID).
		Order("started_at DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *QuizRepository) ListAttemptsByQuiz(quizID string, page, limit int) ([]model.QuizAttempt, int64, error) {
	var attempts []model.QuizAttempt
	var total int64

	base := r.DB.Model(&model.QuizAttempt{}).Where("quiz_id = ?", quizID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := base.Order("started_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&attempts).Error
	return attempts, total, err
}
