package service

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"campus_lms_backend/internal/model"
	"campus_lms_backend/internal/quizrules"
	"campus_lms_backend/internal/repository"
	"campus_lms_backend/internal/util"
	"campus_lms_backend/pkg/monitoring"

	"gorm.io/gorm"
)

// QuizStore is the persistence surface the quiz service needs. The gorm
// repository satisfies it; tests substitute an in-memory fake.
type QuizStore interface {
	CreateQuiz(quiz *model.Quiz) error
	UpdateQuiz(quiz *model.Quiz) error
	DeleteQuiz(id string) error
	FindQuizByID(id string) (*model.Quiz, error)
	CreateQuestion(q *model.QuizQuestion) error
	DeleteQuestion(id string) error
	CountSubmittedAttempts(quizID string, userID uint) (int, error)
	FindOpenAttempt(quizID string, userID uint) (*model.QuizAttempt, error)
	CreateAttempt(attempt *model.QuizAttempt) error
	UpdateAttempt(attempt *model.QuizAttempt) error
	FindAttemptByID(id string) (*model.QuizAttempt, error)
	SubmitAttempt(attempt *model.QuizAttempt, answers []model.QuizAnswer) error
	ListAttemptsByUser(quizID string, userID uint) ([]model.QuizAttempt, error)
	ListAttemptsByQuiz(quizID string, page, limit int) ([]model.QuizAttempt, int64, error)
}

var _ QuizStore = (*repository.QuizRepository)(nil)

type QuizService struct {
	Repo QuizStore
}

func NewQuizService(repo QuizStore) *QuizService {
	return &QuizService{Repo: repo}
}

type QuizOptionRequest struct {
	Text      string `json:"text" binding:"required"`
	IsCorrect bool   `json:"isCorrect"`
}

type QuizQuestionRequest struct {
	ID            string              `json:"id"`
	Type          model.QuestionType  `json:"type" binding:"required"`
	Prompt        string              `json:"prompt" binding:"required"`
	Points        int                 `json:"points"`
	Order         int                 `json:"order"`
	CorrectAnswer string              `json:"correctAnswer"`
	Options       []QuizOptionRequest `json:"options"`
}

type QuizRequest struct {
	Title              *string                `json:"title"`
	Description        *string                `json:"description"`
	TimeLimit          *int                   `json:"timeLimit"`
	PassingScore       *int                   `json:"passingScore"`
	MaxAttempts        *int                   `json:"maxAttempts"`
	IsPublished        *bool                  `json:"isPublished"`
	AvailableFrom      *time.Time             `json:"availableFrom"`
	AvailableUntil     *time.Time             `json:"availableUntil"`
	RandomizeQuestions *bool                  `json:"randomizeQuestions"`
	Questions          *[]QuizQuestionRequest `json:"questions"`
}

func applyQuizRequest(quiz *model.Quiz, req QuizRequest) {
	if req.Title != nil {
		quiz.Title = *req.Title
	}
	if req.Description != nil {
		quiz.Description = *req.Description
	}
	if req.TimeLimit != nil {
		quiz.TimeLimit = *req.TimeLimit
	}
	if req.PassingScore != nil {
		quiz.PassingScore = *req.PassingScore
	}
	if req.MaxAttempts != nil {
		quiz.MaxAttempts = *req.MaxAttempts
	}
	if req.IsPublished != nil {
		quiz.IsPublished = *req.IsPublished
	}
	if req.AvailableFrom != nil {
		quiz.AvailableFrom = req.AvailableFrom
	}
	if req.AvailableUntil != nil {
		quiz.AvailableUntil = req.AvailableUntil
	}
	if req.RandomizeQuestions != nil {
		quiz.RandomizeQuestions = *req.RandomizeQuestions
	}
}

// TeacherOptionView re-exposes the correctness flag that the student
// serialization strips.
type TeacherOptionView struct {
	model.QuizOption
	IsCorrect bool `json:"isCorrect"`
}

type TeacherQuestionView struct {
	model.QuizQuestion
	CorrectAnswer string              `json:"correctAnswer"`
	Options       []TeacherOptionView `json:"options"`
}

// TeacherQuizView is the authoring view: the full quiz with answer keys
// included, so a fetch-then-edit round trip keeps correctness flags.
type TeacherQuizView struct {
	model.Quiz
	Questions []TeacherQuestionView `json:"questions"`
}

func teacherQuizView(quiz model.Quiz) *TeacherQuizView {
	view := &TeacherQuizView{Quiz: quiz}
	view.Quiz.Questions = nil
	for _, q := range quiz.Questions {
		qv := TeacherQuestionView{QuizQuestion: q, CorrectAnswer: q.CorrectAnswer}
		qv.QuizQuestion.Options = nil
		for _, opt := range q.Options {
			qv.Options = append(qv.Options, TeacherOptionView{QuizOption: opt, IsCorrect: opt.IsCorrect})
		}
		view.Questions = append(view.Questions, qv)
	}
	return view
}

// CreateQuiz validates the configuration with the quiz rules engine and
// persists the quiz with its questions. A non-nil ValidationResult means
// the input was rejected; err covers storage failures.
func (s *QuizService) CreateQuiz(lessonID uint, req QuizRequest) (*TeacherQuizView, *quizrules.ValidationResult, error) {
	quiz := &model.Quiz{LessonID: lessonID, PassingScore: 60}
	applyQuizRequest(quiz, req)

	if result := quizrules.ValidateQuiz(*quiz); !result.Valid {
		return nil, &result, nil
	}

	if err := s.Repo.CreateQuiz(quiz); err != nil {
		return nil, nil, err
	}

	if req.Questions != nil {
		for _, qReq := range *req.Questions {
			if err := s.createQuestion(quiz.ID, qReq); err != nil {
				return nil, nil, err
			}
		}
	}

	created, err := s.Repo.FindQuizByID(quiz.ID)
	if err != nil {
		return nil, nil, err
	}
	return teacherQuizView(*created), nil, nil
}

func (s *QuizService) createQuestion(quizID string, req QuizQuestionRequest) error {
	q := &model.QuizQuestion{
		QuizID:        quizID,
		Type:          req.Type,
		Prompt:        req.Prompt,
		Points:        req.Points,
		Order:         req.Order,
		CorrectAnswer: req.CorrectAnswer,
	}
	if q.Points <= 0 {
		q.Points = 1
	}
	for i, opt := range req.Options {
		q.Options = append(q.Options, model.QuizOption{
			Text:      opt.Text,
			IsCorrect: opt.IsCorrect,
			Position:  i,
		})
	}
	return s.Repo.CreateQuestion(q)
}

func (s *QuizService) UpdateQuiz(quizID string, req QuizRequest) (*TeacherQuizView, *quizrules.ValidationResult, error) {
	quiz, err := s.Repo.FindQuizByID(quizID)
	if err != nil {
		return nil, nil, util.ErrQuizNotFound
	}

	applyQuizRequest(quiz, req)
	if result := quizrules.ValidateQuiz(*quiz); !result.Valid {
		return nil, &result, nil
	}

	if err := s.Repo.UpdateQuiz(quiz); err != nil {
		return nil, nil, err
	}

	if req.Questions != nil {
		if err := s.replaceQuestions(quiz, *req.Questions); err != nil {
			return nil, nil, err
		}
	}

	updated, err := s.Repo.FindQuizByID(quiz.ID)
	if err != nil {
		return nil, nil, err
	}
	return teacherQuizView(*updated), nil, nil
}

func (s *QuizService) replaceQuestions(quiz *model.Quiz, reqs []QuizQuestionRequest) error {
	existing := make(map[string]bool, len(quiz.Questions))
	for _, q := range quiz.Questions {
		existing[q.ID] = true
	}

	kept := make(map[string]bool, len(reqs))
	for _, qReq := range reqs {
		if qReq.ID != "" && existing[qReq.ID] {
			if err := s.Repo.DeleteQuestion(qReq.ID); err != nil {
				return err
			}
			kept[qReq.ID] = true
		}
		if err := s.createQuestion(quiz.ID, qReq); err != nil {
			return err
		}
	}

	for id := range existing {
		if !kept[id] {
			if err := s.Repo.DeleteQuestion(id); err != nil {
				return err
			}
		}
	}
	return nil
}

// Validate runs the rules engine over a quiz definition without
// touching storage. Used by the authoring UI's dry-run check.
func (s *QuizService) Validate(req QuizRequest) quizrules.ValidationResult {
	quiz := model.Quiz{PassingScore: 60}
	applyQuizRequest(&quiz, req)
	return quizrules.ValidateQuiz(quiz)
}

// GetQuizForTeacher serves the authoring view with answer keys.
func (s *QuizService) GetQuizForTeacher(quizID string) (*TeacherQuizView, error) {
	quiz, err := s.Repo.FindQuizByID(quizID)
	if err != nil {
		return nil, util.ErrQuizNotFound
	}
	return teacherQuizView(*quiz), nil
}

func (s *QuizService) DeleteQuiz(quizID string) error {
	return s.Repo.DeleteQuiz(quizID)
}

// StudentQuizView is the quiz as served to a student: availability
// resolved, answers stripped (the model hides them from JSON), question
// order shuffled when the quiz asks for it.
type StudentQuizView struct {
	Quiz         model.Quiz             `json:"quiz"`
	Availability quizrules.Availability `json:"availability"`
	Attempts     int                    `json:"attemptsUsed"`
}

func (s *QuizService) GetQuizForStudent(quizID string, userID uint, now time.Time) (*StudentQuizView, error) {
	quiz, err := s.Repo.FindQuizByID(quizID)
	if err != nil {
		return nil, util.ErrQuizNotFound
	}

	attempts, err := s.Repo.CountSubmittedAttempts(quizID, userID)
	if err != nil {
		return nil, err
	}

	view := &StudentQuizView{
		Quiz:         *quiz,
		Availability: quizrules.CheckAvailability(*quiz, attempts, now),
		Attempts:     attempts,
	}
	if quiz.RandomizeQuestions {
		view.Quiz.Questions = quizrules.ShuffleQuestions(quiz.Questions, nil)
	}
	return view, nil
}

type AttemptView struct {
	Attempt          model.QuizAttempt `json:"attempt"`
	RemainingSeconds *int              `json:"remainingSeconds"`
}

// StartAttempt begins a new attempt, or resumes the open one if the
// student already has an attempt in flight. An open attempt whose time
// ran out is marked abandoned and a fresh attempt is started instead;
// only submitted attempts count against the ceiling.
func (s *QuizService) StartAttempt(quizID string, userID uint, now time.Time) (*AttemptView, error) {
	quiz, err := s.Repo.FindQuizByID(quizID)
	if err != nil {
		return nil, util.ErrQuizNotFound
	}

	if open, err := s.Repo.FindOpenAttempt(quizID, userID); err == nil && open != nil {
		if !quizrules.AttemptExpired(*open, *quiz, now) {
			return s.attemptView(open, quiz, now), nil
		}
		open.AbandonedAt = &now
		if err := s.Repo.UpdateAttempt(open); err != nil {
			return nil, err
		}
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	attempts, err := s.Repo.CountSubmittedAttempts(quizID, userID)
	if err != nil {
		return nil, err
	}
	if avail := quizrules.CheckAvailability(*quiz, attempts, now); !avail.Available {
		return nil, util.ErrQuizNotAvailable
	}

	attempt := &model.QuizAttempt{
		QuizID:    quizID,
		UserID:    userID,
		StartedAt: now,
	}
	if err := s.Repo.CreateAttempt(attempt); err != nil {
		return nil, err
	}
	return s.attemptView(attempt, quiz, now), nil
}

func (s *QuizService) attemptView(attempt *model.QuizAttempt, quiz *model.Quiz, now time.Time) *AttemptView {
	view := &AttemptView{Attempt: *attempt}
	if secs, ok := quizrules.RemainingSeconds(*attempt, *quiz, now); ok {
		view.RemainingSeconds = &secs
	}
	return view
}

func (s *QuizService) GetRemainingTime(attemptID string, userID uint, now time.Time) (*AttemptView, error) {
	attempt, err := s.Repo.FindAttemptByID(attemptID)
	if err != nil {
		return nil, util.ErrAttemptNotFound
	}
	if attempt.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	quiz, err := s.Repo.FindQuizByID(attempt.QuizID)
	if err != nil {
		return nil, util.ErrQuizNotFound
	}
	return s.attemptView(attempt, quiz, now), nil
}

type SubmitAttemptRequest struct {
	// Answers maps question id to the raw student answer; the shape
	// depends on the question type (index, index list, boolean or text).
	Answers map[string]json.RawMessage `json:"answers" binding:"required"`
}

type SubmitResult struct {
	Attempt model.QuizAttempt     `json:"attempt"`
	Grade   quizrules.GradeResult `json:"grade"`
}

// SubmitAttempt grades the attempt with the quiz rules engine and
// persists the outcome. An attempt past its time limit is rejected and
// stays unsubmitted, so it never counts against the attempt ceiling.
func (s *QuizService) SubmitAttempt(attemptID string, userID uint, req SubmitAttemptRequest, now time.Time) (*SubmitResult, error) {
	attempt, err := s.Repo.FindAttemptByID(attemptID)
	if err != nil {
		return nil, util.ErrAttemptNotFound
	}
	if attempt.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	if attempt.SubmittedAt != nil {
		return nil, util.ErrAttemptSubmitted
	}

	quiz, err := s.Repo.FindQuizByID(attempt.QuizID)
	if err != nil {
		return nil, util.ErrQuizNotFound
	}
	if quizrules.AttemptExpired(*attempt, *quiz, now) {
		// Close the attempt so the student can start over.
		attempt.AbandonedAt = &now
		if err := s.Repo.UpdateAttempt(attempt); err != nil {
			return nil, err
		}
		return nil, util.ErrAttemptExpired
	}

	answers := make(map[string]quizrules.Answer, len(req.Answers))
	rows := make([]model.QuizAnswer, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		raw, ok := req.Answers[q.ID]
		if !ok {
			continue
		}
		if ans := decodeAnswer(q.Type, raw); ans != nil {
			answers[q.ID] = ans
		}
		rows = append(rows, model.QuizAnswer{QuestionID: q.ID, Response: raw})
	}

	grade := quizrules.GradeAttempt(quiz.Questions, answers, *quiz)

	perQuestion := make(map[string]quizrules.QuestionResult, len(grade.Questions))
	for _, qr := range grade.Questions {
		perQuestion[qr.QuestionID] = qr
	}
	for i := range rows {
		if qr, ok := perQuestion[rows[i].QuestionID]; ok {
			rows[i].IsCorrect = qr.IsCorrect
			rows[i].PointsEarned = qr.PointsEarned
		}
	}

	attempt.SubmittedAt = &now
	attempt.Score = &grade.Score
	attempt.Passed = &grade.Passed
	attempt.Status = grade.Status

	if err := s.Repo.SubmitAttempt(attempt, rows); err != nil {
		return nil, err
	}
	monitoring.QuizAttemptsGraded.WithLabelValues(string(grade.Status)).Inc()

	return &SubmitResult{Attempt: *attempt, Grade: grade}, nil
}

// decodeAnswer maps the raw JSON answer onto the engine's closed answer
// set. Unparseable answers come back nil and grade as incorrect.
func decodeAnswer(qType model.QuestionType, raw json.RawMessage) quizrules.Answer {
	switch qType {
	case model.MultipleChoice:
		var idx int
		if err := json.Unmarshal(raw, &idx); err == nil {
			return quizrules.ChoiceAnswer(idx)
		}
		// index in string form is accepted too
		var str string
		if err := json.Unmarshal(raw, &str); err == nil {
			if idx, convErr := strconv.Atoi(strings.TrimSpace(str)); convErr == nil {
				return quizrules.ChoiceAnswer(idx)
			}
		}
	case model.MultipleSelect:
		var idxs []int
		if err := json.Unmarshal(raw, &idxs); err == nil {
			return quizrules.MultiAnswer(idxs)
		}
	case model.TrueFalse:
		var b bool
		if err := json.Unmarshal(raw, &b); err == nil {
			return quizrules.BoolAnswer(b)
		}
		var str string
		if err := json.Unmarshal(raw, &str); err == nil {
			return quizrules.BoolAnswer(strings.EqualFold(strings.TrimSpace(str), "true"))
		}
	case model.ShortAnswer, model.Essay:
		var str string
		if err := json.Unmarshal(raw, &str); err == nil {
			return quizrules.TextAnswer(str)
		}
	}
	return nil
}

func (s *QuizService) ListAttempts(quizID string, page, limit int) ([]model.QuizAttempt, int64, error) {
	return s.Repo.ListAttemptsByQuiz(quizID, page, limit)
}

func (s *QuizService) ListMyAttempts(quizID string, userID uint) ([]model.QuizAttempt, error) {
	return s.Repo.ListAttemptsByUser(quizID, userID)
}
