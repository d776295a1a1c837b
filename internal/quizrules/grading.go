package quizrules

import (
	"math"
	"sort"
	"strings"

	"campus_lms_backend/internal/model"
)

// Answer is the closed set of student answer shapes. Each grading branch
// type-asserts the variant that matches the question type; a mismatched
// or missing answer is simply incorrect, never an error.
type Answer interface {
	isAnswer()
}

// ChoiceAnswer is the selected option index of a multiple_choice question.
type ChoiceAnswer int

// MultiAnswer is the selected option index set of a multiple_select question.
type MultiAnswer []int

// BoolAnswer answers a true_false question.
type BoolAnswer bool

// TextAnswer answers a short_answer or essay question.
type TextAnswer string

func (ChoiceAnswer) isAnswer() {}
func (MultiAnswer) isAnswer()  {}
func (BoolAnswer) isAnswer()   {}
func (TextAnswer) isAnswer()   {}

type QuestionResult struct {
	QuestionID     string `json:"questionId"`
	IsCorrect      bool   `json:"isCorrect"`
	PointsEarned   int    `json:"pointsEarned"`
	PointsPossible int    `json:"pointsPossible"`
}

type GradeResult struct {
	Questions    []QuestionResult    `json:"questions"`
	PointsEarned int                 `json:"pointsEarned"`
	TotalPoints  int                 `json:"totalPoints"`
	Score        int                 `json:"score"`
	Passed       bool                `json:"passed"`
	Status       model.GradingStatus `json:"status"`
}

// GradeAttempt scores a submitted attempt against the known-correct
// answers. Points are all-or-nothing per question, the aggregate score is
// a rounded percentage (0 when no points were at stake) and any essay
// question downgrades the result to needs_review.
func GradeAttempt(questions []model.QuizQuestion, answers map[string]Answer, quiz model.Quiz) GradeResult {
	result := GradeResult{
		Questions: make([]QuestionResult, 0, len(questions)),
		Status:    model.AutoGraded,
	}

	for _, q := range questions {
		correct := gradeQuestion(q, answers[q.ID])
		if q.Type == model.Essay {
			result.Status = model.NeedsReview
			correct = false
		}

		qr := QuestionResult{QuestionID: q.ID, PointsPossible: q.Points}
		if correct {
			qr.IsCorrect = true
			qr.PointsEarned = q.Points
			result.PointsEarned += q.Points
		}
		result.TotalPoints += q.Points
		result.Questions = append(result.Questions, qr)
	}

	if result.TotalPoints > 0 {
		result.Score = int(math.Round(float64(result.PointsEarned) / float64(result.TotalPoints) * 100))
	}
	result.Passed = result.Score >= quiz.PassingScore
	return result
}

func gradeQuestion(q model.QuizQuestion, ans Answer) bool {
	if ans == nil {
		return false
	}

	switch q.Type {
	case model.MultipleChoice:
		choice, ok := ans.(ChoiceAnswer)
		if !ok {
			return false
		}
		for i, opt := range q.Options {
			if opt.IsCorrect {
				return int(choice) == i
			}
		}
		return false

	case model.TrueFalse:
		b, ok := ans.(BoolAnswer)
		if !ok {
			return false
		}
		want := strings.EqualFold(strings.TrimSpace(q.CorrectAnswer), "true")
		return bool(b) == want

	case model.MultipleSelect:
		multi, ok := ans.(MultiAnswer)
		if !ok {
			return false
		}
		var want []int
		for i, opt := range q.Options {
			if opt.IsCorrect {
				want = append(want, i)
			}
		}
		got := append([]int(nil), multi...)
		sort.Ints(got)
		sort.Ints(want)
		if len(got) != len(want) {
			return false
		}
		for i := range want {
			if got[i] != want[i] {
				return false
			}
		}
		return true

	case model.ShortAnswer:
		text, ok := ans.(TextAnswer)
		if !ok {
			return false
		}
		return strings.EqualFold(strings.TrimSpace(string(text)), strings.TrimSpace(q.CorrectAnswer))

	case model.Essay:
		// Never machine-gradable.
		return false
	}

	return false
}
