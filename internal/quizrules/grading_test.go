package quizrules

import (
	"reflect"
	"testing"

	"campus_lms_backend/internal/model"
)

func mcQuestion(id string, points int, correctIdx int) model.QuizQuestion {
	opts := make([]model.QuizOption, 4)
	for i := range opts {
		opts[i] = model.QuizOption{Text: string(rune('a' + i)), Position: i, IsCorrect: i == correctIdx}
	}
	return model.QuizQuestion{
		UUIDBase: model.UUIDBase{ID: id},
		Type:     model.MultipleChoice,
		Points:   points,
		Options:  opts,
	}
}

func msQuestion(id string, points int, correctIdxs ...int) model.QuizQuestion {
	correct := make(map[int]bool, len(correctIdxs))
	for _, i := range correctIdxs {
		correct[i] = true
	}
	opts := make([]model.QuizOption, 4)
	for i := range opts {
		opts[i] = model.QuizOption{Text: string(rune('a' + i)), Position: i, IsCorrect: correct[i]}
	}
	return model.QuizQuestion{
		UUIDBase: model.UUIDBase{ID: id},
		Type:     model.MultipleSelect,
		Points:   points,
		Options:  opts,
	}
}

func TestGradeAttemptPerType(t *testing.T) {
	testCases := []struct {
		name        string
		question    model.QuizQuestion
		answer      Answer
		wantCorrect bool
	}{
		{"multiple_choice correct index", mcQuestion("q", 10, 2), ChoiceAnswer(2), true},
		{"multiple_choice wrong index", mcQuestion("q", 10, 2), ChoiceAnswer(1), false},
		{"multiple_choice wrong answer shape", mcQuestion("q", 10, 2), TextAnswer("2"), false},
		{
			"true_false matching",
			model.QuizQuestion{UUIDBase: model.UUIDBase{ID: "q"}, Type: model.TrueFalse, Points: 10, CorrectAnswer: "true"},
			BoolAnswer(true), true,
		},
		{
			"true_false mismatching",
			model.QuizQuestion{UUIDBase: model.UUIDBase{ID: "q"}, Type: model.TrueFalse, Points: 10, CorrectAnswer: "true"},
			BoolAnswer(false), false,
		},
		{
			"true_false canonical answer is case-insensitive",
			model.QuizQuestion{UUIDBase: model.UUIDBase{ID: "q"}, Type: model.TrueFalse, Points: 5, CorrectAnswer: " TRUE "},
			BoolAnswer(true), true,
		},
		{"multiple_select order-independent", msQuestion("q", 10, 0, 2), MultiAnswer{2, 0}, true},
		{"multiple_select missing one", msQuestion("q", 10, 0, 2), MultiAnswer{0}, false},
		{"multiple_select extra one", msQuestion("q", 10, 0, 2), MultiAnswer{0, 2, 3}, false},
		{"multiple_select empty", msQuestion("q", 10, 0, 2), MultiAnswer{}, false},
		{
			"short_answer trims and ignores case",
			model.QuizQuestion{UUIDBase: model.UUIDBase{ID: "q"}, Type: model.ShortAnswer, Points: 10, CorrectAnswer: "Photosynthesis"},
			TextAnswer("  photosynthesis "), true,
		},
		{
			"short_answer wrong text",
			model.QuizQuestion{UUIDBase: model.UUIDBase{ID: "q"}, Type: model.ShortAnswer, Points: 10, CorrectAnswer: "Photosynthesis"},
			TextAnswer("respiration"), false,
		},
		{
			"essay never auto-correct",
			model.QuizQuestion{UUIDBase: model.UUIDBase{ID: "q"}, Type: model.Essay, Points: 10},
			TextAnswer("a thoughtful essay"), false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			quiz := model.Quiz{PassingScore: 60}
			answers := map[string]Answer{tc.question.ID: tc.answer}
			result := GradeAttempt([]model.QuizQuestion{tc.question}, answers, quiz)

			qr := result.Questions[0]
			if qr.IsCorrect != tc.wantCorrect {
				t.Errorf("IsCorrect = %v, want %v", qr.IsCorrect, tc.wantCorrect)
			}
			wantPoints := 0
			if tc.wantCorrect {
				wantPoints = tc.question.Points
			}
			if qr.PointsEarned != wantPoints {
				t.Errorf("PointsEarned = %d, want %d", qr.PointsEarned, wantPoints)
			}
		})
	}
}

func TestGradeAttemptAggregation(t *testing.T) {
	quiz := model.Quiz{PassingScore: 70}
	questions := []model.QuizQuestion{
		mcQuestion("q1", 10, 0),
		mcQuestion("q2", 10, 1),
		mcQuestion("q3", 10, 2),
	}

	t.Run("two of three correct rounds to 67 and fails", func(t *testing.T) {
		answers := map[string]Answer{
			"q1": ChoiceAnswer(0),
			"q2": ChoiceAnswer(1),
			"q3": ChoiceAnswer(0),
		}
		result := GradeAttempt(questions, answers, quiz)
		if result.Score != 67 {
			t.Errorf("Score = %d, want 67", result.Score)
		}
		if result.Passed {
			t.Error("expected fail against passing score 70")
		}
		if result.Status != model.AutoGraded {
			t.Errorf("Status = %s, want auto_graded", result.Status)
		}
	})

	t.Run("unanswered question scores zero", func(t *testing.T) {
		answers := map[string]Answer{"q1": ChoiceAnswer(0)}
		result := GradeAttempt(questions, answers, quiz)
		if result.PointsEarned != 10 || result.Score != 33 {
			t.Errorf("earned=%d score=%d, want 10/33", result.PointsEarned, result.Score)
		}
	})

	t.Run("zero total points scores zero", func(t *testing.T) {
		free := []model.QuizQuestion{mcQuestion("q1", 0, 0)}
		result := GradeAttempt(free, map[string]Answer{"q1": ChoiceAnswer(0)}, quiz)
		if result.Score != 0 {
			t.Errorf("Score = %d, want 0 for zero total points", result.Score)
		}
	})

	t.Run("score stays within bounds", func(t *testing.T) {
		answers := map[string]Answer{
			"q1": ChoiceAnswer(0),
			"q2": ChoiceAnswer(1),
			"q3": ChoiceAnswer(2),
		}
		result := GradeAttempt(questions, answers, quiz)
		if result.Score < 0 || result.Score > 100 {
			t.Errorf("Score %d out of bounds", result.Score)
		}
		if result.Score != 100 || !result.Passed {
			t.Errorf("all correct: score=%d passed=%v", result.Score, result.Passed)
		}
	})
}

func TestGradeAttemptEssayForcesReview(t *testing.T) {
	quiz := model.Quiz{PassingScore: 50}
	questions := []model.QuizQuestion{
		mcQuestion("q1", 10, 0),
		{UUIDBase: model.UUIDBase{ID: "q2"}, Type: model.Essay, Points: 10},
	}
	answers := map[string]Answer{
		"q1": ChoiceAnswer(0),
		"q2": TextAnswer("essay body"),
	}

	result := GradeAttempt(questions, answers, quiz)

	if result.Status != model.NeedsReview {
		t.Errorf("Status = %s, want needs_review", result.Status)
	}
	// Essay contributes to the denominator but never earns points.
	if result.TotalPoints != 20 || result.PointsEarned != 10 {
		t.Errorf("earned/total = %d/%d, want 10/20", result.PointsEarned, result.TotalPoints)
	}
}

func TestGradeAttemptIdempotent(t *testing.T) {
	quiz := model.Quiz{PassingScore: 60}
	questions := []model.QuizQuestion{
		mcQuestion("q1", 10, 1),
		msQuestion("q2", 5, 1, 3),
		{UUIDBase: model.UUIDBase{ID: "q3"}, Type: model.ShortAnswer, Points: 5, CorrectAnswer: "stack"},
	}
	answers := map[string]Answer{
		"q1": ChoiceAnswer(1),
		"q2": MultiAnswer{3, 1},
		"q3": TextAnswer("Stack"),
	}

	first := GradeAttempt(questions, answers, quiz)
	second := GradeAttempt(questions, answers, quiz)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("grading is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
