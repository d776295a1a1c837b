package quizrules

import (
	"testing"
	"time"

	"campus_lms_backend/internal/model"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestValidateQuiz(t *testing.T) {
	from := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	until := from.Add(72 * time.Hour)

	testCases := []struct {
		name       string
		quiz       model.Quiz
		wantValid  bool
		wantErrors int
	}{
		{
			name:      "valid minimal quiz",
			quiz:      model.Quiz{Title: "Week 1 Checkpoint", PassingScore: 60},
			wantValid: true,
		},
		{
			name: "valid with window",
			quiz: model.Quiz{
				Title:          "Final",
				PassingScore:   70,
				TimeLimit:      90,
				MaxAttempts:    2,
				AvailableFrom:  timePtr(from),
				AvailableUntil: timePtr(until),
			},
			wantValid: true,
		},
		{
			name:       "blank title",
			quiz:       model.Quiz{Title: "   ", PassingScore: 60},
			wantValid:  false,
			wantErrors: 1,
		},
		{
			name:       "negative time limit",
			quiz:       model.Quiz{Title: "Quiz", TimeLimit: -5, PassingScore: 60},
			wantValid:  false,
			wantErrors: 1,
		},
		{
			name:       "passing score above 100",
			quiz:       model.Quiz{Title: "Quiz", PassingScore: 101},
			wantValid:  false,
			wantErrors: 1,
		},
		{
			name:       "negative max attempts",
			quiz:       model.Quiz{Title: "Quiz", PassingScore: 60, MaxAttempts: -1},
			wantValid:  false,
			wantErrors: 1,
		},
		{
			name: "window inverted",
			quiz: model.Quiz{
				Title:          "Quiz",
				PassingScore:   60,
				AvailableFrom:  timePtr(until),
				AvailableUntil: timePtr(from),
			},
			wantValid:  false,
			wantErrors: 1,
		},
		{
			name: "window equal bounds",
			quiz: model.Quiz{
				Title:          "Quiz",
				PassingScore:   60,
				AvailableFrom:  timePtr(from),
				AvailableUntil: timePtr(from),
			},
			wantValid:  false,
			wantErrors: 1,
		},
		{
			name: "all rules violated at once",
			quiz: model.Quiz{
				Title:          "",
				TimeLimit:      -1,
				PassingScore:   -10,
				MaxAttempts:    -2,
				AvailableFrom:  timePtr(until),
				AvailableUntil: timePtr(from),
			},
			wantValid:  false,
			wantErrors: 5,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := ValidateQuiz(tc.quiz)
			if result.Valid != tc.wantValid {
				t.Errorf("Valid = %v, want %v (errors: %v)", result.Valid, tc.wantValid, result.Errors)
			}
			if !tc.wantValid && len(result.Errors) != tc.wantErrors {
				t.Errorf("got %d errors %v, want %d", len(result.Errors), result.Errors, tc.wantErrors)
			}
			if tc.wantValid && len(result.Errors) != 0 {
				t.Errorf("valid quiz reported errors: %v", result.Errors)
			}
		})
	}
}
