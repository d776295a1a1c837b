// Package quizrules holds the quiz business rules: configuration
// validation, availability windows, attempt timing, question shuffling
// and auto grading. Everything here is pure; callers fetch rows, pass
// them in and persist what comes back.
package quizrules

import (
	"strings"

	"campus_lms_backend/internal/model"
)

type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ValidateQuiz checks every rule independently and accumulates all
// violations instead of failing fast.
func ValidateQuiz(quiz model.Quiz) ValidationResult {
	errs := []string{}

	if strings.TrimSpace(quiz.Title) == "" {
		errs = append(errs, "title is required")
	}
	if quiz.TimeLimit < 0 {
		errs = append(errs, "time limit must be a non-negative number of minutes")
	}
	if quiz.PassingScore < 0 || quiz.PassingScore > 100 {
		errs = append(errs, "passing score must be between 0 and 100")
	}
	if quiz.MaxAttempts < 0 {
		errs = append(errs, "max attempts must be non-negative (0 means unlimited)")
	}
	if quiz.AvailableFrom != nil && quiz.AvailableUntil != nil && !quiz.AvailableUntil.After(*quiz.AvailableFrom) {
		errs = append(errs, "available_until must be after available_from")
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
