package quizrules

import (
	"fmt"
	"time"

	"campus_lms_backend/internal/model"
)

type Availability struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// CheckAvailability decides whether a student may start a new attempt.
// Conditions are evaluated in precedence order and short-circuit on the
// first failure: published, attempt ceiling, window start, window end.
// Only submitted attempts count against the ceiling; an expired but
// unsubmitted attempt does not consume a slot.
func CheckAvailability(quiz model.Quiz, submittedAttempts int, now time.Time) Availability {
	if !quiz.IsPublished {
		return Availability{Reason: "This quiz is not published"}
	}
	if quiz.MaxAttempts > 0 && submittedAttempts >= quiz.MaxAttempts {
		return Availability{Reason: fmt.Sprintf("You have reached the maximum number of attempts (%d)", quiz.MaxAttempts)}
	}
	if quiz.AvailableFrom != nil && now.Before(*quiz.AvailableFrom) {
		return Availability{Reason: "This quiz is not available yet"}
	}
	if quiz.AvailableUntil != nil && now.After(*quiz.AvailableUntil) {
		return Availability{Reason: "This quiz is no longer available"}
	}
	return Availability{Available: true}
}
