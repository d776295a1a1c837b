package quizrules

import (
	"time"

	"campus_lms_backend/internal/model"
)

func deadline(attempt model.QuizAttempt, quiz model.Quiz) time.Time {
	return attempt.StartedAt.Add(time.Duration(quiz.TimeLimit) * time.Minute)
}

// AttemptExpired reports whether a timed attempt has run out of time.
// Untimed quizzes (zero or absent limit) never expire.
func AttemptExpired(attempt model.QuizAttempt, quiz model.Quiz, now time.Time) bool {
	if quiz.TimeLimit <= 0 {
		return false
	}
	return now.After(deadline(attempt, quiz))
}

// RemainingSeconds returns the whole seconds left on a timed attempt,
// never negative. ok is false when the quiz is untimed.
func RemainingSeconds(attempt model.QuizAttempt, quiz model.Quiz, now time.Time) (seconds int, ok bool) {
	if quiz.TimeLimit <= 0 {
		return 0, false
	}
	rem := deadline(attempt, quiz).Sub(now)
	if rem < 0 {
		return 0, true
	}
	return int(rem / time.Second), true
}
