package quizrules

import (
	"testing"
	"time"

	"campus_lms_backend/internal/model"
)

func TestAttemptExpired(t *testing.T) {
	started := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	attempt := model.QuizAttempt{StartedAt: started}

	testCases := []struct {
		name      string
		timeLimit int
		now       time.Time
		want      bool
	}{
		{"untimed never expires", 0, started.Add(1000 * time.Hour), false},
		{"within limit", 30, started.Add(29 * time.Minute), false},
		{"exactly at limit", 30, started.Add(30 * time.Minute), false},
		{"past limit", 30, started.Add(30*time.Minute + time.Second), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			quiz := model.Quiz{TimeLimit: tc.timeLimit}
			if got := AttemptExpired(attempt, quiz, tc.now); got != tc.want {
				t.Errorf("AttemptExpired = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRemainingSeconds(t *testing.T) {
	started := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	attempt := model.QuizAttempt{StartedAt: started}

	t.Run("untimed has no remaining time", func(t *testing.T) {
		_, ok := RemainingSeconds(attempt, model.Quiz{TimeLimit: 0}, started)
		if ok {
			t.Error("expected ok=false for untimed quiz")
		}
	})

	t.Run("counts down in whole seconds", func(t *testing.T) {
		quiz := model.Quiz{TimeLimit: 10}
		now := started.Add(4*time.Minute + 30*time.Second + 400*time.Millisecond)
		secs, ok := RemainingSeconds(attempt, quiz, now)
		if !ok {
			t.Fatal("expected ok=true")
		}
		// 5m29.6s remaining, floored
		if secs != 329 {
			t.Errorf("remaining = %d, want 329", secs)
		}
	})

	t.Run("never negative", func(t *testing.T) {
		quiz := model.Quiz{TimeLimit: 10}
		secs, ok := RemainingSeconds(attempt, quiz, started.Add(time.Hour))
		if !ok || secs != 0 {
			t.Errorf("remaining = %d ok=%v, want 0 true", secs, ok)
		}
	})
}
