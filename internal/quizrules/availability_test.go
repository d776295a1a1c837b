package quizrules

import (
	"testing"
	"time"

	"campus_lms_backend/internal/model"
)

func TestCheckAvailability(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-48 * time.Hour)
	future := now.Add(48 * time.Hour)

	testCases := []struct {
		name          string
		quiz          model.Quiz
		attempts      int
		wantAvailable bool
		wantReason    string
	}{
		{
			name:          "published, unlimited attempts, no window",
			quiz:          model.Quiz{IsPublished: true},
			wantAvailable: true,
		},
		{
			name:       "unpublished",
			quiz:       model.Quiz{IsPublished: false},
			wantReason: "This quiz is not published",
		},
		{
			name:       "max attempts reached",
			quiz:       model.Quiz{IsPublished: true, MaxAttempts: 2},
			attempts:   2,
			wantReason: "You have reached the maximum number of attempts (2)",
		},
		{
			name:          "attempts remaining",
			quiz:          model.Quiz{IsPublished: true, MaxAttempts: 3},
			attempts:      2,
			wantAvailable: true,
		},
		{
			name:          "zero max attempts is unlimited",
			quiz:          model.Quiz{IsPublished: true, MaxAttempts: 0},
			attempts:      50,
			wantAvailable: true,
		},
		{
			name:       "before window opens",
			quiz:       model.Quiz{IsPublished: true, AvailableFrom: timePtr(future)},
			wantReason: "This quiz is not available yet",
		},
		{
			name:       "after window closes",
			quiz:       model.Quiz{IsPublished: true, AvailableUntil: timePtr(past)},
			wantReason: "This quiz is no longer available",
		},
		{
			name:          "inside window",
			quiz:          model.Quiz{IsPublished: true, AvailableFrom: timePtr(past), AvailableUntil: timePtr(future)},
			wantAvailable: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := CheckAvailability(tc.quiz, tc.attempts, now)
			if got.Available != tc.wantAvailable {
				t.Errorf("Available = %v, want %v", got.Available, tc.wantAvailable)
			}
			if got.Reason != tc.wantReason {
				t.Errorf("Reason = %q, want %q", got.Reason, tc.wantReason)
			}
		})
	}
}

// Precedence: the first failing condition wins, regardless of anything
// set after it.
func TestCheckAvailabilityPrecedence(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)

	t.Run("unpublished beats everything", func(t *testing.T) {
		quiz := model.Quiz{IsPublished: false, MaxAttempts: 1, AvailableUntil: timePtr(past)}
		got := CheckAvailability(quiz, 5, now)
		if got.Available || got.Reason != "This quiz is not published" {
			t.Errorf("got %+v, want unpublished reason", got)
		}
	})

	t.Run("attempt ceiling beats window", func(t *testing.T) {
		quiz := model.Quiz{IsPublished: true, MaxAttempts: 1, AvailableUntil: timePtr(past)}
		got := CheckAvailability(quiz, 1, now)
		if got.Reason != "You have reached the maximum number of attempts (1)" {
			t.Errorf("got reason %q, want attempt ceiling", got.Reason)
		}
	})

	t.Run("expired window unavailable even with attempts left", func(t *testing.T) {
		quiz := model.Quiz{IsPublished: true, MaxAttempts: 5, AvailableUntil: timePtr(past)}
		got := CheckAvailability(quiz, 0, now)
		if got.Available || got.Reason != "This quiz is no longer available" {
			t.Errorf("got %+v, want window-closed reason", got)
		}
	})
}
