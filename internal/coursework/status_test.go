package coursework

import (
	"testing"
	"time"

	"campus_lms_backend/internal/model"
)

func timePtr(t time.Time) *time.Time { return &t }
func boolPtr(b bool) *bool           { return &b }

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func pastDue() *time.Time   { return timePtr(now.Add(-72 * time.Hour)) }
func futureDue() *time.Time { return timePtr(now.Add(72 * time.Hour)) }

func gradedSubmission(score int) *model.AssignmentSubmission {
	return &model.AssignmentSubmission{
		SubmissionNumber: 1,
		SubmittedAt:      now.Add(-96 * time.Hour),
		Status:           model.SubmissionGraded,
		Score:            &score,
	}
}

func TestDeriveStatusStates(t *testing.T) {
	testCases := []struct {
		name       string
		assignment model.Assignment
		latest     *model.AssignmentSubmission
		wantState  State
		wantLabel  string
		wantBadge  BadgeVariant
		wantSubmit bool
	}{
		{
			name:       "no submission, open",
			assignment: model.Assignment{DueDate: futureDue(), MaxPoints: 100},
			wantState:  StateNotSubmitted,
			wantLabel:  "Not Submitted",
			wantBadge:  BadgeBlue,
			wantSubmit: true,
		},
		{
			name:       "no submission, no due date",
			assignment: model.Assignment{MaxPoints: 100},
			wantState:  StateNotSubmitted,
			wantLabel:  "Not Submitted",
			wantBadge:  BadgeBlue,
			wantSubmit: true,
		},
		{
			name:       "no submission, past due, late disallowed",
			assignment: model.Assignment{DueDate: pastDue(), MaxPoints: 100, AllowLateSubmissions: false},
			wantState:  StateClosed,
			wantLabel:  "Closed",
			wantBadge:  BadgeRed,
			wantSubmit: false,
		},
		{
			name:       "no submission, past due, late allowed",
			assignment: model.Assignment{DueDate: pastDue(), MaxPoints: 100, AllowLateSubmissions: true},
			wantState:  StateLate,
			wantLabel:  "Late",
			wantBadge:  BadgeOrange,
			wantSubmit: true,
		},
		{
			name:       "submitted on time, ungraded",
			assignment: model.Assignment{DueDate: futureDue(), MaxPoints: 100},
			latest: &model.AssignmentSubmission{
				SubmissionNumber: 1,
				SubmittedAt:      now.Add(-time.Hour),
				Status:           model.SubmissionSubmitted,
			},
			wantState: StateSubmitted,
			wantLabel: "Submitted",
			wantBadge: BadgeGreen,
		},
		{
			name:       "submitted late, ungraded",
			assignment: model.Assignment{DueDate: pastDue(), MaxPoints: 100, AllowLateSubmissions: true},
			latest: &model.AssignmentSubmission{
				SubmissionNumber: 1,
				SubmittedAt:      now.Add(-time.Hour),
				IsLate:           true,
				Status:           model.SubmissionSubmitted,
			},
			wantState: StateSubmittedLate,
			wantLabel: "Submitted (Late)",
			wantBadge: BadgeYellow,
		},
		{
			name:       "graded",
			assignment: model.Assignment{DueDate: pastDue(), MaxPoints: 100},
			latest:     gradedSubmission(85),
			wantState:  StateGraded,
			wantLabel:  "Graded: 85/100",
			wantBadge:  BadgeBlue,
		},
		{
			name:       "graded but score still null falls back to submitted",
			assignment: model.Assignment{DueDate: futureDue(), MaxPoints: 100},
			latest: &model.AssignmentSubmission{
				SubmissionNumber: 1,
				SubmittedAt:      now.Add(-time.Hour),
				Status:           model.SubmissionGraded,
			},
			wantState: StateSubmitted,
			wantLabel: "Submitted",
			wantBadge: BadgeGreen,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := DeriveStatus(tc.assignment, tc.latest, nil, now)
			if s.State != tc.wantState {
				t.Errorf("State = %s, want %s", s.State, tc.wantState)
			}
			if s.StatusLabel != tc.wantLabel {
				t.Errorf("StatusLabel = %q, want %q", s.StatusLabel, tc.wantLabel)
			}
			if s.BadgeVariant != tc.wantBadge {
				t.Errorf("BadgeVariant = %s, want %s", s.BadgeVariant, tc.wantBadge)
			}
			if s.CanSubmit != tc.wantSubmit {
				t.Errorf("CanSubmit = %v, want %v", s.CanSubmit, tc.wantSubmit)
			}
		})
	}
}

func TestDeriveStatusGradedBanding(t *testing.T) {
	testCases := []struct {
		name      string
		score     int
		maxPoints int
		wantPct   int
		wantBadge BadgeVariant
	}{
		{"90 percent is green", 72, 80, 90, BadgeGreen},
		{"70s are blue", 75, 100, 75, BadgeBlue},
		{"60s are yellow", 64, 100, 64, BadgeYellow},
		{"below 60 is red", 59, 100, 59, BadgeRed},
		{"full marks", 80, 80, 100, BadgeGreen},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := model.Assignment{DueDate: pastDue(), MaxPoints: tc.maxPoints}
			s := DeriveStatus(a, gradedSubmission(tc.score), nil, now)
			if s.ScorePercentage == nil || *s.ScorePercentage != tc.wantPct {
				t.Errorf("ScorePercentage = %v, want %d", s.ScorePercentage, tc.wantPct)
			}
			if s.BadgeVariant != tc.wantBadge {
				t.Errorf("BadgeVariant = %s, want %s", s.BadgeVariant, tc.wantBadge)
			}
		})
	}
}

func TestDeriveStatusResubmission(t *testing.T) {
	base := model.Assignment{DueDate: futureDue(), MaxPoints: 100, AllowResubmission: true, MaxSubmissions: 3}
	sub := func(n int) *model.AssignmentSubmission {
		return &model.AssignmentSubmission{SubmissionNumber: n, SubmittedAt: now.Add(-time.Hour), Status: model.SubmissionSubmitted}
	}

	t.Run("under the cap", func(t *testing.T) {
		s := DeriveStatus(base, sub(2), nil, now)
		if !s.CanSubmit || !s.CanResubmit {
			t.Errorf("canSubmit=%v canResubmit=%v, want both true", s.CanSubmit, s.CanResubmit)
		}
	})

	t.Run("at the cap", func(t *testing.T) {
		s := DeriveStatus(base, sub(3), nil, now)
		if s.CanSubmit || s.CanResubmit {
			t.Errorf("canSubmit=%v canResubmit=%v, want both false", s.CanSubmit, s.CanResubmit)
		}
	})

	t.Run("resubmission disabled", func(t *testing.T) {
		a := base
		a.AllowResubmission = false
		s := DeriveStatus(a, sub(1), nil, now)
		if s.CanSubmit || s.CanResubmit {
			t.Errorf("canSubmit=%v canResubmit=%v, want both false", s.CanSubmit, s.CanResubmit)
		}
	})
}

// The server-computed flag overrides local derivation entirely.
func TestDeriveStatusServerFlagOverride(t *testing.T) {
	closed := model.Assignment{DueDate: pastDue(), MaxPoints: 100, AllowLateSubmissions: false}
	open := model.Assignment{DueDate: futureDue(), MaxPoints: 100}

	t.Run("server says yes on a closed assignment", func(t *testing.T) {
		s := DeriveStatus(closed, nil, boolPtr(true), now)
		if !s.CanSubmit {
			t.Error("server flag true must win over closed derivation")
		}
		if s.CanResubmit {
			t.Error("no submission yet, canResubmit must stay false")
		}
	})

	t.Run("server says no on an open assignment", func(t *testing.T) {
		s := DeriveStatus(open, nil, boolPtr(false), now)
		if s.CanSubmit {
			t.Error("server flag false must win over open derivation")
		}
	})

	t.Run("server yes with prior submission enables resubmit", func(t *testing.T) {
		latest := &model.AssignmentSubmission{SubmissionNumber: 1, SubmittedAt: now, Status: model.SubmissionSubmitted}
		s := DeriveStatus(open, latest, boolPtr(true), now)
		if !s.CanSubmit || !s.CanResubmit {
			t.Errorf("canSubmit=%v canResubmit=%v, want both true", s.CanSubmit, s.CanResubmit)
		}
	})
}

func TestFormatDueDate(t *testing.T) {
	testCases := []struct {
		name       string
		due        *time.Time
		wantText   string
		wantUrgent bool
		wantPast   bool
	}{
		{"no due date", nil, "No due date", false, false},
		{"past due", timePtr(now.Add(-time.Hour * 30)), "March 9, 2026", false, true},
		{"due in a few hours", timePtr(now.Add(5 * time.Hour)), "Due in 5 hours", true, false},
		{"due tomorrow", timePtr(now.Add(36 * time.Hour)), "Due tomorrow", true, false},
		{"due next week", timePtr(now.Add(7 * 24 * time.Hour)), "March 17, 2026", false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			info := FormatDueDate(tc.due, now)
			if info.Text != tc.wantText {
				t.Errorf("Text = %q, want %q", info.Text, tc.wantText)
			}
			if info.IsUrgent != tc.wantUrgent {
				t.Errorf("IsUrgent = %v, want %v", info.IsUrgent, tc.wantUrgent)
			}
			if info.IsPast != tc.wantPast {
				t.Errorf("IsPast = %v, want %v", info.IsPast, tc.wantPast)
			}
		})
	}
}
