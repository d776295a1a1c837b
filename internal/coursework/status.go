// Package coursework derives display status and submission permissions
// for assignments from the assignment's policy fields plus the student's
// latest submission. Pure functions over snapshots; persistence and
// enrollment checks stay with the caller.
package coursework

import (
	"fmt"
	"math"
	"time"

	"campus_lms_backend/internal/model"
)

// State is the six-way classification behind the status badge.
type State string

const (
	StateNotSubmitted  State = "not_submitted"
	StateClosed        State = "closed"
	StateLate          State = "late"
	StateSubmitted     State = "submitted"
	StateSubmittedLate State = "submitted_late"
	StateGraded        State = "graded"
)

type BadgeVariant string

const (
	BadgeGreen  BadgeVariant = "green"
	BadgeBlue   BadgeVariant = "blue"
	BadgeYellow BadgeVariant = "yellow"
	BadgeOrange BadgeVariant = "orange"
	BadgeRed    BadgeVariant = "red"
)

type Status struct {
	State                   State        `json:"state"`
	IsPastDue               bool         `json:"isPastDue"`
	IsClosed                bool         `json:"isClosed"`
	IsLateButAllowed        bool         `json:"isLateButAllowed"`
	HasSubmission           bool         `json:"hasSubmission"`
	IsGraded                bool         `json:"isGraded"`
	CurrentSubmissionNumber int          `json:"currentSubmissionNumber"`
	CanSubmit               bool         `json:"canSubmit"`
	CanResubmit             bool         `json:"canResubmit"`
	ScorePercentage         *int         `json:"scorePercentage"`
	StatusLabel             string       `json:"statusLabel"`
	BadgeVariant            BadgeVariant `json:"badgeVariant"`
}

// DeriveStatus combines due-date, late and resubmission policy with the
// latest submission. serverCanSubmit, when non-nil, is an authoritative
// server-side decision that overrides the local can-submit derivation
// entirely (it may account for data this function never sees).
func DeriveStatus(a model.Assignment, latest *model.AssignmentSubmission, serverCanSubmit *bool, now time.Time) Status {
	s := Status{}

	s.IsPastDue = a.DueDate != nil && now.After(*a.DueDate)
	s.IsClosed = s.IsPastDue && !a.AllowLateSubmissions
	s.IsLateButAllowed = s.IsPastDue && a.AllowLateSubmissions

	if latest != nil {
		s.HasSubmission = true
		s.IsGraded = latest.Status == model.SubmissionGraded
		s.CurrentSubmissionNumber = latest.SubmissionNumber
	}

	if serverCanSubmit != nil {
		s.CanSubmit = *serverCanSubmit
		s.CanResubmit = s.CanSubmit && s.HasSubmission
	} else if !s.IsClosed {
		if !s.HasSubmission {
			s.CanSubmit = true
		} else if a.AllowResubmission && latest.SubmissionNumber < a.MaxSubmissions {
			s.CanSubmit = true
			s.CanResubmit = true
		}
	}

	if s.IsGraded && latest.Score != nil && a.MaxPoints > 0 {
		pct := int(math.Round(float64(*latest.Score) / float64(a.MaxPoints) * 100))
		s.ScorePercentage = &pct
	}

	s.State = classify(s, latest)
	s.StatusLabel, s.BadgeVariant = render(s.State, a, latest, s.ScorePercentage)
	return s
}

func classify(s Status, latest *model.AssignmentSubmission) State {
	if !s.HasSubmission {
		switch {
		case s.IsClosed:
			return StateClosed
		case s.IsLateButAllowed:
			return StateLate
		default:
			return StateNotSubmitted
		}
	}
	if s.IsGraded && latest.Score != nil {
		return StateGraded
	}
	if latest.IsLate {
		return StateSubmittedLate
	}
	return StateSubmitted
}

// render is a total mapping from state to label and badge color.
func render(state State, a model.Assignment, latest *model.AssignmentSubmission, pct *int) (string, BadgeVariant) {
	switch state {
	case StateClosed:
		return "Closed", BadgeRed
	case StateLate:
		return "Late", BadgeOrange
	case StateNotSubmitted:
		return "Not Submitted", BadgeBlue
	case StateGraded:
		label := fmt.Sprintf("Graded: %d/%d", *latest.Score, a.MaxPoints)
		p := 0
		if pct != nil {
			p = *pct
		}
		switch {
		case p >= 90:
			return label, BadgeGreen
		case p >= 70:
			return label, BadgeBlue
		case p >= 60:
			return label, BadgeYellow
		default:
			return label, BadgeRed
		}
	case StateSubmittedLate:
		return "Submitted (Late)", BadgeYellow
	case StateSubmitted:
		return "Submitted", BadgeGreen
	}
	return "Not Submitted", BadgeBlue
}

type DueDateInfo struct {
	Text     string `json:"text"`
	IsUrgent bool   `json:"isUrgent"`
	IsPast   bool   `json:"isPast"`
}

// FormatDueDate renders the due date with an urgency hint: within 24
// hours it counts down in hours, within 48 it says tomorrow, anything
// further (or already past) is just the date.
func FormatDueDate(dueDate *time.Time, now time.Time) DueDateInfo {
	if dueDate == nil {
		return DueDateInfo{Text: "No due date"}
	}
	if now.After(*dueDate) {
		return DueDateInfo{Text: dueDate.Format("January 2, 2006"), IsPast: true}
	}

	until := dueDate.Sub(now)
	switch {
	case until <= 24*time.Hour:
		hours := int(math.Ceil(until.Hours()))
		return DueDateInfo{Text: fmt.Sprintf("Due in %d hours", hours), IsUrgent: true}
	case until <= 48*time.Hour:
		return DueDateInfo{Text: "Due tomorrow", IsUrgent: true}
	default:
		return DueDateInfo{Text: dueDate.Format("January 2, 2006")}
	}
}
