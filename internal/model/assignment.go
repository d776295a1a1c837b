package model

import "time"

type Assignment struct {
	BaseModel
	LessonID    uint       `gorm:"index" json:"lessonId"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	MaxPoints   int        `gorm:"default:100" json:"maxPoints"`
	// Late policy
	AllowLateSubmissions bool `gorm:"default:false" json:"allowLateSubmissions"`
	LatePenaltyPercent   int  `gorm:"default:0" json:"latePenaltyPercent"`
	// Resubmission policy
	AllowResubmission bool `gorm:"default:false" json:"allowResubmission"`
	MaxSubmissions    int  `gorm:"default:1" json:"maxSubmissions"`
}

func (Assignment) TableName() string {
	return "assignments"
}

type SubmissionStatus string

const (
	SubmissionSubmitted SubmissionStatus = "submitted"
	SubmissionGraded    SubmissionStatus = "graded"
)

type AssignmentSubmission struct {
	BaseModel
	AssignmentID uint `gorm:"index:idx_submission_assignment_user;not null" json:"assignmentId"`
	UserID       uint `gorm:"index:idx_submission_assignment_user;not null" json:"userId"`
	// SubmissionNumber is 1-based and increases on each resubmission.
	SubmissionNumber int              `gorm:"default:1" json:"submissionNumber"`
	Content          string           `gorm:"type:text" json:"content"`
	SubmittedAt      time.Time        `gorm:"not null" json:"submittedAt"`
	IsLate           bool             `gorm:"default:false" json:"isLate"`
	Status           SubmissionStatus `gorm:"size:20;default:'submitted'" json:"status"`
	Score            *int             `json:"score"`
	Feedback         string           `gorm:"type:text" json:"feedback"`
}

func (AssignmentSubmission) TableName() string {
	return "assignment_submissions"
}
