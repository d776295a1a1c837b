package model

import (
	"encoding/json"
	"time"
)

type GradingStatus string

const (
	AutoGraded  GradingStatus = "auto_graded"
	NeedsReview GradingStatus = "needs_review"
)

// QuizAttempt is created when a student begins a quiz and becomes
// immutable once SubmittedAt is set.
type QuizAttempt struct {
	UUIDBase
	QuizID      string     `gorm:"index;type:varchar(36);not null" json:"quizId"`
	UserID      uint       `gorm:"index;not null" json:"userId"`
	StartedAt   time.Time  `gorm:"not null" json:"startedAt"`
	SubmittedAt *time.Time `json:"submittedAt"`
	// AbandonedAt is set when a timed attempt runs out before being
	// turned in. Abandoned attempts never count against the ceiling.
	AbandonedAt *time.Time    `json:"abandonedAt"`
	Score       *int          `json:"score"`
	Passed      *bool         `json:"passed"`
	Status      GradingStatus `gorm:"size:20" json:"status"`
	Answers     []QuizAnswer  `gorm:"foreignKey:AttemptID" json:"answers,omitempty"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

type QuizAnswer struct {
	BaseModel
	AttemptID  string `gorm:"index;type:varchar(36);not null" json:"attemptId"`
	QuestionID string `gorm:"type:varchar(36);not null" json:"questionId"`
	// Response is the raw student answer as submitted (choice index,
	// index list, boolean or free text depending on the question type).
	Response     json.RawMessage `gorm:"type:jsonb" json:"response"`
	IsCorrect    bool            `gorm:"default:false" json:"isCorrect"`
	PointsEarned int             `gorm:"default:0" json:"pointsEarned"`
}

func (QuizAnswer) TableName() string {
	return "quiz_answers"
}
