package util

import "errors"

var (
	ErrQuizNotFound         = errors.New("quiz not found")
	ErrQuizNotAvailable     = errors.New("quiz not available")
	ErrAttemptNotFound      = errors.New("attempt not found")
	ErrAttemptSubmitted     = errors.New("attempt already submitted")
	ErrAttemptExpired       = errors.New("attempt time limit exceeded")
	ErrAttemptInProgress    = errors.New("an attempt is already in progress")
	ErrLessonNotFound       = errors.New("lesson not found")
	ErrLessonLocked         = errors.New("lesson is locked for your cohort")
	ErrNotEnrolled          = errors.New("not enrolled in this course")
	ErrAlreadyEnrolled      = errors.New("already enrolled in this cohort")
	ErrAssignmentNotFound   = errors.New("assignment not found")
	ErrSubmissionNotAllowed = errors.New("submission not allowed")
	ErrSubmissionNotFound   = errors.New("submission not found")
	ErrScoreOutOfRange      = errors.New("score out of range")
	ErrPermissionDenied     = errors.New("permission denied")
)
