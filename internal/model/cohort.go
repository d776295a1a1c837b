package model

import "time"

type Cohort struct {
	BaseModel
	CourseID  uint       `gorm:"index;not null" json:"courseId"`
	Name      string     `gorm:"size:255;not null" json:"name"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

func (Cohort) TableName() string {
	return "cohorts"
}

type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentPaused    EnrollmentStatus = "paused"
	EnrollmentWithdrawn EnrollmentStatus = "withdrawn"
)

type CohortEnrollment struct {
	BaseModel
	UserID   uint             `gorm:"index:idx_enrollment_user_cohort;not null" json:"userId"`
	CohortID uint             `gorm:"index:idx_enrollment_user_cohort;not null" json:"cohortId"`
	Status   EnrollmentStatus `gorm:"size:20;default:'active'" json:"status"`
}

func (CohortEnrollment) TableName() string {
	return "cohort_enrollments"
}

// ModuleSchedule holds a cohort's unlock calendar for one module. The
// unlock/lock columns are DATE-typed: gating is day-granular, never
// time-of-day-granular.
type ModuleSchedule struct {
	BaseModel
	CohortID   uint       `gorm:"uniqueIndex:idx_schedule_cohort_module;not null" json:"cohortId"`
	ModuleID   uint       `gorm:"uniqueIndex:idx_schedule_cohort_module;not null" json:"moduleId"`
	UnlockDate time.Time  `gorm:"type:date;not null" json:"unlockDate"`
	LockDate   *time.Time `gorm:"type:date" json:"lockDate"`
}

func (ModuleSchedule) TableName() string {
	return "module_schedules"
}
