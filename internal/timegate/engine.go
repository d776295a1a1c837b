package timegate

import (
	"context"
	"math"
	"time"

	"campus_lms_backend/internal/model"
)

type UnlockReason string

const (
	ReasonTeacherOverride UnlockReason = "teacher_override"
	ReasonNotScheduled    UnlockReason = "not_scheduled"
	ReasonLocked          UnlockReason = "locked"
	ReasonUnlocked        UnlockReason = "unlocked"
)

type AccessReason string

const (
	AccessTeacherOverride AccessReason = "teacher_override"
	AccessNotEnrolled     AccessReason = "not_enrolled"
	AccessModuleLocked    AccessReason = "module_locked"
	AccessAccessible      AccessReason = "accessible"
)

type ModuleUnlockStatus struct {
	IsUnlocked bool         `json:"isUnlocked"`
	Reason     UnlockReason `json:"reason"`
	UnlockDate *time.Time   `json:"unlockDate,omitempty"`
	LockDate   *time.Time   `json:"lockDate,omitempty"`
}

type LessonAccessStatus struct {
	CanAccess bool         `json:"canAccess"`
	Reason    AccessReason `json:"reason"`
}

// dateOnly maps t to midnight UTC of its own calendar date. Schedule
// columns are DATE-typed, so every comparison here happens at day
// granularity; normalizing both sides this way keeps day boundaries
// stable when schedule rows and the clock carry different zones.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func classify(s model.ModuleSchedule, now time.Time) ModuleUnlockStatus {
	status := ModuleUnlockStatus{
		UnlockDate: &s.UnlockDate,
		LockDate:   s.LockDate,
	}

	today := dateOnly(now)
	if today.Before(dateOnly(s.UnlockDate)) {
		status.Reason = ReasonLocked
		return status
	}
	if s.LockDate != nil && !today.Before(dateOnly(*s.LockDate)) {
		status.Reason = ReasonLocked
		return status
	}
	status.IsUnlocked = true
	status.Reason = ReasonUnlocked
	return status
}

// ModuleUnlocked reports whether a module is open for a cohort on the
// given day. A module with no schedule row counts as unlocked
// (not_scheduled); lock and unlock boundaries are date-based.
func ModuleUnlocked(ctx context.Context, store Store, moduleID, cohortID uint, now time.Time, teacherOverride bool) (ModuleUnlockStatus, error) {
	if teacherOverride {
		return ModuleUnlockStatus{IsUnlocked: true, Reason: ReasonTeacherOverride}, nil
	}
	if store == nil {
		return ModuleUnlockStatus{}, ErrNilStore
	}
	if moduleID == 0 {
		return ModuleUnlockStatus{}, ErrMissingModule
	}
	if cohortID == 0 {
		return ModuleUnlockStatus{}, ErrMissingCohort
	}

	schedule, err := store.FindSchedule(ctx, cohortID, moduleID)
	if err != nil || schedule == nil {
		return ModuleUnlockStatus{IsUnlocked: true, Reason: ReasonNotScheduled}, nil
	}
	return classify(*schedule, now), nil
}

// UnlockDate returns the scheduled unlock date, or nil when the module
// has no schedule row for the cohort.
func UnlockDate(ctx context.Context, store Store, moduleID, cohortID uint) (*time.Time, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	if moduleID == 0 {
		return nil, ErrMissingModule
	}
	if cohortID == 0 {
		return nil, ErrMissingCohort
	}

	schedule, err := store.FindSchedule(ctx, cohortID, moduleID)
	if err != nil || schedule == nil {
		return nil, nil
	}
	d := schedule.UnlockDate
	return &d, nil
}

// CanAccessLesson resolves lesson -> module -> the user's active cohort
// enrollment, then defers to ModuleUnlocked. Any lookup miss denies
// access as not_enrolled (fail closed).
func CanAccessLesson(ctx context.Context, store Store, lessonID, userID uint, now time.Time, teacherOverride bool) (LessonAccessStatus, error) {
	if teacherOverride {
		return LessonAccessStatus{CanAccess: true, Reason: AccessTeacherOverride}, nil
	}
	if store == nil {
		return LessonAccessStatus{}, ErrNilStore
	}
	if lessonID == 0 {
		return LessonAccessStatus{}, ErrMissingLesson
	}
	if userID == 0 {
		return LessonAccessStatus{}, ErrMissingUser
	}

	ref, err := store.FindLessonModule(ctx, lessonID)
	if err != nil || ref == nil {
		return LessonAccessStatus{Reason: AccessNotEnrolled}, nil
	}

	enrollment, err := store.FindEnrollment(ctx, userID, ref.CourseID)
	if err != nil || enrollment == nil || enrollment.Status != model.EnrollmentActive {
		return LessonAccessStatus{Reason: AccessNotEnrolled}, nil
	}

	unlock, err := ModuleUnlocked(ctx, store, ref.ModuleID, enrollment.CohortID, now, false)
	if err != nil {
		return LessonAccessStatus{}, err
	}
	if !unlock.IsUnlocked {
		return LessonAccessStatus{Reason: AccessModuleLocked}, nil
	}
	return LessonAccessStatus{CanAccess: true, Reason: AccessAccessible}, nil
}

// CohortModuleStatuses classifies every scheduled module of a cohort in
// one ListSchedules call. With teacherOverride the map is empty and the
// caller treats missing entries as unlocked.
func CohortModuleStatuses(ctx context.Context, store Store, cohortID uint, now time.Time, teacherOverride bool) (map[uint]ModuleUnlockStatus, error) {
	if teacherOverride {
		return map[uint]ModuleUnlockStatus{}, nil
	}
	if store == nil {
		return nil, ErrNilStore
	}
	if cohortID == 0 {
		return nil, ErrMissingCohort
	}

	statuses := make(map[uint]ModuleUnlockStatus)
	schedules, err := store.ListSchedules(ctx, cohortID)
	if err != nil {
		return statuses, nil
	}
	for _, s := range schedules {
		statuses[s.ModuleID] = classify(s, now)
	}
	return statuses, nil
}

// FormatUnlockDate renders a long-form date for display.
func FormatUnlockDate(date *time.Time) string {
	if date == nil {
		return "Not scheduled"
	}
	return date.Format("January 2, 2006")
}

// DaysUntilUnlock is the signed day count from today to the target date,
// both normalized to midnight; 0 when no date is scheduled.
func DaysUntilUnlock(date *time.Time, now time.Time) int {
	if date == nil {
		return 0
	}
	diff := dateOnly(*date).Sub(dateOnly(now))
	return int(math.Ceil(diff.Hours() / 24))
}
