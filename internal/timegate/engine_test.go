package timegate

import (
	"context"
	"errors"
	"testing"
	"time"

	"campus_lms_backend/internal/model"
)

type scheduleKey struct {
	cohortID uint
	moduleID uint
}

type enrollmentKey struct {
	userID   uint
	courseID uint
}

// fakeStore is the in-memory Store used throughout these tests. failAll
// simulates a broken data store; the engine must fail closed, not error.
type fakeStore struct {
	schedules   map[scheduleKey]model.ModuleSchedule
	enrollments map[enrollmentKey]model.CohortEnrollment
	lessons     map[uint]LessonRef
	failAll     bool
}

var errStoreDown = errors.New("store down")

func (f *fakeStore) FindSchedule(ctx context.Context, cohortID, moduleID uint) (*model.ModuleSchedule, error) {
	if f.failAll {
		return nil, errStoreDown
	}
	if s, ok := f.schedules[scheduleKey{cohortID, moduleID}]; ok {
		return &s, nil
	}
	return nil, nil
}

func (f *fakeStore) FindEnrollment(ctx context.Context, userID, courseID uint) (*model.CohortEnrollment, error) {
	if f.failAll {
		return nil, errStoreDown
	}
	if e, ok := f.enrollments[enrollmentKey{userID, courseID}]; ok {
		return &e, nil
	}
	return nil, nil
}

func (f *fakeStore) FindLessonModule(ctx context.Context, lessonID uint) (*LessonRef, error) {
	if f.failAll {
		return nil, errStoreDown
	}
	if ref, ok := f.lessons[lessonID]; ok {
		return &ref, nil
	}
	return nil, nil
}

func (f *fakeStore) ListSchedules(ctx context.Context, cohortID uint) ([]model.ModuleSchedule, error) {
	if f.failAll {
		return nil, errStoreDown
	}
	var out []model.ModuleSchedule
	for k, s := range f.schedules {
		if k.cohortID == cohortID {
			out = append(out, s)
		}
	}
	return out, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func schedule(cohortID, moduleID uint, unlock time.Time, lock *time.Time) model.ModuleSchedule {
	return model.ModuleSchedule{CohortID: cohortID, ModuleID: moduleID, UnlockDate: unlock, LockDate: lock}
}

func TestModuleUnlocked(t *testing.T) {
	ctx := context.Background()
	unlock := date(2026, 3, 10)
	lock := date(2026, 3, 20)

	store := &fakeStore{schedules: map[scheduleKey]model.ModuleSchedule{
		{1, 11}: schedule(1, 11, unlock, &lock),
	}}

	testCases := []struct {
		name       string
		now        time.Time
		wantOpen   bool
		wantReason UnlockReason
	}{
		{"day before unlock", date(2026, 3, 9), false, ReasonLocked},
		{"late evening before unlock day", time.Date(2026, 3, 9, 23, 59, 0, 0, time.UTC), false, ReasonLocked},
		{"unlock day at midnight", date(2026, 3, 10), true, ReasonUnlocked},
		{"unlock day late evening", time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC), true, ReasonUnlocked},
		{"day before lock", date(2026, 3, 19), true, ReasonUnlocked},
		{"lock day", date(2026, 3, 20), false, ReasonLocked},
		{"after lock", date(2026, 4, 1), false, ReasonLocked},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, err := ModuleUnlocked(ctx, store, 11, 1, tc.now, false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if status.IsUnlocked != tc.wantOpen || status.Reason != tc.wantReason {
				t.Errorf("got %v/%s, want %v/%s", status.IsUnlocked, status.Reason, tc.wantOpen, tc.wantReason)
			}
		})
	}

	t.Run("unscheduled module is open", func(t *testing.T) {
		status, err := ModuleUnlocked(ctx, store, 99, 1, date(2026, 3, 1), false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !status.IsUnlocked || status.Reason != ReasonNotScheduled {
			t.Errorf("got %+v, want unlocked/not_scheduled", status)
		}
	})

	t.Run("teacher override skips lookup entirely", func(t *testing.T) {
		status, err := ModuleUnlocked(ctx, nil, 0, 0, date(2026, 3, 1), true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !status.IsUnlocked || status.Reason != ReasonTeacherOverride {
			t.Errorf("got %+v, want teacher_override", status)
		}
	})

	t.Run("store failure folds into not_scheduled", func(t *testing.T) {
		broken := &fakeStore{failAll: true}
		status, err := ModuleUnlocked(ctx, broken, 11, 1, date(2026, 3, 1), false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !status.IsUnlocked || status.Reason != ReasonNotScheduled {
			t.Errorf("got %+v, want not_scheduled", status)
		}
	})

	t.Run("caller misuse is an error", func(t *testing.T) {
		if _, err := ModuleUnlocked(ctx, nil, 11, 1, date(2026, 3, 1), false); !errors.Is(err, ErrNilStore) {
			t.Errorf("nil store: err = %v", err)
		}
		if _, err := ModuleUnlocked(ctx, store, 0, 1, date(2026, 3, 1), false); !errors.Is(err, ErrMissingModule) {
			t.Errorf("missing module: err = %v", err)
		}
		if _, err := ModuleUnlocked(ctx, store, 11, 0, date(2026, 3, 1), false); !errors.Is(err, ErrMissingCohort) {
			t.Errorf("missing cohort: err = %v", err)
		}
	})
}

func TestModuleUnlockedAcrossZones(t *testing.T) {
	ctx := context.Background()
	unlock := date(2026, 3, 10)
	lock := date(2026, 3, 20)
	store := &fakeStore{schedules: map[scheduleKey]model.ModuleSchedule{
		{1, 11}: schedule(1, 11, unlock, &lock),
	}}

	ahead := time.FixedZone("UTC+13", 13*3600)
	behind := time.FixedZone("UTC-10", -10*3600)

	// What matters is the clock's calendar date, not its offset from the
	// stored midnight-UTC schedule instant.
	testCases := []struct {
		name     string
		now      time.Time
		wantOpen bool
	}{
		{"unlock day just past local midnight, zone ahead of UTC", time.Date(2026, 3, 10, 0, 30, 0, 0, ahead), true},
		{"day before unlock, late local evening, zone behind UTC", time.Date(2026, 3, 9, 23, 0, 0, 0, behind), false},
		{"unlock day morning, zone behind UTC", time.Date(2026, 3, 10, 8, 0, 0, 0, behind), true},
		{"lock day local midnight, zone ahead of UTC", time.Date(2026, 3, 20, 0, 15, 0, 0, ahead), false},
		{"day before lock, late local evening, zone behind UTC", time.Date(2026, 3, 19, 23, 45, 0, 0, behind), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, err := ModuleUnlocked(ctx, store, 11, 1, tc.now, false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if status.IsUnlocked != tc.wantOpen {
				t.Errorf("got %v/%s, want unlocked=%v", status.IsUnlocked, status.Reason, tc.wantOpen)
			}
		})
	}
}

func TestUnlockDate(t *testing.T) {
	ctx := context.Background()
	unlock := date(2026, 5, 1)
	store := &fakeStore{schedules: map[scheduleKey]model.ModuleSchedule{
		{1, 11}: schedule(1, 11, unlock, nil),
	}}

	got, err := UnlockDate(ctx, store, 11, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || !got.Equal(unlock) {
		t.Errorf("UnlockDate = %v, want %v", got, unlock)
	}

	got, err = UnlockDate(ctx, store, 99, 1)
	if err != nil || got != nil {
		t.Errorf("unscheduled: got %v, %v, want nil, nil", got, err)
	}
}

func TestCanAccessLesson(t *testing.T) {
	ctx := context.Background()
	now := date(2026, 3, 15)
	unlockFuture := date(2026, 4, 1)

	store := &fakeStore{
		schedules: map[scheduleKey]model.ModuleSchedule{
			{1, 11}: schedule(1, 11, date(2026, 3, 1), nil),
			{1, 12}: schedule(1, 12, unlockFuture, nil),
		},
		enrollments: map[enrollmentKey]model.CohortEnrollment{
			{7, 100}: {UserID: 7, CohortID: 1, Status: model.EnrollmentActive},
			{8, 100}: {UserID: 8, CohortID: 1, Status: model.EnrollmentWithdrawn},
		},
		lessons: map[uint]LessonRef{
			21: {ModuleID: 11, CourseID: 100},
			22: {ModuleID: 12, CourseID: 100},
		},
	}

	testCases := []struct {
		name       string
		lessonID   uint
		userID     uint
		wantAccess bool
		wantReason AccessReason
	}{
		{"enrolled and unlocked", 21, 7, true, AccessAccessible},
		{"enrolled but module locked", 22, 7, false, AccessModuleLocked},
		{"withdrawn enrollment", 21, 8, false, AccessNotEnrolled},
		{"no enrollment", 21, 9, false, AccessNotEnrolled},
		{"unknown lesson", 99, 7, false, AccessNotEnrolled},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, err := CanAccessLesson(ctx, store, tc.lessonID, tc.userID, now, false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if status.CanAccess != tc.wantAccess || status.Reason != tc.wantReason {
				t.Errorf("got %v/%s, want %v/%s", status.CanAccess, status.Reason, tc.wantAccess, tc.wantReason)
			}
		})
	}

	t.Run("teacher override", func(t *testing.T) {
		status, err := CanAccessLesson(ctx, nil, 0, 0, now, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !status.CanAccess || status.Reason != AccessTeacherOverride {
			t.Errorf("got %+v, want teacher_override access", status)
		}
	})

	t.Run("store failure denies as not_enrolled", func(t *testing.T) {
		broken := &fakeStore{failAll: true}
		status, err := CanAccessLesson(ctx, broken, 21, 7, now, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status.CanAccess || status.Reason != AccessNotEnrolled {
			t.Errorf("got %+v, want denied/not_enrolled", status)
		}
	})
}

func TestCohortModuleStatuses(t *testing.T) {
	ctx := context.Background()
	now := date(2026, 3, 15)
	lock := date(2026, 3, 10)

	store := &fakeStore{schedules: map[scheduleKey]model.ModuleSchedule{
		{1, 11}: schedule(1, 11, date(2026, 3, 1), nil),
		{1, 12}: schedule(1, 12, date(2026, 4, 1), nil),
		{1, 13}: schedule(1, 13, date(2026, 3, 1), &lock),
		{2, 14}: schedule(2, 14, date(2026, 3, 1), nil),
	}}

	statuses, err := CohortModuleStatuses(ctx, store, 1, now, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(statuses) != 3 {
		t.Fatalf("got %d statuses, want 3 (other cohorts excluded)", len(statuses))
	}
	if !statuses[11].IsUnlocked || statuses[11].Reason != ReasonUnlocked {
		t.Errorf("module 11: %+v, want unlocked", statuses[11])
	}
	if statuses[12].IsUnlocked {
		t.Errorf("module 12: %+v, want locked before unlock date", statuses[12])
	}
	if statuses[13].IsUnlocked {
		t.Errorf("module 13: %+v, want locked past lock date", statuses[13])
	}

	t.Run("teacher override returns empty map", func(t *testing.T) {
		statuses, err := CohortModuleStatuses(ctx, store, 1, now, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(statuses) != 0 {
			t.Errorf("got %d statuses, want empty map", len(statuses))
		}
	})
}

func TestFormatUnlockDate(t *testing.T) {
	if got := FormatUnlockDate(nil); got != "Not scheduled" {
		t.Errorf("nil date: %q", got)
	}
	d := date(2026, 3, 5)
	if got := FormatUnlockDate(&d); got != "March 5, 2026" {
		t.Errorf("got %q, want %q", got, "March 5, 2026")
	}
}

func TestDaysUntilUnlock(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	testCases := []struct {
		name   string
		target *time.Time
		want   int
	}{
		{"nil date", nil, 0},
		{"same day", timePtr(date(2026, 3, 10)), 0},
		{"tomorrow regardless of time of day", timePtr(time.Date(2026, 3, 11, 1, 0, 0, 0, time.UTC)), 1},
		{"next week", timePtr(date(2026, 3, 17)), 7},
		{"already past", timePtr(date(2026, 3, 7)), -3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DaysUntilUnlock(tc.target, now); got != tc.want {
				t.Errorf("DaysUntilUnlock = %d, want %d", got, tc.want)
			}
		})
	}

	t.Run("clock in another zone counts calendar days", func(t *testing.T) {
		local := time.Date(2026, 3, 10, 23, 0, 0, 0, time.FixedZone("UTC+13", 13*3600))
		target := date(2026, 3, 11)
		if got := DaysUntilUnlock(&target, local); got != 1 {
			t.Errorf("DaysUntilUnlock = %d, want 1", got)
		}
	})
}

func timePtr(t time.Time) *time.Time { return &t }
