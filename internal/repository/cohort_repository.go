package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"campus_lms_backend/internal/model"
	"campus_lms_backend/internal/timegate"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const scheduleCacheTTL = time.Minute

// CohortRepository owns cohorts, enrollments and module schedules. It
// implements timegate.Store, so the gating engine reads through it.
// Schedule lists are cached in redis briefly since every gated page
// load reads them; writes drop the cached entry.
type CohortRepository struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewCohortRepository(db *gorm.DB, rdb *redis.Client) *CohortRepository {
	return &CohortRepository{DB: db, Redis: rdb}
}

func scheduleCacheKey(cohortID uint) string {
	return fmt.Sprintf("schedules:cohort:%d", cohortID)
}

func (r *CohortRepository) dropScheduleCache(cohortID uint) {
	if r.Redis != nil {
		r.Redis.Del(context.Background(), scheduleCacheKey(cohortID))
	}
}

var _ timegate.Store = (*CohortRepository)(nil)

func (r *CohortRepository) CreateCohort(cohort *model.Cohort) error {
	return r.DB.Create(cohort).Error
}

func (r *CohortRepository) FindCohortByID(id uint) (*model.Cohort, error) {
	var cohort model.Cohort
	if err := r.DB.First(&cohort, id).Error; err != nil {
		return nil, err
	}
	return &cohort, nil
}

func (r *CohortRepository) ListCohortsByCourse(courseID uint) ([]model.Cohort, error) {
	var cohorts []model.Cohort
	err := r.DB.Where("course_id = ?", courseID).Order("start_date ASC").Find(&cohorts).Error
	return cohorts, err
}

func (r *CohortRepository) CreateEnrollment(e *model.CohortEnrollment) error {
	return r.DB.Create(e).Error
}

func (r *CohortRepository) UpdateEnrollment(e *model.CohortEnrollment) error {
	return r.DB.Save(e).Error
}

func (r *CohortRepository) FindEnrollmentByCohort(userID, cohortID uint) (*model.CohortEnrollment, error) {
	var e model.CohortEnrollment
	err := r.DB.Where("user_id = ? AND cohort_id = ?", userID, cohortID).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *CohortRepository) ListEnrollments(cohortID uint) ([]model.CohortEnrollment, error) {
	var enrollments []model.CohortEnrollment
	err := r.DB.Where("cohort_id = ?", cohortID).Find(&enrollments).Error
	return enrollments, err
}

func (r *CohortRepository) UpsertSchedule(s *model.ModuleSchedule) error {
	var existing model.ModuleSchedule
	err := r.DB.Where("cohort_id = ? AND module_id = ?", s.CohortID, s.ModuleID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := r.DB.Create(s).Error; err != nil {
			return err
		}
		r.dropScheduleCache(s.CohortID)
		return nil
	}
	if err != nil {
		return err
	}
	existing.UnlockDate = s.UnlockDate
	existing.LockDate = s.LockDate
	if err := r.DB.Save(&existing).Error; err != nil {
		return err
	}
	*s = existing
	r.dropScheduleCache(s.CohortID)
	return nil
}

func (r *CohortRepository) DeleteSchedule(cohortID, moduleID uint) error {
	err := r.DB.Where("cohort_id = ? AND module_id = ?", cohortID, moduleID).
		Delete(&model.ModuleSchedule{}).Error
	if err != nil {
		return err
	}
	r.dropScheduleCache(cohortID)
	return nil
}

// timegate.Store

func (r *CohortRepository) FindSchedule(ctx context.Context, cohortID, moduleID uint) (*model.ModuleSchedule, error) {
	var s model.ModuleSchedule
	err := r.DB.WithContext(ctx).
		Where("cohort_id = ? AND module_id = ?", cohortID, moduleID).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// FindEnrollment resolves the user's active enrollment for a course by
// joining through cohorts.
func (r *CohortRepository) FindEnrollment(ctx context.Context, userID, courseID uint) (*model.CohortEnrollment, error) {
	var e model.CohortEnrollment
	err := r.DB.WithContext(ctx).
		Joins("JOIN cohorts ON cohorts.id = cohort_enrollments.cohort_id").
		Where("cohort_enrollments.user_id = ? AND cohorts.course_id = ? AND cohort_enrollments.status = ?",
			userID, courseID, model.EnrollmentActive).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *CohortRepository) FindLessonModule(ctx context.Context, lessonID uint) (*timegate.LessonRef, error) {
	var ref timegate.LessonRef
	err := r.DB.WithContext(ctx).
		Model(&model.Lesson{}).
		Select("lessons.module_id AS module_id, course_modules.course_id AS course_id").
		Joins("JOIN course_modules ON course_modules.id = lessons.module_id").
		Where("lessons.id = ?", lessonID).
		Scan(&ref).Error
	if err != nil {
		return nil, err
	}
	if ref.ModuleID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &ref, nil
}

func (r *CohortRepository) ListSchedules(ctx context.Context, cohortID uint) ([]model.ModuleSchedule, error) {
	key := scheduleCacheKey(cohortID)
	if r.Redis != nil {
		if raw, err := r.Redis.Get(ctx, key).Bytes(); err == nil {
			var cached []model.ModuleSchedule
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
		}
	}

	var schedules []model.ModuleSchedule
	err := r.DB.WithContext(ctx).
		Where("cohort_id = ?", cohortID).
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}

	if r.Redis != nil {
		if raw, err := json.Marshal(schedules); err == nil {
			r.Redis.Set(ctx, key, raw, scheduleCacheTTL)
		}
	}
	return schedules, nil
}
