package repository

import (
	"campus_lms_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) CreateCourse(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) UpdateCourse(course *model.Course) error {
	return r.DB.Save(course).Error
}

func (r *CourseRepository) FindCourseByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.Preload("Modules", func(db *gorm.DB) *gorm.DB {
		return db.Order("course_modules.\"order\" ASC")
	}).First(&course, id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) ListCourses(page, limit int) ([]model.Course, int64, error) {
	var courses []model.Course
	var total int64

	if err := r.DB.Model(&model.Course{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.DB.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&courses).Error
	return courses, total, err
}

func (r *CourseRepository) CreateModule(m *model.CourseModule) error {
	return r.DB.Create(m).Error
}

func (r *CourseRepository) FindModuleByID(id uint) (*model.CourseModule, error) {
	var m model.CourseModule
	err := r.DB.Preload("Lessons", func(db *gorm.DB) *gorm.DB {
		return db.Order("lessons.\"order\" ASC")
	}).First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *CourseRepository) ListModules(courseID uint) ([]model.CourseModule, error) {
	var modules []model.CourseModule
	err := r.DB.Where("course_id = ?", courseID).
		Order("\"order\" ASC").
		Find(&modules).Error
	return modules, err
}

func (r *CourseRepository) CreateLesson(lesson *model.Lesson) error {
	return r.DB.Create(lesson).Error
}

func (r *CourseRepository) FindLessonByID(id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	if err := r.DB.First(&lesson, id).Error; err != nil {
		return nil, err
	}
	return &lesson, nil
}
