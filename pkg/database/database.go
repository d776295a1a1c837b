package database

import (
	"fmt"
	"log"

	"campus_lms_backend/internal/config"
	"campus_lms_backend/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.DBName,
		cfg.SSLMode,
		cfg.TimeZone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.CourseModule{},
		&model.Lesson{},
		&model.Cohort{},
		&model.CohortEnrollment{},
		&model.ModuleSchedule{},
		&model.Quiz{},
		&model.QuizQuestion{},
		&model.QuizOption{},
		&model.QuizAttempt{},
		&model.QuizAnswer{},
		&model.Assignment{},
		&model.AssignmentSubmission{},
		&model.DiscussionThread{},
		&model.DiscussionReply{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}
