// @title Campus LMS API
// @version 1.0
// @description Backend for the campus learning management system: course
// @description structure, cohort scheduling, quizzes and assignments.

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"

	"campus_lms_backend/internal/app"
	"campus_lms_backend/internal/config"
	"campus_lms_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	migrate := flag.Bool("migrate", false, "force migrations on startup, even in release mode")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Migrations complete, exiting")
		return
	}

	application.Run()
}
