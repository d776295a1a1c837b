package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campus_lms_backend/internal/config"
	"campus_lms_backend/internal/controller"
	"campus_lms_backend/internal/repository"
	"campus_lms_backend/internal/service"
	"campus_lms_backend/pkg/configwatcher"
	"campus_lms_backend/pkg/database"
	"campus_lms_backend/pkg/logger"
	"campus_lms_backend/pkg/monitoring"
	"campus_lms_backend/pkg/security"
	"campus_lms_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user       *repository.UserRepository
	course     *repository.CourseRepository
	cohort     *repository.CohortRepository
	quiz       *repository.QuizRepository
	assignment *repository.AssignmentRepository
	discussion *repository.DiscussionRepository
	analytics  *repository.AnalyticsRepository
}

type services struct {
	quiz       *service.QuizService
	course     *service.CourseService
	cohort     *service.CohortService
	assignment *service.AssignmentService
	discussion *service.DiscussionService
	analytics  *service.AnalyticsService
}

type controllers struct {
	quiz       *controller.QuizController
	course     *controller.CourseController
	cohort     *controller.CohortController
	assignment *controller.AssignmentController
	discussion *controller.DiscussionController
	analytics  *controller.AnalyticsController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		course:     repository.NewCourseRepository(db),
		cohort:     repository.NewCohortRepository(db, rdb),
		quiz:       repository.NewQuizRepository(db),
		assignment: repository.NewAssignmentRepository(db),
		discussion: repository.NewDiscussionRepository(db),
		analytics:  repository.NewAnalyticsRepository(db),
	}
}

func (a *App) initServices(repos *repositories, rdb *redis.Client) *services {
	return &services{
		quiz:       service.NewQuizService(repos.quiz),
		course:     service.NewCourseService(repos.course, repos.cohort),
		cohort:     service.NewCohortService(repos.cohort, repos.user),
		assignment: service.NewAssignmentService(repos.assignment, repos.cohort),
		discussion: service.NewDiscussionService(repos.discussion),
		analytics:  service.NewAnalyticsService(repos.analytics, rdb),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		quiz:       controller.NewQuizController(s.quiz),
		course:     controller.NewCourseController(s.course),
		cohort:     controller.NewCohortController(s.cohort),
		assignment: controller.NewAssignmentController(s.assignment),
		discussion: controller.NewDiscussionController(s.discussion),
		analytics:  controller.NewAnalyticsController(s.analytics),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb)
	services := app.initServices(repos, rdb)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("campus-lms", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		logger.Log.Info("Configuration reloaded")
		app.Config = newCfg
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
