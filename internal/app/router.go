package app

import (
	"campus_lms_backend/docs"
	"campus_lms_backend/internal/middleware"
	"campus_lms_backend/internal/model"
	"campus_lms_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	api := router.Group("/api")
	api.Use(middleware.RequireIdentity())
	{
		a.registerStudentRoutes(api, c)
		a.registerTeacherRoutes(api, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
	}
}

// registerStudentRoutes covers everything an authenticated caller may
// reach. Gating inside (enrollment, schedules, ownership) happens in
// the services.
func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	// Courses and gated content
	rg.GET("/courses", c.course.ListCourses)
	rg.GET("/courses/:id", c.course.GetCourse)
	rg.GET("/courses/:id/cohorts", c.cohort.ListCohorts)
	rg.GET("/cohorts/:id/modules", c.course.ListModulesForCohort)
	rg.GET("/cohorts/:id/modules/:moduleId/status", c.course.GetModuleStatus)
	rg.GET("/lessons/:id", c.course.GetLesson)
	rg.POST("/cohorts/:id/enroll", c.cohort.Enroll)

	// Quizzes and attempts
	rg.GET("/quizzes/:id", c.quiz.GetQuizForStudent)
	rg.POST("/quizzes/:id/attempts", c.quiz.StartAttempt)
	rg.GET("/quizzes/:id/attempts", c.quiz.ListMyAttempts)
	rg.POST("/attempts/:id/submit", c.quiz.SubmitAttempt)
	rg.GET("/attempts/:id/time", c.quiz.GetRemainingTime)

	// Assignments
	rg.GET("/lessons/:id/assignments", c.assignment.ListAssignments)
	rg.GET("/assignments/:id", c.assignment.GetAssignment)
	rg.POST("/assignments/:id/submissions", c.assignment.Submit)

	// Discussions
	rg.GET("/courses/:id/threads", c.discussion.ListThreads)
	rg.POST("/courses/:id/threads", c.discussion.CreateThread)
	rg.GET("/threads/:id", c.discussion.GetThread)
	rg.DELETE("/threads/:id", c.discussion.DeleteThread)
	rg.POST("/threads/:id/replies", c.discussion.CreateReply)
	rg.DELETE("/replies/:id", c.discussion.DeleteReply)
}

func (a *App) registerTeacherRoutes(rg *gin.RouterGroup, c *controllers) {
	teacher := rg.Group("/teacher")
	teacher.Use(middleware.RequireRole(model.Teacher))
	{
		// Course structure
		teacher.POST("/courses", c.course.CreateCourse)
		teacher.PUT("/courses/:id", c.course.UpdateCourse)
		teacher.POST("/courses/:id/modules", c.course.CreateModule)
		teacher.POST("/modules/:id/lessons", c.course.CreateLesson)

		// Cohorts, enrollments and schedules
		teacher.POST("/courses/:id/cohorts", c.cohort.CreateCohort)
		teacher.GET("/cohorts/:id/enrollments", c.cohort.ListEnrollments)
		teacher.PUT("/cohorts/:id/enrollments/:userId", c.cohort.SetEnrollmentStatus)
		teacher.PUT("/cohorts/:id/modules/:moduleId/schedule", c.cohort.SetSchedule)
		teacher.DELETE("/cohorts/:id/modules/:moduleId/schedule", c.cohort.ClearSchedule)

		// Quiz authoring
		teacher.POST("/lessons/:id/quizzes", c.quiz.CreateQuiz)
		teacher.POST("/quizzes/validate", c.quiz.ValidateQuiz)
		teacher.GET("/quizzes/:id", c.quiz.GetQuiz)
		teacher.PUT("/quizzes/:id", c.quiz.UpdateQuiz)
		teacher.DELETE("/quizzes/:id", c.quiz.DeleteQuiz)
		teacher.GET("/quizzes/:id/attempts", c.quiz.ListAttempts)

		// Assignments and grading
		teacher.POST("/lessons/:id/assignments", c.assignment.CreateAssignment)
		teacher.PUT("/assignments/:id", c.assignment.UpdateAssignment)
		teacher.GET("/assignments/:id/submissions", c.assignment.ListSubmissions)
		teacher.POST("/submissions/:id/grade", c.assignment.GradeSubmission)

		// Analytics
		teacher.GET("/quizzes/:id/stats", c.analytics.GetQuizStats)
		teacher.GET("/cohorts/:id/quiz-overview", c.analytics.GetCohortQuizOverview)
		teacher.GET("/assignments/:id/stats", c.analytics.GetAssignmentStats)
	}
}
