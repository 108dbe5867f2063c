package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/talentflow/talentflow/pkg/model"
)

func (app *application) routes() http.Handler {
	if app.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	// request logging via zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http",
			"method", c.Request.Method, "path", c.Request.URL.Path,
			"status", c.Writer.Status(), "duration", time.Since(start))
	})

	r.Use(app.CORSMiddleware())
	if app.Config.Limiter.Enabled {
		r.Use(app.RateLimitMiddleware())
	}

	v1 := r.Group("/api/v1")
	{
		v1.POST("/signup", app.Handler.SignUp)
		v1.POST("/login", app.Handler.Login)
	}

	protected := v1.Group("/")
	protected.Use(app.AuthMiddleware())
	{
		protected.GET("/me", app.Handler.Me)

		// jobs
		protected.GET("/jobs", app.Handler.ListJobs)
		protected.GET("/jobs/mine", app.RequireRole(model.UserRoleHR), app.Handler.MyJobs)
		protected.POST("/jobs", app.RequireRole(model.UserRoleHR), app.Handler.PostJob)
		protected.GET("/jobs/:id", app.Handler.GetJob)
		protected.PUT("/jobs/:id", app.RequireRole(model.UserRoleHR), app.Handler.UpdateJob)
		protected.DELETE("/jobs/:id", app.RequireRole(model.UserRoleHR), app.Handler.DeleteJob)
		protected.GET("/jobs/:id/applicants", app.RequireRole(model.UserRoleHR), app.Handler.ListApplicants)

		// resumes and screening
		protected.POST("/resumes", app.RequireRole(model.UserRoleCandidate), app.Handler.UploadResume)
		protected.GET("/resumes", app.RequireRole(model.UserRoleCandidate), app.Handler.MyResumes)
		protected.GET("/resumes/:id/preview", app.RequireRole(model.UserRoleCandidate), app.Handler.ScreeningPreview)

		// applications
		protected.POST("/applications/confirm", app.RequireRole(model.UserRoleCandidate), app.Handler.ConfirmApply)
		protected.GET("/applications", app.RequireRole(model.UserRoleCandidate), app.Handler.MyApplications)
		protected.GET("/applications/:id", app.Handler.ApplicationDetail)
		protected.PATCH("/applications/:id/status", app.RequireRole(model.UserRoleHR), app.Handler.UpdateApplicationStatus)
		protected.POST("/applications/:id/live", app.RequireRole(model.UserRoleHR), app.Handler.ScheduleLive)

		// mock interviews
		protected.POST("/interviews/start", app.RequireRole(model.UserRoleCandidate), app.Handler.StartInterview)
		protected.GET("/interviews", app.RequireRole(model.UserRoleCandidate), app.Handler.MyInterviews)
		protected.GET("/interviews/:session_id/next", app.RequireRole(model.UserRoleCandidate), app.Handler.NextQuestion)
		protected.POST("/interviews/:session_id/answer", app.RequireRole(model.UserRoleCandidate), app.Handler.SubmitAnswer)
		protected.POST("/interviews/:session_id/finish", app.RequireRole(model.UserRoleCandidate), app.Handler.FinishInterview)
		protected.GET("/interviews/:session_id/report", app.RequireRole(model.UserRoleCandidate), app.Handler.InterviewReport)
		protected.DELETE("/interviews/:session_id", app.RequireRole(model.UserRoleCandidate), app.Handler.DeleteInterview)

		// conversational AI interviews
		protected.POST("/ai-interviews/start", app.RequireRole(model.UserRoleCandidate), app.Handler.StartAIInterview)
		protected.GET("/ai-interviews", app.RequireRole(model.UserRoleCandidate), app.Handler.MyAIInterviews)
		protected.POST("/ai-interviews/:session_id/chat", app.RequireRole(model.UserRoleCandidate), app.Handler.ChatTurn)
		protected.POST("/ai-interviews/:session_id/finish", app.RequireRole(model.UserRoleCandidate), app.Handler.FinishAIInterview)
		protected.GET("/ai-interviews/:session_id/report", app.RequireRole(model.UserRoleCandidate), app.Handler.AIInterviewReport)
		protected.GET("/ai-interviews/:session_id/transcript", app.RequireRole(model.UserRoleCandidate), app.Handler.AIInterviewTranscript)
		protected.DELETE("/ai-interviews/:session_id", app.RequireRole(model.UserRoleCandidate), app.Handler.DeleteAIInterview)

		// live video interviews
		protected.GET("/live", app.Handler.MyLiveInterviews)
		protected.GET("/live/room/:meeting_id", app.Handler.LiveRoom)
		protected.POST("/live/:id/cancel", app.RequireRole(model.UserRoleHR), app.Handler.CancelLive)
		protected.POST("/live/:id/complete", app.RequireRole(model.UserRoleHR), app.Handler.CompleteLive)

		// notifications
		protected.GET("/notifications", app.Handler.MyNotifications)
		protected.PATCH("/notifications/:id/read", app.Handler.MarkNotificationRead)
		protected.POST("/notifications/read-all", app.Handler.MarkAllNotificationsRead)

		// quizzes
		protected.GET("/quizzes", app.Handler.GetQuiz)
		protected.POST("/quizzes/submit", app.Handler.SubmitQuiz)
		protected.GET("/quizzes/attempts", app.Handler.MyQuizAttempts)

		// courses
		protected.GET("/courses", app.Handler.ListCourses)
		protected.GET("/courses/recommendations", app.RequireRole(model.UserRoleCandidate), app.Handler.RecommendCourses)
		protected.GET("/courses/:id", app.Handler.GetCourse)
	}

	return r
}
